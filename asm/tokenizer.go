// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"io"
	"log"
	"strings"
	"unicode"

	"github.com/ezrec/eepasm/isa"
)

// TokenLine is an operand-bearing source line, or an org directive.
type TokenLine struct {
	LineNo int      // Physical source line, 1-indexed.
	Words  []string // Opcode (or "org") followed by the operand tokens.
}

// Opcode returns the opcode of the line.
func (tl TokenLine) Opcode() string {
	return tl.Words[0]
}

// Operands returns the operand tokens of the line.
func (tl TokenLine) Operands() []string {
	return tl.Words[1:]
}

// stripComment removes any '//' comment and surrounding whitespace.
func stripComment(text string) string {
	if n := strings.Index(text, "//"); n >= 0 {
		text = text[:n]
	}
	return strings.TrimSpace(text)
}

// splitWords splits a line on whitespace and commas.
func splitWords(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
}

// operandToken removes operand decoration and case-folds the result.
func operandToken(word string) string {
	word = strings.TrimLeft(word, "#[")
	word = strings.TrimRight(word, ",]")
	return isa.Fold(word)
}

// Tokenize runs the first pass over the source. It returns the token lines,
// and the labels bound to their program counter values.
func (asm *Assembler) Tokenize(input io.Reader) (lines []TokenLine, labels isa.Labels, err error) {
	scanner := bufio.NewScanner(input)

	var text string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrAssembly{LineNo: lineno, Line: text, Err: err}
			lines = nil
			labels = nil
		}
	}()

	labels = isa.Labels{}
	pc := 0

	for scanner.Scan() {
		text = scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line := stripComment(text)
		if len(line) == 0 {
			continue
		}

		line, err = asm.expand(line, pc, labels)
		if err != nil {
			return
		}

		words := splitWords(line)
		if len(words) == 0 {
			continue
		}

		head := isa.Fold(words[0])
		_, known := asm.Table[head]
		if !known && head != "org" {
			label := strings.TrimSuffix(head, ":")
			if len(label) == 0 {
				err = ErrLabelInvalid
				return
			}
			if _, ok := labels[label]; ok {
				err = ErrLabelDuplicate(label)
				return
			}
			labels[label] = pc

			words = words[1:]
			if len(words) == 0 {
				continue
			}
			head = operandToken(words[0])
		}

		if head == "org" {
			if len(words) < 2 {
				err = ErrOrgValueMissing
				return
			}
			if len(words) > 2 {
				err = ErrExtraArgs
				return
			}
			value := operandToken(words[1])
			var org uint16
			org, err = isa.ParseNumber(value)
			if err != nil {
				return
			}
			pc = int(org)
			lines = append(lines, TokenLine{LineNo: lineno, Words: []string{"org", value}})
			continue
		}

		// Reserve the slot before the operands are scanned.
		pc++

		tokens := []string{head}
		for _, word := range words[1:] {
			token := operandToken(word)
			if len(token) != 0 {
				tokens = append(tokens, token)
			}
		}
		lines = append(lines, TokenLine{LineNo: lineno, Words: tokens})
	}

	err = scanner.Err()

	return
}
