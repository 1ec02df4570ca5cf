// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

import (
	"golang.org/x/text/cases"
)

const (
	MAX_OPERANDS = 3 // Most operands an alternative may declare.
)

// Alternative is one operand encoding of an opcode.
type Alternative []OperandSpec

// Entry is the description of one opcode.
type Entry struct {
	Alternatives []Alternative // Tried in declaration order.
	BaseWord     uint16        // Constant bits before operands are added.
}

// Table maps case-folded opcode names to their entries.
type Table map[string]*Entry

// Labels maps label names to program counter values.
type Labels map[string]int

// Fold case-folds a description keyword or source token.
func Fold(word string) string {
	return cases.Fold().String(word)
}

// Encode assembles one instruction word from its operand tokens at address pc.
func (entry *Entry) Encode(tokens []string, pc int, labels Labels) (word uint16, err error) {
	operands, err := entry.Match(tokens)
	if err != nil {
		return
	}

	word = entry.BaseWord
	for _, op := range operands {
		var bits uint16
		bits, err = op.Spec.Encode(op.Token, pc, labels)
		if err != nil {
			return
		}
		// Fields are disjoint by construction of the description.
		word += bits
	}

	return
}
