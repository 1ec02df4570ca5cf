// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"fmt"
	"io"
	"iter"
)

// Instruction is an assembled instruction word and its source location.
type Instruction struct {
	LineNo int      // Source line number.
	Pc     int      // Address of the word.
	Words  []string // Source tokens.
	Word   uint16   // Encoded instruction word.
}

// Program is the output of the assembler, in program order.
type Program struct {
	Instructions []Instruction
}

// Debug returns the first instruction placed at address pc, or nil.
func (prog *Program) Debug(pc int) *Instruction {
	for n, inst := range prog.Instructions {
		if inst.Pc == pc {
			return &prog.Instructions[n]
		}
	}

	return nil
}

// Words iterates over the (address, instruction word) pairs of the program.
func (prog *Program) Words() iter.Seq2[int, uint16] {
	return func(yield func(pc int, word uint16) bool) {
		for _, inst := range prog.Instructions {
			if !yield(inst.Pc, inst.Word) {
				return
			}
		}
	}
}

// Binary returns the instruction words in program order.
func (prog *Program) Binary() (bins []uint16) {
	for _, word := range prog.Words() {
		bins = append(bins, word)
	}

	return
}

// WriteTo writes the listing, one '0xAA 0xWWWW' line per instruction.
func (prog *Program) WriteTo(w io.Writer) (n int64, err error) {
	bw := bufio.NewWriter(w)
	for pc, word := range prog.Words() {
		var count int
		count, err = fmt.Fprintf(bw, "0x%02x 0x%04x\n", pc, word)
		n += int64(count)
		if err != nil {
			return
		}
	}

	err = bw.Flush()

	return
}
