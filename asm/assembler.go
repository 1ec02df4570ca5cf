// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"io"
	"log"

	"github.com/ezrec/eepasm/isa"
)

// Assembler is a two pass assembler driven by an instruction set description.
type Assembler struct {
	Verbose bool       // If set, verbosely logs the assembler actions.
	Table   isa.Table  // Instruction set in use.
	Labels  isa.Labels // Labels bound by the last Parse.
	State   State      // Progress of the last Assemble or Parse.

	predefine map[string]string // Predefines visible to $(...) expressions.
}

// Predefine defines a new constant, or redefines an existing one, for
// compile-time expressions.
func (asm *Assembler) Predefine(name string, value string) {
	if asm.predefine == nil {
		asm.predefine = make(map[string]string)
	}
	asm.predefine[isa.Fold(name)] = isa.Fold(value)
}

// LoadTable reads the instruction set description.
func (asm *Assembler) LoadTable(input io.Reader) (err error) {
	asm.State = STATE_LOADING_ISA

	asm.Table, err = isa.Load(input)
	if err != nil {
		asm.State = STATE_FAILED
	}

	return
}

// Assemble loads an instruction set description, then assembles the source
// with it.
func (asm *Assembler) Assemble(description io.Reader, source io.Reader) (prog *Program, err error) {
	err = asm.LoadTable(description)
	if err != nil {
		return
	}

	return asm.Parse(source)
}

// Parse assembles an input stream with the loaded instruction table.
//
// No Program is returned unless every line assembled.
func (asm *Assembler) Parse(source io.Reader) (prog *Program, err error) {
	defer func() {
		if err != nil {
			asm.State = STATE_FAILED
			prog = nil
		}
	}()

	if asm.Table == nil {
		err = ErrTableMissing
		return
	}

	asm.State = STATE_TOKENIZING
	lines, labels, err := asm.Tokenize(source)
	if err != nil {
		return
	}
	asm.Labels = labels

	asm.State = STATE_EMITTING
	prog = &Program{}
	pc := 0
	for _, line := range lines {
		opcode := line.Opcode()
		if opcode == "org" {
			var org uint16
			org, err = isa.ParseNumber(line.Words[1])
			if err != nil {
				err = &ErrAssembly{LineNo: line.LineNo, Opcode: opcode, Err: err}
				return
			}
			pc = int(org)
			continue
		}

		var word uint16
		word, err = asm.encode(line, pc)
		if err != nil {
			err = &ErrAssembly{LineNo: line.LineNo, Opcode: opcode, Err: err}
			return
		}

		if asm.Verbose {
			log.Printf("%v: %#04x %#06x %v\n", line.LineNo, pc, word, line.Words)
		}

		prog.Instructions = append(prog.Instructions, Instruction{
			LineNo: line.LineNo,
			Pc:     pc,
			Words:  line.Words,
			Word:   word,
		})
		pc++
	}

	asm.State = STATE_DONE

	return
}

// encode assembles a single token line at address pc.
func (asm *Assembler) encode(line TokenLine, pc int) (word uint16, err error) {
	entry, ok := asm.Table[line.Opcode()]
	if !ok {
		err = ErrOpcodeUnknown
		return
	}

	return entry.Encode(line.Operands(), pc, asm.Labels)
}
