// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"errors"

	"github.com/ezrec/eepasm/translate"
)

var f = translate.From

var (
	ErrOpcodeUnknown   = errors.New(f("unknown instruction"))
	ErrOrgValueMissing = errors.New(f("org value missing"))
	ErrExtraArgs       = errors.New(f("excessive arguments"))
	ErrLabelInvalid    = errors.New(f("label name empty"))
	ErrTableMissing    = errors.New(f("instruction table not loaded"))
)

type ErrLabelDuplicate string

func (err ErrLabelDuplicate) Error() string {
	return f("label '%v' duplicated", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrAssembly locates an error in the assembly source.
type ErrAssembly struct {
	LineNo int    // Physical source line, 1-indexed.
	Line   string // Source text, if known.
	Opcode string // Opcode of the line, if known.
	Err    error
}

func (err *ErrAssembly) Error() string {
	if len(err.Opcode) != 0 {
		return f("line %d (instruction: %v) %v", err.LineNo, err.Opcode, err.Err)
	}
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrAssembly) Unwrap() error {
	return err.Err
}
