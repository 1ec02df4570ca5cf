// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

import (
	"errors"

	"github.com/ezrec/eepasm/translate"
)

var f = translate.From

var (
	// Description errors
	ErrOperandCount = errors.New(f("too many operands"))
	ErrIns8Value    = errors.New(f("ins8 value must be 0 or 1"))

	// Encoding errors
	ErrNoMatch = errors.New(f("no matching version of instruction"))
)

// ErrFieldMissing is returned when an expected description keyword is absent.
type ErrFieldMissing string

func (err ErrFieldMissing) Error() string {
	return f("'%v' field missing", string(err))
}

// ErrFieldRange is returned when a description field value is out of range.
type ErrFieldRange string

func (err ErrFieldRange) Error() string {
	return f("'%v' field out of range", string(err))
}

type ErrOperandType string

func (err ErrOperandType) Error() string {
	return f("invalid operand type '%v'", string(err))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrRegisterInvalid string

func (err ErrRegisterInvalid) Error() string {
	return f("'%v' is not a register", string(err))
}

type ErrLabelMissing string

func (err ErrLabelMissing) Error() string {
	return f("label '%v' not found in program", string(err))
}

// ErrDescription locates an error in an instruction set description.
type ErrDescription struct {
	Opcode string
	Err    error
}

func (err *ErrDescription) Error() string {
	return f("parsing (instruction: %v) %v", err.Opcode, err.Err)
}

func (err *ErrDescription) Unwrap() error {
	return err.Err
}
