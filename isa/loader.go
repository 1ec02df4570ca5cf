// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

import (
	"bufio"
	"io"
)

// loader reads case-folded words from an instruction set description.
type loader struct {
	scanner *bufio.Scanner
}

// next returns the next word, or "" at the end of the description.
func (ld *loader) next() string {
	if !ld.scanner.Scan() {
		return ""
	}
	return Fold(ld.scanner.Text())
}

// field reads a 'name value' pair and returns the value.
func (ld *loader) field(name string) (value string, err error) {
	if ld.next() != name {
		err = ErrFieldMissing(name)
		return
	}

	value = ld.next()
	if len(value) == 0 {
		err = ErrFieldMissing(name)
	}

	return
}

// number reads a 'name value' pair with a numeric value.
func (ld *loader) number(name string) (value uint16, err error) {
	str, err := ld.field(name)
	if err != nil {
		return
	}

	return ParseNumber(str)
}

// bitPosition reads a 'name value' pair holding a bit index of the word.
func (ld *loader) bitPosition(name string) (pos uint8, err error) {
	value, err := ld.number(name)
	if err != nil {
		return
	}

	if value > 15 {
		err = ErrFieldRange(name)
		return
	}

	pos = uint8(value)
	return
}

// operand reads one 'op type <kind> ...' operand slot.
func (ld *loader) operand() (spec OperandSpec, err error) {
	if ld.next() != "op" {
		err = ErrFieldMissing("op")
		return
	}

	kind_name, err := ld.field("type")
	if err != nil {
		return
	}

	kind, ok := kindMap[kind_name]
	if !ok {
		err = ErrOperandType(kind_name)
		return
	}
	spec.Kind = kind

	switch kind {
	case KIND_REGISTER:
		spec.Lsb, err = ld.bitPosition("lsb")
	case KIND_IMMEDIATE:
		var size uint16
		size, err = ld.number("size")
		if err != nil {
			return
		}
		if size == 0 || size > 16 {
			err = ErrFieldRange("size")
			return
		}
		spec.Size = uint8(size)

		spec.Lsb, err = ld.bitPosition("lsb")
		if err != nil {
			return
		}

		var ins8 string
		ins8, err = ld.field("ins8")
		if err != nil {
			return
		}
		switch ins8 {
		case "0":
		case "1":
			spec.SetsHighBit = true
		default:
			err = ErrIns8Value
		}
	case KIND_LABEL:
		// No fields.
	case KIND_LITERAL:
		spec.Name, err = ld.field("name")
		if err != nil {
			return
		}
		spec.Const, err = ld.number("const")
	}

	return
}

// alternative reads the count and operand slots following 'numops'.
func (ld *loader) alternative() (alt Alternative, err error) {
	count, err := ParseNumber(ld.next())
	if err != nil {
		return
	}

	if count > MAX_OPERANDS {
		err = ErrOperandCount
		return
	}

	alt = make(Alternative, 0, count)
	for range count {
		var spec OperandSpec
		spec, err = ld.operand()
		if err != nil {
			return
		}
		alt = append(alt, spec)
	}

	return
}

// Load reads an instruction set description into a Table.
//
// 'copy' reuses the alternatives of the most recent opcode that declared its
// own with 'numops'.
func Load(input io.Reader) (table Table, err error) {
	ld := &loader{scanner: bufio.NewScanner(input)}
	ld.scanner.Split(bufio.ScanWords)

	var opcode string

	defer func() {
		if scan_err := ld.scanner.Err(); scan_err != nil {
			err = scan_err
		}
		if err != nil {
			err = &ErrDescription{Opcode: opcode, Err: err}
			table = nil
		}
	}()

	table = Table{}

	var family []Alternative
	for opcode = ld.next(); len(opcode) != 0; opcode = ld.next() {
		entry := &Entry{}

		word := ld.next()
		switch word {
		case "copy":
			entry.Alternatives = family
			word = ld.next()
		case "numops":
			family = nil
			for word == "numops" {
				var alt Alternative
				alt, err = ld.alternative()
				if err != nil {
					return
				}
				family = append(family, alt)
				word = ld.next()
			}
			entry.Alternatives = family
		}

		if word != "const_iword" {
			err = ErrFieldMissing("const_iword")
			return
		}

		entry.BaseWord, err = ParseNumber(ld.next())
		if err != nil {
			return
		}

		table[opcode] = entry
	}

	return
}
