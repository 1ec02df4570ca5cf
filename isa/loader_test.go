package isa

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// testDescription is a small instruction set used across the package tests.
var testDescription = []string{
	"ADD numops 2 op type reg lsb 9 op type imm size 8 lsb 0 ins8 1",
	"    numops 2 op type reg lsb 9 op type reg lsb 5",
	"    numops 3 op type reg lsb 9 op type reg lsb 5 op type reg lsb 2",
	"    const_iword 0x1000",
	"SUB copy const_iword 0x2000",
	"ADC numops 2 op type reg lsb 9 op type imm size 8 lsb 0 ins8 1",
	"    numops 3 op type reg lsb 9 op type reg lsb 5 op type reg lsb 2",
	"    const_iword 0x3000",
	"LDR numops 2 op type reg lsb 9 op type reg lsb 5",
	"    numops 3 op type reg lsb 9 op type reg lsb 5 op type imm size 5 lsb 0 ins8 0",
	"    const_iword 0x8000",
	"MOV numops 2 op type reg lsb 9 op type lit name PCX const 0x10",
	"    numops 2 op type reg lsb 9 op type lit name FLAGS const 0x20",
	"    const_iword 0",
	"JMP numops 1 op type label const_iword 0xe000",
	"NOOP const_iword 0b0",
}

func loadTest(t *testing.T) Table {
	table, err := Load(strings.NewReader(strings.Join(testDescription, "\n")))
	if err != nil {
		t.Fatal(err)
	}
	return table
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	table := loadTest(t)
	assert.Equal(7, len(table))

	add, ok := table["add"]
	assert.True(ok)
	assert.Equal(uint16(0x1000), add.BaseWord)
	assert.Equal([]Alternative{
		{
			{Kind: KIND_REGISTER, Lsb: 9},
			{Kind: KIND_IMMEDIATE, Size: 8, Lsb: 0, SetsHighBit: true},
		},
		{
			{Kind: KIND_REGISTER, Lsb: 9},
			{Kind: KIND_REGISTER, Lsb: 5},
		},
		{
			{Kind: KIND_REGISTER, Lsb: 9},
			{Kind: KIND_REGISTER, Lsb: 5},
			{Kind: KIND_REGISTER, Lsb: 2},
		},
	}, add.Alternatives)

	sub := table["sub"]
	assert.Equal(uint16(0x2000), sub.BaseWord)
	assert.Equal(add.Alternatives, sub.Alternatives)

	mov := table["mov"]
	assert.Equal(OperandSpec{Kind: KIND_LITERAL, Name: "pcx", Const: 0x10}, mov.Alternatives[0][1])
	assert.Equal(OperandSpec{Kind: KIND_LITERAL, Name: "flags", Const: 0x20}, mov.Alternatives[1][1])

	jmp := table["jmp"]
	assert.Equal([]Alternative{{{Kind: KIND_LABEL}}}, jmp.Alternatives)

	noop := table["noop"]
	assert.Empty(noop.Alternatives)
	assert.Equal(uint16(0), noop.BaseWord)
}

func TestLoad_Empty(t *testing.T) {
	assert := assert.New(t)

	table, err := Load(strings.NewReader(" \n\t\n"))
	assert.NoError(err)
	assert.Empty(table)
}

func TestLoad_CopyFollowsLastFamily(t *testing.T) {
	assert := assert.New(t)

	desc := []string{
		"a numops 1 op type reg lsb 0 const_iword 1",
		"b numops 0 const_iword 2",
		"c copy const_iword 3",
		"d const_iword 4",
		"e copy const_iword 5",
	}

	table, err := Load(strings.NewReader(strings.Join(desc, "\n")))
	assert.NoError(err)

	assert.Equal([]Alternative{{}}, table["c"].Alternatives)
	assert.Empty(table["d"].Alternatives)
	assert.Equal([]Alternative{{}}, table["e"].Alternatives)
	assert.Equal(uint16(5), table["e"].BaseWord)
}

func TestLoad_Errors(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		desc   string
		opcode string
		err    error
	}{
		{"add numops 4 op type reg lsb 0 const_iword 0", "add", ErrOperandCount},
		{"add numops 1 op type reg lsb 0", "add", ErrFieldMissing("const_iword")},
		{"add numops 1 op type reg lsb 0 iword 0", "add", ErrFieldMissing("const_iword")},
		{"add numops 1 oops type reg lsb 0 const_iword 0", "add", ErrFieldMissing("op")},
		{"add numops 1 op tipe reg lsb 0 const_iword 0", "add", ErrFieldMissing("type")},
		{"add numops 1 op type foo lsb 0 const_iword 0", "add", ErrOperandType("foo")},
		{"add numops 1 op type reg msb 0 const_iword 0", "add", ErrFieldMissing("lsb")},
		{"add numops 1 op type reg lsb 16 const_iword 0", "add", ErrFieldRange("lsb")},
		{"add numops 1 op type imm lsb 0 ins8 0 const_iword 0", "add", ErrFieldMissing("size")},
		{"add numops 1 op type imm size 0 lsb 0 ins8 0 const_iword 0", "add", ErrFieldRange("size")},
		{"add numops 1 op type imm size 17 lsb 0 ins8 0 const_iword 0", "add", ErrFieldRange("size")},
		{"add numops 1 op type imm size 8 lsb 0 const_iword 0", "add", ErrFieldMissing("ins8")},
		{"add numops 1 op type imm size 8 lsb 0 ins8 2 const_iword 0", "add", ErrIns8Value},
		{"mov numops 1 op type lit const 1 const_iword 0", "mov", ErrFieldMissing("name")},
		{"mov numops 1 op type lit name pcx const_iword 0", "mov", ErrFieldMissing("const")},
		{"nop const_iword 0 add numops x", "add", ErrParseNumber("x")},
		{"add const_iword zero", "add", ErrParseNumber("zero")},
		{"add numops 1 op type reg lsb", "add", ErrFieldMissing("lsb")},
	}

	for _, entry := range table {
		tab, err := Load(strings.NewReader(entry.desc))
		assert.Nil(tab, entry.desc)
		assert.ErrorIs(err, entry.err, entry.desc)

		var desc *ErrDescription
		if assert.True(errors.As(err, &desc), entry.desc) {
			assert.Equal(entry.opcode, desc.Opcode, entry.desc)
		}
	}
}

func TestLoad_CaseInsensitive(t *testing.T) {
	assert := assert.New(t)

	table, err := Load(strings.NewReader("ADD NUMOPS 1 OP TYPE REG LSB 0X9 CONST_IWORD 0X1000"))
	assert.NoError(err)

	add, ok := table["add"]
	if assert.True(ok) {
		assert.Equal(uint16(0x1000), add.BaseWord)
		assert.Equal([]Alternative{{{Kind: KIND_REGISTER, Lsb: 9}}}, add.Alternatives)
	}
}

func TestErrDescription(t *testing.T) {
	assert := assert.New(t)

	err := &ErrDescription{Opcode: "add", Err: ErrOperandCount}
	assert.Equal("parsing (instruction: add) too many operands", err.Error())
	assert.ErrorIs(err, ErrOperandCount)
}
