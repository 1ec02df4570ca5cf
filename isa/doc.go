// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package isa holds a configurable description of a 16-bit instruction set.
//
// An instruction set is loaded from a whitespace separated text description
// into a Table. Each opcode owns an ordered list of alternative operand
// encodings; Entry.Match selects an alternative for a list of source operand
// tokens, and Entry.Encode packs the selected operand fields on top of the
// opcode's base word.
//
// Description syntax, one opcode per entry:
//
//	<opcode> numops <n> (op type <kind> <fields...>)* ... const_iword <value>
//	<opcode> copy const_iword <value>
//
// Operand kinds and their fields:
//
//	reg    lsb <n>
//	imm    size <n> lsb <n> ins8 <0|1>
//	label
//	lit    name <token> const <value>
package isa
