// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package asm implements a two pass assembler for an instruction set loaded
// with the isa package.
//
// The first pass splits the source into token lines and binds labels to
// program counter values. The second pass encodes each token line into a
// 16-bit instruction word. Source lines have the forms:
//
//	label:
//	label opcode operand, ...
//	org <value>
//	opcode rn, #imm, [rn, #imm]  // comment
//
// A label alone on a line binds to the address of the next instruction.
// Operands may be separated by commas or whitespace; '#' and '[' prefixes and
// ']' suffixes are decoration and are dropped.
//
// Compile-time expressions $(...) are evaluated with Starlark before a line
// is tokenized.
package asm
