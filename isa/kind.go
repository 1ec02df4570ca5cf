// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

// OperandKind selects how an operand token is matched and encoded.
type OperandKind int

//go:generate go tool stringer -linecomment -type=OperandKind
const (
	KIND_REGISTER  = OperandKind(0) // reg
	KIND_IMMEDIATE = OperandKind(1) // imm
	KIND_LABEL     = OperandKind(2) // label
	KIND_LITERAL   = OperandKind(3) // lit
)

// kindMap maps description type names to operand kinds.
var kindMap = map[string]OperandKind{
	"reg":       KIND_REGISTER,
	"register":  KIND_REGISTER,
	"imm":       KIND_IMMEDIATE,
	"immediate": KIND_IMMEDIATE,
	"label":     KIND_LABEL,
	"lit":       KIND_LITERAL,
	"literal":   KIND_LITERAL,
}
