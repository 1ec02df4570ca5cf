// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

const (
	HIGH_BIT   = uint16(1 << 8) // Set by immediate forms that declare ins8.
	LABEL_MASK = uint16(0xff)   // PC-relative displacements are 8 bits wide.
)

// OperandSpec is one declared operand slot of an alternative.
type OperandSpec struct {
	Kind        OperandKind
	Size        uint8  // Field width in bits (immediate only).
	Lsb         uint8  // Bit position of the field (register and immediate).
	SetsHighBit bool   // Immediate form also sets bit 8 of the word.
	Name        string // Exact token text (literal only).
	Const       uint16 // Value contributed verbatim (literal only).
}

// Match reports if an operand token can fill the slot.
func (spec OperandSpec) Match(token string) bool {
	if len(token) == 0 {
		return false
	}

	switch spec.Kind {
	case KIND_REGISTER:
		return token[0] == 'r'
	case KIND_IMMEDIATE:
		return (token[0] >= '0' && token[0] <= '9') || token[0] == '-'
	case KIND_LABEL:
		return true
	case KIND_LITERAL:
		return token == spec.Name
	}

	return false
}

// Encode returns the bits the operand token contributes to the instruction
// word at address pc.
func (spec OperandSpec) Encode(token string, pc int, labels Labels) (bits uint16, err error) {
	switch spec.Kind {
	case KIND_REGISTER:
		if len(token) != 2 || token[0] != 'r' || token[1] < '0' || token[1] > '9' {
			err = ErrRegisterInvalid(token)
			return
		}
		bits = uint16(token[1]-'0') << spec.Lsb
	case KIND_IMMEDIATE:
		var value uint16
		value, err = ParseNumber(token)
		if err != nil {
			return
		}
		mask := uint16((uint32(1) << spec.Size) - 1)
		bits = (value & mask) << spec.Lsb
		if spec.SetsHighBit {
			bits |= HIGH_BIT
		}
	case KIND_LABEL:
		target, ok := labels[token]
		if !ok {
			err = ErrLabelMissing(token)
			return
		}
		bits = (uint16(target) - uint16(pc)) & LABEL_MASK
	case KIND_LITERAL:
		bits = spec.Const
	default:
		err = ErrOperandType(spec.Kind.String())
	}

	return
}
