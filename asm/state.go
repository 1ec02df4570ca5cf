// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

// State is the progress of an Assembler through its passes.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_IDLE        = State(0) // idle
	STATE_LOADING_ISA = State(1) // loading-isa
	STATE_TOKENIZING  = State(2) // tokenizing
	STATE_EMITTING    = State(3) // emitting
	STATE_DONE        = State(4) // done
	STATE_FAILED      = State(5) // failed
)
