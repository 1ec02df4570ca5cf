// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

import (
	"strconv"
	"strings"
)

// ParseNumber parses a literal in 0x hexadecimal, 0b binary or decimal form.
//
// Values wider than 16 bits are truncated. A leading '-' returns the 16-bit
// two's complement of the magnitude.
func ParseNumber(word string) (value uint16, err error) {
	digits, negative := strings.CutPrefix(word, "-")

	base := 10
	switch {
	case strings.HasPrefix(digits, "0x"):
		base = 16
		digits = digits[2:]
	case strings.HasPrefix(digits, "0b"):
		base = 2
		digits = digits[2:]
	}

	v64, err := strconv.ParseUint(digits, base, 32)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	value = uint16(v64)
	if negative {
		value = -value
	}

	return
}
