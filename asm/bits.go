package asm

import (
	"strconv"
	"strings"
)

const (
	REGISTER_BITS  = 5  // Width of a register field.
	IMMEDIATE_BITS = 16 // Width of an immediate or offset field.

	REGISTER_MAX  = (1 << REGISTER_BITS) - 1
	IMMEDIATE_MIN = -(1 << (IMMEDIATE_BITS - 1))
	IMMEDIATE_MAX = (1 << IMMEDIATE_BITS) - 1
)

// Encode renders the low width bits of value as binary digits, most
// significant bit first. Negative values yield their two's-complement
// pattern.
func Encode(value int, width int) string {
	mask := uint64(1)<<width - 1
	digits := strconv.FormatUint(uint64(value)&mask, 2)
	if len(digits) < width {
		digits = strings.Repeat("0", width-len(digits)) + digits
	}
	return digits
}

// EncodeRegister renders a register number as a 5 bit field.
func EncodeRegister(value int) (bits string, err error) {
	if value < 0 || value > REGISTER_MAX {
		err = ErrOutOfRange{Value: value, Min: 0, Max: REGISTER_MAX}
		return
	}

	bits = Encode(value, REGISTER_BITS)
	return
}

// EncodeImmediate renders an immediate as a 16 bit two's-complement field.
// Both signed and unsigned 16 bit values are accepted, anything else is
// rejected rather than truncated.
func EncodeImmediate(value int) (bits string, err error) {
	if value < IMMEDIATE_MIN || value > IMMEDIATE_MAX {
		err = ErrOutOfRange{Value: value, Min: IMMEDIATE_MIN, Max: IMMEDIATE_MAX}
		return
	}

	bits = Encode(value, IMMEDIATE_BITS)
	return
}
