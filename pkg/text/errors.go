package text

import (
	"errors"
	"math"
)

// maxOffset is the largest offset representable by a Pos.
const maxOffset = int64(math.MaxUint32)

var (
	// ErrOutOfRange indicates a platform-sized offset does not fit in the
	// 32-bit width used by Pos.
	ErrOutOfRange = errors.New("text: offset out of range")

	// ErrOverflow indicates a span shift would move an endpoint above the
	// representable offset range.
	ErrOverflow = errors.New("text: span shift overflows offset")

	// ErrUnderflow indicates a span shift would move an endpoint below zero.
	ErrUnderflow = errors.New("text: span shift underflows offset")
)
