// Package text provides the value types used to address regions of source
// text: byte-offset positions, half-open spans, line:column locations, and
// the origin tag describing where a piece of text came from.
package text

import "strconv"

// Pos is a byte offset into a source text buffer.
// Offsets are 32-bit; texts larger than 4 GiB are not addressable.
type Pos struct {
	offset uint32
}

// PosFromUint32 creates a Pos from a 32-bit offset. It cannot fail.
func PosFromUint32(v uint32) Pos {
	return Pos{offset: v}
}

// PosFromInt creates a Pos from a platform-sized offset.
// Returns ErrOutOfRange if v is negative or does not fit in 32 bits.
func PosFromInt(v int) (Pos, error) {
	if v < 0 || int64(v) > maxOffset {
		return Pos{}, ErrOutOfRange
	}
	return Pos{offset: uint32(v)}, nil
}

// Uint32 returns the offset as a uint32.
func (p Pos) Uint32() uint32 {
	return p.offset
}

// Int returns the offset as an int. The conversion is always lossless.
func (p Pos) Int() int {
	return int(p.offset)
}

// Before reports whether p is strictly before q.
func (p Pos) Before(q Pos) bool {
	return p.offset < q.offset
}

// After reports whether p is strictly after q.
func (p Pos) After(q Pos) bool {
	return p.offset > q.offset
}

// String returns the raw offset in decimal.
func (p Pos) String() string {
	return strconv.FormatUint(uint64(p.offset), 10)
}
