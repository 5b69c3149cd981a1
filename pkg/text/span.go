package text

import (
	"fmt"
	"math"
)

// Span is a byte range [low, high) - half-open interval.
//
// The invariant low <= high holds for every Span: constructors and
// endpoint replacements swap reversed operands rather than failing, so an
// inverted span cannot be built. A span with low == high is valid and
// denotes an empty region, e.g. an insertion point.
type Span struct {
	low  Pos // inclusive start
	high Pos // exclusive end
}

// NewSpan creates a span from two positions.
// If low is greater than high the two are swapped.
func NewSpan(low, high Pos) Span {
	if low.After(high) {
		low, high = high, low
	}
	return Span{low: low, high: high}
}

// SpanFromOffsets creates a span from two 32-bit offsets, swapping them if
// given in reverse order.
func SpanFromOffsets(low, high uint32) Span {
	return NewSpan(PosFromUint32(low), PosFromUint32(high))
}

// SpanFromRange creates a span from a native half-open range of
// platform-sized offsets. Returns ErrOutOfRange if either offset does not
// fit in 32 bits.
func SpanFromRange(low, high int) (Span, error) {
	lo, err := PosFromInt(low)
	if err != nil {
		return Span{}, err
	}
	hi, err := PosFromInt(high)
	if err != nil {
		return Span{}, err
	}
	return NewSpan(lo, hi), nil
}

// Low returns the inclusive start of the span.
func (s Span) Low() Pos {
	return s.low
}

// High returns the exclusive end of the span.
func (s Span) High() Pos {
	return s.high
}

// WithLow returns a copy of s with the low endpoint replaced. The result
// is re-normalized: a low beyond the current high swaps the endpoints.
func (s Span) WithLow(low Pos) Span {
	return NewSpan(low, s.high)
}

// WithHigh returns a copy of s with the high endpoint replaced, applying
// the same normalization as WithLow.
func (s Span) WithHigh(high Pos) Span {
	return NewSpan(s.low, high)
}

// ShiftBy translates both endpoints by amount. Returns ErrUnderflow or
// ErrOverflow if either endpoint would leave the representable offset
// range; offsets never wrap.
func (s Span) ShiftBy(amount int32) (Span, error) {
	low, err := shiftOffset(s.low.Uint32(), amount)
	if err != nil {
		return Span{}, fmt.Errorf("shifting low: %w", err)
	}
	high, err := shiftOffset(s.high.Uint32(), amount)
	if err != nil {
		return Span{}, fmt.Errorf("shifting high: %w", err)
	}
	return SpanFromOffsets(low, high), nil
}

// ShiftLowBy translates only the low endpoint by amount.
func (s Span) ShiftLowBy(amount int32) (Span, error) {
	low, err := shiftOffset(s.low.Uint32(), amount)
	if err != nil {
		return Span{}, fmt.Errorf("shifting low: %w", err)
	}
	return NewSpan(PosFromUint32(low), s.high), nil
}

// ShiftHighBy translates only the high endpoint by amount.
func (s Span) ShiftHighBy(amount int32) (Span, error) {
	high, err := shiftOffset(s.high.Uint32(), amount)
	if err != nil {
		return Span{}, fmt.Errorf("shifting high: %w", err)
	}
	return NewSpan(s.low, PosFromUint32(high)), nil
}

// shiftOffset moves a single offset by a signed amount with explicit
// bounds checks instead of wrapping.
func shiftOffset(v uint32, amount int32) (uint32, error) {
	if amount >= 0 {
		a := uint32(amount)
		if v > math.MaxUint32-a {
			return 0, ErrOverflow
		}
		return v + a, nil
	}
	// int64 widening so that negating math.MinInt32 is well defined.
	a := uint32(-int64(amount))
	if v < a {
		return 0, ErrUnderflow
	}
	return v - a, nil
}

// Union returns the smallest span containing both s and o: the minimum of
// the lows and the maximum of the highs. Disjoint inputs produce a span
// that also covers the gap between them; this is not an overlap test.
func (s Span) Union(o Span) Span {
	low := s.low
	if o.low.Before(low) {
		low = o.low
	}
	high := s.high
	if o.high.After(high) {
		high = o.high
	}
	return Span{low: low, high: high}
}

// Offsets returns the endpoints as a half-open int pair for slicing,
// text[lo:hi]. The slice is valid whenever hi <= len(text).
func (s Span) Offsets() (lo, hi int) {
	return s.low.Int(), s.high.Int()
}

// Len returns the number of bytes the span covers.
func (s Span) Len() uint32 {
	return s.high.Uint32() - s.low.Uint32()
}

// Empty reports whether the span covers no bytes.
func (s Span) Empty() bool {
	return s.low == s.high
}

// Contains reports whether p falls inside the span. The high endpoint is
// excluded, matching the half-open interval.
func (s Span) Contains(p Pos) bool {
	return !p.Before(s.low) && p.Before(s.high)
}

// String returns the span as "low..high".
func (s Span) String() string {
	return fmt.Sprintf("%s..%s", s.low, s.high)
}
