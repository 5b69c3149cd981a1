// Package srcspan provides byte positions, half-open spans, and line:column
// locations for source text, for attaching diagnostics to exact regions of
// input.
//
// A lexer or parser produces Pos values as it scans; pairs of positions form
// a Span; a Source resolves any position back to a Location for display and
// slices out the text a span covers.
//
// # Basic Usage
//
// Wrap some text in a Source and resolve a position:
//
//	src := srcspan.NewSource(srcspan.NamedOrigin{DocName: "query"}, "SELECT *\nFROM t\n")
//	loc, ok := src.LocationFor(srcspan.PosFromUint32(14))
//	if ok {
//	    fmt.Printf("%s:%s\n", src.Origin(), loc) // query:2:6
//	}
//
// # Slicing
//
// A span indexes straight back into the text it was produced from:
//
//	span := srcspan.SpanFromOffsets(9, 15)
//	if fragment, ok := src.Slice(span); ok {
//	    fmt.Println(fragment) // FROM t
//	}
package srcspan

import (
	"github.com/praetorian-inc/srcspan/pkg/source"
	"github.com/praetorian-inc/srcspan/pkg/text"
)

// Re-export commonly used types for convenience.
// Users can import just "github.com/praetorian-inc/srcspan" without subpackages.
type (
	// Pos is a byte offset into a source text.
	Pos = text.Pos

	// Span is a half-open [low, high) range of positions.
	Span = text.Span

	// Location is a zero-indexed line:column pair, rendered 1-indexed.
	Location = text.Location

	// Origin describes where a source text came from.
	Origin = text.Origin

	// FileOrigin tags text read from a filesystem path.
	FileOrigin = text.FileOrigin

	// NamedOrigin tags a virtual document such as an editor buffer.
	NamedOrigin = text.NamedOrigin

	// UnknownOrigin tags text with no recorded provenance.
	UnknownOrigin = text.UnknownOrigin

	// Source owns a text, its origin, and the line index for resolving
	// positions.
	Source = source.Source

	// Snippet is the text a span denotes plus surrounding context lines.
	Snippet = source.Snippet
)

// Re-export the failure sentinels so callers can errors.Is against them.
var (
	ErrOutOfRange = text.ErrOutOfRange
	ErrOverflow   = text.ErrOverflow
	ErrUnderflow  = text.ErrUnderflow
)

// PosFromUint32 creates a position from a 32-bit offset.
func PosFromUint32(v uint32) Pos {
	return text.PosFromUint32(v)
}

// PosFromInt creates a position from a platform-sized offset, failing with
// ErrOutOfRange when it does not fit in 32 bits.
func PosFromInt(v int) (Pos, error) {
	return text.PosFromInt(v)
}

// NewSpan creates a span, swapping the endpoints if given in reverse order.
func NewSpan(low, high Pos) Span {
	return text.NewSpan(low, high)
}

// SpanFromOffsets creates a span from two 32-bit offsets.
func SpanFromOffsets(low, high uint32) Span {
	return text.SpanFromOffsets(low, high)
}

// SpanFromRange creates a span from a half-open range of platform-sized
// offsets.
func SpanFromRange(low, high int) (Span, error) {
	return text.SpanFromRange(low, high)
}

// NewLocation creates a location from a zero-indexed line and column.
func NewLocation(line uint32, column Pos) Location {
	return text.NewLocation(line, column)
}

// NewSource creates a source from an origin and its text.
func NewSource(origin Origin, data string) *Source {
	return source.New(origin, data)
}

// FromFile reads a file and creates a source tagged with its path.
func FromFile(path string) (*Source, error) {
	return source.FromFile(path)
}
