// Package source provides the Source container: a piece of source text
// together with its origin and a derived line-start index, used to resolve
// byte positions to line:column locations and to slice out the text a span
// denotes.
package source

import (
	"fmt"
	"os"
	"sort"

	"github.com/praetorian-inc/srcspan/pkg/text"
)

// Source owns an immutable source text and the index needed to map
// positions within it back to locations.
//
// A Source never changes after construction, so any number of goroutines
// may resolve positions and slice text concurrently without locking.
type Source struct {
	origin     text.Origin
	data       string
	lineStarts []text.Pos // byte offset of each line start, strictly increasing
}

// New creates a Source from an origin and its text. The text is scanned
// once for newlines to build the line-start index.
//
// Every newline opens a new line: the index records the offset following
// each '\n', with the first entry fixed at 0. A trailing newline therefore
// contributes a final entry for the empty last line ("Hello\nWorld\n"
// yields [0, 6, 12]); that line holds no byte, so no resolvable position
// ever lands on it.
func New(origin text.Origin, data string) *Source {
	if origin == nil {
		origin = text.UnknownOrigin{}
	}
	return &Source{
		origin:     origin,
		data:       data,
		lineStarts: scanLineStarts(data),
	}
}

// FromFile reads the file at path and creates a Source with a FileOrigin.
// Read failures are returned wrapped, with the OS error as the cause.
func FromFile(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading source %s: %w", path, err)
	}
	return New(text.FileOrigin{FilePath: path}, string(data)), nil
}

// scanLineStarts builds the line-start index in a single pass.
func scanLineStarts(data string) []text.Pos {
	starts := []text.Pos{text.PosFromUint32(0)}
	for i := 0; i < len(data); i++ {
		if data[i] == '\n' {
			starts = append(starts, text.PosFromUint32(uint32(i+1)))
		}
	}
	return starts
}

// Origin returns where the text came from.
func (s *Source) Origin() text.Origin {
	return s.origin
}

// Text returns the full source text.
func (s *Source) Text() string {
	return s.data
}

// Len returns the length of the text in bytes.
func (s *Source) Len() int {
	return len(s.data)
}

// LineCount returns the number of lines in the text, counting the empty
// line after a trailing newline.
func (s *Source) LineCount() int {
	return len(s.lineStarts)
}

// LocationFor resolves a position to its line:column location.
//
// The second result is false when pos is at or past the end of the text;
// this includes the position exactly at end-of-file, which belongs to no
// line. Resolution is a binary search over the line-start index, O(log L)
// in the number of lines.
func (s *Source) LocationFor(pos text.Pos) (text.Location, bool) {
	if pos.Int() >= len(s.data) {
		return text.Location{}, false
	}
	line := s.lineIndex(pos.Int())
	start := s.lineStarts[line]
	column := text.PosFromUint32(pos.Uint32() - start.Uint32())
	return text.NewLocation(uint32(line), column), true
}

// lineIndex returns the index of the greatest line start <= offset.
// The first line start is 0, so the search cannot come up empty.
func (s *Source) lineIndex(offset int) int {
	return sort.Search(len(s.lineStarts), func(i int) bool {
		return s.lineStarts[i].Int() > offset
	}) - 1
}

// Slice returns the substring a span denotes. The second result is false
// when the span reaches past the end of the text.
func (s *Source) Slice(span text.Span) (string, bool) {
	lo, hi := span.Offsets()
	if hi > len(s.data) {
		return "", false
	}
	return s.data[lo:hi], true
}

// Line returns the text of the zero-indexed line n without its
// terminating newline. The second result is false when the text has no
// line n.
func (s *Source) Line(n uint32) (string, bool) {
	if int64(n) >= int64(len(s.lineStarts)) {
		return "", false
	}
	start := s.lineStarts[n].Int()
	end := len(s.data)
	if int(n)+1 < len(s.lineStarts) {
		end = s.lineStarts[n+1].Int() - 1 // drop the '\n'
	}
	return s.data[start:end], true
}
