package source

import "github.com/praetorian-inc/srcspan/pkg/text"

// Snippet contains context around a span of source text.
type Snippet struct {
	Before   string // whole lines preceding the span, up to the requested count
	Matching string // the text the span denotes
	After    string // whole lines following the span, up to the requested count
}

// Snippet extracts the text a span denotes plus up to contextLines whole
// lines on each side, for display alongside a diagnostic. Context never
// includes the newline that separates it from text outside the snippet.
// The second result is false when the span reaches past the end of the
// text.
func (s *Source) Snippet(span text.Span, contextLines int) (Snippet, bool) {
	lo, hi := span.Offsets()
	if hi > len(s.data) {
		return Snippet{}, false
	}

	snip := Snippet{Matching: s.data[lo:hi]}
	if contextLines <= 0 {
		return snip, true
	}

	first := s.lineIndex(lo)
	from := first - contextLines
	if from < 0 {
		from = 0
	}
	snip.Before = s.data[s.lineStarts[from].Int():lo]

	last := s.lineIndex(hi)
	to := len(s.data)
	if next := last + contextLines + 1; next < len(s.lineStarts) {
		to = s.lineStarts[next].Int() - 1 // drop the '\n'
	}
	snip.After = s.data[hi:to]

	return snip, true
}
