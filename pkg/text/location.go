package text

import "fmt"

// Location is a line:column position inside a source text.
//
// Both fields are zero-indexed; String renders the conventional 1-indexed
// form. The column is a byte offset from the start of the line, not a
// visual column (tabs and wide runes count as their encoded width).
type Location struct {
	line   uint32
	column Pos
}

// NewLocation creates a location from a zero-indexed line and column.
// No validation is performed; the location does not know which source it
// belongs to.
func NewLocation(line uint32, column Pos) Location {
	return Location{line: line, column: column}
}

// Line returns the zero-indexed line number.
func (l Location) Line() uint32 {
	return l.line
}

// Column returns the zero-indexed column as an offset from the line start.
func (l Location) Column() Pos {
	return l.column
}

// String returns the 1-indexed "line:column" form.
func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.line+1, l.column.Uint32()+1)
}
