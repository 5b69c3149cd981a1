package text

// Origin tracks where a source text came from.
// It is mainly used when labelling diagnostics.
type Origin interface {
	Kind() string
	// Name returns a displayable name (if applicable)
	Name() string
}

// FileOrigin for texts read from the filesystem.
type FileOrigin struct {
	FilePath string
}

// Kind returns "file".
func (f FileOrigin) Kind() string {
	return "file"
}

// Name returns the file path.
func (f FileOrigin) Name() string {
	return f.FilePath
}

func (f FileOrigin) String() string {
	return f.FilePath
}

// NamedOrigin for virtual documents with no backing file, such as an
// unsaved editor buffer or a REPL line.
type NamedOrigin struct {
	DocName string
}

// Kind returns "named".
func (n NamedOrigin) Kind() string {
	return "named"
}

// Name returns the document name.
func (n NamedOrigin) Name() string {
	return n.DocName
}

func (n NamedOrigin) String() string {
	return n.DocName
}

// UnknownOrigin for texts whose provenance was not recorded.
type UnknownOrigin struct{}

// Kind returns "unknown".
func (UnknownOrigin) Kind() string {
	return "unknown"
}

// Name returns an empty string as an unknown origin has no name.
func (UnknownOrigin) Name() string {
	return ""
}

func (UnknownOrigin) String() string {
	return "<unknown>"
}
