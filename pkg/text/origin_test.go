package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileOrigin(t *testing.T) {
	o := FileOrigin{FilePath: "/tmp/query.sql"}
	assert.Equal(t, "file", o.Kind())
	assert.Equal(t, "/tmp/query.sql", o.Name())
	assert.Equal(t, "/tmp/query.sql", o.String())
}

func TestNamedOrigin(t *testing.T) {
	o := NamedOrigin{DocName: "repl:1"}
	assert.Equal(t, "named", o.Kind())
	assert.Equal(t, "repl:1", o.Name())
}

func TestUnknownOrigin(t *testing.T) {
	o := UnknownOrigin{}
	assert.Equal(t, "unknown", o.Kind())
	assert.Equal(t, "", o.Name())
	assert.Equal(t, "<unknown>", o.String())
}

func TestOriginInterface(t *testing.T) {
	// All variants satisfy Origin.
	origins := []Origin{
		FileOrigin{FilePath: "a.txt"},
		NamedOrigin{DocName: "buffer"},
		UnknownOrigin{},
	}

	kinds := make([]string, 0, len(origins))
	for _, o := range origins {
		kinds = append(kinds, o.Kind())
	}
	assert.Equal(t, []string{"file", "named", "unknown"}, kinds)
}
