package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocation(t *testing.T) {
	loc := NewLocation(5, PosFromUint32(12))
	assert.Equal(t, uint32(5), loc.Line())
	assert.Equal(t, PosFromUint32(12), loc.Column())
}

func TestLocationString(t *testing.T) {
	tests := []struct {
		name   string
		line   uint32
		column uint32
		want   string
	}{
		{"origin renders one-indexed", 0, 0, "1:1"},
		{"line only", 4, 0, "5:1"},
		{"column only", 0, 9, "1:10"},
		{"both", 41, 7, "42:8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc := NewLocation(tt.line, PosFromUint32(tt.column))
			if got := loc.String(); got != tt.want {
				t.Errorf("Location.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLocationNoValidation(t *testing.T) {
	// The constructor accepts any pair; a Location does not know which
	// source it came from.
	loc := NewLocation(1<<30, PosFromUint32(1<<30))
	assert.Equal(t, uint32(1<<30), loc.Line())
}
