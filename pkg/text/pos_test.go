package text

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPosFromUint32(t *testing.T) {
	for _, v := range []uint32{0, math.MaxUint32, 0xdeadbeef} {
		pos := PosFromUint32(v)
		assert.Equal(t, v, pos.Uint32())
		assert.Equal(t, int(v), pos.Int())
	}
}

func TestPosFromInt(t *testing.T) {
	for _, v := range []int{0, 1, math.MaxUint32} {
		pos, err := PosFromInt(v)
		require.NoError(t, err)
		assert.Equal(t, v, pos.Int())
	}
}

func TestPosFromInt_OutOfRange(t *testing.T) {
	_, err := PosFromInt(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = PosFromInt(math.MaxUint32 + 1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestPosOrdering(t *testing.T) {
	a := PosFromUint32(3)
	b := PosFromUint32(7)

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.Before(a))
	assert.False(t, a.After(a))
	assert.Equal(t, a, PosFromUint32(3))
}

func TestPosAsMapKey(t *testing.T) {
	// Pos is a comparable value type; equality is offset equality.
	seen := map[Pos]bool{PosFromUint32(42): true}
	assert.True(t, seen[PosFromUint32(42)])
	assert.False(t, seen[PosFromUint32(41)])
}

func TestPosString(t *testing.T) {
	assert.Equal(t, "0", PosFromUint32(0).String())
	assert.Equal(t, "4294967295", PosFromUint32(math.MaxUint32).String())
}
