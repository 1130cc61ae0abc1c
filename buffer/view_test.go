package buffer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// ==============================================================================
// NewView
// ==============================================================================

func TestNewView_RejectsLengthLargerThanBackingSlice(t *testing.T) {
	_, err := NewView(make([]byte, 4), 5)
	require.Error(t, err)
}

func TestNewView_AcceptsShorterUsableLength(t *testing.T) {
	v, err := NewView(make([]byte, 10), 4)
	require.NoError(t, err)
	require.Equal(t, 4, v.Len())
	require.Len(t, v.Bytes(), 10, "Bytes returns the full backing slice regardless of Len")
}

// ==============================================================================
// CheckBounds / Slice
// ==============================================================================

func TestView_CheckBounds(t *testing.T) {
	v, err := NewView(make([]byte, 16), 16)
	require.NoError(t, err)

	require.NoError(t, v.CheckBounds(0, 16))
	require.NoError(t, v.CheckBounds(10, 6))
	require.Error(t, v.CheckBounds(10, 7), "one byte past the usable length")
	require.Error(t, v.CheckBounds(-1, 4), "negative offset")
	require.Error(t, v.CheckBounds(0, -1), "negative length")
}

func TestView_Slice(t *testing.T) {
	backing := []byte{1, 2, 3, 4, 5}
	v, err := NewView(backing, 5)
	require.NoError(t, err)

	s, err := v.Slice(1, 3)
	require.NoError(t, err)
	require.Equal(t, []byte{2, 3, 4}, s)

	// The slice shares storage with the backing array (zero-copy).
	s[0] = 99
	require.Equal(t, byte(99), backing[1])

	_, err = v.Slice(3, 3)
	require.Error(t, err, "[3,6) exceeds the 5-byte usable length")
}

func TestView_SliceRespectsUsableLengthNotCapacity(t *testing.T) {
	backing := make([]byte, 20)
	v, err := NewView(backing, 8)
	require.NoError(t, err)

	_, err = v.Slice(4, 5)
	require.Error(t, err, "4+5 exceeds the declared usable length of 8, even though backing is 20 bytes")
}
