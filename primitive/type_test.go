package primitive

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// ==============================================================================
// Type.Size
// ==============================================================================

func TestType_Size(t *testing.T) {
	cases := []struct {
		t    Type
		want int
	}{
		{TypeChar, 1},
		{TypeInt8, 1},
		{TypeUint8, 1},
		{TypeInt16, 2},
		{TypeUint16, 2},
		{TypeInt32, 4},
		{TypeUint32, 4},
		{TypeFloat32, 4},
		{TypeInt64, 8},
		{TypeUint64, 8},
		{TypeFloat64, 8},
		{TypeNone, 0},
	}

	for _, c := range cases {
		require.Equal(t, c.want, c.t.Size(), "size of %s", c.t)
	}
}

// ==============================================================================
// Type.Unsigned
// ==============================================================================

func TestType_Unsigned(t *testing.T) {
	unsigned := []Type{TypeUint8, TypeUint16, TypeUint32, TypeUint64}
	signed := []Type{TypeChar, TypeInt8, TypeInt16, TypeInt32, TypeInt64, TypeFloat32, TypeFloat64, TypeNone}

	for _, ty := range unsigned {
		require.True(t, ty.Unsigned(), "%s should be unsigned", ty)
	}
	for _, ty := range signed {
		require.False(t, ty.Unsigned(), "%s should not be unsigned", ty)
	}
}

// ==============================================================================
// Type.String
// ==============================================================================

func TestType_String(t *testing.T) {
	require.Equal(t, "char", TypeChar.String())
	require.Equal(t, "int32", TypeInt32.String())
	require.Equal(t, "uint64", TypeUint64.String())
	require.Equal(t, "float64", TypeFloat64.String())
	require.Equal(t, "none", Type(255).String())
}

// ==============================================================================
// ByteOrder
// ==============================================================================

func TestByteOrder_Engine(t *testing.T) {
	require.Equal(t, LittleEndian(), LittleEndianOrder.Engine())
	require.Equal(t, BigEndian(), BigEndianOrder.Engine())

	var zero ByteOrder
	require.Equal(t, LittleEndian(), zero.Engine(), "the zero value of ByteOrder must be little-endian")
}

func TestByteOrder_String(t *testing.T) {
	require.Equal(t, "littleEndian", LittleEndianOrder.String())
	require.Equal(t, "bigEndian", BigEndianOrder.String())
}
