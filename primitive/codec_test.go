package primitive

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// ==============================================================================
// Write / Read round trip
// ==============================================================================

func TestWriteRead_RoundTrip(t *testing.T) {
	cases := []struct {
		name string
		t    Type
		raw  uint64
	}{
		{"uint8", TypeUint8, 200},
		{"int8 negative", TypeInt8, uint64(uint8(int8(-5)))},
		{"uint16", TypeUint16, 60000},
		{"uint32", TypeUint32, 4000000000},
		{"uint64", TypeUint64, math.MaxUint64 - 1},
		{"float32", TypeFloat32, uint64(math.Float32bits(3.14))},
		{"float64", TypeFloat64, math.Float64bits(2.71828)},
		{"char", TypeChar, uint64('Z')},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			for _, order := range []ByteOrder{LittleEndianOrder, BigEndianOrder} {
				b := make([]byte, c.t.Size())
				require.NoError(t, Write(c.t, order, b, c.raw))

				got, err := Read(c.t, order, b)
				require.NoError(t, err)
				require.Equal(t, c.raw, got, "order %s", order)
			}
		})
	}
}

func TestWriteRead_ByteOrderDistinguishable(t *testing.T) {
	b := make([]byte, 2)
	require.NoError(t, Write(TypeUint16, LittleEndianOrder, b, 0x0102))
	require.Equal(t, []byte{0x02, 0x01}, b)

	require.NoError(t, Write(TypeUint16, BigEndianOrder, b, 0x0102))
	require.Equal(t, []byte{0x01, 0x02}, b)
}

// ==============================================================================
// Write / Read errors
// ==============================================================================

func TestWrite_BufferTooShort(t *testing.T) {
	b := make([]byte, 1)
	err := Write(TypeUint32, LittleEndianOrder, b, 42)
	require.Error(t, err)
}

func TestRead_BufferTooShort(t *testing.T) {
	b := make([]byte, 1)
	_, err := Read(TypeUint32, LittleEndianOrder, b)
	require.Error(t, err)
}

func TestWrite_UnsupportedType(t *testing.T) {
	b := make([]byte, 4)
	err := Write(TypeNone, LittleEndianOrder, b, 1)
	require.Error(t, err)
}

// ==============================================================================
// ReadUint
// ==============================================================================

func TestReadUint_RejectsSignedTypes(t *testing.T) {
	b := make([]byte, 4)
	_, err := ReadUint(TypeInt32, LittleEndianOrder, b)
	require.Error(t, err)
}

func TestReadUint_AcceptsUnsignedTypes(t *testing.T) {
	b := make([]byte, 2)
	require.NoError(t, Write(TypeUint16, LittleEndianOrder, b, 1234))

	v, err := ReadUint(TypeUint16, LittleEndianOrder, b)
	require.NoError(t, err)
	require.Equal(t, uint64(1234), v)
}
