package irfile

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// ==============================================================================
// CompressionType stringer
// ==============================================================================

func TestCompressionType_String(t *testing.T) {
	require.Equal(t, "None", CompressionNone.String())
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "S2", CompressionS2.String())
	require.Equal(t, "LZ4", CompressionLZ4.String())
	require.Equal(t, "Unknown", CompressionType(0xFF).String())
}

// ==============================================================================
// GetCodec
// ==============================================================================

func TestGetCodec_ReturnsEveryBuiltin(t *testing.T) {
	for _, ct := range []CompressionType{CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)
		require.NotNil(t, codec)
	}
}

func TestGetCodec_RejectsUnknownType(t *testing.T) {
	_, err := GetCodec(CompressionType(0xFF))
	require.Error(t, err)
}

// ==============================================================================
// Round trip, each codec, against a payload with real repetition (schema
// token lists repeat names/strings heavily, which these are chosen for)
// ==============================================================================

var repetitivePayload = bytes.Repeat([]byte("serialNumber modelYear vehicleCode engineCapacity "), 64)

func TestCodecs_RoundTrip(t *testing.T) {
	for name, codec := range map[string]Codec{
		"NoOp": NewNoOpCodec(),
		"Zstd": NewZstdCodec(),
		"S2":   NewS2Codec(),
		"LZ4":  NewLZ4Codec(),
	} {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(repetitivePayload)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, repetitivePayload, decompressed)
		})
	}
}

func TestCodecs_RoundTrip_EmptyPayload(t *testing.T) {
	for name, codec := range map[string]Codec{
		"NoOp": NewNoOpCodec(),
		"Zstd": NewZstdCodec(),
		"S2":   NewS2Codec(),
		"LZ4":  NewLZ4Codec(),
	} {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(nil)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

func TestCodecs_RoundTrip_SingleByte(t *testing.T) {
	for name, codec := range map[string]Codec{
		"NoOp": NewNoOpCodec(),
		"Zstd": NewZstdCodec(),
		"S2":   NewS2Codec(),
		"LZ4":  NewLZ4Codec(),
	} {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress([]byte{0x42})
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, []byte{0x42}, decompressed)
		})
	}
}

// ==============================================================================
// LZ4's geometric-growth decompression path (no self-described output size)
// ==============================================================================

func TestLZ4Codec_DecompressGrowsBufferForLargePayload(t *testing.T) {
	large := bytes.Repeat([]byte("x"), 1<<20)

	codec := NewLZ4Codec()
	compressed, err := codec.Compress(large)
	require.NoError(t, err)

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, large, decompressed)
}
