package otf

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sbeio/gosbe/errs"
	"github.com/sbeio/gosbe/ir"
	"github.com/sbeio/gosbe/primitive"
)

func standardHeaderTokens() []ir.Token {
	return []ir.Token{
		{Signal: ir.SignalBeginComposite, Name: "messageHeader", EncodedLength: 8, ComponentTokenCount: 6},
		{Signal: ir.SignalEncoding, Name: "blockLength", PrimitiveType: primitive.TypeUint16, ByteOrder: primitive.LittleEndianOrder, Offset: 0, EncodedLength: 2},
		{Signal: ir.SignalEncoding, Name: "templateId", PrimitiveType: primitive.TypeUint16, ByteOrder: primitive.LittleEndianOrder, Offset: 2, EncodedLength: 2},
		{Signal: ir.SignalEncoding, Name: "schemaId", PrimitiveType: primitive.TypeUint16, ByteOrder: primitive.LittleEndianOrder, Offset: 4, EncodedLength: 2},
		{Signal: ir.SignalEncoding, Name: "version", PrimitiveType: primitive.TypeUint16, ByteOrder: primitive.LittleEndianOrder, Offset: 6, EncodedLength: 2},
		{Signal: ir.SignalEndComposite, Name: "messageHeader"},
	}
}

// ==============================================================================
// NewHeaderDecoder / field reads
// ==============================================================================

func TestHeaderDecoder_ReadsAllFourFields(t *testing.T) {
	hd, err := NewHeaderDecoder(standardHeaderTokens())
	require.NoError(t, err)
	require.Equal(t, 8, hd.EncodedLength())

	header := make([]byte, 8)
	require.NoError(t, primitive.Write(primitive.TypeUint16, primitive.LittleEndianOrder, header[0:2], 47))
	require.NoError(t, primitive.Write(primitive.TypeUint16, primitive.LittleEndianOrder, header[2:4], 1))
	require.NoError(t, primitive.Write(primitive.TypeUint16, primitive.LittleEndianOrder, header[4:6], 6))
	require.NoError(t, primitive.Write(primitive.TypeUint16, primitive.LittleEndianOrder, header[6:8], 3))

	blockLength, err := hd.BlockLength(header)
	require.NoError(t, err)
	require.Equal(t, uint64(47), blockLength)

	templateID, err := hd.TemplateID(header)
	require.NoError(t, err)
	require.Equal(t, uint64(1), templateID)

	schemaID, err := hd.SchemaID(header)
	require.NoError(t, err)
	require.Equal(t, uint64(6), schemaID)

	version, err := hd.Version(header)
	require.NoError(t, err)
	require.Equal(t, uint64(3), version)
}

// ==============================================================================
// Field lookup is by name, not position
// ==============================================================================

func TestHeaderDecoder_FieldOrderDoesNotMatter(t *testing.T) {
	reordered := []ir.Token{
		{Signal: ir.SignalBeginComposite, Name: "messageHeader", EncodedLength: 8, ComponentTokenCount: 6},
		{Signal: ir.SignalEncoding, Name: "version", PrimitiveType: primitive.TypeUint16, ByteOrder: primitive.LittleEndianOrder, Offset: 6, EncodedLength: 2},
		{Signal: ir.SignalEncoding, Name: "schemaId", PrimitiveType: primitive.TypeUint16, ByteOrder: primitive.LittleEndianOrder, Offset: 4, EncodedLength: 2},
		{Signal: ir.SignalEncoding, Name: "templateId", PrimitiveType: primitive.TypeUint16, ByteOrder: primitive.LittleEndianOrder, Offset: 2, EncodedLength: 2},
		{Signal: ir.SignalEncoding, Name: "blockLength", PrimitiveType: primitive.TypeUint16, ByteOrder: primitive.LittleEndianOrder, Offset: 0, EncodedLength: 2},
		{Signal: ir.SignalEndComposite, Name: "messageHeader"},
	}

	hd, err := NewHeaderDecoder(reordered)
	require.NoError(t, err)

	header := make([]byte, 8)
	require.NoError(t, primitive.Write(primitive.TypeUint16, primitive.LittleEndianOrder, header[2:4], 9))

	templateID, err := hd.TemplateID(header)
	require.NoError(t, err)
	require.Equal(t, uint64(9), templateID)
}

// ==============================================================================
// Error paths
// ==============================================================================

func TestNewHeaderDecoder_EmptyTokensFails(t *testing.T) {
	_, err := NewHeaderDecoder(nil)
	require.ErrorIs(t, err, errs.ErrMalformedIR)
}

func TestNewHeaderDecoder_MissingFieldFails(t *testing.T) {
	incomplete := []ir.Token{
		{Signal: ir.SignalBeginComposite, Name: "messageHeader", EncodedLength: 6, ComponentTokenCount: 5},
		{Signal: ir.SignalEncoding, Name: "blockLength", PrimitiveType: primitive.TypeUint16, Offset: 0, EncodedLength: 2},
		{Signal: ir.SignalEncoding, Name: "templateId", PrimitiveType: primitive.TypeUint16, Offset: 2, EncodedLength: 2},
		{Signal: ir.SignalEncoding, Name: "schemaId", PrimitiveType: primitive.TypeUint16, Offset: 4, EncodedLength: 2},
		{Signal: ir.SignalEndComposite, Name: "messageHeader"},
	}

	_, err := NewHeaderDecoder(incomplete)
	require.ErrorIs(t, err, errs.ErrMalformedIR)
}

func TestHeaderDecoder_FieldBeyondBufferFails(t *testing.T) {
	hd, err := NewHeaderDecoder(standardHeaderTokens())
	require.NoError(t, err)

	_, err = hd.Version(make([]byte, 4))
	require.ErrorIs(t, err, errs.ErrBufferTooShort)
}
