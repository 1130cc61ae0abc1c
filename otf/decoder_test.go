package otf

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sbeio/gosbe/errs"
	"github.com/sbeio/gosbe/ir"
	"github.com/sbeio/gosbe/primitive"
)

// synthMessageTokens builds a small but structurally complete message:
// a scalar field, an enum field, a set field, a one-level nested group
// carrying a scalar field, and one var-data field. Exercises the same
// decodeFields/decodeGroups/decodeData paths examplemsg/car does, without
// depending on that package's schema.
func synthMessageTokens() []ir.Token {
	return []ir.Token{
		{Signal: ir.SignalBeginMessage, Name: "Msg", ComponentTokenCount: 31},

		{Signal: ir.SignalBeginField, Name: "value", FieldID: 1, ComponentTokenCount: 3},
		{Signal: ir.SignalEncoding, Name: "value", PrimitiveType: primitive.TypeUint32, ByteOrder: primitive.LittleEndianOrder, Offset: 0, EncodedLength: 4},
		{Signal: ir.SignalEndField, Name: "value"},

		{Signal: ir.SignalBeginField, Name: "flag", FieldID: 2, ComponentTokenCount: 6},
		{Signal: ir.SignalBeginEnum, Name: "Flag", PrimitiveType: primitive.TypeUint8, Offset: 4, EncodedLength: 1, ComponentTokenCount: 4},
		{Signal: ir.SignalValidValue, Name: "A", ConstValue: "0"},
		{Signal: ir.SignalValidValue, Name: "B", ConstValue: "1"},
		{Signal: ir.SignalEndEnum, Name: "Flag"},
		{Signal: ir.SignalEndField, Name: "flag"},

		{Signal: ir.SignalBeginField, Name: "bits", FieldID: 3, ComponentTokenCount: 6},
		{Signal: ir.SignalBeginSet, Name: "Bits", PrimitiveType: primitive.TypeUint8, Offset: 5, EncodedLength: 1, ComponentTokenCount: 4},
		{Signal: ir.SignalChoice, Name: "x", Offset: 0},
		{Signal: ir.SignalChoice, Name: "y", Offset: 1},
		{Signal: ir.SignalEndSet, Name: "Bits"},
		{Signal: ir.SignalEndField, Name: "bits"},

		{Signal: ir.SignalBeginGroup, Name: "items", FieldID: 4, ComponentTokenCount: 9},
		{Signal: ir.SignalBeginComposite, Name: "groupSizeEncoding", EncodedLength: 3, ComponentTokenCount: 4},
		{Signal: ir.SignalEncoding, Name: "blockLength", PrimitiveType: primitive.TypeUint16, Offset: 0, EncodedLength: 2},
		{Signal: ir.SignalEncoding, Name: "numInGroup", PrimitiveType: primitive.TypeUint8, Offset: 2, EncodedLength: 1},
		{Signal: ir.SignalEndComposite, Name: "groupSizeEncoding"},
		{Signal: ir.SignalBeginField, Name: "itemValue", FieldID: 1, ComponentTokenCount: 3},
		{Signal: ir.SignalEncoding, Name: "itemValue", PrimitiveType: primitive.TypeInt32, ByteOrder: primitive.LittleEndianOrder, Offset: 0, EncodedLength: 4},
		{Signal: ir.SignalEndField, Name: "itemValue"},
		{Signal: ir.SignalEndGroup, Name: "items"},

		{Signal: ir.SignalBeginVarData, Name: "name", FieldID: 5, ComponentTokenCount: 5},
		{Signal: ir.SignalBeginComposite, Name: "varDataEncoding"},
		{Signal: ir.SignalEncoding, Name: "length", PrimitiveType: primitive.TypeUint8, Offset: 0, EncodedLength: 1},
		{Signal: ir.SignalEncoding, Name: "varData", PrimitiveType: primitive.TypeChar, Offset: 1, EncodedLength: ir.VarLengthSentinel},
		{Signal: ir.SignalEndVarData, Name: "name"},

		{Signal: ir.SignalEndMessage, Name: "Msg"},
	}
}

const synthBlockLength = 6

// synthBuffer encodes value=77, flag=1("B"), bits=0b011, a 2-entry group
// (itemValue 100, 200) each with a 4-byte entry block, then a "hello"
// var-data field with a uint8 length prefix.
func synthBuffer(t *testing.T) []byte {
	t.Helper()

	buf := make([]byte, 64)
	require.NoError(t, primitive.Write(primitive.TypeUint32, primitive.LittleEndianOrder, buf[0:4], 77))
	buf[4] = 1
	buf[5] = 0b011

	require.NoError(t, primitive.Write(primitive.TypeUint16, primitive.LittleEndianOrder, buf[6:8], 4))
	buf[8] = 2

	require.NoError(t, primitive.Write(primitive.TypeInt32, primitive.LittleEndianOrder, buf[9:13], uint64(uint32(100))))
	require.NoError(t, primitive.Write(primitive.TypeInt32, primitive.LittleEndianOrder, buf[13:17], uint64(uint32(200))))

	buf[17] = 5
	copy(buf[18:23], "hello")

	return buf[:23]
}

type event struct {
	name string
	data []byte
}

type recordingListener struct {
	NopListener
	events          []event
	groupHeaders    []uint32
	beginCount      int
	endCount        int
}

func (r *recordingListener) OnBeginMessage(ir.Token) error { r.beginCount++; return nil }
func (r *recordingListener) OnEndMessage(ir.Token) error   { r.endCount++; return nil }

func (r *recordingListener) OnEncoding(fieldToken ir.Token, data []byte, _ ir.Token, _ uint16) error {
	r.events = append(r.events, event{fieldToken.Name, append([]byte(nil), data...)})
	return nil
}

func (r *recordingListener) OnEnum(fieldToken ir.Token, data []byte, _ []ir.Token, _, _ int, _ uint16) error {
	r.events = append(r.events, event{"enum:" + fieldToken.Name, append([]byte(nil), data...)})
	return nil
}

func (r *recordingListener) OnBitSet(fieldToken ir.Token, data []byte, _ []ir.Token, _, _ int, _ uint16) error {
	r.events = append(r.events, event{"set:" + fieldToken.Name, append([]byte(nil), data...)})
	return nil
}

func (r *recordingListener) OnGroupHeader(_ ir.Token, numInGroup uint32) error {
	r.groupHeaders = append(r.groupHeaders, numInGroup)
	return nil
}

func (r *recordingListener) OnVarData(fieldToken ir.Token, data []byte, _ ir.Token) error {
	r.events = append(r.events, event{"var:" + fieldToken.Name, append([]byte{}, data...)})
	return nil
}

// ==============================================================================
// Decode: full walk
// ==============================================================================

func TestDecode_WalksEveryFieldGroupAndVarData(t *testing.T) {
	buf := synthBuffer(t)
	listener := &recordingListener{}

	n, err := Decode(buf, 0, synthBlockLength, synthMessageTokens(), listener)
	require.NoError(t, err)
	require.Equal(t, 23, n)
	require.Equal(t, 1, listener.beginCount)
	require.Equal(t, 1, listener.endCount)
	require.Equal(t, []uint32{2}, listener.groupHeaders)

	want := []event{
		{"value", []byte{77, 0, 0, 0}},
		{"enum:flag", []byte{1}},
		{"set:bits", []byte{0b011}},
		{"itemValue", []byte{100, 0, 0, 0}},
		{"itemValue", []byte{200, 0, 0, 0}},
		{"var:name", []byte("hello")},
	}
	require.Equal(t, want, listener.events)
}

func TestDecode_EmptyGroupProducesNoEntryEvents(t *testing.T) {
	buf := synthBuffer(t)
	buf[8] = 0 // numInGroup = 0
	buf[9] = 5 // the var-data field now directly follows the group header
	copy(buf[10:15], "hello")

	listener := &recordingListener{}
	_, err := Decode(buf, 0, synthBlockLength, synthMessageTokens(), listener)
	require.NoError(t, err)
	require.Equal(t, []uint32{0}, listener.groupHeaders)

	for _, e := range listener.events {
		require.NotEqual(t, "itemValue", e.name, "an empty group must not fire any entry callbacks")
	}
}

// ==============================================================================
// Decode: error paths
// ==============================================================================

func TestDecode_EmptyTokenListFails(t *testing.T) {
	_, err := Decode(make([]byte, 8), 0, 0, nil, &recordingListener{})
	require.ErrorIs(t, err, errs.ErrMalformedIR)
}

func TestDecode_BufferTooShortFails(t *testing.T) {
	buf := synthBuffer(t)
	_, err := Decode(buf[:10], 0, synthBlockLength, synthMessageTokens(), &recordingListener{})
	require.ErrorIs(t, err, errs.ErrBufferTooShort)
}

func TestDecode_ListenerErrorAbortsDecode(t *testing.T) {
	sentinel := errors.New("listener declined")
	listener := &abortingListener{err: sentinel}

	_, err := Decode(synthBuffer(t), 0, synthBlockLength, synthMessageTokens(), listener)
	require.ErrorIs(t, err, sentinel)
}

type abortingListener struct {
	NopListener
	err error
}

func (a *abortingListener) OnEncoding(ir.Token, []byte, ir.Token, uint16) error { return a.err }

// ==============================================================================
// Schema evolution: acting block length shorter than the group/var-data
// region presumes (Invariant 5)
// ==============================================================================

func TestDecode_ActingBlockLengthGatesOlderReaders(t *testing.T) {
	// An older sender wrote only value+flag (5 bytes) and placed the group
	// immediately after, instead of the schema's compiled 6-byte block.
	// decodeGroups must position its dimensions header at the acting
	// blockLength passed in, not the compiled one baked into the tokens,
	// and "bits" (compiled at offset 5, now outside the 5-byte acting
	// block) must be skipped rather than read as if it overlapped the
	// group's own dimensions header.
	buf := make([]byte, 32)
	require.NoError(t, primitive.Write(primitive.TypeUint32, primitive.LittleEndianOrder, buf[0:4], 77))
	buf[4] = 1

	require.NoError(t, primitive.Write(primitive.TypeUint16, primitive.LittleEndianOrder, buf[5:7], 4))
	buf[7] = 1
	require.NoError(t, primitive.Write(primitive.TypeInt32, primitive.LittleEndianOrder, buf[8:12], uint64(uint32(42))))
	buf[12] = 0 // empty var-data length

	listener := &recordingListener{}
	n, err := Decode(buf[:13], 0, 5, synthMessageTokens(), listener)
	require.NoError(t, err)
	require.Equal(t, 13, n)
	require.Equal(t, []uint32{1}, listener.groupHeaders)

	want := []event{
		{"value", []byte{77, 0, 0, 0}},
		{"enum:flag", []byte{1}},
		{"itemValue", []byte{42, 0, 0, 0}},
		{"var:name", []byte{}},
	}
	require.Equal(t, want, listener.events)
}

// ==============================================================================
// Schema evolution: per-field since-version and offset gating (Invariant 5)
// ==============================================================================

func TestDecode_FieldAddedInLaterVersionIsSkippedForOlderActingVersion(t *testing.T) {
	tokens := synthMessageTokens()
	// "flag" was added in schema version 2; an acting version of 1 must
	// never see it, even though its bytes are present and in-range.
	for i := range tokens {
		if tokens[i].Name == "flag" && tokens[i].Signal == ir.SignalBeginField {
			tokens[i].TokenVersion = 2
		}
	}

	listener := &recordingListener{}
	_, err := Decode(synthBuffer(t), 1, synthBlockLength, tokens, listener)
	require.NoError(t, err)

	for _, e := range listener.events {
		require.NotEqual(t, "enum:flag", e.name, "a field whose token_version exceeds actingVersion must be skipped")
	}
}

func TestDecodeFields_FieldBeyondActingBlockLengthIsSkipped(t *testing.T) {
	// A shorter acting block length than the field's compiled offset means
	// the sender never wrote that field at all (Invariant 5); it must be
	// skipped, not read from whatever bytes happen to sit there. Exercised
	// against decodeFields directly so the group/var-data layout further
	// on in the buffer doesn't need to be re-derived for a shorter block.
	tokens := synthMessageTokens()
	buf := synthBuffer(t)

	listener := &recordingListener{}
	_, err := decodeFields(buf, 0, 0, 4, tokens, 1, len(tokens), listener)
	require.NoError(t, err)

	require.Equal(t, []event{{"value", []byte{77, 0, 0, 0}}}, listener.events,
		"flag (offset 4) and bits (offset 5) are both at/after actingBlockLength 4 and must be skipped")
}
