package ir

import (
	"fmt"

	"github.com/sbeio/gosbe/errs"
	"github.com/sbeio/gosbe/flyweight"
	"github.com/sbeio/gosbe/primitive"
)

// TokenBlockLength is the Token message's fixed-block size: five int32
// fields plus four single-byte enum fields (§3 "Token", grounded on
// uk_co_real_logic_sbe_ir_generated/TokenCodec.h, the richer generated copy
// that carries componentTokenCount as an explicit wire field rather than
// leaving it implicit).
const TokenBlockLength = 24

// TokenTemplateID is the Token message's templateId on the wire.
const TokenTemplateID uint16 = 2

const (
	tokenOffsetOffset              = 0
	tokenSizeOffset                = 4
	tokenSchemaIDOffset            = 8
	tokenVersionOffset             = 12
	tokenComponentTokenCountOffset = 16
	tokenSignalOffset              = 20
	tokenPrimitiveTypeOffset       = 21
	tokenByteOrderOffset           = 22
	tokenPresenceOffset            = 23
)

// TokenCodec encodes/decodes one Token message: the wire form of one node
// of ir.Token, self-hosted through the same flyweight runtime every other
// message uses. In a .sbeir file a Collection's token list is a uint32
// count followed by these messages, each preceded by its uint32 byte
// length (§4 "irfile").
type TokenCodec struct {
	flyweight.Message
}

// NewTokenCodec returns an unwrapped TokenCodec.
func NewTokenCodec() *TokenCodec {
	return &TokenCodec{Message: *flyweight.NewMessage()}
}

// WrapForEncode prepares tc to write a new Token at offset in buf.
func (tc *TokenCodec) WrapForEncode(buf []byte, offset int) error {
	return tc.Message.WrapForEncode(buf, offset, TokenBlockLength)
}

// WrapForDecode prepares tc to read a Token at offset in buf.
func (tc *TokenCodec) WrapForDecode(buf []byte, offset, actingBlockLength int, actingVersion uint16) error {
	return tc.Message.WrapForDecode(buf, offset, actingBlockLength, actingVersion, TokenBlockLength)
}

func (tc *TokenCodec) TokenOffset() (int32, error) {
	return tc.GetInt32(tokenOffsetOffset, primitive.LittleEndianOrder)
}

func (tc *TokenCodec) PutTokenOffset(v int32) error {
	return tc.PutInt32(tokenOffsetOffset, primitive.LittleEndianOrder, v)
}

func (tc *TokenCodec) TokenSize() (int32, error) {
	return tc.GetInt32(tokenSizeOffset, primitive.LittleEndianOrder)
}

func (tc *TokenCodec) PutTokenSize(v int32) error {
	return tc.PutInt32(tokenSizeOffset, primitive.LittleEndianOrder, v)
}

func (tc *TokenCodec) SchemaID() (int32, error) {
	return tc.GetInt32(tokenSchemaIDOffset, primitive.LittleEndianOrder)
}

func (tc *TokenCodec) PutSchemaID(v int32) error {
	return tc.PutInt32(tokenSchemaIDOffset, primitive.LittleEndianOrder, v)
}

func (tc *TokenCodec) TokenVersion() (int32, error) {
	return tc.GetInt32(tokenVersionOffset, primitive.LittleEndianOrder)
}

func (tc *TokenCodec) PutTokenVersion(v int32) error {
	return tc.PutInt32(tokenVersionOffset, primitive.LittleEndianOrder, v)
}

func (tc *TokenCodec) ComponentTokenCount() (int32, error) {
	return tc.GetInt32(tokenComponentTokenCountOffset, primitive.LittleEndianOrder)
}

func (tc *TokenCodec) PutComponentTokenCount(v int32) error {
	return tc.PutInt32(tokenComponentTokenCountOffset, primitive.LittleEndianOrder, v)
}

func (tc *TokenCodec) Signal() (Signal, error) {
	v, err := tc.GetUint8(tokenSignalOffset)
	return Signal(v), err
}

func (tc *TokenCodec) PutSignal(s Signal) error {
	return tc.PutUint8(tokenSignalOffset, uint8(s))
}

func (tc *TokenCodec) PrimitiveType() (primitive.Type, error) {
	v, err := tc.GetUint8(tokenPrimitiveTypeOffset)
	return primitive.Type(v), err
}

func (tc *TokenCodec) PutPrimitiveType(t primitive.Type) error {
	return tc.PutUint8(tokenPrimitiveTypeOffset, uint8(t))
}

func (tc *TokenCodec) ByteOrder() (primitive.ByteOrder, error) {
	v, err := tc.GetUint8(tokenByteOrderOffset)
	return primitive.ByteOrder(v), err
}

func (tc *TokenCodec) PutByteOrder(o primitive.ByteOrder) error {
	return tc.PutUint8(tokenByteOrderOffset, uint8(o))
}

func (tc *TokenCodec) Presence() (Presence, error) {
	v, err := tc.GetUint8(tokenPresenceOffset)
	return Presence(v), err
}

func (tc *TokenCodec) PutPresence(p Presence) error {
	return tc.PutUint8(tokenPresenceOffset, uint8(p))
}

// varDataFieldOrder is the fixed order the ten string fields follow a
// Token's fixed block on the wire, grounded on TokenCodec.h's field
// declaration order.
var varDataFieldOrder = []func(*Token) *string{
	func(t *Token) *string { return &t.Name },
	func(t *Token) *string { return &t.ConstValue },
	func(t *Token) *string { return &t.MinValue },
	func(t *Token) *string { return &t.MaxValue },
	func(t *Token) *string { return &t.NullValue },
	func(t *Token) *string { return &t.CharacterEncoding },
	func(t *Token) *string { return &t.Epoch },
	func(t *Token) *string { return &t.TimeUnit },
	func(t *Token) *string { return &t.SemanticType },
	func(t *Token) *string { return &t.Description },
}

// PutToken writes tok as a complete Token message: fixed block then the
// ten var-data string fields in wire order.
func PutToken(buf []byte, offset int, tok Token) (int, error) {
	tc := NewTokenCodec()
	if err := tc.WrapForEncode(buf, offset); err != nil {
		return 0, err
	}

	if err := tc.PutTokenOffset(int32(tok.Offset)); err != nil {
		return 0, err
	}
	if err := tc.PutTokenSize(int32(tok.EncodedLength)); err != nil {
		return 0, err
	}
	if err := tc.PutSchemaID(int32(tok.FieldID)); err != nil {
		return 0, err
	}
	if err := tc.PutTokenVersion(int32(tok.TokenVersion)); err != nil {
		return 0, err
	}
	if err := tc.PutComponentTokenCount(int32(tok.ComponentTokenCount)); err != nil {
		return 0, err
	}
	if err := tc.PutSignal(tok.Signal); err != nil {
		return 0, err
	}
	if err := tc.PutPrimitiveType(tok.PrimitiveType); err != nil {
		return 0, err
	}
	if err := tc.PutByteOrder(tok.ByteOrder); err != nil {
		return 0, err
	}
	if err := tc.PutPresence(tok.Presence); err != nil {
		return 0, err
	}

	tokCopy := tok
	for _, field := range varDataFieldOrder {
		if err := flyweight.PutVarData(&tc.Message, []byte(*field(&tokCopy)), flyweight.VarDataLayoutUint8()); err != nil {
			return 0, err
		}
	}

	return tc.Cursor().Position() - offset, nil
}

// GetToken reads one Token message starting at offset, returning the
// decoded Token and the number of bytes consumed.
func GetToken(buf []byte, offset, actingBlockLength int, actingVersion uint16) (Token, int, error) {
	tc := NewTokenCodec()
	if err := tc.WrapForDecode(buf, offset, actingBlockLength, actingVersion); err != nil {
		return Token{}, 0, err
	}

	var tok Token
	var err error

	fields := []struct {
		name string
		fn   func() error
	}{
		{"tokenOffset", func() error { v, e := tc.TokenOffset(); tok.Offset = int(v); return e }},
		{"tokenSize", func() error { v, e := tc.TokenSize(); tok.EncodedLength = int(v); return e }},
		{"schemaId", func() error { v, e := tc.SchemaID(); tok.FieldID = int(v); return e }},
		{"tokenVersion", func() error { v, e := tc.TokenVersion(); tok.TokenVersion = uint16(v); return e }},
		{"componentTokenCount", func() error { v, e := tc.ComponentTokenCount(); tok.ComponentTokenCount = int(v); return e }},
		{"signal", func() error { v, e := tc.Signal(); tok.Signal = v; return e }},
		{"primitiveType", func() error { v, e := tc.PrimitiveType(); tok.PrimitiveType = v; return e }},
		{"byteOrder", func() error { v, e := tc.ByteOrder(); tok.ByteOrder = v; return e }},
		{"presence", func() error { v, e := tc.Presence(); tok.Presence = v; return e }},
	}
	for _, f := range fields {
		if err = f.fn(); err != nil {
			return Token{}, 0, fmt.Errorf("ir: token %s: %w", f.name, err)
		}
	}

	for _, field := range varDataFieldOrder {
		data, err := flyweight.GetVarData(&tc.Message, flyweight.VarDataLayoutUint8())
		if err != nil {
			return Token{}, 0, err
		}
		*field(&tok) = string(data)
	}

	if tok.ComponentTokenCount < 0 {
		return Token{}, 0, fmt.Errorf("ir: token at offset %d: negative componentTokenCount: %w", offset, errs.ErrMalformedIR)
	}

	return tok, tc.Cursor().Position() - offset, nil
}
