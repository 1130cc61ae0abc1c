// Package otf implements C9 (the on-the-fly message-header decoder) and
// C10 (the on-the-fly message body decoder): decoding SBE messages purely
// by walking an ir.Token list at runtime, without any schema-specific
// generated code.
package otf

import (
	"fmt"

	"github.com/sbeio/gosbe/errs"
	"github.com/sbeio/gosbe/ir"
	"github.com/sbeio/gosbe/primitive"
)

// HeaderDecoder reads the four standard message-header fields
// (blockLength, templateId, schemaId, version) from the envelope that
// precedes every message's fixed block, locating each by name within the
// header composite's token list rather than assuming a fixed shape
// (grounded on OtfHeaderDecoder.h's name-matching table build).
type HeaderDecoder struct {
	encodedLength int

	blockLengthOffset int
	blockLengthType   primitive.Type
	blockLengthOrder  primitive.ByteOrder

	templateIDOffset int
	templateIDType   primitive.Type
	templateIDOrder  primitive.ByteOrder

	schemaIDOffset int
	schemaIDType   primitive.Type
	schemaIDOrder  primitive.ByteOrder

	versionOffset int
	versionType   primitive.Type
	versionOrder  primitive.ByteOrder
}

// NewHeaderDecoder builds a HeaderDecoder from the header composite's
// token list (tokens[0] is the BeginComposite token for "messageHeader";
// its EncodedLength is the header's total size).
func NewHeaderDecoder(tokens []ir.Token) (*HeaderDecoder, error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("otf: empty header token list: %w", errs.ErrMalformedIR)
	}

	hd := &HeaderDecoder{encodedLength: tokens[0].EncodedLength}

	found := map[string]bool{}
	for _, tok := range tokens {
		switch tok.Name {
		case "blockLength":
			hd.blockLengthOffset, hd.blockLengthType, hd.blockLengthOrder = tok.Offset, tok.PrimitiveType, tok.ByteOrder
			found["blockLength"] = true
		case "templateId":
			hd.templateIDOffset, hd.templateIDType, hd.templateIDOrder = tok.Offset, tok.PrimitiveType, tok.ByteOrder
			found["templateId"] = true
		case "schemaId":
			hd.schemaIDOffset, hd.schemaIDType, hd.schemaIDOrder = tok.Offset, tok.PrimitiveType, tok.ByteOrder
			found["schemaId"] = true
		case "version":
			hd.versionOffset, hd.versionType, hd.versionOrder = tok.Offset, tok.PrimitiveType, tok.ByteOrder
			found["version"] = true
		}
	}

	for _, name := range []string{"blockLength", "templateId", "schemaId", "version"} {
		if !found[name] {
			return nil, fmt.Errorf("otf: header composite missing %q field: %w", name, errs.ErrMalformedIR)
		}
	}

	return hd, nil
}

// EncodedLength returns the header composite's total size in bytes.
func (hd *HeaderDecoder) EncodedLength() int { return hd.encodedLength }

func readHeaderField(buf []byte, offset int, t primitive.Type, order primitive.ByteOrder) (uint64, error) {
	size := t.Size()
	if offset < 0 || offset+size > len(buf) {
		return 0, fmt.Errorf("otf: header field at offset %d size %d: %w", offset, size, errs.ErrBufferTooShort)
	}

	return primitive.ReadUint(t, order, buf[offset:offset+size])
}

// BlockLength reads the acting message's fixed-block length from header.
func (hd *HeaderDecoder) BlockLength(header []byte) (uint64, error) {
	return readHeaderField(header, hd.blockLengthOffset, hd.blockLengthType, hd.blockLengthOrder)
}

// TemplateID reads the acting message's templateId from header.
func (hd *HeaderDecoder) TemplateID(header []byte) (uint64, error) {
	return readHeaderField(header, hd.templateIDOffset, hd.templateIDType, hd.templateIDOrder)
}

// SchemaID reads the schema's identifying id from header.
func (hd *HeaderDecoder) SchemaID(header []byte) (uint64, error) {
	return readHeaderField(header, hd.schemaIDOffset, hd.schemaIDType, hd.schemaIDOrder)
}

// Version reads the acting schema version from header.
func (hd *HeaderDecoder) Version(header []byte) (uint64, error) {
	return readHeaderField(header, hd.versionOffset, hd.versionType, hd.versionOrder)
}
