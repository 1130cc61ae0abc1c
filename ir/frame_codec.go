package ir

import (
	"github.com/sbeio/gosbe/flyweight"
	"github.com/sbeio/gosbe/primitive"
)

// FrameBlockLength is the Frame message's fixed-block size: three int32
// fields (§3 "IR collection" envelope, grounded on
// uk_co_real_logic_sbe_ir_generated/FrameCodec.hpp).
const FrameBlockLength = 12

// FrameTemplateID is the Frame message's templateId on the wire.
const FrameTemplateID uint16 = 1

const (
	frameIrIDOffset         = 0
	frameIrVersionOffset    = 4
	frameSchemaVersionOffset = 8
)

// FrameCodec encodes/decodes the Frame message: the envelope that precedes
// a Collection's Token stream in a .sbeir file, carrying the IR format
// version, the compiled schema version, and package/namespace/semantic-
// version metadata as variable-length UTF-8 fields. The IR is self-hosting:
// this is an ordinary flyweight-based message type, not special-cased
// machinery.
type FrameCodec struct {
	flyweight.Message
}

// NewFrameCodec returns an unwrapped FrameCodec.
func NewFrameCodec() *FrameCodec {
	return &FrameCodec{Message: *flyweight.NewMessage()}
}

// WrapForEncode prepares fc to write a new Frame at offset in buf.
func (fc *FrameCodec) WrapForEncode(buf []byte, offset int) error {
	return fc.Message.WrapForEncode(buf, offset, FrameBlockLength)
}

// WrapForDecode prepares fc to read a Frame at offset in buf.
func (fc *FrameCodec) WrapForDecode(buf []byte, offset, actingBlockLength int, actingVersion uint16) error {
	return fc.Message.WrapForDecode(buf, offset, actingBlockLength, actingVersion, FrameBlockLength)
}

// IrVersion is the IR wire-format version (not the application schema
// version) the Token stream following this Frame is encoded in.
func (fc *FrameCodec) IrVersion() (int32, error) {
	return fc.GetInt32(frameIrVersionOffset, primitive.LittleEndianOrder)
}

// PutIrVersion writes the IR wire-format version.
func (fc *FrameCodec) PutIrVersion(v int32) error {
	return fc.PutInt32(frameIrVersionOffset, primitive.LittleEndianOrder, v)
}

// IrID is an identifier for the specific IR stream instance, left to the
// writer's discretion (e.g. a generation counter or a checksum seed).
func (fc *FrameCodec) IrID() (int32, error) {
	return fc.GetInt32(frameIrIDOffset, primitive.LittleEndianOrder)
}

// PutIrID writes the IR stream identifier.
func (fc *FrameCodec) PutIrID(v int32) error {
	return fc.PutInt32(frameIrIDOffset, primitive.LittleEndianOrder, v)
}

// SchemaVersion is the application schema's own version, the same integer
// spec.md's acting-version rules operate on.
func (fc *FrameCodec) SchemaVersion() (int32, error) {
	return fc.GetInt32(frameSchemaVersionOffset, primitive.LittleEndianOrder)
}

// PutSchemaVersion writes the application schema's version.
func (fc *FrameCodec) PutSchemaVersion(v int32) error {
	return fc.PutInt32(frameSchemaVersionOffset, primitive.LittleEndianOrder, v)
}

// PutPackageName writes the schema's package name as UTF-8 var-data.
func (fc *FrameCodec) PutPackageName(name string) error {
	return flyweight.PutVarData(&fc.Message, []byte(name), flyweight.VarDataLayoutUint8())
}

// PackageName reads the schema's package name.
func (fc *FrameCodec) PackageName() (string, error) {
	data, err := flyweight.GetVarData(&fc.Message, flyweight.VarDataLayoutUint8())
	return string(data), err
}

// PutNamespaceName writes the schema's namespace name as UTF-8 var-data.
func (fc *FrameCodec) PutNamespaceName(name string) error {
	return flyweight.PutVarData(&fc.Message, []byte(name), flyweight.VarDataLayoutUint8())
}

// NamespaceName reads the schema's namespace name.
func (fc *FrameCodec) NamespaceName() (string, error) {
	data, err := flyweight.GetVarData(&fc.Message, flyweight.VarDataLayoutUint8())
	return string(data), err
}

// PutSemanticVersion writes the schema's semantic-version string as UTF-8
// var-data (consumed by IsCompatible once parsed with blang/semver).
func (fc *FrameCodec) PutSemanticVersion(v string) error {
	return flyweight.PutVarData(&fc.Message, []byte(v), flyweight.VarDataLayoutUint8())
}

// SemanticVersion reads the schema's semantic-version string.
func (fc *FrameCodec) SemanticVersion() (string, error) {
	data, err := flyweight.GetVarData(&fc.Message, flyweight.VarDataLayoutUint8())
	return string(data), err
}
