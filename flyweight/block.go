// Package flyweight implements C2 (fixed-block flyweight), C4 (repeating
// group flyweight), C5 (variable-data accessor), and the contract C11
// requires generated message types to obey (§4.1).
//
// A flyweight holds no data of its own beyond a buffer reference, a cursor
// reference, and a base offset; every "field" is a computed offset into the
// caller's buffer (see the Glossary's "Flyweight" entry). This mirrors
// mebo's blob.NumericBlob family, generalized from mebo's fixed time-series
// column layout to SBE's schema-driven fixed block + group + var-data
// layout.
package flyweight

import (
	"github.com/sbeio/gosbe/buffer"
	"github.com/sbeio/gosbe/primitive"
)

// cursorHost is implemented by any flyweight that can host a child group or
// var-data accessor: the root Message and a group's Entry. Both share one
// Cursor and one View (Invariant 1/2).
type cursorHost interface {
	Cursor() *buffer.Cursor
	View() *buffer.View
}

// fixedBlock is the shared implementation behind Message's and Entry's
// fixed-block field accessors: a view, a base offset within it, and the
// primitive-level get/put helpers every typed accessor funnels through.
type fixedBlock struct {
	view *buffer.View
	base int
}

func (b *fixedBlock) getRaw(fieldOffset int, t primitive.Type, order primitive.ByteOrder) (uint64, error) {
	data, err := b.view.Slice(b.base+fieldOffset, t.Size())
	if err != nil {
		return 0, err
	}

	return primitive.Read(t, order, data)
}

func (b *fixedBlock) putRaw(fieldOffset int, t primitive.Type, order primitive.ByteOrder, raw uint64) error {
	data, err := b.view.Slice(b.base+fieldOffset, t.Size())
	if err != nil {
		return err
	}

	return primitive.Write(t, order, data, raw)
}

// Base returns the fixed block's base offset within the shared buffer.
func (b *fixedBlock) Base() int { return b.base }

// GetUint8 reads an unsigned 8-bit field at fieldOffset.
func (b *fixedBlock) GetUint8(fieldOffset int) (uint8, error) {
	raw, err := b.getRaw(fieldOffset, primitive.TypeUint8, primitive.LittleEndianOrder)
	return uint8(raw), err
}

// PutUint8 writes an unsigned 8-bit field at fieldOffset.
func (b *fixedBlock) PutUint8(fieldOffset int, v uint8) error {
	return b.putRaw(fieldOffset, primitive.TypeUint8, primitive.LittleEndianOrder, uint64(v))
}

// GetUint16 reads an unsigned 16-bit field at fieldOffset in the given byte order.
func (b *fixedBlock) GetUint16(fieldOffset int, order primitive.ByteOrder) (uint16, error) {
	raw, err := b.getRaw(fieldOffset, primitive.TypeUint16, order)
	return uint16(raw), err
}

// PutUint16 writes an unsigned 16-bit field at fieldOffset in the given byte order.
func (b *fixedBlock) PutUint16(fieldOffset int, order primitive.ByteOrder, v uint16) error {
	return b.putRaw(fieldOffset, primitive.TypeUint16, order, uint64(v))
}

// GetUint32 reads an unsigned 32-bit field at fieldOffset in the given byte order.
func (b *fixedBlock) GetUint32(fieldOffset int, order primitive.ByteOrder) (uint32, error) {
	raw, err := b.getRaw(fieldOffset, primitive.TypeUint32, order)
	return uint32(raw), err
}

// PutUint32 writes an unsigned 32-bit field at fieldOffset in the given byte order.
func (b *fixedBlock) PutUint32(fieldOffset int, order primitive.ByteOrder, v uint32) error {
	return b.putRaw(fieldOffset, primitive.TypeUint32, order, uint64(v))
}

// GetUint64 reads an unsigned 64-bit field at fieldOffset in the given byte order.
func (b *fixedBlock) GetUint64(fieldOffset int, order primitive.ByteOrder) (uint64, error) {
	return b.getRaw(fieldOffset, primitive.TypeUint64, order)
}

// PutUint64 writes an unsigned 64-bit field at fieldOffset in the given byte order.
func (b *fixedBlock) PutUint64(fieldOffset int, order primitive.ByteOrder, v uint64) error {
	return b.putRaw(fieldOffset, primitive.TypeUint64, order, v)
}

// GetInt8 reads a signed 8-bit field at fieldOffset.
func (b *fixedBlock) GetInt8(fieldOffset int) (int8, error) {
	raw, err := b.getRaw(fieldOffset, primitive.TypeInt8, primitive.LittleEndianOrder)
	return int8(raw), err
}

// PutInt8 writes a signed 8-bit field at fieldOffset.
func (b *fixedBlock) PutInt8(fieldOffset int, v int8) error {
	return b.putRaw(fieldOffset, primitive.TypeInt8, primitive.LittleEndianOrder, uint64(uint8(v)))
}

// GetInt16 reads a signed 16-bit field at fieldOffset in the given byte order.
func (b *fixedBlock) GetInt16(fieldOffset int, order primitive.ByteOrder) (int16, error) {
	raw, err := b.getRaw(fieldOffset, primitive.TypeInt16, order)
	return int16(raw), err
}

// PutInt16 writes a signed 16-bit field at fieldOffset in the given byte order.
func (b *fixedBlock) PutInt16(fieldOffset int, order primitive.ByteOrder, v int16) error {
	return b.putRaw(fieldOffset, primitive.TypeInt16, order, uint64(uint16(v)))
}

// GetInt32 reads a signed 32-bit field at fieldOffset in the given byte order.
func (b *fixedBlock) GetInt32(fieldOffset int, order primitive.ByteOrder) (int32, error) {
	raw, err := b.getRaw(fieldOffset, primitive.TypeInt32, order)
	return int32(raw), err
}

// PutInt32 writes a signed 32-bit field at fieldOffset in the given byte order.
func (b *fixedBlock) PutInt32(fieldOffset int, order primitive.ByteOrder, v int32) error {
	return b.putRaw(fieldOffset, primitive.TypeInt32, order, uint64(uint32(v)))
}

// GetInt64 reads a signed 64-bit field at fieldOffset in the given byte order.
func (b *fixedBlock) GetInt64(fieldOffset int, order primitive.ByteOrder) (int64, error) {
	raw, err := b.getRaw(fieldOffset, primitive.TypeInt64, order)
	return int64(raw), err
}

// PutInt64 writes a signed 64-bit field at fieldOffset in the given byte order.
func (b *fixedBlock) PutInt64(fieldOffset int, order primitive.ByteOrder, v int64) error {
	return b.putRaw(fieldOffset, primitive.TypeInt64, order, uint64(v))
}

// GetFloat32 reads a 32-bit IEEE float field at fieldOffset in the given byte order.
func (b *fixedBlock) GetFloat32(fieldOffset int, order primitive.ByteOrder) (float32, error) {
	raw, err := b.getRaw(fieldOffset, primitive.TypeFloat32, order)
	if err != nil {
		return 0, err
	}

	return bitsToFloat32(uint32(raw)), nil
}

// PutFloat32 writes a 32-bit IEEE float field at fieldOffset in the given byte order.
func (b *fixedBlock) PutFloat32(fieldOffset int, order primitive.ByteOrder, v float32) error {
	return b.putRaw(fieldOffset, primitive.TypeFloat32, order, uint64(float32ToBits(v)))
}

// GetFloat64 reads a 64-bit IEEE float field at fieldOffset in the given byte order.
func (b *fixedBlock) GetFloat64(fieldOffset int, order primitive.ByteOrder) (float64, error) {
	raw, err := b.getRaw(fieldOffset, primitive.TypeFloat64, order)
	if err != nil {
		return 0, err
	}

	return float64FromBits(raw), nil
}

// PutFloat64 writes a 64-bit IEEE float field at fieldOffset in the given byte order.
func (b *fixedBlock) PutFloat64(fieldOffset int, order primitive.ByteOrder, v float64) error {
	return b.putRaw(fieldOffset, primitive.TypeFloat64, order, float64ToBits(v))
}

// GetChar reads a single-byte char field at fieldOffset.
func (b *fixedBlock) GetChar(fieldOffset int) (byte, error) {
	raw, err := b.getRaw(fieldOffset, primitive.TypeChar, primitive.LittleEndianOrder)
	return byte(raw), err
}

// PutChar writes a single-byte char field at fieldOffset.
func (b *fixedBlock) PutChar(fieldOffset int, v byte) error {
	return b.putRaw(fieldOffset, primitive.TypeChar, primitive.LittleEndianOrder, uint64(v))
}

// GetBytes reads a fixed-length raw byte array field (e.g. a char[N]
// composite element) at fieldOffset.
func (b *fixedBlock) GetBytes(fieldOffset, length int) ([]byte, error) {
	return b.view.Slice(b.base+fieldOffset, length)
}

// PutBytes writes a fixed-length raw byte array field at fieldOffset,
// zero-padding if data is shorter than length and truncating if longer.
func (b *fixedBlock) PutBytes(fieldOffset, length int, data []byte) error {
	dst, err := b.view.Slice(b.base+fieldOffset, length)
	if err != nil {
		return err
	}

	n := copy(dst, data)
	for i := n; i < length; i++ {
		dst[i] = 0
	}

	return nil
}
