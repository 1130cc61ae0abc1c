package flyweight

import (
	"fmt"

	"github.com/sbeio/gosbe/primitive"
)

// VarDataLayout describes one variable-data field's length prefix (Open
// Question — var-data length-prefix width: 1, 2, or 4 bytes, sourced from
// the schema, never assumed).
type VarDataLayout struct {
	LengthType primitive.Type
	Order      primitive.ByteOrder
}

// VarDataLayoutUint8 is the common case: a single-byte length prefix
// (e.g. mebo's VarStringEncoder convention, §4.1).
func VarDataLayoutUint8() VarDataLayout {
	return VarDataLayout{LengthType: primitive.TypeUint8, Order: primitive.LittleEndianOrder}
}

// VarDataLayoutUint16 is SBE's other common case: a two-byte length prefix.
func VarDataLayoutUint16() VarDataLayout {
	return VarDataLayout{LengthType: primitive.TypeUint16, Order: primitive.LittleEndianOrder}
}

// PutVarData writes a length-prefixed variable-data field on parent: the
// prefix first, then the payload, advancing the shared cursor past both
// (§4.1 "Variable-data accessor", encode).
func PutVarData(parent cursorHost, data []byte, layout VarDataLayout) error {
	cursor := parent.Cursor()
	view := parent.View()
	cursor.Claim()

	prefixWidth := layout.LengthType.Size()
	maxLen := maxUintOfType(layout.LengthType)
	if uint64(len(data)) > maxLen {
		return fmt.Errorf("flyweight: var-data length %d exceeds %s prefix capacity %d", len(data), layout.LengthType, maxLen)
	}

	prefixOffset, err := cursor.Take(prefixWidth)
	if err != nil {
		return err
	}
	if err := writeUintField(view, prefixOffset, layout.LengthType, layout.Order, uint64(len(data))); err != nil {
		return err
	}

	payloadOffset, err := cursor.Take(len(data))
	if err != nil {
		return err
	}
	dst, err := view.Slice(payloadOffset, len(data))
	if err != nil {
		return err
	}
	copy(dst, data)

	return nil
}

// peekVarDataLength reads the length prefix of a variable-data field at
// the current cursor position without consuming it.
func peekVarDataLength(parent cursorHost, layout VarDataLayout) (int, error) {
	cursor := parent.Cursor()
	view := parent.View()

	data, err := view.Slice(cursor.Position(), layout.LengthType.Size())
	if err != nil {
		return 0, err
	}
	n, err := primitive.ReadUint(layout.LengthType, layout.Order, data)
	if err != nil {
		return 0, err
	}

	return int(n), nil
}

// GetVarData reads a length-prefixed variable-data field from parent and
// returns a zero-copy slice over its payload, advancing the shared cursor
// past both the prefix and the payload (§4.1 "Variable-data accessor",
// decode). The returned slice aliases the underlying buffer and is valid
// only until the buffer is reused.
func GetVarData(parent cursorHost, layout VarDataLayout) ([]byte, error) {
	cursor := parent.Cursor()
	view := parent.View()
	cursor.Claim()

	length, err := peekVarDataLength(parent, layout)
	if err != nil {
		return nil, err
	}
	if _, err := cursor.Take(layout.LengthType.Size()); err != nil {
		return nil, err
	}

	payloadOffset, err := cursor.Take(length)
	if err != nil {
		return nil, err
	}

	return view.Slice(payloadOffset, length)
}

// CopyVarData reads a length-prefixed variable-data field from parent into
// dst, copying at most len(dst) bytes and returning the number of bytes
// the field actually held (which may exceed len(dst); the caller can
// detect truncation by comparing). The cursor still advances by the full
// field length regardless of dst's capacity (§4.1).
func CopyVarData(parent cursorHost, dst []byte, layout VarDataLayout) (copied int, total int, err error) {
	src, err := GetVarData(parent, layout)
	if err != nil {
		return 0, 0, err
	}

	n := copy(dst, src)

	return n, len(src), nil
}
