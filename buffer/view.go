// Package buffer implements C3 (the variable-region cursor) and C6 (the
// bounds checker): a caller-owned byte slice wrapped in a View, walked by a
// single monotonic Cursor that every flyweight in a message — the root
// message, its groups, its var-data — shares.
//
// Grounded on internal/pool's ByteBuffer (Slice/SetLength/Extend), adapted
// from a growable write buffer into a fixed-length, bounds-checked
// read/write window with an explicit cursor, since SBE never grows a
// buffer — it only ever validates a caller-supplied one.
package buffer

import (
	"fmt"

	"github.com/sbeio/gosbe/errs"
)

// View pairs a caller-owned byte slice with the usable length within it.
// Length may be less than len(Bytes()) when the caller allocated a larger
// buffer than the message needs; every access still validates against
// Length, never against cap.
type View struct {
	buf    []byte
	length int
}

// NewView wraps buf, treating the first length bytes as usable. length
// must not exceed len(buf).
func NewView(buf []byte, length int) (*View, error) {
	if length < 0 || length > len(buf) {
		return nil, fmt.Errorf("buffer: length %d exceeds backing slice of %d: %w", length, len(buf), errs.ErrBufferTooShort)
	}

	return &View{buf: buf, length: length}, nil
}

// Bytes returns the full backing slice. Callers should prefer Slice for
// bounds-checked access.
func (v *View) Bytes() []byte { return v.buf }

// Len returns the usable length of the view.
func (v *View) Len() int { return v.length }

// CheckBounds validates that [offset, offset+need) lies within the usable
// length, returning ErrBufferTooShort otherwise.
func (v *View) CheckBounds(offset, need int) error {
	if offset < 0 || need < 0 || offset+need > v.length {
		return fmt.Errorf("buffer: access [%d,%d) exceeds length %d: %w", offset, offset+need, v.length, errs.ErrBufferTooShort)
	}

	return nil
}

// Slice returns buf[offset:offset+need] after a bounds check.
func (v *View) Slice(offset, need int) ([]byte, error) {
	if err := v.CheckBounds(offset, need); err != nil {
		return nil, err
	}

	return v.buf[offset : offset+need], nil
}
