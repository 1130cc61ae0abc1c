package flyweight

import (
	"fmt"

	"github.com/sbeio/gosbe/buffer"
	"github.com/sbeio/gosbe/errs"
)

// Message is the root flyweight a generated message type embeds (C11). It
// holds non-owning references to a buffer view and the cursor shared with
// its (at most one, at a time) active group or var-data child.
//
// Message does not implement the schema-defined field set itself — a
// concrete message type (see examplemsg/car) embeds Message and adds typed
// accessors computed at its own declared field offsets, the same way a
// generated SBE class would.
type Message struct {
	fixedBlock
	cursor            *buffer.Cursor
	schemaBlockLength int
	actingBlockLength int
	actingVersion     uint16
}

// NewMessage constructs an unwrapped Message. Call WrapForEncode or
// WrapForDecode before use.
func NewMessage() *Message {
	return &Message{}
}

// WrapForEncode binds m to buf at offset, ready to write a new message
// whose fixed block is schemaBlockLength bytes (§4.1 "Wrap-for-encode").
// The cursor starts at offset+schemaBlockLength, past the fixed block.
func (m *Message) WrapForEncode(buf []byte, offset, schemaBlockLength int) error {
	view, err := buffer.NewView(buf, len(buf))
	if err != nil {
		return err
	}
	if err := view.CheckBounds(offset, schemaBlockLength); err != nil {
		return fmt.Errorf("flyweight: wrap for encode: %w", err)
	}

	m.view = view
	m.base = offset
	m.schemaBlockLength = schemaBlockLength
	m.actingBlockLength = schemaBlockLength
	m.actingVersion = 0
	m.cursor = buffer.NewCursor(view, offset+schemaBlockLength)

	return nil
}

// WrapForDecode binds m to buf at offset for reading a message encoded
// with the given actingBlockLength and actingVersion (§4.1
// "Wrap-for-decode"). The cursor starts at offset+actingBlockLength: the
// schema's own block length is not used to position the cursor, only the
// sender's (Invariant 5, schema evolution).
func (m *Message) WrapForDecode(buf []byte, offset, actingBlockLength int, actingVersion uint16, schemaBlockLength int) error {
	view, err := buffer.NewView(buf, len(buf))
	if err != nil {
		return err
	}
	if err := view.CheckBounds(offset, actingBlockLength); err != nil {
		return fmt.Errorf("flyweight: wrap for decode: %w", err)
	}

	m.view = view
	m.base = offset
	m.schemaBlockLength = schemaBlockLength
	m.actingBlockLength = actingBlockLength
	m.actingVersion = actingVersion
	m.cursor = buffer.NewCursor(view, offset+actingBlockLength)

	return nil
}

// Cursor returns the shared cursor (implements cursorHost).
func (m *Message) Cursor() *buffer.Cursor { return m.cursor }

// View returns the wrapped buffer view (implements cursorHost).
func (m *Message) View() *buffer.View { return m.view }

// ActingVersion returns the version advertised by the message currently
// being decoded (0 while encoding, since an encoder always writes the
// compiled schema's current version).
func (m *Message) ActingVersion() uint16 { return m.actingVersion }

// ActingBlockLength returns the fixed-block length advertised by the
// message currently being decoded.
func (m *Message) ActingBlockLength() int { return m.actingBlockLength }

// SchemaBlockLength returns the compiled schema's fixed-block length.
func (m *Message) SchemaBlockLength() int { return m.schemaBlockLength }

// Present reports whether a field at fieldOffset/fieldSize, added in
// sinceVersion, is present given this message's acting version and acting
// block length (Invariant 5; wraps the package-level Present helper).
func (m *Message) Present(sinceVersion uint16, fieldOffset, fieldSize int) bool {
	return Present(sinceVersion, m.actingVersion, fieldOffset, fieldSize, m.actingBlockLength)
}

// ensureWrapped is a defensive guard used by Group/VarData constructors:
// a nil cursor means WrapForEncode/WrapForDecode was never called.
func (m *Message) ensureWrapped() error {
	if m.cursor == nil {
		return errs.ErrNoActiveChild
	}

	return nil
}
