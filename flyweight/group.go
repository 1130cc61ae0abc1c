package flyweight

import (
	"fmt"

	"github.com/sbeio/gosbe/buffer"
	"github.com/sbeio/gosbe/errs"
	"github.com/sbeio/gosbe/primitive"
)

// DimensionsLayout describes the composite preceding a repeating group's
// entries (§3 "Dimensions header"). The runtime never assumes a fixed
// shape for it (Open Question — dimensions header composite shape):
// generated code passes a compile-time-constant layout; the OTF decoder
// derives one from the IR's dimensions-composite tokens.
type DimensionsLayout struct {
	BlockLengthOffset int
	BlockLengthType   primitive.Type
	NumInGroupOffset  int
	NumInGroupType    primitive.Type
	HeaderLength      int
	Order             primitive.ByteOrder
}

// DefaultDimensionsLayout is the canonical default of §6: a 2-byte
// blockLength followed by a 2-byte numInGroup, little-endian, 4 bytes
// total.
func DefaultDimensionsLayout() DimensionsLayout {
	return DimensionsLayout{
		BlockLengthOffset: 0,
		BlockLengthType:   primitive.TypeUint16,
		NumInGroupOffset:  2,
		NumInGroupType:    primitive.TypeUint16,
		HeaderLength:      4,
		Order:             primitive.LittleEndianOrder,
	}
}

// Group is the C4 repeating-group flyweight: it owns the shared cursor for
// as long as it is being iterated and hands out one Entry per element.
type Group struct {
	view             *buffer.View
	cursor           *buffer.Cursor
	layout           DimensionsLayout
	entryBlockLength int
	count            int
	index            int
	epoch            uint64
}

// SetCount begins encoding a repeating group on parent: it writes the
// dimensions header (blockLength=entryBlockLength, numInGroup=n) at the
// cursor, then advances the cursor past it (§4.1 Group flyweight, encode;
// Invariant 3: group header precedes entries).
func SetCount(parent cursorHost, n uint16, entryBlockLength int, layout DimensionsLayout) (*Group, error) {
	if uint64(n) > maxUintOfType(layout.NumInGroupType) {
		return nil, fmt.Errorf("flyweight: group count %d: %w", n, errs.ErrGroupCountOverflow)
	}

	cursor := parent.Cursor()
	view := parent.View()
	epoch := cursor.Claim()

	headerOffset, err := cursor.Take(layout.HeaderLength)
	if err != nil {
		return nil, err
	}

	if err := writeUintField(view, headerOffset+layout.BlockLengthOffset, layout.BlockLengthType, layout.Order, uint64(entryBlockLength)); err != nil {
		return nil, err
	}
	if err := writeUintField(view, headerOffset+layout.NumInGroupOffset, layout.NumInGroupType, layout.Order, uint64(n)); err != nil {
		return nil, err
	}

	return &Group{
		view:             view,
		cursor:           cursor,
		layout:           layout,
		entryBlockLength: entryBlockLength,
		count:            int(n),
		index:            -1,
		epoch:            epoch,
	}, nil
}

// GetGroup begins decoding a repeating group on parent: it reads the
// dimensions header at the cursor (discovering the acting entry block
// length and entry count from the wire, not the schema) and advances the
// cursor past it (§4.1 Group flyweight, decode).
func GetGroup(parent cursorHost, layout DimensionsLayout) (*Group, error) {
	cursor := parent.Cursor()
	view := parent.View()
	epoch := cursor.Claim()

	headerOffset, err := cursor.Take(layout.HeaderLength)
	if err != nil {
		return nil, err
	}

	blockLength, err := readUintField(view, headerOffset+layout.BlockLengthOffset, layout.BlockLengthType, layout.Order)
	if err != nil {
		return nil, err
	}
	numInGroup, err := readUintField(view, headerOffset+layout.NumInGroupOffset, layout.NumInGroupType, layout.Order)
	if err != nil {
		return nil, err
	}

	return &Group{
		view:             view,
		cursor:           cursor,
		layout:           layout,
		entryBlockLength: int(blockLength),
		count:            int(numInGroup),
		index:            -1,
		epoch:            epoch,
	}, nil
}

// Count returns numInGroup (entry count), known on both encode and decode.
func (g *Group) Count() int { return g.count }

// EntryBlockLength returns the fixed-block length of one entry (the
// dimensions header's blockLength field).
func (g *Group) EntryBlockLength() int { return g.entryBlockLength }

// Next advances to the next entry, returning a flyweight positioned at its
// fixed block. Advancing past a prior, not-yet-fully-consumed entry is the
// caller's responsibility: after the caller has read the entry's own
// nested groups/var-data (if any) the shared cursor naturally points at
// the following entry's fixed block, and Next's own advance-by-
// entryBlockLength assumes only the entry's flat fields were consumed
// directly through it (§4.1's "Group entry" algorithm).
//
// The group is the cursor's legitimate owner across its whole iteration:
// an entry's own var-data or nested group claims the cursor (bumping its
// epoch) as part of normal traversal, not supersession, so Next re-asserts
// ownership with its own Claim rather than treating that as staleness.
// Only a retained Entry checks for supersession (Open Question — mutable
// group-decoder reuse): its methods return ErrStaleEntry once a later
// Next call has moved the group past it.
func (g *Group) Next() (*Entry, error) {
	if g.index+1 >= g.count {
		return nil, errs.ErrGroupExhausted
	}

	base, err := g.cursor.Take(g.entryBlockLength)
	if err != nil {
		return nil, err
	}

	g.index++
	g.epoch = g.cursor.Claim()

	return &Entry{
		fixedBlock: fixedBlock{view: g.view, base: base},
		cursor:     g.cursor,
		group:      g,
		epoch:      g.epoch,
	}, nil
}

// Entry is one element of a repeating group: a fixed block plus, via the
// shared cursor, access to its own nested groups and var-data.
type Entry struct {
	fixedBlock
	cursor *buffer.Cursor
	group  *Group
	epoch  uint64
}

// Cursor returns the shared cursor (implements cursorHost), letting
// nested groups/var-data within this entry thread through it.
func (e *Entry) Cursor() *buffer.Cursor {
	return e.cursor
}

// View returns the shared buffer view (implements cursorHost).
func (e *Entry) View() *buffer.View {
	return e.fixedBlock.view
}

// checkFresh reports ErrStaleEntry once the parent group has advanced past
// this entry (via a later Next call).
func (e *Entry) checkFresh() error {
	if e.cursor.Epoch() != e.epoch {
		return errs.ErrStaleEntry
	}

	return nil
}

func maxUintOfType(t primitive.Type) uint64 {
	switch t {
	case primitive.TypeUint8:
		return 0xFF
	case primitive.TypeUint16:
		return 0xFFFF
	case primitive.TypeUint32:
		return 0xFFFFFFFF
	default:
		return ^uint64(0)
	}
}

func readUintField(view *buffer.View, offset int, t primitive.Type, order primitive.ByteOrder) (uint64, error) {
	data, err := view.Slice(offset, t.Size())
	if err != nil {
		return 0, err
	}

	return primitive.ReadUint(t, order, data)
}

func writeUintField(view *buffer.View, offset int, t primitive.Type, order primitive.ByteOrder, v uint64) error {
	data, err := view.Slice(offset, t.Size())
	if err != nil {
		return err
	}

	return primitive.Write(t, order, data, v)
}
