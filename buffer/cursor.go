package buffer

// Cursor is the single monotonic position pointer shared by a message
// flyweight and its active child (Invariant 1: cursor monotonicity). It is
// never copied between flyweights — it is threaded by pointer so a group
// or var-data child can advance the same position its parent will resume
// reading from.
type Cursor struct {
	view *View
	pos  int
	// epoch increments each time a new child claims the cursor, letting a
	// previously returned child (Entry, Group) detect it has been
	// superseded (Invariant 2: at-most-one-active-child; Open Question —
	// mutable group-decoder reuse).
	epoch uint64
}

// NewCursor creates a cursor over view, starting at start.
func NewCursor(view *View, start int) *Cursor {
	return &Cursor{view: view, pos: start}
}

// View returns the buffer view this cursor walks.
func (c *Cursor) View() *View { return c.view }

// Position returns the current byte offset.
func (c *Cursor) Position() int { return c.pos }

// Epoch returns the cursor's current generation, incremented by Claim.
func (c *Cursor) Epoch() uint64 { return c.epoch }

// Claim bumps the cursor's epoch, invalidating any previously issued child
// that checks it. Called whenever a message opens a new group or var-data
// child, committing the previous child's final position (Invariant 2).
func (c *Cursor) Claim() uint64 {
	c.epoch++

	return c.epoch
}

// Advance moves the cursor forward by n bytes after checking that doing so
// stays within the view's usable length. n must be >= 0: the cursor never
// moves backward (Invariant 1).
func (c *Cursor) Advance(n int) error {
	if n < 0 {
		n = 0
	}
	if err := c.view.CheckBounds(c.pos, n); err != nil {
		return err
	}
	c.pos += n

	return nil
}

// Take reserves n bytes starting at the cursor's current position,
// advances the cursor past them, and returns the starting offset. The
// caller slices view.Bytes()[offset:offset+n] (via View.Slice) to access
// the reserved region.
func (c *Cursor) Take(n int) (offset int, err error) {
	offset = c.pos
	if err := c.Advance(n); err != nil {
		return 0, err
	}

	return offset, nil
}
