package text

import (
	"fmt"
	"strings"

	"github.com/dshills/txed/internal/engine/segment"
	"github.com/google/uuid"
)

// Buffer is an immutable text value.
// Offsets and lengths are counted in runes.
type Buffer interface {
	// ID returns the buffer's identity handle.
	ID() uuid.UUID

	// Len returns the number of runes in the buffer.
	Len() int

	// At returns the rune at offset i, read in place from the leaf
	// storage that owns it. Returns ErrOutOfRange if i is outside [0, Len()).
	At(i int) (rune, error)

	// Begin returns an iterator positioned at offset 0.
	Begin() Iterator

	// End returns an iterator positioned at Len().
	End() Iterator

	// String materializes the full content.
	String() string

	// Segments returns the buffer's segment map.
	Segments() segment.Map
}

// core holds the state shared by every buffer variant: an identity and
// an eagerly built segment map.
type core struct {
	id   uuid.UUID
	segs segment.Map
}

func newCore(segs segment.Map) core {
	return core{id: uuid.New(), segs: segs}
}

// ID returns the buffer's identity handle.
func (c *core) ID() uuid.UUID {
	return c.id
}

// Len returns the number of runes in the buffer.
func (c *core) Len() int {
	return c.segs.Len()
}

// At returns the rune at offset i.
func (c *core) At(i int) (rune, error) {
	r, ok := c.segs.RuneAt(i)
	if !ok {
		return 0, outOfRange(i, c.segs.Len())
	}
	return r, nil
}

// String materializes the full content.
func (c *core) String() string {
	var sb strings.Builder
	sb.Grow(c.segs.Len())
	for _, e := range c.segs.All() {
		for _, r := range e.Range.Runes() {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Segments returns the buffer's segment map.
func (c *core) Segments() segment.Map {
	return c.segs
}

func outOfRange(i, length int) error {
	return fmt.Errorf("%w: offset %d, length %d", ErrOutOfRange, i, length)
}
