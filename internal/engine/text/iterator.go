package text

import "fmt"

// Iterator is a position within a buffer.
// It does not own the buffer. Movement never fails; an iterator outside
// [0, Len()) only fails when dereferenced.
//
// Iterators are comparable and subtractable only when they belong to the
// same buffer, as determined by the buffer's ID.
type Iterator struct {
	buf Buffer
	pos int
}

// Buffer returns the buffer the iterator points into.
func (it Iterator) Buffer() Buffer {
	return it.buf
}

// Pos returns the absolute offset of the iterator.
func (it Iterator) Pos() int {
	return it.pos
}

// Value returns the rune at the iterator's position.
func (it Iterator) Value() (rune, error) {
	if it.buf == nil {
		return 0, outOfRange(it.pos, 0)
	}
	return it.buf.At(it.pos)
}

// Add returns an iterator moved forward by d (backward if d is negative).
func (it Iterator) Add(d int) Iterator {
	it.pos += d
	return it
}

// Sub returns an iterator moved backward by d.
func (it Iterator) Sub(d int) Iterator {
	it.pos -= d
	return it
}

// Next returns an iterator moved forward by one rune.
func (it Iterator) Next() Iterator {
	return it.Add(1)
}

// Prev returns an iterator moved backward by one rune.
func (it Iterator) Prev() Iterator {
	return it.Add(-1)
}

// IsBegin reports whether the iterator is at offset 0.
func (it Iterator) IsBegin() bool {
	return it.pos == 0
}

// IsEnd reports whether the iterator is at Len().
func (it Iterator) IsEnd() bool {
	if it.buf == nil {
		return it.pos == 0
	}
	return it.pos == it.buf.Len()
}

// Distance returns it - other in runes.
func (it Iterator) Distance(other Iterator) (int, error) {
	if !it.sameBuffer(other) {
		return 0, mismatch(it, other)
	}
	return it.pos - other.pos, nil
}

// Compare returns -1, 0 or +1 as it is before, at or after other.
func (it Iterator) Compare(other Iterator) (int, error) {
	d, err := it.Distance(other)
	if err != nil {
		return 0, err
	}
	switch {
	case d < 0:
		return -1, nil
	case d > 0:
		return 1, nil
	}
	return 0, nil
}

// Equal reports whether both iterators are at the same position.
func (it Iterator) Equal(other Iterator) (bool, error) {
	c, err := it.Compare(other)
	return c == 0 && err == nil, err
}

// NotEqual reports whether the iterators are at different positions.
func (it Iterator) NotEqual(other Iterator) (bool, error) {
	c, err := it.Compare(other)
	return c != 0 && err == nil, err
}

// Less reports whether it is before other.
func (it Iterator) Less(other Iterator) (bool, error) {
	c, err := it.Compare(other)
	return c < 0, err
}

// LessEqual reports whether it is at or before other.
func (it Iterator) LessEqual(other Iterator) (bool, error) {
	c, err := it.Compare(other)
	return c <= 0 && err == nil, err
}

// Greater reports whether it is after other.
func (it Iterator) Greater(other Iterator) (bool, error) {
	c, err := it.Compare(other)
	return c > 0, err
}

// GreaterEqual reports whether it is at or after other.
func (it Iterator) GreaterEqual(other Iterator) (bool, error) {
	c, err := it.Compare(other)
	return c >= 0 && err == nil, err
}

func (it Iterator) sameBuffer(other Iterator) bool {
	return it.buf != nil && other.buf != nil && it.buf.ID() == other.buf.ID()
}

func mismatch(a, b Iterator) error {
	return fmt.Errorf("%w: %s and %s", ErrIteratorMismatch, bufferName(a.buf), bufferName(b.buf))
}

func bufferName(b Buffer) string {
	if b == nil {
		return "<nil>"
	}
	return b.ID().String()
}
