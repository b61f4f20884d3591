package text

import (
	"fmt"

	"github.com/dshills/txed/internal/engine/segment"
)

// Selection is a read-only window onto [from, to) of a base buffer,
// rebased to start at offset 0.
type Selection struct {
	core
	base Buffer
	from int
	to   int
}

// NewSelection creates a buffer containing base[from:to].
// Returns ErrPrecondition if base is nil or the span is not within base.
func NewSelection(base Buffer, from, to int, opts ...Option) (*Selection, error) {
	if base == nil {
		return nil, fmt.Errorf("%w: nil base buffer", ErrPrecondition)
	}
	st := newSettings(opts)

	segs, err := segment.Slice(base.Segments(), from, to, st.segmentOptions())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPrecondition, err)
	}
	if st.validate {
		if err := segment.Validate(segs); err != nil {
			st.logger.Error("selected segment map failed validation", "base", base.ID(), "error", err)
			return nil, fmt.Errorf("%w: %w", ErrPrecondition, err)
		}
	}

	return &Selection{
		core: newCore(segs),
		base: base,
		from: from,
		to:   to,
	}, nil
}

// Base returns the buffer the selection was taken from.
func (s *Selection) Base() Buffer {
	return s.base
}

// Span returns the selected span of the base.
func (s *Selection) Span() (from, to int) {
	return s.from, s.to
}

// Begin returns an iterator positioned at offset 0.
func (s *Selection) Begin() Iterator {
	return Iterator{buf: s}
}

// End returns an iterator positioned at Len().
func (s *Selection) End() Iterator {
	return Iterator{buf: s, pos: s.Len()}
}

var (
	_ Buffer = (*Leaf)(nil)
	_ Buffer = (*Replacement)(nil)
	_ Buffer = (*Selection)(nil)
)
