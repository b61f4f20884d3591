package text

import (
	"fmt"

	"github.com/dshills/txed/internal/engine/segment"
)

// Replacement is a buffer defined as base with [cutFrom, cutTo) replaced by
// patch's [patchFrom, patchTo). Its segment map is computed once at
// construction and references the same leaf storage as base and patch.
//
// A Replacement keeps base and patch reachable for as long as it lives.
type Replacement struct {
	core
	base      Buffer
	patch     Buffer
	cutFrom   int
	cutTo     int
	patchFrom int
	patchTo   int
}

// NewReplacement creates the buffer base[:cutFrom] + patch[patchFrom:patchTo] + base[cutTo:].
//
// Returns ErrPrecondition if either buffer is nil or either span is not
// within its buffer. No buffer is returned on error.
func NewReplacement(base Buffer, cutFrom, cutTo int, patch Buffer, patchFrom, patchTo int, opts ...Option) (*Replacement, error) {
	if base == nil || patch == nil {
		return nil, fmt.Errorf("%w: nil base or patch buffer", ErrPrecondition)
	}
	st := newSettings(opts)

	segs, err := segment.Compose(base.Segments(), cutFrom, cutTo, patch.Segments(), patchFrom, patchTo, st.segmentOptions())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPrecondition, err)
	}
	if st.validate {
		if err := segment.Validate(segs); err != nil {
			st.logger.Error("composed segment map failed validation",
				"base", base.ID(), "patch", patch.ID(), "error", err)
			return nil, fmt.Errorf("%w: %w", ErrPrecondition, err)
		}
	}

	r := &Replacement{
		core:      newCore(segs),
		base:      base,
		patch:     patch,
		cutFrom:   cutFrom,
		cutTo:     cutTo,
		patchFrom: patchFrom,
		patchTo:   patchTo,
	}
	st.logger.Debug("replacement composed",
		"id", r.id,
		"base", base.ID(),
		"cut_from", cutFrom,
		"cut_to", cutTo,
		"patch", patch.ID(),
		"patch_from", patchFrom,
		"patch_to", patchTo,
		"length", segs.Len(),
		"segments", segs.Count())
	return r, nil
}

// NewReplacementAt is NewReplacement with positions given as iterators.
// The base is the buffer of cutFrom and cutTo; the patch is the buffer of
// patchFrom and patchTo. Returns ErrIteratorMismatch if either pair spans
// two buffers.
func NewReplacementAt(cutFrom, cutTo, patchFrom, patchTo Iterator, opts ...Option) (*Replacement, error) {
	if cutFrom.buf == nil || patchFrom.buf == nil {
		return nil, fmt.Errorf("%w: iterator without buffer", ErrPrecondition)
	}
	if !cutFrom.sameBuffer(cutTo) {
		return nil, fmt.Errorf("%w: cut iterators", ErrIteratorMismatch)
	}
	if !patchFrom.sameBuffer(patchTo) {
		return nil, fmt.Errorf("%w: patch iterators", ErrIteratorMismatch)
	}
	return NewReplacement(cutFrom.buf, cutFrom.pos, cutTo.pos, patchFrom.buf, patchFrom.pos, patchTo.pos, opts...)
}

// Base returns the buffer this replacement was cut from.
func (r *Replacement) Base() Buffer {
	return r.base
}

// Patch returns the buffer the inserted runes were taken from.
func (r *Replacement) Patch() Buffer {
	return r.patch
}

// Cut returns the replaced span of the base.
func (r *Replacement) Cut() (from, to int) {
	return r.cutFrom, r.cutTo
}

// PatchSpan returns the span of the patch that was inserted.
func (r *Replacement) PatchSpan() (from, to int) {
	return r.patchFrom, r.patchTo
}

// Begin returns an iterator positioned at offset 0.
func (r *Replacement) Begin() Iterator {
	return Iterator{buf: r}
}

// End returns an iterator positioned at Len().
func (r *Replacement) End() Iterator {
	return Iterator{buf: r, pos: r.Len()}
}
