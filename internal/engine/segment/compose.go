package segment

import "fmt"

// Options configures map construction.
type Options struct {
	// Coalesce merges adjacent entries that reference contiguous runes of
	// the same store.
	Coalesce bool
}

// Compose builds the map of base with [cutFrom, cutTo) replaced by
// patch's [patchFrom, patchTo).
//
// The result is the concatenation of three pieces:
//   - base restricted to [0, cutFrom), offsets unchanged
//   - patch restricted to [patchFrom, patchTo), shifted by cutFrom-patchFrom
//   - base restricted to [cutTo, base.Len()), shifted by
//     cutFrom+(patchTo-patchFrom)-cutTo
//
// Returns ErrInvalidBounds if either span is not contained in its map.
func Compose(base Map, cutFrom, cutTo int, patch Map, patchFrom, patchTo int, opts Options) (Map, error) {
	if err := checkSpan("cut", cutFrom, cutTo, base.Len()); err != nil {
		return Map{}, err
	}
	if err := checkSpan("patch", patchFrom, patchTo, patch.Len()); err != nil {
		return Map{}, err
	}

	patchLen := patchTo - patchFrom
	prefix := restrict(base, 0, cutFrom)
	middle := shift(restrict(patch, patchFrom, patchTo), cutFrom-patchFrom)
	postfix := shift(restrict(base, cutTo, base.Len()), cutFrom+patchLen-cutTo)

	b := NewBuilder(len(prefix)+len(middle)+len(postfix), opts.Coalesce)
	b.appendEntries(prefix)
	b.appendEntries(middle)
	b.appendEntries(postfix)
	return b.Build(), nil
}

// Slice returns m restricted to [from, to) and rebased to start at zero.
func Slice(m Map, from, to int, opts Options) (Map, error) {
	if err := checkSpan("slice", from, to, m.Len()); err != nil {
		return Map{}, err
	}
	entries := shift(restrict(m, from, to), -from)
	b := NewBuilder(len(entries), opts.Coalesce)
	b.appendEntries(entries)
	return b.Build(), nil
}

// Concat returns the map of a followed by b.
func Concat(a, b Map, opts Options) Map {
	bld := NewBuilder(a.Count()+b.Count(), opts.Coalesce)
	bld.AppendMap(a)
	bld.AppendMap(b)
	return bld.Build()
}

// restrict returns the entries of m clipped to [from, to) with offsets
// unchanged. Entries straddling a boundary are narrowed, not copied.
// The caller guarantees 0 <= from <= to <= m.Len().
func restrict(m Map, from, to int) []Entry {
	if from >= to {
		return nil
	}
	first := m.Find(from)
	last := m.Find(to - 1)

	out := make([]Entry, 0, last-first+1)
	for _, e := range m.entries[first : last+1] {
		start := e.Start()
		lo := max(start, from)
		hi := min(e.End, to)
		out = append(out, Entry{
			End:   hi,
			Range: e.Range.Narrow(lo-start, hi-start),
		})
	}
	return out
}

// shift moves every entry by delta in place and returns the slice.
func shift(entries []Entry, delta int) []Entry {
	if delta == 0 {
		return entries
	}
	for i := range entries {
		entries[i].End += delta
	}
	return entries
}

func checkSpan(what string, from, to, length int) error {
	if from < 0 || to < from || to > length {
		return fmt.Errorf("%w: %s [%d, %d) not within [0, %d]", ErrInvalidBounds, what, from, to, length)
	}
	return nil
}
