package segment

import (
	"iter"
	"slices"
	"sort"
)

// Entry is one element of a segment map.
// End is the cumulative end offset of the entry in the owning buffer;
// Range is where the entry's runes live.
type Entry struct {
	End   int
	Range Range
}

// Start returns the offset in the owning buffer at which the entry begins.
func (e Entry) Start() int {
	return e.End - e.Range.Len()
}

// Len returns the number of runes the entry covers.
func (e Entry) Len() int {
	return e.Range.Len()
}

// Map is an ordered partition of [0, Len) into source ranges.
// Maps are immutable values; the entry slice is never modified after a
// Map is built, so maps can be shared freely.
type Map struct {
	entries []Entry
}

// FromRange creates a map with a single entry covering r.
// An empty range yields an empty map.
func FromRange(r Range) Map {
	if r.IsEmpty() {
		return Map{}
	}
	return Map{entries: []Entry{{End: r.Len(), Range: r}}}
}

// Len returns the total number of runes described by the map.
func (m Map) Len() int {
	if len(m.entries) == 0 {
		return 0
	}
	return m.entries[len(m.entries)-1].End
}

// Count returns the number of entries.
func (m Map) Count() int {
	return len(m.entries)
}

// IsEmpty returns true if the map describes no text.
func (m Map) IsEmpty() bool {
	return len(m.entries) == 0
}

// Entry returns the entry at index i.
func (m Map) Entry(i int) Entry {
	return m.entries[i]
}

// Entries returns a copy of the entries.
func (m Map) Entries() []Entry {
	return slices.Clone(m.entries)
}

// All returns an iterator over the entries in offset order.
func (m Map) All() iter.Seq2[int, Entry] {
	return func(yield func(int, Entry) bool) {
		for i, e := range m.entries {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Find returns the index of the entry containing offset, or -1 if offset
// is outside [0, Len). It is an upper-bound binary search over End.
func (m Map) Find(offset int) int {
	if offset < 0 || offset >= m.Len() {
		return -1
	}
	return sort.Search(len(m.entries), func(i int) bool {
		return m.entries[i].End > offset
	})
}

// RuneAt returns the rune at offset, read in place from the owning store.
// Returns 0 and false if offset is out of range.
func (m Map) RuneAt(offset int) (rune, bool) {
	idx := m.Find(offset)
	if idx < 0 {
		return 0, false
	}
	e := m.entries[idx]
	return e.Range.At(offset - e.Start()), true
}

// Stores returns the distinct stores referenced by the map, in first-use order.
func (m Map) Stores() []*Store {
	var stores []*Store
	seen := make(map[*Store]struct{}, len(m.entries))
	for _, e := range m.entries {
		if _, ok := seen[e.Range.Store]; ok {
			continue
		}
		seen[e.Range.Store] = struct{}{}
		stores = append(stores, e.Range.Store)
	}
	return stores
}
