package segment

import "fmt"

// Range is a reference to the runes [Begin, End) of a Store.
// Ranges are only ever narrowed; the runes they cover are never copied.
type Range struct {
	Store *Store
	Begin int
	End   int
}

// Len returns the number of runes the range covers.
func (r Range) Len() int {
	return r.End - r.Begin
}

// IsEmpty returns true if the range covers no runes.
func (r Range) IsEmpty() bool {
	return r.End <= r.Begin
}

// At returns the rune at offset i relative to the start of the range.
func (r Range) At(i int) rune {
	return r.Store.At(r.Begin + i)
}

// Runes returns a view of the covered runes that shares the store's
// backing array. The slice capacity is clipped so appends cannot reach
// into the store. Callers must treat the result as read-only.
func (r Range) Runes() []rune {
	if r.IsEmpty() {
		return nil
	}
	return r.Store.runes[r.Begin:r.End:r.End]
}

// String returns the covered text.
func (r Range) String() string {
	return string(r.Runes())
}

// Narrow returns the sub-range [from, to) relative to the start of r.
// The result references the same store.
func (r Range) Narrow(from, to int) Range {
	return Range{Store: r.Store, Begin: r.Begin + from, End: r.Begin + to}
}

// Adjoins reports whether next continues r in the same store without a gap.
func (r Range) Adjoins(next Range) bool {
	return r.Store == next.Store && r.End == next.Begin
}

// GoString implements fmt.GoStringer for debugging output.
func (r Range) GoString() string {
	return fmt.Sprintf("segment.Range{%p [%d:%d]}", r.Store, r.Begin, r.End)
}
