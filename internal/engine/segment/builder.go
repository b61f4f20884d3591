package segment

// Builder accumulates entries into a new Map.
// Zero-length ranges are dropped. When coalescing is enabled, a range that
// continues the previous entry's range in the same store is merged into it.
type Builder struct {
	entries  []Entry
	end      int
	coalesce bool
}

// NewBuilder creates a builder with room for capacity entries.
func NewBuilder(capacity int, coalesce bool) *Builder {
	return &Builder{
		entries:  make([]Entry, 0, capacity),
		coalesce: coalesce,
	}
}

// Append adds r after everything appended so far.
func (b *Builder) Append(r Range) {
	b.push(Entry{End: b.end + r.Len(), Range: r})
}

// AppendMap adds every entry of m after everything appended so far.
func (b *Builder) AppendMap(m Map) {
	for _, e := range m.entries {
		b.Append(e.Range)
	}
}

// Len returns the number of runes appended so far.
func (b *Builder) Len() int {
	return b.end
}

// Build returns the accumulated map. The builder must not be used afterwards.
func (b *Builder) Build() Map {
	entries := b.entries
	b.entries = nil
	if len(entries) == 0 {
		return Map{}
	}
	return Map{entries: entries}
}

// appendEntries adds already-offset entries. Each entry must start where
// the builder currently ends.
func (b *Builder) appendEntries(entries []Entry) {
	for _, e := range entries {
		b.push(e)
	}
}

func (b *Builder) push(e Entry) {
	if e.Range.IsEmpty() {
		return
	}
	if b.coalesce && len(b.entries) > 0 {
		last := &b.entries[len(b.entries)-1]
		if last.Range.Adjoins(e.Range) {
			last.Range.End = e.Range.End
			last.End = e.End
			b.end = e.End
			return
		}
	}
	b.entries = append(b.entries, e)
	b.end = e.End
}
