package text

import "github.com/dshills/txed/internal/engine/segment"

// Leaf is a buffer that owns its runes directly.
// Its segment map has a single entry covering the whole store.
type Leaf struct {
	core
	store *segment.Store
}

// NewLeaf creates a leaf buffer holding s.
func NewLeaf(s string, opts ...Option) *Leaf {
	st := newSettings(opts)
	if st.normalize {
		s = st.form.String(s)
	}
	return newLeaf(segment.NewStore(s))
}

// Empty returns a new leaf with no text.
func Empty() *Leaf {
	return newLeaf(segment.NewStoreRunes(nil))
}

func newLeaf(store *segment.Store) *Leaf {
	return &Leaf{
		core:  newCore(segment.FromRange(store.Full())),
		store: store,
	}
}

// At returns the rune at offset i.
func (l *Leaf) At(i int) (rune, error) {
	if i < 0 || i >= l.store.Len() {
		return 0, outOfRange(i, l.store.Len())
	}
	return l.store.At(i), nil
}

// String returns the leaf's text.
func (l *Leaf) String() string {
	return l.store.String()
}

// Begin returns an iterator positioned at offset 0.
func (l *Leaf) Begin() Iterator {
	return Iterator{buf: l}
}

// End returns an iterator positioned at Len().
func (l *Leaf) End() Iterator {
	return Iterator{buf: l, pos: l.Len()}
}
