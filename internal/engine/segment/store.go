package segment

// Store is the rune storage owned by a leaf buffer.
// A Store is immutable once created; ranges hand out views into it but
// never copies.
type Store struct {
	runes []rune
}

// NewStore creates a store holding the runes of s.
func NewStore(s string) *Store {
	return &Store{runes: []rune(s)}
}

// NewStoreRunes creates a store that takes ownership of r.
// The caller must not modify r afterwards.
func NewStoreRunes(r []rune) *Store {
	return &Store{runes: r}
}

// Len returns the number of runes in the store.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.runes)
}

// At returns the rune at offset i. The caller is responsible for bounds.
func (s *Store) At(i int) rune {
	return s.runes[i]
}

// Full returns a range covering the whole store.
func (s *Store) Full() Range {
	return Range{Store: s, Begin: 0, End: s.Len()}
}

// String returns the store's text.
func (s *Store) String() string {
	if s == nil {
		return ""
	}
	return string(s.runes)
}
