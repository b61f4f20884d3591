package text

// Insert returns base with s inserted at offset at.
func Insert(base Buffer, at int, s string, opts ...Option) (*Replacement, error) {
	patch := NewLeaf(s, opts...)
	return NewReplacement(base, at, at, patch, 0, patch.Len(), opts...)
}

// Delete returns base with [from, to) removed.
func Delete(base Buffer, from, to int, opts ...Option) (*Replacement, error) {
	return NewReplacement(base, from, to, Empty(), 0, 0, opts...)
}

// ReplaceString returns base with [from, to) replaced by s.
func ReplaceString(base Buffer, from, to int, s string, opts ...Option) (*Replacement, error) {
	patch := NewLeaf(s, opts...)
	return NewReplacement(base, from, to, patch, 0, patch.Len(), opts...)
}
