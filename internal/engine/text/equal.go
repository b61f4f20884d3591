package text

import (
	"iter"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// Equal reports whether a and b hold the same text, regardless of how
// their segment maps are laid out. A nil buffer holds no text.
func Equal(a, b Buffer) bool {
	if bufferLen(a) != bufferLen(b) {
		return false
	}
	if a == nil || b == nil || a.ID() == b.ID() {
		return true
	}

	next, stop := iter.Pull(Chunks(b))
	defer stop()

	var rest []rune
	for chunk := range Chunks(a) {
		for len(chunk) > 0 {
			if len(rest) == 0 {
				var ok bool
				if rest, ok = next(); !ok {
					return false
				}
				continue
			}
			n := min(len(chunk), len(rest))
			if !slices.Equal(chunk[:n], rest[:n]) {
				return false
			}
			chunk, rest = chunk[n:], rest[n:]
		}
	}
	return true
}

// Fingerprint returns a 64-bit hash of b's text.
// Buffers with equal text have equal fingerprints.
func Fingerprint(b Buffer) uint64 {
	d := xxhash.New()
	// Digest writes never fail.
	_, _ = WriteTo(d, b)
	return d.Sum64()
}
