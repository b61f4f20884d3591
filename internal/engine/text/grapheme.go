package text

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// graphemeWindow is the initial number of runes examined when looking for
// a grapheme cluster boundary. It doubles until a boundary is found.
const graphemeWindow = 32

// GraphemeCount returns the number of extended grapheme clusters in b.
func GraphemeCount(b Buffer) int {
	return uniseg.GraphemeClusterCount(b.String())
}

// NextGrapheme returns an iterator moved forward past the grapheme cluster
// that starts at the current position.
func (it Iterator) NextGrapheme() (Iterator, error) {
	if it.buf == nil || it.pos < 0 || it.pos >= it.buf.Len() {
		return it, outOfRange(it.pos, bufferLen(it.buf))
	}
	length := it.buf.Len()
	for window := graphemeWindow; ; window *= 2 {
		end := min(it.pos+window, length)
		s, err := Slice(it.buf, it.pos, end)
		if err != nil {
			return it, err
		}
		cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
		n := utf8.RuneCountInString(cluster)
		if n < end-it.pos || end == length {
			return it.Add(n), nil
		}
	}
}

// PrevGrapheme returns an iterator moved backward to the start of the
// grapheme cluster that ends at the current position.
func (it Iterator) PrevGrapheme() (Iterator, error) {
	if it.buf == nil || it.pos <= 0 || it.pos > it.buf.Len() {
		return it, outOfRange(it.pos-1, bufferLen(it.buf))
	}
	start := it.pos
	for window := graphemeWindow; ; window *= 2 {
		var err error
		start, err = graphemeAnchor(it.buf, max(min(start-1, it.pos-window), 0))
		if err != nil {
			return it, err
		}
		s, err := Slice(it.buf, start, it.pos)
		if err != nil {
			return it, err
		}

		last, offset, state := start, start, -1
		for len(s) > 0 {
			var cluster string
			cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
			last = offset
			offset += utf8.RuneCountInString(cluster)
		}
		// Boundaries after an anchor are exact. The anchor itself is only
		// known to be a boundary at offset 0.
		if last > start || start == 0 {
			return Iterator{buf: it.buf, pos: last}, nil
		}
	}
}

// graphemeAnchor moves pos back to the nearest rune at which segmentation
// can restart without seeing earlier text.
func graphemeAnchor(b Buffer, pos int) (int, error) {
	for ; pos > 0; pos-- {
		r, err := b.At(pos)
		if err != nil {
			return 0, err
		}
		if restartsSegmentation(r) {
			break
		}
	}
	return pos, nil
}

// restartsSegmentation reports whether r is neither a regional indicator
// nor a rune that joins the cluster before it. Flag pairing and emoji ZWJ
// sequences look back through such runes.
func restartsSegmentation(r rune) bool {
	if r < utf8.RuneSelf {
		return true
	}
	if r >= 0x1F1E6 && r <= 0x1F1FF {
		return false
	}
	return uniseg.GraphemeClusterCount("a"+string(r)) == 2
}

func bufferLen(b Buffer) int {
	if b == nil {
		return 0
	}
	return b.Len()
}
