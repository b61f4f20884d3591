package text

import (
	"fmt"
	"io"
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/dshills/txed/internal/engine/segment"
)

// String returns the full content of b. A nil buffer yields "".
func String(b Buffer) string {
	if b == nil {
		return ""
	}
	return b.String()
}

// Slice returns the text of b in [from, to).
func Slice(b Buffer, from, to int) (string, error) {
	if b == nil {
		return "", fmt.Errorf("%w: nil buffer", ErrPrecondition)
	}
	segs, err := segment.Slice(b.Segments(), from, to, segment.Options{})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrOutOfRange, err)
	}
	var sb strings.Builder
	sb.Grow(to - from)
	for _, e := range segs.All() {
		for _, r := range e.Range.Runes() {
			sb.WriteRune(r)
		}
	}
	return sb.String(), nil
}

// Chunks returns an iterator over the runs of runes that make up b, one per
// segment. Each run is a view of leaf storage and must not be modified.
// A nil buffer yields nothing.
func Chunks(b Buffer) iter.Seq[[]rune] {
	return func(yield func([]rune) bool) {
		if b == nil {
			return
		}
		for _, e := range b.Segments().All() {
			if !yield(e.Range.Runes()) {
				return
			}
		}
	}
}

// Runes returns an iterator over the offsets and runes of b.
func Runes(b Buffer) iter.Seq2[int, rune] {
	return func(yield func(int, rune) bool) {
		offset := 0
		for chunk := range Chunks(b) {
			for _, r := range chunk {
				if !yield(offset, r) {
					return
				}
				offset++
			}
		}
	}
}

// WriteTo writes the UTF-8 encoding of b to w one segment at a time.
func WriteTo(w io.Writer, b Buffer) (int64, error) {
	var (
		total int64
		buf   []byte
	)
	for chunk := range Chunks(b) {
		buf = buf[:0]
		for _, r := range chunk {
			buf = utf8.AppendRune(buf, r)
		}
		n, err := w.Write(buf)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
