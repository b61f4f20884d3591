package text

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/dshills/txed/internal/engine/segment"
	"golang.org/x/text/unicode/norm"
)

func mustReplace(t *testing.T, base Buffer, cutFrom, cutTo int, patch Buffer, patchFrom, patchTo int) *Replacement {
	t.Helper()
	r, err := NewReplacement(base, cutFrom, cutTo, patch, patchFrom, patchTo, WithValidation(true))
	if err != nil {
		t.Fatalf("NewReplacement(%d, %d, %d, %d): %v", cutFrom, cutTo, patchFrom, patchTo, err)
	}
	return r
}

func TestNewLeaf(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"single char", "a"},
		{"short string", "hello"},
		{"with newline", "hello\nworld"},
		{"unicode", "hello 世界 🌍"},
		{"long string", strings.Repeat("abcdefghij", 100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLeaf(tt.input)
			if l.String() != tt.input {
				t.Errorf("String() = %q, want %q", l.String(), tt.input)
			}
			if l.Len() != utf8.RuneCountInString(tt.input) {
				t.Errorf("Len() = %d, want %d", l.Len(), utf8.RuneCountInString(tt.input))
			}
			if utf8.RuneCountInString(String(l)) != l.Len() {
				t.Errorf("rune count of String() differs from Len()")
			}
			if err := segment.Validate(l.Segments()); err != nil {
				t.Errorf("Validate: %v", err)
			}
		})
	}
}

func TestLeafNormalization(t *testing.T) {
	decomposed := "e\u0301"
	l := NewLeaf(decomposed, WithNormalization(norm.NFC))
	if l.String() != "\u00e9" {
		t.Errorf("String() = %q, want %q", l.String(), "\u00e9")
	}
	if l.Len() != 1 {
		t.Errorf("Len() = %d, want 1", l.Len())
	}

	raw := NewLeaf(decomposed)
	if raw.Len() != 2 {
		t.Errorf("without normalization Len() = %d, want 2", raw.Len())
	}
}

func TestAt(t *testing.T) {
	leaf := NewLeaf("héllo")
	repl := mustReplace(t, leaf, 1, 2, NewLeaf("ë"), 0, 1)

	for _, b := range []Buffer{leaf, repl} {
		want := []rune(b.String())
		for i, w := range want {
			got, err := b.At(i)
			if err != nil {
				t.Fatalf("At(%d): %v", i, err)
			}
			if got != w {
				t.Errorf("At(%d) = %q, want %q", i, got, w)
			}
		}
		for _, i := range []int{-1, b.Len(), b.Len() + 10} {
			if _, err := b.At(i); !errors.Is(err, ErrOutOfRange) {
				t.Errorf("At(%d) err = %v, want ErrOutOfRange", i, err)
			}
		}
	}

	if _, err := Empty().At(0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Empty().At(0) err = %v, want ErrOutOfRange", err)
	}
}

func TestReplacement(t *testing.T) {
	tests := []struct {
		name      string
		base      string
		cutFrom   int
		cutTo     int
		patch     string
		patchFrom int
		patchTo   int
	}{
		{"replace word", "Hello world", 6, 11, "there", 0, 5},
		{"insert", "Hello world", 5, 5, ",", 0, 1},
		{"delete", "Hello world", 5, 11, "", 0, 0},
		{"patch slice", "abcdef", 1, 5, "0123456789", 2, 8},
		{"empty base", "", 0, 0, "new", 0, 3},
		{"empty everything", "", 0, 0, "", 0, 0},
		{"unicode", "日本語テキスト", 2, 4, "🎉🎊", 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := NewLeaf(tt.base)
			patch := NewLeaf(tt.patch)
			r := mustReplace(t, base, tt.cutFrom, tt.cutTo, patch, tt.patchFrom, tt.patchTo)

			br := []rune(tt.base)
			pr := []rune(tt.patch)
			want := string(br[:tt.cutFrom]) + string(pr[tt.patchFrom:tt.patchTo]) + string(br[tt.cutTo:])

			if r.String() != want {
				t.Errorf("String() = %q, want %q", r.String(), want)
			}
			wantLen := base.Len() - (tt.cutTo - tt.cutFrom) + (tt.patchTo - tt.patchFrom)
			if r.Len() != wantLen {
				t.Errorf("Len() = %d, want %d", r.Len(), wantLen)
			}
			if base.String() != tt.base {
				t.Errorf("base changed to %q", base.String())
			}
			if r.Base() != Buffer(base) || r.Patch() != Buffer(patch) {
				t.Error("Base()/Patch() should return the constructor arguments")
			}
			if from, to := r.Cut(); from != tt.cutFrom || to != tt.cutTo {
				t.Errorf("Cut() = %d, %d", from, to)
			}
			if from, to := r.PatchSpan(); from != tt.patchFrom || to != tt.patchTo {
				t.Errorf("PatchSpan() = %d, %d", from, to)
			}
		})
	}
}

func TestReplacementPrecondition(t *testing.T) {
	base := NewLeaf("hello")
	patch := NewLeaf("xy")

	tests := []struct {
		name                               string
		cutFrom, cutTo, patchFrom, patchTo int
	}{
		{"cut from negative", -1, 2, 0, 1},
		{"cut inverted", 4, 2, 0, 1},
		{"cut past end", 0, 6, 0, 1},
		{"patch inverted", 0, 1, 2, 1},
		{"patch past end", 0, 1, 1, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReplacement(base, tt.cutFrom, tt.cutTo, patch, tt.patchFrom, tt.patchTo)
			if !errors.Is(err, ErrPrecondition) {
				t.Errorf("err = %v, want ErrPrecondition", err)
			}
			if !errors.Is(err, segment.ErrInvalidBounds) {
				t.Errorf("err = %v, want wrapped segment.ErrInvalidBounds", err)
			}
			if r != nil {
				t.Error("no buffer should be returned on error")
			}
		})
	}

	if _, err := NewReplacement(nil, 0, 0, patch, 0, 0); !errors.Is(err, ErrPrecondition) {
		t.Errorf("nil base err = %v, want ErrPrecondition", err)
	}
	if _, err := NewReplacement(base, 0, 0, nil, 0, 0); !errors.Is(err, ErrPrecondition) {
		t.Errorf("nil patch err = %v, want ErrPrecondition", err)
	}
}

func TestEmptyReplacementIsNoop(t *testing.T) {
	base := NewLeaf("unchanged text")
	for i := 0; i <= base.Len(); i++ {
		r := mustReplace(t, base, i, i, NewLeaf("anything"), 0, 0)
		if r.String() != base.String() {
			t.Errorf("at %d: String() = %q, want %q", i, r.String(), base.String())
		}
		if r.Segments().Count() != 1 {
			t.Errorf("at %d: coalesced map should have 1 entry, got %d", i, r.Segments().Count())
		}
	}
}

func TestHelloThere(t *testing.T) {
	b1 := NewLeaf("Hello world")
	b2 := mustReplace(t, b1, 6, 11, NewLeaf("there"), 0, 5)

	if b2.String() != "Hello there" {
		t.Errorf("b2 = %q, want %q", b2.String(), "Hello there")
	}
	if b2.Len() != 11 {
		t.Errorf("b2.Len() = %d, want 11", b2.Len())
	}
	if b1.String() != "Hello world" {
		t.Errorf("b1 = %q, want %q", b1.String(), "Hello world")
	}
}

func TestChainedReplacements(t *testing.T) {
	b1 := NewLeaf("The quick brown fox")
	b2 := mustReplace(t, b1, 4, 9, NewLeaf("slow"), 0, 4)         // The slow brown fox
	b3 := mustReplace(t, b2, 0, 0, NewLeaf(">> "), 0, 3)          // >> The slow brown fox
	b4 := mustReplace(t, b3, 12, 18, b1, 10, 19)                  // span of b1
	b5 := mustReplace(t, b4, b4.Len(), b4.Len(), b2, 13, b2.Len()) // append from b2

	manual := "The quick brown fox"
	manual = manual[:4] + "slow" + manual[9:]
	manual = ">> " + manual
	manual = manual[:12] + "The quick brown fox"[10:19] + manual[18:]
	s2 := "The slow brown fox"
	manual = manual + s2[13:]

	if b5.String() != manual {
		t.Errorf("b5 = %q, want %q", b5.String(), manual)
	}
	if b1.String() != "The quick brown fox" {
		t.Errorf("b1 changed: %q", b1.String())
	}
	if b2.String() != "The slow brown fox" {
		t.Errorf("b2 changed: %q", b2.String())
	}
	if b3.String() != ">> The slow brown fox" {
		t.Errorf("b3 changed: %q", b3.String())
	}

	// Every segment points into b1, "slow" or ">> ".
	if n := len(b5.Segments().Stores()); n > 3 {
		t.Errorf("b5 references %d stores, want at most 3", n)
	}
}

func TestThreeEditsMatchStringEdits(t *testing.T) {
	b1 := NewLeaf("abcdefghij")
	b2 := mustReplace(t, b1, 2, 5, NewLeaf("XYZW"), 1, 3) // ab YZ fghij
	b3 := mustReplace(t, b2, 0, 1, NewLeaf("123"), 0, 3)  // 123 b YZ fghij
	b4 := mustReplace(t, b3, 6, 9, b1, 0, 10)

	s := "abcdefghij"
	s = s[:2] + "YZ" + s[5:]
	s = "123" + s[1:]
	s = s[:6] + "abcdefghij" + s[9:]

	if b4.String() != s {
		t.Errorf("b4 = %q, want %q", b4.String(), s)
	}
	for name, want := range map[string]struct {
		b    Buffer
		text string
	}{
		"b1": {b1, "abcdefghij"},
		"b2": {b2, "abYZfghij"},
		"b3": {b3, "123bYZfghij"},
	} {
		if want.b.String() != want.text {
			t.Errorf("%s = %q, want %q", name, want.b.String(), want.text)
		}
	}
}

func TestSelection(t *testing.T) {
	base := mustReplace(t, NewLeaf("Hello world"), 5, 5, NewLeaf(", big"), 0, 5)

	sel, err := NewSelection(base, 3, 12, WithValidation(true))
	if err != nil {
		t.Fatal(err)
	}
	if sel.String() != "lo, big w" {
		t.Errorf("String() = %q, want %q", sel.String(), "lo, big w")
	}
	if sel.Base() != Buffer(base) {
		t.Error("Base() should return the selected buffer")
	}
	if from, to := sel.Span(); from != 3 || to != 12 {
		t.Errorf("Span() = %d, %d", from, to)
	}
	r, err := sel.At(0)
	if err != nil || r != 'l' {
		t.Errorf("At(0) = %q, %v", r, err)
	}

	if _, err := NewSelection(base, 5, 100); !errors.Is(err, ErrPrecondition) {
		t.Errorf("err = %v, want ErrPrecondition", err)
	}
	if _, err := NewSelection(nil, 0, 0); !errors.Is(err, ErrPrecondition) {
		t.Errorf("nil base err = %v, want ErrPrecondition", err)
	}

	// A selection can serve as a patch.
	pasted := mustReplace(t, base, 0, 0, sel, 0, sel.Len())
	if pasted.String() != "lo, big wHello, big world" {
		t.Errorf("pasted = %q", pasted.String())
	}
}

func TestEditHelpers(t *testing.T) {
	b := NewLeaf("Hello world")

	ins, err := Insert(b, 5, ",")
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if ins.String() != "Hello, world" {
		t.Errorf("Insert = %q", ins.String())
	}
	del, err := Delete(ins, 0, 7)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if del.String() != "world" {
		t.Errorf("Delete = %q", del.String())
	}
	rep, err := ReplaceString(del, 0, 5, "there")
	if err != nil {
		t.Fatalf("ReplaceString: %v", err)
	}
	if rep.String() != "there" {
		t.Errorf("ReplaceString = %q", rep.String())
	}
	if _, err := Delete(b, 3, 20); !errors.Is(err, ErrPrecondition) {
		t.Errorf("Delete past end err = %v, want ErrPrecondition", err)
	}
}

func TestSliceAndWriteTo(t *testing.T) {
	b := mustReplace(t, NewLeaf("Hello world"), 6, 11, NewLeaf("wörld!"), 0, 6)

	s, err := Slice(b, 4, 9)
	if err != nil || s != "o wör" {
		t.Errorf("Slice(4, 9) = %q, %v", s, err)
	}
	if _, err := Slice(b, 5, 13); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Slice past end err = %v, want ErrOutOfRange", err)
	}

	var buf bytes.Buffer
	n, err := WriteTo(&buf, b)
	if err != nil {
		t.Fatal(err)
	}
	if buf.String() != b.String() || n != int64(len(b.String())) {
		t.Errorf("WriteTo wrote %q (%d bytes)", buf.String(), n)
	}

	var runes []rune
	for i, r := range Runes(b) {
		if i != len(runes) {
			t.Fatalf("Runes offset %d, want %d", i, len(runes))
		}
		runes = append(runes, r)
	}
	if string(runes) != b.String() {
		t.Errorf("Runes = %q, want %q", string(runes), b.String())
	}

	if String(nil) != "" {
		t.Error("String(nil) should be empty")
	}
	if _, err := Slice(nil, 0, 0); !errors.Is(err, ErrPrecondition) {
		t.Errorf("Slice(nil) err = %v, want ErrPrecondition", err)
	}
	for range Chunks(nil) {
		t.Error("Chunks(nil) should yield nothing")
	}
}

func TestWithLoggerAndCoalesce(t *testing.T) {
	base := NewLeaf("abcdef")
	r, err := NewReplacement(base, 2, 4, base, 2, 4, WithCoalesce(false), WithLogger(nil))
	if err != nil {
		t.Fatal(err)
	}
	if r.Segments().Count() != 3 {
		t.Errorf("uncoalesced Count() = %d, want 3", r.Segments().Count())
	}
	c, err := NewReplacement(base, 2, 4, base, 2, 4)
	if err != nil {
		t.Fatal(err)
	}
	if c.Segments().Count() != 1 {
		t.Errorf("coalesced Count() = %d, want 1", c.Segments().Count())
	}
	if !Equal(r, c) {
		t.Error("coalescing must not change content")
	}
}
