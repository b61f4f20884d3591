package text

import (
	"testing"
	"unicode/utf8"

	"github.com/dshills/txed/internal/engine/segment"
)

// FuzzReplacement checks a single replacement against the equivalent
// string edit.
func FuzzReplacement(f *testing.F) {
	f.Add("Hello world", 6, 11, "there", 0, 5)
	f.Add("", 0, 0, "", 0, 0)
	f.Add("abc", 1, 1, "xyz", 1, 2)
	f.Add("日本語", 0, 3, "テキスト", 2, 4)
	f.Add("emoji 🎉 test", 6, 7, "🎊", 0, 1)

	f.Fuzz(func(t *testing.T, base string, cutFrom, cutTo int, patch string, patchFrom, patchTo int) {
		if !utf8.ValidString(base) || !utf8.ValidString(patch) {
			return
		}
		br := []rune(base)
		pr := []rune(patch)

		r, err := NewReplacement(NewLeaf(base), cutFrom, cutTo, NewLeaf(patch), patchFrom, patchTo)
		valid := cutFrom >= 0 && cutFrom <= cutTo && cutTo <= len(br) &&
			patchFrom >= 0 && patchFrom <= patchTo && patchTo <= len(pr)
		if !valid {
			if err == nil {
				t.Fatalf("expected error for cut [%d, %d) patch [%d, %d)", cutFrom, cutTo, patchFrom, patchTo)
			}
			return
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := string(br[:cutFrom]) + string(pr[patchFrom:patchTo]) + string(br[cutTo:])
		if r.String() != want {
			t.Errorf("String() = %q, want %q", r.String(), want)
		}
		if r.Len() != utf8.RuneCountInString(want) {
			t.Errorf("Len() = %d, want %d", r.Len(), utf8.RuneCountInString(want))
		}
		if err := segment.Validate(r.Segments()); err != nil {
			t.Errorf("Validate: %v", err)
		}
	})
}

// FuzzEditChain applies a sequence of edits derived from the input and
// compares every intermediate buffer with a plain string model.
func FuzzEditChain(f *testing.F) {
	f.Add("hello world", []byte{0, 5, 1, 3, 7, 2, 9, 9, 4})
	f.Add("", []byte{0, 0, 0})
	f.Add("日本語テキスト", []byte{1, 2, 3, 4, 5, 6})

	f.Fuzz(func(t *testing.T, initial string, ops []byte) {
		if !utf8.ValidString(initial) {
			return
		}

		var (
			history []Buffer
			models  []string
		)
		cur := Buffer(NewLeaf(initial))
		model := []rune(initial)

		for i := 0; i+2 < len(ops); i += 3 {
			history = append(history, cur)
			models = append(models, string(model))

			n := len(model)
			from := int(ops[i]) % (n + 1)
			to := from + int(ops[i+1])%(n-from+1)

			// Patch from an older buffer so segments from several
			// generations mix.
			src := history[int(ops[i+2])%len(history)]
			srcModel := []rune(models[int(ops[i+2])%len(models)])
			pFrom := int(ops[i+2]) % (len(srcModel) + 1)
			pTo := len(srcModel)

			next, err := NewReplacement(cur, from, to, src, pFrom, pTo, WithValidation(true))
			if err != nil {
				t.Fatalf("edit %d: %v", i/3, err)
			}
			model = append(append(append([]rune{}, model[:from]...), srcModel[pFrom:pTo]...), model[to:]...)
			cur = next

			if cur.String() != string(model) {
				t.Fatalf("edit %d: got %q, want %q", i/3, cur.String(), string(model))
			}
		}

		for i, b := range history {
			if b.String() != models[i] {
				t.Errorf("generation %d changed: %q, want %q", i, b.String(), models[i])
			}
		}
	})
}
