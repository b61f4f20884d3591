package segment

import "fmt"

// Validate checks that m is a well-formed partition: every entry has a
// non-empty range inside its store, and each entry starts exactly where
// the previous one ended.
func Validate(m Map) error {
	prev := 0
	for i, e := range m.entries {
		r := e.Range
		switch {
		case r.Store == nil:
			return fmt.Errorf("%w: entry %d has no store", ErrCorruptMap, i)
		case r.Begin < 0 || r.End > r.Store.Len():
			return fmt.Errorf("%w: entry %d %#v outside store of length %d",
				ErrCorruptMap, i, r, r.Store.Len())
		case r.IsEmpty():
			return fmt.Errorf("%w: entry %d %#v is empty", ErrCorruptMap, i, r)
		case e.End != prev+r.Len():
			return fmt.Errorf("%w: entry %d ends at %d, want %d", ErrCorruptMap, i, e.End, prev+r.Len())
		}
		prev = e.End
	}
	return nil
}
