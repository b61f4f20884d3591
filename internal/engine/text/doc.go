// Package text provides persistent, immutable text buffers.
//
// Every edit produces a new Buffer value that shares leaf storage with the
// buffers it was built from. Keeping old values around is all an undo
// history needs, and replacing text never copies the characters that
// survive the edit.
//
// # Buffer Variants
//
//   - Leaf: owns its runes directly
//   - Replacement: a base buffer with a span replaced by a span of a patch buffer
//   - Selection: a read-only window onto a span of a base buffer
//
// Each variant carries an eagerly computed segment.Map. Reading a rune is a
// binary search over that map followed by an in-place read from the owning
// leaf; no variant walks its ancestors at access time.
//
// # Basic Usage
//
//	b1 := text.NewLeaf("Hello world")
//	b2, err := text.NewReplacement(b1, 6, 11, text.NewLeaf("there"), 0, 5)
//	if err != nil {
//	    return err
//	}
//	b2.String() // "Hello there"
//	b1.String() // "Hello world", unchanged
//
// Insert, Delete and ReplaceString cover the common cases:
//
//	b3, _ := text.Insert(b2, 5, ",")       // "Hello, there"
//	b4, _ := text.Delete(b3, 0, 7)         // "there"
//
// # Iterators
//
// An Iterator is a (buffer, offset) pair with random-access movement:
//
//	it := b2.Begin().Add(6)
//	r, _ := it.Value()         // 't'
//	n, _ := b2.End().Distance(it) // 5
//
// Comparing or subtracting iterators of different buffers returns
// ErrIteratorMismatch. NewReplacementAt accepts iterators in place of
// offsets.
//
// # Lifetime
//
// A Replacement references its base and patch, and every segment
// references the leaf store it reads from. A leaf stays alive exactly as
// long as some reachable buffer, iterator or map uses it; dropping old
// history values releases what nothing else reaches.
//
// # Concurrency
//
// Buffers are never mutated after construction, so any number of
// goroutines may read them without synchronization.
//
// # Error Handling
//
//   - ErrOutOfRange: offset outside [0, Len()) passed to At, Value or Slice
//   - ErrIteratorMismatch: iterators from different buffers combined
//   - ErrPrecondition: invalid spans or nil buffers passed to a constructor
package text
