// Package segment implements segment maps: ordered partitions of a buffer's
// offset range into source ranges that reference leaf-owned rune storage.
//
// A segment map never holds characters of its own. Each entry records the
// cumulative end offset of the entry within the owning buffer and a Range
// into some Store. Composing a new map from a base map and a patch map only
// narrows and re-offsets ranges, so an edit costs time proportional to the
// number of entries involved rather than to the amount of text.
//
// Invariants of every Map produced by this package:
//   - entries are strictly increasing by End
//   - entries partition [0, Len) with no gap or overlap
//   - no entry has a zero-length range
//   - the sum of range lengths equals Len
//
// Validate checks these invariants explicitly.
//
// Basic usage:
//
//	hello := segment.NewStore("Hello world")
//	there := segment.NewStore("there")
//
//	m, err := segment.Compose(
//	    segment.FromRange(hello.Full()), 6, 11,
//	    segment.FromRange(there.Full()), 0, 5,
//	    segment.Options{Coalesce: true},
//	)
//	// m.Len() == 11, two entries: "Hello " and "there"
package segment
