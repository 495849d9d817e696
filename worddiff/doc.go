// Package worddiff computes word-level differences between two texts
// and converts them into position-anchored edit operations.
//
// # Usage
//
//	ops := worddiff.Diff(original, target)
//	got, err := worddiff.Apply(original, ops)
//	// got == target
//
// Operations record byte offsets into the original text.  Apply works
// through them in descending offset order, so no applied operation can
// invalidate the offset of one not yet applied.  That ordering is the
// load-bearing invariant of this package; see the round-trip fuzz test.
//
// # Related Packages
//
//   - github.com/signadot/redline/apply - generalizes the descending
//     order guarantee to whole edit batches
package worddiff
