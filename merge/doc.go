// Package merge combines edit batches from independent producers into
// one batch plus a conflict report.
//
// Merging is a pure reduction over the submitted batches: no I/O, no
// locks, no clock.  Its outcome depends only on batch order and the
// chosen strategy, so the same inputs always merge the same way.
//
// # Usage
//
//	res, err := merge.Merge(batches, merge.StrategyCombine)
//	if errors.Is(err, merge.ErrConflicts) { ... } // error strategy only
package merge
