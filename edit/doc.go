// Package edit defines the edit instructions producers emit and the
// batches that carry them.
//
// Each instruction kind is its own type carrying exactly the fields
// its tag requires; the decoder keeps unknown tags as Unknown values
// so validation can report them by index instead of the decode
// aborting the whole batch.
//
// # Usage
//
//	b, err := edit.ParseBatch(data, format.JSONFormat)
//	for i, in := range b.Edits { ... }
//
// # Related Packages
//
//   - github.com/signadot/redline/validate - structural and content checks
//   - github.com/signadot/redline/merge - multi-producer combination
package edit
