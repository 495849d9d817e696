// Package apply orchestrates one edit run against one document:
// load the block inventory, validate the batch, order it so no applied
// instruction can invalidate a pending one, apply each instruction
// with per-instruction failure isolation, and export.
//
// # Usage
//
//	r := apply.New(engine)
//	res, err := r.Run(ctx, doc, batch, apply.Options{})
//
// The ordering rule is the load-bearing invariant: instructions apply
// in descending block position, and span-anchored instructions on the
// same block apply rightmost first, so recorded offsets stay valid
// without any recomputation.
//
// # Related Packages
//
//   - [github.com/signadot/redline/worddiff] turns replace
//     instructions into position-anchored operations.
//   - [github.com/signadot/redline/validate] supplies the pre-apply
//     checks.
//   - [github.com/signadot/redline/docengine] is the mutation
//     collaborator.
package apply
