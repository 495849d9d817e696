// Package redline ties the edit pipeline together: extract a block IR
// from a document, validate and merge producer edit batches, and
// apply the merged result back through a document engine.
//
// The subpackages carry the machinery; this package is the library
// entry point for callers that want the whole pipeline without wiring
// the pieces themselves.
package redline

import (
	"context"

	"github.com/signadot/redline/apply"
	"github.com/signadot/redline/docengine"
	"github.com/signadot/redline/edit"
	"github.com/signadot/redline/ir"
	"github.com/signadot/redline/merge"
	"github.com/signadot/redline/validate"
	"github.com/signadot/redline/worddiff"
)

// Diff computes the word-level operations transforming original into
// target.  Applied in descending position order, they reproduce target
// exactly.
func Diff(original, target string) []worddiff.Op {
	return worddiff.Diff(original, target)
}

// Extract enumerates a loaded document's blocks into an IR snapshot
// with stable keys assigned in traversal order.
func Extract(engine docengine.Engine, doc string) (*ir.Snapshot, error) {
	return apply.New(engine).Extract(doc)
}

// Validate checks a batch against an IR snapshot without mutating
// anything.
func Validate(batch *edit.Batch, snap *ir.Snapshot, opts validate.Options) *validate.Report {
	return validate.Batch(batch, snap, opts)
}

// Merge combines producer batches under the given conflict strategy.
func Merge(batches []*edit.Batch, strategy merge.Strategy) (*merge.Result, error) {
	return merge.Merge(batches, strategy)
}

// Apply validates, orders, and applies a batch to the document held by
// engine, then exports.
func Apply(ctx context.Context, engine docengine.Engine, doc string, batch *edit.Batch, opts apply.Options) (*apply.Result, error) {
	return apply.New(engine).Run(ctx, doc, batch, opts)
}
