package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/signadot/redline/apply"
	"github.com/signadot/redline/docengine"
	"github.com/signadot/redline/merge"
	"github.com/signadot/redline/system/editd/api"
	"github.com/signadot/redline/validate"

	"go.lsp.dev/jsonrpc2"
)

// Handler dispatches the editd methods.  Every request is independent:
// apply loads its document into a fresh engine, so connections share
// no document state.
func (s *Server) Handler() jsonrpc2.Handler {
	return func(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
		s.Spec.Log.Debug("request", "method", req.Method())
		switch req.Method() {
		case api.MethodValidate:
			return s.handleValidate(ctx, reply, req)
		case api.MethodMerge:
			return s.handleMerge(ctx, reply, req)
		case api.MethodApply:
			return s.handleApply(ctx, reply, req)
		default:
			return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
		}
	}
}

func (s *Server) handleValidate(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params api.ValidateParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return replyParseError(ctx, reply, err)
	}
	if params.Batch == nil || params.IR == nil {
		return reply(ctx, nil, fmt.Errorf("%w: batch and ir are required", jsonrpc2.ErrInvalidParams))
	}
	report := validate.Batch(params.Batch, params.IR, validate.Options{
		Strict:          params.Strict || s.Spec.Config.Strict,
		AllowShortening: params.AllowShortening,
	})
	return reply(ctx, &api.ValidateResult{
		Valid:    report.Valid(),
		Summary:  report.Summary(),
		Issues:   report.Blocking(),
		Warnings: report.Warnings(),
	}, nil)
}

func (s *Server) handleMerge(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params api.MergeParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return replyParseError(ctx, reply, err)
	}
	strategy, err := merge.ParseStrategy(params.Strategy)
	if err != nil {
		return reply(ctx, nil, fmt.Errorf("%w: %v", jsonrpc2.ErrInvalidParams, err))
	}
	res, err := merge.Merge(params.Batches, strategy)
	if err != nil && !errors.Is(err, merge.ErrConflicts) {
		return reply(ctx, nil, err)
	}
	// conflicts under the error strategy come back as data, not as a
	// protocol failure, so the caller can inspect them
	out := &api.MergeResult{
		Batch:     res.Batch,
		Conflicts: res.Conflicts,
		Stats:     res.Stats,
		Aborted:   errors.Is(err, merge.ErrConflicts),
	}
	if params.IR != nil && res.Batch != nil {
		// cross-producer hazards like delete-then-reference only
		// become visible once the batches are interleaved
		out.Issues = validate.Structural(res.Batch, params.IR).Blocking()
	}
	return reply(ctx, out, nil)
}

func (s *Server) handleApply(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params api.ApplyParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return replyParseError(ctx, reply, err)
	}
	if params.Batch == nil || len(params.Document) == 0 {
		return reply(ctx, nil, fmt.Errorf("%w: document and batch are required", jsonrpc2.ErrInvalidParams))
	}
	eng := docengine.NewMem()
	doc, err := eng.Load(params.Document)
	if err != nil {
		return reply(ctx, nil, fmt.Errorf("%w: %v", jsonrpc2.ErrInvalidParams, err))
	}
	defer eng.Destroy(doc)
	runner := apply.New(eng)
	res, err := runner.Run(ctx, doc, params.Batch, apply.Options{
		FailFast:        params.FailFast,
		Strict:          params.Strict || s.Spec.Config.Strict,
		AllowShortening: params.AllowShortening,
		Export:          docengine.ExportOptions{SuppressDiagnostics: params.Suppress},
	})
	if err != nil && !errors.Is(err, apply.ErrValidation) {
		return reply(ctx, nil, err)
	}
	out := &api.ApplyResult{
		State:           res.State.String(),
		AppliedCount:    res.AppliedCount,
		CreatedComments: res.CreatedComments,
		CreatedBlocks:   res.CreatedBlocks,
		Success:         res.Success,
		Document:        res.Output,
	}
	for _, sk := range res.Skipped {
		out.Skipped = append(out.Skipped, api.Skip{Index: sk.Index, Target: sk.Target, Reason: sk.Reason})
	}
	for _, w := range res.Warnings {
		out.Warnings = append(out.Warnings, api.Warning{Index: w.Index, Target: w.Target, Message: w.Message})
	}
	return reply(ctx, out, nil)
}

func replyParseError(ctx context.Context, reply jsonrpc2.Replier, err error) error {
	return reply(ctx, nil, fmt.Errorf("%w: %v", jsonrpc2.ErrParse, err))
}
