package apply

import (
	"context"
	"errors"
	"fmt"

	"github.com/signadot/redline/debug"
	"github.com/signadot/redline/docengine"
	"github.com/signadot/redline/edit"
	"github.com/signadot/redline/ir"
	"github.com/signadot/redline/keymap"
	"github.com/signadot/redline/textsearch"
	"github.com/signadot/redline/validate"
	"github.com/signadot/redline/worddiff"
)

// Runner drives orchestration runs against one document engine.  A
// Runner is single-threaded per document: each applied instruction may
// shift offsets later steps depend on, so runs never overlap on the
// same live document.
type Runner struct {
	Engine docengine.Engine
	Search textsearch.Searcher
	Keys   *keymap.Map
}

func New(engine docengine.Engine) *Runner {
	return &Runner{
		Engine: engine,
		Search: textsearch.Default{},
		Keys:   keymap.New(),
	}
}

// Extract enumerates the document's blocks and builds an IR snapshot,
// registering every handle in traversal order.  Registration is
// idempotent, so re-extracting after a reload reassigns the same keys
// in the same order.  Block spans cover the text plus a one-byte
// terminator, so empty blocks still carry a non-empty span.
func (r *Runner) Extract(doc string) (*ir.Snapshot, error) {
	infos, err := r.Engine.EnumerateBlocks(doc)
	if err != nil {
		return nil, err
	}
	blocks := make([]*ir.Block, 0, len(infos))
	offset := 0
	for _, bi := range infos {
		end := offset + len(bi.Text) + 1
		blocks = append(blocks, &ir.Block{
			Handle: bi.Handle,
			Key:    r.Keys.Register(bi.Handle),
			Kind:   bi.Kind,
			Text:   bi.Text,
			Start:  offset,
			End:    end,
			Level:  bi.Level,
			Number: bi.Number,
		})
		offset = end
	}
	return ir.New(blocks)
}

// Run validates, orders, and applies one batch, then exports.  Per
// instruction failures become skips with reasons; only batch-level
// concerns return an error.  There is no cancellation mid-batch: ctx
// is checked once before any mutation.
func (r *Runner) Run(ctx context.Context, doc string, batch *edit.Batch, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	snap, err := r.Extract(doc)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}
	res := &Result{State: Loaded}

	report := validate.Batch(batch, snap, validate.Options{
		Strict:          opts.Strict,
		AllowShortening: opts.AllowShortening,
	})
	res.Report = report
	for _, w := range report.Warnings() {
		res.Warnings = append(res.Warnings, Warning{Index: w.Index, Target: w.Target, Message: w.Message})
	}
	res.State = Validated
	if opts.FailFast && !report.Valid() {
		res.State = Failed
		return res, fmt.Errorf("%w: %s", ErrValidation, report.Summary())
	}
	blocked := report.BlockedIndexes()
	seen := map[int]bool{}
	for _, iss := range report.Blocking() {
		if seen[iss.Index] {
			continue
		}
		seen[iss.Index] = true
		res.skip(iss.Index, iss.Target, iss.Message)
	}

	slots := order(batch.Edits, blocked, snap, r.Search)
	res.State = Sorted

	res.State = Applying
	cur := map[string]string{}
	for _, b := range snap.Blocks() {
		cur[b.Handle] = b.Text
	}
	for _, s := range slots {
		applied := r.applyOne(doc, s, snap, cur, res)
		if applied {
			res.AppliedCount++
		}
		if debug.Apply() {
			debug.LogAny(map[string]any{
				"index": s.index, "op": string(s.in.Op()),
				"target": s.in.Ref(), "applied": applied,
			})
		}
	}

	out, err := r.Engine.Export(doc, opts.Export)
	if err != nil {
		// Failed marks a batch that never applied; an export error
		// after mutation leaves the run stalled in Applying
		return res, fmt.Errorf("export: %w", err)
	}
	res.Output = out
	res.State = Exported
	res.Success = res.AppliedCount == len(batch.Edits)
	return res, nil
}

// applyOne applies a single instruction, recording a skip with a
// reason on failure.  findText policy: a plain comment falls back to
// the whole block when its span cannot be located; every other
// span-anchored kind skips instead.  The asymmetry is a deliberate,
// documented policy, not an accident.
func (r *Runner) applyOne(doc string, s slot, snap *ir.Snapshot, cur map[string]string, res *Result) bool {
	handle := snap.Handle(s.in.Ref())
	text := cur[handle]
	switch v := s.in.(type) {
	case edit.Replace:
		var ops []worddiff.Op
		if v.UseDiff {
			ops = worddiff.Diff(text, v.NewText)
		} else {
			ops = []worddiff.Op{{Kind: worddiff.OpReplace, Pos: 0, Del: text, Ins: v.NewText}}
		}
		if len(ops) > 0 {
			if err := r.Engine.ApplyTextChange(doc, handle, ops); err != nil {
				res.skip(s.index, v.Target, engineReason(err))
				return false
			}
		}
		cur[handle] = v.NewText
		if v.Comment != "" {
			r.comment(doc, handle, 0, len(v.NewText), v.Comment, s, res)
		}
		return true
	case edit.Delete:
		if err := r.Engine.DeleteBlock(doc, handle); err != nil {
			res.skip(s.index, v.Target, engineReason(err))
			return false
		}
		delete(cur, handle)
		return true
	case edit.Comment:
		from, to := 0, len(text)
		if v.FindText != "" {
			if m := r.Search.Find(text, v.FindText); m.Found {
				from, to = m.From, m.To
			}
		}
		id, err := r.Engine.AddComment(doc, handle, from, to, v.Text)
		if err != nil {
			res.skip(s.index, v.Target, engineReason(err))
			return false
		}
		res.CreatedComments = append(res.CreatedComments, id)
		return true
	case edit.Insert:
		nh, err := r.Engine.InsertBlock(doc, handle, v.Kind, v.Level, v.Text)
		if err != nil {
			res.skip(s.index, v.Anchor, engineReason(err))
			return false
		}
		cur[nh] = v.Text
		res.CreatedBlocks = append(res.CreatedBlocks, r.Keys.Register(nh))
		if v.Comment != "" {
			r.comment(doc, nh, 0, len(v.Text), v.Comment, s, res)
		}
		return true
	case edit.InsertAfterText:
		m := r.Search.Find(text, v.FindText)
		if !m.Found {
			res.skip(s.index, v.Target, notFound(v.FindText))
			return false
		}
		op := worddiff.Op{Kind: worddiff.OpInsert, Pos: m.To, Ins: v.InsertText}
		if err := r.Engine.ApplyTextChange(doc, handle, []worddiff.Op{op}); err != nil {
			res.skip(s.index, v.Target, engineReason(err))
			return false
		}
		cur[handle] = text[:m.To] + v.InsertText + text[m.To:]
		return true
	case edit.Highlight:
		m := r.Search.Find(text, v.FindText)
		if !m.Found {
			res.skip(s.index, v.Target, notFound(v.FindText))
			return false
		}
		if err := r.Engine.AddHighlight(doc, handle, m.From, m.To, v.Color); err != nil {
			res.skip(s.index, v.Target, engineReason(err))
			return false
		}
		return true
	case edit.CommentRange:
		m := r.Search.Find(text, v.FindText)
		if !m.Found {
			res.skip(s.index, v.Target, notFound(v.FindText))
			return false
		}
		id, err := r.Engine.AddComment(doc, handle, m.From, m.To, v.Text)
		if err != nil {
			res.skip(s.index, v.Target, engineReason(err))
			return false
		}
		res.CreatedComments = append(res.CreatedComments, id)
		return true
	case edit.CommentHighlight:
		m := r.Search.Find(text, v.FindText)
		if !m.Found {
			res.skip(s.index, v.Target, notFound(v.FindText))
			return false
		}
		if err := r.Engine.AddHighlight(doc, handle, m.From, m.To, v.Color); err != nil {
			res.skip(s.index, v.Target, engineReason(err))
			return false
		}
		id, err := r.Engine.AddComment(doc, handle, m.From, m.To, v.Text)
		if err != nil {
			res.skip(s.index, v.Target, engineReason(err))
			return false
		}
		res.CreatedComments = append(res.CreatedComments, id)
		return true
	default:
		res.skip(s.index, s.in.Ref(), fmt.Sprintf("unknown instruction kind %q", string(s.in.Op())))
		return false
	}
}

// comment attaches a secondary comment after a successful mutation.  A
// failure here downgrades to a warning: the instruction itself already
// applied.
func (r *Runner) comment(doc, handle string, from, to int, text string, s slot, res *Result) {
	id, err := r.Engine.AddComment(doc, handle, from, to, text)
	if err != nil {
		res.Warnings = append(res.Warnings, Warning{
			Index: s.index, Target: s.in.Ref(),
			Message: fmt.Sprintf("applied, but attaching the comment failed: %v", err),
		})
		return
	}
	res.CreatedComments = append(res.CreatedComments, id)
}

func notFound(findText string) string {
	return fmt.Sprintf("findText %q not found in target block; skipped", findText)
}

// engineReason converts a document engine rejection into an actionable
// per-instruction reason.
func engineReason(err error) string {
	if errors.Is(err, docengine.ErrTOCIncompatible) {
		return "block is a table-of-contents field and cannot carry tracked changes; update the field instead of editing its text"
	}
	return err.Error()
}
