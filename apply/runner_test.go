package apply

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/signadot/redline/docengine"
	"github.com/signadot/redline/edit"
	"github.com/signadot/redline/ir"
	"github.com/signadot/redline/keymap"
	"github.com/signadot/redline/textsearch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const contractDoc = `{
  "blocks": [
    {"kind": "heading", "text": "1. Definitions", "level": 1, "number": "1"},
    {"kind": "paragraph", "text": "Supplier means the party selling the goods."},
    {"kind": "paragraph", "text": "The price is £500, payable on demand."},
    {"kind": "paragraph", "text": "Delivery occurs within 30 days of the order."},
    {"kind": "paragraph", "text": "Contents .......... 2"}
  ]
}`

func newRun(t *testing.T) (*Runner, string) {
	t.Helper()
	eng := docengine.NewMem()
	doc, err := eng.Load([]byte(contractDoc))
	require.NoError(t, err)
	return New(eng), doc
}

func TestExtractAssignsStableKeys(t *testing.T) {
	r, doc := newRun(t)
	snap, err := r.Extract(doc)
	require.NoError(t, err)
	require.Equal(t, 5, snap.Len())
	for i, b := range snap.Blocks() {
		assert.Equal(t, keymap.FormatKey(i+1), b.Key)
		assert.Less(t, b.Start, b.End)
	}
	again, err := r.Extract(doc)
	require.NoError(t, err)
	assert.Equal(t, snap.Mapping(), again.Mapping())
}

func TestRunAppliesBatch(t *testing.T) {
	r, doc := newRun(t)
	batch := &edit.Batch{Edits: edit.List{
		edit.Replace{Target: "b003", NewText: "The price is £600, payable on demand.", UseDiff: true},
		edit.Comment{Target: "b002", Text: "define goods as well", FindText: "selling the goods"},
		edit.InsertAfterText{Target: "b004", FindText: "30 days", InsertText: " (business days)"},
		edit.Insert{Anchor: "b004", Text: "Risk passes on delivery.", Kind: ir.Paragraph},
	}}
	res, err := r.Run(context.Background(), doc, batch, Options{})
	require.NoError(t, err)
	assert.Equal(t, Exported, res.State)
	assert.Equal(t, 4, res.AppliedCount)
	assert.Empty(t, res.Skipped)
	assert.True(t, res.Success)
	assert.Len(t, res.CreatedComments, 1)
	assert.Equal(t, []string{"b006"}, res.CreatedBlocks)

	out := string(res.Output)
	assert.Contains(t, out, "£600")
	assert.Contains(t, out, "30 days (business days)")
	assert.Contains(t, out, "Risk passes on delivery.")
}

func TestRunCommentFallsBackToWholeBlock(t *testing.T) {
	r, doc := newRun(t)
	batch := &edit.Batch{Edits: edit.List{
		edit.Comment{Target: "b002", Text: "note", FindText: "no such span anywhere"},
	}}
	res, err := r.Run(context.Background(), doc, batch, Options{})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Len(t, res.CreatedComments, 1)
	// the unlocatable span still surfaces as a warning
	found := false
	for _, w := range res.Warnings {
		if strings.Contains(w.Message, "not present") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestRunSpanKindsSkipWhenNotFound(t *testing.T) {
	r, doc := newRun(t)
	batch := &edit.Batch{Edits: edit.List{
		edit.Highlight{Target: "b002", FindText: "no such span anywhere"},
		edit.CommentRange{Target: "b002", FindText: "no such span anywhere", Text: "x"},
	}}
	res, err := r.Run(context.Background(), doc, batch, Options{})
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, 0, res.AppliedCount)
	require.Len(t, res.Skipped, 2)
	for _, s := range res.Skipped {
		assert.Contains(t, s.Reason, "not found")
	}
}

func TestRunTOCRejectionIsActionable(t *testing.T) {
	r, doc := newRun(t)
	batch := &edit.Batch{Edits: edit.List{
		edit.Replace{Target: "b005", NewText: "Contents .......... 3", UseDiff: true},
	}}
	res, err := r.Run(context.Background(), doc, batch, Options{})
	require.NoError(t, err)
	assert.False(t, res.Success)
	require.Len(t, res.Skipped, 1)
	assert.Contains(t, res.Skipped[0].Reason, "table-of-contents")
}

func TestRunBlockedInstructionIsSkippedWithReason(t *testing.T) {
	r, doc := newRun(t)
	batch := &edit.Batch{Edits: edit.List{
		edit.Unknown{RawOp: "transmogrify", Target: "b001"},
		edit.Delete{Target: "b002"},
	}}
	res, err := r.Run(context.Background(), doc, batch, Options{})
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, 1, res.AppliedCount)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, 0, res.Skipped[0].Index)
	assert.Contains(t, res.Skipped[0].Reason, "transmogrify")
}

func TestRunFailFast(t *testing.T) {
	r, doc := newRun(t)
	batch := &edit.Batch{Edits: edit.List{
		edit.Unknown{RawOp: "transmogrify", Target: "b001"},
		edit.Delete{Target: "b002"},
	}}
	res, err := r.Run(context.Background(), doc, batch, Options{FailFast: true})
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, Failed, res.State)
	assert.Equal(t, 0, res.AppliedCount)

	// nothing was mutated
	blocks, berr := r.Engine.EnumerateBlocks(doc)
	require.NoError(t, berr)
	assert.Len(t, blocks, 5)
}

// exportFailEngine applies edits normally but cannot render output.
type exportFailEngine struct {
	docengine.Engine
}

func (exportFailEngine) Export(string, docengine.ExportOptions) ([]byte, error) {
	return nil, errors.New("renderer unavailable")
}

func TestRunExportFailureStallsInApplying(t *testing.T) {
	r, doc := newRun(t)
	r.Engine = exportFailEngine{r.Engine}
	batch := &edit.Batch{Edits: edit.List{
		edit.Delete{Target: "b002"},
	}}
	res, err := r.Run(context.Background(), doc, batch, Options{})
	require.ErrorContains(t, err, "export")
	// Failed means the batch never applied; this one did
	assert.Equal(t, Applying, res.State)
	assert.Equal(t, 1, res.AppliedCount)
	assert.False(t, res.Success)
}

func TestRunExportSuppression(t *testing.T) {
	r, doc := newRun(t)
	batch := &edit.Batch{}
	res, err := r.Run(context.Background(), doc, batch, Options{
		Export: docengine.ExportOptions{SuppressDiagnostics: []string{"toc"}},
	})
	require.NoError(t, err)
	assert.NotContains(t, string(res.Output), `"category": "toc"`)
}

func buildSnapshot(t *testing.T, texts map[int]string, n int) *ir.Snapshot {
	t.Helper()
	blocks := make([]*ir.Block, n)
	for i := range blocks {
		text := "block text"
		if s, ok := texts[i]; ok {
			text = s
		}
		blocks[i] = &ir.Block{
			Handle: keymap.FormatKey(i+1) + "-h",
			Key:    keymap.FormatKey(i + 1),
			Kind:   ir.Paragraph,
			Text:   text,
			Start:  i * 100,
			End:    i*100 + len(text) + 1,
		}
	}
	snap, err := ir.New(blocks)
	require.NoError(t, err)
	return snap
}

func TestOrderDescendingBlockPosition(t *testing.T) {
	snap := buildSnapshot(t, nil, 81)
	target := func(pos int) string { return keymap.FormatKey(pos + 1) }
	edits := edit.List{
		edit.Delete{Target: target(10)},
		edit.Delete{Target: target(50)},
		edit.Delete{Target: target(5)},
		edit.Delete{Target: target(80)},
	}
	slots := order(edits, nil, snap, textsearch.Default{})
	var got []int
	for _, s := range slots {
		got = append(got, s.pos)
	}
	assert.Equal(t, []int{80, 50, 10, 5}, got)
}

func TestOrderWithinBlock(t *testing.T) {
	snap := buildSnapshot(t, map[int]string{0: "alpha beta gamma"}, 1)
	edits := edit.List{
		edit.CommentRange{Target: "b001", FindText: "beta", Text: "x"},
		edit.Highlight{Target: "b001", FindText: "gamma"},
		edit.Comment{Target: "b001", Text: "whole block"},
	}
	slots := order(edits, nil, snap, textsearch.Default{})
	require.Len(t, slots, 3)
	// whole-block first, then span instructions rightmost first
	assert.Equal(t, 2, slots[0].index)
	assert.Equal(t, 1, slots[1].index)
	assert.Equal(t, 0, slots[2].index)
}

func TestOrderSkipsBlockedIndexes(t *testing.T) {
	snap := buildSnapshot(t, nil, 2)
	edits := edit.List{
		edit.Delete{Target: "b001"},
		edit.Delete{Target: "b002"},
	}
	slots := order(edits, map[int]bool{0: true}, snap, textsearch.Default{})
	require.Len(t, slots, 1)
	assert.Equal(t, 1, slots[0].index)
}
