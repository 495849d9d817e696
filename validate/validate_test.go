package validate

import (
	"testing"

	"github.com/signadot/redline/edit"
	"github.com/signadot/redline/ir"
)

func snapshot(t *testing.T) *ir.Snapshot {
	t.Helper()
	s, err := ir.New([]*ir.Block{
		{Handle: "h1", Key: "b001", Kind: ir.Heading, Text: "1. Payment", Start: 0, End: 10, Level: 1},
		{Handle: "h2", Key: "b002", Kind: ir.Paragraph, Text: "The price is £500, payable on demand.", Start: 10, End: 47},
		{Handle: "h3", Key: "b003", Kind: ir.ListItem, Text: "item one,", Start: 47, End: 56},
	})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func codesOf(r *Report) []string {
	var out []string
	for _, i := range r.Issues {
		out = append(out, i.Code)
	}
	return out
}

func TestBatchStructural(t *testing.T) {
	snap := snapshot(t)
	b := &edit.Batch{Edits: edit.List{
		edit.Replace{Target: "b002", NewText: "The price is £600, payable on demand."},
		edit.Replace{Target: "b099", NewText: "whatever"},
		edit.Replace{Target: "b001"},
		edit.Unknown{RawOp: "explode", Target: "b001"},
		edit.InsertAfterText{Target: "b002", FindText: "payable"},
	}}
	r := Batch(b, snap, Options{})
	want := map[int]string{
		1: CodeMissingTarget,
		2: CodeMissingField,
		3: CodeUnknownOp,
		4: CodeMissingField,
	}
	blocked := r.BlockedIndexes()
	if blocked[0] {
		t.Error("edit 0 is clean and should not be blocked")
	}
	for idx, code := range want {
		if !blocked[idx] {
			t.Errorf("edit %d should be blocked", idx)
		}
		found := false
		for _, i := range r.Issues {
			if i.Index == idx && i.Code == code {
				found = true
			}
		}
		if !found {
			t.Errorf("edit %d missing issue %s; have %v", idx, code, codesOf(r))
		}
	}
}

func TestBatchFindTextWarningNeverBlocks(t *testing.T) {
	snap := snapshot(t)
	b := &edit.Batch{Edits: edit.List{
		edit.Highlight{Target: "b002", FindText: "no such span"},
	}}
	r := Batch(b, snap, Options{Strict: true})
	if len(r.Issues) != 1 || r.Issues[0].Code != CodeFindTextMissing {
		t.Fatalf("issues = %v", r.Issues)
	}
	if !r.Valid() {
		t.Error("find-text-missing must stay non-blocking even in strict mode")
	}
}

func TestStrictPromotesWarnings(t *testing.T) {
	snap := snapshot(t)
	b := &edit.Batch{Edits: edit.List{
		edit.Replace{Target: "b002", NewText: "The price is £500, payable on"},
	}}
	if r := Batch(b, snap, Options{}); !r.Valid() {
		t.Fatalf("dangling ending should not block by default: %v", r.Issues)
	}
	if r := Batch(b, snap, Options{Strict: true}); r.Valid() {
		t.Error("strict mode should promote the dangling-ending warning")
	}
}

func TestStructuralDeleteThenReference(t *testing.T) {
	snap := snapshot(t)
	b := &edit.Batch{Edits: edit.List{
		edit.Delete{Target: "b001"},
		edit.Comment{Target: "b001", Text: "x"},
	}}
	r := Structural(b, snap)
	if r.Valid() {
		t.Fatal("delete-then-reference should be invalid")
	}
	found := false
	for _, i := range r.Issues {
		if i.Index == 1 && i.Code == CodeDeleteThenRef {
			found = true
		}
	}
	if !found {
		t.Errorf("want %s at index 1, have %v", CodeDeleteThenRef, r.Issues)
	}
}

func TestStructuralAnchorDeleted(t *testing.T) {
	snap := snapshot(t)
	b := &edit.Batch{Edits: edit.List{
		edit.Delete{Target: "b003"},
		edit.Insert{Anchor: "b003", Text: "new para", Kind: ir.Paragraph},
	}}
	r := Structural(b, snap)
	found := false
	for _, i := range r.Issues {
		if i.Index == 1 && i.Code == CodeAnchorDeleted {
			found = true
		}
	}
	if !found {
		t.Errorf("want %s at index 1, have %v", CodeAnchorDeleted, r.Issues)
	}
}

func TestStructuralDoubleDeleteAllowed(t *testing.T) {
	snap := snapshot(t)
	b := &edit.Batch{Edits: edit.List{
		edit.Delete{Target: "b001"},
		edit.Delete{Target: "b001"},
	}}
	r := Structural(b, snap)
	for _, i := range r.Issues {
		if i.Code == CodeDeleteThenRef {
			t.Errorf("a second delete is not a reference: %v", i)
		}
	}
}
