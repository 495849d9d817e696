package validate

import (
	"fmt"
	"strings"

	"github.com/signadot/redline/edit"
	"github.com/signadot/redline/ir"
)

// Batch checks every instruction against the snapshot, structurally
// and for content quality.  It never mutates anything.
func Batch(b *edit.Batch, snap *ir.Snapshot, opts Options) *Report {
	r := &Report{Strict: opts.Strict, Total: len(b.Edits)}
	for i, in := range b.Edits {
		blk, issues := structuralOne(i, in, snap)
		r.Issues = append(r.Issues, issues...)
		if blk == nil {
			continue
		}
		r.Issues = append(r.Issues, contentOne(i, in, blk, opts)...)
	}
	return r
}

// Structural is the merge-time variant: structural checks only, plus
// detection of references to targets already deleted earlier in the
// same batch.
func Structural(b *edit.Batch, snap *ir.Snapshot) *Report {
	r := &Report{Total: len(b.Edits)}
	deleted := map[string]int{}
	for i, in := range b.Edits {
		_, issues := structuralOne(i, in, snap)
		r.Issues = append(r.Issues, issues...)
		ref := in.Ref()
		if di, was := deleted[ref]; was && in.Op() != edit.OpDelete {
			code := CodeDeleteThenRef
			msg := fmt.Sprintf("target %q was deleted at edit %d", ref, di)
			if in.Op() == edit.OpInsert {
				code = CodeAnchorDeleted
				msg = fmt.Sprintf("anchor %q was deleted at edit %d", ref, di)
			}
			r.Issues = append(r.Issues, Issue{
				Index: i, Target: ref, Code: code, Message: msg, Severity: SevError,
			})
		}
		if in.Op() == edit.OpDelete {
			if _, was := deleted[ref]; !was {
				deleted[ref] = i
			}
		}
	}
	return r
}

// structuralOne returns the resolved target block (nil when
// unresolvable) and any structural issues for one instruction.
func structuralOne(i int, in edit.Instruction, snap *ir.Snapshot) (*ir.Block, []Issue) {
	var issues []Issue
	fail := func(code, msg string) {
		issues = append(issues, Issue{
			Index: i, Target: in.Ref(), Code: code, Message: msg, Severity: SevError,
		})
	}
	if !in.Op().Known() {
		fail(CodeUnknownOp, fmt.Sprintf("unknown instruction kind %q", string(in.Op())))
		return nil, issues
	}
	for _, f := range missingFields(in) {
		fail(CodeMissingField, fmt.Sprintf("%s requires %s", in.Op(), f))
	}
	ref := in.Ref()
	if ref == "" {
		// already reported as a missing field
		return nil, issues
	}
	blk := snap.ByKey(ref)
	if blk == nil {
		what := "target"
		if in.Op() == edit.OpInsert {
			what = "anchor"
		}
		fail(CodeMissingTarget, fmt.Sprintf("%s %q does not resolve in the current document", what, ref))
		return nil, issues
	}
	return blk, issues
}

// missingFields lists the required fields an instruction lacks.
// Absence of a required field is an error, never a silent default.
func missingFields(in edit.Instruction) []string {
	var missing []string
	need := func(name, v string) {
		if v == "" {
			missing = append(missing, name)
		}
	}
	switch v := in.(type) {
	case edit.Replace:
		need("target", v.Target)
		need("newText", v.NewText)
	case edit.Delete:
		need("target", v.Target)
	case edit.Comment:
		need("target", v.Target)
		need("text", v.Text)
	case edit.Insert:
		need("anchor", v.Anchor)
		need("text", v.Text)
		if !v.Kind.Valid() {
			missing = append(missing, "kind")
		}
	case edit.InsertAfterText:
		need("target", v.Target)
		need("findText", v.FindText)
		need("insertText", v.InsertText)
	case edit.Highlight:
		need("target", v.Target)
		need("findText", v.FindText)
	case edit.CommentRange:
		need("target", v.Target)
		need("findText", v.FindText)
		need("text", v.Text)
	case edit.CommentHighlight:
		need("target", v.Target)
		need("findText", v.FindText)
		need("text", v.Text)
	}
	return missing
}

// contentOne runs the content-quality checks that need the resolved
// block.
func contentOne(i int, in edit.Instruction, blk *ir.Block, opts Options) []Issue {
	var issues []Issue
	at := func(is []Issue) {
		for _, issue := range is {
			issue.Index = i
			issue.Target = in.Ref()
			issues = append(issues, issue)
		}
	}
	switch v := in.(type) {
	case edit.Replace:
		at(NewText(blk.Text, v.NewText, opts))
		if TOCLike(blk.Text) {
			at([]Issue{{
				Code: CodeTOCBlock, Severity: SevWarning,
				Message: "target looks like a table of contents entry; tracked changes may be rejected",
			}})
		}
	case edit.Delete:
		if TOCLike(blk.Text) {
			at([]Issue{{
				Code: CodeTOCBlock, Severity: SevWarning,
				Message: "target looks like a table of contents entry; tracked changes may be rejected",
			}})
		}
	}
	if ft := edit.FindTextOf(in); ft != "" && !strings.Contains(blk.Text, ft) {
		// always a warning: apply still attempts a tolerant match
		at([]Issue{{
			Code: CodeFindTextMissing, Severity: SevWarning,
			Message: fmt.Sprintf("findText %q not present in target block", ft),
		}})
	}
	return issues
}
