package worddiff

import (
	"github.com/signadot/redline/debug"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff computes the word-level difference between original and target
// as position-anchored operations.  Applying the result in descending
// position order (see Apply) transforms original into target exactly.
// Identical inputs yield no operations.
func Diff(original, target string) []Op {
	if original == target {
		return nil
	}
	diffs := wordDiffs(original, target)
	ops := toOps(diffs)
	if debug.Diff() {
		debug.LogAny(ops)
	}
	return ops
}

// wordDiffs runs the symbol-mapped diff and decodes it back to text.
func wordDiffs(original, target string) []diffpatch.Diff {
	sa, sb, alphabet := tokensToSymbols(tokenize(original), tokenize(target))
	cfg := diffpatch.New()
	diffs := cfg.DiffMainRunes(sa, sb, false)
	// merge fragments separated only by tiny common runs while still
	// in symbol space.  Every symbol is a valid rune, so the cleanup's
	// rune round-trip is lossless here; on decoded token text it would
	// rewrite invalid UTF-8 bytes and shift every later position.
	diffs = cfg.DiffCleanupSemantic(diffs)
	decoded := make([]diffpatch.Diff, len(diffs))
	for i, d := range diffs {
		decoded[i] = diffpatch.Diff{
			Type: d.Type,
			Text: symbolsToText(d.Text, alphabet),
		}
	}
	return decoded
}

// toOps walks the diff left to right with a cursor into the original
// text.  A delete immediately followed by an insert collapses into one
// replace at the delete's position.  Each op records the cursor at the
// time it is emitted, before the cursor advances.
func toOps(diffs []diffpatch.Diff) []Op {
	var (
		ops []Op
		pos int
	)
	for i := 0; i < len(diffs); i++ {
		d := diffs[i]
		switch d.Type {
		case diffpatch.DiffEqual:
			pos += len(d.Text)
		case diffpatch.DiffDelete:
			if i+1 < len(diffs) && diffs[i+1].Type == diffpatch.DiffInsert {
				ops = append(ops, Op{Kind: OpReplace, Pos: pos, Del: d.Text, Ins: diffs[i+1].Text})
				pos += len(d.Text)
				i++
				continue
			}
			ops = append(ops, Op{Kind: OpDelete, Pos: pos, Del: d.Text})
			pos += len(d.Text)
		case diffpatch.DiffInsert:
			ops = append(ops, Op{Kind: OpInsert, Pos: pos, Ins: d.Text})
		}
	}
	return ops
}
