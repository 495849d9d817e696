package merge

import (
	"errors"
	"strings"

	"github.com/signadot/redline/debug"
	"github.com/signadot/redline/edit"
)

// ErrConflicts is returned by Merge under StrategyError when any
// conflict exists.  The Result still carries the full conflict list
// for inspection; its Batch is nil.
var ErrConflicts = errors.New("merge conflicts")

// commentSeparator joins combined comment bodies visibly.
const commentSeparator = " | "

// Conflict is a read-only record of instructions contending for the
// same conflict key.
type Conflict struct {
	Key        string     `json:"key"`
	Target     string     `json:"target"`
	Edits      edit.List  `json:"edits"`
	Resolution Resolution `json:"resolution"`
}

// Stats summarizes one merge.
type Stats struct {
	// TotalEdits counts the merged batch's instructions.
	TotalEdits int `json:"totalEdits"`
	// SourceCount counts the producer batches submitted.
	SourceCount int `json:"sourceCount"`
	// ConflictCount counts distinct conflict keys.
	ConflictCount int `json:"conflictCount"`
}

// Result is the outcome of one merge.
type Result struct {
	Batch     *edit.Batch `json:"batch,omitempty"`
	Conflicts []Conflict  `json:"conflicts,omitempty"`
	Stats     Stats       `json:"stats"`
}

// conflictKey derives the key instructions contend on.  Whole-block
// instructions conflict on their block alone; span-anchored ones also
// carry their op and findText, so two producers annotating different
// spans of one block do not conflict.
func conflictKey(in edit.Instruction) string {
	if in.Op().WholeBlock() {
		return "block\x00" + in.Ref()
	}
	return string(in.Op()) + "\x00" + in.Ref() + "\x00" + edit.FindTextOf(in)
}

// Merge combines batches in producer order under the given strategy.
// The outcome is deterministic: it depends only on batch order and the
// strategy, never on clocks or map iteration.
func Merge(batches []*edit.Batch, s Strategy) (*Result, error) {
	var (
		merged     edit.List
		byKey      = map[string]int{} // conflict key -> index in merged
		conflicts  []Conflict
		confByKey  = map[string]int{} // conflict key -> index in conflicts
		authors    []string
		seenAuthor = map[string]bool{}
	)
	for _, b := range batches {
		if b.Author != "" && !seenAuthor[b.Author] {
			seenAuthor[b.Author] = true
			authors = append(authors, b.Author)
		}
		for _, in := range b.Edits {
			key := conflictKey(in)
			at, clash := byKey[key]
			if !clash {
				byKey[key] = len(merged)
				merged = append(merged, in)
				continue
			}
			ci, ok := confByKey[key]
			if !ok {
				ci = len(conflicts)
				confByKey[key] = ci
				conflicts = append(conflicts, Conflict{
					Key:    key,
					Target: in.Ref(),
					Edits:  edit.List{merged[at]},
				})
			}
			conflicts[ci].Edits = append(conflicts[ci].Edits, in)
			switch s {
			case StrategyError:
				conflicts[ci].Resolution = ResolutionUnresolved
			case StrategyFirst:
				conflicts[ci].Resolution = ResolutionFirst
			case StrategyLast:
				merged[at] = in
				conflicts[ci].Resolution = ResolutionLast
			case StrategyCombine:
				if combined, ok := combineComments(merged[at], in); ok {
					merged[at] = combined
					conflicts[ci].Resolution = ResolutionCombined
				} else {
					conflicts[ci].Resolution = ResolutionFirst
				}
			}
		}
	}
	res := &Result{
		Conflicts: conflicts,
		Stats: Stats{
			TotalEdits:    len(merged),
			SourceCount:   len(batches),
			ConflictCount: len(conflicts),
		},
	}
	if debug.Merge() {
		debug.LogAny(res.Stats)
	}
	if s == StrategyError && len(conflicts) > 0 {
		res.Stats.TotalEdits = 0
		return res, ErrConflicts
	}
	res.Batch = &edit.Batch{
		Author: strings.Join(authors, "+"),
		Edits:  merged,
	}
	return res, nil
}

// combineComments concatenates two plain comments on the same block
// with a visible separator.  Any other pairing reports false.
func combineComments(a, b edit.Instruction) (edit.Instruction, bool) {
	ca, ok := a.(edit.Comment)
	if !ok {
		return nil, false
	}
	cb, ok := b.(edit.Comment)
	if !ok {
		return nil, false
	}
	return edit.Comment{
		Target:   ca.Target,
		Text:     ca.Text + commentSeparator + cb.Text,
		FindText: ca.FindText,
	}, true
}
