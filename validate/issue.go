package validate

import "fmt"

type Severity string

const (
	SevWarning Severity = "warning"
	SevError   Severity = "error"
)

// Issue codes.
const (
	CodeUnknownOp       = "unknown-op"
	CodeMissingField    = "missing-field"
	CodeMissingTarget   = "missing-target"
	CodeReduction       = "reduction"
	CodeDanglingEnding  = "dangling-ending"
	CodeTruncation      = "truncation"
	CodeCorruption      = "corruption"
	CodeFindTextMissing = "find-text-missing"
	CodeTOCBlock        = "toc-block"
	CodeDeleteThenRef   = "delete-then-reference"
	CodeAnchorDeleted   = "anchor-deleted"
)

// Issue is one finding against one instruction, identified by its
// index in the submitted batch.
type Issue struct {
	Index    int      `json:"index"`
	Target   string   `json:"target,omitempty"`
	Code     string   `json:"code"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

func (i Issue) String() string {
	return fmt.Sprintf("edit %d (%s): %s: %s", i.Index, i.Target, i.Code, i.Message)
}

// Report is the outcome of validating one batch.
type Report struct {
	Issues []Issue `json:"issues"`
	Strict bool    `json:"strict,omitempty"`
	Total  int     `json:"total"`
}

func (r *Report) blocking(i Issue) bool {
	if i.Code == CodeFindTextMissing {
		// never blocking: apply still attempts a tolerant match
		return false
	}
	return i.Severity == SevError || r.Strict
}

// Blocking returns the issues that prevent their instruction from
// applying under the report's mode.
func (r *Report) Blocking() []Issue {
	var out []Issue
	for _, i := range r.Issues {
		if r.blocking(i) {
			out = append(out, i)
		}
	}
	return out
}

// Warnings returns the non-blocking issues.
func (r *Report) Warnings() []Issue {
	var out []Issue
	for _, i := range r.Issues {
		if !r.blocking(i) {
			out = append(out, i)
		}
	}
	return out
}

// Valid reports whether every instruction may apply.
func (r *Report) Valid() bool {
	return len(r.Blocking()) == 0
}

// BlockedIndexes returns the set of instruction indexes that must not
// apply.
func (r *Report) BlockedIndexes() map[int]bool {
	out := map[int]bool{}
	for _, i := range r.Issues {
		if r.blocking(i) {
			out[i.Index] = true
		}
	}
	return out
}

// Summary renders a one-line account of the report.
func (r *Report) Summary() string {
	nb := len(r.Blocking())
	return fmt.Sprintf("%d edits, %d issues, %d blocking", r.Total, len(r.Issues), nb)
}
