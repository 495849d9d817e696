// Package api defines the editd JSON-RPC methods and their parameter
// and result types.
package api

import (
	"encoding/json"

	"github.com/signadot/redline/edit"
	"github.com/signadot/redline/ir"
	"github.com/signadot/redline/merge"
	"github.com/signadot/redline/validate"
)

// Method names.
const (
	MethodValidate = "redline/validate"
	MethodMerge    = "redline/merge"
	MethodApply    = "redline/apply"
)

// ValidateParams checks a batch against an IR snapshot without
// touching any document.
type ValidateParams struct {
	Batch           *edit.Batch  `json:"batch"`
	IR              *ir.Snapshot `json:"ir"`
	Strict          bool         `json:"strict,omitempty"`
	AllowShortening bool         `json:"allowShortening,omitempty"`
}

type ValidateResult struct {
	Valid    bool             `json:"valid"`
	Summary  string           `json:"summary"`
	Issues   []validate.Issue `json:"issues,omitempty"`
	Warnings []validate.Issue `json:"warnings,omitempty"`
}

// MergeParams combines producer batches under one strategy.  When IR
// is supplied the merged batch is also checked structurally, catching
// cross-producer hazards such as one producer deleting a block another
// producer still edits.
type MergeParams struct {
	Batches  []*edit.Batch `json:"batches"`
	Strategy string        `json:"strategy"`
	IR       *ir.Snapshot  `json:"ir,omitempty"`
}

// MergeResult reports the merged batch, or the conflicts that aborted
// the merge under the error strategy.
type MergeResult struct {
	Batch     *edit.Batch      `json:"batch,omitempty"`
	Conflicts []merge.Conflict `json:"conflicts,omitempty"`
	Stats     merge.Stats      `json:"stats"`
	Aborted   bool             `json:"aborted,omitempty"`
	Issues    []validate.Issue `json:"issues,omitempty"`
}

// ApplyParams runs one orchestration against a document.
type ApplyParams struct {
	Document        json.RawMessage `json:"document"`
	Batch           *edit.Batch     `json:"batch"`
	FailFast        bool            `json:"failFast,omitempty"`
	Strict          bool            `json:"strict,omitempty"`
	AllowShortening bool            `json:"allowShortening,omitempty"`
	Suppress        []string        `json:"suppress,omitempty"`
}

type ApplyResult struct {
	State           string          `json:"state"`
	AppliedCount    int             `json:"appliedCount"`
	Skipped         []Skip          `json:"skipped,omitempty"`
	Warnings        []Warning       `json:"warnings,omitempty"`
	CreatedComments []string        `json:"createdComments,omitempty"`
	CreatedBlocks   []string        `json:"createdBlocks,omitempty"`
	Success         bool            `json:"success"`
	Document        json.RawMessage `json:"document,omitempty"`
}

type Skip struct {
	Index  int    `json:"index"`
	Target string `json:"target,omitempty"`
	Reason string `json:"reason"`
}

type Warning struct {
	Index   int    `json:"index"`
	Target  string `json:"target,omitempty"`
	Message string `json:"message"`
}
