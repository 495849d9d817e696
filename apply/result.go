package apply

import (
	"errors"

	"github.com/signadot/redline/validate"
)

// ErrValidation aborts a run under Options.FailFast when any blocking
// issue is present.
var ErrValidation = errors.New("batch has blocking validation issues")

// Skip records one instruction that did not apply, with a reason a
// caller can act on.
type Skip struct {
	Index  int    `json:"index"`
	Target string `json:"target,omitempty"`
	Reason string `json:"reason"`
}

// Warning is a non-blocking finding surfaced alongside the run.
type Warning struct {
	Index   int    `json:"index"`
	Target  string `json:"target,omitempty"`
	Message string `json:"message"`
}

// Result aggregates one orchestration run.  Success is true only when
// every instruction in the originally submitted batch applied, not
// just every instruction in the validated subset.
type Result struct {
	State           State            `json:"state"`
	AppliedCount    int              `json:"appliedCount"`
	Skipped         []Skip           `json:"skipped,omitempty"`
	Warnings        []Warning        `json:"warnings,omitempty"`
	CreatedComments []string         `json:"createdComments,omitempty"`
	CreatedBlocks   []string         `json:"createdBlocks,omitempty"`
	Report          *validate.Report `json:"report,omitempty"`
	Output          []byte           `json:"-"`
	Success         bool             `json:"success"`
}

func (r *Result) skip(index int, target, reason string) {
	r.Skipped = append(r.Skipped, Skip{Index: index, Target: target, Reason: reason})
}
