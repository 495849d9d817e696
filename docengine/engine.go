// Package docengine declares the document engine collaborator the
// orchestrator drives, and provides Mem, an in-memory engine used by
// tests, the CLI, and the editd service.
//
// The real engine owning the binary document format lives outside this
// module; everything here is specified at the interface.
package docengine

import (
	"errors"

	"github.com/signadot/redline/ir"
	"github.com/signadot/redline/worddiff"
)

var (
	ErrNoDoc    = errors.New("no such document")
	ErrNoBlock  = errors.New("no such block")
	ErrBadSpan  = errors.New("span out of range")
	// ErrTOCIncompatible signals a table-of-contents-like block whose
	// structure cannot carry tracked changes.
	ErrTOCIncompatible = errors.New("block structure incompatible with tracked changes: table-of-contents field")
)

// BlockInfo is one enumerated block, in document order.
type BlockInfo struct {
	Handle   string  `json:"handle"`
	Kind     ir.Kind `json:"kind"`
	Text     string  `json:"text"`
	Position int     `json:"position"`
	Level    int     `json:"level,omitempty"`
	Number   string  `json:"number,omitempty"`
}

// ExportOptions configures one export call.  SuppressDiagnostics
// names diagnostic categories to omit from this export only; the
// suppression is scoped to the call and releases when it returns.
type ExportOptions struct {
	SuppressDiagnostics []string `json:"suppressDiagnostics,omitempty"`
}

// Engine is the document engine collaborator.  One orchestration run
// owns a loaded document at a time.
type Engine interface {
	// Load parses document bytes and returns a document handle.
	Load(data []byte) (string, error)
	// EnumerateBlocks lists the document's blocks in order.
	EnumerateBlocks(doc string) ([]BlockInfo, error)
	// ApplyTextChange applies position-anchored text operations to a
	// block.  A whole-text replacement is one replace op spanning the
	// block.
	ApplyTextChange(doc, block string, ops []worddiff.Op) error
	// InsertBlock creates a block after the given one and returns the
	// new block's handle.
	InsertBlock(doc, after string, kind ir.Kind, level int, text string) (string, error)
	DeleteBlock(doc, block string) error
	// AddComment attaches a comment to the byte span [from, to) of a
	// block and returns the comment's id.
	AddComment(doc, block string, from, to int, text string) (string, error)
	AddHighlight(doc, block string, from, to int, color string) error
	Export(doc string, opts ExportOptions) ([]byte, error)
	Destroy(doc string)
}
