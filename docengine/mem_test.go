package docengine

import (
	"encoding/json"
	"testing"

	"github.com/signadot/redline/ir"
	"github.com/signadot/redline/worddiff"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `{
  "blocks": [
    {"kind": "heading", "text": "1. Payment", "level": 1, "number": "1"},
    {"kind": "paragraph", "text": "The price is £500, payable on demand."},
    {"kind": "paragraph", "text": "Contents .......... 2"},
    {"kind": "list-item", "text": ""}
  ]
}`

func loadSample(t *testing.T) (*Mem, string, []BlockInfo) {
	t.Helper()
	m := NewMem()
	doc, err := m.Load([]byte(sampleDoc))
	require.NoError(t, err)
	blocks, err := m.EnumerateBlocks(doc)
	require.NoError(t, err)
	require.Len(t, blocks, 4)
	return m, doc, blocks
}

func TestMemLoadEnumerate(t *testing.T) {
	_, _, blocks := loadSample(t)
	assert.Equal(t, ir.Heading, blocks[0].Kind)
	assert.Equal(t, 1, blocks[0].Level)
	assert.Equal(t, 2, blocks[2].Position)
	assert.NotEmpty(t, blocks[0].Handle)
	assert.NotEqual(t, blocks[0].Handle, blocks[1].Handle)
}

func TestMemTextChange(t *testing.T) {
	m, doc, blocks := loadSample(t)
	ops := worddiff.Diff(blocks[1].Text, "The price is £600, payable on demand.")
	require.NoError(t, m.ApplyTextChange(doc, blocks[1].Handle, ops))
	after, err := m.EnumerateBlocks(doc)
	require.NoError(t, err)
	assert.Equal(t, "The price is £600, payable on demand.", after[1].Text)
}

func TestMemTOCRejection(t *testing.T) {
	m, doc, blocks := loadSample(t)
	err := m.ApplyTextChange(doc, blocks[2].Handle, worddiff.Diff(blocks[2].Text, "x"))
	require.ErrorIs(t, err, ErrTOCIncompatible)
	err = m.DeleteBlock(doc, blocks[2].Handle)
	require.ErrorIs(t, err, ErrTOCIncompatible)
}

func TestMemInsertDelete(t *testing.T) {
	m, doc, blocks := loadSample(t)
	h, err := m.InsertBlock(doc, blocks[0].Handle, ir.Paragraph, 0, "A new paragraph.")
	require.NoError(t, err)
	after, err := m.EnumerateBlocks(doc)
	require.NoError(t, err)
	require.Len(t, after, 5)
	assert.Equal(t, h, after[1].Handle)
	require.NoError(t, m.DeleteBlock(doc, h))
	after, err = m.EnumerateBlocks(doc)
	require.NoError(t, err)
	assert.Len(t, after, 4)
}

func TestMemCommentsAndHighlights(t *testing.T) {
	m, doc, blocks := loadSample(t)
	id, err := m.AddComment(doc, blocks[1].Handle, 0, 9, "check price")
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	require.NoError(t, m.AddHighlight(doc, blocks[1].Handle, 0, 9, "yellow"))
	_, err = m.AddComment(doc, blocks[1].Handle, 5, 9999, "bad span")
	require.ErrorIs(t, err, ErrBadSpan)
}

func TestMemExportSuppression(t *testing.T) {
	m, doc, _ := loadSample(t)
	out, err := m.Export(doc, ExportOptions{})
	require.NoError(t, err)
	var full struct {
		Diagnostics []diagnostic `json:"diagnostics"`
	}
	require.NoError(t, json.Unmarshal(out, &full))
	require.NotEmpty(t, full.Diagnostics)

	out, err = m.Export(doc, ExportOptions{SuppressDiagnostics: []string{"toc", "empty-block"}})
	require.NoError(t, err)
	var quiet struct {
		Diagnostics []diagnostic `json:"diagnostics"`
	}
	require.NoError(t, json.Unmarshal(out, &quiet))
	assert.Empty(t, quiet.Diagnostics)

	// suppression is scoped to the call, not sticky
	out, err = m.Export(doc, ExportOptions{})
	require.NoError(t, err)
	var again struct {
		Diagnostics []diagnostic `json:"diagnostics"`
	}
	require.NoError(t, json.Unmarshal(out, &again))
	assert.NotEmpty(t, again.Diagnostics)
}

func TestMemDestroy(t *testing.T) {
	m, doc, _ := loadSample(t)
	m.Destroy(doc)
	_, err := m.EnumerateBlocks(doc)
	require.ErrorIs(t, err, ErrNoDoc)
}
