package docengine

import (
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"github.com/signadot/redline/ir"
	"github.com/signadot/redline/validate"
	"github.com/signadot/redline/worddiff"

	"github.com/google/uuid"
)

// Mem is an in-memory Engine over a JSON block list.  It mimics the
// behaviors the orchestrator must survive, including rejection of
// tracked changes on table-of-contents-like blocks.
type Mem struct {
	mu   sync.Mutex
	docs map[string]*memDoc
}

type memDoc struct {
	blocks []*memBlock
}

type memBlock struct {
	handle     string
	kind       ir.Kind
	level      int
	number     string
	text       string
	comments   []memComment
	highlights []memHighlight
}

type memComment struct {
	ID   string `json:"id"`
	From int    `json:"from"`
	To   int    `json:"to"`
	Text string `json:"text"`
}

type memHighlight struct {
	From  int    `json:"from"`
	To    int    `json:"to"`
	Color string `json:"color,omitempty"`
}

// docWire is the JSON document Mem loads and exports.
type docWire struct {
	Blocks []blockWire `json:"blocks"`
}

type blockWire struct {
	Kind       ir.Kind        `json:"kind"`
	Text       string         `json:"text"`
	Level      int            `json:"level,omitempty"`
	Number     string         `json:"number,omitempty"`
	Comments   []memComment   `json:"comments,omitempty"`
	Highlights []memHighlight `json:"highlights,omitempty"`
}

type diagnostic struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

func NewMem() *Mem {
	return &Mem{docs: map[string]*memDoc{}}
}

func (m *Mem) Load(data []byte) (string, error) {
	var w docWire
	if err := json.Unmarshal(data, &w); err != nil {
		return "", fmt.Errorf("malformed document: %w", err)
	}
	d := &memDoc{}
	for _, bw := range w.Blocks {
		kind := bw.Kind
		if kind == "" {
			kind = ir.Paragraph
		}
		d.blocks = append(d.blocks, &memBlock{
			handle:     uuid.NewString(),
			kind:       kind,
			level:      bw.Level,
			number:     bw.Number,
			text:       bw.Text,
			comments:   bw.Comments,
			highlights: bw.Highlights,
		})
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	h := uuid.NewString()
	m.docs[h] = d
	return h, nil
}

func (m *Mem) doc(h string) (*memDoc, error) {
	d := m.docs[h]
	if d == nil {
		return nil, fmt.Errorf("%w: %q", ErrNoDoc, h)
	}
	return d, nil
}

func (d *memDoc) block(h string) (int, *memBlock, error) {
	for i, b := range d.blocks {
		if b.handle == h {
			return i, b, nil
		}
	}
	return -1, nil, fmt.Errorf("%w: %q", ErrNoBlock, h)
}

func (m *Mem) EnumerateBlocks(doc string) ([]BlockInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, err := m.doc(doc)
	if err != nil {
		return nil, err
	}
	out := make([]BlockInfo, len(d.blocks))
	for i, b := range d.blocks {
		out[i] = BlockInfo{
			Handle:   b.handle,
			Kind:     b.kind,
			Text:     b.text,
			Position: i,
			Level:    b.level,
			Number:   b.number,
		}
	}
	return out, nil
}

func (m *Mem) ApplyTextChange(doc, block string, ops []worddiff.Op) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, err := m.doc(doc)
	if err != nil {
		return err
	}
	_, b, err := d.block(block)
	if err != nil {
		return err
	}
	if validate.TOCLike(b.text) {
		return ErrTOCIncompatible
	}
	next, err := worddiff.Apply(b.text, ops)
	if err != nil {
		return err
	}
	b.text = next
	return nil
}

func (m *Mem) InsertBlock(doc, after string, kind ir.Kind, level int, text string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, err := m.doc(doc)
	if err != nil {
		return "", err
	}
	i, _, err := d.block(after)
	if err != nil {
		return "", err
	}
	nb := &memBlock{handle: uuid.NewString(), kind: kind, level: level, text: text}
	d.blocks = slices.Insert(d.blocks, i+1, nb)
	return nb.handle, nil
}

func (m *Mem) DeleteBlock(doc, block string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, err := m.doc(doc)
	if err != nil {
		return err
	}
	i, b, err := d.block(block)
	if err != nil {
		return err
	}
	if validate.TOCLike(b.text) {
		return ErrTOCIncompatible
	}
	d.blocks = slices.Delete(d.blocks, i, i+1)
	return nil
}

func (m *Mem) AddComment(doc, block string, from, to int, text string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, err := m.doc(doc)
	if err != nil {
		return "", err
	}
	_, b, err := d.block(block)
	if err != nil {
		return "", err
	}
	if from < 0 || to > len(b.text) || from > to {
		return "", fmt.Errorf("%w: [%d,%d) in %d bytes", ErrBadSpan, from, to, len(b.text))
	}
	id := uuid.NewString()
	b.comments = append(b.comments, memComment{ID: id, From: from, To: to, Text: text})
	return id, nil
}

func (m *Mem) AddHighlight(doc, block string, from, to int, color string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, err := m.doc(doc)
	if err != nil {
		return err
	}
	_, b, err := d.block(block)
	if err != nil {
		return err
	}
	if from < 0 || to > len(b.text) || from > to {
		return fmt.Errorf("%w: [%d,%d) in %d bytes", ErrBadSpan, from, to, len(b.text))
	}
	b.highlights = append(b.highlights, memHighlight{From: from, To: to, Color: color})
	return nil
}

func (m *Mem) Export(doc string, opts ExportOptions) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, err := m.doc(doc)
	if err != nil {
		return nil, err
	}
	w := docWire{}
	var diags []diagnostic
	for i, b := range d.blocks {
		w.Blocks = append(w.Blocks, blockWire{
			Kind:       b.kind,
			Text:       b.text,
			Level:      b.level,
			Number:     b.number,
			Comments:   b.comments,
			Highlights: b.highlights,
		})
		if b.text == "" {
			diags = append(diags, diagnostic{
				Category: "empty-block",
				Message:  fmt.Sprintf("block %d has no text", i),
			})
		}
		if validate.TOCLike(b.text) {
			diags = append(diags, diagnostic{
				Category: "toc",
				Message:  fmt.Sprintf("block %d looks like a table of contents entry", i),
			})
		}
	}
	diags = suppress(diags, opts.SuppressDiagnostics)
	out := struct {
		docWire
		Diagnostics []diagnostic `json:"diagnostics,omitempty"`
	}{docWire: w, Diagnostics: diags}
	return json.MarshalIndent(out, "", "  ")
}

// suppress drops the named categories for this export only.
func suppress(diags []diagnostic, categories []string) []diagnostic {
	if len(categories) == 0 {
		return diags
	}
	drop := map[string]bool{}
	for _, c := range categories {
		drop[c] = true
	}
	var out []diagnostic
	for _, d := range diags {
		if !drop[d.Category] {
			out = append(out, d)
		}
	}
	return out
}

func (m *Mem) Destroy(doc string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.docs, doc)
}
