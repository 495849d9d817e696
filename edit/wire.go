package edit

import (
	"encoding/json"
	"fmt"

	"github.com/signadot/redline/format"
	"github.com/signadot/redline/ir"

	yaml "github.com/goccy/go-yaml"
)

// wire is the flat on-the-wire shape shared by all instruction kinds.
// Fields a kind does not use stay empty; absence of a required field
// is a validation concern, not a decode failure.
type wire struct {
	Op         string  `json:"op"`
	Target     string  `json:"target,omitempty"`
	Anchor     string  `json:"anchor,omitempty"`
	NewText    string  `json:"newText,omitempty"`
	UseDiff    bool    `json:"useDiff,omitempty"`
	Text       string  `json:"text,omitempty"`
	Comment    string  `json:"comment,omitempty"`
	FindText   string  `json:"findText,omitempty"`
	InsertText string  `json:"insertText,omitempty"`
	Kind       ir.Kind `json:"kind,omitempty"`
	Level      int     `json:"level,omitempty"`
	Color      string  `json:"color,omitempty"`
}

func fromWire(w wire) Instruction {
	switch Op(w.Op) {
	case OpReplace:
		return Replace{Target: w.Target, NewText: w.NewText, UseDiff: w.UseDiff, Comment: w.Comment}
	case OpDelete:
		return Delete{Target: w.Target}
	case OpComment:
		return Comment{Target: w.Target, Text: w.Text, FindText: w.FindText}
	case OpInsert:
		return Insert{Anchor: w.Anchor, Text: w.Text, Kind: w.Kind, Level: w.Level, Comment: w.Comment}
	case OpInsertAfterText:
		return InsertAfterText{Target: w.Target, FindText: w.FindText, InsertText: w.InsertText}
	case OpHighlight:
		return Highlight{Target: w.Target, FindText: w.FindText, Color: w.Color}
	case OpCommentRange:
		return CommentRange{Target: w.Target, FindText: w.FindText, Text: w.Text}
	case OpCommentHighlight:
		return CommentHighlight{Target: w.Target, FindText: w.FindText, Text: w.Text, Color: w.Color}
	default:
		target := w.Target
		if target == "" {
			target = w.Anchor
		}
		return Unknown{RawOp: w.Op, Target: target}
	}
}

func toWire(in Instruction) wire {
	switch v := in.(type) {
	case Replace:
		return wire{Op: string(OpReplace), Target: v.Target, NewText: v.NewText, UseDiff: v.UseDiff, Comment: v.Comment}
	case Delete:
		return wire{Op: string(OpDelete), Target: v.Target}
	case Comment:
		return wire{Op: string(OpComment), Target: v.Target, Text: v.Text, FindText: v.FindText}
	case Insert:
		return wire{Op: string(OpInsert), Anchor: v.Anchor, Text: v.Text, Kind: v.Kind, Level: v.Level, Comment: v.Comment}
	case InsertAfterText:
		return wire{Op: string(OpInsertAfterText), Target: v.Target, FindText: v.FindText, InsertText: v.InsertText}
	case Highlight:
		return wire{Op: string(OpHighlight), Target: v.Target, FindText: v.FindText, Color: v.Color}
	case CommentRange:
		return wire{Op: string(OpCommentRange), Target: v.Target, FindText: v.FindText, Text: v.Text}
	case CommentHighlight:
		return wire{Op: string(OpCommentHighlight), Target: v.Target, FindText: v.FindText, Text: v.Text, Color: v.Color}
	case Unknown:
		return wire{Op: v.RawOp, Target: v.Target}
	default:
		return wire{Op: string(in.Op()), Target: in.Ref()}
	}
}

func (l List) MarshalJSON() ([]byte, error) {
	ws := make([]wire, len(l))
	for i, in := range l {
		ws[i] = toWire(in)
	}
	return json.Marshal(ws)
}

func (l *List) UnmarshalJSON(d []byte) error {
	var ws []wire
	if err := json.Unmarshal(d, &ws); err != nil {
		return err
	}
	out := make(List, len(ws))
	for i, w := range ws {
		out[i] = fromWire(w)
	}
	*l = out
	return nil
}

// ParseBatch decodes a batch in the given format.
func ParseBatch(data []byte, f format.Format) (*Batch, error) {
	if f.IsYAML() {
		j, err := yaml.YAMLToJSON(data)
		if err != nil {
			return nil, fmt.Errorf("malformed batch: %w", err)
		}
		data = j
	}
	b := &Batch{}
	if err := json.Unmarshal(data, b); err != nil {
		return nil, fmt.Errorf("malformed batch: %w", err)
	}
	return b, nil
}

// EncodeBatch renders a batch in the given format.
func EncodeBatch(b *Batch, f format.Format) ([]byte, error) {
	d, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return nil, err
	}
	if f.IsYAML() {
		return yaml.JSONToYAML(d)
	}
	return append(d, '\n'), nil
}
