package worddiff

import "fmt"

type OpKind int

const (
	OpInsert OpKind = iota
	OpDelete
	OpReplace
)

func (k OpKind) String() string {
	switch k {
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	case OpReplace:
		return "replace"
	default:
		return fmt.Sprintf("<opkind %d>", int(k))
	}
}

// Op is one edit operation anchored to a byte offset in the original
// text the diff was computed against.  Del is the text removed at Pos,
// Ins the text added there; a replace carries both.
type Op struct {
	Kind OpKind `json:"kind"`
	Pos  int    `json:"pos"`
	Del  string `json:"del,omitempty"`
	Ins  string `json:"ins,omitempty"`
}

func (o Op) String() string {
	switch o.Kind {
	case OpInsert:
		return fmt.Sprintf("insert@%d %q", o.Pos, o.Ins)
	case OpDelete:
		return fmt.Sprintf("delete@%d %q", o.Pos, o.Del)
	default:
		return fmt.Sprintf("replace@%d %q -> %q", o.Pos, o.Del, o.Ins)
	}
}
