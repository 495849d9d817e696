package edit

import "github.com/signadot/redline/ir"

// Instruction is one edit against a document block.  Concrete types
// carry exactly the fields their op requires.
type Instruction interface {
	Op() Op
	// Ref returns the stable key the instruction addresses: the target
	// for most kinds, the anchor for Insert.
	Ref() string
	isInstruction()
}

// Replace replaces the target block's text with NewText.  With
// UseDiff, the change is applied as minimal word-level operations
// instead of a whole-text swap.
type Replace struct {
	Target  string
	NewText string
	UseDiff bool
	Comment string
}

// Delete removes the target block.
type Delete struct {
	Target string
}

// Comment attaches a comment to the target block.  With FindText set,
// the comment anchors to that span when it can be found, falling back
// to the whole block otherwise.
type Comment struct {
	Target   string
	Text     string
	FindText string
}

// Insert creates a new block after the anchor block.
type Insert struct {
	Anchor  string
	Text    string
	Kind    ir.Kind
	Level   int
	Comment string
}

// InsertAfterText inserts InsertText immediately after the FindText
// span inside the target block.
type InsertAfterText struct {
	Target     string
	FindText   string
	InsertText string
}

// Highlight marks the FindText span in the target block.
type Highlight struct {
	Target   string
	FindText string
	Color    string
}

// CommentRange attaches a comment to the FindText span in the target
// block.
type CommentRange struct {
	Target   string
	FindText string
	Text     string
}

// CommentHighlight both highlights and comments the FindText span.
type CommentHighlight struct {
	Target   string
	FindText string
	Text     string
	Color    string
}

// Unknown preserves an instruction whose op tag is not one of the
// known kinds, so validation can report it by index.
type Unknown struct {
	RawOp  string
	Target string
}

func (Replace) Op() Op          { return OpReplace }
func (Delete) Op() Op           { return OpDelete }
func (Comment) Op() Op          { return OpComment }
func (Insert) Op() Op           { return OpInsert }
func (InsertAfterText) Op() Op  { return OpInsertAfterText }
func (Highlight) Op() Op        { return OpHighlight }
func (CommentRange) Op() Op     { return OpCommentRange }
func (CommentHighlight) Op() Op { return OpCommentHighlight }
func (u Unknown) Op() Op        { return Op(u.RawOp) }

func (r Replace) Ref() string          { return r.Target }
func (d Delete) Ref() string           { return d.Target }
func (c Comment) Ref() string          { return c.Target }
func (i Insert) Ref() string           { return i.Anchor }
func (i InsertAfterText) Ref() string  { return i.Target }
func (h Highlight) Ref() string        { return h.Target }
func (c CommentRange) Ref() string     { return c.Target }
func (c CommentHighlight) Ref() string { return c.Target }
func (u Unknown) Ref() string          { return u.Target }

func (Replace) isInstruction()          {}
func (Delete) isInstruction()           {}
func (Comment) isInstruction()          {}
func (Insert) isInstruction()           {}
func (InsertAfterText) isInstruction()  {}
func (Highlight) isInstruction()        {}
func (CommentRange) isInstruction()     {}
func (CommentHighlight) isInstruction() {}
func (Unknown) isInstruction()          {}

// FindTextOf returns the findText span of span-anchored instructions,
// or "" for whole-block ones.
func FindTextOf(in Instruction) string {
	switch v := in.(type) {
	case Comment:
		return v.FindText
	case InsertAfterText:
		return v.FindText
	case Highlight:
		return v.FindText
	case CommentRange:
		return v.FindText
	case CommentHighlight:
		return v.FindText
	}
	return ""
}
