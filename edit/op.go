package edit

// Op tags an instruction kind on the wire.
type Op string

const (
	OpReplace          Op = "replace"
	OpDelete           Op = "delete"
	OpComment          Op = "comment"
	OpInsert           Op = "insert"
	OpInsertAfterText  Op = "insertAfterText"
	OpHighlight        Op = "highlight"
	OpCommentRange     Op = "commentRange"
	OpCommentHighlight Op = "commentHighlight"
)

// Known reports whether o is one of the instruction kinds.
func (o Op) Known() bool {
	switch o {
	case OpReplace, OpDelete, OpComment, OpInsert,
		OpInsertAfterText, OpHighlight, OpCommentRange, OpCommentHighlight:
		return true
	}
	return false
}

// WholeBlock reports whether o operates on the target block as a
// whole.  Whole-block instructions conflict on target alone; span
// instructions conflict on (target, op, findText).
func (o Op) WholeBlock() bool {
	switch o {
	case OpReplace, OpDelete, OpComment, OpInsert:
		return true
	}
	return false
}

// SpanAnchored reports whether o is anchored to a findText span.
func (o Op) SpanAnchored() bool {
	switch o {
	case OpInsertAfterText, OpHighlight, OpCommentRange, OpCommentHighlight:
		return true
	}
	return false
}
