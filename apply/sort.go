package apply

import (
	"sort"

	"github.com/signadot/redline/edit"
	"github.com/signadot/redline/ir"
	"github.com/signadot/redline/textsearch"
)

// wholeBlockOffset orders whole-block instructions before any
// span-anchored instruction on the same block when applying rightmost
// first.
const wholeBlockOffset = int(^uint(0) >> 1)

// slot pairs an instruction with the ordering key computed against the
// pre-apply snapshot.
type slot struct {
	index int
	in    edit.Instruction
	pos   int
	off   int
}

// order sorts the non-blocked instructions by descending block
// position, and within a block by descending findText offset.  The
// sort is stable, so instructions with equal keys keep their batch
// order.  Applying in the returned order never invalidates the
// position recorded for a not-yet-applied instruction.
func order(edits edit.List, blocked map[int]bool, snap *ir.Snapshot, search textsearch.Searcher) []slot {
	var slots []slot
	for i, in := range edits {
		if blocked[i] {
			continue
		}
		blk := snap.ByKey(in.Ref())
		if blk == nil {
			// unresolvable refs are blocked during validation
			continue
		}
		s := slot{index: i, in: in, pos: snap.Position(in.Ref()), off: wholeBlockOffset}
		if ft := edit.FindTextOf(in); ft != "" {
			if m := search.Find(blk.Text, ft); m.Found {
				s.off = m.From
			} else {
				// not locatable yet: apply last within the block so a
				// tolerant apply-time match sees the settled text
				s.off = -1
			}
		}
		slots = append(slots, s)
	}
	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].pos != slots[j].pos {
			return slots[i].pos > slots[j].pos
		}
		return slots[i].off > slots[j].off
	})
	return slots
}
