package worddiff

import (
	"fmt"
	"sort"
	"strings"
)

// Apply transforms original by the given operations.  Operations are
// applied in descending position order, deletes and replaces before
// inserts at equal positions, so no operation shifts the recorded
// offset of one not yet applied.  Every deleted span is verified
// against the original text before removal.
func Apply(original string, ops []Op) (string, error) {
	sorted := make([]Op, len(ops))
	copy(sorted, ops)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Pos != sorted[j].Pos {
			return sorted[i].Pos > sorted[j].Pos
		}
		return sorted[i].Kind != OpInsert && sorted[j].Kind == OpInsert
	})
	text := original
	for _, op := range sorted {
		if op.Pos < 0 || op.Pos > len(text) {
			return "", fmt.Errorf("cannot patch, position %d outside text of %d bytes", op.Pos, len(text))
		}
		if op.Del != "" {
			if !strings.HasPrefix(text[op.Pos:], op.Del) {
				got := text[op.Pos:]
				if len(got) > len(op.Del) {
					got = got[:len(op.Del)]
				}
				return "", fmt.Errorf("at %d cannot patch, unexpected text %q, expected %q", op.Pos, got, op.Del)
			}
		}
		text = text[:op.Pos] + op.Ins + text[op.Pos+len(op.Del):]
	}
	return text, nil
}
