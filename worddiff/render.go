package worddiff

import (
	"io"
	"sort"

	"github.com/fatih/color"
)

var (
	delColor = color.New(color.FgRed, color.CrossedOut)
	insColor = color.New(color.FgGreen)
)

// Render writes a human-readable view of ops against original.
// Deletions appear as [-text-], insertions as {+text+}; with colored
// set, deletions are red struck-through and insertions green.
func Render(w io.Writer, original string, ops []Op, colored bool) error {
	sorted := make([]Op, len(ops))
	copy(sorted, ops)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Pos != sorted[j].Pos {
			return sorted[i].Pos < sorted[j].Pos
		}
		return sorted[i].Kind == OpInsert && sorted[j].Kind != OpInsert
	})
	write := func(s string) error {
		_, err := io.WriteString(w, s)
		return err
	}
	del := func(s string) error {
		if s == "" {
			return nil
		}
		if colored {
			_, err := delColor.Fprint(w, s)
			return err
		}
		return write("[-" + s + "-]")
	}
	ins := func(s string) error {
		if s == "" {
			return nil
		}
		if colored {
			_, err := insColor.Fprint(w, s)
			return err
		}
		return write("{+" + s + "+}")
	}
	pos := 0
	for _, op := range sorted {
		if op.Pos > pos {
			if err := write(original[pos:op.Pos]); err != nil {
				return err
			}
			pos = op.Pos
		}
		if err := del(op.Del); err != nil {
			return err
		}
		if err := ins(op.Ins); err != nil {
			return err
		}
		pos += len(op.Del)
	}
	if pos < len(original) {
		return write(original[pos:])
	}
	return nil
}
