package merge

import (
	"fmt"

	"github.com/signadot/redline/ir"
)

// headingLookahead bounds how far a boundary may be nudged forward to
// land on a heading.
const headingLookahead = 3

// Range is a half-open run [Start, End) of block positions.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (r Range) Len() int { return r.End - r.Start }

// SplitRanges partitions the snapshot's blocks into n contiguous,
// non-overlapping, gap-free ranges of near-equal size, one per
// producer.  With respectHeadings, each interior boundary is nudged
// forward (within a small window) onto a heading block so a section is
// not split mid-way; the last range absorbs any remainder either way.
func SplitRanges(n int, snap *ir.Snapshot, respectHeadings bool) ([]Range, error) {
	if n <= 0 {
		return nil, fmt.Errorf("cannot split blocks for %d producers", n)
	}
	total := snap.Len()
	size := total / n
	bounds := make([]int, 0, n+1)
	bounds = append(bounds, 0)
	for i := 1; i < n; i++ {
		b := i * size
		if respectHeadings {
			b = nudgeToHeading(snap, b, total)
		}
		if b < bounds[i-1] {
			b = bounds[i-1]
		}
		bounds = append(bounds, b)
	}
	bounds = append(bounds, total)
	out := make([]Range, n)
	for i := 0; i < n; i++ {
		out[i] = Range{Start: bounds[i], End: bounds[i+1]}
	}
	return out, nil
}

func nudgeToHeading(snap *ir.Snapshot, b, total int) int {
	if b >= total || snap.At(b).Kind == ir.Heading {
		return b
	}
	for j := b + 1; j <= b+headingLookahead && j < total; j++ {
		if snap.At(j).Kind == ir.Heading {
			return j
		}
	}
	return b
}
