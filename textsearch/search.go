// Package textsearch locates a text span inside a block, trying an
// exact match first, then progressively more tolerant forms.  Offsets
// are byte offsets into the original block text.
package textsearch

import (
	"strings"
	"unicode"
)

// Tier grades how a match was found.
type Tier string

const (
	TierExact      Tier = "exact"
	TierNormalized Tier = "normalized"
	TierTolerant   Tier = "tolerant"
)

// Match locates searchText inside a block's text.
type Match struct {
	Found   bool   `json:"found"`
	From    int    `json:"from"`
	To      int    `json:"to"`
	Matched string `json:"matched,omitempty"`
	Tier    Tier   `json:"tier,omitempty"`
}

// Searcher is the fuzzy-find collaborator the apply step consumes.
type Searcher interface {
	Find(blockText, searchText string) Match
}

// Default is the in-tree Searcher: exact, then case- and
// whitespace-folded, then additionally punctuation-blind.
type Default struct{}

func (Default) Find(blockText, searchText string) Match {
	if searchText == "" {
		return Match{}
	}
	if i := strings.Index(blockText, searchText); i >= 0 {
		return Match{
			Found: true, From: i, To: i + len(searchText),
			Matched: searchText, Tier: TierExact,
		}
	}
	if m := foldedFind(blockText, searchText, false); m.Found {
		m.Tier = TierNormalized
		return m
	}
	if m := foldedFind(blockText, searchText, true); m.Found {
		m.Tier = TierTolerant
		return m
	}
	return Match{}
}

// foldedFind matches under case folding and whitespace collapsing,
// optionally ignoring punctuation, by walking folded views of both
// strings while tracking byte offsets into the original block text.
func foldedFind(blockText, searchText string, dropPunct bool) Match {
	hay, hayOff := fold(blockText, dropPunct)
	needle, _ := fold(searchText, dropPunct)
	if needle == "" {
		return Match{}
	}
	i := strings.Index(hay, needle)
	if i < 0 {
		return Match{}
	}
	from := hayOff[i]
	to := len(blockText)
	if i+len(needle) < len(hay) {
		to = hayOff[i+len(needle)]
	}
	return Match{Found: true, From: from, To: to, Matched: blockText[from:to]}
}

// fold lowercases, collapses whitespace runs to one space, and
// optionally drops punctuation.  It returns the folded string and, per
// folded byte, the offset of its source byte in the input.
func fold(s string, dropPunct bool) (string, []int) {
	var (
		b       strings.Builder
		offs    []int
		inSpace bool
	)
	for i, r := range s {
		switch {
		case unicode.IsSpace(r):
			if inSpace {
				continue
			}
			inSpace = true
			b.WriteByte(' ')
			offs = append(offs, i)
		case dropPunct && !unicode.IsLetter(r) && !unicode.IsDigit(r):
			continue
		default:
			inSpace = false
			lr := unicode.ToLower(r)
			n := b.Len()
			b.WriteRune(lr)
			for ; n < b.Len(); n++ {
				offs = append(offs, i)
			}
		}
	}
	return b.String(), offs
}
