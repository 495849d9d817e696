package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Options tunes content-quality checking.
type Options struct {
	// Strict promotes warnings to blocking.
	Strict bool
	// AllowShortening suppresses the reduction warning for edits that
	// intentionally shorten text.
	AllowShortening bool
	// ReductionFraction is the new/original length ratio below which a
	// reduction warning fires.  Zero means the default, 0.5.
	ReductionFraction float64
	// ReductionMinLen is the minimum original length for the reduction
	// check to apply at all.  Zero means the default, 80.
	ReductionMinLen int
}

const (
	defaultReductionFraction = 0.5
	defaultReductionMinLen   = 80
)

func (o Options) withDefaults() Options {
	if o.ReductionFraction == 0 {
		o.ReductionFraction = defaultReductionFraction
	}
	if o.ReductionMinLen == 0 {
		o.ReductionMinLen = defaultReductionMinLen
	}
	return o
}

// adjacent clause number and currency symbol with no separator, the
// signature of cross-contamination between unrelated source spans
var corruptRe = regexp.MustCompile(`[0-9][£$€¥]`)

// dotted leaders ending in a page number, as in a table of contents
var tocLeaderRe = regexp.MustCompile(`\.{4,}\s*[0-9]+\s*$`)

const terminalPunct = `.!?;:)"'`
const trailingSeparators = ",;:"

// NewText checks replacement text against the original block text.
// Returned issues carry no index or target; the caller fills those in.
func NewText(original, next string, opts Options) []Issue {
	opts = opts.withDefaults()
	var issues []Issue

	if !opts.AllowShortening &&
		len(original) >= opts.ReductionMinLen &&
		float64(len(next)) < opts.ReductionFraction*float64(len(original)) {
		issues = append(issues, Issue{
			Code:     CodeReduction,
			Severity: SevWarning,
			Message: fmt.Sprintf("new text is %d bytes, under %.0f%% of the original %d",
				len(next), opts.ReductionFraction*100, len(original)),
		})
	}

	if danglingEnding(original, next) {
		issues = append(issues, Issue{
			Code:     CodeDanglingEnding,
			Severity: SevWarning,
			Message:  "new text ends mid-word where the original ended on punctuation",
		})
	}

	if msg := truncationMarker(original, next); msg != "" {
		issues = append(issues, Issue{
			Code:     CodeTruncation,
			Severity: SevError,
			Message:  msg,
		})
	}

	if corruptRe.MatchString(next) && !corruptRe.MatchString(original) {
		issues = append(issues, Issue{
			Code:     CodeCorruption,
			Severity: SevError,
			Message:  "number running into a currency symbol with no separator, not present in the original",
		})
	}
	return issues
}

func lastRune(s string) rune {
	r, _ := utf8.DecodeLastRuneInString(s)
	return r
}

func danglingEnding(original, next string) bool {
	o := strings.TrimRight(original, " \t\n")
	n := strings.TrimRight(next, " \t\n")
	if o == "" || n == "" {
		return false
	}
	or, nr := lastRune(o), lastRune(n)
	return strings.ContainsRune(terminalPunct, or) &&
		(unicode.IsLetter(nr) || unicode.IsDigit(nr))
}

// truncationMarker reports why next looks cut off, or "".
func truncationMarker(original, next string) string {
	o := strings.TrimRight(original, " \t\n")
	n := strings.TrimRight(next, " \t\n")
	if n == "" {
		return ""
	}
	if strings.HasSuffix(n, "...") || strings.HasSuffix(n, "…") {
		return "new text ends in an ellipsis"
	}
	last := lastRune(n)
	if strings.ContainsRune("([{", last) {
		return fmt.Sprintf("new text ends in an open %q", last)
	}
	if strings.Count(n, `"`)%2 == 1 && strings.Count(o, `"`)%2 == 0 {
		return "new text has an unterminated quote"
	}
	// a trailing separator the original did not already end with; list
	// items legitimately end in commas
	if strings.ContainsRune(trailingSeparators, last) && (o == "" || lastRune(o) != last) {
		return fmt.Sprintf("new text ends in a trailing %q", last)
	}
	return ""
}

// TOCLike reports whether block text looks like a table of contents
// entry, which the document engine cannot track changes through.
func TOCLike(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		if tocLeaderRe.MatchString(line) {
			return true
		}
	}
	return false
}
