package validate

import (
	"strings"
	"testing"
)

type newTextTest struct {
	name     string
	original string
	next     string
	opts     Options
	codes    []string
	severity Severity
}

var long = strings.Repeat("The quick brown fox jumps over the lazy dog. ", 4)

var newTextTests = []newTextTest{
	{
		name:     "ellipsis truncation",
		original: "The price is £500, payable on demand.",
		next:     "The price is £500...",
		codes:    []string{CodeTruncation},
		severity: SevError,
	},
	{
		name:     "comma both ends",
		original: "item one,",
		next:     "item two,",
		codes:    nil,
	},
	{
		name:     "comma introduced",
		original: "The deposit is refundable.",
		next:     "The deposit is refundable,",
		codes:    []string{CodeTruncation},
		severity: SevError,
	},
	{
		name:     "open bracket",
		original: "See clause 4.2 for details.",
		next:     "See clause 4.2 (",
		codes:    []string{CodeTruncation},
		severity: SevError,
	},
	{
		name:     "unterminated quote",
		original: "The term \"Goods\" is defined above.",
		next:     "The term \"Goods is defined above.",
		codes:    []string{CodeTruncation},
		severity: SevError,
	},
	{
		name:     "corruption currency glue",
		original: "Clause 2.1 sets the fee at £500.",
		next:     "Clause 2.1£500 sets the fee.",
		codes:    []string{CodeCorruption},
		severity: SevError,
	},
	{
		name:     "corruption already present",
		original: "Pay 500£500 as agreed.",
		next:     "Pay 500£500 as amended.",
		codes:    nil,
	},
	{
		name:     "dangling ending",
		original: "The agreement terminates on notice.",
		next:     "The agreement terminates on",
		codes:    []string{CodeDanglingEnding},
		severity: SevWarning,
	},
	{
		name:     "reduction",
		original: long,
		next:     "Shortened.",
		codes:    []string{CodeReduction},
	},
	{
		name:     "reduction allowed",
		original: long,
		next:     "Shortened.",
		opts:     Options{AllowShortening: true},
		codes:    nil,
	},
	{
		name:     "reduction skipped for short originals",
		original: "short text here.",
		next:     "ok.",
		codes:    nil,
	},
}

func TestNewText(t *testing.T) {
	for _, tc := range newTextTests {
		t.Run(tc.name, func(t *testing.T) {
			issues := NewText(tc.original, tc.next, tc.opts)
			var codes []string
			for _, i := range issues {
				codes = append(codes, i.Code)
			}
			if strings.Join(codes, ",") != strings.Join(tc.codes, ",") {
				t.Fatalf("codes = %v, want %v", codes, tc.codes)
			}
			if tc.severity != "" && len(issues) > 0 && issues[0].Severity != tc.severity {
				t.Errorf("severity = %s, want %s", issues[0].Severity, tc.severity)
			}
		})
	}
}

func TestEllipsisMessageMentionsEllipsis(t *testing.T) {
	issues := NewText("The price is £500, payable on demand.", "The price is £500...", Options{})
	if len(issues) != 1 {
		t.Fatalf("issues = %v", issues)
	}
	if !strings.Contains(issues[0].Message, "ellipsis") {
		t.Errorf("message %q should mention the ellipsis", issues[0].Message)
	}
}

func TestTOCLike(t *testing.T) {
	if !TOCLike("1. Definitions .......... 3") {
		t.Error("dotted leader line should read as TOC")
	}
	if TOCLike("The Supplier shall deliver. Goods arrive in 3 days.") {
		t.Error("prose should not read as TOC")
	}
}
