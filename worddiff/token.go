package worddiff

import "unicode"

// tokenize splits text into maximal runs of word characters,
// non-word non-space characters, and whitespace.  Concatenating the
// tokens reproduces text exactly.  Keeping punctuation and whitespace
// runs whole means "word," and "word ," diff as single-token changes.
func tokenize(text string) []string {
	if text == "" {
		return nil
	}
	var (
		toks  []string
		start int
		cls   = -1
	)
	for i, r := range text {
		c := runeClass(r)
		if c != cls && cls != -1 {
			toks = append(toks, text[start:i])
			start = i
		}
		cls = c
	}
	toks = append(toks, text[start:])
	return toks
}

const (
	classWord = iota
	classPunct
	classSpace
)

func runeClass(r rune) int {
	switch {
	case unicode.IsSpace(r):
		return classSpace
	case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
		return classWord
	default:
		return classPunct
	}
}

// tokensToSymbols maps each distinct token to one rune of a shared
// alphabet, so a rune-level diff of the symbol strings is a token-level
// diff of the texts.  Same technique go-diff uses for its line mode.
func tokensToSymbols(a, b []string) (sa, sb []rune, alphabet []string) {
	index := map[string]rune{}
	alphabet = []string{""} // symbol 0 unused
	next := rune(1)
	enc := func(toks []string) []rune {
		out := make([]rune, 0, len(toks))
		for _, tok := range toks {
			sym, ok := index[tok]
			if !ok {
				sym = next
				next++
				// keep clear of the surrogate range, which cannot
				// round-trip through a Go string
				if next == 0xD800 {
					next = 0xE000
				}
				index[tok] = sym
				alphabet = append(alphabet, tok)
			}
			out = append(out, sym)
		}
		return out
	}
	sa = enc(a)
	sb = enc(b)
	return sa, sb, alphabet
}

// symbolsToText decodes a symbol string back to token text.
func symbolsToText(symbols string, alphabet []string) string {
	out := make([]byte, 0, len(symbols))
	for _, sym := range symbols {
		i := int(sym)
		if i >= 0xE000 {
			i -= 0x800
		}
		out = append(out, alphabet[i]...)
	}
	return string(out)
}
