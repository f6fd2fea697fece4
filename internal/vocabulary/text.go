package vocabulary

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Normalize lowercases s, trims it and collapses inner whitespace.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Contains reports whether keyword occurs in text according to the match mode.
// Both arguments are normalized before comparison.
func (t Tables) Contains(text, keyword string) bool {
	return containsKeyword(t.MatchMode, Normalize(text), Normalize(keyword))
}

// ContainsAny reports whether any of the keywords occurs in text.
func (t Tables) ContainsAny(text string, keywords []string) bool {
	text = Normalize(text)
	for _, k := range keywords {
		if containsKeyword(t.MatchMode, text, Normalize(k)) {
			return true
		}
	}
	return false
}

// FirstIn returns the first keyword (in slice order) found in text.
func (t Tables) FirstIn(text string, keywords []string) (string, bool) {
	text = Normalize(text)
	for _, k := range keywords {
		if containsKeyword(t.MatchMode, text, Normalize(k)) {
			return k, true
		}
	}
	return "", false
}

func containsKeyword(mode MatchMode, text, keyword string) bool {
	if keyword == "" || text == "" {
		return false
	}
	if mode == MatchSubstring {
		return strings.Contains(text, keyword)
	}

	first, _ := utf8.DecodeRuneInString(keyword)
	last, _ := utf8.DecodeLastRuneInString(keyword)
	checkBefore := isWordRune(first)
	checkAfter := isWordRune(last)

	offset := 0
	for {
		idx := strings.Index(text[offset:], keyword)
		if idx < 0 {
			return false
		}
		start := offset + idx
		end := start + len(keyword)

		okBefore := true
		if checkBefore && start > 0 {
			r, _ := utf8.DecodeLastRuneInString(text[:start])
			okBefore = !isWordRune(r)
		}
		okAfter := true
		if checkAfter && end < len(text) {
			r, _ := utf8.DecodeRuneInString(text[end:])
			okAfter = !isWordRune(r)
		}
		if okBefore && okAfter {
			return true
		}

		_, size := utf8.DecodeRuneInString(text[start:])
		offset = start + size
	}
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
