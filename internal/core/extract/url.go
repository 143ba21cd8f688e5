package extract

import (
	"regexp"
	"strings"
)

// scheme-prefixed or www.-prefixed; trailing sentence punctuation is trimmed
// after the match so "see https://ex.com/v." keeps the dot out of the URL
var urlRe = regexp.MustCompile(`(?:https?://|www\.)[^\s<>"']+`)

const urlTrailing = ".,!?;:)]}'\""

func urlSpans(s string) []span {
	idx := urlRe.FindAllStringIndex(s, -1)
	if len(idx) == 0 {
		return nil
	}
	out := make([]span, 0, len(idx))
	for _, m := range idx {
		start, end := m[0], m[1]
		for end > start && strings.ContainsRune(urlTrailing, rune(s[end-1])) {
			end--
		}
		if end == start {
			continue
		}
		out = append(out, span{start: start, end: end})
	}
	return out
}
