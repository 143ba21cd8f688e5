package extract

import (
	"regexp"
	"sort"
	"strings"
)

// emoticonTable is the closed set of recognized punctuation emoticons.
// Longest-first alternation so ":-)" wins over ":-" + ")" style partials.
// Every glyph carries at least one punctuation or digit character: residual
// cleanup strips those classes, so no table entry can reappear in cleaned
// text. Letter/symbol-only forms (xD, =D) are excluded for that reason
var emoticonTable = []string{
	":-)", ":)", ":-(", ":(", ":-D", ":D", ":-P", ":-p", ":P", ":p",
	";-)", ";)", ";-P", ";P", ";D",
	":-/", ":/", ":-\\", ":-|", ":|", ":-O", ":-o", ":O", ":o",
	":'(", ":'-(", ":3", ":*", ":-*",
	"<3", "</3",
	"=)", "=(",
	"^_^", "^-^", "-_-", "o_O", "O_o", "o_o", "T_T", ">:(", ">:-(",
}

var emoticonRe = func() *regexp.Regexp {
	alts := make([]string, len(emoticonTable))
	copy(alts, emoticonTable)
	sort.Slice(alts, func(i, j int) bool {
		if len(alts[i]) != len(alts[j]) {
			return len(alts[i]) > len(alts[j])
		}
		return alts[i] < alts[j]
	})
	for i, a := range alts {
		alts[i] = regexp.QuoteMeta(a)
	}
	return regexp.MustCompile("(?:" + strings.Join(alts, "|") + ")")
}()

func emoticonSpans(s string) []span {
	idx := emoticonRe.FindAllStringIndex(s, -1)
	if len(idx) == 0 {
		return nil
	}
	out := make([]span, 0, len(idx))
	for _, m := range idx {
		start, end := m[0], m[1]
		// letter-edged glyphs like T_T must stand alone, not sit inside a word
		if isWordByte(s[start]) && start > 0 && isWordByte(s[start-1]) {
			continue
		}
		if isWordByte(s[end-1]) && end < len(s) && isWordByte(s[end]) {
			continue
		}
		out = append(out, span{start: start, end: end})
	}
	return out
}
