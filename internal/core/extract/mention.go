package extract

import "regexp"

// @handle tokens. The handle grammar is letters, digits, underscore, dot,
// and hyphen; the "@" must not be glued to the end of a word (email local
// parts stay whole)
var mentionRe = regexp.MustCompile(`@[A-Za-z0-9_][A-Za-z0-9_.\-]*`)

func mentionSpans(s string) []span {
	idx := mentionRe.FindAllStringIndex(s, -1)
	if len(idx) == 0 {
		return nil
	}
	out := make([]span, 0, len(idx))
	for _, m := range idx {
		if m[0] > 0 && isWordByte(s[m[0]-1]) {
			continue // user@host, not a mention
		}
		out = append(out, span{start: m[0], end: m[1]})
	}
	return out
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}
