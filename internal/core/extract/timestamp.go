package extract

import "regexp"

// mm:ss or h:mm:ss time codes. Word boundaries keep "12:345" and ip:port
// looking strings from partially matching; URLs containing colons are gone
// before this stage runs
var timestampRe = regexp.MustCompile(`\b\d{1,2}:\d{2}(?::\d{2})?\b`)

func timestampSpans(s string) []span {
	idx := timestampRe.FindAllStringIndex(s, -1)
	if len(idx) == 0 {
		return nil
	}
	out := make([]span, 0, len(idx))
	for _, m := range idx {
		out = append(out, span{start: m[0], end: m[1]})
	}
	return out
}
