// Package clean produces the residual text field: what is left of a comment
// after extraction, with digits and punctuation stripped and whitespace
// collapsed.
//
// Pipeline order
// 1 UTF-8 repair drop invalid bytes
// 2 Remove digit characters (Unicode N)
// 3 Remove punctuation (Unicode P)
// 4 Collapse whitespace runs to single spaces and trim
//
// Case is preserved; the residual is meant to stay readable, not folded.
// Clean never fails and an empty result is valid (all-content comments).
package clean

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			runes.Remove(runes.In(unicode.N)), // digits and number forms
			runes.Remove(runes.In(unicode.P)), // punctuation
		)
	},
}

// Clean strips digits and punctuation from s and normalizes whitespace
func Clean(s string) string {
	if s == "" {
		return ""
	}

	s = strings.ToValidUTF8(s, "")

	tr := chainPool.Get().(transform.Transformer)
	ns, _, _ := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)

	return collapseSpaces(ns)
}

// collapseSpaces converts whitespace runs to a single ASCII space and trims
// both ends
func collapseSpaces(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	inWS := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inWS = true
			continue
		}
		if inWS && b.Len() > 0 {
			b.WriteByte(' ')
		}
		inWS = false
		b.WriteRune(r)
	}
	return b.String()
}
