package extract

import "unicode/utf8"

// Emoji extraction scans runes instead of using a regexp: sequences (ZWJ
// joins, variation selectors, skin tones, regional-indicator pairs, keycaps)
// need one-rune lookahead that a pattern table expresses poorly.

const (
	runeZWJ  = 0x200D
	runeVS15 = 0xFE0E
	runeVS16 = 0xFE0F
	runeCap  = 0x20E3 // combining enclosing keycap
)

// isEmojiBase reports whether r can open an emoji sequence
func isEmojiBase(r rune) bool {
	switch {
	case r >= 0x1F300 && r <= 0x1F5FF: // symbols and pictographs
		return true
	case r >= 0x1F600 && r <= 0x1F64F: // emoticons block
		return true
	case r >= 0x1F680 && r <= 0x1F6FF: // transport and map
		return true
	case r >= 0x1F900 && r <= 0x1F9FF: // supplemental symbols
		return true
	case r >= 0x1FA70 && r <= 0x1FAFF: // extended-A
		return true
	case r >= 0x2600 && r <= 0x26FF: // misc symbols
		return true
	case r >= 0x2700 && r <= 0x27BF: // dingbats
		return true
	case r >= 0x2B00 && r <= 0x2BFF: // misc symbols and arrows (stars)
		return true
	case r >= 0x1F1E6 && r <= 0x1F1FF: // regional indicators
		return true
	case r == 0x203C || r == 0x2049: // !! and !?
		return true
	case r >= 0x2190 && r <= 0x21FF && (r == 0x2194 || r == 0x2195 || r == 0x2196 ||
		r == 0x2197 || r == 0x2198 || r == 0x2199 || r == 0x21A9 || r == 0x21AA):
		return true
	}
	return false
}

func isRegional(r rune) bool { return r >= 0x1F1E6 && r <= 0x1F1FF }

func isSkinTone(r rune) bool { return r >= 0x1F3FB && r <= 0x1F3FF }

func isKeycapBase(r rune) bool {
	return r == '#' || r == '*' || (r >= '0' && r <= '9')
}

// emojiSpans walks s grouping pictographic runs into whole sequences so a
// family emoji or a flag is one entry, not four
func emojiSpans(s string) []span {
	var out []span
	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])

		// keycap: '#', '*', or digit + optional VS16 + U+20E3
		if isKeycapBase(r) {
			if end, ok := keycapEnd(s, i+size); ok {
				out = append(out, span{start: i, end: end})
				i = end
				continue
			}
			i += size
			continue
		}

		if !isEmojiBase(r) {
			i += size
			continue
		}

		start := i
		i += size

		// flags are exactly two regional indicators
		if isRegional(r) {
			r2, size2 := utf8.DecodeRuneInString(s[i:])
			if isRegional(r2) {
				i += size2
			}
			out = append(out, span{start: start, end: i})
			continue
		}

		// extend with modifiers and ZWJ-joined continuations
		for i < len(s) {
			r2, size2 := utf8.DecodeRuneInString(s[i:])
			if r2 == runeVS15 || r2 == runeVS16 || isSkinTone(r2) {
				i += size2
				continue
			}
			if r2 == runeZWJ {
				r3, size3 := utf8.DecodeRuneInString(s[i+size2:])
				if isEmojiBase(r3) {
					i += size2 + size3
					continue
				}
			}
			break
		}
		out = append(out, span{start: start, end: i})
	}
	return out
}

// keycapEnd checks for VS16? + U+20E3 after the base at offset j
func keycapEnd(s string, j int) (int, bool) {
	r, size := utf8.DecodeRuneInString(s[j:])
	if r == runeVS16 {
		j += size
		r, size = utf8.DecodeRuneInString(s[j:])
	}
	if r == runeCap {
		return j + size, true
	}
	return 0, false
}
