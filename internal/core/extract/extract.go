// Package extract implements the ordered extraction stages that pull URLs,
// video timestamps, @-mentions, punctuation emoticons, and Unicode emoji out
// of comment text.
//
// Stage order is fixed: urls -> timestamps -> mentions -> emoticons -> emoji.
// Each stage blanks the bytes it claimed with spaces instead of cutting them
// out, so later stages can never re-match inside an earlier match and every
// reported span stays valid against the original text. Blanking preserves
// byte offsets; a multibyte rune becomes that many spaces.
package extract

// Result holds one record's extracted sequences, each in left-to-right order
// of appearance, plus the residual text with all claimed spans blanked.
type Result struct {
	Urls       []string
	Timestamps []string
	Mentions   []string
	Emoticons  []string
	Emoji      []string
	Residual   string
}

// span is a half-open byte range into the working text
type span struct{ start, end int }

// Run applies every stage in order to s and returns the per-category matches
// and the masked residual. Stages are stateless; Run is safe to call
// concurrently.
func Run(s string) Result {
	var res Result
	if s == "" {
		return res
	}

	work := []byte(s)

	res.Urls = runStage(work, urlSpans)
	res.Timestamps = runStage(work, timestampSpans)
	res.Mentions = runStage(work, mentionSpans)
	res.Emoticons = runStage(work, emoticonSpans)
	res.Emoji = runStage(work, emojiSpans)
	res.Residual = string(work)
	return res
}

// runStage collects the stage's matches from the working text, then blanks
// each claimed span in place
func runStage(work []byte, stage func(string) []span) []string {
	spans := stage(string(work))
	if len(spans) == 0 {
		return nil
	}
	out := make([]string, 0, len(spans))
	for _, sp := range spans {
		out = append(out, string(work[sp.start:sp.end]))
		for i := sp.start; i < sp.end; i++ {
			work[i] = ' '
		}
	}
	return out
}
