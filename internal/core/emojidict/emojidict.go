// Package emojidict loads the glyph -> description reference table from the
// embedded emoji.json and optionally layers user-supplied CSV rows on top.
//
// The dictionary is expected to be incomplete: new emoji ship faster than
// reference tables do. A miss is therefore never an error; Describe resolves
// it to an explicit unknown marker so downstream counts can surface coverage
// gaps instead of silently dropping glyphs. After construction the dict is
// read-only and safe for concurrent lookups.
package emojidict

import (
	_ "embed"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed emoji.json
var embedded []byte

// UnknownMarker is the description reported for glyphs absent from the dict.
const UnknownMarker = "unknown emoji"

// runs of code points stripped when falling back to a sequence's base glyph:
// variation selectors, ZWJ, and skin-tone modifiers
func isJoiner(r rune) bool {
	switch {
	case r == 0x200D: // ZWJ
		return true
	case r == 0xFE0E || r == 0xFE0F: // variation selectors
		return true
	case r >= 0x1F3FB && r <= 0x1F3FF: // skin tones
		return true
	}
	return false
}

type rawEntry struct {
	Glyph       string `json:"glyph"`
	Description string `json:"description"`
}

type rawTable struct {
	Version int        `json:"version"`
	Emoji   []rawEntry `json:"emoji"`
}

// Dict is the compiled lookup table.
type Dict struct {
	m map[string]string
}

// Load parses the embedded emoji.json into a Dict.
func Load() (*Dict, error) {
	var rt rawTable
	if err := json.Unmarshal(embedded, &rt); err != nil {
		return nil, fmt.Errorf("emojidict: parse emoji.json: %w", err)
	}
	if rt.Version != 1 {
		return nil, fmt.Errorf("emojidict: unsupported emoji.json version %d (want 1)", rt.Version)
	}
	d := &Dict{m: make(map[string]string, len(rt.Emoji))}
	for _, e := range rt.Emoji {
		g := strings.TrimSpace(e.Glyph)
		desc := strings.TrimSpace(e.Description)
		if g == "" || desc == "" {
			continue
		}
		d.m[g] = desc
	}
	return d, nil
}

// MergeFile layers a two-column CSV (glyph, description) on top of the dict.
// User rows win on conflict so the shipped table can be corrected without a
// rebuild. A header row is tolerated: rows whose first field is "emoji" or
// "glyph" (any case) are skipped. Call before handing the dict to a pipeline;
// MergeFile is not safe against concurrent Describe calls.
func (d *Dict) MergeFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("emojidict: open %s: %w", path, err)
	}
	defer f.Close() // nolint: errcheck

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // tolerate ragged rows; we validate per row
	line := 0
	for {
		rec, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("emojidict: read %s: %w", path, err)
		}
		line++
		if len(rec) < 2 {
			return fmt.Errorf("emojidict: %s row %d: want 2 columns, got %d", path, line, len(rec))
		}
		g := strings.TrimSpace(rec[0])
		desc := strings.TrimSpace(rec[1])
		if g == "" || desc == "" {
			continue
		}
		if line == 1 {
			low := strings.ToLower(g)
			if low == "emoji" || low == "glyph" {
				continue
			}
		}
		d.m[g] = desc
	}
}

// Describe returns the description for glyph, trying in order: the sequence
// as-is, the sequence with joiners/modifiers stripped, then the first code
// point alone. Misses resolve to UnknownMarker, never an error.
func (d *Dict) Describe(glyph string) string {
	if desc, ok := d.m[glyph]; ok {
		return desc
	}
	stripped := strings.Map(func(r rune) rune {
		if isJoiner(r) {
			return -1
		}
		return r
	}, glyph)
	if stripped != glyph {
		if desc, ok := d.m[stripped]; ok {
			return desc
		}
	}
	for _, r := range stripped {
		if desc, ok := d.m[string(r)]; ok {
			return desc
		}
		break
	}
	return UnknownMarker
}

// Len reports the number of entries. Handy for the meta endpoint and tests.
func (d *Dict) Len() int { return len(d.m) }
