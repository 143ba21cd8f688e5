// Package schema maps the two supported upstream comment-collection layouts
// onto the canonical record fields the pipeline works with.
//
// Two collectors are supported: tuber-style exports ("tuber", alias "schemaA")
// and vosonSML-style exports ("vosonsml", alias "schemaB"). The adapter is the
// only place that knows either layout; everything downstream sees canonical
// field names. Columns the adapter does not recognize pass through untouched
// as metadata.
package schema

import (
	"fmt"
	"strings"
)

// Kind is a closed enum of supported source layouts.
type Kind string

// Supported kinds.
const (
	KindTuber    Kind = "tuber"
	KindVosonSML Kind = "vosonsml"
)

// UnsupportedKindError is returned when a caller passes a source tag the
// adapter does not recognize. It is fatal for the whole batch: no record is
// adapted once the tag fails to parse.
type UnsupportedKindError struct {
	Kind string
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("schema: unsupported source kind %q", e.Kind)
}

// ParseKind resolves a source tag (case-insensitive, aliases included) to a
// Kind, or returns *UnsupportedKindError.
func ParseKind(tag string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "tuber", "schemaa":
		return KindTuber, nil
	case "vosonsml", "schemab":
		return KindVosonSML, nil
	default:
		return "", &UnsupportedKindError{Kind: tag}
	}
}

// Canonical holds the adapter's output: the comment text plus the canonical
// identity columns, with everything else carried in Meta unmodified.
type Canonical struct {
	Text        string
	Author      string
	PublishedAt string
	VideoID     string
	CommentID   string
	Meta        map[string]string
}

// column names per layout, canonical-slot -> source column
var (
	tuberCols = map[string]string{
		"text":         "textDisplay",
		"author":       "authorDisplayName",
		"published_at": "publishedAt",
		"video_id":     "videoId",
		"comment_id":   "id",
	}
	vosonCols = map[string]string{
		"text":         "Comment",
		"author":       "AuthorDisplayName",
		"published_at": "PublishedAt",
		"video_id":     "VideoID",
		"comment_id":   "CommentID",
	}
)

// Adapt maps one raw record (column name -> value) onto the canonical shape
// for the given kind. Unrecognized columns are preserved in Meta. Missing
// columns are fine here; an empty text field is reported by the pipeline as a
// per-record failure, not by the adapter.
func Adapt(kind Kind, record map[string]string) (Canonical, error) {
	var cols map[string]string
	switch kind {
	case KindTuber:
		cols = tuberCols
	case KindVosonSML:
		cols = vosonCols
	default:
		return Canonical{}, &UnsupportedKindError{Kind: string(kind)}
	}

	// reverse view so we can tell claimed columns from passthrough ones
	claimed := make(map[string]string, len(cols))
	for slot, col := range cols {
		claimed[col] = slot
	}

	out := Canonical{Meta: make(map[string]string)}
	for col, val := range record {
		slot, ok := claimed[col]
		if !ok {
			out.Meta[col] = val
			continue
		}
		switch slot {
		case "text":
			out.Text = val
		case "author":
			out.Author = val
		case "published_at":
			out.PublishedAt = val
		case "video_id":
			out.VideoID = val
		case "comment_id":
			out.CommentID = val
		}
	}
	return out, nil
}
