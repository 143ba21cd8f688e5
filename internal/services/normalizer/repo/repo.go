// Package repo provides the normalizer repository implementation.
package repo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tubecleanr/internal/core/pipeline"
	"tubecleanr/internal/modkit/repokit"
	ptime "tubecleanr/internal/platform/time"
)

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the normalizer repository
type Storage interface {
	InsertBatch(ctx context.Context, batchID, sourceKind string, commentCount, errorCount int) error
	InsertComments(ctx context.Context, batchID string, xs []pipeline.ProcessedComment) error
}

// InsertBatch implements Storage
func (s *pg) InsertBatch(ctx context.Context, batchID, sourceKind string, commentCount, errorCount int) error {
	const q = `
		INSERT INTO comment_batches (id, source_kind, comment_count, error_count, created_at)
		VALUES ($1, $2, $3, $4, now())`
	_, err := s.q.Exec(ctx, q, batchID, sourceKind, commentCount, errorCount)
	return err
}

// InsertComments implements Storage. One multirow insert per call; the
// extraction sequences land in text[] columns, passthrough metadata in jsonb
func (s *pg) InsertComments(ctx context.Context, batchID string, xs []pipeline.ProcessedComment) error {
	if len(xs) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO processed_comments
		(batch_id, comment_id, video_id, author, published_at, original_text,
		urls, timestamps, user_mentions, emoticons, emoji, emoji_description,
		cleaned_text, meta) VALUES `)

	args := make([]any, 0, len(xs)*14)
	for i, c := range xs {
		if i > 0 {
			sb.WriteByte(',')
		}
		base := i*14 + 1
		fmt.Fprintf(&sb, "($%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d)",
			base, base+1, base+2, base+3, base+4, base+5, base+6,
			base+7, base+8, base+9, base+10, base+11, base+12, base+13)

		args = append(args,
			batchID, c.CommentID, c.VideoID, c.Author, publishedAt(c.PublishedAt), c.OriginalText,
			textArray(c.Urls), textArray(c.Timestamps), textArray(c.UserMentions),
			textArray(c.Emoticons), textArray(c.Emoji), textArray(c.EmojiDescription),
			c.CleanedText, metaOrEmpty(c.Meta),
		)
	}
	_, err := s.q.Exec(ctx, sb.String(), args...)
	return err
}

// textArray keeps empty sequences as empty text[], not NULL
func textArray(xs []string) []string {
	if xs == nil {
		return []string{}
	}
	return xs
}

func metaOrEmpty(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}

// publishedAt parses the collector timestamp; empty or unparseable becomes NULL
func publishedAt(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	return ptime.Ptr(t.UTC())
}
