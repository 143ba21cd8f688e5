// Package domain holds the comments API transport DTOs
package domain

import "tubecleanr/internal/core/pipeline"

// NormalizeInput is the POST /comments/normalize request body
type NormalizeInput struct {
	Schema  string              `json:"schema"  validate:"required"`
	Records []map[string]string `json:"records" validate:"required,min=1,dive,required"`
}

// NormalizedComment is the wire form of one processed record
type NormalizedComment struct {
	OriginalText     string            `json:"original_text"`
	Urls             []string          `json:"urls"`
	Timestamps       []string          `json:"timestamps"`
	UserMentions     []string          `json:"user_mentions"`
	Emoticons        []string          `json:"emoticons"`
	Emoji            []string          `json:"emoji"`
	EmojiDescription []string          `json:"emoji_description"`
	CleanedText      string            `json:"cleaned_text"`
	Author           string            `json:"author,omitempty"`
	PublishedAt      string            `json:"published_at,omitempty"`
	VideoID          string            `json:"video_id,omitempty"`
	CommentID        string            `json:"comment_id,omitempty"`
	Meta             map[string]string `json:"meta,omitempty"`
}

// RecordFailure is the wire form of one per-record error
type RecordFailure struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// NormalizeOutput is the response body
type NormalizeOutput struct {
	BatchID  string              `json:"batch_id"`
	Schema   string              `json:"schema"`
	Comments []NormalizedComment `json:"comments"`
	Errors   []RecordFailure     `json:"errors"`
}

// FromProcessed converts a pipeline record to its wire form
func FromProcessed(pc pipeline.ProcessedComment) NormalizedComment {
	return NormalizedComment{
		OriginalText:     pc.OriginalText,
		Urls:             emptyOK(pc.Urls),
		Timestamps:       emptyOK(pc.Timestamps),
		UserMentions:     emptyOK(pc.UserMentions),
		Emoticons:        emptyOK(pc.Emoticons),
		Emoji:            emptyOK(pc.Emoji),
		EmojiDescription: emptyOK(pc.EmojiDescription),
		CleanedText:      pc.CleanedText,
		Author:           pc.Author,
		PublishedAt:      pc.PublishedAt,
		VideoID:          pc.VideoID,
		CommentID:        pc.CommentID,
		Meta:             pc.Meta,
	}
}

// emptyOK keeps empty sequences as [] on the wire, not null
func emptyOK(xs []string) []string {
	if xs == nil {
		return []string{}
	}
	return xs
}
