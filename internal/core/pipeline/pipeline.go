// Package pipeline runs one comment through the strict linear stage sequence:
// sanitize -> extract (urls, timestamps, mentions, emoticons, emoji) ->
// describe emoji -> clean residual.
//
// Stages are stateless and records are independent, so batches run on a
// bounded worker pool with output order equal to input order. The only state
// a Normalizer carries is the read-only emoji dictionary it was built with.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"tubecleanr/internal/core/clean"
	"tubecleanr/internal/core/emojidict"
	"tubecleanr/internal/core/extract"
)

// RawComment is one canonical input record. Meta carries the source columns
// the schema adapter did not claim, untouched.
type RawComment struct {
	Text        string
	Author      string
	PublishedAt string
	VideoID     string
	CommentID   string
	Meta        map[string]string
}

// ProcessedComment is the terminal artifact: one pass per RawComment, never
// mutated afterward. OriginalText is the sanitized source text; every
// extracted span is a substring of it.
type ProcessedComment struct {
	OriginalText     string
	Urls             []string
	Timestamps       []string
	UserMentions     []string
	Emoticons        []string
	Emoji            []string
	EmojiDescription []string
	CleanedText      string

	Author      string
	PublishedAt string
	VideoID     string
	CommentID   string
	Meta        map[string]string
}

// RecordError reports one failed record of a batch. Non-fatal: the rest of
// the batch is unaffected.
type RecordError struct {
	Index  int
	Reason string
}

func (e RecordError) Error() string {
	return fmt.Sprintf("record %d: %s", e.Index, e.Reason)
}

// ErrEmptyText marks records whose text field is missing or blank.
var ErrEmptyText = errors.New("missing or empty comment text")

// Normalizer applies the pipeline. Safe for concurrent use; the dictionary
// must not be mutated once handed over.
type Normalizer struct {
	dict *emojidict.Dict
}

// New constructs a Normalizer around the given dictionary
func New(dict *emojidict.Dict) *Normalizer {
	return &Normalizer{dict: dict}
}

// Process runs a single record through every stage. The only failure mode is
// an absent text field; dictionary misses resolve to the unknown marker.
func (n *Normalizer) Process(rc RawComment) (ProcessedComment, error) {
	text := clean.Sanitize(rc.Text)
	if text == "" {
		return ProcessedComment{}, ErrEmptyText
	}

	ex := extract.Run(text)

	var descs []string
	if len(ex.Emoji) > 0 {
		descs = make([]string, len(ex.Emoji))
		for i, g := range ex.Emoji {
			descs[i] = n.dict.Describe(g)
		}
	}

	return ProcessedComment{
		OriginalText:     text,
		Urls:             ex.Urls,
		Timestamps:       ex.Timestamps,
		UserMentions:     ex.Mentions,
		Emoticons:        ex.Emoticons,
		Emoji:            ex.Emoji,
		EmojiDescription: descs,
		CleanedText:      clean.Clean(ex.Residual),
		Author:           rc.Author,
		PublishedAt:      rc.PublishedAt,
		VideoID:          rc.VideoID,
		CommentID:        rc.CommentID,
		Meta:             rc.Meta,
	}, nil
}

// Run maps Process over a batch with at most workers goroutines. Output
// order matches input order; failed records are collected as RecordError
// values alongside the successes instead of aborting the batch. A canceled
// ctx stops spawning and returns what completed plus ctx.Err.
func (n *Normalizer) Run(ctx context.Context, recs []RawComment, workers int) ([]ProcessedComment, []RecordError, error) {
	if workers <= 0 {
		workers = 1
	}

	type slot struct {
		pc  ProcessedComment
		err error
	}
	out := make([]slot, len(recs))

	sem := make(chan struct{}, workers)
	wg := sync.WaitGroup{}

	var ctxErr error
	spawned := 0
	for i := range recs {
		select {
		case <-ctx.Done():
			ctxErr = ctx.Err()
		default:
		}
		if ctxErr != nil {
			break
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer func() { <-sem; wg.Done() }()
			pc, err := n.Process(recs[i])
			out[i] = slot{pc: pc, err: err}
		}(i)
		spawned++
	}
	wg.Wait()

	comments := make([]ProcessedComment, 0, spawned)
	var errs []RecordError
	for i := 0; i < spawned; i++ {
		if out[i].err != nil {
			errs = append(errs, RecordError{Index: i, Reason: out[i].err.Error()})
			continue
		}
		comments = append(comments, out[i].pc)
	}
	return comments, errs, ctxErr
}
