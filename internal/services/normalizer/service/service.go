// Package service implements the normalizer service
package service

import (
	"context"

	"github.com/google/uuid"

	"tubecleanr/internal/core/pipeline"
	"tubecleanr/internal/core/schema"
	"tubecleanr/internal/modkit/repokit"
	perr "tubecleanr/internal/platform/errors"
	"tubecleanr/internal/services/normalizer/domain"
	"tubecleanr/internal/services/normalizer/repo"
)

// Config for the normalizer service
type Config struct {
	Workers int
	DryRun  bool
}

// Service implements domain.RunnerPort
type Service struct {
	DB   repokit.TxRunner // nil means in-memory only (CLI JSONL mode)
	Repo repokit.Binder[repo.Storage]
	Norm *pipeline.Normalizer
	Cfg  Config
}

// New constructs a new normalizer service. db may be nil when persistence is
// not wanted; the binder is then never exercised
func New(db repokit.TxRunner, b repokit.Binder[repo.Storage], norm *pipeline.Normalizer, cfg Config) *Service {
	w := cfg.Workers
	if w <= 0 {
		w = 1
	}
	return &Service{
		DB:   db,
		Repo: b,
		Norm: norm,
		Cfg:  Config{Workers: w, DryRun: cfg.DryRun},
	}
}

// NormalizeBatch adapts, normalizes, and (unless dry-run) persists one batch.
// An unknown schema tag aborts before any record is touched; per-record
// failures are collected and do not abort the batch.
func (s *Service) NormalizeBatch(ctx context.Context, in domain.BatchInput) (domain.BatchOutput, error) {
	kind, err := schema.ParseKind(in.Schema)
	if err != nil {
		return domain.BatchOutput{}, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "schema %q", in.Schema)
	}

	recs := make([]pipeline.RawComment, 0, len(in.Records))
	for _, row := range in.Records {
		c, err := schema.Adapt(kind, row)
		if err != nil {
			// cannot happen once the kind parsed; treat as wiring bug
			return domain.BatchOutput{}, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "adapt record")
		}
		recs = append(recs, pipeline.RawComment{
			Text:        c.Text,
			Author:      c.Author,
			PublishedAt: c.PublishedAt,
			VideoID:     c.VideoID,
			CommentID:   c.CommentID,
			Meta:        c.Meta,
		})
	}

	comments, recErrs, err := s.Norm.Run(ctx, recs, s.Cfg.Workers)
	if err != nil {
		return domain.BatchOutput{}, err
	}

	out := domain.BatchOutput{
		BatchID:  uuid.NewString(),
		Schema:   string(kind),
		Comments: comments,
		Errors:   recErrs,
	}

	if s.Cfg.DryRun || s.DB == nil {
		return out, nil
	}

	err = repokit.WithTx(ctx, s.DB, func(q repokit.Queryer) error {
		st := s.Repo.Bind(q)
		if err := st.InsertBatch(ctx, out.BatchID, out.Schema, len(comments), len(recErrs)); err != nil {
			return err
		}
		return st.InsertComments(ctx, out.BatchID, comments)
	})
	if err != nil {
		return domain.BatchOutput{}, perr.Wrap(err, perr.ErrorCodeDB, "persist batch")
	}
	return out, nil
}
