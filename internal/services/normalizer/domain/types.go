// Package domain defines the core types and interfaces for the normalizer service
package domain

import "tubecleanr/internal/core/pipeline"

// BatchInput is one normalization request: the source schema tag plus the raw
// rows exactly as the collector exported them.
type BatchInput struct {
	Schema  string
	Records []map[string]string
}

// BatchOutput pairs the successful records with the per-record failures.
// Comments keep input order; Errors reference input indexes.
type BatchOutput struct {
	BatchID  string
	Schema   string
	Comments []pipeline.ProcessedComment
	Errors   []pipeline.RecordError
}
