package domain

import "context"

// RunnerPort is the external port for batch normalization
type RunnerPort interface {
	NormalizeBatch(ctx context.Context, in BatchInput) (BatchOutput, error)
}
