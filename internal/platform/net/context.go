// Package net provides utilities for working with request contexts
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// ctxKey is an unexported key type for context values
type ctxKey string

const (
	keyBatchID ctxKey = "batch_id"
)

// WithRequest annotates context with the request id and an optional batch id
func WithRequest(ctx context.Context, reqID, batchID string) context.Context {
	if reqID != "" {
		// set chi RequestID so chimw.GetReqID can retrieve it
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	if batchID != "" {
		ctx = context.WithValue(ctx, keyBatchID, batchID)
	}
	return ctx
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string {
	if v := chimw.GetReqID(ctx); v != "" {
		return v
	}
	return ""
}

// BatchID returns the batch id on the context if present
func BatchID(ctx context.Context) string {
	if v, ok := ctx.Value(keyBatchID).(string); ok {
		return v
	}
	return ""
}
