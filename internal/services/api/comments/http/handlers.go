// Package http provides http transport for comments
package http

import (
	stdhttp "net/http"

	"tubecleanr/internal/modkit/httpkit"
	phttp "tubecleanr/internal/platform/net/http"
	"tubecleanr/internal/services/api/comments/domain"
	normdom "tubecleanr/internal/services/normalizer/domain"
)

// Register mounts the router. The body is bound through the validating
// parser so the NormalizeInput tags run before the handler sees the payload
func Register(r httpkit.Router, runner normdom.RunnerPort) {
	h := &handlers{runner: runner}
	r.Post("/normalize", phttp.JSONHandler(h.normalize))
}

type handlers struct{ runner normdom.RunnerPort }

// swagger:route POST /comments/normalize Comments normalize
// @Summary Normalize a batch of raw comments
// @Tags comments
// @Accept json
// @Produce json
// @Param payload body domain.NormalizeInput true "Batch"
// @Success 200 {object} domain.NormalizeOutput "ok"
// @Failure 400 {object} httpkit.Envelope "missing schema or empty batch"
// @Failure 422 {object} httpkit.Envelope "unknown schema tag"
// @Router /comments/normalize [post]
func (h *handlers) normalize(r *stdhttp.Request, in domain.NormalizeInput) (any, error) {
	out, err := h.runner.NormalizeBatch(r.Context(), normdom.BatchInput{
		Schema:  in.Schema,
		Records: in.Records,
	})
	if err != nil {
		return nil, err
	}

	resp := domain.NormalizeOutput{
		BatchID:  out.BatchID,
		Schema:   out.Schema,
		Comments: make([]domain.NormalizedComment, 0, len(out.Comments)),
		Errors:   make([]domain.RecordFailure, 0, len(out.Errors)),
	}
	for _, pc := range out.Comments {
		resp.Comments = append(resp.Comments, domain.FromProcessed(pc))
	}
	for _, re := range out.Errors {
		resp.Errors = append(resp.Errors, domain.RecordFailure{Index: re.Index, Reason: re.Reason})
	}
	return resp, nil
}
