package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/syncvoice/toneguard/internal/engine"
)

// handleReview implements POST /v1/review. Empty text is accepted: the
// engine is total and returns a low-confidence report; rejecting blank
// drafts is a client concern.
func (d *Dependencies) handleReview(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req ReviewRequest
	if err := readJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResp{Detail: "Invalid JSON body"})
		return
	}

	sensitivity := engine.SensitivityDefault
	if req.Sensitivity != nil {
		sensitivity = *req.Sensitivity
	}

	report := d.Engine.Evaluate(req.Text, sensitivity)

	reviewID := uuid.New().String()
	latencyMs := float64(time.Since(start)) / float64(time.Millisecond)

	d.Logger.Debug("review served",
		zap.String("review_id", reviewID),
		zap.String("text_preview", textPreview(req.Text, previewLength)),
		zap.String("bucket", string(report.ConfidenceBucket)),
		zap.Float64("latency_ms", latencyMs),
	)

	writeJSON(w, http.StatusOK, ReviewResponse{
		ReviewID:  reviewID,
		LatencyMs: latencyMs,
		Report:    report,
	})
}

// handleGetGuardrails implements GET /v1/guardrails, echoing the active
// rule set so clients can render the configured guardrails.
func (d *Dependencies) handleGetGuardrails(w http.ResponseWriter, _ *http.Request) {
	resp := GuardrailsResponse{
		NeverSay:      make([]string, 0, len(d.Rules.NeverSay)),
		Substitutions: make([]SubstitutionResp, 0, len(d.Rules.Substitutions)),
	}
	resp.NeverSay = append(resp.NeverSay, d.Rules.NeverSay...)
	for _, s := range d.Rules.Substitutions {
		resp.Substitutions = append(resp.Substitutions, SubstitutionResp{
			Term:        s.Term,
			Replacement: s.Replacement,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// previewLength is the max runes of draft text echoed into debug logs.
const previewLength = 100

// textPreview returns the first maxLen runes of text without splitting a
// multi-byte character.
func textPreview(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen])
}
