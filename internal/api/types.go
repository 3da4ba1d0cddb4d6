package api

import "github.com/syncvoice/toneguard/internal/engine"

// ReviewRequest is the JSON body for POST /v1/review.
type ReviewRequest struct {
	Text        string   `json:"text"`
	Sensitivity *float64 `json:"sensitivity,omitempty"`
}

// ReviewResponse wraps the engine report with the request envelope. The
// report fields marshal at the top level alongside the envelope.
type ReviewResponse struct {
	ReviewID  string  `json:"review_id"`
	LatencyMs float64 `json:"latency_ms"`
	*engine.Report
}

// SubstitutionResp is one term/replacement pair of the active rule set.
type SubstitutionResp struct {
	Term        string `json:"term"`
	Replacement string `json:"replacement"`
}

// GuardrailsResponse echoes the loaded guardrail configuration.
type GuardrailsResponse struct {
	NeverSay      []string           `json:"never_say"`
	Substitutions []SubstitutionResp `json:"substitutions"`
}

// ErrorResp is a standard error response body.
type ErrorResp struct {
	Detail string `json:"detail"`
}
