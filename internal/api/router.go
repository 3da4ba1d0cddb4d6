// Package api is the HTTP surface over the review engine: one evaluation
// endpoint, a guardrails viewer, and health. Thin glue only; all logic
// lives in the engine.
package api

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/syncvoice/toneguard/internal/engine"
	"github.com/syncvoice/toneguard/internal/guardrails"
)

// Dependencies holds shared state injected into all HTTP handlers.
type Dependencies struct {
	Engine *engine.ReviewEngine
	Rules  *guardrails.RuleSet
	Logger *zap.Logger

	// APIKeyHash is a bcrypt hash of the expected Bearer token. Empty
	// disables auth.
	APIKeyHash string
	CacheTTL   time.Duration
}

// NewRouter builds the HTTP mux with all routes wired up.
func NewRouter(deps *Dependencies) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /v1/review", deps.authMiddleware(deps.handleReview))
	mux.HandleFunc("GET /v1/guardrails", deps.authMiddleware(deps.handleGetGuardrails))

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return corsMiddleware(requestLogging(mux, deps.Logger))
}
