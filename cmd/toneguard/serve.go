package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // Register pgx as database/sql driver
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/syncvoice/toneguard/internal/api"
	"github.com/syncvoice/toneguard/internal/engine"
	"github.com/syncvoice/toneguard/internal/guardrails"
	"github.com/syncvoice/toneguard/internal/store"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the review HTTP server",
		RunE: func(_ *cobra.Command, _ []string) error {
			runServe()
			return nil
		},
	}
}

func runServe() {
	// Logger
	logger := mustBuildLogger(envOrDefault("TONEGUARD_LOG_LEVEL", "info"))
	defer logger.Sync() //nolint:errcheck // best-effort flush

	// Config from env
	httpPort := envOrDefault("TONEGUARD_HTTP_PORT", "8080")
	rulesPath := envOrDefault("TONEGUARD_RULES_PATH", "guardrails/guardrails.yaml")
	subsPath := envOrDefault("TONEGUARD_SUBS_PATH", "guardrails/substitutions.json")
	postgresDSN := os.Getenv("TONEGUARD_POSTGRES_DSN")
	apiKeyHash := os.Getenv("TONEGUARD_API_KEY_HASH")
	cacheTTL := envOrDefaultInt("TONEGUARD_AUTH_CACHE_TTL_S", 30)

	logger.Info("starting toneguard server",
		zap.String("http_port", httpPort),
		zap.String("rules_path", rulesPath),
		zap.String("subs_path", subsPath),
		zap.Bool("auth_enabled", apiKeyHash != ""),
	)

	// Guardrails — Postgres when configured, rule files otherwise. Either
	// way the rule set is loaded once and read-only from here on.
	var rules *guardrails.RuleSet
	if postgresDSN != "" {
		db, err := sql.Open("pgx", postgresDSN)
		if err != nil {
			logger.Fatal("failed to open postgres", zap.Error(err))
		}
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
		loadCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := db.PingContext(loadCtx); err != nil {
			cancel()
			logger.Fatal("failed to ping postgres", zap.Error(err))
		}
		rules, err = store.NewStore(db).LoadRuleSet(loadCtx)
		cancel()
		// The pool is only needed for the startup load.
		_ = db.Close()
		if err != nil {
			logger.Warn("postgres rule load failed, using empty rule set", zap.Error(err))
			rules = guardrails.Empty()
		} else {
			logger.Info("guardrails loaded from postgres",
				zap.Int("never_say_terms", len(rules.NeverSay)),
				zap.Int("substitutions", len(rules.Substitutions)),
			)
		}
	} else {
		rules = guardrails.Load(rulesPath, subsPath, logger)
		logger.Info("guardrails loaded from files",
			zap.Int("never_say_terms", len(rules.NeverSay)),
			zap.Int("substitutions", len(rules.Substitutions)),
		)
	}

	// Engine
	eng := engine.NewReviewEngine(rules, logger)

	// HTTP API server
	deps := &api.Dependencies{
		Engine:     eng,
		Rules:      rules,
		Logger:     logger,
		APIKeyHash: apiKeyHash,
		CacheTTL:   time.Duration(cacheTTL) * time.Second,
	}
	httpServer := &http.Server{
		Addr:         ":" + httpPort,
		Handler:      api.NewRouter(deps),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		logger.Info("http server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	// Block until shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("received signal, shutting down", zap.String("signal", sig.String()))

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", zap.Error(err))
	}

	logger.Info("toneguard server stopped")
}
