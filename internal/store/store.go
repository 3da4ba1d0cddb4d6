// Package store loads guardrail rules from PostgreSQL for deployments that
// manage rule sets centrally instead of shipping YAML/JSON files. The rule
// set is read once at startup; the store plays no part in evaluation.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/syncvoice/toneguard/internal/guardrails"
)

// Store provides read access to the guardrail rule tables.
type Store struct {
	db *sql.DB
}

// NewStore creates a Store backed by the given database connection pool.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// LoadRuleSet reads the never-say terms and substitution pairs in their
// configured positions. Empty tables yield an empty (still usable) rule set.
func (s *Store) LoadRuleSet(ctx context.Context) (*guardrails.RuleSet, error) {
	rs := guardrails.Empty()

	rows, err := s.db.QueryContext(ctx, `
		SELECT term FROM never_say_terms ORDER BY position, term`)
	if err != nil {
		return nil, fmt.Errorf("LoadRuleSet never_say_terms: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var term string
		if err := rows.Scan(&term); err != nil {
			return nil, fmt.Errorf("LoadRuleSet scan term: %w", err)
		}
		if term == "" {
			continue
		}
		rs.NeverSay = append(rs.NeverSay, term)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("LoadRuleSet never_say_terms rows: %w", err)
	}

	subRows, err := s.db.QueryContext(ctx, `
		SELECT term, replacement FROM substitutions ORDER BY position, term`)
	if err != nil {
		return nil, fmt.Errorf("LoadRuleSet substitutions: %w", err)
	}
	defer subRows.Close()
	for subRows.Next() {
		var sub guardrails.Substitution
		if err := subRows.Scan(&sub.Term, &sub.Replacement); err != nil {
			return nil, fmt.Errorf("LoadRuleSet scan substitution: %w", err)
		}
		if sub.Term == "" {
			continue
		}
		rs.Substitutions = append(rs.Substitutions, sub)
	}
	if err := subRows.Err(); err != nil {
		return nil, fmt.Errorf("LoadRuleSet substitutions rows: %w", err)
	}

	return rs, nil
}
