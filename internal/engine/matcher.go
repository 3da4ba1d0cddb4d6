package engine

import "strings"

// Flag identifier prefixes. Banned-term and pressure-term checks are
// singleton phrase groups whose result is exposed as a boolean keyed by
// prefix + configured term.
const (
	blockedTermPrefix = "blocked_term:"
	pressurePrefix    = "pressure:"
)

// PhraseGroup is a named set of trigger phrases, such as a tone category or
// a positive-trait category. Groups are immutable once built.
type PhraseGroup struct {
	Name    string
	Phrases []string
}

// normalize prepares text for matching: trim, lower-case, and collapse
// internal whitespace runs to single spaces. Matching is plain containment
// over this form; the raw text is never altered.
func normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// countHits returns the number of distinct phrases found in the normalized
// text. Multiple occurrences of the same phrase still count once.
func countHits(normText string, phrases []string) int {
	hits := 0
	for _, p := range phrases {
		norm := normalize(p)
		if norm == "" {
			continue
		}
		if strings.Contains(normText, norm) {
			hits++
		}
	}
	return hits
}

// termFlags runs the singleton-group check for each term and returns the
// flag map plus the ordered key list. The key carries the configured term
// verbatim; the containment test runs on normalized forms. Every term gets
// a key whether or not it triggered.
func termFlags(prefix, text string, terms []string) (FlagSet, []string) {
	normText := normalize(text)
	flags := make(FlagSet, len(terms))
	keys := make([]string, 0, len(terms))
	for _, term := range terms {
		norm := normalize(term)
		if norm == "" {
			continue
		}
		key := prefix + term
		if _, dup := flags[key]; dup {
			continue
		}
		flags[key] = strings.Contains(normText, norm)
		keys = append(keys, key)
	}
	return flags, keys
}

// scoreGroups scores each phrase group by its distinct-phrase hit count and
// returns only groups with at least one hit, ranked by score descending.
// Ties keep group definition order, so output is deterministic.
func scoreGroups(text string, groups []PhraseGroup) []ScoredSignal {
	normText := normalize(text)
	scored := make([]ScoredSignal, 0, len(groups))
	for _, g := range groups {
		hits := countHits(normText, g.Phrases)
		if hits == 0 {
			continue
		}
		scored = append(scored, ScoredSignal{Name: g.Name, Score: signalStrength(hits)})
	}
	sortByScoreDesc(scored)
	return scored
}
