package engine

import (
	"sort"
	"strings"
)

// Fixed scores for flag-derived list entries. Rule flags are exact
// deterministic matches, so they carry near-maximum certainty and always
// outrank heuristic entries.
const (
	ruleRiskScore     = 0.99
	behaviorRiskScore = 0.90
	behaviorTagScore  = 0.85

	maxRiskEntries = 10
	maxToneEntries = 8
)

// riskBehaviorPrefixes select which behavior flags also count as risks.
var riskBehaviorPrefixes = []string{"pressure", "shame", "urgency"}

// assembleRisks merges triggered rule flags and pressure-type behavior
// flags into the ranked risk list. Keys are iterated in configured order so
// ties rank deterministically.
func assembleRisks(ruleFlags FlagSet, ruleKeys []string, behaviorFlags FlagSet, behaviorKeys []string) []ScoredSignal {
	risks := make([]ScoredSignal, 0, len(ruleKeys)+len(behaviorKeys))
	for _, k := range ruleKeys {
		if ruleFlags[k] {
			risks = append(risks, ScoredSignal{Name: k, Score: ruleRiskScore})
		}
	}
	for _, k := range behaviorKeys {
		if behaviorFlags[k] && hasRiskPrefix(k) {
			risks = append(risks, ScoredSignal{Name: k, Score: behaviorRiskScore})
		}
	}
	return dedupeRank(risks, maxRiskEntries)
}

// assembleTones merges scored tone evidence with every triggered behavior
// flag; a detected pressure behavior is itself a tone signal.
func assembleTones(toneEvidence []ScoredSignal, behaviorFlags FlagSet, behaviorKeys []string) []ScoredSignal {
	tones := make([]ScoredSignal, 0, len(toneEvidence)+len(behaviorKeys))
	tones = append(tones, toneEvidence...)
	for _, k := range behaviorKeys {
		if behaviorFlags[k] {
			tones = append(tones, ScoredSignal{Name: k, Score: behaviorTagScore})
		}
	}
	return dedupeRank(tones, maxToneEntries)
}

// dedupeRank sorts by score descending (stable, preserving construction
// order among ties), keeps the first entry per name, and truncates.
func dedupeRank(entries []ScoredSignal, limit int) []ScoredSignal {
	sortByScoreDesc(entries)
	seen := make(map[string]bool, len(entries))
	out := make([]ScoredSignal, 0, len(entries))
	for _, e := range entries {
		if seen[e.Name] {
			continue
		}
		seen[e.Name] = true
		out = append(out, e)
		if len(out) == limit {
			break
		}
	}
	return out
}

// filterByFloor drops entries below the display floor. Applied after
// ranking and truncation: the floor controls how much evidence is surfaced,
// never which flags were computed.
func filterByFloor(entries []ScoredSignal, floor float64) []ScoredSignal {
	out := make([]ScoredSignal, 0, len(entries))
	for _, e := range entries {
		if e.Score >= floor {
			out = append(out, e)
		}
	}
	return out
}

func sortByScoreDesc(entries []ScoredSignal) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
}

func hasRiskPrefix(name string) bool {
	for _, p := range riskBehaviorPrefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}
