package engine

// ConfidenceBucket classifies the overall evidence strength of one review.
type ConfidenceBucket string

const (
	BucketLow    ConfidenceBucket = "low"
	BucketMedium ConfidenceBucket = "medium"
	BucketHigh   ConfidenceBucket = "high"
)

// ScoredSignal is a named signal with its matching strength in [0, 1].
// The score is evidence-based, not a probability.
type ScoredSignal struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// FlagSet maps flag identifiers to their triggered state. Every known term
// appears as a key regardless of whether it triggered, so absence of
// evidence is explicit rather than omitted.
type FlagSet map[string]bool

// AnyTriggered reports whether at least one flag is set.
func (fs FlagSet) AnyTriggered() bool {
	for _, v := range fs {
		if v {
			return true
		}
	}
	return false
}

// CountTriggered returns the number of set flags.
func (fs FlagSet) CountTriggered() int {
	n := 0
	for _, v := range fs {
		if v {
			n++
		}
	}
	return n
}

// Report is the complete result of one evaluation. It is created fresh per
// call and is JSON-serializable as-is.
type Report struct {
	ConfidenceBucket        ConfidenceBucket `json:"confidence_bucket"`
	ConfidenceScore         float64          `json:"confidence_score"`
	ToneTags                []ScoredSignal   `json:"tone_tags"`
	RiskFlags               []ScoredSignal   `json:"risk_flags"`
	BehaviorFlags           FlagSet          `json:"behavior_flags"`
	RuleFlags               FlagSet          `json:"rule_flags"`
	RewriteGuidance         []string         `json:"rewrite_guidance"`
	SubstitutionSuggestions []string         `json:"substitution_suggestions"`
	Routing                 string           `json:"routing"`
	FinalGateQuestion       string           `json:"final_gate_question"`
}
