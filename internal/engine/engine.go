// Package engine implements the deterministic tone/safety review engine:
// phrase-containment matching against guardrail rules and built-in signal
// groups, evidence-based confidence scoring, and routing/guidance output.
package engine

import (
	"go.uber.org/zap"

	"github.com/syncvoice/toneguard/internal/guardrails"
)

// finalGateQuestion closes every report; it is constant by design.
const finalGateQuestion = "Does this copy help someone listen to themselves without pressure?"

// ReviewEngine evaluates copy against a guardrail rule set and the built-in
// signal groups. It holds no per-call state: Evaluate is a pure function of
// its inputs and the read-only rules, so one engine can serve concurrent
// reviews without locking.
type ReviewEngine struct {
	rules         *guardrails.RuleSet
	positives     []PhraseGroup
	tones         []PhraseGroup
	pressureTerms []string
	logger        *zap.Logger
}

// NewReviewEngine builds an engine over the given rule set. The rule set is
// referenced, not copied, and must not be mutated after construction. A nil
// rule set means no guardrails; a nil logger defaults to nop.
func NewReviewEngine(rules *guardrails.RuleSet, logger *zap.Logger) *ReviewEngine {
	if rules == nil {
		rules = guardrails.Empty()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReviewEngine{
		rules:         rules,
		positives:     positiveSignalGroups,
		tones:         toneTagGroups,
		pressureTerms: defaultPressureTerms,
		logger:        logger,
	}
}

// Evaluate reviews one block of copy at the given sensitivity and returns a
// fresh Report. It is total over its input domain: empty text yields a
// low-confidence report with nothing triggered, and an out-of-range
// sensitivity is clamped rather than rejected.
func (e *ReviewEngine) Evaluate(text string, sensitivity float64) *Report {
	sensitivity = clampSensitivity(sensitivity)

	ruleFlags, ruleKeys := termFlags(blockedTermPrefix, text, e.rules.NeverSay)
	behaviorFlags, behaviorKeys := termFlags(pressurePrefix, text, e.pressureTerms)

	ruleTriggered := ruleFlags.AnyTriggered()
	behaviorCount := behaviorFlags.CountTriggered()

	positiveEvidence := scoreGroups(text, e.positives)
	toneEvidence := scoreGroups(text, e.tones)

	risks := assembleRisks(ruleFlags, ruleKeys, behaviorFlags, behaviorKeys)
	tones := assembleTones(toneEvidence, behaviorFlags, behaviorKeys)

	conf := overallConfidence(len(positiveEvidence), len(toneEvidence), ruleTriggered, behaviorCount)
	bucket := bucketFor(conf)

	floor := displayFloor(sensitivity)
	tones = filterByFloor(tones, floor)
	risks = filterByFloor(risks, floor)

	e.logger.Debug("review evaluated",
		zap.Float64("sensitivity", sensitivity),
		zap.Float64("confidence", conf),
		zap.String("bucket", string(bucket)),
		zap.Bool("rule_triggered", ruleTriggered),
		zap.Int("behavior_count", behaviorCount),
	)

	return &Report{
		ConfidenceBucket:        bucket,
		ConfidenceScore:         conf,
		ToneTags:                tones,
		RiskFlags:               risks,
		BehaviorFlags:           behaviorFlags,
		RuleFlags:               ruleFlags,
		RewriteGuidance:         rewriteGuidance(ruleTriggered),
		SubstitutionSuggestions: substitutionHints(text, e.rules.Substitutions),
		Routing:                 routeMessage(bucket, ruleTriggered, behaviorCount),
		FinalGateQuestion:       finalGateQuestion,
	}
}
