package engine

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/syncvoice/toneguard/internal/guardrails"
)

func testRules() *guardrails.RuleSet {
	return &guardrails.RuleSet{
		NeverSay: []string{"must fix now", "push through it"},
		Substitutions: []guardrails.Substitution{
			{Term: "crazy", Replacement: "intense"},
			{Term: "lazy", Replacement: "low capacity"},
		},
	}
}

func TestEvaluate_EmptyText(t *testing.T) {
	e := NewReviewEngine(testRules(), nil)
	report := e.Evaluate("", 0.5)

	if report.ConfidenceBucket != BucketLow {
		t.Errorf("bucket = %s, want low", report.ConfidenceBucket)
	}
	for k, v := range report.RuleFlags {
		if v {
			t.Errorf("rule flag %q triggered on empty text", k)
		}
	}
	for k, v := range report.BehaviorFlags {
		if v {
			t.Errorf("behavior flag %q triggered on empty text", k)
		}
	}
	if len(report.ToneTags) != 0 {
		t.Errorf("expected no tone tags, got %v", report.ToneTags)
	}
	if len(report.RiskFlags) != 0 {
		t.Errorf("expected no risk flags, got %v", report.RiskFlags)
	}
	if report.Routing != routeLow {
		t.Errorf("routing = %q, want the insufficient-signal message", report.Routing)
	}
	if len(report.SubstitutionSuggestions) != 0 {
		t.Errorf("expected no substitutions, got %v", report.SubstitutionSuggestions)
	}
}

func TestEvaluate_BlockedTermVerbatim(t *testing.T) {
	e := NewReviewEngine(testRules(), nil)
	report := e.Evaluate("You must fix now.", 0.5)

	if !report.RuleFlags["blocked_term:must fix now"] {
		t.Error("expected blocked_term:must fix now to trigger")
	}
	if report.RuleFlags["blocked_term:push through it"] {
		t.Error("unrelated rule flag triggered")
	}
	if report.Routing != routeRuleTriggered {
		t.Errorf("routing = %q, want the rule-triggered message", report.Routing)
	}
	if report.ConfidenceBucket == BucketHigh {
		t.Error("a triggered rule must downgrade confidence below high")
	}
	if len(report.RiskFlags) == 0 || report.RiskFlags[0].Name != "blocked_term:must fix now" {
		t.Errorf("expected the rule risk to rank first, got %v", report.RiskFlags)
	}
	if !almostEqual(report.RiskFlags[0].Score, 0.99) {
		t.Errorf("rule risk score = %.2f, want 0.99", report.RiskFlags[0].Score)
	}
	if len(report.RewriteGuidance) != 5 {
		t.Errorf("expected the five-bullet guidance, got %v", report.RewriteGuidance)
	}
}

func TestEvaluate_AlignedCopy(t *testing.T) {
	e := NewReviewEngine(testRules(), nil)
	report := e.Evaluate("At your pace, you can choose what fits today, and you're allowed to pause.", 0.5)

	if report.ConfidenceBucket != BucketMedium && report.ConfidenceBucket != BucketHigh {
		t.Errorf("bucket = %s, want medium or high", report.ConfidenceBucket)
	}
	for k, v := range report.RuleFlags {
		if v {
			t.Errorf("rule flag %q triggered on aligned copy", k)
		}
	}

	found := map[string]bool{}
	for _, tag := range report.ToneTags {
		found[tag.Name] = true
		if tag.Score < 0.45 || tag.Score > 0.92 {
			t.Errorf("tone tag %s score %.2f outside [0.45, 0.92]", tag.Name, tag.Score)
		}
	}
	for _, want := range []string{"invitational", "non_urgent", "choice_led"} {
		if !found[want] {
			t.Errorf("expected tone tag %q to surface, got %v", want, report.ToneTags)
		}
	}
	if len(report.RewriteGuidance) != 2 {
		t.Errorf("expected the two-item affirmation, got %v", report.RewriteGuidance)
	}
}

func TestEvaluate_PressureHeavyCopy(t *testing.T) {
	e := NewReviewEngine(guardrails.Empty(), nil)
	report := e.Evaluate("You must act now, this is urgent.", 0.5)

	triggered := 0
	for _, v := range report.BehaviorFlags {
		if v {
			triggered++
		}
	}
	if triggered < 3 {
		t.Fatalf("expected at least 3 behavior flags, got %d (%v)", triggered, report.BehaviorFlags)
	}

	// No positive/tone evidence here: base 0.42 minus the pressure penalty.
	if !almostEqual(report.ConfidenceScore, 0.36) {
		t.Errorf("confidence = %.4f, want 0.36 (pressure penalty applied)", report.ConfidenceScore)
	}

	wantFlags := []string{"pressure:must", "pressure:now", "pressure:urgent"}
	toneNames := map[string]float64{}
	for _, tag := range report.ToneTags {
		toneNames[tag.Name] = tag.Score
	}
	riskNames := map[string]float64{}
	for _, r := range report.RiskFlags {
		riskNames[r.Name] = r.Score
	}
	for _, name := range wantFlags {
		if score, ok := toneNames[name]; !ok || !almostEqual(score, 0.85) {
			t.Errorf("expected tone tag %s at 0.85, got %v", name, report.ToneTags)
		}
		if score, ok := riskNames[name]; !ok || !almostEqual(score, 0.90) {
			t.Errorf("expected risk entry %s at 0.90, got %v", name, report.RiskFlags)
		}
	}
}

func TestEvaluate_SubstitutionSuggestions(t *testing.T) {
	e := NewReviewEngine(testRules(), nil)

	report := e.Evaluate("that's crazy", 0.5)
	if len(report.SubstitutionSuggestions) != 1 || report.SubstitutionSuggestions[0] != "Replace **crazy** → intense" {
		t.Errorf("unexpected suggestions: %v", report.SubstitutionSuggestions)
	}

	report = e.Evaluate("that's wonderful", 0.5)
	if len(report.SubstitutionSuggestions) != 0 {
		t.Errorf("expected empty suggestions, got %v", report.SubstitutionSuggestions)
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	e := NewReviewEngine(testRules(), nil)
	text := "You must push through it now, no excuses, that's crazy but choose to pause today."

	first, err := json.Marshal(e.Evaluate(text, 0.55))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	second, err := json.Marshal(e.Evaluate(text, 0.55))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("repeated evaluation differs:\n%s\n%s", first, second)
	}
}

func TestEvaluate_ConfidenceAlwaysBounded(t *testing.T) {
	e := NewReviewEngine(testRules(), nil)
	texts := []string{
		"",
		"must fix now urgent immediately push through should",
		"at your pace breathe ground pause settle steady choose choice optional invite",
		"plain unrelated text about gardening",
	}

	for _, text := range texts {
		report := e.Evaluate(text, 0.5)
		if report.ConfidenceScore < 0.05 || report.ConfidenceScore > 0.92 {
			t.Errorf("confidence %.4f out of bounds for %q", report.ConfidenceScore, text)
		}
		want := bucketFor(report.ConfidenceScore)
		if report.ConfidenceBucket != want {
			t.Errorf("bucket %s inconsistent with score %.4f", report.ConfidenceBucket, report.ConfidenceScore)
		}
	}
}

func TestEvaluate_HigherSensitivitySurfacesNoMore(t *testing.T) {
	e := NewReviewEngine(testRules(), nil)
	text := "You must act now: choose to pause, breathe, and ground at your pace."

	prevTones, prevRisks := -1, -1
	for _, sensitivity := range []float64{0.90, 0.70, 0.50, 0.30, 0.20} {
		report := e.Evaluate(text, sensitivity)
		if prevTones >= 0 {
			if len(report.ToneTags) < prevTones {
				t.Errorf("lowering sensitivity to %.2f reduced tone tags: %d -> %d",
					sensitivity, prevTones, len(report.ToneTags))
			}
			if len(report.RiskFlags) < prevRisks {
				t.Errorf("lowering sensitivity to %.2f reduced risks: %d -> %d",
					sensitivity, prevRisks, len(report.RiskFlags))
			}
		}
		prevTones, prevRisks = len(report.ToneTags), len(report.RiskFlags)
	}
}

func TestEvaluate_OutOfRangeSensitivityClamped(t *testing.T) {
	e := NewReviewEngine(testRules(), nil)
	text := "choose to pause at your pace"

	wide, _ := json.Marshal(e.Evaluate(text, 5))
	max, _ := json.Marshal(e.Evaluate(text, 0.90))
	if !bytes.Equal(wide, max) {
		t.Error("sensitivity above the domain should behave like the maximum")
	}

	low, _ := json.Marshal(e.Evaluate(text, -3))
	min, _ := json.Marshal(e.Evaluate(text, 0.20))
	if !bytes.Equal(low, min) {
		t.Error("sensitivity below the domain should behave like the minimum")
	}
}

func TestEvaluate_NilRuleSet(t *testing.T) {
	e := NewReviewEngine(nil, nil)
	report := e.Evaluate("anything at all", 0.5)
	if len(report.RuleFlags) != 0 {
		t.Errorf("expected no rule flags without rules, got %v", report.RuleFlags)
	}
	if report.FinalGateQuestion == "" {
		t.Error("final gate question must always be present")
	}
}
