package engine

// Scoring constants. Signal strength follows a diminishing-returns curve so
// one strong phrase match is suggestive but never certain; 0/1/2/3+ hits
// land at roughly 0.45/0.63/0.81/0.92.
const (
	signalBase    = 0.45
	signalPerHit  = 0.18
	signalHitCap  = 3
	signalMax     = 0.92
	confidenceMin = 0.05
	confidenceMax = 0.92

	bucketHighMin   = 0.70
	bucketMediumMin = 0.50

	// Sensitivity is the caller's dial for how much ranked evidence is
	// surfaced. It is clamped to this domain, then mapped to a display
	// floor. The mapping formula is load-bearing and must not be rederived.
	SensitivityMin     = 0.20
	SensitivityMax     = 0.90
	SensitivityDefault = 0.50
)

// signalStrength converts a phrase-group hit count into a matching strength
// in [signalBase, signalMax].
func signalStrength(hits int) float64 {
	if hits > signalHitCap {
		hits = signalHitCap
	}
	s := signalBase + signalPerHit*float64(hits)
	if s > signalMax {
		s = signalMax
	}
	return s
}

// overallConfidence computes the evidence-based confidence for the text as
// a whole: a modest base, raised by distinct positive/tone group matches,
// lowered by a triggered rule flag or heavy pressure phrasing.
func overallConfidence(positiveGroups, toneGroups int, ruleTriggered bool, behaviorCount int) float64 {
	if positiveGroups > 5 {
		positiveGroups = 5
	}
	if toneGroups > 4 {
		toneGroups = 4
	}
	conf := 0.42 + 0.08*float64(positiveGroups) + 0.05*float64(toneGroups)
	if ruleTriggered {
		conf -= 0.18
	}
	if behaviorCount >= 3 {
		conf -= 0.06
	}
	if conf < confidenceMin {
		conf = confidenceMin
	}
	if conf > confidenceMax {
		conf = confidenceMax
	}
	return conf
}

// bucketFor maps a confidence score to its bucket. The thresholds are fixed
// engine constants, independent of the caller's sensitivity.
func bucketFor(conf float64) ConfidenceBucket {
	switch {
	case conf >= bucketHighMin:
		return BucketHigh
	case conf >= bucketMediumMin:
		return BucketMedium
	default:
		return BucketLow
	}
}

// clampSensitivity forces an out-of-range sensitivity into the valid domain
// rather than failing; evaluation is total.
func clampSensitivity(s float64) float64 {
	if s < SensitivityMin {
		return SensitivityMin
	}
	if s > SensitivityMax {
		return SensitivityMax
	}
	return s
}

// displayFloor maps a clamped sensitivity to the minimum score a tag or
// risk entry needs to be surfaced, roughly [0.30, 0.65] over the domain.
func displayFloor(sensitivity float64) float64 {
	return 0.45 + (sensitivity-0.50)*0.5
}
