package engine

// Routing recommendations. One of these fixed messages is chosen per
// review; there are no other routing states.
const (
	routeRuleTriggered = "Rule-triggered: revise language first (remove pressure/fixing/hustle). Then re-check."
	routeHighBehaviors = "High confidence: show tone behaviors + targeted suggestions. Human approves final copy."
	routeMediumHigh    = "Medium confidence: show top tags + ask 2 clarifying questions before recommending edits."
	routeLow           = "Low confidence: insufficient signal. Ask for audience + intent + channel. Suggest substitutions."
)

// routeMessage classifies one review outcome into a routing recommendation.
// The decision table is evaluated in strict priority order: a hard
// guardrail violation always dominates confidence-based routing.
func routeMessage(bucket ConfidenceBucket, ruleTriggered bool, behaviorCount int) string {
	switch {
	case ruleTriggered:
		return routeRuleTriggered
	case bucket == BucketHigh && behaviorCount >= 1:
		return routeHighBehaviors
	case bucket == BucketHigh || bucket == BucketMedium:
		return routeMediumHigh
	default:
		return routeLow
	}
}
