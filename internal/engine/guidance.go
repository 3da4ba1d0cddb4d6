package engine

import (
	"strings"

	"github.com/syncvoice/toneguard/internal/guardrails"
)

// ruleTriggeredGuidance is the five-principle rewrite guidance emitted when
// any guardrail rule fires.
var ruleTriggeredGuidance = []string{
	"Use **State** language (temporary) instead of identity language.",
	"Name **Signals** as information, not flaws or symptoms.",
	"Honor **Capacity** (offer options, remove urgency).",
	"Support **Regulation** without force (gentle, body-led).",
	"Add **Integration** (how to carry steadiness into the next moment).",
}

// alignedGuidance is the affirmation emitted when no rule fires.
var alignedGuidance = []string{
	"Language feels invitational, shame-free, and choice-led.",
	"Optional: add one capacity line (e.g., “if it fits today”).",
}

// rewriteGuidance returns the advisory bullets for the given rule state.
// A copy is returned so callers cannot mutate the shared sets.
func rewriteGuidance(ruleTriggered bool) []string {
	src := alignedGuidance
	if ruleTriggered {
		src = ruleTriggeredGuidance
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// substitutionHints returns a replacement hint for every substitution-map
// term found in the text, in the map's configured order rather than match
// position. The result is empty, never nil-vs-empty ambiguous, when
// nothing matches.
func substitutionHints(text string, subs []guardrails.Substitution) []string {
	normText := normalize(text)
	hints := make([]string, 0, len(subs))
	for _, s := range subs {
		norm := normalize(s.Term)
		if norm == "" {
			continue
		}
		if strings.Contains(normText, norm) {
			hints = append(hints, "Replace **"+s.Term+"** → "+s.Replacement)
		}
	}
	return hints
}
