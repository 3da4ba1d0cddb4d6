package engine

// Built-in phrase groups for the desired communication traits. These are
// part of the engine, not the external guardrail configuration: the
// guardrails say what must never appear, while these describe what good
// copy sounds like.

// positiveSignalGroups are the desired-trait categories.
var positiveSignalGroups = []PhraseGroup{
	{Name: "state_based", Phrases: []string{
		"state",
		"right now",
		"today",
		"in this moment",
		"temporary",
		"current",
	}},
	{Name: "signal_based", Phrases: []string{
		"signal",
		"signals",
		"information",
		"data point",
		"your system is sending",
		"your body is sending",
	}},
	{Name: "capacity_honoring", Phrases: []string{
		"capacity",
		"at your pace",
		"as you're able",
		"what’s possible",
		"what is possible",
		"meet yourself where",
	}},
	{Name: "regulation_focused", Phrases: []string{
		"regulation",
		"regulate",
		"support regulation",
		"steady",
		"settle",
		"ground",
		"pause",
		"breathe",
	}},
	{Name: "integration_oriented", Phrases: []string{
		"integration",
		"carry this",
		"carry that",
		"into your next moment",
		"into life",
		"beyond this",
	}},
	{Name: "choice_led", Phrases: []string{
		"choose",
		"choice",
		"if it fits",
		"does that fit",
		"you can",
		"you’re allowed",
		"optional",
		"invite",
		"invitational",
	}},
}

// toneTagGroups are the stylistic-quality categories.
var toneTagGroups = []PhraseGroup{
	{Name: "invitational", Phrases: []string{"invite", "invitational", "you can", "you’re allowed", "if you want", "optional"}},
	{Name: "shame_free", Phrases: []string{"no shame", "without shame", "no judgment", "non-judgment", "gentle"}},
	{Name: "body_led", Phrases: []string{"body", "nervous system", "somatic", "breath", "breathe", "ground", "pause"}},
	{Name: "non_urgent", Phrases: []string{"at your pace", "when you're ready", "no rush", "take your time", "slow"}},
	{Name: "choice_led", Phrases: []string{"choose", "choice", "if it fits", "does that fit", "you decide"}},
}

// defaultPressureTerms are the pressure/urgency terms behind behavior flags.
var defaultPressureTerms = []string{
	"must",
	"now",
	"fix",
	"urgent",
	"immediately",
	"push through",
	"should",
}
