// Package guardrails loads the configured style-guide rule sets: the
// never-say term list and the term substitution map. Rules are loaded once
// at startup and are read-only afterwards, so a single RuleSet can be shared
// across concurrent evaluations without locking.
package guardrails

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Substitution pairs a flagged term with its softer replacement.
type Substitution struct {
	Term        string `json:"term"`
	Replacement string `json:"replacement"`
}

// RuleSet holds both guardrail rule sources. NeverSay keeps the configured
// order; Substitutions keeps the configuration document's insertion order,
// which drives the ordering of substitution hints.
type RuleSet struct {
	NeverSay      []string
	Substitutions []Substitution
}

// Empty returns a usable rule set with no rules.
func Empty() *RuleSet {
	return &RuleSet{}
}

// Load reads the never-say YAML document and the substitutions JSON document.
// A missing or malformed source degrades to an empty rule set for that half;
// Load always returns a usable RuleSet and never fails.
func Load(rulesPath, subsPath string, logger *zap.Logger) *RuleSet {
	rs := &RuleSet{}
	rs.NeverSay = loadNeverSay(rulesPath, logger)
	rs.Substitutions = loadSubstitutions(subsPath, logger)
	return rs
}

// loadNeverSay parses a YAML document of the form:
//
//	never_say:
//	  - must fix now
//	  - push through
func loadNeverSay(path string, logger *zap.Logger) []string {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("guardrail rules unreadable, using empty never-say list",
			zap.String("path", path),
			zap.Error(err),
		)
		return nil
	}

	var doc struct {
		NeverSay []string `yaml:"never_say"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		logger.Warn("guardrail rules malformed, using empty never-say list",
			zap.String("path", path),
			zap.Error(err),
		)
		return nil
	}

	terms := make([]string, 0, len(doc.NeverSay))
	for _, t := range doc.NeverSay {
		// An empty term would match every text.
		if strings.TrimSpace(t) == "" {
			continue
		}
		terms = append(terms, t)
	}
	return terms
}

// loadSubstitutions parses a JSON document of the form:
//
//	{"substitutions": {"crazy": "intense", ...}}
//
// It goes through yaml.Node (YAML is a JSON superset) instead of
// encoding/json because Go's JSON maps do not preserve key order, and hint
// ordering follows the document's insertion order.
func loadSubstitutions(path string, logger *zap.Logger) []Substitution {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("substitution map unreadable, using empty substitutions",
			zap.String("path", path),
			zap.Error(err),
		)
		return nil
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		logger.Warn("substitution map malformed, using empty substitutions",
			zap.String("path", path),
			zap.Error(err),
		)
		return nil
	}

	mapping := findMappingValue(&doc, "substitutions")
	if mapping == nil || mapping.Kind != yaml.MappingNode {
		return nil
	}

	seen := make(map[string]bool, len(mapping.Content)/2)
	subs := make([]Substitution, 0, len(mapping.Content)/2)
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		term := mapping.Content[i].Value
		replacement := mapping.Content[i+1].Value
		if strings.TrimSpace(term) == "" || seen[term] {
			continue
		}
		seen[term] = true
		subs = append(subs, Substitution{Term: term, Replacement: replacement})
	}
	return subs
}

// findMappingValue returns the value node for the given top-level key, or nil.
func findMappingValue(doc *yaml.Node, key string) *yaml.Node {
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value == key {
			return root.Content[i+1]
		}
	}
	return nil
}
