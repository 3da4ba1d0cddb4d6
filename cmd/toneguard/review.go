package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/syncvoice/toneguard/internal/engine"
	"github.com/syncvoice/toneguard/internal/guardrails"
)

func newReviewCmd() *cobra.Command {
	var (
		sensitivity float64
		rulesPath   string
		subsPath    string
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "review [file]",
		Short: "Review draft copy from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readDraft(args)
			if err != nil {
				return err
			}

			rules := guardrails.Load(rulesPath, subsPath, zap.NewNop())
			report := engine.NewReviewEngine(rules, nil).Evaluate(text, sensitivity)

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			renderReport(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().Float64VarP(&sensitivity, "sensitivity", "s", engine.SensitivityDefault,
		"display sensitivity in [0.20, 0.90]; higher surfaces less evidence")
	cmd.Flags().StringVar(&rulesPath, "rules", "guardrails/guardrails.yaml", "never-say rules YAML path")
	cmd.Flags().StringVar(&subsPath, "substitutions", "guardrails/substitutions.json", "substitution map JSON path")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the raw report as JSON")
	return cmd
}

func readDraft(args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("read draft: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

// renderReport prints the human-readable review, section by section.
func renderReport(w io.Writer, report *engine.Report) {
	fmt.Fprintf(w, "Confidence bucket:  %s\n", report.ConfidenceBucket)
	fmt.Fprintf(w, "Confidence score:   %.2f\n\n", report.ConfidenceScore)
	fmt.Fprintf(w, "Routing: %s\n", report.Routing)

	fmt.Fprintln(w, "\nTone behaviors + tags:")
	renderSignals(w, report.ToneTags, "none detected")

	fmt.Fprintln(w, "\nRisk flags:")
	renderSignals(w, report.RiskFlags, "none detected")

	fmt.Fprintln(w, "\nRule flags (deterministic checks):")
	renderFlags(w, report.RuleFlags)

	fmt.Fprintln(w, "\nBehavior flags (pressure / urgency signals):")
	renderFlags(w, report.BehaviorFlags)

	fmt.Fprintln(w, "\nRewrite guidance:")
	for _, g := range report.RewriteGuidance {
		fmt.Fprintf(w, "  - %s\n", g)
	}

	if len(report.SubstitutionSuggestions) > 0 {
		fmt.Fprintln(w, "\nSubstitution suggestions:")
		for _, s := range report.SubstitutionSuggestions {
			fmt.Fprintf(w, "  - %s\n", s)
		}
	}

	fmt.Fprintf(w, "\nFinal gate question:\n  > %s\n", report.FinalGateQuestion)
}


func renderSignals(w io.Writer, signals []engine.ScoredSignal, empty string) {
	if len(signals) == 0 {
		fmt.Fprintf(w, "  (%s)\n", empty)
		return
	}
	for _, s := range signals {
		fmt.Fprintf(w, "  - %s (%.2f)\n", s.Name, s.Score)
	}
}

// renderFlags lists flags triggered-first, then alphabetically.
func renderFlags(w io.Writer, flags engine.FlagSet) {
	if len(flags) == 0 {
		fmt.Fprintln(w, "  (no flags configured)")
		return
	}
	keys := make([]string, 0, len(flags))
	for k := range flags {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if flags[keys[i]] != flags[keys[j]] {
			return flags[keys[i]]
		}
		return keys[i] < keys[j]
	})
	for _, k := range keys {
		mark := "[ ]"
		if flags[k] {
			mark = "[x]"
		}
		fmt.Fprintf(w, "  %s %s\n", mark, k)
	}
}
