package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/commentlint/internal/logging"
	"github.com/yaklabco/commentlint/pkg/lint"
	_ "github.com/yaklabco/commentlint/pkg/lint/rules" // Register built-in rules
)

// ruleInfo is the JSON representation of a rule for `rules --format json`.
type ruleInfo struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	DefaultEnabled  bool     `json:"default_enabled"`
	DefaultSeverity string   `json:"default_severity"`
	Tags            []string `json:"tags"`
}

func newRulesCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available rules",
		Long: `List all registered comment-convention rules with their IDs, names,
default severities, and descriptions.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRules(cmd, format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json")

	return cmd
}

func runRules(cmd *cobra.Command, format string) error {
	rules := lint.DefaultRegistry.Rules()

	switch format {
	case "json":
		return printRulesJSON(cmd, rules)
	case "text", "":
		printRulesText(rules)
		return nil
	default:
		return fmt.Errorf("unsupported format: %s (valid: text, json)", format)
	}
}

func printRulesJSON(cmd *cobra.Command, rules []lint.Rule) error {
	infos := make([]ruleInfo, 0, len(rules))
	for _, rule := range rules {
		infos = append(infos, ruleInfo{
			ID:              rule.ID(),
			Name:            rule.Name(),
			Description:     rule.Description(),
			DefaultEnabled:  rule.DefaultEnabled(),
			DefaultSeverity: string(rule.DefaultSeverity()),
			Tags:            rule.Tags(),
		})
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(infos); err != nil {
		return fmt.Errorf("encode rules: %w", err)
	}
	return nil
}

func printRulesText(rules []lint.Rule) {
	logger := logging.NewInteractive()

	for _, rule := range rules {
		logger.Info(rule.ID(),
			logging.FieldName, rule.Name(),
			logging.FieldSeverity, rule.DefaultSeverity(),
			logging.FieldDescription, rule.Description(),
		)
	}

	logger.Info(fmt.Sprintf("%d rules registered", len(rules)))
}
