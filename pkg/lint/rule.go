// Package lint provides the rule engine, diagnostics, and registry for commentlint.
package lint

import (
	"github.com/yaklabco/commentlint/pkg/config"
	"github.com/yaklabco/commentlint/pkg/syntax"
)

// Diagnostic represents a single convention violation found in a source tree.
type Diagnostic struct {
	// RuleID is the identifier of the rule that produced this diagnostic.
	RuleID string

	// RuleName is the human-readable name of the rule (e.g., "commented-segments").
	RuleName string

	// Message is the human-readable description of the issue.
	Message string

	// Severity indicates the importance of the diagnostic.
	Severity config.Severity

	// FilePath is the path of the source file the violation refers to.
	FilePath string

	// StartLine is the 1-based line number where the issue starts.
	StartLine int

	// StartColumn is the 1-based column number where the issue starts.
	StartColumn int

	// EndLine is the 1-based line number where the issue ends.
	EndLine int

	// EndColumn is the 1-based column number where the issue ends.
	EndColumn int

	// Suggestion is an optional human-readable hint for resolving the issue.
	Suggestion string
}

// Span returns the diagnostic location as a syntax.Span.
func (d *Diagnostic) Span() syntax.Span {
	return syntax.Span{
		Start: syntax.Position{Line: d.StartLine, Column: d.StartColumn},
		End:   syntax.Position{Line: d.EndLine, Column: d.EndColumn},
	}
}

// Rule defines the interface that all commentlint rules must implement.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "CC001").
	ID() string

	// Name returns the human-readable name of the rule.
	Name() string

	// Description returns a detailed description of what the rule checks.
	Description() string

	// DefaultEnabled returns whether the rule is enabled by default.
	DefaultEnabled() bool

	// DefaultSeverity returns the default severity for this rule.
	DefaultSeverity() config.Severity

	// Tags returns categorization tags for this rule (e.g., ["comments"]).
	Tags() []string

	// Apply executes the rule against the given context and returns diagnostics.
	//
	// Rules must:
	//   - Return diagnostics for each violation found.
	//   - Respect context cancellation.
	//   - Return error only for internal failures, not violations.
	//   - Keep no state between invocations.
	Apply(ctx *RuleContext) ([]Diagnostic, error)
}
