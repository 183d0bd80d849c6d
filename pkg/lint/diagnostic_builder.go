package lint

import (
	"github.com/yaklabco/commentlint/pkg/config"
	"github.com/yaklabco/commentlint/pkg/syntax"
)

// DiagnosticBuilder helps construct Diagnostic values.
type DiagnosticBuilder struct {
	diag Diagnostic
}

// NewDiagnostic starts building a diagnostic for the given rule and node.
func NewDiagnostic(ruleID string, node *syntax.Node, message string) *DiagnosticBuilder {
	var filePath string
	var span syntax.Span

	if node != nil {
		span = node.Span
		if node.Tree != nil {
			filePath = node.Tree.SourcePath
		}
	}

	return NewDiagnosticAt(ruleID, filePath, span, message)
}

// NewDiagnosticAt starts building a diagnostic at a specific span.
func NewDiagnosticAt(
	ruleID string,
	filePath string,
	span syntax.Span,
	message string,
) *DiagnosticBuilder {
	return &DiagnosticBuilder{
		diag: Diagnostic{
			RuleID:      ruleID,
			Message:     message,
			FilePath:    filePath,
			StartLine:   span.Start.Line,
			StartColumn: span.Start.Column,
			EndLine:     span.End.Line,
			EndColumn:   span.End.Column,
		},
	}
}

// WithSeverity sets the severity.
func (b *DiagnosticBuilder) WithSeverity(s config.Severity) *DiagnosticBuilder {
	b.diag.Severity = s
	return b
}

// WithSuggestion sets a human-readable resolution hint.
func (b *DiagnosticBuilder) WithSuggestion(s string) *DiagnosticBuilder {
	b.diag.Suggestion = s
	return b
}

// Build returns the constructed Diagnostic.
func (b *DiagnosticBuilder) Build() Diagnostic {
	return b.diag
}
