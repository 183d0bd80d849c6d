package pretty

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/commentlint/pkg/config"
	"github.com/yaklabco/commentlint/pkg/lint"
)

func sampleDiagnostic() *lint.Diagnostic {
	return &lint.Diagnostic{
		RuleID:      "CC004",
		RuleName:    "comment-starts-with-space",
		Severity:    config.SeverityWarning,
		Message:     "comment text should start with a space",
		FilePath:    "pkg/util.go",
		StartLine:   12,
		StartColumn: 5,
		EndLine:     12,
		EndColumn:   14,
		Suggestion:  "insert a space after the comment marker",
	}
}

func TestFormatDiagnostic(t *testing.T) {
	t.Parallel()

	styles := NewStyles(false)
	out := styles.FormatDiagnostic(sampleDiagnostic(), false, "")

	assert.Contains(t, out, "pkg/util.go:12:5")
	assert.Contains(t, out, "warning")
	assert.Contains(t, out, "(CC004)")
	assert.Contains(t, out, "comment text should start with a space")
	assert.Contains(t, out, "Suggestion: insert a space after the comment marker")
}

func TestFormatDiagnosticWithFormat(t *testing.T) {
	t.Parallel()

	styles := NewStyles(false)
	diag := sampleDiagnostic()

	out := styles.FormatDiagnosticWithFormat(diag, false, "", config.RuleFormatName)
	assert.Contains(t, out, "(comment-starts-with-space)")

	out = styles.FormatDiagnosticWithFormat(diag, false, "", config.RuleFormatCombined)
	assert.Contains(t, out, "(CC004/comment-starts-with-space)")
}

func TestFormatDiagnostic_SourceContext(t *testing.T) {
	t.Parallel()

	styles := NewStyles(false)
	out := styles.FormatDiagnostic(sampleDiagnostic(), true, "    //comment here")

	assert.Contains(t, out, "    //comment here")
	assert.Contains(t, out, "^")
}

func TestFormatSeverity(t *testing.T) {
	t.Parallel()

	styles := NewStyles(false)
	assert.Equal(t, "error", styles.FormatSeverity(config.SeverityError))
	assert.Equal(t, "warning", styles.FormatSeverity(config.SeverityWarning))
	assert.Equal(t, "info", styles.FormatSeverity(config.SeverityInfo))
	assert.Equal(t, "odd", styles.FormatSeverity(config.Severity("odd")))
}

func TestFormatSourceContext_CaretPlacement(t *testing.T) {
	t.Parallel()

	styles := NewStyles(false)
	out := styles.FormatSourceContext("doWork() //x", 10)

	assert.Contains(t, out, "doWork() //x\n")
	assert.Contains(t, out, "         ^")
}

func TestFormatFileHeader(t *testing.T) {
	t.Parallel()

	styles := NewStyles(false)
	assert.Equal(t, "a.go (3 issues)", styles.FormatFileHeader("a.go", 3))
	assert.Equal(t, "clean.go", styles.FormatFileHeader("clean.go", 0))
}
