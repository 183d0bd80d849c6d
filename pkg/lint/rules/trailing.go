package rules

import (
	"fmt"
	"strings"

	"github.com/yaklabco/commentlint/pkg/lint"
	"github.com/yaklabco/commentlint/pkg/syntax"
)

// trailingCommentSpaces is the required separation between code and a
// same-line trailing comment.
const trailingCommentSpaces = 2

// SpacesBeforeTrailingCommentRule checks that a comment trailing code on the
// same line is separated from it by exactly two spaces.
type SpacesBeforeTrailingCommentRule struct {
	lint.BaseRule
}

// NewSpacesBeforeTrailingCommentRule creates a new trailing comment spacing rule.
func NewSpacesBeforeTrailingCommentRule() *SpacesBeforeTrailingCommentRule {
	return &SpacesBeforeTrailingCommentRule{
		BaseRule: lint.NewBaseRule(
			"CC003",
			"spaces-before-trailing-comment",
			"Trailing comments should be separated from code by exactly two spaces",
			[]string{"comments", "whitespace"},
		),
	}
}

// Apply measures the whitespace run before each node's trailing comment.
func (r *SpacesBeforeTrailingCommentRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Root == nil {
		return nil, nil
	}

	required := ctx.OptionInt("spaces", trailingCommentSpaces)
	tabWidth := ctx.TabWidth()

	var diags []lint.Diagnostic

	err := syntax.Walk(ctx.Root, func(node *syntax.Node) error {
		if ctx.Cancelled() {
			return fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		comment, whitespace := trailingComment(node)
		if comment == nil {
			return nil
		}

		width := lint.RenderedWidth(whitespace, tabWidth)
		if width == required {
			return nil
		}

		diag := lint.NewDiagnosticAt(r.ID(), ctx.Tree.SourcePath, comment.Span,
			fmt.Sprintf("Trailing comment should be preceded by %d spaces (found width %d)", required, width)).
			WithSeverity(r.DefaultSeverity()).
			WithSuggestion(fmt.Sprintf("Separate the comment from code with exactly %d spaces", required)).
			Build()
		diags = append(diags, diag)

		return nil
	})
	if err != nil {
		return diags, err
	}

	return diags, nil
}

// trailingComment scans a node's trailing trivia from the start, accumulating
// consecutive whitespace. It returns the first non-whitespace item if it is a
// line comment, along with the accumulated whitespace text; otherwise nil.
func trailingComment(node *syntax.Node) (*syntax.Trivia, string) {
	var whitespace strings.Builder

	for i := range node.Trailing {
		trivia := node.Trailing[i]
		if trivia.Kind == syntax.TriviaWhitespace {
			whitespace.WriteString(trivia.Text)
			continue
		}
		if trivia.Kind == syntax.TriviaLineComment {
			return &node.Trailing[i], whitespace.String()
		}
		break
	}

	return nil, ""
}
