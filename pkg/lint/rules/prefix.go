package rules

import (
	"fmt"

	"github.com/yaklabco/commentlint/pkg/lint"
	"github.com/yaklabco/commentlint/pkg/syntax"
)

// CommentStartsWithSpaceRule checks that every comment's text begins with a
// space after its marker.
type CommentStartsWithSpaceRule struct {
	lint.BaseRule
}

// NewCommentStartsWithSpaceRule creates a new comment prefix rule.
func NewCommentStartsWithSpaceRule() *CommentStartsWithSpaceRule {
	return &CommentStartsWithSpaceRule{
		BaseRule: lint.NewBaseRule(
			"CC004",
			"comment-starts-with-space",
			"Comment text should begin with a single space after the comment marker",
			[]string{"comments"},
		),
	}
}

// Apply scans every comment in the tree, independent of block structure.
// Trailing comments already covered by the spacing convention are checked
// here too; both rules can fire on the same token for different reasons.
func (r *CommentStartsWithSpaceRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Root == nil {
		return nil, nil
	}

	var diags []lint.Diagnostic

	for _, trivia := range syntax.DescendantTrivia(ctx.Root) {
		if ctx.Cancelled() {
			return diags, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		if trivia.Kind != syntax.TriviaLineComment {
			continue
		}

		applies, wellFormed := lint.CheckCommentPrefix(trivia.Text, ctx.Marker)
		if !applies || wellFormed {
			continue
		}

		diag := lint.NewDiagnosticAt(r.ID(), ctx.Tree.SourcePath, trivia.Span,
			fmt.Sprintf("Comment text should start with a space after %q", ctx.Marker)).
			WithSeverity(r.DefaultSeverity()).
			WithSuggestion("Insert a space between the comment marker and the text").
			Build()
		diags = append(diags, diag)
	}

	return diags, nil
}
