package rules

import (
	"fmt"

	"github.com/yaklabco/commentlint/pkg/lint"
	"github.com/yaklabco/commentlint/pkg/syntax"
)

// NewlineBeforeCommentRule checks that new comment groups are preceded by a
// blank line unless they directly follow a block-opening brace.
type NewlineBeforeCommentRule struct {
	lint.BaseRule
}

// NewNewlineBeforeCommentRule creates a new newline-before-comment rule.
func NewNewlineBeforeCommentRule() *NewlineBeforeCommentRule {
	return &NewlineBeforeCommentRule{
		BaseRule: lint.NewBaseRule(
			"CC002",
			"newline-before-comment",
			"A new comment group should be preceded by a blank line unless it opens a block",
			[]string{"comments", "blank_lines"},
		),
	}
}

// Apply walks every block child's leading comments, distinguishing new
// comment groups from continuation lines of a multi-line comment.
func (r *NewlineBeforeCommentRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Root == nil {
		return nil, nil
	}

	var diags []lint.Diagnostic

	for _, block := range syntax.Blocks(ctx.Root) {
		if ctx.Cancelled() {
			return diags, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		for child := block.FirstChild; child != nil; child = child.Next {
			diags = append(diags, r.checkNode(ctx, child)...)
		}
	}

	return diags, nil
}

// checkNode validates the blank-line convention for each new comment group
// among one node's leading trivia.
func (r *NewlineBeforeCommentRule) checkNode(ctx *lint.RuleContext, node *syntax.Node) []lint.Diagnostic {
	var diags []lint.Diagnostic

	// No previous comment yet.
	prevLine := -1

	for _, trivia := range node.Leading {
		if trivia.Kind != syntax.TriviaLineComment {
			continue
		}

		line := trivia.Span.Start.Line

		// A comment directly below another comment continues the same
		// group; only the group's first line is checked.
		if prevLine >= 0 && line == prevLine+1 {
			prevLine = line
			continue
		}
		prevLine = line

		above := string(ctx.Tree.LineContent(line - 1))
		if lint.IsBlockOpener(above) {
			continue
		}

		diag := lint.NewDiagnosticAt(r.ID(), ctx.Tree.SourcePath, trivia.Span,
			"Comment should be preceded by a blank line").
			WithSeverity(r.DefaultSeverity()).
			WithSuggestion("Insert a blank line above the comment").
			Build()
		diags = append(diags, diag)
	}

	return diags
}
