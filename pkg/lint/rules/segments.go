package rules

import (
	"fmt"

	"github.com/yaklabco/commentlint/pkg/lint"
	"github.com/yaklabco/commentlint/pkg/syntax"
)

// CommentedSegmentsRule checks that every statement group in a multi-line
// block is preceded by an explanatory comment.
type CommentedSegmentsRule struct {
	lint.BaseRule
}

// NewCommentedSegmentsRule creates a new commented segments rule.
func NewCommentedSegmentsRule() *CommentedSegmentsRule {
	return &CommentedSegmentsRule{
		BaseRule: lint.NewBaseRule(
			"CC001",
			"commented-segments",
			"Groups of adjacent statements should be preceded by an explanatory comment",
			[]string{"comments"},
		),
	}
}

// Apply partitions each block's statements into line-adjacent segments and
// flags every segment without an attached leading comment.
func (r *CommentedSegmentsRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Root == nil {
		return nil, nil
	}

	var diags []lint.Diagnostic

	for _, block := range syntax.Blocks(ctx.Root) {
		if ctx.Cancelled() {
			return diags, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		// A block whose braces share one line is exempt entirely.
		if block.Span.IsSingleLine() {
			continue
		}

		segments := lint.PartitionSegments(block.Children())
		for segIdx, segment := range segments {
			if segmentCommented(segment) {
				continue
			}
			if segIdx == len(segments)-1 && terminalExempt(segment) {
				continue
			}

			diag := lint.NewDiagnosticAt(r.ID(), ctx.Tree.SourcePath, segment.Span(),
				"Statement group is not preceded by an explanatory comment").
				WithSeverity(r.DefaultSeverity()).
				WithSuggestion("Add a comment on the line above this group of statements").
				Build()
			diags = append(diags, diag)
		}
	}

	return diags, nil
}

// segmentCommented reports whether the segment's first statement carries an
// attached leading comment. A comment separated from the statement by a blank
// line (two or more line breaks after it) does not count.
func segmentCommented(segment lint.Segment) bool {
	leading := segment.First().Leading

	lastComment := syntax.LastIndexOfKind(leading, syntax.TriviaLineComment)
	if lastComment < 0 {
		return false
	}

	return syntax.CountLineBreaksAfter(leading, lastComment) < 2
}

// terminalExempt reports whether a block-final segment may omit its comment:
// it must consist of exactly one statement of a self-explanatory terminal
// kind (return, assignment, bare call, or throw).
func terminalExempt(segment lint.Segment) bool {
	return len(segment.Nodes) == 1 && segment.First().Kind.IsTerminalExempt()
}
