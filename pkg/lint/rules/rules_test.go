package rules_test

import (
	"context"
	"testing"

	"github.com/yaklabco/commentlint/pkg/config"
	"github.com/yaklabco/commentlint/pkg/lint"
	"github.com/yaklabco/commentlint/pkg/syntax"
)

// sp builds a span in one call.
func sp(startLine, startCol, endLine, endCol int) syntax.Span {
	return syntax.Span{
		Start: syntax.Position{Line: startLine, Column: startCol},
		End:   syntax.Position{Line: endLine, Column: endCol},
	}
}

// lineSpan builds a single-line span starting at column 1.
func lineSpan(line, width int) syntax.Span {
	return sp(line, 1, line, width+1)
}

// comment builds line-comment trivia at the given line.
func comment(line int, text string) syntax.Trivia {
	return syntax.Trivia{
		Kind: syntax.TriviaLineComment,
		Span: lineSpan(line, len(text)),
		Text: text,
	}
}

// eol builds end-of-line trivia.
func eol(line int) syntax.Trivia {
	return syntax.Trivia{Kind: syntax.TriviaEndOfLine, Span: sp(line, 1, line, 1), Text: "\n"}
}

// ws builds whitespace trivia.
func ws(line int, text string) syntax.Trivia {
	return syntax.Trivia{
		Kind: syntax.TriviaWhitespace,
		Span: lineSpan(line, len(text)),
		Text: text,
	}
}

// newContext builds a RuleContext over the tree with default configuration.
func newContext(t *testing.T, tree *syntax.Tree) *lint.RuleContext {
	t.Helper()
	return lint.NewRuleContext(context.Background(), tree, config.NewConfig(), nil)
}
