package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/commentlint/pkg/lint/rules"
	"github.com/yaklabco/commentlint/pkg/syntax"
)

// blockTree builds a tree whose root block spans blockLines lines and adds
// one child per spec. Child leading trivia are attached as given.
type childSpec struct {
	kind    syntax.NodeKind
	start   int
	end     int
	leading []syntax.Trivia
}

func blockTree(t *testing.T, blockEndLine int, children ...childSpec) *syntax.Tree {
	t.Helper()

	builder := syntax.NewTreeBuilder("f.go.tree.json", "f.go", nil)
	root := builder.SetRoot(syntax.KindBlock, sp(1, 1, blockEndLine, 2))
	for _, spec := range children {
		child := builder.Append(root, spec.kind, sp(spec.start, 1, spec.end, 10))
		child.Leading = spec.leading
	}
	return builder.Build()
}

func TestCommentedSegments_FlagsUncommentedSegment(t *testing.T) {
	t.Parallel()

	tree := blockTree(t, 4,
		childSpec{kind: syntax.KindCall, start: 2, end: 2},
		childSpec{kind: syntax.KindCall, start: 3, end: 3},
	)

	rule := rules.NewCommentedSegmentsRule()
	diags, err := rule.Apply(newContext(t, tree))
	require.NoError(t, err)
	require.Len(t, diags, 1)

	assert.Equal(t, "CC001", diags[0].RuleID)
	assert.Equal(t, "f.go", diags[0].FilePath)
	// The diagnostic underlines the whole segment.
	assert.Equal(t, 2, diags[0].StartLine)
	assert.Equal(t, 3, diags[0].EndLine)
}

func TestCommentedSegments_CommentedSegmentPasses(t *testing.T) {
	t.Parallel()

	tree := blockTree(t, 4,
		childSpec{
			kind:  syntax.KindCall,
			start: 3, end: 3,
			leading: []syntax.Trivia{comment(2, "// setup"), eol(2)},
		},
	)

	rule := rules.NewCommentedSegmentsRule()
	diags, err := rule.Apply(newContext(t, tree))
	require.NoError(t, err)
	assert.Empty(t, diags)
}

func TestCommentedSegments_DetachedCommentDoesNotCount(t *testing.T) {
	t.Parallel()

	// Comment followed by a blank line (two line breaks) before the statement.
	tree := blockTree(t, 5,
		childSpec{
			kind:  syntax.KindCall,
			start: 4, end: 4,
			leading: []syntax.Trivia{comment(2, "// far away"), eol(2), eol(3)},
		},
	)

	rule := rules.NewCommentedSegmentsRule()
	diags, err := rule.Apply(newContext(t, tree))
	require.NoError(t, err)
	require.Len(t, diags, 1)
	assert.Equal(t, 4, diags[0].StartLine)
}

func TestCommentedSegments_SingleLineBlockExempt(t *testing.T) {
	t.Parallel()

	builder := syntax.NewTreeBuilder("f.go.tree.json", "f.go", nil)
	root := builder.SetRoot(syntax.KindBlock, sp(3, 5, 3, 30))
	builder.Append(root, syntax.KindCall, sp(3, 7, 3, 20))
	tree := builder.Build()

	rule := rules.NewCommentedSegmentsRule()
	diags, err := rule.Apply(newContext(t, tree))
	require.NoError(t, err)
	assert.Empty(t, diags)
}

func TestCommentedSegments_TerminalExemption(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		kind     syntax.NodeKind
		expected int
	}{
		{"lone return exempt", syntax.KindReturn, 0},
		{"lone assignment exempt", syntax.KindAssignment, 0},
		{"lone call exempt", syntax.KindCall, 0},
		{"lone throw exempt", syntax.KindThrow, 0},
		{"lone if not exempt", syntax.KindIf, 1},
		{"lone declaration not exempt", syntax.KindDeclaration, 1},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			// A commented first segment followed by a blank line and the
			// final segment under test.
			tree := blockTree(t, 7,
				childSpec{
					kind:  syntax.KindCall,
					start: 3, end: 3,
					leading: []syntax.Trivia{comment(2, "// setup"), eol(2)},
				},
				childSpec{kind: testCase.kind, start: 5, end: 5},
			)

			rule := rules.NewCommentedSegmentsRule()
			diags, err := rule.Apply(newContext(t, tree))
			require.NoError(t, err)
			assert.Len(t, diags, testCase.expected)
		})
	}
}

func TestCommentedSegments_TerminalExemptionOnlyForLastSegment(t *testing.T) {
	t.Parallel()

	// A lone return that is NOT the last segment gets no exemption.
	tree := blockTree(t, 7,
		childSpec{kind: syntax.KindReturn, start: 2, end: 2},
		childSpec{
			kind:  syntax.KindCall,
			start: 4, end: 4,
			leading: []syntax.Trivia{eol(2), comment(3, "// next"), eol(3)},
		},
	)

	rule := rules.NewCommentedSegmentsRule()
	diags, err := rule.Apply(newContext(t, tree))
	require.NoError(t, err)
	require.Len(t, diags, 1)
	assert.Equal(t, 2, diags[0].StartLine)
}

func TestCommentedSegments_MultiStatementFinalSegmentNotExempt(t *testing.T) {
	t.Parallel()

	// Two adjacent returns form one segment; the exemption needs exactly one.
	tree := blockTree(t, 5,
		childSpec{kind: syntax.KindReturn, start: 2, end: 2},
		childSpec{kind: syntax.KindReturn, start: 3, end: 3},
	)

	rule := rules.NewCommentedSegmentsRule()
	diags, err := rule.Apply(newContext(t, tree))
	require.NoError(t, err)
	assert.Len(t, diags, 1)
}

func TestCommentedSegments_NestedBlocksCheckedIndependently(t *testing.T) {
	t.Parallel()

	builder := syntax.NewTreeBuilder("f.go.tree.json", "f.go", nil)
	root := builder.SetRoot(syntax.KindBlock, sp(1, 1, 9, 2))
	ifNode := builder.Append(root, syntax.KindIf, sp(2, 1, 6, 2))
	ifNode.Leading = []syntax.Trivia{comment(1, "// guard"), eol(1)}
	inner := builder.Append(ifNode, syntax.KindBlock, sp(2, 8, 6, 2))
	builder.Append(inner, syntax.KindDeclaration, sp(3, 1, 3, 10))
	tree := builder.Build()

	rule := rules.NewCommentedSegmentsRule()
	diags, err := rule.Apply(newContext(t, tree))
	require.NoError(t, err)

	// The inner block's uncommented declaration is flagged even though the
	// outer if carries a comment.
	require.Len(t, diags, 1)
	assert.Equal(t, 3, diags[0].StartLine)
}

func TestCommentedSegments_EmptyTree(t *testing.T) {
	t.Parallel()

	rule := rules.NewCommentedSegmentsRule()
	tree := syntax.NewTree("f.tree.json", "f.go", nil)

	diags, err := rule.Apply(newContext(t, tree))
	require.NoError(t, err)
	assert.Empty(t, diags)
}
