package syntax_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/commentlint/pkg/syntax"
)

// buildFixtureTree constructs:
//
//	root (block)
//	  if
//	    block
//	      return
//	  call
func buildFixtureTree(t *testing.T) *syntax.Tree {
	t.Helper()

	builder := syntax.NewTreeBuilder("f.tree.json", "f.go", []byte("x\ny\nz\nw\nv"))
	root := builder.SetRoot(syntax.KindBlock, span(1, 1, 5, 2))
	ifNode := builder.Append(root, syntax.KindIf, span(1, 1, 4, 2))
	inner := builder.Append(ifNode, syntax.KindBlock, span(2, 1, 4, 2))
	builder.Append(inner, syntax.KindReturn, span(3, 1, 3, 2))
	builder.Append(root, syntax.KindCall, span(5, 1, 5, 2))
	return builder.Build()
}

func span(startLine, startCol, endLine, endCol int) syntax.Span {
	return syntax.Span{
		Start: syntax.Position{Line: startLine, Column: startCol},
		End:   syntax.Position{Line: endLine, Column: endCol},
	}
}

func TestWalk_PreOrder(t *testing.T) {
	t.Parallel()

	tree := buildFixtureTree(t)

	var kinds []syntax.NodeKind
	err := syntax.Walk(tree.Root, func(n *syntax.Node) error {
		kinds = append(kinds, n.Kind)
		return nil
	})
	require.NoError(t, err)

	expected := []syntax.NodeKind{
		syntax.KindBlock,
		syntax.KindIf,
		syntax.KindBlock,
		syntax.KindReturn,
		syntax.KindCall,
	}
	assert.Equal(t, expected, kinds)
}

func TestWalk_StopsOnError(t *testing.T) {
	t.Parallel()

	tree := buildFixtureTree(t)
	sentinel := errors.New("stop")

	visited := 0
	err := syntax.Walk(tree.Root, func(n *syntax.Node) error {
		visited++
		if n.Kind == syntax.KindIf {
			return sentinel
		}
		return nil
	})

	require.ErrorIs(t, err, sentinel)
	assert.Equal(t, 2, visited)
}

func TestWalk_NilRoot(t *testing.T) {
	t.Parallel()
	assert.NoError(t, syntax.Walk(nil, func(*syntax.Node) error { return errors.New("never") }))
}

func TestBlocks(t *testing.T) {
	t.Parallel()

	tree := buildFixtureTree(t)
	blocks := syntax.Blocks(tree.Root)

	require.Len(t, blocks, 2)
	assert.Equal(t, 1, blocks[0].StartLine())
	assert.Equal(t, 2, blocks[1].StartLine())
}

func TestFindByKind(t *testing.T) {
	t.Parallel()

	tree := buildFixtureTree(t)

	returns := syntax.FindByKind(tree.Root, syntax.KindReturn)
	require.Len(t, returns, 1)
	assert.Equal(t, 3, returns[0].StartLine())

	assert.Empty(t, syntax.FindByKind(tree.Root, syntax.KindThrow))
}

func TestDescendantTrivia_DocumentOrder(t *testing.T) {
	t.Parallel()

	builder := syntax.NewTreeBuilder("f.tree.json", "f.go", []byte("a\nb"))
	root := builder.SetRoot(syntax.KindBlock, span(1, 1, 2, 2))
	root.Leading = []syntax.Trivia{{Kind: syntax.TriviaLineComment, Text: "// head"}}
	root.Trailing = []syntax.Trivia{{Kind: syntax.TriviaLineComment, Text: "// tail"}}

	child := builder.Append(root, syntax.KindCall, span(2, 1, 2, 2))
	child.Leading = []syntax.Trivia{{Kind: syntax.TriviaWhitespace, Text: " "}}
	tree := builder.Build()

	trivia := syntax.DescendantTrivia(tree.Root)
	require.Len(t, trivia, 3)
	assert.Equal(t, "// head", trivia[0].Text)
	assert.Equal(t, " ", trivia[1].Text)
	assert.Equal(t, "// tail", trivia[2].Text)
}

func TestNode_Children(t *testing.T) {
	t.Parallel()

	tree := buildFixtureTree(t)
	root := tree.Root

	assert.True(t, root.HasChildren())
	assert.Equal(t, 2, root.ChildCount())

	children := root.Children()
	require.Len(t, children, 2)
	assert.Equal(t, syntax.KindIf, children[0].Kind)
	assert.Equal(t, syntax.KindCall, children[1].Kind)
	assert.Same(t, root, children[0].Parent)
	assert.Same(t, children[1], children[0].Next)
	assert.Same(t, children[0], children[1].Prev)
}
