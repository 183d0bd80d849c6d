package treeio_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/commentlint/pkg/syntax"
	"github.com/yaklabco/commentlint/pkg/treeio"
)

const jsonDoc = `{
  "path": "main.go",
  "source": "func main() {\n\tdoWork()  // start\n}\n",
  "root": {
    "kind": "block",
    "span": {"start": {"line": 1, "column": 13}, "end": {"line": 3, "column": 2}},
    "children": [
      {
        "kind": "call",
        "span": {"start": {"line": 2, "column": 2}, "end": {"line": 2, "column": 10}},
        "trailing": [
          {"kind": "whitespace", "span": {"start": {"line": 2, "column": 10}, "end": {"line": 2, "column": 12}}, "text": "  "},
          {"kind": "comment", "span": {"start": {"line": 2, "column": 12}, "end": {"line": 2, "column": 20}}, "text": "// start"}
        ]
      }
    ]
  }
}`

const yamlDoc = `path: main.py
source: "x = 1\n"
root:
  kind: block
  span:
    start: {line: 1, column: 1}
    end: {line: 1, column: 6}
  children:
    - kind: assignment
      span:
        start: {line: 1, column: 1}
        end: {line: 1, column: 6}
`

func TestLoader_Load_JSON(t *testing.T) {
	t.Parallel()

	loader := treeio.NewLoader()
	tree, err := loader.Load(context.Background(), "main.go.tree.json", []byte(jsonDoc))
	require.NoError(t, err)

	assert.Equal(t, "main.go.tree.json", tree.Path)
	assert.Equal(t, "main.go", tree.SourcePath)
	require.NotNil(t, tree.Root)
	assert.Equal(t, syntax.KindBlock, tree.Root.Kind)

	children := tree.Root.Children()
	require.Len(t, children, 1)
	assert.Equal(t, syntax.KindCall, children[0].Kind)

	trailing := children[0].Trailing
	require.Len(t, trailing, 2)
	assert.Equal(t, syntax.TriviaWhitespace, trailing[0].Kind)
	assert.Equal(t, syntax.TriviaLineComment, trailing[1].Kind)
	assert.Equal(t, "// start", trailing[1].Text)

	// Source content is indexed for line lookups.
	assert.Equal(t, "\tdoWork()  // start", string(tree.LineContent(2)))
}

func TestLoader_Load_YAML(t *testing.T) {
	t.Parallel()

	loader := treeio.NewLoader()
	tree, err := loader.Load(context.Background(), "main.py.tree.yaml", []byte(yamlDoc))
	require.NoError(t, err)

	assert.Equal(t, "main.py", tree.SourcePath)
	require.NotNil(t, tree.Root)
	require.Equal(t, 1, tree.Root.ChildCount())
	assert.Equal(t, syntax.KindAssignment, tree.Root.FirstChild.Kind)
}

func TestLoader_Load_YAMLRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	doc := `path: main.py
source: ""
bogus_field: true
root:
  kind: block
  span:
    start: {line: 1, column: 1}
    end: {line: 1, column: 2}
`

	loader := treeio.NewLoader()
	_, err := loader.Load(context.Background(), "main.py.tree.yaml", []byte(doc))
	require.Error(t, err)
}

func TestLoader_Load_InvalidJSON(t *testing.T) {
	t.Parallel()

	loader := treeio.NewLoader()
	_, err := loader.Load(context.Background(), "broken.tree.json", []byte("{not json"))
	require.Error(t, err)
}

func TestLoader_Load_MissingRoot(t *testing.T) {
	t.Parallel()

	loader := treeio.NewLoader()
	_, err := loader.Load(context.Background(), "empty.tree.json", []byte(`{"path": "x.go", "source": ""}`))
	require.ErrorIs(t, err, treeio.ErrNoRoot)
}

func TestLoader_Load_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loader := treeio.NewLoader()
	_, err := loader.Load(ctx, "main.go.tree.json", []byte(jsonDoc))
	require.ErrorIs(t, err, context.Canceled)
}

func TestLoader_Load_SniffsJSONWithoutExtension(t *testing.T) {
	t.Parallel()

	loader := treeio.NewLoader()
	tree, err := loader.Load(context.Background(), "document", []byte(jsonDoc))
	require.NoError(t, err)
	assert.Equal(t, "main.go", tree.SourcePath)
}

func TestLoader_SourcePathFallsBackToDocumentPath(t *testing.T) {
	t.Parallel()

	doc := `{
  "source": "",
  "root": {"kind": "block", "span": {"start": {"line": 1, "column": 1}, "end": {"line": 1, "column": 2}}}
}`

	loader := treeio.NewLoader()
	tree, err := loader.Load(context.Background(), "pkg/util.go.tree.json", []byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "pkg/util.go", tree.SourcePath)
}

func TestSourcePathFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		docPath  string
		expected string
	}{
		{"main.go.tree.json", "main.go"},
		{"script.py.tree.yaml", "script.py"},
		{"query.sql.tree.yml", "query.sql"},
		{"odd.document", "odd"},
	}

	for _, testCase := range tests {
		t.Run(testCase.docPath, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.expected, treeio.SourcePathFor(testCase.docPath))
		})
	}
}

func TestNodeKindOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		expected syntax.NodeKind
	}{
		{"block", syntax.KindBlock},
		{"if", syntax.KindIf},
		{"for", syntax.KindLoop},
		{"while", syntax.KindLoop},
		{"loop", syntax.KindLoop},
		{"switch", syntax.KindSwitch},
		{"declaration", syntax.KindDeclaration},
		{"return", syntax.KindReturn},
		{"assignment", syntax.KindAssignment},
		{"call", syntax.KindCall},
		{"invocation", syntax.KindCall},
		{"throw", syntax.KindThrow},
		{"lambda", syntax.KindOther},
		{"", syntax.KindOther},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.expected, treeio.NodeKindOf(testCase.name))
		})
	}
}

func TestTriviaKindOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, syntax.TriviaWhitespace, treeio.TriviaKindOf("whitespace"))
	assert.Equal(t, syntax.TriviaEndOfLine, treeio.TriviaKindOf("newline"))
	assert.Equal(t, syntax.TriviaEndOfLine, treeio.TriviaKindOf("eol"))
	assert.Equal(t, syntax.TriviaLineComment, treeio.TriviaKindOf("comment"))
	assert.Equal(t, syntax.TriviaOther, treeio.TriviaKindOf("shebang"))
}

func TestExtensions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{".tree.json", ".tree.yaml", ".tree.yml"}, treeio.Extensions())
}
