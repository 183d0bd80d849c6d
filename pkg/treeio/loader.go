package treeio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/commentlint/pkg/syntax"
)

// Loader decodes tree documents. It implements lint.TreeLoader and is safe
// for concurrent use (it holds no state).
type Loader struct{}

// NewLoader creates a tree document loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Extensions returns the tree document extensions the loader understands.
func Extensions() []string {
	return []string{".tree.json", ".tree.yaml", ".tree.yml"}
}

// Load decodes a tree document into a syntax.Tree.
// The encoding is chosen by file extension, falling back to content sniffing
// for unknown extensions.
func (l *Loader) Load(ctx context.Context, path string, content []byte) (*syntax.Tree, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("load cancelled: %w", ctx.Err())
	default:
	}

	doc, err := decode(path, content)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if err := Validate(doc); err != nil {
		return nil, fmt.Errorf("invalid tree document %s: %w", path, err)
	}

	return build(path, doc), nil
}

// decode unmarshals a document as JSON or YAML.
func decode(path string, content []byte) (*Document, error) {
	doc := &Document{}

	switch {
	case strings.HasSuffix(path, ".json"):
		if err := json.Unmarshal(content, doc); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
	case strings.HasSuffix(path, ".yaml"), strings.HasSuffix(path, ".yml"):
		if err := decodeYAMLStrict(content, doc); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	default:
		// Unknown extension: sniff. JSON documents start with an object.
		trimmed := bytes.TrimLeft(content, " \t\r\n")
		if len(trimmed) > 0 && trimmed[0] == '{' {
			if err := json.Unmarshal(content, doc); err != nil {
				return nil, fmt.Errorf("parse json: %w", err)
			}
		} else if err := decodeYAMLStrict(content, doc); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	}

	return doc, nil
}

// decodeYAMLStrict unmarshals YAML rejecting unknown fields, so malformed
// parser output fails loudly instead of silently dropping structure.
func decodeYAMLStrict(content []byte, doc *Document) error {
	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	if err := decoder.Decode(doc); err != nil {
		return err
	}
	return nil
}

// build converts a validated document into an immutable syntax.Tree.
func build(path string, doc *Document) *syntax.Tree {
	sourcePath := doc.Path
	if sourcePath == "" {
		sourcePath = SourcePathFor(path)
	}

	builder := syntax.NewTreeBuilder(path, sourcePath, []byte(doc.Source))

	root := builder.SetRoot(NodeKindOf(doc.Root.Kind), doc.Root.Span)
	root.Leading = buildTrivia(doc.Root.Leading)
	root.Trailing = buildTrivia(doc.Root.Trailing)

	appendChildren(builder, root, doc.Root.Children)

	return builder.Build()
}

func appendChildren(builder *syntax.TreeBuilder, parent *syntax.Node, children []*NodeDoc) {
	for _, childDoc := range children {
		child := builder.Append(parent, NodeKindOf(childDoc.Kind), childDoc.Span)
		child.Leading = buildTrivia(childDoc.Leading)
		child.Trailing = buildTrivia(childDoc.Trailing)
		appendChildren(builder, child, childDoc.Children)
	}
}

func buildTrivia(docs []TriviaDoc) []syntax.Trivia {
	if len(docs) == 0 {
		return nil
	}

	trivia := make([]syntax.Trivia, 0, len(docs))
	for _, td := range docs {
		trivia = append(trivia, syntax.Trivia{
			Kind: TriviaKindOf(td.Kind),
			Span: td.Span,
			Text: td.Text,
		})
	}
	return trivia
}

// SourcePathFor strips the tree document suffix from a document path,
// recovering the original source path when the document does not name one.
func SourcePathFor(docPath string) string {
	for _, ext := range Extensions() {
		if strings.HasSuffix(docPath, ext) {
			return strings.TrimSuffix(docPath, ext)
		}
	}
	return strings.TrimSuffix(docPath, filepath.Ext(docPath))
}
