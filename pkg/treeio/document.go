// Package treeio decodes tree documents into syntax trees.
//
// A tree document is the serialized form of a syntax tree produced by an
// external parser (one document per source file, as .tree.json or
// .tree.yaml). commentlint never parses source text itself; this package is
// its only ingestion path.
package treeio

import "github.com/yaklabco/commentlint/pkg/syntax"

// Document is the wire form of one parsed source file.
type Document struct {
	// Path is the original source file path the parser consumed.
	Path string `json:"path" yaml:"path"`

	// Source is the raw source text, carried for line lookups only.
	Source string `json:"source" yaml:"source"`

	// Root is the tree's top node.
	Root *NodeDoc `json:"root" yaml:"root"`
}

// NodeDoc is the wire form of a syntax node.
type NodeDoc struct {
	// Kind names the statement category (e.g. "block", "if", "return").
	// Unrecognized kinds map to syntax.KindOther.
	Kind string `json:"kind" yaml:"kind"`

	// Span locates the node in the source.
	Span syntax.Span `json:"span" yaml:"span"`

	// Leading and Trailing carry the node's attached trivia in source order.
	Leading  []TriviaDoc `json:"leading,omitempty" yaml:"leading,omitempty"`
	Trailing []TriviaDoc `json:"trailing,omitempty" yaml:"trailing,omitempty"`

	// Children are the node's direct children in source order.
	Children []*NodeDoc `json:"children,omitempty" yaml:"children,omitempty"`
}

// TriviaDoc is the wire form of one trivia token.
type TriviaDoc struct {
	// Kind names the trivia class: "whitespace", "newline", "comment".
	// Unrecognized kinds map to syntax.TriviaOther.
	Kind string `json:"kind" yaml:"kind"`

	// Span locates the trivia in the source.
	Span syntax.Span `json:"span" yaml:"span"`

	// Text is the literal source text.
	Text string `json:"text" yaml:"text"`
}

// nodeKinds maps wire kind names onto the statement taxonomy.
//
//nolint:gochecknoglobals // Read-only lookup table
var nodeKinds = map[string]syntax.NodeKind{
	"block":       syntax.KindBlock,
	"if":          syntax.KindIf,
	"loop":        syntax.KindLoop,
	"for":         syntax.KindLoop,
	"while":       syntax.KindLoop,
	"switch":      syntax.KindSwitch,
	"declaration": syntax.KindDeclaration,
	"return":      syntax.KindReturn,
	"assignment":  syntax.KindAssignment,
	"call":        syntax.KindCall,
	"invocation":  syntax.KindCall,
	"throw":       syntax.KindThrow,
}

// triviaKinds maps wire trivia names onto the trivia taxonomy.
//
//nolint:gochecknoglobals // Read-only lookup table
var triviaKinds = map[string]syntax.TriviaKind{
	"whitespace": syntax.TriviaWhitespace,
	"newline":    syntax.TriviaEndOfLine,
	"eol":        syntax.TriviaEndOfLine,
	"comment":    syntax.TriviaLineComment,
}

// NodeKindOf resolves a wire kind name, defaulting to KindOther.
func NodeKindOf(name string) syntax.NodeKind {
	if kind, ok := nodeKinds[name]; ok {
		return kind
	}
	return syntax.KindOther
}

// TriviaKindOf resolves a wire trivia name, defaulting to TriviaOther.
func TriviaKindOf(name string) syntax.TriviaKind {
	if kind, ok := triviaKinds[name]; ok {
		return kind
	}
	return syntax.TriviaOther
}
