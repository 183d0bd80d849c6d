// Package syntax provides the core syntax-tree representation for commentlint.
// It defines an immutable view of a source file as produced by an external
// parser:
// - Tree: the complete file representation with raw source and line index
// - Trivia: classified whitespace, newline, and comment tokens
// - Nodes: statement-level structure carrying leading and trailing trivia
//
// The package never parses source text; trees arrive fully formed from the
// parser boundary (see pkg/treeio).
package syntax

// Tree is an immutable view of one source file's syntax tree at a specific time.
// It holds the raw source content, line metadata, and the root node.
type Tree struct {
	// Path is the tree document path (may be empty for in-memory trees).
	Path string

	// SourcePath is the path of the original source file the external parser
	// consumed. Used for language detection, never read from disk.
	SourcePath string

	// Content is the full source file bytes. Kept only for line lookups;
	// commentlint never tokenizes it.
	Content []byte

	// Lines contains metadata for each line in the source.
	Lines []LineInfo

	// Root is the tree's top node.
	Root *Node
}

// LineInfo holds metadata for a single line in a file.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where newline characters begin.
	// For lines without a trailing newline (e.g., last line), this equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just after the newline (or end of file).
	EndOffset int
}

// NewTree creates a Tree from source content with a built line index.
// The root is nil until supplied by a builder or loader.
func NewTree(path, sourcePath string, content []byte) *Tree {
	return &Tree{
		Path:       path,
		SourcePath: sourcePath,
		Content:    content,
		Lines:      BuildLines(content),
		Root:       nil,
	}
}
