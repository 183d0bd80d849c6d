package lint

import (
	"context"

	"github.com/yaklabco/commentlint/pkg/syntax"
)

// TreeLoader is the boundary to the external parser: it turns a serialized
// tree document into a syntax.Tree. Implementations must be safe for
// concurrent use.
type TreeLoader interface {
	// Load decodes a tree document into a Tree.
	// path is used for error reporting and document-format detection.
	Load(ctx context.Context, path string, content []byte) (*syntax.Tree, error)
}

// MarkerDetector resolves the line-comment marker for a source file.
// Implementations must be safe for concurrent use.
type MarkerDetector interface {
	// Marker returns the line-comment marker for the given source path
	// (e.g. "//" for C-like languages, "#" for scripts).
	Marker(sourcePath string) string
}
