package treeio

import (
	"errors"
	"fmt"
)

// Validation errors returned by Validate.
var (
	ErrNoRoot      = errors.New("document has no root node")
	ErrInvalidSpan = errors.New("node has an invalid span")
	ErrUnordered   = errors.New("children are not in source order")
)

// Validate checks structural invariants of a decoded document: a root is
// present, every span is well-formed, and siblings appear in source order.
// Content beyond that (unknown kinds, empty trivia) is tolerated.
func Validate(doc *Document) error {
	if doc == nil || doc.Root == nil {
		return ErrNoRoot
	}
	return validateNode(doc.Root)
}

func validateNode(node *NodeDoc) error {
	if !node.Span.IsValid() {
		return fmt.Errorf("%w: kind %q at %+v", ErrInvalidSpan, node.Kind, node.Span)
	}

	for i, child := range node.Children {
		if i > 0 {
			prev := node.Children[i-1]
			if child.Span.Start.Before(prev.Span.Start) {
				return fmt.Errorf("%w: %q at line %d follows %q at line %d",
					ErrUnordered,
					child.Kind, child.Span.Start.Line,
					prev.Kind, prev.Span.Start.Line)
			}
		}

		if err := validateNode(child); err != nil {
			return err
		}
	}

	return nil
}
