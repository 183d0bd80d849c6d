package syntax

// WalkFunc is the function signature for Walk callbacks.
// Return a non-nil error to stop the walk.
type WalkFunc func(n *Node) error

// Walk performs a pre-order traversal of the tree starting at root.
// The callback walkFunc is called for each node. If walkFunc returns a non-nil
// error, the walk stops immediately and returns that error.
func Walk(root *Node, walkFunc WalkFunc) error {
	if root == nil {
		return nil
	}

	if err := walkFunc(root); err != nil {
		return err
	}

	for child := root.FirstChild; child != nil; child = child.Next {
		if err := Walk(child, walkFunc); err != nil {
			return err
		}
	}

	return nil
}

// Blocks returns every block node under root (including root itself if it is
// a block), in pre-order.
func Blocks(root *Node) []*Node {
	return FindAll(root, func(n *Node) bool {
		return n.Kind.IsBlock()
	})
}

// FindAll returns all nodes matching the predicate.
func FindAll(root *Node, predicate func(n *Node) bool) []*Node {
	var result []*Node

	//nolint:errcheck,revive // Walk only returns nil errors in this usage
	Walk(root, func(node *Node) error {
		if predicate(node) {
			result = append(result, node)
		}
		return nil
	})

	return result
}

// FindByKind returns all nodes of the specified kind.
func FindByKind(root *Node, kind NodeKind) []*Node {
	return FindAll(root, func(n *Node) bool {
		return n.Kind == kind
	})
}

// DescendantTrivia returns all trivia under root in document order: each
// node's leading trivia, then its children's trivia recursively, then its
// trailing trivia.
func DescendantTrivia(root *Node) []Trivia {
	var result []Trivia
	collectTrivia(root, &result)
	return result
}

func collectTrivia(n *Node, out *[]Trivia) {
	if n == nil {
		return
	}

	*out = append(*out, n.Leading...)
	for child := n.FirstChild; child != nil; child = child.Next {
		collectTrivia(child, out)
	}
	*out = append(*out, n.Trailing...)
}
