package syntax

// Node is a single statement-level node in the syntax tree.
// Nodes form a tree structure with parent/child/sibling relationships and are
// owned by their Tree; commentlint never mutates them after construction.
type Node struct {
	// Kind identifies the statement category of this node.
	Kind NodeKind

	// Span locates the node in the source, excluding trivia.
	Span Span

	// Leading contains the trivia preceding this node, in source order.
	Leading []Trivia

	// Trailing contains the trivia following this node on the same or later
	// line, before the next node's leading trivia begin.
	Trailing []Trivia

	// Tree structure pointers.
	Parent     *Node
	FirstChild *Node
	LastChild  *Node
	Prev       *Node
	Next       *Node

	// Tree is a back-reference to the containing Tree.
	Tree *Tree
}

// HasChildren returns true if this node has any children.
func (n *Node) HasChildren() bool {
	return n.FirstChild != nil
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	count := 0
	for child := n.FirstChild; child != nil; child = child.Next {
		count++
	}
	return count
}

// Children returns a slice of all direct children in source order.
func (n *Node) Children() []*Node {
	var children []*Node
	for child := n.FirstChild; child != nil; child = child.Next {
		children = append(children, child)
	}
	return children
}

// AppendChild links child as the last child of n, maintaining sibling order.
func (n *Node) AppendChild(child *Node) {
	child.Parent = n
	child.Prev = n.LastChild
	child.Next = nil

	if n.LastChild != nil {
		n.LastChild.Next = child
	} else {
		n.FirstChild = child
	}
	n.LastChild = child
}

// StartLine returns the 1-based line on which the node's span begins.
func (n *Node) StartLine() int {
	return n.Span.Start.Line
}

// EndLine returns the 1-based line on which the node's span ends.
func (n *Node) EndLine() int {
	return n.Span.End.Line
}
