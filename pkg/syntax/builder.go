package syntax

// TreeBuilder constructs a Tree incrementally. It exists for the parser
// boundary (pkg/treeio) and for tests; once Build is called the tree is
// treated as immutable.
type TreeBuilder struct {
	tree *Tree
}

// NewTreeBuilder creates a builder for a tree over the given source content.
func NewTreeBuilder(path, sourcePath string, content []byte) *TreeBuilder {
	return &TreeBuilder{
		tree: NewTree(path, sourcePath, content),
	}
}

// SetRoot creates the root node and attaches it to the tree.
func (b *TreeBuilder) SetRoot(kind NodeKind, span Span) *Node {
	root := &Node{
		Kind: kind,
		Span: span,
		Tree: b.tree,
	}
	b.tree.Root = root
	return root
}

// Append creates a new node as the last child of parent.
func (b *TreeBuilder) Append(parent *Node, kind NodeKind, span Span) *Node {
	node := &Node{
		Kind: kind,
		Span: span,
		Tree: b.tree,
	}
	parent.AppendChild(node)
	return node
}

// Build returns the constructed tree.
func (b *TreeBuilder) Build() *Tree {
	return b.tree
}
