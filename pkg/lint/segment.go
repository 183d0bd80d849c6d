package lint

import "github.com/yaklabco/commentlint/pkg/syntax"

// Segment is a maximal run of line-adjacent sibling statements within one
// block, treated as one commentable unit. Segments are derived per analysis
// and never persisted.
type Segment struct {
	// Nodes are the member statements in original sibling order.
	Nodes []*syntax.Node
}

// First returns the first statement of the segment.
func (s Segment) First() *syntax.Node {
	return s.Nodes[0]
}

// Last returns the last statement of the segment.
func (s Segment) Last() *syntax.Node {
	return s.Nodes[len(s.Nodes)-1]
}

// Span returns the span from the first statement's start to the last
// statement's end, so diagnostics underline the whole group.
func (s Segment) Span() syntax.Span {
	return syntax.Span{
		Start: s.First().Span.Start,
		End:   s.Last().Span.End,
	}
}

// PartitionSegments groups a block's direct child statements into maximal
// runs of line-adjacent statements. Two consecutive statements are
// line-adjacent if the second starts within one line of the running end line
// of the current segment; a blank line or more starts a new segment.
//
// The output covers all children in order: concatenating the segments
// reconstructs the input with no gaps or overlaps. An empty child list
// yields no segments.
func PartitionSegments(children []*syntax.Node) []Segment {
	var segments []Segment
	var current []*syntax.Node
	lastEndLine := 0

	for _, child := range children {
		switch {
		case current == nil:
			current = []*syntax.Node{child}
			lastEndLine = child.EndLine()
		case child.StartLine() <= lastEndLine+1:
			current = append(current, child)
			if child.EndLine() > lastEndLine {
				lastEndLine = child.EndLine()
			}
		default:
			segments = append(segments, Segment{Nodes: current})
			current = []*syntax.Node{child}
			lastEndLine = child.EndLine()
		}
	}

	if current != nil {
		segments = append(segments, Segment{Nodes: current})
	}

	return segments
}
