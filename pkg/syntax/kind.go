package syntax

//go:generate stringer -type=NodeKind -trimprefix=Kind

// NodeKind classifies the statement category of a syntax node.
type NodeKind uint16

// Node kinds for the statement categories commentlint distinguishes.
// External parsers map their own richer node taxonomy onto this set;
// anything unrecognized arrives as KindOther.
const (
	KindBlock NodeKind = iota

	// Structured statements.
	KindIf
	KindLoop
	KindSwitch
	KindDeclaration

	// Simple statements.
	KindReturn
	KindAssignment
	KindCall
	KindThrow

	// Fallback for unrecognized statement categories.
	KindOther
)

// IsBlock returns true if this kind introduces a braced statement list.
func (k NodeKind) IsBlock() bool {
	return k == KindBlock
}

// IsTerminalExempt returns true for the closed set of statement kinds that
// may end a block without a preceding comment: a lone return, assignment,
// bare call, or throw is considered self-explanatory.
//
// This set is deliberately closed. Adding a kind changes what the
// commented-segments rule accepts as an uncommented block ending.
func (k NodeKind) IsTerminalExempt() bool {
	switch k {
	case KindReturn, KindAssignment, KindCall, KindThrow:
		return true
	default:
		return false
	}
}
