package syntax

//go:generate stringer -type=TriviaKind -trimprefix=Trivia

// TriviaKind classifies non-code tokens attached to a node.
type TriviaKind uint8

// Trivia kinds cover whitespace, line breaks, and comments. Anything the
// external parser classifies differently arrives as TriviaOther.
const (
	TriviaWhitespace TriviaKind = iota
	TriviaEndOfLine
	TriviaLineComment
	TriviaOther
)

// Trivia is a classified non-code token attached to a syntax node.
// Leading trivia precede a node; trailing trivia follow it before the next
// node's leading trivia begin.
type Trivia struct {
	// Kind classifies what this trivia represents.
	Kind TriviaKind

	// Span locates the trivia in the source.
	Span Span

	// Text is the literal source text of the trivia.
	Text string
}

// LeadingWhitespaceRun returns the maximal prefix of trivia classified as
// whitespace, concatenated. It stops at the first non-whitespace item.
func LeadingWhitespaceRun(trivia []Trivia) string {
	var run string
	for _, tr := range trivia {
		if tr.Kind != TriviaWhitespace {
			break
		}
		run += tr.Text
	}
	return run
}

// CountLineBreaksAfter counts end-of-line trivia items from index from
// (exclusive) to the end of the list. A negative from counts the whole list.
func CountLineBreaksAfter(trivia []Trivia, from int) int {
	start := from + 1
	if start < 0 {
		start = 0
	}

	count := 0
	for i := start; i < len(trivia); i++ {
		if trivia[i].Kind == TriviaEndOfLine {
			count++
		}
	}
	return count
}

// LastIndexOfKind returns the index of the last trivia item of the given
// kind, scanning from the end. Returns -1 if absent.
func LastIndexOfKind(trivia []Trivia, kind TriviaKind) int {
	for i := len(trivia) - 1; i >= 0; i-- {
		if trivia[i].Kind == kind {
			return i
		}
	}
	return -1
}
