package lint

import "strings"

// DefaultMarker is the line-comment marker assumed when no language-specific
// marker is configured or detected.
const DefaultMarker = "//"

// CheckCommentPrefix validates a comment's text against the space-after-marker
// convention for the given marker.
//
// It returns (applies, ok): applies is false when the text does not start
// with the marker at all (not a comment this checker understands), in which
// case ok is meaningless. Otherwise ok reports whether the marker run (the
// marker plus at most one doc-style repetition of its final character) is
// followed immediately by a space or end-of-text.
//
//	"// text"     -> (true, true)
//	"//text"      -> (true, false)
//	"//"          -> (true, true)
//	"/// summary" -> (true, true)
//	"///summary"  -> (true, false)
//	"///"         -> (true, true)
func CheckCommentPrefix(text, marker string) (applies, ok bool) {
	if marker == "" {
		marker = DefaultMarker
	}

	rest, found := strings.CutPrefix(text, marker)
	if !found {
		return false, false
	}

	// Doc-style comments repeat the marker's final character once more
	// (e.g. "///" for "//", "##" for "#").
	docChar := marker[len(marker)-1]
	if len(rest) > 0 && rest[0] == docChar {
		rest = rest[1:]
	}

	if len(rest) == 0 || rest[0] == ' ' {
		return true, true
	}
	return true, false
}

// RenderedWidth measures the displayed width of a whitespace run, expanding
// each tab to tabWidth columns.
func RenderedWidth(whitespace string, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 1
	}

	width := 0
	for _, r := range whitespace {
		if r == '\t' {
			width += tabWidth
		} else {
			width++
		}
	}
	return width
}

// IsBlockOpener reports whether a source line, trimmed of surrounding
// whitespace, legitimately opens a block for the purposes of the
// newline-before-comment rule: it is blank or consists solely of an opening
// brace. A brace embedded in a larger line (e.g. "if (x) {") does not count.
func IsBlockOpener(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "" || trimmed == "{"
}
