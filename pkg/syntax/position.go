package syntax

// Position is a 1-based line and column in a source file.
type Position struct {
	Line   int `json:"line" yaml:"line"`
	Column int `json:"column" yaml:"column"`
}

// IsValid returns true if this position has valid (positive) values.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0
}

// Before returns true if p precedes other in (line, column) order.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Column < other.Column
}

// Span is a half-open range over the source text.
type Span struct {
	Start Position `json:"start" yaml:"start"`
	End   Position `json:"end" yaml:"end"`
}

// IsValid returns true if both endpoints are valid and ordered.
func (s Span) IsValid() bool {
	return s.Start.IsValid() && s.End.IsValid() && !s.End.Before(s.Start)
}

// IsSingleLine returns true if the span starts and ends on the same line.
func (s Span) IsSingleLine() bool {
	return s.Start.Line == s.End.Line
}

// Cover returns the smallest span containing both s and other.
func (s Span) Cover(other Span) Span {
	result := s
	if other.Start.Before(result.Start) {
		result.Start = other.Start
	}
	if result.End.Before(other.End) {
		result.End = other.End
	}
	return result
}
