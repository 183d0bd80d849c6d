package syntax_test

import (
	"testing"

	"github.com/yaklabco/commentlint/pkg/syntax"
)

func TestBuildLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected []syntax.LineInfo
	}{
		{
			name:     "empty content",
			content:  "",
			expected: []syntax.LineInfo{},
		},
		{
			name:    "single line no newline",
			content: "hello",
			expected: []syntax.LineInfo{
				{StartOffset: 0, NewlineStart: 5, EndOffset: 5},
			},
		},
		{
			name:    "single line with LF",
			content: "hello\n",
			expected: []syntax.LineInfo{
				{StartOffset: 0, NewlineStart: 5, EndOffset: 6},
				{StartOffset: 6, NewlineStart: 6, EndOffset: 6},
			},
		},
		{
			name:    "single line with CRLF",
			content: "hello\r\n",
			expected: []syntax.LineInfo{
				{StartOffset: 0, NewlineStart: 5, EndOffset: 7},
				{StartOffset: 7, NewlineStart: 7, EndOffset: 7},
			},
		},
		{
			name:    "multiple lines LF",
			content: "line1\nline2\nline3",
			expected: []syntax.LineInfo{
				{StartOffset: 0, NewlineStart: 5, EndOffset: 6},
				{StartOffset: 6, NewlineStart: 11, EndOffset: 12},
				{StartOffset: 12, NewlineStart: 17, EndOffset: 17},
			},
		},
		{
			name:    "multiple lines CRLF",
			content: "line1\r\nline2\r\n",
			expected: []syntax.LineInfo{
				{StartOffset: 0, NewlineStart: 5, EndOffset: 7},
				{StartOffset: 7, NewlineStart: 12, EndOffset: 14},
				{StartOffset: 14, NewlineStart: 14, EndOffset: 14},
			},
		},
		{
			name:    "only newline",
			content: "\n",
			expected: []syntax.LineInfo{
				{StartOffset: 0, NewlineStart: 0, EndOffset: 1},
				{StartOffset: 1, NewlineStart: 1, EndOffset: 1},
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			lines := syntax.BuildLines([]byte(testCase.content))

			if len(lines) != len(testCase.expected) {
				t.Fatalf("expected %d lines, got %d", len(testCase.expected), len(lines))
			}

			for i, exp := range testCase.expected {
				got := lines[i]
				if got.StartOffset != exp.StartOffset ||
					got.NewlineStart != exp.NewlineStart ||
					got.EndOffset != exp.EndOffset {
					t.Errorf("line %d: expected %+v, got %+v", i, exp, got)
				}
			}
		})
	}
}

func TestTree_LineContent(t *testing.T) {
	t.Parallel()

	tree := syntax.NewTree("test.tree.json", "test.go", []byte("alpha\nbeta\r\ngamma"))

	tests := []struct {
		name     string
		line     int
		expected string
	}{
		{"first line", 1, "alpha"},
		{"CRLF line excludes carriage return", 2, "beta"},
		{"last line without newline", 3, "gamma"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := tree.LineContent(testCase.line)
			if string(got) != testCase.expected {
				t.Errorf("line %d: expected %q, got %q", testCase.line, testCase.expected, got)
			}
		})
	}

	if tree.LineContent(0) != nil {
		t.Error("line 0 should return nil")
	}
	if tree.LineContent(4) != nil {
		t.Error("out-of-range line should return nil")
	}
}

func TestTree_LineAt(t *testing.T) {
	t.Parallel()

	tree := syntax.NewTree("test.tree.json", "test.go", []byte("line1\nline2\nline3"))

	tests := []struct {
		name         string
		offset       int
		expectedLine int
		expectedCol  int
	}{
		{"start of file", 0, 1, 1},
		{"middle of line 1", 2, 1, 3},
		{"newline of line 1", 5, 1, 6},
		{"start of line 2", 6, 2, 1},
		{"start of line 3", 12, 3, 1},
		{"last byte", 16, 3, 5},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			line, col := tree.LineAt(testCase.offset)
			if line != testCase.expectedLine || col != testCase.expectedCol {
				t.Errorf("offset %d: expected (%d, %d), got (%d, %d)",
					testCase.offset, testCase.expectedLine, testCase.expectedCol, line, col)
			}
		})
	}

	line, col := tree.LineAt(-1)
	if line != 0 || col != 0 {
		t.Errorf("negative offset: expected (0, 0), got (%d, %d)", line, col)
	}
}

func TestTree_LineCount(t *testing.T) {
	t.Parallel()

	tree := syntax.NewTree("t.tree.json", "t.go", []byte("a\nb\nc"))
	if tree.LineCount() != 3 {
		t.Errorf("expected 3 lines, got %d", tree.LineCount())
	}
}
