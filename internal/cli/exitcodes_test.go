package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/commentlint/pkg/runner"
)

func resultWithSeverities(counts map[string]int) *runner.Result {
	result := &runner.Result{}
	result.Stats.DiagnosticsBySeverity = counts
	for _, n := range counts {
		result.Stats.DiagnosticsTotal += n
	}
	return result
}

func TestExitCodeFromResult(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		result   *runner.Result
		strict   bool
		expected int
	}{
		{
			name:     "nil result",
			result:   nil,
			expected: ExitSuccess,
		},
		{
			name:     "clean run",
			result:   resultWithSeverities(map[string]int{}),
			expected: ExitSuccess,
		},
		{
			name:     "errors found",
			result:   resultWithSeverities(map[string]int{"error": 2}),
			expected: ExitCheckErrors,
		},
		{
			name:     "errors trump strict warnings",
			result:   resultWithSeverities(map[string]int{"error": 1, "warning": 3}),
			strict:   true,
			expected: ExitCheckErrors,
		},
		{
			name:     "warnings without strict",
			result:   resultWithSeverities(map[string]int{"warning": 5}),
			expected: ExitSuccess,
		},
		{
			name:     "warnings with strict",
			result:   resultWithSeverities(map[string]int{"warning": 1}),
			strict:   true,
			expected: ExitCheckWarnings,
		},
		{
			name:     "info only",
			result:   resultWithSeverities(map[string]int{"info": 4}),
			strict:   true,
			expected: ExitSuccess,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.expected, ExitCodeFromResult(testCase.result, testCase.strict))
		})
	}
}
