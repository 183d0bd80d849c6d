package reporter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/commentlint/pkg/reporter"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected reporter.Format
		wantErr  bool
	}{
		{"text", reporter.FormatText, false},
		{"json", reporter.FormatJSON, false},
		{"sarif", reporter.FormatSARIF, false},
		{"summary", reporter.FormatSummary, false},
		{"", reporter.FormatText, false},
		{"xml", "", true},
		{"TEXT", "", true},
	}

	for _, testCase := range tests {
		t.Run(testCase.input, func(t *testing.T) {
			t.Parallel()

			got, err := reporter.ParseFormat(testCase.input)
			if testCase.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, got)
		})
	}
}

func TestFormat_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, reporter.FormatText.IsValid())
	assert.True(t, reporter.FormatJSON.IsValid())
	assert.True(t, reporter.FormatSARIF.IsValid())
	assert.True(t, reporter.FormatSummary.IsValid())
	assert.False(t, reporter.Format("yaml").IsValid())
}

func TestNew_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	opts := reporter.DefaultOptions()
	opts.Format = reporter.Format("bogus")

	_, err := reporter.New(opts)
	require.Error(t, err)
}

func TestNew_AllFormats(t *testing.T) {
	t.Parallel()

	for _, format := range []reporter.Format{
		reporter.FormatText,
		reporter.FormatJSON,
		reporter.FormatSARIF,
		reporter.FormatSummary,
	} {
		opts := reporter.DefaultOptions()
		opts.Format = format

		rep, err := reporter.New(opts)
		require.NoError(t, err, "format %s", format)
		assert.NotNil(t, rep)
	}
}
