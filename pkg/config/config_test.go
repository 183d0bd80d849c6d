package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/commentlint/pkg/config"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	assert.Equal(t, "warning", cfg.SeverityDefault)
	assert.Equal(t, config.DefaultTabWidth, cfg.TabWidth)
	assert.Empty(t, cfg.CommentMarker)
	assert.NotNil(t, cfg.Rules)
	assert.Equal(t, config.FormatText, cfg.Format)
	assert.Equal(t, config.RuleFormatName, cfg.RuleFormat)
	assert.Zero(t, cfg.Jobs)
}

func TestConfig_EffectiveTabWidth(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	assert.Equal(t, 4, cfg.EffectiveTabWidth())

	cfg.TabWidth = 8
	assert.Equal(t, 8, cfg.EffectiveTabWidth())

	cfg.TabWidth = 0
	assert.Equal(t, config.DefaultTabWidth, cfg.EffectiveTabWidth())

	cfg.TabWidth = -1
	assert.Equal(t, config.DefaultTabWidth, cfg.EffectiveTabWidth())

	var nilCfg *config.Config
	assert.Equal(t, config.DefaultTabWidth, nilCfg.EffectiveTabWidth())
}

func TestSeverity_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, config.SeverityError.IsValid())
	assert.True(t, config.SeverityWarning.IsValid())
	assert.True(t, config.SeverityInfo.IsValid())
	assert.False(t, config.Severity("fatal").IsValid())
	assert.False(t, config.Severity("").IsValid())
}

func TestFromYAML(t *testing.T) {
	t.Parallel()

	data := []byte(`
severity_default: error
tab_width: 8
comment_marker: "#"
ignore:
  - "vendor/**"
rules:
  CC003:
    enabled: true
    severity: error
    options:
      spaces: 2
`)

	cfg, err := config.FromYAML(data)
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.SeverityDefault)
	assert.Equal(t, 8, cfg.TabWidth)
	assert.Equal(t, "#", cfg.CommentMarker)
	assert.Equal(t, []string{"vendor/**"}, cfg.Ignore)

	ruleCfg, ok := cfg.Rules["CC003"]
	require.True(t, ok)
	require.NotNil(t, ruleCfg.Enabled)
	assert.True(t, *ruleCfg.Enabled)
	require.NotNil(t, ruleCfg.Severity)
	assert.Equal(t, "error", *ruleCfg.Severity)
	assert.Equal(t, 2, ruleCfg.Options["spaces"])
}

func TestFromYAML_Invalid(t *testing.T) {
	t.Parallel()

	_, err := config.FromYAML([]byte("severity_default: [nope"))
	require.Error(t, err)
}

func TestFromYAML_EmptyInitializesRules(t *testing.T) {
	t.Parallel()

	cfg, err := config.FromYAML(nil)
	require.NoError(t, err)
	assert.NotNil(t, cfg.Rules)
}

func TestConfig_YAMLRoundTrip(t *testing.T) {
	t.Parallel()

	original := config.NewConfig()
	original.SeverityDefault = "error"
	original.TabWidth = 2
	original.Ignore = []string{"testdata/**"}

	data, err := original.ToYAML()
	require.NoError(t, err)

	parsed, err := config.FromYAML(data)
	require.NoError(t, err)

	assert.Equal(t, original.SeverityDefault, parsed.SeverityDefault)
	assert.Equal(t, original.TabWidth, parsed.TabWidth)
	assert.Equal(t, original.Ignore, parsed.Ignore)
}

func TestConfig_Clone(t *testing.T) {
	t.Parallel()

	enabled := true
	original := config.NewConfig()
	original.CommentMarker = "#"
	original.Ignore = []string{"a/**"}
	original.Rules["CC001"] = config.RuleConfig{
		Enabled: &enabled,
		Options: map[string]any{"spaces": 2},
	}

	clone := original.Clone()
	require.NotNil(t, clone)

	// Mutating the clone must not affect the original.
	clone.Ignore[0] = "b/**"
	*clone.Rules["CC001"].Enabled = false
	clone.Rules["CC001"].Options["spaces"] = 9

	assert.Equal(t, "a/**", original.Ignore[0])
	assert.True(t, *original.Rules["CC001"].Enabled)
	assert.Equal(t, 2, original.Rules["CC001"].Options["spaces"])

	var nilCfg *config.Config
	assert.Nil(t, nilCfg.Clone())
}

func TestFormatRuleID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		format   config.RuleFormat
		expected string
	}{
		{"name format", config.RuleFormatName, "commented-segments"},
		{"id format", config.RuleFormatID, "CC001"},
		{"combined format", config.RuleFormatCombined, "CC001/commented-segments"},
		{"unknown defaults to name", config.RuleFormat("???"), "commented-segments"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			got := config.FormatRuleID(testCase.format, "CC001", "commented-segments")
			assert.Equal(t, testCase.expected, got)
		})
	}

	// Empty name falls back to ID regardless of format.
	assert.Equal(t, "CC001", config.FormatRuleID(config.RuleFormatName, "CC001", ""))
}

func TestSummaryOrder_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, config.SummaryOrderRules.IsValid())
	assert.True(t, config.SummaryOrderFiles.IsValid())
	assert.False(t, config.SummaryOrder("severity").IsValid())
}

func TestDefaultTemplate_ParsesAsConfig(t *testing.T) {
	t.Parallel()

	cfg, err := config.FromYAML(config.DefaultTemplate())
	require.NoError(t, err)
	assert.Equal(t, "warning", cfg.SeverityDefault)
	assert.Equal(t, 4, cfg.TabWidth)
}
