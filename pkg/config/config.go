// Package config defines core configuration types for commentlint.
// These types are pure data structures with no dependency on how or where
// configuration is loaded.
package config

// Severity represents the severity level of a lint diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// IsValid returns true if the severity is a known level.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityError, SeverityWarning, SeverityInfo:
		return true
	default:
		return false
	}
}

// RuleConfig holds per-rule configuration options.
type RuleConfig struct {
	Enabled  *bool          `yaml:"enabled"`
	Severity *string        `yaml:"severity"`
	Options  map[string]any `yaml:"options"`
}

// OutputFormat specifies the output format for diagnostics.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatJSON    OutputFormat = "json"
	FormatSARIF   OutputFormat = "sarif"
	FormatSummary OutputFormat = "summary"
)

// RuleFormat controls how rule identifiers appear in output.
type RuleFormat string

const (
	RuleFormatName     RuleFormat = "name"     // "commented-segments"
	RuleFormatID       RuleFormat = "id"       // "CC001"
	RuleFormatCombined RuleFormat = "combined" // "CC001/commented-segments"
)

// DefaultTabWidth is the rendered width of a tab character when measuring
// whitespace before trailing comments.
const DefaultTabWidth = 4

// Config is the root configuration structure for commentlint.
type Config struct {
	// SeverityDefault is the default severity for rules that don't specify one.
	SeverityDefault string `yaml:"severity_default"`

	// TabWidth is the rendered width of a tab character.
	TabWidth int `yaml:"tab_width"`

	// CommentMarker pins the line-comment marker (e.g. "//" or "#").
	// Empty means detect from the tree's source path.
	CommentMarker string `yaml:"comment_marker"`

	// Rules contains per-rule configuration keyed by rule ID.
	Rules map[string]RuleConfig `yaml:"rules"`

	// Ignore contains glob patterns for tree documents to skip.
	Ignore []string `yaml:"ignore"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format.
	Format OutputFormat `yaml:"-"`

	// RuleFormat controls how rule identifiers appear in output.
	RuleFormat RuleFormat `yaml:"-"`

	// Jobs specifies the number of parallel workers.
	Jobs int `yaml:"-"`

	// EnableRules contains rule IDs to explicitly enable.
	EnableRules []string `yaml:"-"`

	// DisableRules contains rule IDs to explicitly disable.
	DisableRules []string `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		SeverityDefault: string(SeverityWarning),
		TabWidth:        DefaultTabWidth,
		CommentMarker:   "",
		Rules:           make(map[string]RuleConfig),
		Ignore:          nil,
		Format:          FormatText,
		RuleFormat:      RuleFormatName,
		Jobs:            0, // 0 means use GOMAXPROCS
	}
}

// EffectiveTabWidth returns the tab width, falling back to the default for
// unset or nonsensical values.
func (c *Config) EffectiveTabWidth() int {
	if c == nil || c.TabWidth <= 0 {
		return DefaultTabWidth
	}
	return c.TabWidth
}
