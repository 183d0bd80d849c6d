package config

// DefaultTemplate returns the commented starter configuration written by
// `commentlint init`.
func DefaultTemplate() []byte {
	return []byte(`# commentlint configuration
# See: https://github.com/yaklabco/commentlint

# Default severity for all rules: error, warning, or info
severity_default: warning

# Rendered width of a tab character when measuring whitespace
tab_width: 4

# Pin the line-comment marker instead of detecting it from the source path
# comment_marker: "//"

# Tree document patterns to ignore (glob patterns)
# ignore:
#   - "vendor/**"
#   - "testdata/**"

# Rule-specific configuration
# rules:
#   CC001:
#     enabled: true
#     severity: error
#   CC003:
#     enabled: true
#     options:
#       spaces: 2
`)
}
