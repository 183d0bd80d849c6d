package rules

import "github.com/yaklabco/commentlint/pkg/lint"

// RegisterAll registers all built-in rules with the given registry.
func RegisterAll(registry *lint.Registry) {
	registry.Register(NewCommentedSegmentsRule())           // CC001
	registry.Register(NewNewlineBeforeCommentRule())        // CC002
	registry.Register(NewSpacesBeforeTrailingCommentRule()) // CC003
	registry.Register(NewCommentStartsWithSpaceRule())      // CC004
}

//nolint:gochecknoinits // Registration at import time is intentional
func init() {
	RegisterAll(lint.DefaultRegistry)
}
