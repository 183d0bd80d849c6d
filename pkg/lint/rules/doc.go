// Package rules provides the built-in convention rules for commentlint.
//
// # Rules
//
//   - CC001: commented-segments - Every group of adjacent statements in a
//     multi-line block must be preceded by an explanatory comment. Statements
//     separated by blank lines form separate groups, each requiring its own
//     comment. A block's final statement is exempt when it is a lone return,
//     assignment, call, or throw.
//
//   - CC002: newline-before-comment - A comment group must be preceded by a
//     blank line unless it directly follows a block-opening brace. Comment
//     lines continuing a previous comment line are not new groups.
//
//   - CC003: spaces-before-trailing-comment - A comment trailing code on the
//     same line must be separated from it by exactly two spaces.
//
//   - CC004: comment-starts-with-space - Comment text must start with a
//     space after its marker ("// text", not "//text"). Applies to every
//     comment in the tree, including doc-style markers ("/// text").
//
// # Rule IDs
//
// Rule IDs use the CCxxx namespace (comment conventions).
//
// # Registration
//
// Rules are registered with the default registry via RegisterAll, which runs
// from this package's init. Each rule follows the lint.Rule interface and
// uses the RuleContext and DiagnosticBuilder infrastructure.
package rules
