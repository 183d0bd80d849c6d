package lint

import (
	"context"
	"fmt"

	"github.com/yaklabco/commentlint/pkg/config"
	"github.com/yaklabco/commentlint/pkg/syntax"
)

// FileResult contains the results of analyzing a single tree document.
type FileResult struct {
	// Tree is the decoded syntax tree.
	Tree *syntax.Tree

	// Diagnostics contains all violations found.
	Diagnostics []Diagnostic

	// RuleErrors contains any errors from rule execution, keyed by rule ID.
	RuleErrors map[string]error
}

// HasIssues returns true if any diagnostics were found.
func (fr *FileResult) HasIssues() bool {
	return len(fr.Diagnostics) > 0
}

// IssueCount returns the total number of diagnostics.
func (fr *FileResult) IssueCount() int {
	return len(fr.Diagnostics)
}

// Engine coordinates tree loading and rule execution.
// It holds no per-run state: analyzing the same tree twice produces the same
// diagnostic set.
type Engine struct {
	// Loader decodes tree documents into syntax trees.
	Loader TreeLoader

	// Registry holds all available rules.
	Registry *Registry

	// Markers resolves per-language comment markers. May be nil, in which
	// case DefaultMarker is used.
	Markers MarkerDetector
}

// NewEngine creates a new Engine with the given loader and registry.
func NewEngine(loader TreeLoader, registry *Registry, markers MarkerDetector) *Engine {
	return &Engine{
		Loader:   loader,
		Registry: registry,
		Markers:  markers,
	}
}

// LintFile decodes and analyzes a single tree document.
func (e *Engine) LintFile(
	ctx context.Context,
	path string,
	content []byte,
	cfg *config.Config,
) (*FileResult, error) {
	tree, err := e.Loader.Load(ctx, path, content)
	if err != nil {
		return nil, fmt.Errorf("load tree: %w", err)
	}

	return e.AnalyzeTree(ctx, tree, cfg)
}

// AnalyzeTree runs all enabled rules over an already-decoded tree.
func (e *Engine) AnalyzeTree(
	ctx context.Context,
	tree *syntax.Tree,
	cfg *config.Config,
) (*FileResult, error) {
	resolved := ResolveRules(e.Registry, cfg)

	result := &FileResult{
		Tree:        tree,
		Diagnostics: nil,
		RuleErrors:  make(map[string]error),
	}

	marker := e.resolveMarker(tree, cfg)

	for _, rr := range resolved {
		// Check for cancellation between rules.
		select {
		case <-ctx.Done():
			return result, fmt.Errorf("analysis cancelled: %w", ctx.Err())
		default:
		}

		ruleCtx := NewRuleContext(ctx, tree, cfg, rr.Config)
		ruleCtx.Registry = e.Registry
		ruleCtx.Marker = marker

		diags, err := rr.Rule.Apply(ruleCtx)
		if err != nil {
			result.RuleErrors[rr.Rule.ID()] = err
			continue
		}

		for diagIdx := range diags {
			// Apply resolved severity.
			diags[diagIdx].Severity = rr.Severity

			// Ensure file path is set.
			if diags[diagIdx].FilePath == "" && tree != nil {
				diags[diagIdx].FilePath = tree.SourcePath
			}

			// Ensure rule name is set for human-readable output.
			if diags[diagIdx].RuleName == "" {
				diags[diagIdx].RuleName = rr.Rule.Name()
			}
		}

		result.Diagnostics = append(result.Diagnostics, diags...)
	}

	return result, nil
}

// resolveMarker determines the comment marker for a tree: an explicit config
// override wins, then language detection, then the default.
func (e *Engine) resolveMarker(tree *syntax.Tree, cfg *config.Config) string {
	if cfg != nil && cfg.CommentMarker != "" {
		return cfg.CommentMarker
	}
	if e.Markers != nil && tree != nil {
		if m := e.Markers.Marker(tree.SourcePath); m != "" {
			return m
		}
	}
	return DefaultMarker
}
