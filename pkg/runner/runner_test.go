package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/commentlint/pkg/config"
	"github.com/yaklabco/commentlint/pkg/lint"
	"github.com/yaklabco/commentlint/pkg/lint/rules"
	"github.com/yaklabco/commentlint/pkg/runner"
	"github.com/yaklabco/commentlint/pkg/treeio"
)

// cleanDoc is a tree document with a single commented statement and a
// well-formed trailing comment, so no rule fires.
const cleanDoc = `{
  "path": "clean.go",
  "source": "{\n// setup\ndoWork()\n}\n",
  "root": {
    "kind": "block",
    "span": {"start": {"line": 1, "column": 1}, "end": {"line": 4, "column": 2}},
    "children": [
      {
        "kind": "call",
        "span": {"start": {"line": 3, "column": 1}, "end": {"line": 3, "column": 9}},
        "leading": [
          {"kind": "comment", "span": {"start": {"line": 2, "column": 1}, "end": {"line": 2, "column": 9}}, "text": "// setup"},
          {"kind": "newline", "span": {"start": {"line": 2, "column": 9}, "end": {"line": 2, "column": 9}}, "text": "\n"}
        ]
      }
    ]
  }
}`

// dirtyDoc is a tree document whose statement group has no comment, so the
// commented-segments rule fires.
const dirtyDoc = `{
  "path": "dirty.go",
  "source": "{\nfirst()\nsecond()\n}\n",
  "root": {
    "kind": "block",
    "span": {"start": {"line": 1, "column": 1}, "end": {"line": 4, "column": 2}},
    "children": [
      {
        "kind": "if",
        "span": {"start": {"line": 2, "column": 1}, "end": {"line": 2, "column": 8}}
      },
      {
        "kind": "if",
        "span": {"start": {"line": 3, "column": 1}, "end": {"line": 3, "column": 9}}
      }
    ]
  }
}`

func writeDoc(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newTestRunner() *runner.Runner {
	registry := lint.NewRegistry()
	rules.RegisterAll(registry)
	engine := lint.NewEngine(treeio.NewLoader(), registry, nil)
	return runner.New(engine)
}

func TestRunner_Run(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeDoc(t, dir, "clean.go.tree.json", cleanDoc)
	writeDoc(t, dir, "dirty.go.tree.json", dirtyDoc)

	result, err := newTestRunner().Run(context.Background(), runner.Options{
		Paths:      []string{dir},
		WorkingDir: dir,
		Config:     config.NewConfig(),
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Stats.FilesDiscovered)
	assert.Equal(t, 2, result.Stats.FilesProcessed)
	assert.Equal(t, 1, result.Stats.FilesWithIssues)
	assert.Equal(t, 1, result.Stats.DiagnosticsTotal)
	assert.Equal(t, 1, result.Stats.DiagnosticsBySeverity["warning"])
	assert.True(t, result.HasIssues())
	assert.False(t, result.HasFailures())

	// Outcomes come back sorted by path.
	require.Len(t, result.Files, 2)
	assert.Contains(t, result.Files[0].Path, "clean.go.tree.json")
	assert.Contains(t, result.Files[1].Path, "dirty.go.tree.json")
}

func TestRunner_Run_SingleFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeDoc(t, dir, "dirty.go.tree.json", dirtyDoc)

	result, err := newTestRunner().Run(context.Background(), runner.Options{
		Paths:      []string{path},
		WorkingDir: dir,
		Config:     config.NewConfig(),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Stats.FilesDiscovered)
	assert.Equal(t, 1, result.Stats.DiagnosticsTotal)
}

func TestRunner_Run_BadDocumentCountsAsError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeDoc(t, dir, "broken.go.tree.json", "{not valid json")
	writeDoc(t, dir, "clean.go.tree.json", cleanDoc)

	result, err := newTestRunner().Run(context.Background(), runner.Options{
		Paths:      []string{dir},
		WorkingDir: dir,
		Config:     config.NewConfig(),
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Stats.FilesDiscovered)
	assert.Equal(t, 1, result.Stats.FilesProcessed)
	assert.Equal(t, 1, result.Stats.FilesErrored)

	var errored int
	for _, outcome := range result.Files {
		if outcome.Error != nil {
			errored++
		}
	}
	assert.Equal(t, 1, errored)
}

func TestRunner_Run_EmptyDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	result, err := newTestRunner().Run(context.Background(), runner.Options{
		Paths:      []string{dir},
		WorkingDir: dir,
		Config:     config.NewConfig(),
	})
	require.NoError(t, err)

	assert.Zero(t, result.Stats.FilesDiscovered)
	assert.Empty(t, result.Files)
	assert.False(t, result.HasIssues())
}

func TestRunner_Run_ExcludeGlobs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeDoc(t, dir, "keep.go.tree.json", cleanDoc)
	writeDoc(t, dir, "vendor/dep.go.tree.json", cleanDoc)

	result, err := newTestRunner().Run(context.Background(), runner.Options{
		Paths:        []string{dir},
		WorkingDir:   dir,
		ExcludeGlobs: []string{"vendor/**"},
		Config:       config.NewConfig(),
	})
	require.NoError(t, err)

	require.Equal(t, 1, result.Stats.FilesDiscovered)
	assert.Contains(t, result.Files[0].Path, "keep.go.tree.json")
}

func TestRunner_Run_IgnoresNonTreeFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeDoc(t, dir, "main.go", "package main")
	writeDoc(t, dir, "notes.json", "{}")
	writeDoc(t, dir, "real.go.tree.json", cleanDoc)

	result, err := newTestRunner().Run(context.Background(), runner.Options{
		Paths:      []string{dir},
		WorkingDir: dir,
		Config:     config.NewConfig(),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Stats.FilesDiscovered)
}

func TestRunner_Run_Cancelled(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeDoc(t, dir, "clean.go.tree.json", cleanDoc)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestRunner().Run(ctx, runner.Options{
		Paths:      []string{dir},
		WorkingDir: dir,
		Config:     config.NewConfig(),
	})
	require.Error(t, err)
}

func TestDiscover_HiddenDirectoriesSkipped(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeDoc(t, dir, ".cache/hidden.go.tree.json", cleanDoc)
	writeDoc(t, dir, "visible.go.tree.json", cleanDoc)

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{dir},
		WorkingDir: dir,
	})
	require.NoError(t, err)

	require.Len(t, files, 1)
	assert.Contains(t, files[0], "visible.go.tree.json")
}

func TestDiscover_Deduplicates(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeDoc(t, dir, "one.go.tree.json", cleanDoc)

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{dir, path},
		WorkingDir: dir,
	})
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestDiscover_YAMLExtensionsMatched(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeDoc(t, dir, "a.py.tree.yaml", "x")
	writeDoc(t, dir, "b.py.tree.yml", "x")
	writeDoc(t, dir, "c.py.yaml", "x")

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{dir},
		WorkingDir: dir,
	})
	require.NoError(t, err)
	assert.Len(t, files, 2)
}

func TestDiscover_MissingPathErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{filepath.Join(dir, "no-such-dir")},
		WorkingDir: dir,
	})
	require.Error(t, err)
}
