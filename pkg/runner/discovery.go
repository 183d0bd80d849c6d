package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Discover resolves opts.Paths to the sorted, deduplicated set of tree
// document paths to process. Directories are walked recursively; explicit
// file arguments still go through the same extension and glob filters.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	d := &discovery{
		workDir:    workDir,
		extensions: opts.effectiveExtensions(),
		opts:       opts,
		seen:       make(map[string]struct{}),
	}

	for _, inputPath := range opts.effectivePaths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		absPath := inputPath
		if !filepath.IsAbs(absPath) {
			absPath = filepath.Join(workDir, absPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if info.IsDir() {
			if err := d.walk(ctx, absPath); err != nil {
				return nil, err
			}
			continue
		}
		d.collect(absPath)
	}

	sort.Strings(d.files)
	return d.files, nil
}

// resolveWorkDir resolves the working directory, defaulting to os.Getwd().
func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	return filepath.Abs(workDir)
}

// discovery accumulates matching files across all input paths.
type discovery struct {
	workDir    string
	extensions []string
	opts       Options
	seen       map[string]struct{}
	files      []string
}

// collect adds path to the result set if it passes the filters and has not
// been seen under another input path.
func (d *discovery) collect(path string) {
	if !d.matches(path) {
		return
	}
	if _, dup := d.seen[path]; dup {
		return
	}
	d.seen[path] = struct{}{}
	d.files = append(d.files, path)
}

// walk recursively visits root, collecting matching files. Hidden entries
// and excluded directories are pruned; permission errors and broken
// symlinks are skipped rather than failing the run.
func (d *discovery) walk(ctx context.Context, root string) error {
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		hidden := strings.HasPrefix(entry.Name(), ".")

		if entry.IsDir() {
			if path != root && hidden {
				return filepath.SkipDir
			}
			if matchesAny(d.relTo(path), d.opts.ExcludeGlobs) {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			return d.followSymlink(ctx, path)
		}

		if !hidden {
			d.collect(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk directory %s: %w", root, err)
	}
	return nil
}

// followSymlink handles a symlink entry encountered during a walk. File
// targets are filtered like regular files; directory targets are walked
// only when FollowSymlinks is set (via the resolved target, since WalkDir
// will not descend through the link itself).
func (d *discovery) followSymlink(ctx context.Context, path string) error {
	realPath, err := filepath.EvalSymlinks(path)
	if err != nil {
		return nil //nolint:nilerr // Broken symlinks are skipped, not errors
	}
	info, err := os.Stat(realPath)
	if err != nil {
		return nil //nolint:nilerr // Unreadable targets are skipped, not errors
	}

	if !info.IsDir() {
		d.collect(path)
		return nil
	}
	if !d.opts.FollowSymlinks {
		return nil
	}
	return d.walk(ctx, realPath)
}

// matches applies the extension, exclude, and include filters to a file path.
func (d *discovery) matches(path string) bool {
	if !hasMatchingSuffix(path, d.extensions) {
		return false
	}

	relPath := d.relTo(path)
	if matchesAny(relPath, d.opts.ExcludeGlobs) {
		return false
	}
	if len(d.opts.IncludeGlobs) > 0 && !matchesAny(relPath, d.opts.IncludeGlobs) {
		return false
	}
	return true
}

// relTo returns path relative to the working directory for glob matching,
// falling back to the path itself when it cannot be relativized.
func (d *discovery) relTo(path string) string {
	relPath, err := filepath.Rel(d.workDir, path)
	if err != nil {
		return path
	}
	return relPath
}

// hasMatchingSuffix reports whether the file carries one of the recognized
// document suffixes. Suffixes span multiple dots (".tree.json"), so this is
// a suffix comparison rather than a filepath.Ext check.
func hasMatchingSuffix(path string, extensions []string) bool {
	lower := strings.ToLower(path)
	for _, ext := range extensions {
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}

// matchesAny reports whether the path matches at least one glob pattern.
func matchesAny(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		if matchGlob(relPath, pattern) {
			return true
		}
	}
	return false
}

// matchGlob matches a slash-normalized path against a glob pattern,
// supporting "**" for recursive matching ("vendor/**", "**/testdata").
// Plain patterns also match against the basename, so "*.tree.json" works
// for files in subdirectories.
func matchGlob(path, pattern string) bool {
	path = filepath.ToSlash(path)
	pattern = filepath.ToSlash(pattern)

	if strings.Contains(pattern, "**") {
		return matchRecursiveGlob(path, pattern)
	}

	if ok, err := filepath.Match(pattern, path); err == nil && ok {
		return true
	}
	ok, err := filepath.Match(pattern, filepath.Base(path))
	return err == nil && ok
}

// matchRecursiveGlob handles patterns containing "**".
func matchRecursiveGlob(path, pattern string) bool {
	before, after, _ := strings.Cut(pattern, "**")
	prefix := strings.TrimSuffix(before, "/")
	suffix := strings.TrimPrefix(after, "/")

	// "**" alone, "prefix/**", and "**/suffix" cover the patterns configs
	// actually use; a pattern with both halves requires each end to match.
	if prefix != "" {
		if !strings.HasPrefix(path, prefix+"/") && path != prefix {
			return false
		}
		if suffix == "" {
			return true
		}
	}

	if suffix == "" {
		return true
	}

	if strings.HasSuffix(path, suffix) || strings.Contains(path, suffix) {
		return true
	}
	for _, component := range strings.Split(path, "/") {
		if ok, err := filepath.Match(suffix, component); err == nil && ok {
			return true
		}
	}
	if ok, err := filepath.Match(suffix, filepath.Base(path)); err == nil && ok {
		return true
	}
	return false
}
