package cli

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/yaklabco/commentlint/internal/logging"
	"github.com/yaklabco/commentlint/pkg/runner"
	"github.com/yaklabco/commentlint/pkg/treeio"
)

// watchDebounce is how long to wait after the last filesystem event before
// re-running the check. Editors often emit bursts of events per save.
const watchDebounce = 100 * time.Millisecond

// watchAndCheck runs the check once, then watches the target directories and
// re-runs it whenever a tree document changes. It blocks until ctx is done.
func watchAndCheck(
	ctx context.Context,
	logger *log.Logger,
	opts runner.Options,
	runOnce func(context.Context) (*runner.Result, error),
) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dirs, err := watchDirs(opts)
	if err != nil {
		return err
	}
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	logger.Info("watching for changes", logging.FieldPaths, dirs)

	// Initial run. Issues are reported but do not stop the watch loop.
	if _, err := runOnce(ctx); err != nil {
		logger.Error("check failed", logging.FieldError, err)
	}

	var debounce *time.Timer
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if !watchRelevant(event.Name, opts) {
				continue
			}

			// New directories need to be watched too.
			if event.Op&fsnotify.Create != 0 {
				if info, statErr := os.Stat(event.Name); statErr == nil && info.IsDir() {
					if addErr := watcher.Add(event.Name); addErr != nil {
						logger.Warn("watch new directory",
							logging.FieldPath, event.Name, logging.FieldError, addErr)
					}
					continue
				}
			}

			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(watchDebounce, func() {
				logger.Info("change detected", logging.FieldPath, event.Name)
				if _, runErr := runOnce(ctx); runErr != nil {
					logger.Error("check failed", logging.FieldError, runErr)
				}
			})

		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", logging.FieldError, watchErr)
		}
	}
}

// watchDirs returns the set of directories to watch for the given options.
// Directories are watched recursively by enumerating subdirectories up front;
// hidden directories are skipped, matching discovery.
func watchDirs(opts runner.Options) ([]string, error) {
	workDir, err := resolveWatchWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var dirs []string
	add := func(dir string) {
		if _, ok := seen[dir]; !ok {
			seen[dir] = struct{}{}
			dirs = append(dirs, dir)
		}
	}

	paths := opts.Paths
	if len(paths) == 0 {
		paths = []string{"."}
	}

	for _, p := range paths {
		abs := p
		if !filepath.IsAbs(p) {
			abs = filepath.Join(workDir, p)
		}
		abs = filepath.Clean(abs)

		info, statErr := os.Stat(abs)
		if statErr != nil {
			return nil, fmt.Errorf("stat %s: %w", p, statErr)
		}
		if !info.IsDir() {
			// Watch the containing directory for single-file targets.
			add(filepath.Dir(abs))
			continue
		}

		walkErr := filepath.WalkDir(abs, func(path string, entry fs.DirEntry, werr error) error {
			if werr != nil {
				if os.IsPermission(werr) {
					return nil
				}
				return werr
			}
			if !entry.IsDir() {
				return nil
			}
			if path != abs && strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}
			add(path)
			return nil
		})
		if walkErr != nil {
			return nil, fmt.Errorf("enumerate watch directories under %s: %w", abs, walkErr)
		}
	}

	return dirs, nil
}

// watchRelevant reports whether a filesystem event path could affect results.
// Directories are always relevant so new subtrees get watched.
func watchRelevant(path string, opts runner.Options) bool {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return true
	}
	extensions := opts.Extensions
	if len(extensions) == 0 {
		extensions = treeio.Extensions()
	}
	lower := strings.ToLower(path)
	for _, ext := range extensions {
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}

func resolveWatchWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return abs, nil
}
