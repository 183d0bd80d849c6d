package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/commentlint/internal/configloader"
	"github.com/yaklabco/commentlint/internal/logging"
	"github.com/yaklabco/commentlint/pkg/config"
	"github.com/yaklabco/commentlint/pkg/langdetect"
	"github.com/yaklabco/commentlint/pkg/lint"
	_ "github.com/yaklabco/commentlint/pkg/lint/rules" // Register built-in rules
	"github.com/yaklabco/commentlint/pkg/reporter"
	"github.com/yaklabco/commentlint/pkg/runner"
	"github.com/yaklabco/commentlint/pkg/treeio"
)

// ErrIssuesFound is returned when the check finds issues.
var ErrIssuesFound = errors.New("issues found")

type checkFlags struct {
	format       string
	marker       string
	tabWidth     int
	ignore       []string
	enable       []string
	disable      []string
	strict       bool
	noContext    bool
	compact      bool
	watch        bool
	ruleFormat   string
	summaryOrder string
}

func newCheckCommand() *cobra.Command {
	var cfg config.Config
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Check comment conventions in tree documents",
		Long:  checkLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, &cfg, flags)
		},
	}

	addCheckFlags(cmd, &cfg, flags)

	return cmd
}

const checkLongDescription = `Check comment conventions over tree documents.

By default, checks all .tree.json and .tree.yaml files in the current
directory and subdirectories. Specify paths to check specific files or
directories. Each tree document describes one source file, produced by
an external parser.

Examples:
  commentlint check                     # Check current directory
  commentlint check build/trees/        # Check a directory
  commentlint check main.go.tree.json   # Check single document
  commentlint check --marker "#"        # Pin the comment marker
  commentlint check --format json       # Output as JSON for CI
  commentlint check --strict            # Treat warnings as errors
  commentlint check --watch             # Re-check on file changes`

func runCheck(cmd *cobra.Command, args []string, cfg *config.Config, flags *checkFlags) error {
	logger := logging.FromContext(cmd.Context())

	// Map string flags to typed config values.
	// Only set values that were explicitly provided via CLI flags.
	cfg.Format = config.OutputFormat(flags.format)
	if cmd.Flags().Changed("marker") {
		cfg.CommentMarker = flags.marker
	}
	if cmd.Flags().Changed("tab-width") {
		cfg.TabWidth = flags.tabWidth
	}
	cfg.Ignore = flags.ignore
	cfg.EnableRules = flags.enable
	cfg.DisableRules = flags.disable

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, logger)

	// Get the explicit config path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	// Get working directory for config discovery.
	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	// Load and merge configuration.
	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cfg,
	})
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	finalCfg := loadResult.Config

	// Log warnings from config loading.
	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	// Log loaded configuration files.
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	logger.Debug("configuration loaded",
		logging.FieldMarker, finalCfg.CommentMarker,
		logging.FieldTabWidth, finalCfg.EffectiveTabWidth(),
		logging.FieldJobs, finalCfg.Jobs,
	)

	// Use the default registry which has all built-in rules registered.
	registry := lint.DefaultRegistry

	// Create the lint engine over the tree document loader.
	engine := lint.NewEngine(treeio.NewLoader(), registry, langdetect.NewDetector())

	// Create the runner.
	checkRunner := runner.New(engine)

	// Build runner options.
	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   treeio.Extensions(),
		ExcludeGlobs: finalCfg.Ignore,
		Jobs:         finalCfg.Jobs,
		Config:       finalCfg,
	}

	// Get color mode from persistent flag.
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto" // Default to auto if flag retrieval fails
	}

	// Parse output format.
	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	reporterOpts := reporter.Options{
		Writer:       cmd.OutOrStdout(),
		ErrorWriter:  cmd.ErrOrStderr(),
		Format:       format,
		Color:        colorMode,
		ShowContext:  !flags.noContext,
		ShowSummary:  true,
		GroupByFile:  true,
		Compact:      flags.compact,
		RuleFormat:   config.RuleFormat(flags.ruleFormat),
		SummaryOrder: config.SummaryOrder(flags.summaryOrder),
		WorkingDir:   workDir,
	}

	runOnce := func(ctx context.Context) (*runner.Result, error) {
		logger.Debug("starting check run",
			logging.FieldPaths, runOpts.Paths,
			logging.FieldWorkingDir, runOpts.WorkingDir,
			logging.FieldJobs, runOpts.Jobs,
		)

		result, err := checkRunner.Run(ctx, runOpts)
		if err != nil {
			return nil, errors.Join(errors.New("check run failed"), err)
		}

		rep, err := reporter.New(reporterOpts)
		if err != nil {
			return nil, fmt.Errorf("create reporter: %w", err)
		}

		if _, err := rep.Report(ctx, result); err != nil {
			logger.Error("report failed", logging.FieldError, err)
			return nil, fmt.Errorf("report results: %w", err)
		}

		return result, nil
	}

	if flags.watch {
		return watchAndCheck(ctx, logger, runOpts, runOnce)
	}

	result, err := runOnce(ctx)
	if err != nil {
		return err
	}

	// Determine exit code based on result.
	exitCode := ExitCodeFromResult(result, flags.strict)
	if exitCode != ExitSuccess {
		return ErrIssuesFound
	}

	return nil
}

func addCheckFlags(cmd *cobra.Command, cfg *config.Config, flags *checkFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, sarif, summary")
	cmd.Flags().StringVar(&flags.marker, "marker", "", "line-comment marker override (e.g. // or #)")
	cmd.Flags().IntVar(&flags.tabWidth, "tab-width", config.DefaultTabWidth, "rendered width of a tab character")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "rule IDs to enable")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "rule IDs to disable")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "treat warnings as errors for exit code")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output format")
	cmd.Flags().BoolVar(&flags.watch, "watch", false, "watch for changes and re-check")
	cmd.Flags().StringVar(&flags.ruleFormat, "rule-format", "name",
		"rule identifier format in output: name, id, or combined")
	cmd.Flags().StringVar(&flags.summaryOrder, "summary-order", "rules",
		"order of tables in summary output: rules, files")
}
