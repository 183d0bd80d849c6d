package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/commentlint/internal/logging"
	"github.com/yaklabco/commentlint/pkg/config"
	"github.com/yaklabco/commentlint/pkg/fsutil"
)

const defaultConfigFileName = ".commentlint.yaml"

func newInitCommand() *cobra.Command {
	var force bool
	var output string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter configuration file",
		Long: `Create a commented starter configuration file in the current directory.

The generated file documents the available settings with sensible defaults.
Use --output to write to a different path and --force to overwrite an
existing file without prompting.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return runInit(ctx, cmd, output, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	cmd.Flags().StringVarP(&output, "output", "o", defaultConfigFileName,
		"path for the generated config file")

	return cmd
}

func runInit(ctx context.Context, cmd *cobra.Command, output string, force bool) error {
	logger := logging.NewInteractive()

	if _, err := os.Stat(output); err == nil && !force {
		// File exists. Prompt when attached to a terminal, refuse otherwise.
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("%s already exists (use --force to overwrite)", output)
		}
		ok, promptErr := confirmOverwrite(cmd, output)
		if promptErr != nil {
			return promptErr
		}
		if !ok {
			logger.Info("aborted, existing file left untouched", logging.FieldPath, output)
			return nil
		}
	}

	if err := fsutil.WriteAtomic(ctx, output, config.DefaultTemplate(), 0); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	logger.Info("configuration file created", logging.FieldPath, output)
	return nil
}

// confirmOverwrite asks the user whether to replace an existing config file.
func confirmOverwrite(cmd *cobra.Command, path string) (bool, error) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s already exists. Overwrite? [y/N] ", path)

	reader := bufio.NewReader(cmd.InOrStdin())
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("read answer: %w", err)
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}
