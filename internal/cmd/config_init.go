package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/blockui/cli/internal/config"
	oerrors "github.com/blockui/cli/internal/errors"
	"github.com/blockui/cli/internal/output"
)

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Initialize the blockui configuration file.

Writes ~/.blockui/config.yaml (or the path given by --config or
BLOCKUI_CONFIG) with the default package manager and install directory.

Examples:
  # Initialize configuration
  blockui config init

  # Overwrite existing configuration
  blockui config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing configuration")

	return cmd
}

func runConfigInit(force bool) error {
	resolved, err := config.ResolveConfigPath(configFlag)
	if err != nil {
		return reportExit(fmt.Errorf("could not determine home directory: %w", err))
	}
	path, err := config.ExpandPath(resolved.Value)
	if err != nil {
		return reportExit(err)
	}

	if _, err := os.Stat(path); err == nil && !force {
		return reportExit(&oerrors.DetailError{
			Type:     "config init failed",
			Message:  "configuration already exists",
			Location: path,
			Hint:     "Use --force to overwrite existing configuration.",
		})
	}

	data, err := config.RenderDefault()
	if err != nil {
		return reportExit(err)
	}

	// Create directories with secure permissions (0700)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return reportExit(fmt.Errorf("could not create config directory: %w", err))
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return reportExit(fmt.Errorf("could not write config file: %w", err))
	}

	output.Println(output.FormatCheckmark("Configuration initialized at " + path))
	return nil
}

// reportExit prints err once and returns it as a failing ExitError.
func reportExit(err error) error {
	newReporter().Failure(err)
	return printedExit(err)
}
