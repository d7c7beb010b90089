package cmd

import (
	"github.com/spf13/cobra"

	"github.com/blockui/cli/internal/workflow"
)

// NewAddCmd creates the add command.
func NewAddCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "add [component]",
		Short: "Add a component to your project",
		Long: `Add a single-file component to your project.

The component is copied to <installDir>/<Name>.tsx (default installDir:
src/components/blockui). Missing support packages (framer-motion, clsx)
are installed first with the configured package manager.

Without a component name, blockui asks you to pick one.

Examples:
  # Pick a component interactively
  blockui add

  # Add the Button component
  blockui add Button

  # Replace an existing copy without asking
  blockui add Button --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, workflow.KindComponent, args, force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing files without asking")

	return cmd
}
