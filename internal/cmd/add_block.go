package cmd

import (
	"github.com/spf13/cobra"

	"github.com/blockui/cli/internal/workflow"
)

// NewAddBlockCmd creates the add-block command.
func NewAddBlockCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "add-block [blockName]",
		Short: "Add a multi-file block to your project",
		Long: `Add a block, a directory of related files, to your project.

The block is copied to <installDir>/blocks/<blockName>/. Existing files in
that directory are replaced; other files are left alone.

Examples:
  # Pick a block interactively
  blockui add-block

  # Add the login block
  blockui add-block login --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, workflow.KindBlock, args, force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing files without asking")

	return cmd
}
