package cmd

import (
	"github.com/spf13/cobra"

	"github.com/blockui/cli/internal/output"
	"github.com/blockui/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show blockui version information.

Displays the CLI version, commit, build date, Go version and platform.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			if short {
				output.Println(info.Short())
				return nil
			}
			output.Println(info.String())
			return nil
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "Print only the version string")

	return cmd
}
