package cmd

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/blockui/cli/internal/catalog"
	"github.com/blockui/cli/internal/config"
	"github.com/blockui/cli/internal/output"
	"github.com/blockui/cli/internal/templates"
)

// catalogListing is the machine-readable form of the list command.
type catalogListing struct {
	Components []string `json:"components" yaml:"components"`
	Blocks     []string `json:"blocks" yaml:"blocks"`
}

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available components and blocks",
		Long: `List the components and blocks blockui can add.

Examples:
  # Show the catalog as a table
  blockui list

  # Machine-readable output
  blockui list -o json

An unknown --output value is reported as a failure and exits with status 1.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(format)
		},
	}

	cmd.Flags().StringVarP(&format, "output", "o", "table",
		"Output format: "+strings.Join(output.ValidFormats(), ", "))

	return cmd
}

func runList(format string) error {
	outFormat, ok := output.ParseOutputFormat(format)
	if !ok {
		return reportExit(fmt.Errorf("unsupported output format %q (valid: %s)",
			format, strings.Join(output.ValidFormats(), ", ")))
	}

	var templateDir string
	if s := GetSettings(); s != nil {
		templateDir = s.TemplateDir.Value
	}

	r := catalog.NewReader(openStoreOrEmpty(templateDir))
	listing := catalogListing{
		Components: r.ListComponents(),
		Blocks:     r.ListBlocks(),
	}

	switch outFormat {
	case output.FormatJSON:
		data, err := json.MarshalIndent(listing, "", "  ")
		if err != nil {
			return reportExit(err)
		}
		output.Println(string(data))
	case output.FormatYAML:
		data, err := yaml.Marshal(listing)
		if err != nil {
			return reportExit(err)
		}
		output.Print(string(data))
	default:
		printCatalogTable(listing)
	}

	return nil
}

func printCatalogTable(listing catalogListing) {
	rendered := output.RenderCatalog(listing.Components, listing.Blocks)
	if rendered == "" {
		output.Println("No components or blocks available.")
		return
	}
	output.Println(rendered)
}

// openStoreOrEmpty opens the template store. A nil store lists as empty,
// so listing never fails.
func openStoreOrEmpty(dir string) fs.FS {
	expanded, err := config.ExpandPath(dir)
	if err != nil {
		output.Warn("template directory unavailable", "path", dir, "error", err)
		return nil
	}
	store, err := templates.Open(expanded)
	if err != nil {
		output.Warn("template directory unavailable", "path", dir, "error", err)
		return nil
	}
	return store
}
