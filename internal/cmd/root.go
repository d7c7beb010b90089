// Package cmd provides CLI command implementations.
package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blockui/cli/internal/config"
	"github.com/blockui/cli/internal/output"
)

var (
	// Global flags
	configFlag         string
	verboseFlag        bool
	timestampsFlag     bool
	cwdFlag            string
	packageManagerFlag string

	// Resolved settings (populated during PersistentPreRunE)
	settings *Settings
)

// Settings holds the values commands run with after flag, env, file and
// default resolution.
type Settings struct {
	ConfigPath     config.ResolvedValue
	PackageManager config.ResolvedValue
	InstallDir     config.ResolvedValue
	TemplateDir    config.ResolvedValue

	// ProjectRoot is the target project directory.
	ProjectRoot string
}

// NewRootCmd creates the root command for the blockui CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "blockui",
		Short: "Add UI components and blocks to a React project",
		Long: `blockui copies ready-made React components and multi-file blocks
into your project and installs the packages they depend on.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: BLOCKUI_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", false, "Show timestamps in log output")
	rootCmd.PersistentFlags().StringVar(&cwdFlag, "cwd", "", "Project directory (default: current directory)")
	rootCmd.PersistentFlags().StringVar(&packageManagerFlag, "package-manager", "",
		"Package manager for support packages: "+strings.Join(config.ValidPackageManagers(), ", ")+" (env: BLOCKUI_PACKAGE_MANAGER)")

	rootCmd.AddCommand(NewAddCmd())
	rootCmd.AddCommand(NewAddBlockCmd())
	rootCmd.AddCommand(NewListCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals loads configuration, sets up logging and resolves settings.
func initializeGlobals(cmd *cobra.Command) error {
	configPath, err := config.ResolveConfigPath(configFlag)
	if err != nil {
		output.Debug("could not resolve config path", "error", err)
	}

	cfg, err := config.NewLoader().LoadWithDefaults(configPath.Value)
	if err != nil {
		// Commands still run on defaults; a broken file should not block list or version.
		output.Warn("ignoring config file", "path", configPath.Value, "error", err)
		cfg = config.DefaultConfig()
	}

	// Timestamps: flag (if explicitly set) > config > default (off)
	logCfg := output.LogConfig{Verbose: verboseFlag}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if cfg.Log.Timestamps != nil {
		logCfg.Timestamps = cfg.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	root := cwdFlag
	if root == "" {
		if root, err = os.Getwd(); err != nil {
			return err
		}
	}
	if root, err = config.ExpandPath(root); err != nil {
		return err
	}

	settings = &Settings{
		ConfigPath:     configPath,
		PackageManager: config.ResolveString("packageManager", packageManagerFlag, cfg.PackageManager, config.DefaultPackageManager),
		InstallDir:     config.ResolveString("installDir", "", cfg.InstallDir, config.DefaultInstallDir),
		TemplateDir:    config.ResolveString("templateDir", "", cfg.TemplateDir, ""),
		ProjectRoot:    root,
	}

	config.LogResolvedValues([]config.ResolvedValue{
		settings.ConfigPath,
		settings.PackageManager,
		settings.InstallDir,
		settings.TemplateDir,
	})
	output.Debug("initializing CLI", "project", settings.ProjectRoot)

	return nil
}

// GetSettings returns the resolved settings, or nil before initialization.
func GetSettings() *Settings {
	return settings
}
