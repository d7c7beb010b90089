// Package config provides configuration loading and management.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Defaults applied when neither the config file nor the environment set a value.
const (
	DefaultPackageManager = "npm"
	DefaultInstallDir     = "src/components/blockui"
)

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: off. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config represents the blockui CLI configuration.
// Loaded from ~/.blockui/config.yaml, overridable through BLOCKUI_* env vars.
type Config struct {
	// PackageManager installs missing support packages: npm, pnpm, yarn or bun.
	// Env: BLOCKUI_PACKAGE_MANAGER
	PackageManager string `mapstructure:"packageManager" yaml:"packageManager"`

	// InstallDir is the project-relative directory units are copied into.
	// Env: BLOCKUI_INSTALL_DIR
	InstallDir string `mapstructure:"installDir" yaml:"installDir"`

	// TemplateDir replaces the bundled template store with a directory on disk.
	// Env: BLOCKUI_TEMPLATE_DIR
	TemplateDir string `mapstructure:"templateDir" yaml:"templateDir,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `blockui config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		PackageManager: DefaultPackageManager,
		InstallDir:     DefaultInstallDir,
	}
}

// WithDefaults returns a copy of c with empty fields set to their defaults.
func (c *Config) WithDefaults() *Config {
	out := *c
	if out.PackageManager == "" {
		out.PackageManager = DefaultPackageManager
	}
	if out.InstallDir == "" {
		out.InstallDir = DefaultInstallDir
	}
	return &out
}

// RenderDefault renders the default configuration as YAML.
func RenderDefault() ([]byte, error) {
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("marshaling default config: %w", err)
	}
	header := "# blockui configuration\n# Environment variables (BLOCKUI_*) override these values.\n"
	return append([]byte(header), data...), nil
}
