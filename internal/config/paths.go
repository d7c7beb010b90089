package config

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

// Paths contains standard filesystem paths for blockui.
type Paths struct {
	// ConfigFile is the path to the config file (~/.blockui/config.yaml).
	ConfigFile string

	// HomeDir is the blockui home directory (~/.blockui).
	HomeDir string
}

// DefaultPaths returns the default paths for blockui.
func DefaultPaths() (*Paths, error) {
	homeDir, err := homedir.Dir()
	if err != nil {
		return nil, err
	}

	home := filepath.Join(homeDir, ".blockui")

	return &Paths{
		ConfigFile: filepath.Join(home, "config.yaml"),
		HomeDir:    home,
	}, nil
}

// GetConfigFile returns the config file path.
// If BLOCKUI_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv("BLOCKUI_CONFIG"); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	return homedir.Expand(path)
}
