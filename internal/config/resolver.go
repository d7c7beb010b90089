package config

import (
	"os"

	"github.com/blockui/cli/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file or environment via viper.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue records one resolved setting and the values it shadowed.
type ResolvedValue struct {
	Key      string
	Value    string
	Source   ConfigSource
	Shadowed map[ConfigSource]string
}

// ResolveString applies flag > config > default precedence.
func ResolveString(key, flagValue, configValue, defaultValue string) ResolvedValue {
	rv := ResolvedValue{Key: key, Shadowed: make(map[ConfigSource]string)}

	switch {
	case flagValue != "":
		rv.Value, rv.Source = flagValue, SourceFlag
		if configValue != "" {
			rv.Shadowed[SourceConfig] = configValue
		}
	case configValue != "":
		rv.Value, rv.Source = configValue, SourceConfig
	default:
		rv.Value, rv.Source = defaultValue, SourceDefault
	}

	return rv
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) BLOCKUI_CONFIG env, (3) ~/.blockui/config.yaml.
func ResolveConfigPath(flagValue string) (ResolvedValue, error) {
	rv := ResolvedValue{Key: "config", Shadowed: make(map[ConfigSource]string)}

	paths, err := DefaultPaths()
	if err != nil {
		return rv, err
	}
	envValue := os.Getenv("BLOCKUI_CONFIG")

	switch {
	case flagValue != "":
		rv.Value, rv.Source = flagValue, SourceFlag
		if envValue != "" {
			rv.Shadowed[SourceEnv] = envValue
		}
		rv.Shadowed[SourceDefault] = paths.ConfigFile
	case envValue != "":
		rv.Value, rv.Source = envValue, SourceEnv
		rv.Shadowed[SourceDefault] = paths.ConfigFile
	default:
		rv.Value, rv.Source = paths.ConfigFile, SourceDefault
	}

	return rv, nil
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
