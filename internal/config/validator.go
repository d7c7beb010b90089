package config

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// packageManagers lists supported package managers in display order.
var packageManagers = []string{"npm", "pnpm", "yarn", "bun"}

// ValidPackageManagers returns the supported package manager names.
func ValidPackageManagers() []string {
	return slices.Clone(packageManagers)
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Validate checks a configuration with defaults applied.
// InstallDir must be relative and stay inside the project root.
func Validate(cfg *Config) error {
	var errs ValidationErrors

	if valid := ValidPackageManagers(); !slices.Contains(valid, cfg.PackageManager) {
		errs = append(errs, ValidationError{
			Field:   "packageManager",
			Message: fmt.Sprintf("unsupported package manager %q (valid: %s)", cfg.PackageManager, strings.Join(valid, ", ")),
		})
	}

	if err := ValidateInstallDir(cfg.InstallDir); err != nil {
		errs = append(errs, ValidationError{Field: "installDir", Message: err.Error()})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateInstallDir rejects empty, absolute and parent-escaping install directories.
func ValidateInstallDir(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return fmt.Errorf("must not be empty")
	}
	if filepath.IsAbs(dir) {
		return fmt.Errorf("must be relative to the project root, got %q", dir)
	}
	clean := filepath.Clean(dir)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return fmt.Errorf("must be a subdirectory of the project root, got %q", dir)
	}
	return nil
}
