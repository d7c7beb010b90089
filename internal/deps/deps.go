// Package deps detects and installs the support packages every blockui unit imports.
package deps

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	oerrors "github.com/blockui/cli/internal/errors"
	"github.com/blockui/cli/internal/output"
)

// SupportPackages is the fixed set installed alongside any component or block.
var SupportPackages = []string{"framer-motion", "clsx"}

// CheckMissing returns the support packages not installed for projectRoot,
// in SupportPackages order. A package counts as installed when
// node_modules/<name>/package.json exists and parses in projectRoot or any
// of its ancestors, following Node's module resolution so packages hoisted
// to a workspace root are found.
func CheckMissing(projectRoot string) []string {
	var missing []string
	for _, name := range SupportPackages {
		if !installed(projectRoot, name) {
			missing = append(missing, name)
		}
	}
	return missing
}

func installed(projectRoot, name string) bool {
	dir, err := filepath.Abs(projectRoot)
	if err != nil {
		dir = filepath.Clean(projectRoot)
	}
	for {
		if installedIn(dir, name) {
			return true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return false
		}
		dir = parent
	}
}

func installedIn(dir, name string) bool {
	path := filepath.Join(dir, "node_modules", name, "package.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	var pkg struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &pkg); err != nil {
		output.Debug("ignoring unparseable package manifest", "path", path, "error", err)
		return false
	}
	return true
}

// Runner installs packages into a project directory.
type Runner interface {
	Install(ctx context.Context, dir string, pkgs []string) error
}

// Resolver installs missing support packages through a Runner.
type Resolver struct {
	Runner Runner
}

// NewResolver creates a resolver backed by runner.
func NewResolver(runner Runner) *Resolver {
	return &Resolver{Runner: runner}
}

// InstallMissing installs names into projectRoot with a single runner call.
// It does nothing when names is empty. Packages already added to the
// manifest by a failed run are not rolled back.
func (r *Resolver) InstallMissing(ctx context.Context, projectRoot string, names []string) error {
	if len(names) == 0 {
		return nil
	}

	output.Debug("installing support packages", "packages", names, "dir", projectRoot)
	if err := r.Runner.Install(ctx, projectRoot, names); err != nil {
		return fmt.Errorf("%w: %s: %w", oerrors.ErrDependencyInstall, strings.Join(names, " "), err)
	}
	return nil
}
