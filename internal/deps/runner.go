package deps

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// ExecRunner installs packages by running the configured package manager.
type ExecRunner struct {
	// Manager is one of npm, pnpm, yarn or bun.
	Manager string
}

// Install runs the package manager in dir and blocks until it exits.
// Combined output is attached to the returned error.
func (r *ExecRunner) Install(ctx context.Context, dir string, pkgs []string) error {
	name, args, err := InstallCommand(r.Manager, pkgs)
	if err != nil {
		return err
	}

	bin, err := exec.LookPath(name)
	if err != nil {
		return fmt.Errorf("%s not found on PATH: %w", name, err)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		captured := strings.TrimSpace(out.String())
		if captured == "" {
			return fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
		}
		return fmt.Errorf("%s %s: %w\n%s", name, strings.Join(args, " "), err, captured)
	}
	return nil
}

// InstallCommand returns the executable and arguments that add pkgs with manager.
func InstallCommand(manager string, pkgs []string) (string, []string, error) {
	var verb string
	switch manager {
	case "npm":
		verb = "install"
	case "pnpm", "yarn", "bun":
		verb = "add"
	default:
		return "", nil, fmt.Errorf("unsupported package manager %q", manager)
	}
	return manager, append([]string{verb}, pkgs...), nil
}
