// Package project validates that a directory is a React project blockui can install into.
package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	oerrors "github.com/blockui/cli/internal/errors"
)

const (
	// ManifestFile is the project manifest read during validation.
	ManifestFile = "package.json"

	// FrameworkPackage must be declared for a project to pass validation.
	FrameworkPackage = "react"
)

// Manifest holds the package.json fields blockui reads.
type Manifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// Project is a validated target project.
type Project struct {
	Root         string
	ManifestPath string
	Manifest     Manifest
}

// Load reads and parses the manifest under root without checking its contents.
func Load(root string) (*Project, error) {
	path := filepath.Join(root, ManifestFile)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, oerrors.NewValidationError(
				"package.json not found",
				path,
				"Run blockui from the root of your React project, or pass --cwd.",
			)
		}
		return nil, oerrors.NewValidationError(
			fmt.Sprintf("reading package.json: %v", err),
			path,
			"",
		)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, oerrors.NewValidationError(
			fmt.Sprintf("package.json is not valid JSON: %v", err),
			path,
			"Fix the syntax error in package.json and try again.",
		)
	}

	return &Project{Root: root, ManifestPath: path, Manifest: m}, nil
}

// Validate loads the project under root and checks that react is declared
// in dependencies or devDependencies. Installed versions are not inspected.
func Validate(root string) (*Project, error) {
	p, err := Load(root)
	if err != nil {
		return nil, err
	}

	if !p.HasDependency(FrameworkPackage) {
		return nil, oerrors.NewValidationError(
			"react is not listed in dependencies or devDependencies",
			p.ManifestPath,
			"Install React first: npm install react react-dom",
		)
	}

	return p, nil
}

// HasDependency reports whether name is a direct or development dependency.
func (p *Project) HasDependency(name string) bool {
	_, ok := p.dependencyRange(name)
	return ok
}

// ReactRange returns the declared react version range, or "" when absent.
func (p *Project) ReactRange() string {
	r, _ := p.dependencyRange(FrameworkPackage)
	return r
}

func (p *Project) dependencyRange(name string) (string, bool) {
	if r, ok := p.Manifest.Dependencies[name]; ok {
		return r, true
	}
	r, ok := p.Manifest.DevDependencies[name]
	return r, ok
}
