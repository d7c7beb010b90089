// Package workflow runs the add and add-block installation flow.
//
// A run moves through fixed states: validate the project, resolve and
// validate the selection, check for an existing destination, ensure the
// install directory, install missing support packages, copy, and report.
// Every collaborator is injected so the flow can run without a terminal.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/blockui/cli/internal/catalog"
	"github.com/blockui/cli/internal/deps"
	oerrors "github.com/blockui/cli/internal/errors"
	"github.com/blockui/cli/internal/installer"
	"github.com/blockui/cli/internal/output"
	"github.com/blockui/cli/internal/project"
	"github.com/blockui/cli/internal/prompt"
	"github.com/blockui/cli/internal/templates"
)

// Kind is the type of unit being installed.
type Kind string

const (
	KindComponent Kind = "component"
	KindBlock     Kind = "block"
)

// Request describes one installation.
type Request struct {
	Kind Kind

	// Name is the unit to install. Empty means ask the user.
	Name string

	// Force skips the overwrite confirmation.
	Force bool
}

// Result describes a finished run.
type Result struct {
	Kind Kind
	Name string

	// Destination is the written file or directory, relative to the project root.
	Destination string

	Files []installer.File

	// Installed lists the support packages installed during the run.
	Installed []string

	ImportHint string

	// Cancelled is set when the user declined and nothing was changed.
	Cancelled bool
}

// Reporter receives user-facing checkpoints. Implementations hold no state
// the workflow depends on.
type Reporter interface {
	Banner()
	Progress(ctx context.Context, title string, fn func(context.Context) error) error
	Preview(diff string)
	Files(root string, files map[string]string)
	Success(summary, hint string)
	Cancelled(msg string)
	Failure(err error)
}

// Workflow installs components and blocks into one project.
type Workflow struct {
	Store       fs.FS
	Prompter    prompt.Prompter
	Reporter    Reporter
	Runner      deps.Runner
	ProjectRoot string

	// InstallDir is relative to ProjectRoot and must stay inside it.
	InstallDir string

	// DiffMaxLines bounds the overwrite preview. Zero uses the default.
	DiffMaxLines int
}

// Run executes req. Failures are reported through the Reporter and returned.
// A declined overwrite or dismissed prompt returns a cancelled Result and a
// nil error.
func (w *Workflow) Run(ctx context.Context, req Request) (*Result, error) {
	result, err := w.run(ctx, req)
	if err != nil {
		output.Debug("workflow failed", "kind", req.Kind, "name", req.Name, "error_kind", oerrors.Kind(err))
		w.Reporter.Failure(err)
		return nil, err
	}
	return result, nil
}

func (w *Workflow) run(ctx context.Context, req Request) (*Result, error) {
	if req.Kind != KindComponent && req.Kind != KindBlock {
		return nil, fmt.Errorf("unknown unit kind %q", req.Kind)
	}

	w.Reporter.Banner()

	output.Debug("validating project", "root", w.ProjectRoot)
	proj, err := project.Validate(w.ProjectRoot)
	if err != nil {
		return nil, err
	}
	if msg, ok := proj.ReactAdvisory(); ok {
		output.Warn(msg)
	}
	if err := w.checkInstallDir(); err != nil {
		return nil, err
	}

	names := w.catalog(req.Kind)
	output.Debug("catalog loaded", "kind", req.Kind, "count", len(names))

	name := req.Name
	if name == "" {
		name, err = w.Prompter.Select(fmt.Sprintf("Which %s would you like to add?", req.Kind), names)
		if errors.Is(err, prompt.ErrAborted) {
			return w.cancel(req, name), nil
		}
		if err != nil {
			return nil, fmt.Errorf("selecting %s: %w", req.Kind, err)
		}
		output.Debug("selection resolved", "name", name)
	}

	if !catalog.Contains(names, name) {
		return nil, &oerrors.SelectionError{Kind: string(req.Kind), Name: name, Valid: names}
	}

	rel := w.destination(req.Kind, name)
	dest := filepath.Join(w.ProjectRoot, rel)

	if _, err := os.Stat(dest); err == nil && !req.Force {
		output.Debug("destination exists", "path", dest)
		if req.Kind == KindComponent {
			w.previewComponent(name, dest, rel)
		}
		ok, err := w.Prompter.Confirm(fmt.Sprintf("%s already exists. Overwrite?", filepath.ToSlash(rel)))
		if errors.Is(err, prompt.ErrAborted) || (err == nil && !ok) {
			return w.cancel(req, name), nil
		}
		if err != nil {
			return nil, fmt.Errorf("confirming overwrite: %w", err)
		}
	}

	parent := filepath.Dir(dest)
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return nil, oerrors.NewCopyError("creating install directory", parent, err)
	}

	missing := deps.CheckMissing(w.ProjectRoot)
	output.Debug("support packages checked", "missing", missing)
	if len(missing) > 0 {
		resolver := deps.NewResolver(w.Runner)
		title := fmt.Sprintf("Installing %s", strings.Join(missing, ", "))
		err := w.Reporter.Progress(ctx, title, func(ctx context.Context) error {
			return resolver.InstallMissing(ctx, w.ProjectRoot, missing)
		})
		if err != nil {
			return nil, err
		}
	}

	inst := installer.New(w.Store)
	var files []installer.File
	switch req.Kind {
	case KindComponent:
		var f installer.File
		f, err = inst.InstallComponent(name, dest)
		files = []installer.File{f}
	case KindBlock:
		files, err = inst.InstallBlock(name, dest)
	}
	if err != nil {
		return nil, err
	}

	result := &Result{
		Kind:        req.Kind,
		Name:        name,
		Destination: rel,
		Files:       files,
		Installed:   missing,
		ImportHint:  ImportHint(req.Kind, name, w.InstallDir),
	}

	w.Reporter.Files(filepath.ToSlash(filepath.Dir(rel)), fileTree(req.Kind, rel, files))
	w.Reporter.Success(fmt.Sprintf("Added %s %s", req.Kind, name), result.ImportHint)
	return result, nil
}

func (w *Workflow) catalog(kind Kind) []string {
	r := catalog.NewReader(w.Store)
	if kind == KindBlock {
		return r.ListBlocks()
	}
	return r.ListComponents()
}

func (w *Workflow) checkInstallDir() error {
	if !filepath.IsLocal(w.InstallDir) {
		return oerrors.NewValidationError(
			fmt.Sprintf("install directory %q is outside the project", w.InstallDir),
			w.ProjectRoot,
			"Set installDir to a path inside the project, such as src/components/blockui.",
		)
	}
	return nil
}

func (w *Workflow) destination(kind Kind, name string) string {
	if kind == KindBlock {
		return filepath.Join(w.InstallDir, templates.BlocksDir, name)
	}
	return filepath.Join(w.InstallDir, name+templates.ComponentExt)
}

func (w *Workflow) previewComponent(name, dest, rel string) {
	installed, err := os.ReadFile(dest)
	if err != nil {
		return
	}
	tmpl, err := fs.ReadFile(w.Store, path.Join(templates.ComponentsDir, name+templates.ComponentExt))
	if err != nil {
		return
	}

	maxLines := w.DiffMaxLines
	if maxLines == 0 {
		maxLines = output.DefaultDiffMaxLines
	}
	w.Reporter.Preview(output.RenderFileDiff(filepath.ToSlash(rel), string(installed), string(tmpl), maxLines))
}

func (w *Workflow) cancel(req Request, name string) *Result {
	output.Debug("installation cancelled", "kind", req.Kind, "name", name)
	w.Reporter.Cancelled("Installation cancelled. Nothing was changed.")
	return &Result{Kind: req.Kind, Name: name, Cancelled: true}
}

func fileTree(kind Kind, rel string, files []installer.File) map[string]string {
	tree := make(map[string]string, len(files))
	for _, f := range files {
		p := f.Path
		if kind == KindBlock {
			p = path.Join(filepath.Base(rel), f.Path)
		}
		tree[p] = f.Status
	}
	return tree
}

// ImportHint returns the import statement for an installed unit. Install
// directories under src/ map to the "@/" alias.
func ImportHint(kind Kind, name, installDir string) string {
	base := importBase(installDir)
	if kind == KindBlock {
		return fmt.Sprintf("import { ... } from %q;", base+"/"+templates.BlocksDir+"/"+name)
	}
	return fmt.Sprintf("import { %s } from %q;", name, base+"/"+name)
}

func importBase(installDir string) string {
	dir := strings.Trim(filepath.ToSlash(filepath.Clean(installDir)), "/")
	if rest, ok := strings.CutPrefix(dir, "src/"); ok {
		return "@/" + rest
	}
	if dir == "src" {
		return "@"
	}
	return "@/" + dir
}
