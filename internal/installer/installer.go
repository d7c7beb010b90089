// Package installer copies components and blocks from a template store into a project.
package installer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	oerrors "github.com/blockui/cli/internal/errors"
	"github.com/blockui/cli/internal/output"
	"github.com/blockui/cli/internal/templates"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// File is one file written by an install.
type File struct {
	// Path is relative to the install destination.
	Path string

	// Status is output.StatusCreated or output.StatusOverwritten.
	Status string
}

// Installer copies template files verbatim from Store.
type Installer struct {
	Store fs.FS
}

// New creates an installer reading from store.
func New(store fs.FS) *Installer {
	return &Installer{Store: store}
}

// InstallComponent copies components/<name>.tsx to destFile, creating parent
// directories and replacing any existing file.
func (i *Installer) InstallComponent(name, destFile string) (File, error) {
	src := path.Join(templates.ComponentsDir, name+templates.ComponentExt)

	content, err := fs.ReadFile(i.Store, src)
	if err != nil {
		return File{}, oerrors.NewCopyError(
			fmt.Sprintf("reading component %s", name), src, err)
	}

	status, err := writeFile(destFile, content)
	if err != nil {
		return File{}, err
	}

	output.Debug("copied component", "name", name, "dest", destFile, "status", status)
	return File{Path: filepath.Base(destFile), Status: status}, nil
}

// InstallBlock copies the blocks/<name> subtree into destDir, replacing
// existing files. Files written before a failure are left in place.
func (i *Installer) InstallBlock(name, destDir string) ([]File, error) {
	root := path.Join(templates.BlocksDir, name)

	info, err := fs.Stat(i.Store, root)
	if err != nil || !info.IsDir() {
		return nil, oerrors.NewCopyError(
			fmt.Sprintf("block %s is not in the template store", name), root, oerrors.ErrBlockNotFound)
	}

	if err := os.MkdirAll(destDir, dirPerm); err != nil {
		return nil, oerrors.NewCopyError("creating block directory", destDir, err)
	}

	var files []File

	err = fs.WalkDir(i.Store, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel := strings.TrimPrefix(strings.TrimPrefix(p, root), "/")
		if rel == "" {
			return nil
		}

		target := filepath.Join(destDir, filepath.FromSlash(rel))

		if d.IsDir() {
			if err := os.MkdirAll(target, dirPerm); err != nil {
				return oerrors.NewCopyError("creating directory", target, err)
			}
			return nil
		}

		content, err := fs.ReadFile(i.Store, p)
		if err != nil {
			return oerrors.NewCopyError("reading template", p, err)
		}

		status, err := writeFile(target, content)
		if err != nil {
			return err
		}

		files = append(files, File{Path: rel, Status: status})
		return nil
	})
	if err != nil {
		var detail *oerrors.DetailError
		if !errors.As(err, &detail) {
			err = oerrors.NewCopyError(fmt.Sprintf("copying block %s", name), root, err)
		}
		return files, err
	}

	output.Debug("copied block", "name", name, "dest", destDir, "files", len(files))
	return files, nil
}

func writeFile(target string, content []byte) (string, error) {
	status := output.StatusCreated
	if _, err := os.Stat(target); err == nil {
		status = output.StatusOverwritten
	}

	if err := os.MkdirAll(filepath.Dir(target), dirPerm); err != nil {
		return "", oerrors.NewCopyError("creating directory", filepath.Dir(target), err)
	}
	if err := os.WriteFile(target, content, filePerm); err != nil {
		return "", oerrors.NewCopyError("writing file", target, err)
	}
	return status, nil
}
