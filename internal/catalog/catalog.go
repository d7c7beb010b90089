// Package catalog enumerates the components and blocks in a template store.
package catalog

import (
	"io/fs"
	"slices"
	"strings"

	"github.com/blockui/cli/internal/output"
	"github.com/blockui/cli/internal/templates"
)

// Reader lists installable units from a template store.
// Every call re-reads the store; nothing is cached.
type Reader struct {
	FS fs.FS
}

// NewReader creates a reader over store.
func NewReader(store fs.FS) *Reader {
	return &Reader{FS: store}
}

// ListComponents returns component names sorted, with the file extension stripped.
// A missing or unreadable store yields an empty list.
func (r *Reader) ListComponents() []string {
	entries := r.readDir(templates.ComponentsDir)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() && e.Type()&fs.ModeSymlink == 0 {
			continue
		}
		name, ok := strings.CutSuffix(e.Name(), templates.ComponentExt)
		if !ok || name == "" {
			continue
		}
		names = append(names, name)
	}

	slices.Sort(names)
	return names
}

// ListBlocks returns block names sorted. Only directories count as blocks.
// A missing or unreadable store yields an empty list.
func (r *Reader) ListBlocks() []string {
	entries := r.readDir(templates.BlocksDir)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}

	slices.Sort(names)
	return names
}

func (r *Reader) readDir(dir string) []fs.DirEntry {
	if r.FS == nil {
		return nil
	}
	entries, err := fs.ReadDir(r.FS, dir)
	if err != nil {
		output.Debug("catalog read failed, treating as empty", "dir", dir, "error", err)
		return nil
	}
	return entries
}

// Contains reports whether name is in names. Matching is case-sensitive.
func Contains(names []string, name string) bool {
	return slices.Contains(names, name)
}
