// Package testutil provides test helpers for blockui tests.
package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

// WriteFile creates a file with the given content under dir, creating parents.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// ReactProject creates a temporary project whose package.json declares react.
func ReactProject(t *testing.T) string {
	t.Helper()
	return Project(t, `{"name":"app","dependencies":{"react":"^18.2.0","react-dom":"^18.2.0"}}`)
}

// Project creates a temporary project with the given package.json content.
func Project(t *testing.T, manifest string) string {
	t.Helper()
	dir := t.TempDir()
	WriteFile(t, dir, "package.json", manifest)
	return dir
}

// InstallPackages fakes installed node_modules entries under root.
func InstallPackages(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		WriteFile(t, root, filepath.Join("node_modules", name, "package.json"), `{"name":"`+name+`"}`)
	}
}

// ListFiles returns every regular file under root, relative and slash-separated.
func ListFiles(t *testing.T, root string) []string {
	t.Helper()
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		t.Fatalf("failed to walk %s: %v", root, err)
	}
	return files
}
