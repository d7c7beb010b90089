// Package templates bundles the component and block template store.
//
// The store has two top-level directories:
//
//   - components/ holds one .tsx file per component.
//   - blocks/ holds one subdirectory per block, copied as a whole.
//
// Files are copied into projects verbatim; nothing here is rendered.
package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
)

//go:embed all:store
var storeFS embed.FS

// Store layout.
const (
	// ComponentsDir holds single-file components.
	ComponentsDir = "components"

	// BlocksDir holds one directory per block.
	BlocksDir = "blocks"

	// ComponentExt is the extension component files carry in the store.
	ComponentExt = ".tsx"
)

// Store returns the bundled template store rooted at its top level.
func Store() fs.FS {
	sub, err := fs.Sub(storeFS, "store")
	if err != nil {
		// fs.Sub only fails on an invalid path, and "store" is valid.
		panic(err)
	}
	return sub
}

// Open returns the template store to read from. An empty dir selects the
// bundled store; otherwise dir must be an existing directory laid out like it.
func Open(dir string) (fs.FS, error) {
	if dir == "" {
		return Store(), nil
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("opening template directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("template directory %s is not a directory", dir)
	}

	return os.DirFS(dir), nil
}
