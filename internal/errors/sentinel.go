package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for known failure kinds.
var (
	// ErrValidation indicates the target directory is not a compatible React project.
	ErrValidation = errors.New("validation error")

	// ErrSelection indicates the requested component or block is not in the catalog.
	ErrSelection = errors.New("invalid selection")

	// ErrDependencyInstall indicates the package manager exited non-zero.
	ErrDependencyInstall = errors.New("dependency install failed")

	// ErrCopy indicates a template could not be copied into the project.
	ErrCopy = errors.New("copy failed")

	// ErrBlockNotFound indicates the block subtree is missing from the template store.
	// It wraps ErrCopy so callers matching on copy failures also catch it.
	ErrBlockNotFound = fmt.Errorf("block not found: %w", ErrCopy)
)
