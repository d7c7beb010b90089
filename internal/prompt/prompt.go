// Package prompt asks the user to pick a unit and to confirm overwrites.
package prompt

import (
	"errors"
)

var (
	// ErrAborted is returned when the user dismisses a prompt.
	ErrAborted = errors.New("prompt aborted")

	// ErrNotInteractive is returned when a prompt is needed but no terminal is attached.
	ErrNotInteractive = errors.New("prompt requires an interactive terminal")
)

// Prompter asks the user questions during an install.
type Prompter interface {
	// Select returns one of options. With no options it may return "".
	Select(title string, options []string) (string, error)

	// Confirm returns the user's yes/no answer.
	Confirm(title string) (bool, error)
}

// Funcs adapts optional callbacks into a Prompter.
type Funcs struct {
	SelectFunc  func(title string, options []string) (string, error)
	ConfirmFunc func(title string) (bool, error)
}

// Select calls SelectFunc, or fails with ErrNotInteractive when it is unset.
func (p Funcs) Select(title string, options []string) (string, error) {
	if p.SelectFunc == nil {
		return "", ErrNotInteractive
	}
	return p.SelectFunc(title, options)
}

// Confirm calls ConfirmFunc, or fails with ErrNotInteractive when it is unset.
func (p Funcs) Confirm(title string) (bool, error) {
	if p.ConfirmFunc == nil {
		return false, ErrNotInteractive
	}
	return p.ConfirmFunc(title)
}
