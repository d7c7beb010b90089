package prompt

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/blockui/cli/internal/output"
)

var runFormFunc = func(form *huh.Form) error { return form.Run() }

// HuhPrompter renders prompts with charmbracelet/huh on stderr.
type HuhPrompter struct {
	isTerminal func() bool
}

// NewHuhPrompter creates a prompter gated on output.IsTTY.
func NewHuhPrompter() *HuhPrompter {
	return &HuhPrompter{isTerminal: output.IsTTY}
}

func (p *HuhPrompter) runForm(form *huh.Form) error {
	checker := p.isTerminal
	if checker == nil {
		checker = output.IsTTY
	}
	if !checker() {
		return ErrNotInteractive
	}

	form.WithProgramOptions(tea.WithOutput(os.Stderr))

	err := runFormFunc(form)
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	return err
}

// Select renders a single-choice list. An empty option list returns ""
// without rendering anything.
func (p *HuhPrompter) Select(title string, options []string) (string, error) {
	if len(options) == 0 {
		return "", nil
	}

	opts := make([]huh.Option[string], len(options))
	for i, o := range options {
		opts[i] = huh.NewOption(o, o)
	}

	choice := options[0]
	err := p.runForm(huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(opts...).
				Value(&choice),
		),
	))
	if err != nil {
		return "", err
	}
	return choice, nil
}

// Confirm renders a yes/no prompt defaulting to no.
func (p *HuhPrompter) Confirm(title string) (bool, error) {
	var answer bool
	err := p.runForm(huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(&answer),
		),
	))
	if err != nil {
		return false, err
	}
	return answer, nil
}
