package output

import (
	"context"
	"errors"
	"fmt"
	"path"

	oerrors "github.com/blockui/cli/internal/errors"
)

// TerminalReporter prints workflow checkpoints to the terminal.
// It holds no workflow state; every method is a pure side effect.
type TerminalReporter struct {
	// Title is shown in the banner.
	Title string

	// Subtitle is shown under the title, typically the version.
	Subtitle string
}

// NewTerminalReporter creates a reporter with the given banner text.
func NewTerminalReporter(title, subtitle string) *TerminalReporter {
	return &TerminalReporter{Title: title, Subtitle: subtitle}
}

// Banner prints the identity banner.
func (r *TerminalReporter) Banner() {
	Println(FormatBanner(r.Title, r.Subtitle))
}

// Progress runs fn behind a spinner titled title.
func (r *TerminalReporter) Progress(ctx context.Context, title string, fn func(context.Context) error) error {
	return RunWithSpinner(ctx, title, fn)
}

// Preview prints a diff shown ahead of an overwrite confirmation.
func (r *TerminalReporter) Preview(diff string) {
	if diff == "" {
		return
	}
	Print(diff)
}

// Files prints the written files. A single file gets one status line;
// several are drawn as a tree rooted at root.
func (r *TerminalReporter) Files(root string, files map[string]string) {
	if len(files) == 1 {
		for p, status := range files {
			Println(FormatFileLine(path.Join(root, p), status))
		}
		return
	}
	Print(RenderFileTree(root, files))
}

// Success prints the completion line and the import hint.
func (r *TerminalReporter) Success(summary, hint string) {
	Println(FormatCheckmark(StyleSummary.Render(summary)))
	if hint != "" {
		Println("")
		Println(StyleDim.Render("Import it with:"))
		Println("  " + StyleNoun.Render(hint))
	}
}

// Cancelled prints a note that nothing was changed.
func (r *TerminalReporter) Cancelled(msg string) {
	Println(StyleDim.Render(msg))
}

// Failure prints err as a single human-readable message plus remediation.
func (r *TerminalReporter) Failure(err error) {
	if err == nil {
		return
	}

	var sel *oerrors.SelectionError
	if errors.As(err, &sel) {
		Error(FormatCross(sel.Error()))
		if len(sel.Valid) == 0 {
			Info(fmt.Sprintf("No %ss are available.", sel.Kind))
			return
		}
		Info(fmt.Sprintf("Available %ss:", sel.Kind))
		for _, name := range sel.Valid {
			Info("  " + StyleNoun.Render(name))
		}
		return
	}

	Error(FormatCross(err.Error()))

	var detail *oerrors.DetailError
	if errors.As(err, &detail) && detail.Hint != "" {
		Info("Hint: " + detail.Hint)
	}
}
