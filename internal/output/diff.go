package output

import (
	"fmt"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	"github.com/charmbracelet/lipgloss"
)

// DefaultDiffMaxLines caps the preview shown before an overwrite prompt.
const DefaultDiffMaxLines = 40

var (
	diffAdded   = lipgloss.NewStyle().Foreground(colorGreen)
	diffRemoved = lipgloss.NewStyle().Foreground(colorBoldRed)
	diffHunk    = lipgloss.NewStyle().Foreground(ColorCyan)
)

// RenderFileDiff renders a unified diff between the installed file and the
// template that would replace it. Returns "" when the contents are equal.
// Output longer than maxLines is truncated with a trailing note.
func RenderFileDiff(path, installed, template string, maxLines int) string {
	if installed == template {
		return ""
	}

	diff := udiff.Unified(path+" (installed)", path+" (template)", installed, template)
	lines := strings.Split(strings.TrimRight(diff, "\n"), "\n")

	truncated := false
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
		truncated = true
	}

	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(colorDiffLine(line))
		sb.WriteString("\n")
	}
	if truncated {
		sb.WriteString(StyleDim.Render(fmt.Sprintf("... (truncated to %d lines)", maxLines)))
		sb.WriteString("\n")
	}

	return sb.String()
}

func colorDiffLine(line string) string {
	switch {
	case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		return StyleSummary.Render(line)
	case strings.HasPrefix(line, "@@"):
		return diffHunk.Render(line)
	case strings.HasPrefix(line, "+"):
		return diffAdded.Render(line)
	case strings.HasPrefix(line, "-"):
		return diffRemoved.Render(line)
	default:
		return line
	}
}
