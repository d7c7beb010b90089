package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Use these instead of inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: component, block and package names.
	ColorCyan = lipgloss.Color("14")

	// colorGreen is used for the "created" file status.
	colorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "overwritten" file status and warnings.
	ColorYellow = lipgloss.Color("220")

	// colorBoldRed is used for failures.
	colorBoldRed = lipgloss.Color("204")

	// colorGreenCheck is used for the completion checkmark.
	colorGreenCheck = lipgloss.Color("10")

	// colorMagenta is used for the banner border.
	colorMagenta = lipgloss.Color("212")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (unit names, package names, paths).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles action verbs.
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome.
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)

	// StyleBanner frames the identity banner.
	StyleBanner = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMagenta).
			Padding(0, 2)
)

// File status constants.
const (
	StatusCreated     = "created"
	StatusOverwritten = "overwritten"
	statusFailed      = "failed"
)

// statusStyle returns the lipgloss style for a file status string.
// Unknown statuses return an unstyled default.
func statusStyle(status string) lipgloss.Style {
	switch status {
	case StatusCreated:
		return lipgloss.NewStyle().Foreground(colorGreen)
	case StatusOverwritten:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case statusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(colorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minPathColumnWidth keeps status words aligned across file lines.
const minPathColumnWidth = 40

// FormatFileLine renders a written path with a right-aligned, color-coded status.
func FormatFileLine(path, status string) string {
	padding := minPathColumnWidth - len(path)
	if padding < 2 {
		padding = 2
	}

	return StyleDim.Render("f:") + StyleNoun.Render(path) + strings.Repeat(" ", padding) + statusStyle(status).Render(status)
}

// FormatCheckmark renders a green checkmark with a message.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(colorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatCross renders a red cross with a message.
func FormatCross(msg string) string {
	cross := lipgloss.NewStyle().Foreground(colorBoldRed).Render("✘")
	return cross + " " + msg
}

// FormatBanner renders the boxed identity banner.
func FormatBanner(title, subtitle string) string {
	body := StyleSummary.Render(title)
	if subtitle != "" {
		body += "\n" + StyleDim.Render(subtitle)
	}
	return StyleBanner.Render(body)
}
