package output

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestStatusStyle(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		wantBold bool
		wantFG   lipgloss.Color
	}{
		{name: "created returns green", status: StatusCreated, wantFG: colorGreen},
		{name: "overwritten returns yellow", status: StatusOverwritten, wantFG: ColorYellow},
		{name: "failed returns bold red", status: statusFailed, wantBold: true, wantFG: colorBoldRed},
		{name: "unknown returns default unstyled", status: "unknown-value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := statusStyle(tt.status)
			assert.Equal(t, tt.wantBold, style.GetBold())
			if tt.wantFG != "" {
				assert.Equal(t, tt.wantFG, style.GetForeground())
			} else {
				assert.Equal(t, lipgloss.NoColor{}, style.GetForeground())
			}
		})
	}
}

func TestFormatFileLine(t *testing.T) {
	line := FormatFileLine("blocks/login/LoginForm.tsx", StatusCreated)

	assert.Contains(t, line, "f:")
	assert.Contains(t, line, "blocks/login/LoginForm.tsx")
	assert.Contains(t, line, StatusCreated)
}

func TestFormatFileLine_LongPathKeepsGap(t *testing.T) {
	path := strings.Repeat("a", minPathColumnWidth+5)
	line := FormatFileLine(path, StatusOverwritten)

	assert.Contains(t, line, path+"  ")
}

func TestFormatCheckmark(t *testing.T) {
	assert.Contains(t, FormatCheckmark("Installed Button"), "✔")
	assert.Contains(t, FormatCheckmark("Installed Button"), "Installed Button")
}

func TestFormatCross(t *testing.T) {
	assert.Contains(t, FormatCross("failed"), "✘")
}

func TestFormatBanner(t *testing.T) {
	banner := FormatBanner("blockui", "v1.2.3")

	assert.Contains(t, banner, "blockui")
	assert.Contains(t, banner, "v1.2.3")
	assert.Contains(t, banner, "╭", "banner should use a rounded border")
}
