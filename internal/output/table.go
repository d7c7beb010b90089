package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	tableBorderStyle = lipgloss.NewStyle().Foreground(ColorDimGray)
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// CellStyler picks a style from a cell's value.
type CellStyler func(cell string) lipgloss.Style

// Table collects rows and renders them with a rounded lipgloss border.
type Table struct {
	headers []string
	rows    [][]string
	columns map[int]CellStyler
}

// NewTable creates a table with the given headers.
func NewTable(headers ...string) *Table {
	return &Table{headers: headers, columns: make(map[int]CellStyler)}
}

// Row appends a row.
func (t *Table) Row(cells ...string) *Table {
	t.rows = append(t.rows, cells)
	return t
}

// Column styles every data cell in column col.
func (t *Table) Column(col int, styler CellStyler) *Table {
	t.columns[col] = styler
	return t
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// String renders the table.
func (t *Table) String() string {
	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableBorderStyle).
		Headers(t.headers...).
		Rows(t.rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			styler, ok := t.columns[col]
			if !ok || row < 0 || row >= len(t.rows) || col >= len(t.rows[row]) {
				return tableCellStyle
			}
			return styler(t.rows[row][col]).Inherit(tableCellStyle)
		})

	return tbl.String()
}

// Unit kinds shown in catalog listings.
const (
	KindComponent = "component"
	KindBlock     = "block"
)

func kindStyle(kind string) lipgloss.Style {
	switch kind {
	case KindComponent:
		return lipgloss.NewStyle().Foreground(colorGreen)
	case KindBlock:
		return lipgloss.NewStyle().Foreground(colorMagenta)
	default:
		return lipgloss.NewStyle()
	}
}

// RenderCatalog renders components and blocks with the command that adds
// each. It returns "" when both lists are empty.
func RenderCatalog(components, blocks []string) string {
	tbl := NewTable("NAME", "KIND", "ADD WITH").
		Column(0, func(string) lipgloss.Style { return StyleNoun }).
		Column(1, kindStyle).
		Column(2, func(string) lipgloss.Style { return StyleDim })

	for _, name := range components {
		tbl.Row(name, KindComponent, "blockui add "+name)
	}
	for _, name := range blocks {
		tbl.Row(name, KindBlock, "blockui add-block "+name)
	}

	if tbl.Len() == 0 {
		return ""
	}
	return tbl.String()
}
