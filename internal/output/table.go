package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerCellStyle = lipgloss.NewStyle().Bold(true).Foreground(colorHeader).Padding(0, 1)
	bodyCellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// Table is a bordered report table. When a status column is set, its cells
// are colored like FormatFileLine statuses.
type Table struct {
	headers   []string
	rows      [][]string
	statusCol int
}

// NewTable creates a table with the given headers and no status column.
func NewTable(headers ...string) *Table {
	return &Table{headers: headers, statusCol: -1}
}

// WithStatusColumn marks column col as holding status words.
func (t *Table) WithStatusColumn(col int) *Table {
	t.statusCol = col
	return t
}

// Row appends a row.
func (t *Table) Row(cells ...string) *Table {
	t.rows = append(t.rows, cells)
	return t
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// String renders the table.
func (t *Table) String() string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDimGray)).
		Headers(t.headers...).
		Rows(t.rows...).
		StyleFunc(t.cellStyle).
		String()
}

func (t *Table) cellStyle(row, col int) lipgloss.Style {
	if row == table.HeaderRow {
		return headerCellStyle
	}
	if col == t.statusCol && row >= 0 && row < len(t.rows) && col < len(t.rows[row]) {
		return statusStyle(t.rows[row][col]).Padding(0, 1)
	}
	return bodyCellStyle
}

// NamesTable renders field/value pairs as a two-column table. Fields without
// a value get an empty cell.
func NamesTable(fields, values []string) string {
	t := NewTable("FIELD", "VALUE")
	for i, f := range fields {
		v := ""
		if i < len(values) {
			v = values[i]
		}
		t.Row(f, v)
	}
	return t.String()
}
