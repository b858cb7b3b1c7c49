package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// emptyCell is rendered in place of an empty value.
const emptyCell = "-"

var (
	tableBorderStyle = lipgloss.NewStyle().Foreground(ColorDimGray)
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorCyan).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
	tableDimStyle    = StyleDim.Padding(0, 1)
)

// Table collects rows for listings such as `templates list` and
// `config show`. Secondary columns (sources, descriptions) can be dimmed so
// the key and value columns stand out.
type Table struct {
	headers []string
	dim     map[int]bool
	rows    [][]string
}

// NewTable creates a table with the given headers.
func NewTable(headers ...string) *Table {
	return &Table{headers: headers, dim: map[int]bool{}}
}

// Dim renders the columns at the given indexes faint.
func (t *Table) Dim(cols ...int) *Table {
	for _, c := range cols {
		t.dim[c] = true
	}
	return t
}

// Row adds a row. Empty cells are shown as "-".
func (t *Table) Row(cells ...string) *Table {
	row := make([]string, len(cells))
	for i, c := range cells {
		if c == "" {
			c = emptyCell
		}
		row[i] = c
	}
	t.rows = append(t.rows, row)
	return t
}

// String renders the table.
func (t *Table) String() string {
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorderStyle).
		Headers(t.headers...).
		Rows(t.rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return tableHeaderStyle
			case t.dim[col]:
				return tableDimStyle
			default:
				return tableCellStyle
			}
		})
	return tbl.String()
}
