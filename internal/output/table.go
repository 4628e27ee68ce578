package output

import (
	"fmt"
	"io"
	"strings"
)

const columnSeparator = "  "

// Align is a column alignment.
type Align int

// Column alignments.
const (
	AlignLeft Align = iota
	AlignRight
)

// Table renders tabular data for text output.
type Table struct {
	headers []string
	rows    [][]string
	align   map[int]Align
}

// NewTable creates a new table with the given headers.
func NewTable(headers ...string) *Table {
	return &Table{
		headers: headers,
		align:   map[int]Align{},
	}
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

// SetAlign sets the alignment of column col (zero-based).
func (t *Table) SetAlign(col int, a Align) {
	t.align[col] = a
}

// Render writes the table to w.
func (t *Table) Render(w io.Writer) error {
	if len(t.headers) == 0 && len(t.rows) == 0 {
		return nil
	}

	widths := t.widths()

	if len(t.headers) > 0 {
		if err := t.renderRow(w, t.headers, widths); err != nil {
			return err
		}
		rule := make([]string, len(widths))
		for i, width := range widths {
			rule[i] = strings.Repeat("-", width)
		}
		if err := t.renderRow(w, rule, widths); err != nil {
			return err
		}
	}

	for _, row := range t.rows {
		if err := t.renderRow(w, row, widths); err != nil {
			return err
		}
	}
	return nil
}

func (t *Table) widths() []int {
	cols := len(t.headers)
	for _, row := range t.rows {
		cols = max(cols, len(row))
	}

	widths := make([]int, cols)
	grow := func(cells []string) {
		for i, cell := range cells {
			widths[i] = max(widths[i], len(cell))
		}
	}
	grow(t.headers)
	for _, row := range t.rows {
		grow(row)
	}
	return widths
}

func (t *Table) renderRow(w io.Writer, cells []string, widths []int) error {
	parts := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		if t.align[i] == AlignRight {
			parts[i] = fmt.Sprintf("%*s", width, cell)
		} else {
			parts[i] = fmt.Sprintf("%-*s", width, cell)
		}
	}
	_, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, columnSeparator), " "))
	return err
}
