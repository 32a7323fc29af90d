package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const colGap = 2

// Table is an aligned text table with a header separator and an optional
// footer row below a second separator.
type Table struct {
	Headers []string
	Rows    [][]string
	Footer  []string

	// RightAlign marks columns whose cells are padded on the left.
	RightAlign []bool
}

// RenderTable renders a simple left-aligned table.
func RenderTable(headers []string, rows [][]string) string {
	return Table{Headers: headers, Rows: rows}.Render()
}

// Render lays out the table. Column widths are measured on visible width,
// so cells may carry ANSI styling.
func (t Table) Render() string {
	if len(t.Headers) == 0 {
		return ""
	}

	widths := make([]int, len(t.Headers))
	measure := func(row []string) {
		for i := 0; i < len(widths) && i < len(row); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}
	measure(t.Headers)
	for _, row := range t.Rows {
		measure(row)
	}
	measure(t.Footer)

	var b strings.Builder
	t.writeRow(&b, widths, t.Headers, StyleHeader.Render)
	writeSeparator(&b, widths)
	for _, row := range t.Rows {
		t.writeRow(&b, widths, row, nil)
	}
	if len(t.Footer) > 0 {
		writeSeparator(&b, widths)
		t.writeRow(&b, widths, t.Footer, nil)
	}
	return b.String()
}

func (t Table) writeRow(b *strings.Builder, widths []int, row []string, style func(...string) string) {
	last := len(widths) - 1
	for i := range widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		pad := strings.Repeat(" ", max(0, widths[i]-lipgloss.Width(cell)))
		if style != nil {
			cell = style(cell)
		}
		right := i < len(t.RightAlign) && t.RightAlign[i]
		switch {
		case right:
			b.WriteString(pad + cell)
		case i < last:
			b.WriteString(cell + pad)
		default:
			b.WriteString(cell)
		}
		if i < last {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")
}

func writeSeparator(b *strings.Builder, widths []int) {
	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < len(widths)-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")
}
