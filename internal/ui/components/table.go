package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/spellz/internal/ui/theme"
)

// Table renders rows of pre-styled cells in aligned columns. Widths are
// measured with lipgloss so styled cells line up.
type Table struct {
	Headers []string
	Rows    [][]string
	// Right lists the column indexes that are right aligned.
	Right map[int]bool
}

// View renders the table.
func (t Table) View() string {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	var b strings.Builder
	header := make([]string, len(t.Headers))
	for i, h := range t.Headers {
		header[i] = theme.TableHeader.Render(t.pad(i, h, widths[i]))
	}
	b.WriteString(strings.TrimRight(strings.Join(header, "  "), " "))
	b.WriteString("\n")

	for _, row := range t.Rows {
		cells := make([]string, len(widths))
		for i := range widths {
			var cell string
			if i < len(row) {
				cell = row[i]
			}
			cells[i] = t.pad(i, cell, widths[i])
		}
		b.WriteString(strings.TrimRight(strings.Join(cells, "  "), " "))
		b.WriteString("\n")
	}
	return b.String()
}

func (t Table) pad(col int, s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	if t.Right[col] {
		return strings.Repeat(" ", gap) + s
	}
	return s + strings.Repeat(" ", gap)
}
