package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// overlayCenter draws box centered over backdrop on a width x height
// cell grid. Rows are cut on cell boundaries so styled text keeps its
// escape sequences intact.
func overlayCenter(backdrop, box string, width, height int) string {
	boxRows := strings.Split(box, "\n")
	boxWidth := 0
	for _, row := range boxRows {
		boxWidth = max(boxWidth, lipgloss.Width(row))
	}

	top := max((height-len(boxRows))/2, 0)
	left := max((width-boxWidth)/2, 0)

	rows := strings.Split(backdrop, "\n")
	for i, boxRow := range boxRows {
		n := top + i
		if n >= len(rows) {
			break
		}

		row := rows[n]
		if pad := left - lipgloss.Width(row); pad > 0 {
			row += strings.Repeat(" ", pad)
		}
		merged := ansi.Cut(row, 0, left) + boxRow + ansi.Cut(row, left+boxWidth, width)
		// The merged row can exceed the terminal width when the backdrop
		// extends past the box; clip it to the grid.
		rows[n] = ansi.Truncate(merged, width, "")
	}
	return strings.Join(rows, "\n")
}
