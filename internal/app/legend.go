package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/pkaramon/fex/internal/keymap"
	"github.com/pkaramon/fex/internal/ui"
)

// renderLegend formats the key hints for the focused component followed
// by the application-level commands, truncated to the window width.
func renderLegend(entries []keymap.LegendEntry, width int) string {
	segments := make([]string, 0, len(entries))
	for _, entry := range entries {
		if len(entry.Keys) == 0 {
			continue
		}
		segments = append(segments, fmt.Sprintf("[%s] %s", strings.Join(entry.Keys, "/"), entry.Name))
	}
	line := strings.Join(segments, "  ")
	line = ansi.Truncate(line, width, "…")
	return ui.LegendBar.Width(width).Render(line)
}
