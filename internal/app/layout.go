package app

// Layout computes the dimensions for the two panes and the legend row.
type Layout struct {
	BrowserWidth int
	PaneWidth    int
	Height       int
	LegendHeight int
}

// ComputeLayout splits the window into the browser column, the closed
// pane, and a single legend row at the bottom.
func ComputeLayout(totalWidth, totalHeight int) Layout {
	// Some terminals report transient 0 (or negative) sizes during live
	// resizes; clamp so panes never see an invalid dimension.
	if totalWidth < 2 {
		totalWidth = 2
	}
	if totalHeight < 2 {
		totalHeight = 2
	}

	l := Layout{
		LegendHeight: 1,
		Height:       totalHeight - 1,
	}

	l.BrowserWidth = totalWidth / 2
	l.PaneWidth = totalWidth - l.BrowserWidth
	if l.BrowserWidth < 1 {
		l.BrowserWidth = 1
	}
	if l.PaneWidth < 1 {
		l.PaneWidth = 1
	}
	return l
}
