package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pkaramon/fex/internal/config"
	"github.com/pkaramon/fex/internal/editor"
	"github.com/pkaramon/fex/internal/explorer"
	"github.com/pkaramon/fex/internal/history"
	"github.com/pkaramon/fex/internal/keymap"
	"github.com/pkaramon/fex/internal/watch"
)

// paneKind identifies what the closed pane currently shows: an inert
// directory preview or the text editor.
type paneKind int

const (
	panePreview paneKind = iota
	paneEditor
)

// FsChangedMsg is delivered when the watched directory changes on disk.
type FsChangedMsg struct{}

type App struct {
	cfg     config.Config
	table   *keymap.Table
	program *tea.Program

	browser *explorer.Explorer
	preview *explorer.Explorer
	editor  *editor.Editor
	pane    paneKind

	hist    *history.Store
	watcher *watch.Watcher

	commands keymap.Set[App]

	// seededPath is the selection path the closed pane was last seeded
	// from, used to skip redundant reloads.
	seededPath string

	width    int
	height   int
	quitting bool
}

func New(cfg config.Config, hist *history.Store) (*App, error) {
	table := keymap.MustTable(keymap.DefaultBindings())

	browser, err := explorer.New("explorer", cfg.StartDir, true, cfg.CaseSensitiveFilter)
	if err != nil {
		return nil, err
	}
	preview, err := explorer.New("preview", cfg.StartDir, false, cfg.CaseSensitiveFilter)
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:     cfg,
		table:   table,
		browser: browser,
		preview: preview,
		editor:  editor.New(),
		hist:    hist,
	}
	a.commands = keymap.NewSet("app", []keymap.Command[App]{
		{ID: "app.quit", Name: "Quit", Run: (*App).quit},
		{ID: "app.go_back", Name: "Back", Run: (*App).goBack},
		{ID: "app.open_selected_file", Name: "Open", Run: (*App).openSelectedFile},
	})

	if hist != nil {
		browser.SetRecentFiles(func() []string {
			paths, err := hist.Recent(cfg.HistoryLimit)
			if err != nil {
				log.Error("recent files query failed", "err", err)
				return nil
			}
			return paths
		})
		browser.SetOnDeleted(func(path string) {
			if err := hist.Forget(path); err != nil {
				log.Error("history forget failed", "path", path, "err", err)
			}
		})
	}

	watcher, err := watch.New(func() {
		if a.program != nil {
			a.program.Send(FsChangedMsg{})
		}
	})
	if err != nil {
		log.Error("directory watcher unavailable", "err", err)
	} else {
		a.watcher = watcher
		a.watcher.SetDir(cfg.StartDir)
	}

	a.browser.Focus()
	a.syncPane(true)
	return a, nil
}

func (a *App) SetProgram(p *tea.Program) { a.program = p }

func (a *App) Init() tea.Cmd {
	if a.watcher != nil {
		go a.watcher.Start()
	}
	return nil
}

func (a *App) Close() {
	if a.watcher != nil {
		if err := a.watcher.Stop(); err != nil {
			log.Error("watcher stop failed", "err", err)
		}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			a.quitting = true
			return a, tea.Quit
		}
		a.handleKey(msg)
		if a.quitting {
			return a, tea.Quit
		}
		return a, nil

	case FsChangedMsg:
		a.browser.RefreshPreserving()
		a.syncPane(false)
		return a, nil

	case tea.WindowSizeMsg:
		// Transient 0x0 sizes show up during live resizes; ignore them.
		if msg.Width <= 0 || msg.Height <= 0 {
			return a, nil
		}
		a.width = msg.Width
		a.height = msg.Height
		a.updateSizes()
		return a, tea.ClearScreen
	}
	return a, nil
}

// handleKey routes one key event. The focused component gets the event
// first; unconsumed events fall through to the application command set.
func (a *App) handleKey(msg tea.KeyMsg) {
	if a.editorFocused() {
		if a.editor.HandleKey(a.table, msg) {
			return
		}
		a.commands.Dispatch(a.table, msg.String(), a)
		return
	}

	if a.browser.HandleKey(a.table, msg) {
		a.syncPane(false)
		if a.watcher != nil {
			a.watcher.SetDir(a.browser.Dir())
		}
		return
	}
	a.commands.Dispatch(a.table, msg.String(), a)
}

func (a *App) editorFocused() bool {
	return a.pane == paneEditor && a.editor.Focused()
}

// syncPane re-seeds the closed pane from the browser selection: a
// directory yields an inert preview, a file yields the editor. force
// reloads even when the selection path has not changed.
func (a *App) syncPane(force bool) {
	sel, ok := a.browser.Selected()
	if !ok {
		if force || a.seededPath != a.browser.Dir() {
			a.seededPath = a.browser.Dir()
			a.pane = panePreview
			if err := a.preview.SetPath(a.browser.Dir()); err != nil {
				log.Error("preview refresh failed", "dir", a.browser.Dir(), "err", err)
			}
		}
		return
	}

	if !force && sel.Path == a.seededPath {
		return
	}
	// Don't throw away unsaved edits on a background refresh.
	if !force && a.pane == paneEditor && a.editor.Buffer().Dirty() && sel.Path == a.editor.Buffer().Path() {
		return
	}
	a.seededPath = sel.Path

	if sel.IsDir {
		a.pane = panePreview
		if err := a.preview.SetPath(sel.Path); err != nil {
			log.Error("preview refresh failed", "dir", sel.Path, "err", err)
		}
		return
	}
	a.pane = paneEditor
	a.editor.SetPath(sel.Path)
}

func (a *App) quit(string) bool {
	a.quitting = true
	return true
}

// goBack returns focus from the editor to the browser. The buffer keeps
// its contents, dirty or not.
func (a *App) goBack(string) bool {
	if !a.editorFocused() {
		return false
	}
	a.editor.Unfocus()
	a.browser.Focus()
	return true
}

// openSelectedFile moves focus into the editor pane. Focus only
// transfers when the file decoded as text; otherwise the placeholder
// stays visible and the browser keeps focus.
func (a *App) openSelectedFile(string) bool {
	sel, ok := a.browser.Selected()
	if !ok || sel.IsDir {
		return false
	}
	a.syncPane(false)
	if !a.editor.Readable() {
		return true
	}
	if a.hist != nil {
		if err := a.hist.Record(sel.Path); err != nil {
			log.Error("history record failed", "path", sel.Path, "err", err)
		}
	}
	log.Debug("focus editor", "path", sel.Path)
	a.browser.Unfocus()
	a.editor.Focus()
	return true
}

func (a *App) updateSizes() {
	layout := ComputeLayout(a.width, a.height)
	a.browser.SetSize(layout.BrowserWidth, layout.Height)
	a.preview.SetSize(layout.PaneWidth, layout.Height)
	a.editor.SetSize(layout.PaneWidth, layout.Height)
}

const (
	minWindowWidth  = 40
	minWindowHeight = 8
)

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	if a.width < minWindowWidth || a.height < minWindowHeight {
		msg := fmt.Sprintf("Window too small (%dx%d)\nMinimum supported: %dx%d",
			a.width, a.height, minWindowWidth, minWindowHeight)
		box := lipgloss.NewStyle().Padding(1, 2).Render(msg)
		base := strings.Repeat("\n", a.height)
		return overlayCenter(base, box, a.width, a.height)
	}

	layout := ComputeLayout(a.width, a.height)

	var pane string
	if a.pane == paneEditor {
		pane = a.editor.View()
	} else {
		pane = a.preview.View()
	}

	main := lipgloss.JoinHorizontal(lipgloss.Top, a.browser.View(), pane)
	return main + "\n" + renderLegend(a.legendEntries(), layout.BrowserWidth+layout.PaneWidth)
}

// legendEntries lists the focused component's commands followed by the
// application-level ones.
func (a *App) legendEntries() []keymap.LegendEntry {
	var entries []keymap.LegendEntry
	if a.editorFocused() {
		entries = a.editor.Legend(a.table)
	} else {
		entries = a.browser.Legend(a.table)
	}
	return append(entries, a.commands.Legend(a.table)...)
}
