package explorer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/pkaramon/fex/internal/fsys"
	"github.com/pkaramon/fex/internal/keymap"
	"github.com/pkaramon/fex/internal/modal"
	"github.com/pkaramon/fex/internal/ui"
)

// TaskKind tags a deferred filesystem intent.
type TaskKind int

const (
	TaskNone TaskKind = iota
	TaskDelete
	TaskMove
	TaskCreate
	TaskSort
	TaskFilter
	TaskOpenRecent
)

// Task is queued when a modal opens and executed only when the modal
// resolves to Confirmed. The target path is captured at open time so it
// is never re-derived after the user's answer.
type Task struct {
	Kind TaskKind
	Path string
}

// Explorer is the directory browser. With interactive=false it doubles as
// the inert preview pane: no commands, never focusable.
type Explorer struct {
	name        string
	interactive bool

	dir      string
	entries  []fsys.Entry
	selected int

	filter        string
	caseSensitive bool
	sortIndex     int

	dialog  modal.Modal
	pending Task
	// recentChoices caches the options shown by the recent-files modal so
	// the confirmed index resolves against what the user actually saw.
	recentChoices []string

	// recentFiles supplies the recent-files modal; nil disables the command.
	recentFiles func() []string
	// onDeleted is notified after a confirmed delete succeeds, so the app
	// can drop the path from the history store.
	onDeleted func(path string)

	commands keymap.Set[Explorer]
	focused  bool
	width    int
	height   int
}

// New creates an explorer rooted at dir.
func New(name string, dir string, interactive, caseSensitiveFilter bool) (*Explorer, error) {
	e := &Explorer{
		name:          name,
		interactive:   interactive,
		caseSensitive: caseSensitiveFilter,
		dialog:        modal.New(),
	}
	e.commands = keymap.NewSet(name, commandList(interactive))
	if err := e.SetPath(dir); err != nil {
		return nil, err
	}
	return e, nil
}

// SetRecentFiles wires the source of the recent-files options modal.
func (e *Explorer) SetRecentFiles(fn func() []string) {
	e.recentFiles = fn
}

// SetOnDeleted wires the post-delete notification.
func (e *Explorer) SetOnDeleted(fn func(path string)) {
	e.onDeleted = fn
}

func commandList(interactive bool) []keymap.Command[Explorer] {
	if !interactive {
		return nil
	}
	return []keymap.Command[Explorer]{
		{ID: "explorer.select_previous_file", Name: "Prev file", Run: (*Explorer).selectPrevious},
		{ID: "explorer.select_next_file", Name: "Next file", Run: (*Explorer).selectNext},
		{ID: "explorer.go_back", Name: "Back", Run: (*Explorer).goBack},
		{ID: "explorer.open_selected_file", Name: "Open", Run: (*Explorer).openSelected},
		{ID: "explorer.delete_current_file", Name: "Delete", Run: (*Explorer).promptDelete},
		{ID: "explorer.move_current_file", Name: "Move", Run: (*Explorer).promptMove},
		{ID: "explorer.create_file", Name: "New file", Run: (*Explorer).promptCreate},
		{ID: "explorer.sort_entries", Name: "Sort", Run: (*Explorer).promptSort},
		{ID: "explorer.filter", Name: "Filter", Run: (*Explorer).promptFilter},
		{ID: "explorer.recent_files", Name: "Recent", Run: (*Explorer).promptRecent},
	}
}

// SetPath re-seeds the explorer from dir: fresh listing, selection at the
// top, filter and sort reset.
func (e *Explorer) SetPath(dir string) error {
	entries, err := fsys.ListDir(dir)
	if err != nil {
		return err
	}
	e.dir = dir
	e.entries = entries
	e.selected = 0
	e.filter = ""
	e.sortIndex = 0
	return nil
}

// refresh re-reads the directory and re-applies filter and sort, moving
// the selection back to the top.
func (e *Explorer) refresh() error {
	entries, err := fsys.ListDir(e.dir)
	if err != nil {
		return err
	}
	e.entries = e.applyFilter(entries)
	SortCriteria[e.sortIndex].sort(e.entries)
	e.selected = 0
	return nil
}

// RefreshPreserving is refresh for externally triggered reloads (the
// directory watcher): the selection is kept by name when it survives.
func (e *Explorer) RefreshPreserving() {
	var keep string
	if sel, ok := e.Selected(); ok {
		keep = sel.Name
	}
	if err := e.refresh(); err != nil {
		return
	}
	for i, entry := range e.entries {
		if entry.Name == keep {
			e.selected = i
			break
		}
	}
}

func (e *Explorer) applyFilter(entries []fsys.Entry) []fsys.Entry {
	if e.filter == "" {
		return entries
	}
	needle := e.filter
	if !e.caseSensitive {
		needle = strings.ToLower(needle)
	}
	out := entries[:0]
	for _, entry := range entries {
		name := entry.Name
		if !e.caseSensitive {
			name = strings.ToLower(name)
		}
		if strings.Contains(name, needle) {
			out = append(out, entry)
		}
	}
	return out
}

func (e *Explorer) Dir() string { return e.dir }

func (e *Explorer) Entries() []fsys.Entry { return e.entries }

// Selected returns the current entry; ok is false when the listing is
// empty or the index is stale.
func (e *Explorer) Selected() (fsys.Entry, bool) {
	if e.selected < 0 || e.selected >= len(e.entries) {
		return fsys.Entry{}, false
	}
	return e.entries[e.selected], true
}

func (e *Explorer) ModalOpen() bool { return e.dialog.IsOpen() }

func (e *Explorer) Focus() {
	if e.interactive {
		e.focused = true
	}
}

func (e *Explorer) Unfocus() { e.focused = false }

func (e *Explorer) Focused() bool { return e.focused && e.interactive }

func (e *Explorer) SetSize(width, height int) {
	e.width = width
	e.height = height
	e.dialog.SetWidth(width - 4)
}

// Legend returns the command list paired with bound keys.
func (e *Explorer) Legend(table *keymap.Table) []keymap.LegendEntry {
	return e.commands.Legend(table)
}

// HandleKey processes one key event. While the modal is open it owns the
// event exclusively; otherwise the key goes through the dispatcher.
func (e *Explorer) HandleKey(table *keymap.Table, msg tea.KeyMsg) bool {
	if e.dialog.IsOpen() {
		e.dialog.Update(msg)
		switch e.dialog.Status() {
		case modal.Confirmed:
			answer := e.dialog.Answer()
			selected := e.dialog.Selected()
			task := e.pending
			e.pending = Task{}
			e.dialog.Close()
			e.runTask(task, answer, selected)
		case modal.Refused:
			e.pending = Task{}
			e.dialog.Close()
		}
		return true
	}
	return e.commands.Dispatch(table, msg.String(), e)
}

func (e *Explorer) selectPrevious(string) bool {
	if len(e.entries) > 0 && e.selected > 0 {
		e.selected--
	}
	return true
}

func (e *Explorer) selectNext(string) bool {
	if len(e.entries) > 0 && e.selected < len(e.entries)-1 {
		e.selected++
	}
	return true
}

func (e *Explorer) goBack(string) bool {
	parent := filepath.Dir(e.dir)
	if parent != e.dir {
		if err := e.SetPath(parent); err != nil {
			e.dialog.OpenError(err.Error())
		}
	}
	return true
}

// openSelected descends into a selected directory. A regular file is left
// unconsumed so the event propagates to the app, which transfers focus to
// the text editor.
func (e *Explorer) openSelected(string) bool {
	sel, ok := e.Selected()
	if !ok || !sel.IsDir {
		return false
	}
	if err := e.SetPath(sel.Path); err != nil {
		e.dialog.OpenError(err.Error())
	}
	return true
}

func (e *Explorer) promptDelete(string) bool {
	sel, ok := e.Selected()
	if !ok {
		e.dialog.OpenInfo("Selected file is invalid")
		return true
	}
	e.pending = Task{Kind: TaskDelete, Path: sel.Path}
	e.dialog.OpenConfirmation(fmt.Sprintf("Delete file: %s?", sel.Path))
	return true
}

func (e *Explorer) promptMove(string) bool {
	sel, ok := e.Selected()
	if !ok {
		e.dialog.OpenInfo("Selected file is invalid")
		return true
	}
	e.pending = Task{Kind: TaskMove, Path: sel.Path}
	e.dialog.OpenQuestion(fmt.Sprintf("Move file: %s to?", sel.Path), sel.Path)
	return true
}

func (e *Explorer) promptCreate(string) bool {
	e.pending = Task{Kind: TaskCreate}
	e.dialog.OpenQuestion("Create file:", "")
	return true
}

func (e *Explorer) promptFilter(string) bool {
	e.pending = Task{Kind: TaskFilter}
	e.dialog.OpenQuestion("Filter:", e.filter)
	return true
}

func (e *Explorer) promptSort(string) bool {
	names := make([]string, len(SortCriteria))
	for i, c := range SortCriteria {
		names[i] = c.Name
	}
	e.pending = Task{Kind: TaskSort}
	e.dialog.OpenOptions("Sort by:", names)
	return true
}

func (e *Explorer) promptRecent(string) bool {
	if e.recentFiles == nil {
		return false
	}
	recent := e.recentFiles()
	if len(recent) == 0 {
		e.dialog.OpenInfo("No recently opened files")
		return true
	}
	e.recentChoices = recent
	e.pending = Task{Kind: TaskOpenRecent}
	e.dialog.OpenOptions("Open recent:", recent)
	return true
}

// runTask applies a confirmed task. Failures surface as an Error modal
// and leave the listing as it was; nothing is partially applied.
func (e *Explorer) runTask(task Task, answer string, selected int) {
	switch task.Kind {
	case TaskDelete:
		if err := fsys.Delete(task.Path); err != nil {
			e.dialog.OpenError(fmt.Sprintf("Could not delete: %v", err))
			return
		}
		if e.onDeleted != nil {
			e.onDeleted(task.Path)
		}
		e.refreshOrError()

	case TaskMove:
		if err := fsys.Move(task.Path, answer); err != nil {
			e.dialog.OpenError(fmt.Sprintf("Could not move file: %v", err))
			return
		}
		e.refreshOrError()

	case TaskCreate:
		if err := fsys.Create(e.dir, answer); err != nil {
			if errors.Is(err, os.ErrExist) {
				e.dialog.OpenInfo("File already exists")
			} else {
				e.dialog.OpenError("Could not create the file")
			}
			return
		}
		e.refreshOrError()

	case TaskSort:
		e.sortIndex = selected
		e.refreshOrError()

	case TaskFilter:
		e.filter = answer
		e.refreshOrError()

	case TaskOpenRecent:
		if selected < 0 || selected >= len(e.recentChoices) {
			return
		}
		e.jumpTo(e.recentChoices[selected])
	}
}

func (e *Explorer) refreshOrError() {
	if err := e.refresh(); err != nil {
		e.dialog.OpenError(err.Error())
	}
}

// jumpTo moves the browser to path's directory and selects it by name.
func (e *Explorer) jumpTo(path string) {
	if err := e.SetPath(filepath.Dir(path)); err != nil {
		e.dialog.OpenError(err.Error())
		return
	}
	name := filepath.Base(path)
	for i, entry := range e.entries {
		if entry.Name == name {
			e.selected = i
			return
		}
	}
	e.dialog.OpenInfo(fmt.Sprintf("%s no longer exists", name))
}

func (e *Explorer) View() string {
	if e.dialog.IsOpen() {
		return e.frame(e.dialog.View())
	}

	var b strings.Builder

	title := e.dir
	if e.filter != "" {
		title += fmt.Sprintf("  (filter: %s)", e.filter)
	}
	b.WriteString(ui.TitleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(ui.DimText.Render(fmt.Sprintf("%-5s %-10s %s", "Type", "Size", "Name")))
	b.WriteString("\n")

	visible := e.height - 4
	if visible < 1 {
		visible = 1
	}
	start := 0
	if e.selected >= visible {
		start = e.selected - visible + 1
	}

	for i := start; i < len(e.entries) && i < start+visible; i++ {
		entry := e.entries[i]
		kind := "file"
		size := humanize.IBytes(uint64(entry.Size))
		if entry.IsDir {
			kind = "dir"
			size = "-"
		}
		row := fmt.Sprintf("%-5s %-10s %s", kind, size, entry.Name)

		switch {
		case i == e.selected && e.Focused():
			row = ui.SelectedItem.Render(">> " + row)
		case i == e.selected:
			row = ui.NormalItem.Render(">  " + row)
		case entry.IsDir:
			row = ui.DirItem.Render("   " + row)
		default:
			row = ui.NormalItem.Render("   " + row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	return e.frame(strings.TrimRight(b.String(), "\n"))
}

func (e *Explorer) frame(content string) string {
	border := ui.PanelBorder
	if e.Focused() {
		border = ui.FocusedBorder
	}
	w := e.width - 2
	if w < 1 {
		w = 1
	}
	h := e.height - 2
	if h < 1 {
		h = 1
	}
	return border.Width(w).Height(h).Render(content)
}
