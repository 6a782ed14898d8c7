package editor

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pkaramon/fex/internal/buffer"
	"github.com/pkaramon/fex/internal/keymap"
	"github.com/pkaramon/fex/internal/modal"
	"github.com/pkaramon/fex/internal/ui"
)

// Mode is the editor's input mode.
type Mode int

const (
	// ModeView allows navigation only.
	ModeView Mode = iota
	// ModeEdit enables character-level mutation.
	ModeEdit
)

// pendingAction tags the deferred intent behind an open dialog; it is
// queued at open time and applied only when that dialog confirms, so
// dismissing an unrelated dialog can never trigger it.
type pendingAction int

const (
	pendingNone pendingAction = iota
	pendingLeaveEdit
)

// Editor is the text buffer component. When the bound file cannot be
// decoded as text it shows a placeholder instead of an editable buffer.
type Editor struct {
	buf  *buffer.Buffer
	mode Mode

	dialog  modal.Modal
	pending pendingAction
	// placeholder is non-empty when the current path could not be read;
	// the component is then inert.
	placeholder string

	commands keymap.Set[Editor]
	focused  bool
	width    int
	height   int
}

func New() *Editor {
	e := &Editor{
		buf:    buffer.New(),
		dialog: modal.New(),
	}
	e.commands = keymap.NewSet("text_editor", []keymap.Command[Editor]{
		{ID: "text_editor.next_char", Name: "Next char", Run: (*Editor).nextChar},
		{ID: "text_editor.prev_char", Name: "Prev char", Run: (*Editor).prevChar},
		{ID: "text_editor.next_line", Name: "Next line", Run: (*Editor).nextLine},
		{ID: "text_editor.prev_line", Name: "Prev line", Run: (*Editor).prevLine},
		{ID: "text_editor.save", Name: "Save", Run: (*Editor).save},
		{ID: "text_editor.insert_mode", Name: "Edit", Run: (*Editor).enterEdit},
		{ID: "text_editor.go_back", Name: "Back", Run: (*Editor).goBack},
	})
	return e
}

// SetPath re-seeds the buffer from the file at path. A read failure is
// not an error for the caller: the editor substitutes an explanatory
// placeholder and reports itself unreadable.
func (e *Editor) SetPath(path string) {
	e.mode = ModeView
	e.pending = pendingNone
	e.dialog.Close()
	if err := e.buf.Load(path); err != nil {
		e.placeholder = err.Error()
		e.buf.SetContent(nil, path)
		return
	}
	e.placeholder = ""
}

// Readable reports whether the current file produced an editable buffer.
func (e *Editor) Readable() bool { return e.placeholder == "" }

func (e *Editor) Buffer() *buffer.Buffer { return e.buf }
func (e *Editor) Mode() Mode             { return e.mode }
func (e *Editor) ModalOpen() bool        { return e.dialog.IsOpen() }

func (e *Editor) Focus()        { e.focused = true }
func (e *Editor) Unfocus()      { e.focused = false }
func (e *Editor) Focused() bool { return e.focused }

func (e *Editor) SetSize(width, height int) {
	e.width = width
	e.height = height
	e.dialog.SetWidth(width - 4)
}

// Legend returns the command list paired with bound keys.
func (e *Editor) Legend(table *keymap.Table) []keymap.LegendEntry {
	return e.commands.Legend(table)
}

// HandleKey processes one key event. Dispatch order: open modal first,
// then edit-mode keys, then the view-mode command set.
func (e *Editor) HandleKey(table *keymap.Table, msg tea.KeyMsg) bool {
	if e.dialog.IsOpen() {
		e.dialog.Update(msg)
		switch e.dialog.Status() {
		case modal.Confirmed:
			action := e.pending
			e.pending = pendingNone
			e.dialog.Close()
			if action == pendingLeaveEdit {
				// The deferred action is the mode change itself; the
				// buffer keeps its contents (still dirty, still savable).
				e.mode = ModeView
			}
		case modal.Refused:
			e.pending = pendingNone
			e.dialog.Close()
		}
		return true
	}

	if !e.Readable() {
		return false
	}

	if e.mode == ModeEdit {
		return e.handleEditKey(msg)
	}
	return e.commands.Dispatch(table, msg.String(), e)
}

func (e *Editor) handleEditKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "esc":
		e.requestGoBack()
	case "enter":
		e.buf.SplitLine()
	case "backspace":
		e.buf.DeleteBackward()
	case "delete":
		e.buf.DeleteForward()
	case "left":
		e.buf.MoveChar(-1)
	case "right":
		e.buf.MoveChar(+1)
	case "up":
		e.buf.MoveLine(-1)
	case "down":
		e.buf.MoveLine(+1)
	case "tab":
		e.buf.InsertRune('\t')
	case " ":
		// Space arrives as KeySpace, whose String() is " ".
		e.buf.InsertRune(' ')
	default:
		if msg.Type == tea.KeyRunes {
			for _, r := range msg.Runes {
				e.buf.InsertRune(r)
			}
		}
	}
	// Edit mode consumes every key; nothing may leak to the app set.
	return true
}

// requestGoBack gates the Edit -> View transition: a dirty buffer opens a
// confirmation modal and the mode change waits for Confirmed.
func (e *Editor) requestGoBack() {
	if e.buf.Dirty() {
		e.pending = pendingLeaveEdit
		e.dialog.OpenConfirmation("Unsaved changes. Leave edit mode?")
		return
	}
	e.mode = ModeView
}

func (e *Editor) nextChar(string) bool { e.buf.MoveChar(+1); return true }
func (e *Editor) prevChar(string) bool { e.buf.MoveChar(-1); return true }
func (e *Editor) nextLine(string) bool { e.buf.MoveLine(+1); return true }
func (e *Editor) prevLine(string) bool { e.buf.MoveLine(-1); return true }

func (e *Editor) enterEdit(string) bool {
	e.mode = ModeEdit
	return true
}

func (e *Editor) save(string) bool {
	if err := e.buf.Save(); err != nil {
		e.dialog.OpenError(err.Error())
	}
	return true
}

// goBack in view mode is deliberately unconsumed: the event falls through
// to app.go_back, which returns focus to the browser.
func (e *Editor) goBack(string) bool {
	return false
}

func (e *Editor) View() string {
	if e.dialog.IsOpen() {
		return e.frame(e.dialog.View())
	}

	if !e.Readable() {
		msg := ui.DimText.Render(fmt.Sprintf("Cannot display file:\n%s", e.placeholder))
		return e.frame(msg)
	}

	var b strings.Builder
	b.WriteString(ui.TitleStyle.Render(e.title()))
	b.WriteString("\n")

	lines := e.buf.Lines()
	cur := e.buf.Cursor()

	visible := e.height - 3
	if visible < 1 {
		visible = 1
	}
	start := 0
	if cur.Line >= visible {
		start = cur.Line - visible + 1
	}

	for i := start; i < len(lines) && i < start+visible; i++ {
		if i == cur.Line && e.focused {
			b.WriteString(renderCursorLine(lines[i], cur.Char))
		} else {
			b.WriteString(lines[i])
		}
		b.WriteString("\n")
	}

	return e.frame(strings.TrimRight(b.String(), "\n"))
}

func (e *Editor) title() string {
	name := e.buf.Path()
	if e.mode == ModeEdit {
		name += "  [EDIT]"
	}
	if e.buf.Dirty() {
		name += " *"
	}
	return name
}

// renderCursorLine highlights the cursor cell; at end-of-line the cursor
// is shown as a highlighted space.
func renderCursorLine(line string, char int) string {
	runes := []rune(line)
	if char >= len(runes) {
		return line + ui.CursorCell.Render(" ")
	}
	before := string(runes[:char])
	at := string(runes[char])
	after := string(runes[char+1:])
	return before + ui.CursorCell.Render(at) + after
}

func (e *Editor) frame(content string) string {
	border := ui.PanelBorder
	if e.focused {
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
