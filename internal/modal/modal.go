package modal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pkaramon/fex/internal/ui"
)

// Variant selects the dialog's input contract.
type Variant int

const (
	Confirmation Variant = iota
	Question
	Options
	Info
	Error
)

// Status is the dialog's resolution state. The owner reads it after every
// key it routes here, acts on Confirmed or Refused, then calls Close.
type Status int

const (
	Waiting Status = iota
	Confirmed
	Refused
)

// Modal is a single confirmation/question/selection dialog. Opening a new
// one while another is open replaces it wholesale; there is no nesting.
type Modal struct {
	open     bool
	message  string
	variant  Variant
	status   Status
	input    textinput.Model
	options  []string
	selected int
	width    int
}

func New() Modal {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 40
	return Modal{input: ti}
}

func (m *Modal) OpenConfirmation(message string) {
	m.reset(Confirmation, message)
}

// OpenQuestion shows an editable answer line, pre-filled with initial.
func (m *Modal) OpenQuestion(message, initial string) {
	m.reset(Question, message)
	m.input.SetValue(initial)
	m.input.CursorEnd()
	m.input.Focus()
}

// OpenOptions shows a numbered choice list; digits select and confirm.
func (m *Modal) OpenOptions(message string, choices []string) {
	m.reset(Options, message)
	m.options = choices
	m.selected = 0
}

func (m *Modal) OpenInfo(message string)  { m.reset(Info, message) }
func (m *Modal) OpenError(message string) { m.reset(Error, message) }

func (m *Modal) reset(v Variant, message string) {
	m.open = true
	m.variant = v
	m.message = message
	m.status = Waiting
	m.options = nil
	m.selected = 0
	m.input.SetValue("")
	m.input.Blur()
}

func (m *Modal) Close() {
	m.open = false
	m.status = Waiting
	m.input.Blur()
}

func (m *Modal) IsOpen() bool     { return m.open }
func (m *Modal) Status() Status   { return m.status }
func (m *Modal) Variant() Variant { return m.variant }
func (m *Modal) Message() string  { return m.message }

// Answer returns the Question variant's current payload.
func (m *Modal) Answer() string { return m.input.Value() }

// Selected returns the Options variant's confirmed index.
func (m *Modal) Selected() int { return m.selected }

func (m *Modal) SetWidth(w int) { m.width = w }

// Update routes one key event into the open dialog. While a modal is open
// it owns input exclusively, so the event is always consumed.
func (m *Modal) Update(msg tea.KeyMsg) {
	if !m.open {
		return
	}

	key := msg.String()
	switch m.variant {
	case Confirmation:
		switch key {
		case "y":
			m.status = Confirmed
		case "n":
			m.status = Refused
		}

	case Info, Error:
		// Dismissal only; there is no "n" path.
		if key == "y" {
			m.status = Confirmed
		}

	case Question:
		switch key {
		case "enter":
			m.status = Confirmed
		case "esc":
			m.status = Refused
		default:
			m.input, _ = m.input.Update(msg)
		}

	case Options:
		if key == "esc" {
			m.status = Refused
			return
		}
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			idx := int(key[0] - '1')
			if idx < len(m.options) {
				m.selected = idx
				m.status = Confirmed
			}
			// Out-of-range digits are ignored.
		}
	}
}

func (m *Modal) View() string {
	if !m.open {
		return ""
	}

	width := m.width
	if width == 0 {
		width = 60
	}
	inner := width - 6
	if inner < 20 {
		inner = 20
	}

	border := ui.PanelBorder
	if m.variant == Error {
		border = ui.ErrorBorder
	}
	box := border.Padding(0, 1).Width(inner)

	var lines []string
	lines = append(lines, ui.TitleStyle.Render(m.title()))
	lines = append(lines, m.message)

	switch m.variant {
	case Question:
		lines = append(lines, m.input.View())
	case Options:
		for i, opt := range m.options {
			lines = append(lines, fmt.Sprintf("[%d] %s", i+1, opt))
		}
	}

	lines = append(lines, "")
	lines = append(lines, ui.DimText.Render(m.hint()))

	return box.Render(strings.Join(lines, "\n"))
}

func (m *Modal) title() string {
	switch m.variant {
	case Confirmation:
		return "Confirm"
	case Question:
		return "Input"
	case Options:
		return "Select"
	case Error:
		return "Error"
	default:
		return "Info"
	}
}

func (m *Modal) hint() string {
	switch m.variant {
	case Confirmation:
		return "Yes [y]  No [n]"
	case Question:
		return "Ok [Enter]  Cancel [Esc]"
	case Options:
		return "Cancel [Esc]"
	default:
		return "Ok [y]"
	}
}
