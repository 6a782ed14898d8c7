package keymap

import (
	"fmt"
	"strings"
)

// Binding maps a key, within an owner namespace, to a command id.
// Command ids are "<owner>.<action>"; the owner is the namespace prefix.
type Binding struct {
	Key     string
	Command string
}

// Table is the process-wide binding table, built once at startup.
type Table struct {
	// byOwner maps owner -> key -> command id.
	byOwner map[string]map[string]string
	// keys maps command id -> bound keys, in registration order.
	keys map[string][]string
}

// NewTable builds a table from bindings. A duplicate (owner, key) pair is
// a construction error, not a silent override.
func NewTable(bindings []Binding) (*Table, error) {
	t := &Table{
		byOwner: make(map[string]map[string]string),
		keys:    make(map[string][]string),
	}

	for _, b := range bindings {
		owner := ownerOf(b.Command)
		if owner == "" {
			return nil, fmt.Errorf("binding %q: command id must be \"<owner>.<action>\"", b.Command)
		}
		m := t.byOwner[owner]
		if m == nil {
			m = make(map[string]string)
			t.byOwner[owner] = m
		}
		if existing, ok := m[b.Key]; ok {
			return nil, fmt.Errorf("key %q already bound to %q in namespace %q", b.Key, existing, owner)
		}
		m[b.Key] = b.Command
		t.keys[b.Command] = append(t.keys[b.Command], b.Key)
	}
	return t, nil
}

// MustTable is NewTable for static binding sets known to be valid.
func MustTable(bindings []Binding) *Table {
	t, err := NewTable(bindings)
	if err != nil {
		panic(err)
	}
	return t
}

// Resolve looks up the command bound to key in the owner's namespace.
func (t *Table) Resolve(owner, key string) (string, bool) {
	m, ok := t.byOwner[owner]
	if !ok {
		return "", false
	}
	cmd, ok := m[key]
	return cmd, ok
}

// KeysFor returns the keys bound to a command, for legend display.
func (t *Table) KeysFor(command string) []string {
	return t.keys[command]
}

func ownerOf(command string) string {
	i := strings.Index(command, ".")
	if i <= 0 {
		return ""
	}
	return command[:i]
}

// DefaultBindings returns the built-in binding set.
func DefaultBindings() []Binding {
	return []Binding{
		{Key: "q", Command: "app.quit"},
		{Key: "esc", Command: "app.go_back"},
		{Key: "enter", Command: "app.open_selected_file"},

		{Key: "up", Command: "explorer.select_previous_file"},
		{Key: "k", Command: "explorer.select_previous_file"},
		{Key: "down", Command: "explorer.select_next_file"},
		{Key: "j", Command: "explorer.select_next_file"},
		{Key: "enter", Command: "explorer.open_selected_file"},
		{Key: "esc", Command: "explorer.go_back"},
		{Key: "d", Command: "explorer.delete_current_file"},
		{Key: "m", Command: "explorer.move_current_file"},
		{Key: "n", Command: "explorer.create_file"},
		{Key: "/", Command: "explorer.filter"},
		{Key: "s", Command: "explorer.sort_entries"},
		{Key: "r", Command: "explorer.recent_files"},

		{Key: "right", Command: "text_editor.next_char"},
		{Key: "l", Command: "text_editor.next_char"},
		{Key: "left", Command: "text_editor.prev_char"},
		{Key: "h", Command: "text_editor.prev_char"},
		{Key: "down", Command: "text_editor.next_line"},
		{Key: "j", Command: "text_editor.next_line"},
		{Key: "up", Command: "text_editor.prev_line"},
		{Key: "k", Command: "text_editor.prev_line"},
		{Key: "s", Command: "text_editor.save"},
		{Key: "i", Command: "text_editor.insert_mode"},
		{Key: "esc", Command: "text_editor.go_back"},
	}
}
