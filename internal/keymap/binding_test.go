package keymap

import (
	"reflect"
	"testing"
)

func TestResolve(t *testing.T) {
	table := MustTable([]Binding{
		{Key: "q", Command: "app.quit"},
		{Key: "j", Command: "explorer.select_next_file"},
		{Key: "j", Command: "text_editor.next_line"},
	})

	tests := []struct {
		owner, key string
		want       string
		ok         bool
	}{
		{"app", "q", "app.quit", true},
		{"explorer", "j", "explorer.select_next_file", true},
		{"text_editor", "j", "text_editor.next_line", true},
		{"explorer", "q", "", false},
		{"unknown", "q", "", false},
	}
	for _, tt := range tests {
		got, ok := table.Resolve(tt.owner, tt.key)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Resolve(%q, %q) = %q, %v; want %q, %v", tt.owner, tt.key, got, ok, tt.want, tt.ok)
		}
	}
}

func TestNewTableRejectsDuplicateKey(t *testing.T) {
	_, err := NewTable([]Binding{
		{Key: "d", Command: "explorer.delete_current_file"},
		{Key: "d", Command: "explorer.filter"},
	})
	if err == nil {
		t.Fatal("expected error for duplicate (owner, key) pair")
	}
}

func TestNewTableAllowsSameKeyAcrossOwners(t *testing.T) {
	_, err := NewTable([]Binding{
		{Key: "esc", Command: "app.go_back"},
		{Key: "esc", Command: "explorer.go_back"},
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestNewTableRejectsMalformedCommand(t *testing.T) {
	for _, id := range []string{"quit", ".quit", ""} {
		if _, err := NewTable([]Binding{{Key: "q", Command: id}}); err == nil {
			t.Errorf("command %q: expected construction error", id)
		}
	}
}

func TestKeysForPreservesOrder(t *testing.T) {
	table := MustTable([]Binding{
		{Key: "up", Command: "explorer.select_previous_file"},
		{Key: "k", Command: "explorer.select_previous_file"},
	})
	got := table.KeysFor("explorer.select_previous_file")
	if !reflect.DeepEqual(got, []string{"up", "k"}) {
		t.Errorf("KeysFor = %v, want [up k]", got)
	}
}

func TestDefaultBindingsAreValid(t *testing.T) {
	if _, err := NewTable(DefaultBindings()); err != nil {
		t.Fatal(err)
	}
}
