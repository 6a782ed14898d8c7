package keymap

import "testing"

type counter struct {
	ups, downs int
}

func testSet() Set[counter] {
	return NewSet("counter", []Command[counter]{
		{ID: "counter.up", Name: "Up", Run: func(c *counter, _ string) bool {
			c.ups++
			return true
		}},
		{ID: "counter.down", Name: "Down", Run: func(c *counter, _ string) bool {
			c.downs++
			return false
		}},
	})
}

func TestDispatch(t *testing.T) {
	table := MustTable([]Binding{
		{Key: "k", Command: "counter.up"},
		{Key: "j", Command: "counter.down"},
		{Key: "x", Command: "counter.unregistered"},
	})
	set := testSet()

	var c counter
	if !set.Dispatch(table, "k", &c) {
		t.Error("bound command returning true should consume the key")
	}
	if set.Dispatch(table, "j", &c) {
		t.Error("command returning false should leave the key unconsumed")
	}
	if c.ups != 1 || c.downs != 1 {
		t.Errorf("counter = %+v", c)
	}

	if set.Dispatch(table, "z", &c) {
		t.Error("unbound key should be unhandled")
	}
	if set.Dispatch(table, "x", &c) {
		t.Error("binding to an unregistered command should be unhandled")
	}
	if c.ups != 1 || c.downs != 1 {
		t.Errorf("unhandled keys must not run commands: %+v", c)
	}
}

func TestLegend(t *testing.T) {
	table := MustTable([]Binding{
		{Key: "k", Command: "counter.up"},
		{Key: "up", Command: "counter.up"},
	})
	entries := testSet().Legend(table)
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].Name != "Up" || len(entries[0].Keys) != 2 {
		t.Errorf("entry = %+v", entries[0])
	}
	// Unbound commands still appear, with no keys.
	if entries[1].Name != "Down" || len(entries[1].Keys) != 0 {
		t.Errorf("entry = %+v", entries[1])
	}
}
