package buffer

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadResetsCursorAndDirty(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "note.txt")
	os.WriteFile(path, []byte("alpha\nbeta"), 0644)

	b := New()
	b.InsertRune('x')
	b.MoveChar(+1)

	if err := b.Load(path); err != nil {
		t.Fatal(err)
	}
	if got := b.Lines(); !reflect.DeepEqual(got, []string{"alpha", "beta"}) {
		t.Errorf("lines = %v", got)
	}
	if b.Cursor() != (Cursor{}) {
		t.Errorf("cursor = %+v, want origin", b.Cursor())
	}
	if b.Dirty() {
		t.Error("freshly loaded buffer should not be dirty")
	}
}

func TestLoadFailureKeepsBuffer(t *testing.T) {
	b := New()
	b.SetContent([]string{"keep"}, "keep.txt")

	if err := b.Load("/no/such/file"); err == nil {
		t.Fatal("expected error")
	}
	if got := b.Lines(); !reflect.DeepEqual(got, []string{"keep"}) {
		t.Errorf("buffer changed on failed load: %v", got)
	}
	if b.Path() != "keep.txt" {
		t.Errorf("path changed on failed load: %q", b.Path())
	}
}

func TestMoveCharClamps(t *testing.T) {
	b := New()
	b.SetContent([]string{"ab"}, "")

	b.MoveChar(-5)
	if b.Cursor().Char != 0 {
		t.Errorf("char = %d, want 0", b.Cursor().Char)
	}
	b.MoveChar(+10)
	// Char may sit one past the last character.
	if b.Cursor().Char != 2 {
		t.Errorf("char = %d, want 2", b.Cursor().Char)
	}
	if b.Dirty() {
		t.Error("movement must not dirty the buffer")
	}
}

func TestMoveLineClampsChar(t *testing.T) {
	b := New()
	b.SetContent([]string{"longer line", "ab"}, "")
	b.MoveChar(+8)

	b.MoveLine(+1)
	if got := b.Cursor(); got != (Cursor{Line: 1, Char: 2}) {
		t.Errorf("cursor = %+v, want {1 2}", got)
	}

	b.MoveLine(+5)
	if b.Cursor().Line != 1 {
		t.Errorf("line = %d, want 1", b.Cursor().Line)
	}
	b.MoveLine(-5)
	if b.Cursor().Line != 0 {
		t.Errorf("line = %d, want 0", b.Cursor().Line)
	}
}

func TestInsertRune(t *testing.T) {
	b := New()
	b.SetContent([]string{"ac"}, "")
	b.MoveChar(+1)

	b.InsertRune('b')
	if got := b.Lines()[0]; got != "abc" {
		t.Errorf("line = %q, want %q", got, "abc")
	}
	if b.Cursor().Char != 2 {
		t.Errorf("char = %d, want 2", b.Cursor().Char)
	}
	if !b.Dirty() {
		t.Error("insert must dirty the buffer")
	}
}

func TestDeleteBackwardMergesLines(t *testing.T) {
	b := New()
	b.SetContent([]string{"ab", "cd"}, "")
	b.MoveLine(+1)

	b.DeleteBackward()
	if got := b.Lines(); !reflect.DeepEqual(got, []string{"abcd"}) {
		t.Errorf("lines = %v, want [abcd]", got)
	}
	if got := b.Cursor(); got != (Cursor{Line: 0, Char: 2}) {
		t.Errorf("cursor = %+v, want {0 2}", got)
	}
}

func TestDeleteBackwardAtOriginIsNoop(t *testing.T) {
	b := New()
	b.SetContent([]string{"ab"}, "")

	b.DeleteBackward()
	if got := b.Lines()[0]; got != "ab" {
		t.Errorf("line = %q, want %q", got, "ab")
	}
	if b.Dirty() {
		t.Error("no-op delete must not dirty the buffer")
	}
}

func TestDeleteForwardMergesNextLine(t *testing.T) {
	b := New()
	b.SetContent([]string{"ab", "cd"}, "")
	b.MoveChar(+2)

	b.DeleteForward()
	if got := b.Lines(); !reflect.DeepEqual(got, []string{"abcd"}) {
		t.Errorf("lines = %v, want [abcd]", got)
	}
	// The cursor stays where it was.
	if got := b.Cursor(); got != (Cursor{Line: 0, Char: 2}) {
		t.Errorf("cursor = %+v, want {0 2}", got)
	}
}

func TestDeleteForwardAtBufferEndIsNoop(t *testing.T) {
	b := New()
	b.SetContent([]string{"ab"}, "")
	b.MoveChar(+2)

	b.DeleteForward()
	if got := b.Lines()[0]; got != "ab" {
		t.Errorf("line = %q, want %q", got, "ab")
	}
	if b.Dirty() {
		t.Error("no-op delete must not dirty the buffer")
	}
}

func TestSplitLine(t *testing.T) {
	b := New()
	b.SetContent([]string{"abcd"}, "")
	b.MoveChar(+2)

	b.SplitLine()
	if got := b.Lines(); !reflect.DeepEqual(got, []string{"ab", "cd"}) {
		t.Errorf("lines = %v, want [ab cd]", got)
	}
	if got := b.Cursor(); got != (Cursor{Line: 1, Char: 0}) {
		t.Errorf("cursor = %+v, want {1 0}", got)
	}
}

func TestSplitThenBackspaceRoundTrips(t *testing.T) {
	b := New()
	b.SetContent([]string{"hello world"}, "")
	b.MoveChar(+5)

	b.SplitLine()
	b.DeleteBackward()
	if got := b.Lines(); !reflect.DeepEqual(got, []string{"hello world"}) {
		t.Errorf("lines = %v, want [hello world]", got)
	}
	if got := b.Cursor(); got != (Cursor{Line: 0, Char: 5}) {
		t.Errorf("cursor = %+v, want {0 5}", got)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "note.txt")
	os.WriteFile(path, []byte("one\ntwo"), 0644)

	b := New()
	if err := b.Load(path); err != nil {
		t.Fatal(err)
	}
	b.InsertRune('x')
	if err := b.Save(); err != nil {
		t.Fatal(err)
	}
	if b.Dirty() {
		t.Error("saved buffer should be clean")
	}

	data, _ := os.ReadFile(path)
	if string(data) != "xone\ntwo" {
		t.Errorf("file = %q", data)
	}
}

func TestSaveFailureKeepsDirty(t *testing.T) {
	b := New()
	b.SetContent([]string{"text"}, filepath.Join(t.TempDir(), "missing", "note.txt"))
	b.InsertRune('x')

	if err := b.Save(); err == nil {
		t.Fatal("expected error")
	}
	if !b.Dirty() {
		t.Error("failed save must leave the buffer dirty")
	}
}

func TestUnicodeRuneAddressing(t *testing.T) {
	b := New()
	b.SetContent([]string{"héllo"}, "")
	b.MoveChar(+2)

	b.DeleteBackward()
	if got := b.Lines()[0]; got != "hllo" {
		t.Errorf("line = %q, want %q", got, "hllo")
	}
}
