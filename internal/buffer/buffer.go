package buffer

import (
	"github.com/pkaramon/fex/internal/fsys"
)

// Cursor addresses a position in the buffer. Char may equal the line
// length, meaning "after the last character".
type Cursor struct {
	Line int
	Char int
}

// Buffer is a line-addressed text store bound to a file path. All
// mutation goes through its methods; Char is counted in runes.
type Buffer struct {
	lines  []string
	cursor Cursor
	dirty  bool
	path   string
}

// New returns an empty buffer with a single empty line.
func New() *Buffer {
	return &Buffer{lines: []string{""}}
}

// Load replaces the buffer contents with the decoded text of path, resets
// the cursor to the origin and clears the dirty flag. On a read failure
// the buffer is left untouched.
func (b *Buffer) Load(path string) error {
	lines, err := fsys.ReadText(path)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	b.lines = lines
	b.cursor = Cursor{}
	b.dirty = false
	b.path = path
	return nil
}

// SetContent seeds the buffer directly (used in tests and for new files).
func (b *Buffer) SetContent(lines []string, path string) {
	if len(lines) == 0 {
		lines = []string{""}
	}
	b.lines = append([]string(nil), lines...)
	b.cursor = Cursor{}
	b.dirty = false
	b.path = path
}

func (b *Buffer) Lines() []string { return b.lines }
func (b *Buffer) Cursor() Cursor  { return b.cursor }
func (b *Buffer) Dirty() bool     { return b.dirty }
func (b *Buffer) Path() string    { return b.path }

func (b *Buffer) line() []rune {
	return []rune(b.lines[b.cursor.Line])
}

// MoveChar moves the cursor left or right within the current line,
// clamping at the line boundaries. It never wraps to adjacent lines.
func (b *Buffer) MoveChar(delta int) {
	c := b.cursor.Char + delta
	if c < 0 {
		c = 0
	}
	if n := len(b.line()); c > n {
		c = n
	}
	b.cursor.Char = c
}

// MoveLine moves the cursor up or down, clamping the line index to the
// buffer and the char index to the new line's length.
func (b *Buffer) MoveLine(delta int) {
	l := b.cursor.Line + delta
	if l < 0 {
		l = 0
	}
	if l > len(b.lines)-1 {
		l = len(b.lines) - 1
	}
	b.cursor.Line = l
	if n := len(b.line()); b.cursor.Char > n {
		b.cursor.Char = n
	}
}

// InsertRune inserts r at the cursor, advances past it and marks the
// buffer dirty.
func (b *Buffer) InsertRune(r rune) {
	line := b.line()
	c := b.cursor.Char
	out := make([]rune, 0, len(line)+1)
	out = append(out, line[:c]...)
	out = append(out, r)
	out = append(out, line[c:]...)
	b.lines[b.cursor.Line] = string(out)
	b.cursor.Char++
	b.dirty = true
}

// DeleteBackward removes the character before the cursor. At the start of
// a line it merges the current line into the end of the previous one,
// placing the cursor at the previous line's former end.
func (b *Buffer) DeleteBackward() {
	c := b.cursor.Char
	if c > 0 {
		line := b.line()
		b.lines[b.cursor.Line] = string(line[:c-1]) + string(line[c:])
		b.cursor.Char--
		b.dirty = true
		return
	}

	l := b.cursor.Line
	if l == 0 {
		return
	}
	prev := b.lines[l-1]
	b.cursor = Cursor{Line: l - 1, Char: len([]rune(prev))}
	b.lines[l-1] = prev + b.lines[l]
	b.lines = append(b.lines[:l], b.lines[l+1:]...)
	b.dirty = true
}

// DeleteForward removes the character at the cursor. Past the end of a
// line it merges the next line into the current one; the cursor does not
// move.
func (b *Buffer) DeleteForward() {
	line := b.line()
	c := b.cursor.Char
	if c < len(line) {
		b.lines[b.cursor.Line] = string(line[:c]) + string(line[c+1:])
		b.dirty = true
		return
	}

	l := b.cursor.Line
	if l >= len(b.lines)-1 {
		return
	}
	b.lines[l] += b.lines[l+1]
	b.lines = append(b.lines[:l+1], b.lines[l+2:]...)
	b.dirty = true
}

// SplitLine splits the current line at the cursor; the cursor moves to
// the start of the new second line.
func (b *Buffer) SplitLine() {
	line := b.line()
	c := b.cursor.Char
	head, tail := string(line[:c]), string(line[c:])

	b.lines[b.cursor.Line] = head
	b.lines = append(b.lines, "")
	copy(b.lines[b.cursor.Line+2:], b.lines[b.cursor.Line+1:])
	b.lines[b.cursor.Line+1] = tail

	b.cursor = Cursor{Line: b.cursor.Line + 1, Char: 0}
	b.dirty = true
}

// Save writes the buffer to its bound path and clears the dirty flag.
// On failure the buffer stays dirty so the user can retry.
func (b *Buffer) Save() error {
	if err := fsys.WriteText(b.path, b.lines); err != nil {
		return err
	}
	b.dirty = false
	return nil
}
