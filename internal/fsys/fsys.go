package fsys

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode/utf8"
)

// Entry represents a file or directory in a listing.
type Entry struct {
	Name    string
	Path    string
	IsDir   bool
	Size    int64
	ModTime time.Time
}

// DirectoryReadError reports a failure to list a directory.
type DirectoryReadError struct {
	Dir string
	Err error
}

func (e *DirectoryReadError) Error() string {
	return fmt.Sprintf("read directory %s: %v", e.Dir, e.Err)
}

func (e *DirectoryReadError) Unwrap() error { return e.Err }

// FileReadError reports a failure to read a file as text, including
// content that is not valid UTF-8.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("read file %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error { return e.Err }

// FileWriteError reports a failed save.
type FileWriteError struct {
	Path string
	Err  error
}

func (e *FileWriteError) Error() string {
	return fmt.Sprintf("write file %s: %v", e.Path, e.Err)
}

func (e *FileWriteError) Unwrap() error { return e.Err }

// FileMutationError reports a failed create, delete or rename.
type FileMutationError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileMutationError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileMutationError) Unwrap() error { return e.Err }

var errBinary = fmt.Errorf("content is not text")

// ListDir returns the entries of dir sorted by name.
func ListDir(dir string) ([]Entry, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, &DirectoryReadError{Dir: dir, Err: err}
	}

	entries := make([]Entry, 0, len(dirents))
	for _, d := range dirents {
		e := Entry{
			Name:  d.Name(),
			Path:  filepath.Join(dir, d.Name()),
			IsDir: d.IsDir(),
		}
		if info, err := d.Info(); err == nil {
			e.Size = info.Size()
			e.ModTime = info.ModTime()
		}
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries, nil
}

// ReadText reads path and decodes it as UTF-8 text, split into lines.
// Content with NUL bytes or invalid UTF-8 yields a FileReadError.
func ReadText(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileReadError{Path: path, Err: err}
	}
	if bytes.IndexByte(data, 0) >= 0 || !utf8.Valid(data) {
		return nil, &FileReadError{Path: path, Err: errBinary}
	}
	return strings.Split(string(data), "\n"), nil
}

// WriteText joins lines with newlines and writes them to path.
func WriteText(path string, lines []string) error {
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0644); err != nil {
		return &FileWriteError{Path: path, Err: err}
	}
	return nil
}

// Create makes a new empty file, or a directory when name has a trailing
// separator. Fails if the target already exists.
func Create(dir, name string) error {
	target := filepath.Join(dir, name)
	if _, err := os.Lstat(target); err == nil {
		return &FileMutationError{Op: "create", Path: target, Err: os.ErrExist}
	}

	if strings.HasSuffix(name, "/") {
		if err := os.MkdirAll(target, 0755); err != nil {
			return &FileMutationError{Op: "create", Path: target, Err: err}
		}
		return nil
	}

	f, err := os.OpenFile(target, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return &FileMutationError{Op: "create", Path: target, Err: err}
	}
	return f.Close()
}

// Delete removes a file, or a directory recursively.
func Delete(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return &FileMutationError{Op: "delete", Path: path, Err: err}
	}

	if info.IsDir() {
		err = os.RemoveAll(path)
	} else {
		err = os.Remove(path)
	}
	if err != nil {
		return &FileMutationError{Op: "delete", Path: path, Err: err}
	}
	return nil
}

// Move renames from to to.
func Move(from, to string) error {
	if err := os.Rename(from, to); err != nil {
		return &FileMutationError{Op: "move", Path: from, Err: err}
	}
	return nil
}
