package fsys

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestListDirSortedByName(t *testing.T) {
	tmp := t.TempDir()
	os.WriteFile(filepath.Join(tmp, "b.txt"), []byte("b"), 0644)
	os.WriteFile(filepath.Join(tmp, "a.txt"), []byte("a"), 0644)
	os.Mkdir(filepath.Join(tmp, "sub"), 0755)

	entries, err := ListDir(tmp)
	if err != nil {
		t.Fatal(err)
	}

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	if !reflect.DeepEqual(names, []string{"a.txt", "b.txt", "sub"}) {
		t.Errorf("names = %v", names)
	}
	if !entries[2].IsDir {
		t.Error("sub should be a directory")
	}
	if entries[0].Path != filepath.Join(tmp, "a.txt") {
		t.Errorf("path = %q", entries[0].Path)
	}
}

func TestListDirMissing(t *testing.T) {
	_, err := ListDir("/no/such/dir")
	var dre *DirectoryReadError
	if !errors.As(err, &dre) {
		t.Fatalf("err = %v, want DirectoryReadError", err)
	}
}

func TestReadTextSplitsLines(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "note.txt")
	os.WriteFile(path, []byte("one\ntwo\n"), 0644)

	lines, err := ReadText(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(lines, []string{"one", "two", ""}) {
		t.Errorf("lines = %v", lines)
	}
}

func TestReadTextRejectsBinary(t *testing.T) {
	tmp := t.TempDir()

	tests := []struct {
		name string
		data []byte
	}{
		{"nul-bytes", []byte{'a', 0, 'b'}},
		{"invalid-utf8", []byte{0xff, 0xfe, 0xfd}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(tmp, tt.name)
			os.WriteFile(path, tt.data, 0644)

			_, err := ReadText(path)
			var fre *FileReadError
			if !errors.As(err, &fre) {
				t.Fatalf("err = %v, want FileReadError", err)
			}
		})
	}
}

func TestWriteTextRoundTrip(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "out.txt")

	if err := WriteText(path, []string{"one", "two"}); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "one\ntwo" {
		t.Errorf("file = %q", data)
	}
}

func TestCreateFile(t *testing.T) {
	tmp := t.TempDir()

	if err := Create(tmp, "new.txt"); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(tmp, "new.txt")); err != nil {
		t.Fatal(err)
	}

	// A second create of the same name must surface os.ErrExist.
	err := Create(tmp, "new.txt")
	if !errors.Is(err, os.ErrExist) {
		t.Errorf("err = %v, want os.ErrExist", err)
	}
}

func TestCreateDirectory(t *testing.T) {
	tmp := t.TempDir()

	if err := Create(tmp, "nested/dir/"); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(filepath.Join(tmp, "nested", "dir"))
	if err != nil {
		t.Fatal(err)
	}
	if !info.IsDir() {
		t.Error("trailing slash should create a directory")
	}
}

func TestDeleteRecursive(t *testing.T) {
	tmp := t.TempDir()
	sub := filepath.Join(tmp, "sub")
	os.MkdirAll(sub, 0755)
	os.WriteFile(filepath.Join(sub, "a.txt"), []byte("a"), 0644)

	if err := Delete(sub); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(sub); !os.IsNotExist(err) {
		t.Error("directory should be gone")
	}
}

func TestMove(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "a.txt")
	dst := filepath.Join(tmp, "b.txt")
	os.WriteFile(src, []byte("payload"), 0644)

	if err := Move(src, dst); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "payload" {
		t.Errorf("moved content = %q", data)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Error("source should be gone")
	}
}

func TestMoveMissingSource(t *testing.T) {
	tmp := t.TempDir()
	err := Move(filepath.Join(tmp, "ghost"), filepath.Join(tmp, "dst"))
	var fme *FileMutationError
	if !errors.As(err, &fme) {
		t.Fatalf("err = %v, want FileMutationError", err)
	}
}
