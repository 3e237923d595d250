package storage

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"single line", "abc", []string{"abc"}},
		{"two lines", "a\nb", []string{"a", "b"}},
		{"trailing newline dropped", "a\nb\n", []string{"a", "b"}},
		{"windows endings normalized", "a\r\nb\r\n", []string{"a", "b"}},
		{"blank interior lines kept", "a\n\nb", []string{"a", "", "b"}},
		{"lone newline is one empty line", "\n", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, SplitLines(tt.text)); diff != "" {
				t.Errorf("SplitLines(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))

	if err == nil {
		t.Fatal("Load of missing file returned nil error")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error %v does not wrap fs.ErrNotExist", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")

	if err := Save(path, "a\nb"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	lines, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, lines); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")

	if err := Save(path, "old content"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := Save(path, "new"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "new" {
		t.Errorf("content = %q, want %q", data, "new")
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")

	if err := Save(path, "content"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "doc.txt" {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name()
		}
		t.Errorf("directory contents = %v, want only doc.txt", names)
	}
}

func TestSaveToMissingDirectoryFails(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "missing", "doc.txt"), "x")

	if err == nil {
		t.Fatal("Save into missing directory returned nil error")
	}
}

func TestDiskAdapter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	var d Disk

	if err := d.Save(path, "via adapter"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	lines, err := d.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff([]string{"via adapter"}, lines); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}
