// Package storage loads and saves documents on the local filesystem.
//
// Load reports a missing file by wrapping fs.ErrNotExist so the editor can
// treat it as "new named document" rather than a fatal error. Save writes
// through a temporary file and renames it into place, so a concurrent
// reader never observes a partially written document.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Load reads the file at path and splits it into lines. Windows line
// endings are normalized and a single trailing newline does not produce a
// spurious empty last line. A missing or unreadable file returns the
// underlying error for the caller to classify with errors.Is.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return SplitLines(string(data)), nil
}

// SplitLines breaks document text into lines the way Load does. Empty text
// yields no lines.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// Save writes text to path atomically: the content lands in a temporary
// file in the same directory, which is then renamed over path.
func Save(path, text string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("saving %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("saving %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("saving %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

// Disk adapts the package-level functions to the editor's storage
// interface.
type Disk struct{}

// Load implements the editor storage contract.
func (Disk) Load(path string) ([]string, error) {
	return Load(path)
}

// Save implements the editor storage contract.
func (Disk) Save(path, text string) error {
	return Save(path, text)
}
