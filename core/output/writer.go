// Package output writes generated component files and maintains the
// components index. Files are only rewritten when their content changes,
// so unchanged components keep their timestamps and stay out of diffs.
package output

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Status reports what WriteComponent did.
type Status int

const (
	Unchanged Status = iota
	Created
	Updated
)

func (s Status) String() string {
	switch s {
	case Created:
		return "created"
	case Updated:
		return "updated"
	default:
		return "unchanged"
	}
}

// Writer writes component files into a directory.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// Path returns where the component with the given name is written.
func (w *Writer) Path(name, ext string) string {
	return filepath.Join(w.OutputDir, name+ext)
}

// WriteComponent writes data to <OutputDir>/<name><ext> unless the file
// already holds exactly that content.
func (w *Writer) WriteComponent(name, ext string, data []byte) (string, Status, error) {
	path := w.Path(name, ext)

	status := Created
	old, err := os.ReadFile(path)
	switch {
	case err == nil:
		if bytes.Equal(old, data) {
			return path, Unchanged, nil
		}
		status = Updated
	case !errors.Is(err, fs.ErrNotExist):
		return "", Unchanged, fmt.Errorf("reading existing file %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", Unchanged, fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, status, nil
}
