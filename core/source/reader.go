// Package source implements the AssetReader interface.
// It loads SVG asset files from the configured assets directory.
package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gaurav-prasanna/svgcomp/core"
)

const svgExt = ".svg"

// FileReader reads assets from a directory on disk.
type FileReader struct {
	Dir string
}

// New creates a FileReader rooted at dir.
func New(dir string) *FileReader {
	return &FileReader{Dir: dir}
}

// Read loads the named asset. The ".svg" extension is optional.
func (r *FileReader) Read(name string) (*core.Asset, error) {
	base := strings.TrimSuffix(filepath.Base(name), svgExt)
	if base == "" || base == "." {
		return nil, fmt.Errorf("invalid asset name %q", name)
	}
	path, err := filepath.Abs(filepath.Join(r.Dir, base+svgExt))
	if err != nil {
		return nil, fmt.Errorf("resolving asset path: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading asset %s: %w", path, err)
	}

	return &core.Asset{
		Name: base,
		Path: path,
		Text: string(data),
	}, nil
}
