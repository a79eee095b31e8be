// Package assets provides SVG asset discovery for batch builds, watch mode
// and the catalog.
package assets

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Discover lists the .svg files under dir, sorted by path. Without
// recursive only dir itself is read. Hidden directories are skipped.
func Discover(dir string, recursive bool) ([]string, error) {
	if !recursive {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("reading assets dir: %w", err)
		}
		var out []string
		for _, e := range entries {
			if !e.IsDir() && IsSVGAsset(e.Name()) {
				out = append(out, filepath.Join(dir, e.Name()))
			}
		}
		slices.Sort(out)
		return out, nil
	}

	var out []string
	err := filepath.WalkDir(dir, func(path string, de fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if de.IsDir() {
			if path != dir && strings.HasPrefix(de.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if IsSVGAsset(path) {
			out = append(out, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking assets dir: %w", err)
	}
	slices.Sort(out)
	return out, nil
}
