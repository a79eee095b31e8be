package output

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// ExportLine returns the index line exporting a component.
func ExportLine(componentName string) string {
	return fmt.Sprintf("export * from \"./%s\";", componentName)
}

// AddExportLine makes sure line is present in the index file at path.
// A missing file is treated as empty. When the line is added, the file's
// non-blank lines are sorted and written back with a trailing newline.
// It reports whether the file was modified.
func AddExportLine(path, line string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("reading index %s: %w", path, err)
	}

	lines := nonBlankLines(string(data))
	if slices.Contains(lines, line) {
		return false, nil
	}
	lines = append(lines, line)
	slices.Sort(lines)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, fmt.Errorf("creating index directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644); err != nil {
		return false, fmt.Errorf("writing index %s: %w", path, err)
	}
	return true, nil
}

func nonBlankLines(text string) []string {
	var out []string
	for _, l := range strings.Split(text, "\n") {
		l = strings.TrimRight(l, "\r")
		if strings.TrimSpace(l) == "" {
			continue
		}
		out = append(out, l)
	}
	return out
}
