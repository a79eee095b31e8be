// Package assets: asset file rules.
// Helpers to recognize SVG assets and derive their names.
package assets

import (
	"path/filepath"
	"strings"
)

// Ext is the asset file extension.
const Ext = ".svg"

// IsSVGAsset reports whether path names a visible .svg file. The extension
// must be lowercase, since assets are always opened as <name>.svg.
func IsSVGAsset(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return false
	}
	return filepath.Ext(base) == Ext
}

// AssetName strips the directory and extension from path:
// "src/assets/status-done-icon.svg" → "status-done-icon".
func AssetName(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}
