// Package render: Markdown renderer.
package render

import (
	"fmt"

	"github.com/gaurav-prasanna/svgcomp/core"
)

// MarkdownRenderer writes the catalog as Markdown by normalizing its HTML form.
type MarkdownRenderer struct {
	normalizer core.Normalizer
}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer(normalizer core.Normalizer) *MarkdownRenderer {
	return &MarkdownRenderer{normalizer: normalizer}
}

// Render returns the catalog as Markdown.
func (r *MarkdownRenderer) Render(c core.Catalog) ([]byte, error) {
	md, err := r.normalizer.Normalize(CatalogHTML(c))
	if err != nil {
		return nil, fmt.Errorf("normalizing catalog: %w", err)
	}
	return []byte(md), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}
