// Package render: JSON renderer.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/gaurav-prasanna/svgcomp/core"
)

// JSONRenderer produces the catalog as indented JSON.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render marshals the catalog.
func (r *JSONRenderer) Render(c core.Catalog) ([]byte, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
