// Package convert turns a whole SVG document into indented JSX markup.
// Nesting depth is inferred purely from element types: each opening tag
// indents the lines that follow it, each closing tag undoes that.
package convert

import (
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/svgcomp/core"
	"github.com/gaurav-prasanna/svgcomp/core/reformat"
	"github.com/gaurav-prasanna/svgcomp/core/scan"
)

// RootMarker is the prefix of the line where conversion starts. Everything
// before it (XML declarations, comments, doctype) is discarded.
const RootMarker = "<svg "

// DocumentConverter implements core.Converter.
type DocumentConverter struct{}

// New creates a DocumentConverter.
func New() *DocumentConverter {
	return &DocumentConverter{}
}

// Convert implements core.Converter by calling Document.
func (c *DocumentConverter) Convert(source string, baseIndent int, classNameVariable string) (core.Conversion, error) {
	return Document(source, baseIndent, classNameVariable)
}

// Document converts every line from the root <svg element onward.
//
// baseIndent is the column the output will be spliced in at. The root
// element line is left unindented, and receives classNameVariable (when
// non-empty) as its className expression. Only the root element's style
// flags are reported. A line that cannot be reformatted aborts the whole
// conversion; no partial code is returned.
func Document(source string, baseIndent int, classNameVariable string) (core.Conversion, error) {
	return document(source, baseIndent, classNameVariable, reformat.Line)
}

// lineFunc renders one scanned tag; reformat.Line in production.
type lineFunc func(tag core.Tag, indentSpaces int, indentFirstLine bool, override *string) (core.Line, error)

func document(source string, baseIndent int, classNameVariable string, render lineFunc) (core.Conversion, error) {
	var (
		result  core.Conversion
		out     []string
		started bool
		lineNo  int
		level   int
	)

	var rootOverride *string
	if classNameVariable != "" {
		rootOverride = &classNameVariable
	}

	for i, raw := range strings.Split(source, "\n") {
		if !started {
			if !strings.HasPrefix(raw, RootMarker) {
				continue
			}
			started = true
		}
		lineNo++
		first := lineNo == 1

		override := rootOverride
		if !first {
			override = nil
		}

		tag := scan.Scan(strings.TrimSpace(raw))
		line, err := render(tag, baseIndent+level*reformat.IndentWidth, !first, override)
		if err != nil {
			return core.Conversion{}, fmt.Errorf("line %d: %w", i+1, err)
		}

		if first {
			result.AddClassNameFill = line.Style.AddFill
			result.AddClassNameStroke = line.Style.AddStroke
		}

		switch line.Type {
		case core.ElementOpening:
			level++
		case core.ElementClosing:
			level--
		}

		if line.Text != "" {
			out = append(out, line.Text)
		}
	}

	result.Code = strings.Join(out, "\n")
	return result, nil
}
