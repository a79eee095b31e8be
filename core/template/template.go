// Package template fills a component source template with generated markup.
//
// Templates mark substitution points with literal tokens. The SVG token must
// sit alone on exactly one line; its column becomes the indentation of the
// generated markup.
package template

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gaurav-prasanna/svgcomp/core"
)

// Placeholder tokens recognized in templates.
const (
	TokenSVG       = "<<-SVG->>"
	TokenName      = "<<-NAME->>"
	TokenClassName = "<<-CLASSNAME->>"
	TokenClassList = "<<-CLASSLIST->>"
)

const fileURLPrefix = "file://"

var (
	ErrPlaceholderNotFound  = errors.New("placeholder not found")
	ErrAmbiguousPlaceholder = errors.New("placeholder matched more than one line")
)

//go:embed svg-component.tsx.template
var defaultTemplate string

// Default returns the built-in React component template.
func Default() string {
	return defaultTemplate
}

// Load reads the template at path. An empty path selects the built-in
// template. A "file://" URL prefix is stripped and the rest is treated as a
// slash-separated path.
func Load(path string) (string, error) {
	if path == "" {
		return defaultTemplate, nil
	}
	path = filepath.FromSlash(strings.TrimPrefix(path, fileURLPrefix))
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading template: %w", err)
	}
	return string(data), nil
}

// Indentation returns the column of token on the single template line that
// contains it.
func Indentation(tpl, token string) (int, error) {
	col := -1
	matches := 0
	for _, line := range strings.Split(tpl, "\n") {
		if idx := strings.Index(line, token); idx >= 0 {
			matches++
			col = idx
		}
	}
	switch matches {
	case 0:
		return 0, fmt.Errorf("%w: %s", ErrPlaceholderNotFound, token)
	case 1:
		return col, nil
	default:
		return 0, fmt.Errorf("%w: %s (%d lines)", ErrAmbiguousPlaceholder, token, matches)
	}
}

// ComponentName turns an asset base name into a component name:
// "status-done-icon" → "StatusDoneIcon".
func ComponentName(assetName string) string {
	assetName = strings.TrimSuffix(assetName, ".svg")
	var b strings.Builder
	for _, part := range strings.Split(assetName, "-") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

// ClassList returns the class-list fragment for the root element, one
// "<class>, " entry per style class the root element needs.
func ClassList(style core.StyleInfo) string {
	var b strings.Builder
	if style.AddFill {
		b.WriteString("fillClass, ")
	}
	if style.AddStroke {
		b.WriteString("strokeClass, ")
	}
	return b.String()
}

// Fields are the values substituted into a template.
type Fields struct {
	Name      string
	SVG       string
	ClassName string
	ClassList string
}

// Render substitutes every token in a single pass, so generated text is
// never rescanned for tokens.
func Render(tpl string, f Fields) string {
	r := strings.NewReplacer(
		TokenSVG, f.SVG,
		TokenName, f.Name,
		TokenClassName, f.ClassName,
		TokenClassList, f.ClassList,
	)
	return r.Replace(tpl)
}
