// Package reformat renders scanned tags back into indented JSX markup.
// Tags without attributes stay on one line. Tags with attributes are
// expanded to one attribute per line, with names camelCased and a
// conditional className injected for painted fill/stroke values.
package reformat

import (
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/svgcomp/core"
)

// IndentWidth is the number of spaces per nesting level.
const IndentWidth = 4

// Line renders tag at indentSpaces. The element line itself is only indented
// when indentFirstLine is set, because the first line of a document lands at
// the template placeholder's column. Closing tags are rendered one level to
// the left of indentSpaces. Attributes named style are never emitted.
//
// An empty tag renders as empty text. A non-empty tag of an unknown element
// type returns core.ErrUnexpectedElementType.
func Line(tag core.Tag, indentSpaces int, indentFirstLine bool, override *string) (core.Line, error) {
	if tag.Empty() {
		return core.Line{Type: core.ElementNone}, nil
	}

	var closing string
	switch tag.Type {
	case core.ElementOpening, core.ElementClosing:
		closing = ">"
	case core.ElementSelfClosing:
		closing = "/>"
	default:
		return core.Line{}, fmt.Errorf("%w: <%s> has type %s", core.ErrUnexpectedElementType, tag.Name, tag.Type)
	}

	attrs, style := InjectClassName(tag.Attributes, override)
	attrs = withoutStyle(attrs)

	if tag.Type == core.ElementClosing {
		indentSpaces -= IndentWidth
	}
	indent := spaces(indentSpaces)
	lead := ""
	if indentFirstLine {
		lead = indent
	}

	var b strings.Builder
	if len(attrs) == 0 {
		b.WriteString(lead)
		switch tag.Type {
		case core.ElementOpening:
			b.WriteString("<" + tag.Name + ">")
		case core.ElementClosing:
			b.WriteString("</" + tag.Name + ">")
		case core.ElementSelfClosing:
			b.WriteString("<" + tag.Name + " />")
		}
		return core.Line{Text: b.String(), Type: tag.Type, Style: style}, nil
	}

	b.WriteString(lead + "<" + tag.Name + "\n")
	for _, attr := range attrs {
		b.WriteString(indent)
		b.WriteString(spaces(IndentWidth))
		b.WriteString(NormalizeName(attr.Name))
		b.WriteByte('=')
		if attr.Exact {
			b.WriteString(attr.Value)
		} else {
			b.WriteString(`"` + attr.Value + `"`)
		}
		b.WriteByte('\n')
	}
	b.WriteString(indent + closing)

	return core.Line{Text: b.String(), Type: tag.Type, Style: style}, nil
}

func withoutStyle(attrs []core.Attribute) []core.Attribute {
	out := make([]core.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		if strings.EqualFold(attr.Name, "style") {
			continue
		}
		out = append(out, attr)
	}
	return out
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
