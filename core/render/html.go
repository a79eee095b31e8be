// Package render provides output renderers for the asset catalog.
// This file builds the catalog as HTML, the source for the Markdown
// and PDF renderers.
package render

import (
	"fmt"
	"html"
	"slices"
	"strings"

	"github.com/gaurav-prasanna/svgcomp/core"
)

// CatalogHTML renders the catalog as an HTML fragment.
func CatalogHTML(c core.Catalog) string {
	var b strings.Builder
	b.WriteString("<h1>Icon catalog</h1>\n")
	fmt.Fprintf(&b, "<p>Assets in <code>%s</code>: %d</p>\n", html.EscapeString(c.AssetsDir), len(c.Assets))

	for _, a := range c.Assets {
		fmt.Fprintf(&b, "<h2>%s</h2>\n<ul>\n", html.EscapeString(a.Component))
		item(&b, "Asset", code(a.Name+".svg"))
		if a.ViewBox != "" {
			item(&b, "View box", code(a.ViewBox))
		}
		if a.Width != "" || a.Height != "" {
			item(&b, "Size", html.EscapeString(a.Width+" x "+a.Height))
		}
		item(&b, "Elements", html.EscapeString(elementCounts(a.Elements)))
		if len(a.Fills) > 0 {
			item(&b, "Fills", codeList(a.Fills))
		}
		if len(a.Strokes) > 0 {
			item(&b, "Strokes", codeList(a.Strokes))
		}
		item(&b, "Root class hooks", rootHooks(a.Root))
		b.WriteString("</ul>\n")
	}
	return b.String()
}

func item(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "<li>%s: %s</li>\n", label, value)
}

func code(s string) string {
	return "<code>" + html.EscapeString(s) + "</code>"
}

func codeList(values []string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = code(v)
	}
	return strings.Join(parts, ", ")
}

func elementCounts(counts map[string]int) string {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	slices.Sort(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s %d", name, counts[name])
	}
	return strings.Join(parts, ", ")
}

func rootHooks(s core.StyleInfo) string {
	switch {
	case s.AddFill && s.AddStroke:
		return "fill, stroke"
	case s.AddFill:
		return "fill"
	case s.AddStroke:
		return "stroke"
	default:
		return "none"
	}
}
