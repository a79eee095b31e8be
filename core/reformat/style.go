package reformat

import (
	"strings"

	"github.com/gaurav-prasanna/svgcomp/core"
)

// ClassNameAttribute is the name of the synthesized class attribute.
const ClassNameAttribute = "className"

// Default expressions for the synthesized className attribute. The generated
// component template is expected to declare fillClass and strokeClass.
const (
	FillClassExpr       = `{fillClass}`
	StrokeClassExpr     = `{strokeClass}`
	FillStrokeClassExpr = `{fillClass + " " + strokeClass}`
)

// IsPainted reports whether a fill or stroke value actually paints,
// i.e. it is anything but "none" (case-insensitive).
func IsPainted(value string) bool {
	return !strings.EqualFold(value, "none")
}

// InjectClassName inspects fill and stroke attributes and, when either one
// paints, returns a copy of attrs with a className attribute inserted right
// after the first attribute. When override is non-nil its value, wrapped in
// braces, is used instead of the default expression. The style flags are
// always returned, even when the override is used.
func InjectClassName(attrs []core.Attribute, override *string) ([]core.Attribute, core.StyleInfo) {
	var info core.StyleInfo
	for _, attr := range attrs {
		switch {
		case attr.Name == "fill" && IsPainted(attr.Value):
			info.AddFill = true
		case attr.Name == "stroke" && IsPainted(attr.Value):
			info.AddStroke = true
		}
	}
	if !info.Any() {
		return attrs, info
	}

	var expr string
	switch {
	case override != nil:
		expr = "{" + *override + "}"
	case info.AddFill && info.AddStroke:
		expr = FillStrokeClassExpr
	case info.AddFill:
		expr = FillClassExpr
	default:
		expr = StrokeClassExpr
	}

	out := make([]core.Attribute, 0, len(attrs)+1)
	out = append(out, attrs[0])
	out = append(out, core.Attribute{Name: ClassNameAttribute, Value: expr, Exact: true})
	out = append(out, attrs[1:]...)
	return out, info
}
