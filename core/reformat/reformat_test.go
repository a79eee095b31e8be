package reformat

import (
	"errors"
	"strings"
	"testing"

	"github.com/gaurav-prasanna/svgcomp/core"
)

func TestLine_NoAttributes(t *testing.T) {
	tests := []struct {
		name      string
		tag       core.Tag
		indent    int
		indentTag bool
		want      string
	}{
		{"opening", core.Tag{Name: "g", Type: core.ElementOpening}, 4, true, "    <g>"},
		{"opening first line", core.Tag{Name: "g", Type: core.ElementOpening}, 4, false, "<g>"},
		{"closing dedents", core.Tag{Name: "g", Type: core.ElementClosing}, 8, true, "    </g>"},
		{"closing clamps at zero", core.Tag{Name: "svg", Type: core.ElementClosing}, 0, true, "</svg>"},
		{"self-closing", core.Tag{Name: "defs", Type: core.ElementSelfClosing}, 4, true, "    <defs />"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Line(tt.tag, tt.indent, tt.indentTag, nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Text != tt.want {
				t.Errorf("got %q, want %q", got.Text, tt.want)
			}
			if got.Type != tt.tag.Type {
				t.Errorf("type = %s, want %s", got.Type, tt.tag.Type)
			}
		})
	}
}

func TestLine_MultiLine(t *testing.T) {
	tag := core.Tag{
		Name: "path",
		Type: core.ElementSelfClosing,
		Attributes: []core.Attribute{
			{Name: "d", Value: "M0 0"},
			{Name: "stroke-width", Value: "2"},
		},
	}
	got, err := Line(tag, 4, true, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := strings.Join([]string{
		"    <path",
		`        d="M0 0"`,
		`        strokeWidth="2"`,
		"    />",
	}, "\n")
	if got.Text != want {
		t.Errorf("got:\n%s\nwant:\n%s", got.Text, want)
	}
}

func TestLine_FirstLineNotIndented(t *testing.T) {
	tag := core.Tag{
		Name:       "svg",
		Type:       core.ElementOpening,
		Attributes: []core.Attribute{{Name: "width", Value: "10"}},
	}
	got, err := Line(tag, 8, false, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<svg\n            width=\"10\"\n        >"
	if got.Text != want {
		t.Errorf("got %q, want %q", got.Text, want)
	}
}

func TestLine_InjectsClassNameAndDropsStyle(t *testing.T) {
	override := "classNameToUse"
	tag := core.Tag{
		Name: "svg",
		Type: core.ElementOpening,
		Attributes: []core.Attribute{
			{Name: "width", Value: "24"},
			{Name: "style", Value: "display:block"},
			{Name: "fill", Value: "#000"},
			{Name: "STYLE", Value: "x"},
		},
	}
	got, err := Line(tag, 0, false, &override)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := strings.Join([]string{
		"<svg",
		`    width="24"`,
		`    className={classNameToUse}`,
		`    fill="#000"`,
		">",
	}, "\n")
	if got.Text != want {
		t.Errorf("got:\n%s\nwant:\n%s", got.Text, want)
	}
	if strings.Contains(strings.ToLower(got.Text), "style") {
		t.Errorf("style attribute leaked into output: %q", got.Text)
	}
	if !got.Style.AddFill || got.Style.AddStroke {
		t.Errorf("unexpected style info %+v", got.Style)
	}
}

func TestLine_OnlyStyleAttributeCollapses(t *testing.T) {
	tag := core.Tag{
		Name:       "g",
		Type:       core.ElementOpening,
		Attributes: []core.Attribute{{Name: "style", Value: "opacity:.5"}},
	}
	got, err := Line(tag, 4, true, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Text != "    <g>" {
		t.Errorf("got %q", got.Text)
	}
}

func TestLine_EmptyTag(t *testing.T) {
	got, err := Line(core.Tag{}, 4, true, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Text != "" || got.Type != core.ElementNone {
		t.Errorf("expected empty line, got %+v", got)
	}
}

func TestLine_UnknownTypeIsFatal(t *testing.T) {
	for _, typ := range []core.ElementType{core.ElementNone, core.ElementType(42)} {
		tag := core.Tag{
			Name:       "path",
			Type:       typ,
			Attributes: []core.Attribute{{Name: "d", Value: "M0 0"}},
		}
		got, err := Line(tag, 0, true, nil)
		if !errors.Is(err, core.ErrUnexpectedElementType) {
			t.Errorf("type %d: expected ErrUnexpectedElementType, got %v", typ, err)
		}
		if got.Text != "" {
			t.Errorf("type %d: expected no text, got %q", typ, got.Text)
		}
	}
}
