package scan

import (
	"reflect"
	"testing"

	"github.com/gaurav-prasanna/svgcomp/core"
)

func TestScan_Tags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  core.Tag
	}{
		{
			name:  "opening without attributes",
			input: "<g>",
			want:  core.Tag{Name: "g", Type: core.ElementOpening},
		},
		{
			name:  "closing",
			input: "</svg>",
			want:  core.Tag{Name: "svg", Type: core.ElementClosing},
		},
		{
			name:  "self-closing without attributes",
			input: "<g/>",
			want:  core.Tag{Name: "g", Type: core.ElementSelfClosing},
		},
		{
			name:  "self-closing with space before slash",
			input: "<br />",
			want:  core.Tag{Name: "br", Type: core.ElementSelfClosing},
		},
		{
			name:  "opening with attributes",
			input: `<svg width="24" height="24" viewBox="0 0 24 24">`,
			want: core.Tag{
				Name: "svg",
				Type: core.ElementOpening,
				Attributes: []core.Attribute{
					{Name: "width", Value: "24"},
					{Name: "height", Value: "24"},
					{Name: "viewBox", Value: "0 0 24 24"},
				},
			},
		},
		{
			name:  "self-closing with attributes",
			input: `<path fill="#123" stroke="none"/>`,
			want: core.Tag{
				Name: "path",
				Type: core.ElementSelfClosing,
				Attributes: []core.Attribute{
					{Name: "fill", Value: "#123"},
					{Name: "stroke", Value: "none"},
				},
			},
		},
		{
			name:  "self-closing with trailing space",
			input: `<circle cx="5" cy="5" r="2" />`,
			want: core.Tag{
				Name: "circle",
				Type: core.ElementSelfClosing,
				Attributes: []core.Attribute{
					{Name: "cx", Value: "5"},
					{Name: "cy", Value: "5"},
					{Name: "r", Value: "2"},
				},
			},
		},
		{
			name:  "value with spaces and punctuation",
			input: `<path d="M0 0 L10,10 Z" stroke-width="1.5"/>`,
			want: core.Tag{
				Name: "path",
				Type: core.ElementSelfClosing,
				Attributes: []core.Attribute{
					{Name: "d", Value: "M0 0 L10,10 Z"},
					{Name: "stroke-width", Value: "1.5"},
				},
			},
		},
		{
			name:  "boolean attribute before end",
			input: `<svg focusable>`,
			want: core.Tag{
				Name:       "svg",
				Type:       core.ElementOpening,
				Attributes: []core.Attribute{{Name: "focusable"}},
			},
		},
		{
			name:  "namespaced attribute",
			input: `<use xlink:href="#a"/>`,
			want: core.Tag{
				Name:       "use",
				Type:       core.ElementSelfClosing,
				Attributes: []core.Attribute{{Name: "xlink:href", Value: "#a"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Scan(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Scan(%q)\n got: %+v\nwant: %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestScan_EmptyLine(t *testing.T) {
	for _, input := range []string{"", "   ", "<>", "</>"} {
		got := Scan(input)
		if !got.Empty() {
			t.Errorf("Scan(%q): expected empty tag, got %+v", input, got)
		}
		if got.Type != core.ElementNone {
			t.Errorf("Scan(%q): expected type none, got %s", input, got.Type)
		}
	}
}

func TestScan_UnquotedValueIsLost(t *testing.T) {
	// Unquoted values are not supported; the value never closes.
	got := Scan(`<rect width=10>`)
	if got.Name != "rect" {
		t.Fatalf("expected name rect, got %q", got.Name)
	}
	if len(got.Attributes) != 0 {
		t.Errorf("expected no attributes, got %+v", got.Attributes)
	}
}

func TestScan_SelfClosingIgnoresTabs(t *testing.T) {
	got := Scan("<path d=\"M1 1\"/\t>")
	if got.Type != core.ElementSelfClosing {
		t.Errorf("expected self-closing, got %s", got.Type)
	}
}

func TestScan_SlashNeverStartsAnAttribute(t *testing.T) {
	got := Scan(`<path d="M0 0" />`)
	want := []core.Attribute{{Name: "d", Value: "M0 0"}}
	if got.Type != core.ElementSelfClosing {
		t.Errorf("expected self-closing, got %s", got.Type)
	}
	if !reflect.DeepEqual(got.Attributes, want) {
		t.Errorf("attributes = %+v, want %+v", got.Attributes, want)
	}
}
