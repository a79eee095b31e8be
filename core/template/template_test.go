package template

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gaurav-prasanna/svgcomp/core"
)

func TestIndentation(t *testing.T) {
	tpl := "return (\n        <<-SVG->>\n);"
	got, err := Indentation(tpl, TokenSVG)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 8 {
		t.Errorf("expected 8, got %d", got)
	}
}

func TestIndentation_Errors(t *testing.T) {
	if _, err := Indentation("no token here", TokenSVG); !errors.Is(err, ErrPlaceholderNotFound) {
		t.Errorf("expected ErrPlaceholderNotFound, got %v", err)
	}
	if _, err := Indentation("<<-SVG->>\n  <<-SVG->>", TokenSVG); !errors.Is(err, ErrAmbiguousPlaceholder) {
		t.Errorf("expected ErrAmbiguousPlaceholder, got %v", err)
	}
}

func TestDefaultTemplate(t *testing.T) {
	tpl := Default()
	col, err := Indentation(tpl, TokenSVG)
	if err != nil {
		t.Fatalf("default template: %v", err)
	}
	if col != 8 {
		t.Errorf("expected SVG placeholder at column 8, got %d", col)
	}
	for _, tok := range []string{TokenName, TokenClassName, TokenClassList} {
		if !strings.Contains(tpl, tok) {
			t.Errorf("default template is missing %s", tok)
		}
	}
}

func TestComponentName(t *testing.T) {
	tests := map[string]string{
		"status-done-icon":     "StatusDoneIcon",
		"status-done-icon.svg": "StatusDoneIcon",
		"menu":                 "Menu",
		"drag--handle":         "DragHandle",
		"":                     "",
	}
	for in, want := range tests {
		if got := ComponentName(in); got != want {
			t.Errorf("ComponentName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestClassList(t *testing.T) {
	tests := []struct {
		style core.StyleInfo
		want  string
	}{
		{core.StyleInfo{}, ""},
		{core.StyleInfo{AddFill: true}, "fillClass, "},
		{core.StyleInfo{AddStroke: true}, "strokeClass, "},
		{core.StyleInfo{AddFill: true, AddStroke: true}, "fillClass, strokeClass, "},
	}
	for _, tt := range tests {
		if got := ClassList(tt.style); got != tt.want {
			t.Errorf("ClassList(%+v) = %q, want %q", tt.style, got, tt.want)
		}
	}
}

func TestRender(t *testing.T) {
	tpl := "export const <<-NAME->> = () => {\n    const <<-CLASSNAME->> = build(<<-CLASSLIST->>x);\n    <<-SVG->>\n}; // <<-NAME->>"
	got := Render(tpl, Fields{
		Name:      "MenuIcon",
		SVG:       "<svg\n>\n</svg>",
		ClassName: "cls",
		ClassList: "fillClass, ",
	})
	want := "export const MenuIcon = () => {\n    const cls = build(fillClass, x);\n    <svg\n>\n</svg>\n}; // MenuIcon"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRender_GeneratedTextIsNotRescanned(t *testing.T) {
	got := Render("<<-SVG->>", Fields{SVG: "<<-NAME->>", Name: "X"})
	if got != "<<-NAME->>" {
		t.Errorf("expected generated text to be left alone, got %q", got)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.template")
	if err := os.WriteFile(path, []byte("custom <<-SVG->>"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "custom <<-SVG->>" {
		t.Errorf("got %q", got)
	}

	got, err = Load("file://" + filepath.ToSlash(path))
	if err != nil {
		t.Fatalf("file URL: unexpected error: %v", err)
	}
	if got != "custom <<-SVG->>" {
		t.Errorf("file URL: got %q", got)
	}

	got, err = Load("")
	if err != nil || got != Default() {
		t.Errorf("empty path should load the default template, err=%v", err)
	}

	if _, err := Load(filepath.Join(dir, "missing")); err == nil {
		t.Error("expected error for missing template")
	}
}
