// Package core defines the shared types and pipeline interfaces for svgcomp.
// Each stage of the pipeline is a small, testable unit:
// read asset → convert markup → fill template → write component + index.
package core

import "errors"

// ErrUnexpectedElementType is returned when a tag reaches the reformatter with
// an element type it cannot render. It signals a scanner/reformatter contract
// violation and aborts the whole conversion.
var ErrUnexpectedElementType = errors.New("unexpected element type")

// ElementType describes how a tag affects nesting.
type ElementType int

const (
	ElementNone ElementType = iota
	ElementOpening
	ElementClosing
	ElementSelfClosing
)

func (t ElementType) String() string {
	switch t {
	case ElementNone:
		return "none"
	case ElementOpening:
		return "opening"
	case ElementClosing:
		return "closing"
	case ElementSelfClosing:
		return "self-closing"
	default:
		return "unknown"
	}
}

// Attribute is a single markup attribute.
type Attribute struct {
	Name  string
	Value string
	// Exact marks Value as pre-formatted output (e.g. a JSX expression)
	// that is written verbatim instead of being quoted.
	Exact bool
}

// Tag is the scanned form of one line of markup.
type Tag struct {
	Name       string
	Type       ElementType
	Attributes []Attribute
}

// Empty reports whether the scanned line held no element.
func (t Tag) Empty() bool {
	return t.Name == ""
}

// StyleInfo records which conditional style classes an element needs.
type StyleInfo struct {
	AddFill   bool `json:"add_fill"`
	AddStroke bool `json:"add_stroke"`
}

// Any reports whether at least one style class is needed.
func (s StyleInfo) Any() bool {
	return s.AddFill || s.AddStroke
}

// Line is one reformatted tag.
type Line struct {
	Text  string
	Type  ElementType
	Style StyleInfo
}

// Conversion is the result of converting a whole SVG document.
type Conversion struct {
	Code               string
	AddClassNameFill   bool
	AddClassNameStroke bool
}

// Style returns the root element's style flags.
func (c Conversion) Style() StyleInfo {
	return StyleInfo{AddFill: c.AddClassNameFill, AddStroke: c.AddClassNameStroke}
}

// Asset is a loaded SVG asset file.
type Asset struct {
	Name string // base name without ".svg", e.g. "status-done-icon"
	Path string
	Text string
}

// AssetSummary describes an asset for the inspect and catalog commands.
type AssetSummary struct {
	Name      string         `json:"name"`
	Component string         `json:"component"`
	File      string         `json:"file"`
	ViewBox   string         `json:"view_box,omitempty"`
	Width     string         `json:"width,omitempty"`
	Height    string         `json:"height,omitempty"`
	Elements  map[string]int `json:"elements"`
	Fills     []string       `json:"fills"`
	Strokes   []string       `json:"strokes"`
	Root      StyleInfo      `json:"root_style"`
}

// Catalog is the full set of asset summaries for a project.
type Catalog struct {
	AssetsDir   string         `json:"assets_dir"`
	GeneratedAt string         `json:"generated_at"` // ISO8601
	Assets      []AssetSummary `json:"assets"`
}

// AssetReader loads an SVG asset by name.
type AssetReader interface {
	Read(name string) (*Asset, error)
}

// Converter turns SVG source text into indented component markup.
type Converter interface {
	Convert(source string, baseIndent int, classNameVariable string) (Conversion, error)
}

// Inspector summarizes an asset's markup.
type Inspector interface {
	Inspect(asset *Asset) (AssetSummary, error)
}

// Normalizer converts an HTML fragment into Markdown.
type Normalizer interface {
	Normalize(html string) (string, error)
}

// Renderer converts a catalog into a final output format.
type Renderer interface {
	Render(catalog Catalog) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md", ".pdf").
	Extension() string
}
