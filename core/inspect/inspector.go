// Package inspect implements the Inspector interface.
// It parses an asset with a real HTML/SVG parser (goquery over x/net/html)
// to report what the line-based converter will see:
//  1. The root <svg> sizing attributes
//  2. Element counts and the distinct fill/stroke colors in use
//  3. Whether the root element will receive a className hook
package inspect

import (
	"fmt"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/svgcomp/core"
	"github.com/gaurav-prasanna/svgcomp/core/reformat"
	"github.com/gaurav-prasanna/svgcomp/core/template"
)

// SVGInspector summarizes SVG assets.
type SVGInspector struct{}

// New creates an SVGInspector.
func New() *SVGInspector {
	return &SVGInspector{}
}

// Inspect parses the asset and returns its summary.
func (i *SVGInspector) Inspect(asset *core.Asset) (core.AssetSummary, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(asset.Text))
	if err != nil {
		return core.AssetSummary{}, fmt.Errorf("parsing SVG: %w", err)
	}

	root := doc.Find("svg").First()
	if root.Length() == 0 {
		return core.AssetSummary{}, fmt.Errorf("no <svg> root element in %s", asset.Name)
	}

	summary := core.AssetSummary{
		Name:      asset.Name,
		Component: template.ComponentName(asset.Name),
		File:      asset.Path,
		ViewBox:   root.AttrOr("viewBox", ""),
		Width:     root.AttrOr("width", ""),
		Height:    root.AttrOr("height", ""),
		Elements:  map[string]int{},
	}

	if fill, ok := root.Attr("fill"); ok && reformat.IsPainted(fill) {
		summary.Root.AddFill = true
	}
	if stroke, ok := root.Attr("stroke"); ok && reformat.IsPainted(stroke) {
		summary.Root.AddStroke = true
	}

	fills := map[string]bool{}
	strokes := map[string]bool{}
	root.Find("*").AddSelection(root).Each(func(_ int, s *goquery.Selection) {
		summary.Elements[goquery.NodeName(s)]++
		if v, ok := s.Attr("fill"); ok {
			fills[v] = true
		}
		if v, ok := s.Attr("stroke"); ok {
			strokes[v] = true
		}
	})
	summary.Fills = sortedKeys(fills)
	summary.Strokes = sortedKeys(strokes)

	return summary, nil
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
