// Package render: PDF renderer.
// Lays out the Markdown catalog as a printable PDF using gofpdf.
// Headings get larger fonts; other lines are set as plain paragraphs.
package render

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/svgcomp/core"
	"github.com/jung-kurt/gofpdf"
)

// PDFRenderer renders the catalog as a PDF document.
type PDFRenderer struct {
	markdown *MarkdownRenderer
}

// NewPDFRenderer creates a PDFRenderer that lays out the output of markdown.
func NewPDFRenderer(markdown *MarkdownRenderer) *PDFRenderer {
	return &PDFRenderer{markdown: markdown}
}

// Render converts the catalog into PDF bytes.
func (r *PDFRenderer) Render(c core.Catalog) ([]byte, error) {
	md, err := r.markdown.Render(c)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Generation stamp.
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.MultiCell(0, 5, "Generated: "+c.GeneratedAt, "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	for _, line := range strings.Split(string(md), "\n") {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			pdf.Ln(2)
			continue
		}

		if strings.HasPrefix(trimmed, "#") {
			level := len(trimmed) - len(strings.TrimLeft(trimmed, "#"))
			renderHeading(pdf, strings.TrimSpace(trimmed[level:]), level)
			continue
		}

		pdf.SetFont("Helvetica", "", 10)
		if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
			pdf.MultiCell(0, 5, "- "+cleanInlineMarkdown(trimmed[2:]), "", "L", false)
			continue
		}
		pdf.MultiCell(0, 5, cleanInlineMarkdown(trimmed), "", "L", false)
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("laying out PDF: %w", err)
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

// renderHeading sets the font size based on heading level and writes text.
func renderHeading(pdf *gofpdf.Fpdf, text string, level int) {
	sizes := map[int]float64{1: 18, 2: 14, 3: 12}
	size, ok := sizes[level]
	if !ok {
		size = 10
	}
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", size)
	pdf.MultiCell(0, size*0.6, cleanInlineMarkdown(text), "", "L", false)
	pdf.Ln(1)
}

var (
	inlineCodeRegex = regexp.MustCompile("`([^`]+)`")
	linkRegex       = regexp.MustCompile(`\[([^\]]*)\]\([^)]+\)`)
)

// cleanInlineMarkdown strips inline Markdown formatting for PDF rendering.
func cleanInlineMarkdown(text string) string {
	text = strings.ReplaceAll(text, "**", "")
	text = inlineCodeRegex.ReplaceAllString(text, "$1")
	text = linkRegex.ReplaceAllString(text, "$1")
	// html-to-markdown escapes characters such as '#' and '_'.
	text = strings.NewReplacer(`\#`, "#", `\_`, "_", `\*`, "*").Replace(text)
	return strings.TrimSpace(text)
}
