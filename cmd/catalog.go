// Package cmd: catalog command.
// Summarizes every asset and renders the result as Markdown, JSON or PDF.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gaurav-prasanna/svgcomp/assets"
	"github.com/gaurav-prasanna/svgcomp/core"
	"github.com/gaurav-prasanna/svgcomp/core/inspect"
	"github.com/gaurav-prasanna/svgcomp/core/normalize"
	"github.com/gaurav-prasanna/svgcomp/core/render"
	"github.com/gaurav-prasanna/svgcomp/core/source"
	"github.com/spf13/cobra"
)

const catalogBaseName = "CATALOG"

var (
	flagCatalogFormat    string
	flagCatalogOutput    string
	flagCatalogRecursive bool
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Render a catalog of all SVG assets",
	Long: `Catalog inspects every asset in the assets directory and writes a catalog
listing each generated component with its sizing, colors and className hooks.

Examples:
  svgcomp catalog
  svgcomp catalog --format json --output -
  svgcomp catalog --format pdf --output docs/icons.pdf`,
	Args: cobra.NoArgs,
	RunE: runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)

	catalogCmd.Flags().StringVar(&flagCatalogFormat, "format", "markdown", "Output format: markdown, json or pdf")
	catalogCmd.Flags().StringVar(&flagCatalogOutput, "output", "", "Output file, or - for stdout (default: <components-dir>/CATALOG.<ext>)")
	catalogCmd.Flags().BoolVar(&flagCatalogRecursive, "recursive", false, "Include assets in subdirectories")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	renderer, err := selectRenderer(flagCatalogFormat)
	if err != nil {
		return err
	}

	catalog, err := buildCatalog(cfg.AssetsDir, flagCatalogRecursive, inspect.New())
	if err != nil {
		return err
	}

	data, err := renderer.Render(catalog)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if flagCatalogOutput == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	path := flagCatalogOutput
	if path == "" {
		path = filepath.Join(cfg.ComponentsDir, catalogBaseName+renderer.Extension())
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing catalog %s: %w", path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Written: %s (%d assets)\n", path, len(catalog.Assets))
	return nil
}

// buildCatalog inspects every asset under dir. Assets that cannot be
// parsed are logged and left out.
func buildCatalog(dir string, recursive bool, inspector core.Inspector) (core.Catalog, error) {
	paths, err := assets.Discover(dir, recursive)
	if err != nil {
		return core.Catalog{}, err
	}

	catalog := core.Catalog{
		AssetsDir:   dir,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Assets:      make([]core.AssetSummary, 0, len(paths)),
	}
	for _, path := range paths {
		asset, err := source.New(filepath.Dir(path)).Read(assets.AssetName(path))
		if err != nil {
			logger.Warn("skipping asset", "path", path, "error", err)
			continue
		}
		summary, err := inspector.Inspect(asset)
		if err != nil {
			logger.Warn("skipping asset", "path", path, "error", err)
			continue
		}
		catalog.Assets = append(catalog.Assets, summary)
	}
	return catalog, nil
}

// selectRenderer creates the Renderer for the requested format.
func selectRenderer(format string) (core.Renderer, error) {
	switch format {
	case "markdown", "md":
		return render.NewMarkdownRenderer(normalize.New()), nil
	case "json":
		return render.NewJSONRenderer(), nil
	case "pdf":
		return render.NewPDFRenderer(render.NewMarkdownRenderer(normalize.New())), nil
	default:
		return nil, fmt.Errorf("unknown catalog format %q: use markdown, json or pdf", format)
	}
}
