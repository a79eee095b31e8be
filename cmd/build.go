// Package cmd: build command.
// This is the main command that orchestrates the pipeline:
// read asset → convert markup → fill template → write component → update index.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/gaurav-prasanna/svgcomp/assets"
	"github.com/gaurav-prasanna/svgcomp/config"
	"github.com/gaurav-prasanna/svgcomp/core"
	"github.com/gaurav-prasanna/svgcomp/core/convert"
	"github.com/gaurav-prasanna/svgcomp/core/output"
	"github.com/gaurav-prasanna/svgcomp/core/source"
	"github.com/gaurav-prasanna/svgcomp/core/template"
	"github.com/spf13/cobra"
)

// Flag variables.
var (
	flagAll       bool
	flagRecursive bool
	flagDryRun    bool
)

var buildCmd = &cobra.Command{
	Use:   "build [asset-name...]",
	Short: "Generate React components from SVG assets",
	Long: `Build reads each named SVG asset from the assets directory, converts it into
a React component using the component template, and adds an export line for it
to the index file. Component files are only rewritten when their content changes.

Examples:
  svgcomp build status-done-icon
  svgcomp build menu-icon close-icon.svg
  svgcomp build --all
  svgcomp build status-done-icon --dry-run`,
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().BoolVar(&flagAll, "all", false, "Build every asset in the assets directory")
	buildCmd.Flags().BoolVar(&flagRecursive, "recursive", false, "With --all, include assets in subdirectories")
	buildCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print generated components instead of writing them")
}

func runBuild(cmd *cobra.Command, args []string) error {
	if flagAll && len(args) > 0 {
		return fmt.Errorf("--all cannot be combined with asset names")
	}
	if !flagAll && len(args) == 0 {
		return fmt.Errorf("expected at least one asset name, e.g. \"status-done-icon\", or --all")
	}

	gen, err := newGenerator(cfg, logger, cmd.OutOrStdout(), flagDryRun)
	if err != nil {
		return err
	}

	if !flagAll {
		for _, name := range args {
			if err := gen.Generate(name); err != nil {
				return err
			}
		}
		return nil
	}

	paths, err := assets.Discover(cfg.AssetsDir, flagRecursive)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Found %d assets to process\n", len(paths))

	var failed error
	for i, path := range paths {
		name := assets.AssetName(path)
		fmt.Fprintf(cmd.OutOrStdout(), "[%d/%d] Processing %s\n", i+1, len(paths), name)
		if err := gen.GenerateFrom(path); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "  ✗ Error: %v\n", err)
			failed = errors.Join(failed, err)
		}
	}
	return failed
}

// generator runs one asset at a time through the pipeline. The template is
// loaded and its SVG placeholder located once, before any conversion.
type generator struct {
	cfg       config.Config
	reader    core.AssetReader
	converter core.Converter
	writer    *output.Writer
	tpl       string
	indent    int
	log       *slog.Logger
	out       io.Writer
	dryRun    bool
}

func newGenerator(cfg config.Config, log *slog.Logger, out io.Writer, dryRun bool) (*generator, error) {
	tpl, err := template.Load(cfg.Template)
	if err != nil {
		return nil, err
	}
	indent, err := template.Indentation(tpl, template.TokenSVG)
	if err != nil {
		return nil, fmt.Errorf("template: %w", err)
	}

	g := &generator{
		cfg:       cfg,
		reader:    source.New(cfg.AssetsDir),
		converter: convert.New(),
		tpl:       tpl,
		indent:    indent,
		log:       log,
		out:       out,
		dryRun:    dryRun,
	}
	if !dryRun {
		g.writer, err = output.New(cfg.ComponentsDir)
		if err != nil {
			return nil, fmt.Errorf("initializing output writer: %w", err)
		}
	}
	return g, nil
}

// GenerateFrom builds the asset at path, which may live in a subdirectory
// of the assets directory.
func (g *generator) GenerateFrom(path string) error {
	return g.generate(source.New(filepath.Dir(path)), assets.AssetName(path))
}

// Generate builds the named asset from the assets directory.
func (g *generator) Generate(name string) error {
	return g.generate(g.reader, name)
}

func (g *generator) generate(reader core.AssetReader, name string) error {
	asset, err := reader.Read(name)
	if err != nil {
		return err
	}
	log := g.log.With("asset", asset.Name)
	log.Info("processing asset", "path", asset.Path)

	src, err := g.component(asset)
	if err != nil {
		return fmt.Errorf("%s: %w", asset.Name, err)
	}
	componentName := template.ComponentName(asset.Name)

	if g.dryRun {
		fmt.Fprint(g.out, src)
		return nil
	}

	path, status, err := g.writer.WriteComponent(componentName, g.cfg.ComponentExt, []byte(src))
	if err != nil {
		return err
	}
	log.Debug("component written", "path", path, "status", status)
	if status == output.Unchanged {
		fmt.Fprintf(g.out, "✓ No changes needed: %s\n", path)
	} else {
		fmt.Fprintf(g.out, "✓ Component %s: %s\n", status, path)
	}

	changed, err := output.AddExportLine(g.cfg.IndexFile, output.ExportLine(componentName))
	if err != nil {
		return err
	}
	if changed {
		fmt.Fprintf(g.out, "✓ Index updated: %s\n", g.cfg.IndexFile)
	} else {
		log.Debug("index is current", "path", g.cfg.IndexFile)
	}
	return nil
}

// component renders the full component source for asset.
func (g *generator) component(asset *core.Asset) (string, error) {
	conv, err := g.converter.Convert(asset.Text, g.indent, g.cfg.ClassNameVariable)
	if err != nil {
		return "", fmt.Errorf("convert: %w", err)
	}
	if conv.Code == "" {
		return "", fmt.Errorf("convert: no line starts with %q", convert.RootMarker)
	}
	g.log.Debug("converted asset",
		"asset", asset.Name,
		"add_fill", conv.AddClassNameFill,
		"add_stroke", conv.AddClassNameStroke,
	)

	return template.Render(g.tpl, template.Fields{
		Name:      template.ComponentName(asset.Name),
		SVG:       conv.Code,
		ClassName: g.cfg.ClassNameVariable,
		ClassList: template.ClassList(conv.Style()),
	}), nil
}
