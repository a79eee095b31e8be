// Package cmd implements the CLI commands for svgcomp using Cobra.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gaurav-prasanna/svgcomp/config"
	"github.com/spf13/cobra"
)

var (
	flagConfig string

	settings = config.New()
	cfg      config.Config
	logger   = slog.New(slog.DiscardHandler)
)

var rootCmd = &cobra.Command{
	Use:   "svgcomp",
	Short: "Generate typed React icon components from SVG assets",
	Long: `svgcomp reads SVG assets, reformats their markup into JSX with
camelCased attributes and conditional className hooks, and writes one
component per asset plus a sorted export index.

Usage:
  svgcomp build <asset-name> [flags]`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "init" || cmd.Name() == "help" {
			return nil
		}

		loaded, err := config.Load(settings, flagConfig)
		if err != nil {
			return err
		}
		if err := loaded.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		cfg = loaded

		level := slog.LevelInfo
		if cfg.Verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		logger.Debug("configuration loaded",
			"assets_dir", cfg.AssetsDir,
			"components_dir", cfg.ComponentsDir,
			"index_file", cfg.IndexFile,
			"template", cfg.Template,
		)
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&flagConfig, "config", "", "Config file (default: ./"+config.FileName+")")
	flags.Bool("verbose", false, "Enable debug logging")
	flags.String("assets-dir", "", "Directory holding the .svg assets")
	flags.String("components-dir", "", "Directory receiving generated components")
	flags.String("index-file", "", "Index file receiving export lines (default: <components-dir>/index.ts)")
	flags.String("template", "", "Component template path (default: built-in React template)")
	flags.String("component-ext", "", "Extension of generated component files")
	flags.String("class-name-variable", "", "Variable the root <svg> element uses as its className")

	bindings := map[string]string{
		config.KeyVerbose:           "verbose",
		config.KeyAssetsDir:         "assets-dir",
		config.KeyComponentsDir:     "components-dir",
		config.KeyIndexFile:         "index-file",
		config.KeyTemplate:          "template",
		config.KeyComponentExt:      "component-ext",
		config.KeyClassNameVariable: "class-name-variable",
	}
	for key, name := range bindings {
		if err := settings.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
}
