// Package cmd: inspect command.
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/gaurav-prasanna/svgcomp/core"
	"github.com/gaurav-prasanna/svgcomp/core/inspect"
	"github.com/gaurav-prasanna/svgcomp/core/source"
	"github.com/spf13/cobra"
)

var flagInspectJSON bool

var inspectCmd = &cobra.Command{
	Use:   "inspect <asset-name>",
	Short: "Summarize an SVG asset before converting it",
	Long: `Inspect parses an asset and reports its sizing attributes, element counts,
the fill and stroke colors it uses, and which className hooks the generated
component's root element will receive.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().BoolVar(&flagInspectJSON, "json", false, "Print the summary as JSON")
}

func runInspect(cmd *cobra.Command, args []string) error {
	asset, err := source.New(cfg.AssetsDir).Read(args[0])
	if err != nil {
		return err
	}
	summary, err := inspect.New().Inspect(asset)
	if err != nil {
		return err
	}

	if flagInspectJSON {
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}
	printSummary(cmd.OutOrStdout(), summary)
	return nil
}

func printSummary(w io.Writer, s core.AssetSummary) {
	fmt.Fprintf(w, "Asset:      %s\n", s.File)
	fmt.Fprintf(w, "Component:  %s\n", s.Component)
	fmt.Fprintf(w, "View box:   %s\n", orDash(s.ViewBox))
	fmt.Fprintf(w, "Size:       %s x %s\n", orDash(s.Width), orDash(s.Height))

	names := make([]string, 0, len(s.Elements))
	for name := range s.Elements {
		names = append(names, name)
	}
	slices.Sort(names)
	fmt.Fprintln(w, "Elements:")
	for _, name := range names {
		fmt.Fprintf(w, "  %-16s %d\n", name, s.Elements[name])
	}

	fmt.Fprintf(w, "Fills:      %s\n", orDash(strings.Join(s.Fills, ", ")))
	fmt.Fprintf(w, "Strokes:    %s\n", orDash(strings.Join(s.Strokes, ", ")))
	fmt.Fprintf(w, "Root hooks: fill=%t stroke=%t\n", s.Root.AddFill, s.Root.AddStroke)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
