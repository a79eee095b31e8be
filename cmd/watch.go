// Package cmd: watch command.
// Rebuilds components whenever an asset in the assets directory changes.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gaurav-prasanna/svgcomp/assets"
	"github.com/spf13/cobra"
)

// settleDelay collapses the burst of events editors emit on save.
const settleDelay = 150 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild components when SVG assets change",
	Long: `Watch monitors the assets directory and rebuilds the component for every
.svg file that is created or modified, until interrupted with Ctrl+C.
A failed build is reported and watching continues.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	gen, err := newGenerator(cfg, logger, cmd.OutOrStdout(), false)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(cfg.AssetsDir); err != nil {
		return fmt.Errorf("watching %s: %w", cfg.AssetsDir, err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.OutOrStdout(), "Watching %s for changes. Press Ctrl+C to stop.\n", cfg.AssetsDir)
	return watchLoop(ctx, watcher.Events, watcher.Errors, func(name string) {
		if err := gen.Generate(name); err != nil {
			logger.Error("build failed", "asset", name, "error", err)
			fmt.Fprintf(cmd.ErrOrStderr(), "  ✗ Error: %v\n", err)
		}
	})
}

// watchLoop queues changed assets and hands them to build once events have
// settled. It returns when ctx is done or the event channel closes.
func watchLoop(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error, build func(name string)) error {
	queue := assets.NewQueue()
	timer := time.NewTimer(settleDelay)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			name, ok := assetForEvent(ev)
			if !ok {
				continue
			}
			logger.Debug("asset changed", "asset", name, "op", ev.Op.String())
			queue.Add(name)
			timer.Reset(settleDelay)

		case err, ok := <-errs:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "error", err)

		case <-timer.C:
			for _, name := range queue.Drain() {
				build(name)
			}
		}
	}
}

// assetForEvent returns the asset name for events that should trigger a build.
func assetForEvent(ev fsnotify.Event) (string, bool) {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
		return "", false
	}
	if !assets.IsSVGAsset(ev.Name) {
		return "", false
	}
	return assets.AssetName(ev.Name), true
}
