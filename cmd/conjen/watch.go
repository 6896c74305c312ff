package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/syssam/conjen/compiler/load"
)

// debounce coalesces the burst of events an editor produces on save.
const debounce = 200 * time.Millisecond

func newWatchCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <file or directory>",
		Short: "Regenerate whenever a definition file changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := root.settings(cmd)
			if err != nil {
				return err
			}
			log := root.logger(cmd.ErrOrStderr())
			defer func() { _ = log.Sync() }()
			return watch(cmd.Context(), args[0], s, log, cmd.OutOrStdout())
		},
	}
	addGenerateFlags(cmd.Flags())
	return cmd
}

// watch generates input once, then again after every change to it, until
// ctx is done. Generation failures are logged and watching goes on.
func watch(ctx context.Context, input string, s *settings, log *zap.Logger, out io.Writer) error {
	info, err := os.Stat(input)
	if err != nil {
		return errors.Wrapf(err, "watch %s", input)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create watcher")
	}
	defer watcher.Close()

	// Watch the directory of a single file too: editors that save by
	// renaming replace the watched inode.
	dir := input
	if !info.IsDir() {
		dir = filepath.Dir(input)
	}
	if err := watcher.Add(dir); err != nil {
		return errors.Wrapf(err, "watch directory %s", dir)
	}
	relevant := func(ev fsnotify.Event) bool {
		if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
			return false
		}
		if !info.IsDir() {
			return filepath.Base(ev.Name) == filepath.Base(input)
		}
		return load.FormatOf(ev.Name) != load.FormatUnknown
	}

	regenerate := func() {
		report, err := run(ctx, input, s, log)
		if err != nil {
			log.Error("generation failed", zap.Error(err))
		}
		printReport(out, report)
	}
	regenerate()
	log.Info("watching for changes", zap.String("path", input))

	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if relevant(ev) {
				log.Debug("change detected", zap.String("file", ev.Name), zap.Stringer("op", ev.Op))
				fire = time.After(debounce)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", zap.Error(err))
		case <-fire:
			fire = nil
			regenerate()
		}
	}
}
