package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/woozymasta/gscript"
)

// scriptExt is the file extension picked up by watch.
const scriptExt = ".gs"

func newWatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <dir>",
		Short: "Re-parse and lint scripts in a directory on change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			if info, err := os.Stat(dir); err != nil || !info.IsDir() {
				return fmt.Errorf("not a directory: %s", dir)
			}

			matches, err := filepath.Glob(filepath.Join(dir, "*"+scriptExt))
			if err != nil {
				return err
			}
			for _, path := range matches {
				a.checkFile(path)
			}

			a.logger.Info("watching", "dir", dir)
			return watchDir(cmd.Context(), dir, a.checkFile, a.logger.Warn)
		},
	}

	return cmd
}

// checkFile parses and lints one script and logs the outcome.
func (a *app) checkFile(path string) {
	script, err := gscript.DecodeFile(path, a.parseOptions(path))
	if err != nil {
		var perr *gscript.ParseError
		if errors.As(err, &perr) {
			a.logger.Error("parse failed", "file", path, "line", perr.Line, "error", perr.Message, "text", perr.Text)
			return
		}
		a.logger.Error("read failed", "file", path, "error", err)
		return
	}

	issues := gscript.Validate(script, a.cfg.validateOptions())
	for _, it := range issues {
		a.logger.Warn("lint", "file", path, "line", it.Line, "level", string(it.Level), "code", it.Code, "name", it.Name, "message", it.Message)
	}

	a.logger.Info("parsed", "file", path, "assignments", len(script), "issues", len(issues))
}

// watchDir calls handle for every written or created script in dir until
// ctx is done. Watcher errors go to warn.
func watchDir(ctx context.Context, dir string, handle func(path string), warn func(msg string, args ...any)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(dir); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !strings.HasSuffix(event.Name, scriptExt) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			handle(event.Name)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			warn("watcher error", "error", err)
		}
	}
}
