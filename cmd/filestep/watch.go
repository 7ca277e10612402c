package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"filestep/cmd/filestep/cli"
	"filestep/internal/watch"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// NewWatchCmd creates the watch command
func NewWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <directory>",
		Short: "Report files of the session's type appearing or leaving a directory",
		Long: `While a session is active, watch a directory and report when files of
the session's type are added, removed, or renamed. The sequence always
relists the directory when it advances, so changes reported here will be
picked up by the next advance; this command only makes them visible.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, cleanup, err := newEngine()
			if err != nil {
				return err
			}
			defer cleanup()

			filter, active, err := engine.ActiveFilter()
			if err != nil {
				return err
			}
			if !active {
				return fmt.Errorf("no sequencing session is active")
			}

			watcher, err := watch.New(args[0], filter)
			if err != nil {
				return err
			}
			if err := watcher.Start(); err != nil {
				return err
			}
			defer watcher.Stop()

			fmt.Println(cli.InfoText(fmt.Sprintf("Watching %s for %s files (Ctrl-C to stop)",
				args[0], filter)))

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

			for {
				select {
				case event := <-watcher.Events():
					name := filepath.Base(event.Path)
					switch {
					case event.Op.Has(fsnotify.Create):
						fmt.Println(cli.SuccessText(fmt.Sprintf("+ %s", name)))
					case event.Op.Has(fsnotify.Remove), event.Op.Has(fsnotify.Rename):
						fmt.Println(cli.WarningText(fmt.Sprintf("- %s", name)))
					case event.Op.Has(fsnotify.Write):
						fmt.Println(cli.InfoText(fmt.Sprintf("~ %s", name)))
					}
				case <-sigChan:
					return nil
				}
			}
		},
	}

	return cmd
}
