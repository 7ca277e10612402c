package main

import (
	"fmt"

	"filestep/internal/tui"
	"filestep/pkg/types"

	"github.com/spf13/cobra"
)

// NewStepCmd creates the step command
func NewStepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "step <directory> <fileType>",
		Short: "Step through a directory interactively",
		Long: `Start a sequencing session and drive it from an interactive terminal
view: the current file is highlighted in the live file list, one keypress
saves it and opens the next, q quits (cancelling the session).`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, typeName := args[0], args[1]

			filter, ok := types.FilterByName(typeName, cfg.Filters())
			if !ok {
				return fmt.Errorf("unknown file type %q (supported: %s)",
					typeName, types.SupportedList(cfg.Filters()))
			}

			engine, cleanup, err := newEngine()
			if err != nil {
				return err
			}
			defer cleanup()

			session, err := engine.StartFromDirectory(dir, filter)
			if err != nil {
				return err
			}

			return tui.Run(engine, session)
		},
	}

	return cmd
}
