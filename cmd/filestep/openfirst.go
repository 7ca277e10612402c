package main

import (
	"fmt"
	"path/filepath"

	"filestep/cmd/filestep/cli"
	"filestep/pkg/types"

	"github.com/spf13/cobra"
)

// NewOpenFirstCmd creates the open-first command
func NewOpenFirstCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open-first <directory> <fileType>",
		Short: "Open the first file of a type in a directory and start a sequence",
		Args:  cobra.ExactArgs(2),
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

			files, err := engine.ListMatching(session.Directory, session.Filter)
			if err != nil {
				return err
			}
			fmt.Println(cli.SuccessText(fmt.Sprintf("Opened %s (1 of %d)",
				filepath.Base(session.CurrentFile), len(files))))
			return nil
		},
	}

	return cmd
}
