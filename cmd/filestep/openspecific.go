package main

import (
	"fmt"
	"path/filepath"

	"filestep/cmd/filestep/cli"

	"github.com/spf13/cobra"
)

// NewOpenSpecificCmd creates the open-specific command
func NewOpenSpecificCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open-specific <path>",
		Short: "Open one file and start a sequence of its type",
		Long: `Open exactly the given file and start a sequencing session. The file
type is inferred from the extension, case-insensitively; later advances step
through the remaining files of that type in the same directory.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, cleanup, err := newEngine()
			if err != nil {
				return err
			}
			defer cleanup()

			session, err := engine.StartFromFile(args[0])
			if err != nil {
				return err
			}

			fmt.Println(cli.SuccessText(fmt.Sprintf("Opened %s (type %s)",
				filepath.Base(session.CurrentFile), session.Filter)))
			return nil
		},
	}

	return cmd
}
