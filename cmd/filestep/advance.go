package main

import (
	"fmt"
	"path/filepath"

	"filestep/cmd/filestep/cli"

	"github.com/spf13/cobra"
)

// NewAdvanceCmd creates the advance command
func NewAdvanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "advance <currentDocumentRef>",
		Short: "Save the current file, close it, and open the next one",
		Long: `Save the document at the given path in its session's format, close its
window, and open the file that sorts after it in the same directory. On the
last file the sequence ends instead; that is a normal exit, not a failure.

Pass "-" (or an empty ref) for a document that has never been saved; advance
refuses it, since an unsaved document gives the sequence nothing to anchor to.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, cleanup, err := newEngine()
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := engine.Advance(args[0])
			if err != nil {
				return err
			}

			if res.Finished {
				fmt.Println(cli.InfoText(fmt.Sprintf("Saved %s; no more files, sequence finished",
					filepath.Base(res.Saved))))
				return nil
			}
			fmt.Println(cli.SuccessText(fmt.Sprintf("Saved %s, opened %s",
				filepath.Base(res.Saved), filepath.Base(res.Next))))
			return nil
		},
	}

	return cmd
}
