package main

import (
	"fmt"
	"strings"

	"filestep/cmd/filestep/cli"

	"github.com/spf13/cobra"
)

// NewStatusCmd creates the status command
func NewStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the active sequencing session, if any",
		Args:  cobra.NoArgs,
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
				fmt.Println(cli.InfoText("No sequencing session is active"))
				return nil
			}
			fmt.Println(cli.SuccessText(fmt.Sprintf("Sequencing files of type %s", filter)))
			return nil
		},
	}
}

// NewCancelCmd creates the cancel command
func NewCancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel",
		Short: "End the active session without saving or opening anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, cleanup, err := newEngine()
			if err != nil {
				return err
			}
			defer cleanup()

			return engine.Cancel()
		},
	}
}

// NewTypesCmd creates the types command
func NewTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the supported file types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(cli.HeaderText("Supported file types"))
			for _, f := range cfg.Filters() {
				line := f.Name
				if len(f.Alternates) > 0 {
					line += " (also " + strings.Join(f.Alternates, ", ") + ")"
				}
				line += " — saves as " + f.Format
				fmt.Println(cli.Bullet(line))
			}
			return nil
		},
	}
}
