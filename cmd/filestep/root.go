package main

import (
	"filestep/internal/config"
	"filestep/internal/editor"
	"filestep/internal/log"
	"filestep/internal/sequence"
	"filestep/internal/store"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	cfg     *config.Config
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "filestep",
		Short: "Step through the files of a directory one at a time",
		Long: `Filestep opens the files of one type in a directory one after another:
open the first file, and on a single action save the current file, close its
window, and open the next one. The actual editing happens in whatever editor
the configured hooks launch.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if cfgFile != "" {
				cfg, err = config.LoadConfigFile(cfgFile)
			} else {
				cfg, err = config.LoadConfig()
			}
			if err != nil {
				return err
			}
			log.SetDebug(verbose || cfg.Settings.Verbose)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/filestep/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(NewOpenFirstCmd())
	rootCmd.AddCommand(NewOpenSpecificCmd())
	rootCmd.AddCommand(NewAdvanceCmd())
	rootCmd.AddCommand(NewStatusCmd())
	rootCmd.AddCommand(NewCancelCmd())
	rootCmd.AddCommand(NewTypesCmd())
	rootCmd.AddCommand(NewStepCmd())
	rootCmd.AddCommand(NewWatchCmd())

	return rootCmd
}

// newEngine wires the engine for one command invocation. The returned
// cleanup closes the tag store.
func newEngine() (*sequence.Engine, func(), error) {
	st, err := store.Open(cfg.Store.Path)
	if err != nil {
		return nil, nil, err
	}
	ed := editor.NewCommand(cfg.Editor.Open, cfg.Editor.Save, cfg.Editor.Close)
	cleanup := func() {
		if err := st.Close(); err != nil {
			log.Warn("error closing tag store: %v", err)
		}
	}
	return sequence.New(ed, st, cfg.Filters()), cleanup, nil
}
