package main

import (
	"fmt"
	"os"

	"filestep/cmd/filestep/cli"
)

var version = "dev"

// Entry point for the application
func main() {
	rootCmd := NewRootCmd()
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.ErrorText(err.Error()))
		os.Exit(1)
	}
}
