package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "colony-ls",
	Short: "Colony blueprint language-server core",
	Long: `Colony LS is the validation core of the Colony blueprint language server.

It parses blueprint documents, resolves their variable references, and
checks them against the application and service definitions in a workspace,
reporting every violation with an exact source range.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
