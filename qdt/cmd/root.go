// Package cmd provides the command-line interface for converting circuit
// durations.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use: "qdt",
	Short: "The qdt tool rewrites quantum circuit durations into hardware " +
		"sample steps.",
	Long: `The qdt tool rewrites quantum circuit durations into hardware ` +
		`sample steps. It can convert circuit files, list known backends, ` +
		`and serve recorded conversion audits.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
