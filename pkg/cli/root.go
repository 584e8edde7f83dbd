// Package cli implements the ordersctl command-line tool: developer helpers
// for minting and obtaining access tokens against the orders API.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ordersctl",
		Short:         "Orders API developer CLI",
		Long:          "Developer helpers for the orders API: mint local tokens or log in against a running server.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newTokenCmd())
	rootCmd.AddCommand(newLoginCmd())
	return rootCmd
}
