// Command tokenctl holds operator tasks for the storefront: schema
// migration and signing or verifying processor callback bodies.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tokenctl",
		Short:         "Operator tooling for the token storefront",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(signCmd())
	rootCmd.AddCommand(verifyCmd())

	return rootCmd
}
