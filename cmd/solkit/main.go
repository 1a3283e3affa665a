package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/solkit-labs/solkit/cli"
)

// Set via ldflags at build time.
var version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "solkit",
	Short: "Solana agent toolkit CLI",
	Long:  "solkit — inspect the Solana tool catalog and the local invocation history.",
	// SilenceUsage prevents printing usage on every error
	SilenceUsage: true,
}

func init() {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("solkit version %s\n", version))

	rootCmd.AddCommand(cli.NewToolsCmd())
	rootCmd.AddCommand(cli.NewHistoryCmd())
}
