// Package cli implements the memctl command-line interface using Cobra.
// Each subcommand maps to one memd HTTP endpoint (models, ps, load, etc.).
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var serverURL string

var rootCmd = &cobra.Command{
	Use:   "memctl",
	Short: "memctl — operate a memd model memory manager",
	Long: `memctl talks to a running memd daemon over HTTP.
Inspect the catalog, load and unload models, and trim memory usage.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	defaultServer := "http://localhost:8090"
	if v := os.Getenv("MEMD_SERVER"); v != "" {
		defaultServer = v
	}
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", defaultServer, "memd base URL")
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
