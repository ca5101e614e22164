package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "orcweb",
	Short: "Local tooling for the orcweb handlers",
	Long: `Local tooling for the orcweb publication site.

Runs the deployed request handlers behind a plain HTTP server for
development, and offers direct Crossref lookups for debugging.`,
}

func main() {
	// Load .env if present (ORCID_CLIENT_ID etc.)
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
