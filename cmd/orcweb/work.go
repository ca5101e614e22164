package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/orcweb/orcweb/internal/config"
	"github.com/orcweb/orcweb/internal/crossref"
)

var workCmd = &cobra.Command{
	Use:   "work <doi>",
	Short: "Fetch a work record from Crossref",
	Long: `Fetch a work record from Crossref and print it as JSON.

Useful for inspecting what the publication page will see for a DOI.

Examples:
  orcweb work 10.1093/sysbio/syy032`,
	Args: cobra.ExactArgs(1),
	RunE: runWork,
}

var searchWorksCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search Crossref works",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearchWorks,
}

func init() {
	rootCmd.AddCommand(workCmd)
	rootCmd.AddCommand(searchWorksCmd)
}

func newCrossrefClient() (*crossref.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return crossref.NewClient(
		crossref.WithBaseURL(cfg.Crossref.BaseURL),
		crossref.WithUserAgent(cfg.Crossref.UserAgent),
	), nil
}

func runWork(cmd *cobra.Command, args []string) error {
	client, err := newCrossrefClient()
	if err != nil {
		return err
	}
	work, err := client.WorkByDOI(cmd.Context(), args[0])
	if err != nil {
		if crossref.IsNotFound(err) {
			return fmt.Errorf("no work found for %s", args[0])
		}
		return err
	}
	return printJSON(work)
}

func runSearchWorks(cmd *cobra.Command, args []string) error {
	client, err := newCrossrefClient()
	if err != nil {
		return err
	}
	works, err := client.SearchWorks(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return printJSON(works)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
