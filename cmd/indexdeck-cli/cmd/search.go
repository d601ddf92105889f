package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"indexdeck/internal/domain"
)

var searchMax int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Semantic search over the indexed codebase",
	Long: `Run a semantic search against the index and print ranked snippets.

Examples:
  indexdeck-cli search "connection pool cleanup"
  indexdeck-cli search --max 3 "vertex buffer allocation"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.TrimSpace(args[0])
		if query == "" {
			return fmt.Errorf("query cannot be empty")
		}

		results, err := svc.Search(context.Background(), query, searchMax)
		if err != nil {
			return err
		}
		if len(results) == 0 {
			fmt.Println("No results found")
			return nil
		}

		for _, r := range results {
			entity := r.Entity
			if entity == "" {
				entity = "(file chunk)"
			}
			fmt.Printf("%s  %s  %s:%s\n", domain.FormatSimilarity(r.Similarity), entity, r.File, r.Lines)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().IntVar(&searchMax, "max", 10, "maximum number of results")
	rootCmd.AddCommand(searchCmd)
}
