package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"indexdeck/internal/adapters/indexer"
	"indexdeck/internal/config"
	"indexdeck/internal/ports"
)

var (
	serverURL string
	cfg       config.Config
	svc       ports.Indexer
)

var rootCmd = &cobra.Command{
	Use:   "indexdeck-cli",
	Short: "CLI for the code indexing service",
	Long: `indexdeck-cli is a command-line interface for a code indexing
service. It reports indexing status, manages the set of monitored
directories, browses the server's filesystem, and runs semantic searches
against the index.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		client, err := indexer.New(indexer.WithBaseURL(serverURL))
		if err != nil {
			return err
		}
		svc = client
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cfg, _ = config.Load(config.Path())
	rootCmd.PersistentFlags().StringVarP(&serverURL, "server", "s", cfg.ServerURL, "indexing server URL")
}
