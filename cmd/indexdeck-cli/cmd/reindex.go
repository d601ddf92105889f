package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var reindexCmd = &cobra.Command{
	Use:   "reindex",
	Short: "Trigger a full reindex",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := svc.Reindex(context.Background()); err != nil {
			return err
		}
		fmt.Println("Reindex started")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reindexCmd)
}
