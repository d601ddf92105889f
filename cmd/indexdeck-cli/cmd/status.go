package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show indexing status",
	Long:  `Fetch the service's current indexing status: file, entity, and chunk counts, plus progress when indexing is active.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		snapshot, err := svc.Status(context.Background())
		if err != nil {
			return err
		}

		fmt.Printf("state:         %s\n", snapshot.ConnState())
		fmt.Printf("files:         %d/%d indexed (%d pending)\n",
			snapshot.IndexedFiles, snapshot.TotalFiles, snapshot.PendingFiles)
		fmt.Printf("entities:      %d\n", snapshot.EntitiesCount)
		fmt.Printf("relationships: %d\n", snapshot.RelationshipsCount)
		fmt.Printf("chunks:        %d\n", snapshot.ChunksCount)
		if snapshot.ShowProgress() {
			fmt.Printf("progress:      %d%%\n", snapshot.ProgressPercent())
		}
		if snapshot.IsIndexing && snapshot.CurrentFile != "" {
			fmt.Printf("indexing:      %s\n", snapshot.CurrentFile)
		}
		if snapshot.LastIndexed != "" {
			fmt.Printf("last indexed:  %s\n", snapshot.LastIndexed)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
