package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"indexdeck/internal/application/directories"
)

var dirsCmd = &cobra.Command{
	Use:   "dirs",
	Short: "Manage monitored directories",
}

var dirsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List monitored directories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, basePath, err := svc.Directories(context.Background())
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			fmt.Println("No directories are monitored")
			return nil
		}
		for _, p := range paths {
			fmt.Println(p)
		}
		if basePath != "" {
			fmt.Printf("\nbrowse root: %s\n", basePath)
		}
		return nil
	},
}

var dirsAddCmd = &cobra.Command{
	Use:   "add <path>",
	Short: "Add a directory to the monitored set",
	Long: `Add a directory to the monitored set and persist the full set to the
server. Adding an already-monitored path is reported and makes no change.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		add := directories.NewAddCommand(svc, args[0])
		paths, err := add.Execute(context.Background())
		if errors.Is(err, directories.ErrDuplicatePath) {
			fmt.Printf("%s is already monitored\n", args[0])
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Printf("Added %s (%d directories monitored)\n", args[0], len(paths))
		return nil
	},
}

var dirsRemoveCmd = &cobra.Command{
	Use:   "remove <path>",
	Short: "Remove a directory and clean up its indexed data",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		remove := directories.NewRemoveCommand(svc, args[0])
		deleted, err := remove.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Printf("Removed %s, cleaned up %d indexed files\n", args[0], deleted)
		return nil
	},
}

func init() {
	dirsCmd.AddCommand(dirsListCmd)
	dirsCmd.AddCommand(dirsAddCmd)
	dirsCmd.AddCommand(dirsRemoveCmd)
	rootCmd.AddCommand(dirsCmd)
}
