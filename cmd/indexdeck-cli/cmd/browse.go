package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"indexdeck/internal/domain"
)

var browseCmd = &cobra.Command{
	Use:   "browse [path]",
	Short: "List subdirectories on the server's filesystem",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfg.BrowseRoot
		if len(args) == 1 {
			path = args[0]
		}

		listing, err := svc.Browse(context.Background(), path)
		if err != nil {
			return err
		}

		dirs := domain.DirectoriesOnly(listing.Items)
		if len(dirs) == 0 {
			fmt.Println("No subdirectories")
			return nil
		}
		for _, d := range dirs {
			if d.CppFiles > 0 {
				fmt.Printf("%s  (%d C++ files)\n", d.Path, d.CppFiles)
			} else {
				fmt.Println(d.Path)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
