package cmd

import (
	"strings"

	"github.com/Ceeox/proxer-go/tui"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(browseCmd)
	searchFlags(browseCmd)
}

var browseCmd = &cobra.Command{
	Use:   "browse [query]",
	Short: "Search entries interactively and read their details",
	Run: func(cmd *cobra.Command, args []string) {
		options := tui.Options{
			Session: session(),
			Query:   strings.Join(args, " "),
			Search:  searchOptions(cmd, nil),
		}

		handleErr(tui.Run(cmd.Context(), &options))
	},
}
