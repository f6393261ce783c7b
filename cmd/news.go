package cmd

import (
	"context"

	"github.com/Ceeox/proxer-go/api"
	"github.com/Ceeox/proxer-go/news"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newsCmd)
	newsCmd.Flags().Uint64P("page", "p", 0, "Page to load, starting at 0")
}

var newsCmd = endpoint("news", "Read the legacy news feed", cobra.NoArgs, func(ctx context.Context, s *api.Session, cmd *cobra.Command, _ []string) (any, error) {
	return news.Fetch(ctx, s, lo.Must(cmd.Flags().GetUint64("page")))
})
