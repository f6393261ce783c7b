package cmd

import (
	"context"

	"github.com/Ceeox/proxer-go/api"
	"github.com/Ceeox/proxer-go/notification"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(notificationCmd)

	news := endpoint("news", "List the news", cobra.NoArgs, func(ctx context.Context, s *api.Session, cmd *cobra.Command, _ []string) (any, error) {
		return notification.GetNews(ctx, s, notification.NewsOptions{
			Page:  optUint(cmd, "page"),
			Limit: optUint(cmd, "limit"),
		})
	})
	pageFlags(news)

	remove := action("delete", "Delete notifications", "notifications deleted", cobra.NoArgs, func(ctx context.Context, s *api.Session, cmd *cobra.Command, _ []string) error {
		return notification.Delete(ctx, s, optUint(cmd, "nid"))
	})
	remove.Flags().Uint64("nid", 0, "Delete only this notification. All read notifications when omitted")

	notificationCmd.AddCommand(
		noArgs("count", "Show the number of unread notifications", notification.GetCount),
		news,
		remove,
	)
}

var notificationCmd = &cobra.Command{
	Use:     "notification",
	Aliases: []string{"notifications"},
	Short:   "Notifications and news. Requires login",
}
