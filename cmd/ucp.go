package cmd

import (
	"context"

	"github.com/Ceeox/proxer-go/api"
	"github.com/Ceeox/proxer-go/enum"
	"github.com/Ceeox/proxer-go/ucp"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(ucpCmd)

	list := endpoint("list", "List the entries on your lists", cobra.NoArgs, func(ctx context.Context, s *api.Session, cmd *cobra.Command, _ []string) (any, error) {
		return ucp.GetList(ctx, s, ucp.ListOptions{
			Category:    optEnum(cmd, "category", enum.ParseCategory, enum.CategoryValues()),
			Page:        optUint(cmd, "page"),
			Limit:       optUint(cmd, "limit"),
			Search:      optString(cmd, "search"),
			SearchStart: optString(cmd, "search-start"),
			Sort:        optEnum(cmd, "sort", enum.ParseSort, enum.SortValues()),
		})
	})
	enumFlag(list, "category", "Category to list", enum.CategoryValues())
	list.Flags().String("search", "", "Only names containing this")
	list.Flags().String("search-start", "", "Only names starting with this")
	enumFlag(list, "sort", "Sort order", enum.SortValues())
	pageFlags(list)

	listSum := endpoint("listsum", "Show the number of watched episodes or read chapters", cobra.NoArgs, func(ctx context.Context, s *api.Session, cmd *cobra.Command, _ []string) (any, error) {
		return ucp.GetListSum(ctx, s, optEnum(cmd, "category", enum.ParseCategory, enum.CategoryValues()))
	})
	enumFlag(listSum, "category", "Category to sum", enum.CategoryValues())

	history := endpoint("history", "List your recently watched and read episodes", cobra.NoArgs, func(ctx context.Context, s *api.Session, cmd *cobra.Command, _ []string) (any, error) {
		return ucp.GetHistory(ctx, s, ucp.HistoryOptions{
			Limit: optUint(cmd, "limit"),
			Page:  optUint(cmd, "page"),
		})
	})
	pageFlags(history)

	reminders := endpoint("reminders", "List your bookmarks", cobra.NoArgs, func(ctx context.Context, s *api.Session, cmd *cobra.Command, _ []string) (any, error) {
		return ucp.GetReminders(ctx, s, ucp.ReminderOptions{
			Category: optEnum(cmd, "category", enum.ParseCategory, enum.CategoryValues()),
			Page:     optUint(cmd, "page"),
			Limit:    optUint(cmd, "limit"),
		})
	})
	enumFlag(reminders, "category", "Category to list", enum.CategoryValues())
	pageFlags(reminders)

	commentState := action("comment-state <id> <episode>", "Set the progress of a list entry", "progress updated", cobra.ExactArgs(2), func(ctx context.Context, s *api.Session, _ *cobra.Command, args []string) error {
		return ucp.SetCommentState(ctx, s, uintArg(args, 0, "id"), uintArg(args, 1, "episode"))
	})

	setReminder := action("set-reminder <id> <episode>", "Bookmark an episode or chapter", "bookmark set", cobra.ExactArgs(2), func(ctx context.Context, s *api.Session, cmd *cobra.Command, args []string) error {
		return ucp.SetReminder(ctx, s,
			uintArg(args, 0, "id"),
			uintArg(args, 1, "episode"),
			lo.Must(cmd.Flags().GetString("language")),
			optEnum(cmd, "category", enum.ParseCategory, enum.CategoryValues()).MustGet(),
		)
	})
	setReminder.Flags().String("language", "", "Language of the episode or chapter, e.g. gersub or de")
	enumFlag(setReminder, "category", "Category of the entry", enum.CategoryValues())
	lo.Must0(setReminder.MarkFlagRequired("language"))
	lo.Must0(setReminder.MarkFlagRequired("category"))

	ucpCmd.AddCommand(
		list,
		listSum,
		noArgs("topten", "List your favourites", ucp.GetTopTen),
		history,
		noArgs("votes", "List the reviews you voted for", ucp.GetVotes),
		reminders,
		deleteAction("delete-reminder", "Delete a bookmark", ucp.DeleteReminder),
		deleteAction("delete-favorite", "Remove an entry from your favourites", ucp.DeleteFavorite),
		deleteAction("delete-vote", "Withdraw a vote", ucp.DeleteVote),
		commentState,
		setReminder,
	)
}

var ucpCmd = &cobra.Command{
	Use:   "ucp",
	Short: "Your lists, history, bookmarks and votes. Requires login",
}

func deleteAction(use, short string, fn func(context.Context, *api.Session, uint64) error) *cobra.Command {
	return action(use+" <id>", short, "deleted", cobra.ExactArgs(1), func(ctx context.Context, s *api.Session, _ *cobra.Command, args []string) error {
		return fn(ctx, s, uintArg(args, 0, "id"))
	})
}
