package cmd

import (
	"context"

	"github.com/Ceeox/proxer-go/api"
	"github.com/Ceeox/proxer-go/enum"
	"github.com/Ceeox/proxer-go/info"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(infoCmd)

	listInfo := endpoint("listinfo <id>", "List the episodes or chapters of an entry", cobra.ExactArgs(1), func(ctx context.Context, s *api.Session, cmd *cobra.Command, args []string) (any, error) {
		return info.GetListInfo(ctx, s, uintArg(args, 0, "id"), info.PageOptions{
			Page:  optUint(cmd, "page"),
			Limit: optUint(cmd, "limit"),
		})
	})
	pageFlags(listInfo)

	comments := endpoint("comments <id>", "List the reviews of an entry", cobra.ExactArgs(1), func(ctx context.Context, s *api.Session, cmd *cobra.Command, args []string) (any, error) {
		return info.GetComments(ctx, s, uintArg(args, 0, "id"), info.CommentOptions{
			Page:  optUint(cmd, "page"),
			Limit: optUint(cmd, "limit"),
			Sort:  optEnum(cmd, "sort", enum.ParseSort, enum.SortValues()),
		})
	})
	pageFlags(comments)
	enumFlag(comments, "sort", "Sort order", enum.SortValues())

	setUserInfo := action("mark <id>", "Put an entry on one of your lists", "entry marked", cobra.ExactArgs(1), func(ctx context.Context, s *api.Session, cmd *cobra.Command, args []string) error {
		watch := optEnum(cmd, "type", enum.ParseWatchType, enum.WatchTypeValues()).MustGet()
		return info.SetUserInfo(ctx, s, uintArg(args, 0, "id"), watch)
	})
	enumFlag(setUserInfo, "type", "List to put the entry on", enum.WatchTypeValues())
	lo.Must0(setUserInfo.MarkFlagRequired("type"))

	page := &cobra.Command{
		Use:   "open <id>",
		Short: "Open the page of an entry in the browser",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			launch(cmd, info.PageURL(uintArg(args, 0, "id")))
		},
	}

	infoCmd.AddCommand(
		byID("entry", "Show the core data of an entry", info.GetEntry),
		byID("fullentry", "Show an entry with names, seasons, groups, publishers and tags", info.GetFullEntry),
		byID("names", "List the alternative names of an entry", info.GetNames),
		byID("gate", "Show whether an entry is age-restricted", info.GetGate),
		byID("lang", "List the languages an entry is available in", info.GetLanguages),
		byID("seasons", "List the seasons of an entry", info.GetSeasons),
		byID("groups", "List the translator groups of an entry", info.GetGroups),
		byID("publishers", "List the publishers of an entry", info.GetPublishers),
		byID("relations", "List the entries related to an entry", info.GetRelations),
		byID("tags", "List the tags of an entry", info.GetEntryTags),
		byID("translatorgroup", "Show a translator group", info.GetTranslatorGroup),
		byID("industry", "Show an industry member", info.GetIndustry),
		listInfo,
		comments,
		setUserInfo,
		page,
	)
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Details of anime and manga entries",
}
