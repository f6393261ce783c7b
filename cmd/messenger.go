package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/Ceeox/proxer-go/api"
	"github.com/Ceeox/proxer-go/enum"
	"github.com/Ceeox/proxer-go/messenger"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(messengerCmd)

	conferences := endpoint("conferences", "List your conferences", cobra.NoArgs, func(ctx context.Context, s *api.Session, cmd *cobra.Command, _ []string) (any, error) {
		return messenger.GetConferences(ctx, s, messenger.ConferencesOptions{
			Type: optEnum(cmd, "type", enum.ParseConferenceType, enum.ConferenceTypeValues()),
			Page: optUint(cmd, "page"),
		})
	})
	enumFlag(conferences, "type", "Only conferences of this kind", enum.ConferenceTypeValues())
	conferences.Flags().Uint64P("page", "p", 0, "Page to load, starting at 0")

	userInfo := endpoint("user <user-id>", "Show the messenger profile of a user", cobra.ExactArgs(1), func(ctx context.Context, s *api.Session, _ *cobra.Command, args []string) (any, error) {
		return messenger.GetUserInfo(ctx, s, uintArg(args, 0, "user id"))
	})

	messages := endpoint("messages", "List messages, newest first", cobra.NoArgs, func(ctx context.Context, s *api.Session, cmd *cobra.Command, _ []string) (any, error) {
		return messenger.GetMessages(ctx, s, messenger.MessagesOptions{
			ConferenceID: optUint(cmd, "conference"),
			MessageID:    optUint(cmd, "before"),
			MarkRead:     optBool(cmd, "read"),
		})
	})
	messages.Flags().Uint64P("conference", "c", 0, "Conference to read. All conferences when omitted")
	messages.Flags().Uint64("before", 0, "Only messages older than this message id")
	messages.Flags().Bool("read", true, "Mark the conference as read")

	newConference := endpoint("new <username> <text>", "Start a conversation with a user", cobra.MinimumNArgs(2), func(ctx context.Context, s *api.Session, _ *cobra.Command, args []string) (any, error) {
		return messenger.NewConference(ctx, s, args[0], strings.Join(args[1:], " "))
	})

	newGroup := endpoint("new-group <topic>", "Start a group conference", cobra.ExactArgs(1), func(ctx context.Context, s *api.Session, cmd *cobra.Command, args []string) (any, error) {
		users := lo.Must(cmd.Flags().GetStringSlice("user"))
		return messenger.NewConferenceGroup(ctx, s, users, args[0], optString(cmd, "text"))
	})
	newGroup.Flags().StringSliceP("user", "u", nil, "Members of the conference")
	newGroup.Flags().StringP("text", "t", "", "First message")
	lo.Must0(newGroup.MarkFlagRequired("user"))

	report := action("report <conference-id> <reason>", "Report a conference to the moderators", "conference reported", cobra.MinimumNArgs(2), func(ctx context.Context, s *api.Session, _ *cobra.Command, args []string) error {
		return messenger.Report(ctx, s, uintArg(args, 0, "conference id"), strings.Join(args[1:], " "))
	})

	send := endpoint("send <conference-id> <text>", "Send a message", cobra.MinimumNArgs(2), func(ctx context.Context, s *api.Session, _ *cobra.Command, args []string) (any, error) {
		return messenger.SetMessage(ctx, s, uintArg(args, 0, "conference id"), strings.Join(args[1:], " "))
	})

	messengerCmd.AddCommand(
		noArgs("constants", "Show the limits of the messenger", messenger.GetConstants),
		conferences,
		byID("conference", "Show a conference and its members", messenger.GetConferenceInfo),
		userInfo,
		messages,
		newConference,
		newGroup,
		report,
		send,
		conferenceAction("read", "Mark a conference as read", messenger.SetRead),
		conferenceAction("unread", "Mark a conference as unread", messenger.SetUnread),
		conferenceAction("block", "Block a conference", messenger.SetBlock),
		conferenceAction("unblock", "Unblock a conference", messenger.SetUnblock),
		conferenceAction("favour", "Add a conference to your favourites", messenger.SetFavour),
		conferenceAction("unfavour", "Remove a conference from your favourites", messenger.SetUnfavour),
	)
}

var messengerCmd = &cobra.Command{
	Use:   "messenger",
	Short: "Conferences and messages. Requires login",
}

func conferenceAction(use, short string, fn func(context.Context, *api.Session, uint64) error) *cobra.Command {
	return action(use+" <conference-id>", short, fmt.Sprintf("conference marked %s", use), cobra.ExactArgs(1), func(ctx context.Context, s *api.Session, _ *cobra.Command, args []string) error {
		return fn(ctx, s, uintArg(args, 0, "conference id"))
	})
}
