// Package messenger provides the conferences and messages of the logged-in user.
// Every operation needs a session carrying a login token.
package messenger

import (
	"context"

	"github.com/Ceeox/proxer-go/api"
	"github.com/Ceeox/proxer-go/enum"
	"github.com/samber/mo"
)

const class = "messenger"

// ConferencesOptions selects a page of one conference folder.
type ConferencesOptions struct {
	Type mo.Option[enum.ConferenceType]
	Page mo.Option[uint64]
}

// MessagesOptions selects the messages to load. Without a conference the newest
// messages across all conferences are returned. MessageID loads the messages before it.
type MessagesOptions struct {
	ConferenceID mo.Option[uint64]
	MessageID    mo.Option[uint64]
	MarkRead     mo.Option[bool]
}

func GetConstants(ctx context.Context, s *api.Session) (Constants, error) {
	return api.Call[Constants](ctx, s, class, "constants", nil)
}

func GetConferences(ctx context.Context, s *api.Session, opts ConferencesOptions) ([]Conference, error) {
	return api.Call[[]Conference](ctx, s, class, "conferences", api.Params{
		api.Optional("type", opts.Type),
		api.Optional("p", opts.Page),
	})
}

func GetConferenceInfo(ctx context.Context, s *api.Session, conferenceID uint64) (ConferenceInfo, error) {
	return api.Call[ConferenceInfo](ctx, s, class, "conferenceinfo", byConference(conferenceID))
}

func GetUserInfo(ctx context.Context, s *api.Session, userID uint64) (UserInfo, error) {
	return api.Call[UserInfo](ctx, s, class, "userinfo", api.Params{
		api.Required("user_id", userID),
	})
}

func GetMessages(ctx context.Context, s *api.Session, opts MessagesOptions) ([]Message, error) {
	return api.Call[[]Message](ctx, s, class, "messages", api.Params{
		api.Optional("conference_id", opts.ConferenceID),
		api.Optional("message_id", opts.MessageID),
		api.Optional("read", opts.MarkRead),
	})
}

// NewConference starts a private conversation with username and returns its conference id.
func NewConference(ctx context.Context, s *api.Session, username, text string) (uint64, error) {
	return api.Call[uint64](ctx, s, class, "newconference", api.Params{
		api.Required("username", username),
		api.Required("text", text),
	})
}

// NewConferenceGroup starts a group with users and returns its conference id.
func NewConferenceGroup(ctx context.Context, s *api.Session, users []string, topic string, text mo.Option[string]) (uint64, error) {
	return api.Call[uint64](ctx, s, class, "newconferencegroup", api.Params{
		api.Required("users", users),
		api.Required("topic", topic),
		api.Optional("text", text),
	})
}

// Report flags a conference to the moderators with the reason text.
func Report(ctx context.Context, s *api.Session, conferenceID uint64, text string) error {
	return api.Exec(ctx, s, class, "report", api.Params{
		api.Required("conference_id", conferenceID),
		api.Required("text", text),
	})
}

// SetMessage posts text to a conference. The returned string is the server's
// answer to chat commands such as /help and is empty for plain messages.
func SetMessage(ctx context.Context, s *api.Session, conferenceID uint64, text string) (string, error) {
	return api.Call[string](ctx, s, class, "setmessage", api.Params{
		api.Required("conference_id", conferenceID),
		api.Required("text", text),
	})
}

func SetRead(ctx context.Context, s *api.Session, conferenceID uint64) error {
	return api.Exec(ctx, s, class, "setread", byConference(conferenceID))
}

func SetUnread(ctx context.Context, s *api.Session, conferenceID uint64) error {
	return api.Exec(ctx, s, class, "setunread", byConference(conferenceID))
}

func SetBlock(ctx context.Context, s *api.Session, conferenceID uint64) error {
	return api.Exec(ctx, s, class, "setblock", byConference(conferenceID))
}

func SetUnblock(ctx context.Context, s *api.Session, conferenceID uint64) error {
	return api.Exec(ctx, s, class, "setunblock", byConference(conferenceID))
}

func SetFavour(ctx context.Context, s *api.Session, conferenceID uint64) error {
	return api.Exec(ctx, s, class, "setfavour", byConference(conferenceID))
}

func SetUnfavour(ctx context.Context, s *api.Session, conferenceID uint64) error {
	return api.Exec(ctx, s, class, "setunfavour", byConference(conferenceID))
}

func byConference(id uint64) api.Params {
	return api.Params{api.Required("conference_id", id)}
}
