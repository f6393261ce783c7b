// Package ucp provides the user control panel: the lists, history, votes and reminders of the logged-in user.
package ucp

import (
	"context"

	"github.com/Ceeox/proxer-go/api"
	"github.com/Ceeox/proxer-go/enum"
	"github.com/samber/mo"
)

const class = "ucp"

// ListEntry is an entry on the user's list together with the user's progress and comment.
type ListEntry struct {
	ID      uint64      `json:"id"`
	Name    string      `json:"name"`
	Count   uint64      `json:"count"`
	Medium  enum.Medium `json:"medium"`
	EState  string      `json:"estate"`
	CID     uint64      `json:"cid"`
	Comment string      `json:"comment"`
	State   string      `json:"state"`
	Episode uint64      `json:"episode"`
	Data    string      `json:"data"`
	Rating  float32     `json:"rating"`
}

// TopTenEntry is one of the user's favourites.
type TopTenEntry struct {
	EID      uint64        `json:"eid"`
	Name     string        `json:"name"`
	Category enum.Category `json:"kat"`
	Medium   enum.Medium   `json:"medium"`
}

// HistoryEntry is an episode or chapter the user opened.
type HistoryEntry struct {
	EID       uint64        `json:"eid"`
	Name      string        `json:"name"`
	Language  string        `json:"language"`
	Medium    enum.Medium   `json:"medium"`
	Category  enum.Category `json:"kat"`
	Episode   uint64        `json:"episode"`
	Timestamp int64         `json:"timestamp"`
}

// Vote is a comment the user voted for.
type Vote struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	UID      uint64 `json:"uid"`
	Username string `json:"username"`
	KID      uint64 `json:"kid"`
	Comment  string `json:"comment"`
	Rating   string `json:"rating"`
	Type     string `json:"type"`
}

// Reminder is a bookmark on an episode or chapter.
type Reminder struct {
	EID      uint64        `json:"eid"`
	Category enum.Category `json:"kat"`
	Name     string        `json:"name"`
	Episode  uint64        `json:"episode"`
	Language string        `json:"language"`
	Medium   enum.Medium   `json:"medium"`
	ID       uint64        `json:"id"`
	State    string        `json:"state"`
}

// ListOptions filters and sorts the user's list.
type ListOptions struct {
	Category    mo.Option[enum.Category]
	Page        mo.Option[uint64]
	Limit       mo.Option[uint64]
	Search      mo.Option[string]
	SearchStart mo.Option[string]
	Sort        mo.Option[enum.Sort]
}

// HistoryOptions selects a page of the history.
type HistoryOptions struct {
	Limit mo.Option[uint64]
	Page  mo.Option[uint64]
}

// ReminderOptions selects a page of the reminders of one category.
type ReminderOptions struct {
	Category mo.Option[enum.Category]
	Page     mo.Option[uint64]
	Limit    mo.Option[uint64]
}

func GetList(ctx context.Context, s *api.Session, opts ListOptions) ([]ListEntry, error) {
	return api.Call[[]ListEntry](ctx, s, class, "list", api.Params{
		api.Optional("kat", opts.Category),
		api.Optional("p", opts.Page),
		api.Optional("limit", opts.Limit),
		api.Optional("search", opts.Search),
		api.Optional("search_start", opts.SearchStart),
		api.Optional("sort", opts.Sort),
	})
}

// GetListSum returns the number of watched episodes or read chapters.
func GetListSum(ctx context.Context, s *api.Session, category mo.Option[enum.Category]) (string, error) {
	return api.Call[string](ctx, s, class, "listsum", api.Params{
		api.Optional("kat", category),
	})
}

func GetTopTen(ctx context.Context, s *api.Session) ([]TopTenEntry, error) {
	return api.Call[[]TopTenEntry](ctx, s, class, "topten", nil)
}

func GetHistory(ctx context.Context, s *api.Session, opts HistoryOptions) ([]HistoryEntry, error) {
	return api.Call[[]HistoryEntry](ctx, s, class, "history", api.Params{
		api.Optional("limit", opts.Limit),
		api.Optional("p", opts.Page),
	})
}

func GetVotes(ctx context.Context, s *api.Session) ([]Vote, error) {
	return api.Call[[]Vote](ctx, s, class, "votes", nil)
}

func GetReminders(ctx context.Context, s *api.Session, opts ReminderOptions) ([]Reminder, error) {
	return api.Call[[]Reminder](ctx, s, class, "reminder", api.Params{
		api.Optional("kat", opts.Category),
		api.Optional("p", opts.Page),
		api.Optional("limit", opts.Limit),
	})
}

func DeleteReminder(ctx context.Context, s *api.Session, id uint64) error {
	return api.Exec(ctx, s, class, "deletereminder", byID(id))
}

func DeleteFavorite(ctx context.Context, s *api.Session, id uint64) error {
	return api.Exec(ctx, s, class, "deletefavorite", byID(id))
}

func DeleteVote(ctx context.Context, s *api.Session, id uint64) error {
	return api.Exec(ctx, s, class, "deletevote", byID(id))
}

// SetCommentState sets the progress of list entry id to value episodes or chapters.
func SetCommentState(ctx context.Context, s *api.Session, id, value uint64) error {
	return api.Exec(ctx, s, class, "setcommentstate", api.Params{
		api.Required("id", id),
		api.Required("value", value),
	})
}

// SetReminder bookmarks episode of entry id. language is a stream language such as
// gersub for anime or a manga language such as de.
func SetReminder(ctx context.Context, s *api.Session, id, episode uint64, language string, category enum.Category) error {
	return api.Exec(ctx, s, class, "setreminder", api.Params{
		api.Required("id", id),
		api.Required("episode", episode),
		api.Required("language", language),
		api.Required("kat", category),
	})
}

func byID(id uint64) api.Params {
	return api.Params{api.Required("id", id)}
}
