// Package info provides the detail endpoints of anime and manga entries.
package info

import (
	"context"

	"github.com/Ceeox/proxer-go/api"
	"github.com/Ceeox/proxer-go/enum"
	"github.com/samber/mo"
)

const class = "info"

// PageOptions selects one page of a paginated result.
type PageOptions struct {
	Page  mo.Option[uint64]
	Limit mo.Option[uint64]
}

// CommentOptions filters the comments of an entry.
type CommentOptions struct {
	Page  mo.Option[uint64]
	Limit mo.Option[uint64]
	Sort  mo.Option[enum.Sort]
}

func byID(id uint64) api.Params {
	return api.Params{api.Required("id", id)}
}

// GetFullEntry fetches an entry with every attached list.
func GetFullEntry(ctx context.Context, s *api.Session, id uint64) (FullEntry, error) {
	return api.Call[FullEntry](ctx, s, class, "fullentry", byID(id))
}

// GetEntry fetches the core data of an entry.
func GetEntry(ctx context.Context, s *api.Session, id uint64) (Entry, error) {
	return api.Call[Entry](ctx, s, class, "entry", byID(id))
}

// GetNames lists the alternative titles of an entry.
func GetNames(ctx context.Context, s *api.Session, id uint64) ([]Name, error) {
	return api.Call[[]Name](ctx, s, class, "names", byID(id))
}

// GetGate reports whether an entry is behind the adult content gate.
func GetGate(ctx context.Context, s *api.Session, id uint64) (bool, error) {
	return api.Call[bool](ctx, s, class, "gate", byID(id))
}

// GetLanguages lists the languages an entry is available in.
func GetLanguages(ctx context.Context, s *api.Session, id uint64) ([]string, error) {
	return api.Call[[]string](ctx, s, class, "lang", byID(id))
}

// GetSeasons lists the airing seasons of an entry.
func GetSeasons(ctx context.Context, s *api.Session, id uint64) ([]Season, error) {
	return api.Call[[]Season](ctx, s, class, "season", byID(id))
}

// GetGroups lists the translator groups of an entry.
func GetGroups(ctx context.Context, s *api.Session, id uint64) ([]Group, error) {
	return api.Call[[]Group](ctx, s, class, "groups", byID(id))
}

// GetPublishers lists the companies involved with an entry.
func GetPublishers(ctx context.Context, s *api.Session, id uint64) ([]Publisher, error) {
	return api.Call[[]Publisher](ctx, s, class, "publisher", byID(id))
}

// GetListInfo fetches a page of the episode or chapter list.
func GetListInfo(ctx context.Context, s *api.Session, id uint64, opts PageOptions) (ListInfo, error) {
	return api.Call[ListInfo](ctx, s, class, "listinfo", api.Params{
		api.Required("id", id),
		api.Optional("p", opts.Page),
		api.Optional("limit", opts.Limit),
	})
}

// GetComments fetches the reviews of an entry.
func GetComments(ctx context.Context, s *api.Session, id uint64, opts CommentOptions) ([]Comment, error) {
	return api.Call[[]Comment](ctx, s, class, "comments", api.Params{
		api.Required("id", id),
		api.Optional("p", opts.Page),
		api.Optional("limit", opts.Limit),
		api.Optional("sort", opts.Sort),
	})
}

// GetRelations lists the entries related to an entry.
func GetRelations(ctx context.Context, s *api.Session, id uint64) ([]Relation, error) {
	return api.Call[[]Relation](ctx, s, class, "relations", byID(id))
}

// GetEntryTags lists the tags of an entry.
func GetEntryTags(ctx context.Context, s *api.Session, id uint64) ([]EntryTag, error) {
	return api.Call[[]EntryTag](ctx, s, class, "entrytag", byID(id))
}

// GetTranslatorGroup fetches a translator group profile.
func GetTranslatorGroup(ctx context.Context, s *api.Session, id uint64) (TranslatorGroup, error) {
	return api.Call[TranslatorGroup](ctx, s, class, "translatorgroup", byID(id))
}

// GetIndustry fetches a company profile.
func GetIndustry(ctx context.Context, s *api.Session, id uint64) (Industry, error) {
	return api.Call[Industry](ctx, s, class, "industry", byID(id))
}

// SetUserInfo puts an entry on one of the logged-in user's lists.
func SetUserInfo(ctx context.Context, s *api.Session, id uint64, watch enum.WatchType) error {
	return api.Exec(ctx, s, class, "setuserinfo", api.Params{
		api.Required("id", id),
		api.Required("type", watch),
	})
}
