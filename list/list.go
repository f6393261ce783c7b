// Package list provides the search and listing endpoints used to discover entry ids.
package list

import (
	"context"

	"github.com/Ceeox/proxer-go/api"
	"github.com/Ceeox/proxer-go/enum"
	"github.com/samber/mo"
)

const class = "list"

// SearchOptions are the filters of the extended search. Every filter is optional.
type SearchOptions struct {
	Name             mo.Option[string]
	Language         mo.Option[enum.MangaLanguage]
	Type             mo.Option[enum.Medium]
	Genre            mo.Option[string]
	NoGenre          mo.Option[string]
	FSK              mo.Option[string]
	Sort             mo.Option[enum.SearchSort]
	Length           mo.Option[uint64]
	LengthLimit      mo.Option[enum.LengthLimit]
	Tags             mo.Option[string]
	NoTags           mo.Option[string]
	TagRateFilter    mo.Option[string]
	TagSpoilerFilter mo.Option[string]
	Page             mo.Option[uint64]
	Limit            mo.Option[uint64]
}

// EntryListOptions restricts a category listing.
type EntryListOptions struct {
	Category mo.Option[enum.Category]
	Medium   mo.Option[enum.Medium]
	IsH      mo.Option[bool]
	Start    mo.Option[string]
	Page     mo.Option[uint64]
	Limit    mo.Option[uint64]
}

// TagOptions filters and sorts the tag list.
type TagOptions struct {
	Search   mo.Option[string]
	Type     mo.Option[string]
	Sort     mo.Option[string]
	SortType mo.Option[string]
	Subtype  mo.Option[enum.TagSubType]
}

// GroupOptions filters the translator group directory.
type GroupOptions struct {
	Start    mo.Option[string]
	Contains mo.Option[string]
	Page     mo.Option[uint64]
	Limit    mo.Option[uint64]
}

// IndustryOptions filters the company directory.
type IndustryOptions struct {
	Start    mo.Option[string]
	Contains mo.Option[string]
	Country  mo.Option[string]
	Type     mo.Option[enum.Company]
	Page     mo.Option[uint64]
	Limit    mo.Option[uint64]
}

// GroupProjectOptions filters the projects of a translator group.
// IsH is -1 for no hentai, 0 for both and 1 for hentai only.
type GroupProjectOptions struct {
	Status mo.Option[enum.TranslationStatus]
	IsH    mo.Option[int8]
	Page   mo.Option[uint64]
	Limit  mo.Option[uint64]
}

// IndustryProjectOptions filters the projects of a company.
type IndustryProjectOptions struct {
	Type  mo.Option[enum.Company]
	IsH   mo.Option[int8]
	Page  mo.Option[uint64]
	Limit mo.Option[uint64]
}

// SearchEntries runs the extended search.
func SearchEntries(ctx context.Context, s *api.Session, opts SearchOptions) ([]SearchEntry, error) {
	return api.Call[[]SearchEntry](ctx, s, class, "entrysearch", api.Params{
		api.Optional("name", opts.Name),
		api.Optional("language", opts.Language),
		api.Optional("type", opts.Type),
		api.Optional("genre", opts.Genre),
		api.Optional("nogenre", opts.NoGenre),
		api.Optional("fsk", opts.FSK),
		api.Optional("sort", opts.Sort),
		api.Optional("length", opts.Length),
		api.Optional("length-limit", opts.LengthLimit),
		api.Optional("tags", opts.Tags),
		api.Optional("notags", opts.NoTags),
		api.Optional("tagratefilter", opts.TagRateFilter),
		api.Optional("tagspoilerfilter", opts.TagSpoilerFilter),
		api.Optional("p", opts.Page),
		api.Optional("limit", opts.Limit),
	})
}

// GetEntryList lists the entries of a category.
func GetEntryList(ctx context.Context, s *api.Session, opts EntryListOptions) ([]ListEntry, error) {
	return api.Call[[]ListEntry](ctx, s, class, "entrylist", api.Params{
		api.Optional("kat", opts.Category),
		api.Optional("medium", opts.Medium),
		api.Optional("isH", opts.IsH),
		api.Optional("start", opts.Start),
		api.Optional("p", opts.Page),
		api.Optional("limit", opts.Limit),
	})
}

// GetTagIDs extracts the ids of the tags named in search.
// Tags are separated by spaces; a leading "-" moves a tag to NoTags.
func GetTagIDs(ctx context.Context, s *api.Session, search string) (TagIDs, error) {
	return api.Call[TagIDs](ctx, s, class, "tagids", api.Params{
		api.Required("search", search),
	})
}

func GetTags(ctx context.Context, s *api.Session, opts TagOptions) ([]Tag, error) {
	return api.Call[[]Tag](ctx, s, class, "tags", api.Params{
		api.Optional("search", opts.Search),
		api.Optional("type", opts.Type),
		api.Optional("sort", opts.Sort),
		api.Optional("sort_type", opts.SortType),
		api.Optional("subtype", opts.Subtype),
	})
}

func GetTranslatorGroups(ctx context.Context, s *api.Session, opts GroupOptions) ([]TranslatorGroup, error) {
	return api.Call[[]TranslatorGroup](ctx, s, class, "translatorgroups", api.Params{
		api.Optional("start", opts.Start),
		api.Optional("contains", opts.Contains),
		api.Optional("p", opts.Page),
		api.Optional("limit", opts.Limit),
	})
}

func GetIndustries(ctx context.Context, s *api.Session, opts IndustryOptions) ([]Industry, error) {
	return api.Call[[]Industry](ctx, s, class, "industrys", api.Params{
		api.Optional("start", opts.Start),
		api.Optional("contains", opts.Contains),
		api.Optional("country", opts.Country),
		api.Optional("type", opts.Type),
		api.Optional("p", opts.Page),
		api.Optional("limit", opts.Limit),
	})
}

// GetTranslatorGroupProjects lists the entries of the translator group id.
func GetTranslatorGroupProjects(ctx context.Context, s *api.Session, id uint64, opts GroupProjectOptions) ([]TranslatorGroupProject, error) {
	return api.Call[[]TranslatorGroupProject](ctx, s, class, "translatorgroupprojects", api.Params{
		api.Required("id", id),
		api.Optional("type", opts.Status),
		api.Optional("isH", opts.IsH),
		api.Optional("p", opts.Page),
		api.Optional("limit", opts.Limit),
	})
}

// GetIndustryProjects lists the entries of the company id.
func GetIndustryProjects(ctx context.Context, s *api.Session, id uint64, opts IndustryProjectOptions) ([]IndustryProject, error) {
	return api.Call[[]IndustryProject](ctx, s, class, "industryprojects", api.Params{
		api.Required("id", id),
		api.Optional("type", opts.Type),
		api.Optional("isH", opts.IsH),
		api.Optional("p", opts.Page),
		api.Optional("limit", opts.Limit),
	})
}
