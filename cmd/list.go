package cmd

import (
	"context"

	"github.com/Ceeox/proxer-go/api"
	"github.com/Ceeox/proxer-go/enum"
	"github.com/Ceeox/proxer-go/list"
	"github.com/Ceeox/proxer-go/log"
	"github.com/Ceeox/proxer-go/query"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)

	search := endpoint("search [name]", "Search anime and manga", cobra.MaximumNArgs(1), func(ctx context.Context, s *api.Session, cmd *cobra.Command, args []string) (any, error) {
		entries, err := list.SearchEntries(ctx, s, searchOptions(cmd, args))
		if err == nil && len(args) > 0 {
			if err := query.Remember(args[0], 1); err != nil {
				log.Warn(err)
			}
		}
		return entries, err
	})
	searchFlags(search)

	entries := endpoint("entries", "List the entries of a category", cobra.NoArgs, func(ctx context.Context, s *api.Session, cmd *cobra.Command, _ []string) (any, error) {
		return list.GetEntryList(ctx, s, list.EntryListOptions{
			Category: optEnum(cmd, "category", enum.ParseCategory, enum.CategoryValues()),
			Medium:   optEnum(cmd, "medium", enum.ParseMedium, enum.MediumValues()),
			IsH:      optBool(cmd, "hentai"),
			Start:    optString(cmd, "start"),
			Page:     optUint(cmd, "page"),
			Limit:    optUint(cmd, "limit"),
		})
	})
	enumFlag(entries, "category", "Category to list", enum.CategoryValues())
	enumFlag(entries, "medium", "Medium to list", enum.MediumValues())
	entries.Flags().Bool("hentai", false, "Include adult entries")
	entries.Flags().String("start", "", "Only entries whose name starts with this")
	pageFlags(entries)

	tagIDs := endpoint("tagids <search>", "Resolve tag names to ids", cobra.ExactArgs(1), func(ctx context.Context, s *api.Session, _ *cobra.Command, args []string) (any, error) {
		return list.GetTagIDs(ctx, s, args[0])
	})

	tags := endpoint("tags", "List tags", cobra.NoArgs, func(ctx context.Context, s *api.Session, cmd *cobra.Command, _ []string) (any, error) {
		return list.GetTags(ctx, s, list.TagOptions{
			Search:   optString(cmd, "search"),
			Type:     optString(cmd, "type"),
			Sort:     optString(cmd, "sort"),
			SortType: optString(cmd, "sort-type"),
			Subtype:  optEnum(cmd, "subtype", enum.ParseTagSubType, enum.TagSubTypeValues()),
		})
	})
	tags.Flags().String("search", "", "Search in tag names and descriptions")
	tags.Flags().String("type", "", "Tag type: entry_genre, entry_tag, entry_tag_h or gallery")
	tags.Flags().String("sort", "", "Sort by id, tag or type")
	tags.Flags().String("sort-type", "", "ASC or DESC")
	enumFlag(tags, "subtype", "Tag sub-type", enum.TagSubTypeValues())

	groups := endpoint("groups", "List translator groups", cobra.NoArgs, func(ctx context.Context, s *api.Session, cmd *cobra.Command, _ []string) (any, error) {
		return list.GetTranslatorGroups(ctx, s, list.GroupOptions{
			Start:    optString(cmd, "start"),
			Contains: optString(cmd, "contains"),
			Page:     optUint(cmd, "page"),
			Limit:    optUint(cmd, "limit"),
		})
	})
	groups.Flags().String("start", "", "Only names starting with this")
	groups.Flags().String("contains", "", "Only names containing this")
	pageFlags(groups)

	industries := endpoint("industries", "List industry members", cobra.NoArgs, func(ctx context.Context, s *api.Session, cmd *cobra.Command, _ []string) (any, error) {
		return list.GetIndustries(ctx, s, list.IndustryOptions{
			Start:    optString(cmd, "start"),
			Contains: optString(cmd, "contains"),
			Country:  optString(cmd, "country"),
			Type:     optEnum(cmd, "type", enum.ParseCompany, enum.CompanyValues()),
			Page:     optUint(cmd, "page"),
			Limit:    optUint(cmd, "limit"),
		})
	})
	industries.Flags().String("start", "", "Only names starting with this")
	industries.Flags().String("contains", "", "Only names containing this")
	industries.Flags().String("country", "", "Country code")
	enumFlag(industries, "type", "Industry type", enum.CompanyValues())
	pageFlags(industries)

	groupProjects := endpoint("group-projects <id>", "List the projects of a translator group", cobra.ExactArgs(1), func(ctx context.Context, s *api.Session, cmd *cobra.Command, args []string) (any, error) {
		return list.GetTranslatorGroupProjects(ctx, s, uintArg(args, 0, "id"), list.GroupProjectOptions{
			Status: optEnum(cmd, "status", enum.ParseTranslationStatus, enum.TranslationStatusValues()),
			IsH:    optInt8(cmd, "hentai"),
			Page:   optUint(cmd, "page"),
			Limit:  optUint(cmd, "limit"),
		})
	})
	enumFlag(groupProjects, "status", "Translation status", enum.TranslationStatusValues())
	groupProjects.Flags().Int8("hentai", 0, "-1 hides, 0 includes and 1 only shows adult entries")
	pageFlags(groupProjects)

	industryProjects := endpoint("industry-projects <id>", "List the projects of an industry member", cobra.ExactArgs(1), func(ctx context.Context, s *api.Session, cmd *cobra.Command, args []string) (any, error) {
		return list.GetIndustryProjects(ctx, s, uintArg(args, 0, "id"), list.IndustryProjectOptions{
			Type:  optEnum(cmd, "type", enum.ParseCompany, enum.CompanyValues()),
			IsH:   optInt8(cmd, "hentai"),
			Page:  optUint(cmd, "page"),
			Limit: optUint(cmd, "limit"),
		})
	})
	enumFlag(industryProjects, "type", "Role of the industry member", enum.CompanyValues())
	industryProjects.Flags().Int8("hentai", 0, "-1 hides, 0 includes and 1 only shows adult entries")
	pageFlags(industryProjects)

	listCmd.AddCommand(search, entries, tagIDs, tags, groups, industries, groupProjects, industryProjects)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Search and list entries, tags, groups and industry",
}

// searchFlags registers the entry search filters. browse shares them.
func searchFlags(cmd *cobra.Command) {
	enumFlag(cmd, "language", "Language of the entry", enum.MangaLanguageValues())
	enumFlag(cmd, "type", "Medium of the entry", enum.MediumValues())
	cmd.Flags().String("genre", "", "Space separated genres the entry must have")
	cmd.Flags().String("no-genre", "", "Space separated genres the entry must not have")
	cmd.Flags().String("fsk", "", "Space separated age ratings")
	enumFlag(cmd, "sort", "Sort order", enum.SearchSortValues())
	cmd.Flags().Uint64("length", 0, "Episode or chapter count")
	enumFlag(cmd, "length-limit", "Whether length is an upper or lower bound", enum.LengthLimitValues())
	cmd.Flags().String("tags", "", "Space separated tag ids the entry must have")
	cmd.Flags().String("no-tags", "", "Space separated tag ids the entry must not have")
	cmd.Flags().String("tag-rate-filter", "", "rate_1 or rate_10")
	cmd.Flags().String("tag-spoiler-filter", "", "spoiler_0, spoiler_10 or spoiler_1")
	pageFlags(cmd)
	cmd.ValidArgsFunction = completeQueries
}

func completeQueries(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
}

func searchOptions(cmd *cobra.Command, args []string) list.SearchOptions {
	name := mo.None[string]()
	if len(args) > 0 {
		name = mo.Some(args[0])
	}

	return list.SearchOptions{
		Name:             name,
		Language:         optEnum(cmd, "language", enum.ParseMangaLanguage, enum.MangaLanguageValues()),
		Type:             optEnum(cmd, "type", enum.ParseMedium, enum.MediumValues()),
		Genre:            optString(cmd, "genre"),
		NoGenre:          optString(cmd, "no-genre"),
		FSK:              optString(cmd, "fsk"),
		Sort:             optEnum(cmd, "sort", enum.ParseSearchSort, enum.SearchSortValues()),
		Length:           optUint(cmd, "length"),
		LengthLimit:      optEnum(cmd, "length-limit", enum.ParseLengthLimit, enum.LengthLimitValues()),
		Tags:             optString(cmd, "tags"),
		NoTags:           optString(cmd, "no-tags"),
		TagRateFilter:    optString(cmd, "tag-rate-filter"),
		TagSpoilerFilter: optString(cmd, "tag-spoiler-filter"),
		Page:             optUint(cmd, "page"),
		Limit:            optUint(cmd, "limit"),
	}
}
