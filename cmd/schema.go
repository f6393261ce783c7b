package cmd

import (
	"encoding/json"
	"sort"

	"github.com/Ceeox/proxer-go/anime"
	"github.com/Ceeox/proxer-go/info"
	"github.com/Ceeox/proxer-go/list"
	"github.com/Ceeox/proxer-go/manga"
	"github.com/Ceeox/proxer-go/media"
	"github.com/Ceeox/proxer-go/messenger"
	"github.com/Ceeox/proxer-go/news"
	"github.com/Ceeox/proxer-go/notification"
	"github.com/Ceeox/proxer-go/ucp"
	"github.com/Ceeox/proxer-go/user"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// schemaTypes names the payload types a schema can be generated for.
var schemaTypes = map[string]any{
	"anime.stream":             anime.Stream{},
	"anime.proxerstream":       anime.ProxerStream{},
	"info.fullentry":           info.FullEntry{},
	"info.entry":               info.Entry{},
	"info.name":                info.Name{},
	"info.season":              info.Season{},
	"info.group":               info.Group{},
	"info.publisher":           info.Publisher{},
	"info.listinfo":            info.ListInfo{},
	"info.comment":             info.Comment{},
	"info.relation":            info.Relation{},
	"info.tag":                 info.EntryTag{},
	"info.translatorgroup":     info.TranslatorGroup{},
	"info.industry":            info.Industry{},
	"list.searchentry":         list.SearchEntry{},
	"list.entry":               list.ListEntry{},
	"list.tagids":              list.TagIDs{},
	"list.tag":                 list.Tag{},
	"list.translatorgroup":     list.TranslatorGroup{},
	"list.industry":            list.Industry{},
	"list.groupproject":        list.TranslatorGroupProject{},
	"list.industryproject":     list.IndustryProject{},
	"manga.chapter":            manga.Chapter{},
	"media.header":             media.Header{},
	"messenger.constants":      messenger.Constants{},
	"messenger.conference":     messenger.Conference{},
	"messenger.conferenceinfo": messenger.ConferenceInfo{},
	"messenger.userinfo":       messenger.UserInfo{},
	"messenger.message":        messenger.Message{},
	"notification.news":        notification.News{},
	"ucp.entry":                ucp.ListEntry{},
	"ucp.topten":               ucp.TopTenEntry{},
	"ucp.history":              ucp.HistoryEntry{},
	"ucp.vote":                 ucp.Vote{},
	"ucp.reminder":             ucp.Reminder{},
	"user.credentials":         user.Credentials{},
	"user.info":                user.Info{},
	"user.topten":              user.TopTenEntry{},
	"user.entry":               user.ListEntry{},
	"user.comment":             user.LatestComment{},
	"news.notification":        news.Notification{},
}

func schemaNames() []string {
	names := lo.Keys(schemaTypes)
	sort.Strings(names)
	return names
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.ValidArgsFunction = func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return completeValues(schemaNames())(cmd, args, toComplete)
	}
}

var schemaCmd = &cobra.Command{
	Use:   "schema [type]",
	Short: "Print the JSON schema of a payload type",
	Long:  "Print the JSON schema of a payload type. Without a type the known types are listed.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			for _, name := range schemaNames() {
				cmd.Println(name)
			}
			return
		}

		schema, err := generateSchema(args[0])
		handleErr(err)

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(schema))
	},
}

func generateSchema(name string) (*jsonschema.Schema, error) {
	value, ok := schemaTypes[name]
	if !ok {
		return nil, errUnknownValue("type", name, schemaNames())
	}

	reflector := jsonschema.Reflector{
		ExpandedStruct:            true,
		AllowAdditionalProperties: true,
	}
	return reflector.Reflect(value), nil
}
