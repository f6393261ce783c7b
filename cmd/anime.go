package cmd

import (
	"context"

	"github.com/Ceeox/proxer-go/anime"
	"github.com/Ceeox/proxer-go/api"
	"github.com/Ceeox/proxer-go/enum"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(animeCmd)

	streams := endpoint("streams <id> <episode>", "List the streams of an episode", cobra.ExactArgs(2), func(ctx context.Context, s *api.Session, cmd *cobra.Command, args []string) (any, error) {
		var (
			id       = uintArg(args, 0, "id")
			episode  = uintArg(args, 1, "episode")
			language = optEnum(cmd, "language", enum.ParseLanguage, enum.LanguageValues()).MustGet()
		)

		if lo.Must(cmd.Flags().GetBool("proxer")) {
			return anime.GetProxerStreams(ctx, s, id, episode, language)
		}
		return anime.GetStreams(ctx, s, id, episode, language)
	})
	enumFlag(streams, "language", "Language of the episode", enum.LanguageValues())
	lo.Must0(streams.MarkFlagRequired("language"))
	streams.Flags().Bool("proxer", false, "Only list streams hosted by Proxer")

	link := &cobra.Command{
		Use:   "link <stream-id>",
		Short: "Resolve a stream to its hoster link",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			link, err := anime.GetLink(cmd.Context(), session(), uintArg(args, 0, "stream id"))
			handleErr(err)

			if !openLink(cmd, link) {
				render(cmd, link)
			}
		},
	}
	link.Flags().Bool("open", false, "Open the link in the browser")

	animeCmd.AddCommand(streams, link)
}

var animeCmd = &cobra.Command{
	Use:   "anime",
	Short: "Streams of anime episodes",
}
