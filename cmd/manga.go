package cmd

import (
	"context"

	"github.com/Ceeox/proxer-go/api"
	"github.com/Ceeox/proxer-go/enum"
	"github.com/Ceeox/proxer-go/manga"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(mangaCmd)

	chapter := endpoint("chapter <id> <episode>", "Show a chapter with its pages", cobra.ExactArgs(2), func(ctx context.Context, s *api.Session, cmd *cobra.Command, args []string) (any, error) {
		language := optEnum(cmd, "language", enum.ParseMangaLanguage, enum.MangaLanguageValues()).MustGet()

		chapter, err := manga.GetChapter(ctx, s, uintArg(args, 0, "id"), uintArg(args, 1, "episode"), language)
		if err != nil {
			return nil, err
		}

		if lo.Must(cmd.Flags().GetBool("urls")) {
			return chapter.PageURLs(), nil
		}
		return chapter, nil
	})
	enumFlag(chapter, "language", "Language of the chapter", enum.MangaLanguageValues())
	lo.Must0(chapter.MarkFlagRequired("language"))
	chapter.Flags().BoolP("urls", "u", false, "Print only the image URLs of the pages")

	mangaCmd.AddCommand(chapter)
}

var mangaCmd = &cobra.Command{
	Use:   "manga",
	Short: "Manga chapters",
}
