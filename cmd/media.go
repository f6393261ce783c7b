package cmd

import (
	"context"

	"github.com/Ceeox/proxer-go/api"
	"github.com/Ceeox/proxer-go/media"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(mediaCmd)

	randomHeader := endpoint("header", "Show a random header image", cobra.NoArgs, func(ctx context.Context, s *api.Session, cmd *cobra.Command, _ []string) (any, error) {
		header, err := media.GetRandomHeader(ctx, s, optString(cmd, "style"))
		if err != nil {
			return nil, err
		}

		return struct {
			media.Header
			URL string `json:"url"`
		}{header, header.PictureURL()}, nil
	})
	randomHeader.Flags().String("style", "", "Header style, e.g. gray, black or old_blue")

	mediaCmd.AddCommand(randomHeader, noArgs("headers", "List every header image", media.GetHeaderList))
}

var mediaCmd = &cobra.Command{
	Use:   "media",
	Short: "Header images",
}
