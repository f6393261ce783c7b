// Package media provides the header images of the Proxer gallery.
package media

import (
	"context"
	"fmt"

	"github.com/Ceeox/proxer-go/api"
	"github.com/samber/mo"
)

const class = "media"

// Header is a gallery header image.
type Header struct {
	GID         uint64 `json:"gid"`
	CatPath     string `json:"catpath"`
	ImgFilename string `json:"imgfilename"`
}

func (Header) RequiredKeys() []string {
	return []string{"gid", "catpath", "imgfilename"}
}

// PictureURL returns the location of the original image.
func (h Header) PictureURL() string {
	return fmt.Sprintf("https://cdn.proxer.me/gallery/originals/%s/%s", h.CatPath, h.ImgFilename)
}

// GetRandomHeader picks a random header, optionally restricted to a style such as "gray" or "black".
func GetRandomHeader(ctx context.Context, s *api.Session, style mo.Option[string]) (Header, error) {
	return api.Call[Header](ctx, s, class, "randomheader", api.Params{
		api.Optional("style", style),
	})
}

// GetHeaderList lists every header.
func GetHeaderList(ctx context.Context, s *api.Session) ([]Header, error) {
	return api.Call[[]Header](ctx, s, class, "headerlist", nil)
}
