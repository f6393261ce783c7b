// Package notification provides the notification counters and the news feed of the logged-in user.
package notification

import (
	"context"
	"fmt"

	"github.com/Ceeox/proxer-go/api"
	"github.com/samber/mo"
)

const class = "notifications"

// News is a news article announced in the notification feed.
type News struct {
	NID         uint64 `json:"nid"`
	Time        int64  `json:"time"`
	MID         uint64 `json:"mid"`
	Description string `json:"description"`
	ImageID     string `json:"image_id"`
	ImageStyle  string `json:"image_style"`
	Subject     string `json:"subject"`
	Hits        uint64 `json:"hits"`
	Thread      uint64 `json:"thread"`
	UID         uint64 `json:"uid"`
	Username    string `json:"uname"`
	Posts       uint64 `json:"posts"`
	CatID       uint64 `json:"catid"`
	CatName     string `json:"catname"`
}

func (News) RequiredKeys() []string {
	return []string{"nid", "image_id", "thread", "catid"}
}

// ImageURL returns the location of the article's teaser image.
func (n News) ImageURL() string {
	return fmt.Sprintf("https://cdn.proxer.me/news/%d_%s.png", n.NID, n.ImageID)
}

// ThreadURL returns the forum thread of the article.
func (n News) ThreadURL() string {
	return fmt.Sprintf("https://proxer.me/forum/%d/%d", n.CatID, n.Thread)
}

// NewsOptions selects a page of the news feed.
type NewsOptions struct {
	Page  mo.Option[uint64]
	Limit mo.Option[uint64]
}

// GetCount returns the unread counters as the comma separated string the API sends.
func GetCount(ctx context.Context, s *api.Session) (string, error) {
	return api.Call[string](ctx, s, class, "count", nil)
}

func GetNews(ctx context.Context, s *api.Session, opts NewsOptions) ([]News, error) {
	return api.Call[[]News](ctx, s, class, "news", api.Params{
		api.Optional("p", opts.Page),
		api.Optional("limit", opts.Limit),
	})
}

// Delete removes the notification nid, or every read notification when nid is absent.
func Delete(ctx context.Context, s *api.Session, nid mo.Option[uint64]) error {
	return api.Exec(ctx, s, class, "delete", api.Params{
		api.Optional("nid", nid),
	})
}
