// Package news reads the legacy news feed, which predates API v1 and uses its own envelope.
package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/Ceeox/proxer-go/api"
	"github.com/samber/mo"
	"github.com/tidwall/gjson"
)

// Envelope is the wrapper of the legacy feed. Message is only sent on failure.
type Envelope struct {
	Error         int             `json:"error"`
	Message       *string         `json:"message,omitempty"`
	Notifications *[]Notification `json:"notifications,omitempty"`
}

// Notification is one news article of the legacy feed.
type Notification struct {
	NID         uint64 `json:"nid"`
	Time        int64  `json:"time"`
	Description string `json:"description"`
	ImageID     uint64 `json:"image_id"`
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

func (n Notification) ImageURL() string {
	return fmt.Sprintf("http://cdn.proxer.me/news/%d_%d.png", n.NID, n.ImageID)
}

func (n Notification) ThreadURL() string {
	return fmt.Sprintf("http://proxer.me/forum/%d/%d", n.CatID, n.Thread)
}

// Fetch loads one page of the feed from the session's news URL.
func Fetch(ctx context.Context, s *api.Session, page uint64) ([]Notification, error) {
	raw, err := s.Get(ctx, s.NewsURL(), url.Values{
		"format": {"json"},
		"s":      {"news"},
		"p":      {strconv.FormatUint(page, 10)},
	})
	if err != nil {
		return nil, err
	}

	var envelope Envelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("news: %w", &api.DecodeError{Size: len(raw), Err: err})
	}

	if !gjson.GetBytes(raw, "error").Exists() {
		err := fmt.Errorf("%w %q", api.ErrMissingField, "error")
		return nil, fmt.Errorf("news: %w", &api.DecodeError{Size: len(raw), Err: err})
	}

	var message string
	if envelope.Message != nil {
		message = *envelope.Message
	}

	if envelope.Error != 0 {
		err := api.Classify(envelope.Error, mo.None[int](), message)
		s.Logger().WithField("endpoint", "news").Error(message)
		return nil, err
	}

	notifications, err := api.Require(envelope.Notifications)
	if err != nil {
		return nil, fmt.Errorf("news: %w", err)
	}

	return notifications, nil
}
