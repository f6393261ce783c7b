// Package manga provides access to uploaded manga chapters.
package manga

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/Ceeox/proxer-go/api"
	"github.com/Ceeox/proxer-go/enum"
)

const class = "manga"

// ErrPageOutOfRange is returned by PageURL for an index outside of Pages.
var ErrPageOutOfRange = errors.New("page index out of range")

// Chapter is an uploaded chapter with the names and dimensions of its pages.
type Chapter struct {
	CID       uint64 `json:"cid"`
	EID       uint64 `json:"eid"`
	Title     string `json:"title"`
	Uploader  uint64 `json:"uploader"`
	Username  string `json:"username"`
	Timestamp int64  `json:"timestamp"`
	TID       uint64 `json:"tid"`
	TName     string `json:"tname"`
	Server    uint32 `json:"server"`
	Pages     []Page `json:"pages"`
}

// RequiredKeys lists the members PageURL depends on.
func (Chapter) RequiredKeys() []string {
	return []string{"cid", "eid", "server", "pages"}
}

// Page is one image of a chapter. On the wire it is a [name, height, width] triple.
type Page struct {
	Name   string
	Height int
	Width  int
}

func (p *Page) UnmarshalJSON(b []byte) error {
	var triple []json.RawMessage
	if err := json.Unmarshal(b, &triple); err != nil {
		return err
	}

	if len(triple) != 3 {
		return fmt.Errorf("page: expected 3 elements, got %d", len(triple))
	}

	name, err := scalar(triple[0])
	if err != nil {
		return fmt.Errorf("page name: %w", err)
	}

	height, err := number(triple[1])
	if err != nil {
		return fmt.Errorf("page height: %w", err)
	}

	width, err := number(triple[2])
	if err != nil {
		return fmt.Errorf("page width: %w", err)
	}

	*p = Page{Name: name, Height: height, Width: width}
	return nil
}

func (p Page) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{p.Name, p.Height, p.Width})
}

// PageURL returns the image location of the page at index i.
func (c Chapter) PageURL(i int) (string, error) {
	if i < 0 || i >= len(c.Pages) {
		return "", fmt.Errorf("%w: %d of %d", ErrPageOutOfRange, i, len(c.Pages))
	}

	return fmt.Sprintf(
		"https://manga%d.proxer.me/f/%d/%d/%s",
		c.Server,
		c.EID,
		c.CID,
		url.PathEscape(c.Pages[i].Name),
	), nil
}

// PageURLs returns the image locations of every page in order.
func (c Chapter) PageURLs() []string {
	urls := make([]string, len(c.Pages))
	for i := range c.Pages {
		urls[i], _ = c.PageURL(i)
	}
	return urls
}

// GetChapter fetches chapter episode of the manga id in the given language.
func GetChapter(ctx context.Context, s *api.Session, id, episode uint64, language enum.MangaLanguage) (Chapter, error) {
	return api.Call[Chapter](ctx, s, class, "chapter", api.Params{
		api.Required("id", id),
		api.Required("episode", episode),
		api.Required("language", language),
	})
}

// scalar reads a JSON string or number as text.
func scalar(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", err
	}
	return n.String(), nil
}

// number reads a JSON number, possibly quoted, as an int.
func number(raw json.RawMessage) (int, error) {
	s, err := scalar(raw)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(s)
}
