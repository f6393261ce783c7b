// Package anime provides access to the streams of anime episodes.
package anime

import (
	"context"

	"github.com/Ceeox/proxer-go/api"
	"github.com/Ceeox/proxer-go/enum"
)

const class = "anime"

// Stream is a hoster stream of one episode.
type Stream struct {
	ID        uint64 `json:"id"`
	HostType  string `json:"type"`
	Name      string `json:"name"`
	Image     string `json:"img"`
	Uploader  uint64 `json:"uploader"`
	Username  string `json:"username"`
	Timestamp int64  `json:"timestamp"`
	TID       uint64 `json:"tid"`
	TName     string `json:"tname"`
	HType     string `json:"htype"`
}

func (Stream) RequiredKeys() []string {
	return []string{"id", "type"}
}

// ProxerStream is a stream hosted by Proxer itself. Its translator group id is sent as a string.
type ProxerStream struct {
	ID        uint64 `json:"id"`
	HostType  string `json:"type"`
	Name      string `json:"name"`
	Image     string `json:"img"`
	Uploader  uint64 `json:"uploader"`
	Username  string `json:"username"`
	Timestamp int64  `json:"timestamp"`
	TID       string `json:"tid"`
	TName     string `json:"tname"`
	HType     string `json:"htype"`
}

func (ProxerStream) RequiredKeys() []string {
	return []string{"id", "type"}
}

// GetStreams lists the streams of an episode in the given language.
func GetStreams(ctx context.Context, s *api.Session, id, episode uint64, language enum.Language) ([]Stream, error) {
	return api.Call[[]Stream](ctx, s, class, "streams", episodeParams(id, episode, language))
}

// GetProxerStreams lists only the streams hosted by Proxer.
func GetProxerStreams(ctx context.Context, s *api.Session, id, episode uint64, language enum.Language) ([]ProxerStream, error) {
	return api.Call[[]ProxerStream](ctx, s, class, "proxerstreams", episodeParams(id, episode, language))
}

// GetLink resolves a stream id to the embeddable hoster link.
func GetLink(ctx context.Context, s *api.Session, id uint64) (string, error) {
	return api.Call[string](ctx, s, class, "link", api.Params{
		api.Required("id", id),
	})
}

func episodeParams(id, episode uint64, language enum.Language) api.Params {
	return api.Params{
		api.Required("id", id),
		api.Required("episode", episode),
		api.Required("language", language),
	}
}
