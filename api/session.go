// Package api provides the request pipeline shared by every Proxer endpoint:
// session configuration, form body encoding, transport, envelope decoding and
// error classification.
package api

import (
	"net/http"
	"strings"

	"github.com/Ceeox/proxer-go/constant"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultBaseURL is the root of the Proxer API.
	DefaultBaseURL = "https://proxer.me/api"

	// DefaultVersion is the API version segment every endpoint path starts with.
	DefaultVersion = "v1"

	// DefaultNewsURL is the legacy, non-versioned news feed.
	DefaultNewsURL = "http://proxer.me/notifications"

	// HeaderAPIKey carries the API key on every request.
	HeaderAPIKey = "proxer-api-token"

	// LoginTokenParam is the implicit form parameter an authenticated session appends.
	LoginTokenParam = "token"
)

// Doer executes a single HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Session is the immutable configuration shared by all calls of one client.
// It is safe for concurrent use; derived sessions are created with copy-on-write helpers.
type Session struct {
	baseURL    string
	version    string
	userAgent  string
	apiKey     string
	newsURL    string
	loginToken string
	raw        bool
	doer       Doer
	logger     *logrus.Entry
}

// Option customizes a Session at construction time.
type Option func(*Session)

// WithBaseURL overrides the API root, e.g. to point at a test server.
func WithBaseURL(u string) Option {
	return func(s *Session) { s.baseURL = strings.TrimRight(u, "/") }
}

// WithVersion overrides the API version segment.
func WithVersion(v string) Option {
	return func(s *Session) { s.version = strings.Trim(v, "/") }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(s *Session) { s.userAgent = ua }
}

// WithDoer sets the HTTP client used for every request.
func WithDoer(d Doer) Option {
	return func(s *Session) { s.doer = d }
}

// WithRawParams disables percent-encoding of form values.
// Bodies are then written byte for byte, which corrupts values containing '&', '=' or non-ASCII text.
func WithRawParams(raw bool) Option {
	return func(s *Session) { s.raw = raw }
}

// WithNewsURL overrides the legacy news feed location.
func WithNewsURL(u string) Option {
	return func(s *Session) { s.newsURL = u }
}

// WithLogger sets the entry diagnostics are written to.
func WithLogger(l *logrus.Entry) Option {
	return func(s *Session) { s.logger = l }
}

// New creates a Session bound to apiKey.
func New(apiKey string, opts ...Option) *Session {
	s := &Session{
		baseURL:   DefaultBaseURL,
		version:   DefaultVersion,
		userAgent: constant.UserAgent,
		apiKey:    apiKey,
		newsURL:   DefaultNewsURL,
		doer:      http.DefaultClient,
		logger:    logrus.WithField("component", "api"),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithLoginToken returns a copy of the session that authenticates every call with token.
// The receiver is left untouched.
func (s *Session) WithLoginToken(token string) *Session {
	clone := *s
	clone.loginToken = token
	return &clone
}

// Authenticated reports whether the session carries a login token.
func (s *Session) Authenticated() bool {
	return s.loginToken != ""
}

// LoginToken returns the login token, or an empty string.
func (s *Session) LoginToken() string {
	return s.loginToken
}

// BaseURL returns the API root.
func (s *Session) BaseURL() string {
	return s.baseURL
}

// Version returns the API version segment.
func (s *Session) Version() string {
	return s.version
}

// UserAgent returns the User-Agent header value.
func (s *Session) UserAgent() string {
	return s.userAgent
}

// NewsURL returns the legacy news feed location.
func (s *Session) NewsURL() string {
	return s.newsURL
}

// Escapes reports whether form values are percent-encoded.
func (s *Session) Escapes() bool {
	return !s.raw
}

// Logger returns the diagnostics entry.
func (s *Session) Logger() *logrus.Entry {
	return s.logger
}

// URL returns the full endpoint address for class and function.
func (s *Session) URL(class, function string) string {
	return s.baseURL + "/" + s.version + "/" + class + "/" + function
}
