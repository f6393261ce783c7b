// Package apitest serves canned Proxer responses for the tests of the endpoint packages.
package apitest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"

	"github.com/Ceeox/proxer-go/api"
)

// Key is the API key sessions of a Server are created with.
const Key = "test-key"

// Routes maps "class/function" to the response body served for it.
// A route without a class, such as "notifications", matches the path verbatim.
type Routes map[string]string

// Request is a recorded request.
type Request struct {
	Method string
	Route  string
	Body   string
	Form   url.Values
	Header http.Header
}

// Server is an httptest server that records requests and serves canned envelopes per route.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	routes   Routes
	requests []Request
}

// NewServer starts a server answering with routes. Unknown routes get a 404.
func NewServer(routes Routes) *Server {
	s := &Server{routes: routes}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	return s
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	route := strings.Trim(r.URL.Path, "/")
	route = strings.TrimPrefix(route, api.DefaultVersion+"/")

	form, _ := url.ParseQuery(string(body))
	if r.Method == http.MethodGet {
		form = r.URL.Query()
	}

	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Method: r.Method,
		Route:  route,
		Body:   string(body),
		Form:   form,
		Header: r.Header.Clone(),
	})
	response, ok := s.routes[route]
	s.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = io.WriteString(w, response)
}

// Session returns a session pointed at the server.
func (s *Server) Session(opts ...api.Option) *api.Session {
	return api.New(Key, append([]api.Option{
		api.WithBaseURL(s.URL),
		api.WithNewsURL(s.URL + "/notifications"),
		api.WithDoer(s.Client()),
	}, opts...)...)
}

// Requests returns every request received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// Last returns the most recent request, or a zero Request.
func (s *Server) Last() Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Request{}
	}
	return s.requests[len(s.requests)-1]
}

// Set replaces the body served for route.
func (s *Server) Set(route, body string) {
	s.mu.Lock()
	s.routes[route] = body
	s.mu.Unlock()
}
