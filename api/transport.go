package api

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
)

// Send issues one POST to <base>/<version>/<class>/<function> with params as the form body
// and returns the raw response bytes.
func (s *Session) Send(ctx context.Context, class, function string, params Params) ([]byte, error) {
	if s.Authenticated() {
		params = append(params[:len(params):len(params)], Required(LoginTokenParam, s.loginToken))
	}

	endpoint := s.URL(class, function)
	body := params.Encode(s.Escapes())

	s.logger.WithFields(logrus.Fields{
		"class":    class,
		"function": function,
		"params":   params.Present(),
	}).Debug("sending request")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(body))
	if err != nil {
		return nil, &TransportError{URL: endpoint, Err: err}
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	s.setHeaders(req)

	return s.do(req)
}

// Get issues one GET to rawURL with query appended. It is used by the legacy news feed.
func (s *Session) Get(ctx context.Context, rawURL string, query url.Values) ([]byte, error) {
	target := rawURL
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	s.logger.WithField("url", target).Debug("sending request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &TransportError{URL: target, Err: err}
	}

	s.setHeaders(req)
	return s.do(req)
}

func (s *Session) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set(HeaderAPIKey, s.apiKey)
	req.Header.Set("Accept", "application/json")
}

func (s *Session) do(req *http.Request) ([]byte, error) {
	endpoint := req.URL.String()

	resp, err := s.doer.Do(req)
	if err != nil {
		return nil, &TransportError{URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: endpoint, Status: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{URL: endpoint, Status: resp.StatusCode, Err: errUnexpectedStatus}
	}

	return raw, nil
}
