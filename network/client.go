// Package network builds the HTTP clients the CLI hands to api sessions.
package network

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"time"

	"golang.org/x/net/publicsuffix"
)

// Transport names accepted by New.
const (
	TransportStd    = "std"
	TransportUTLS   = "utls"
	TransportUTLSH2 = "utls-h2"
)

// Transports lists the names accepted by New.
func Transports() []string {
	return []string{TransportStd, TransportUTLS, TransportUTLSH2}
}

// New returns a client using the named transport and a cookie jar that keeps the
// login cookies between requests. The client sets no timeout; callers cancel through the request context.
func New(transport string) (*http.Client, error) {
	var rt http.RoundTripper

	switch transport {
	case TransportStd, "":
		rt = newTransport()
	case TransportUTLS:
		rt = newUTLSTransport()
	case TransportUTLSH2:
		rt = newUTLSH2Transport()
	default:
		return nil, fmt.Errorf("unknown transport %q, expected one of %v", transport, Transports())
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, err
	}

	return &http.Client{Transport: rt, Jar: jar}, nil
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 10
	t.MaxIdleConnsPerHost = 10
	t.IdleConnTimeout = 30 * time.Second
	return t
}
