package network

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"time"

	utls "github.com/refraction-networking/utls"
	"golang.org/x/net/http2"
)

const dialTimeout = 30 * time.Second

// Proxer sits behind Cloudflare, which may challenge the Go TLS fingerprint.
// The utls transports present Chrome's Client Hello instead.
var fingerprint = utls.HelloChrome_120

// newUTLSTransport speaks HTTP/1.1 over a Chrome fingerprint that only advertises http/1.1.
func newUTLSTransport() *http.Transport {
	t := newTransport()
	t.DialTLSContext = dialTLSH1
	t.ForceAttemptHTTP2 = false
	return t
}

// newUTLSH2Transport speaks HTTP/2 over the unmodified Chrome fingerprint.
func newUTLSH2Transport() *http2.Transport {
	return &http2.Transport{
		DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
			return dialTLS(ctx, network, addr)
		},
	}
}

func dialTLS(ctx context.Context, network, addr string) (net.Conn, error) {
	conn, host, err := dial(ctx, network, addr)
	if err != nil {
		return nil, err
	}

	tlsConn := utls.UClient(conn, &utls.Config{
		ServerName: host,
		MinVersion: tls.VersionTLS12,
	}, fingerprint)

	return handshake(ctx, conn, tlsConn)
}

func dialTLSH1(ctx context.Context, network, addr string) (net.Conn, error) {
	conn, host, err := dial(ctx, network, addr)
	if err != nil {
		return nil, err
	}

	spec, err := utls.UTLSIdToSpec(fingerprint)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("client hello spec: %w", err)
	}

	for _, ext := range spec.Extensions {
		if alpn, ok := ext.(*utls.ALPNExtension); ok {
			alpn.AlpnProtocols = []string{"http/1.1"}
		}
	}

	tlsConn := utls.UClient(conn, &utls.Config{
		ServerName: host,
		MinVersion: tls.VersionTLS12,
	}, utls.HelloCustom)

	if err := tlsConn.ApplyPreset(&spec); err != nil {
		conn.Close()
		return nil, fmt.Errorf("apply client hello: %w", err)
	}

	return handshake(ctx, conn, tlsConn)
}

func dial(ctx context.Context, network, addr string) (net.Conn, string, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}

	dialer := &net.Dialer{Timeout: dialTimeout}
	conn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, "", err
	}

	return conn, host, nil
}

func handshake(ctx context.Context, conn net.Conn, tlsConn *utls.UConn) (net.Conn, error) {
	if err := tlsConn.HandshakeContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("tls handshake: %w", err)
	}
	return tlsConn, nil
}
