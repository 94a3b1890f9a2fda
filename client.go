package dohdns

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"strings"
)

// DnsClient performs the HTTPS GET against a DoH endpoint.
//
// This abstraction keeps the failover engine testable with deterministic
// fakes. Implementations must be safe for concurrent use and must honor
// context cancellation; an abandoned in-flight request is expected to release
// its own resources.
type DnsClient interface {
	// Get requests the given query URL and returns the raw HTTP response.
	// A returned error means the request never produced an HTTP status
	// (connection failure, timeout, cancellation).
	Get(ctx context.Context, url string) (*http.Response, error)
}

// HTTPDnsClient is the production DnsClient built on net/http.
//
// It only speaks HTTPS and sets the Accept header required by the JSON DoH
// API. The underlying transport resolves endpoint hostnames through the
// system resolver, which matters for providers like Google whose JSON API is
// served on dns.google but not on the 8.8.8.8 literal.
type HTTPDnsClient struct {
	// Client is the underlying HTTP client. Replace it to customize TLS
	// or proxy settings; the default enforces TLS 1.2 or newer.
	Client *http.Client
}

// NewHTTPDnsClient returns an HTTPDnsClient with a connection-pooling
// transport shared by all resolve calls.
func NewHTTPDnsClient() *HTTPDnsClient {
	return &HTTPDnsClient{
		Client: &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					MinVersion: tls.VersionTLS12,
				},
				ForceAttemptHTTP2: true,
			},
		},
	}
}

// Get implements DnsClient.
func (c *HTTPDnsClient) Get(ctx context.Context, url string) (*http.Response, error) {
	if !strings.HasPrefix(url, "https://") {
		return nil, fmt.Errorf("refusing non-HTTPS url %q", url)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	// DoH servers require the Accept header to select the JSON API.
	req.Header.Set("Accept", "application/dns-json")

	return c.Client.Do(req)
}
