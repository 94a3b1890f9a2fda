// Copyright 2025 Bruno Schaatsbergen. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dohdns

import "time"

// Server is a DoH endpoint paired with the timeout applied to each request
// against it. Servers are immutable once constructed and are tried in the
// order they are passed to WithServers.
type Server struct {
	endpoint string
	timeout  time.Duration
}

// NewServer returns a Server for an arbitrary JSON DoH endpoint.
//
// The endpoint is the base query URL without parameters, e.g.
// "https://dns.google/resolve". The timeout bounds every individual request
// to this server; it is not a budget for the whole resolve call.
func NewServer(endpoint string, timeout time.Duration) Server {
	return Server{endpoint: endpoint, timeout: timeout}
}

// Endpoint returns the base query URL of the server.
func (s Server) Endpoint() string { return s.endpoint }

// Timeout returns the per-request timeout of the server.
func (s Server) Timeout() time.Duration { return s.timeout }

// Predefined public JSON DoH endpoints.
//
// These are the providers known to implement the application/dns-json API.
// Note that Cloudflare rejects ANY queries while Google answers them.
const (
	// Google Public DNS. The endpoint hostname must be resolved by the
	// transport; Google does not serve the JSON API on its 8.8.8.8 literal.
	GoogleEndpoint = "https://dns.google/resolve"

	// Cloudflare Public DNS (1.1.1.1)
	CloudflareEndpoint = "https://cloudflare-dns.com/dns-query"

	// Quad9 Public DNS
	Quad9Endpoint = "https://dns.quad9.net:5053/dns-query"
)

// GoogleServer returns the Google Public DNS endpoint with the given timeout.
func GoogleServer(timeout time.Duration) Server {
	return NewServer(GoogleEndpoint, timeout)
}

// CloudflareServer returns the Cloudflare endpoint with the given timeout.
func CloudflareServer(timeout time.Duration) Server {
	return NewServer(CloudflareEndpoint, timeout)
}

// Quad9Server returns the Quad9 endpoint with the given timeout.
func Quad9Server(timeout time.Duration) Server {
	return NewServer(Quad9Endpoint, timeout)
}

// DefaultServers returns the standard two-server setup used by New when no
// servers are configured: Google with a 3 second timeout, then Cloudflare
// with a 10 second timeout.
func DefaultServers() []Server {
	return []Server{
		GoogleServer(3 * time.Second),
		CloudflareServer(10 * time.Second),
	}
}
