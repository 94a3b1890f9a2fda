// Copyright 2025 Bruno Schaatsbergen. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dohdns resolves DNS records over HTTPS using the JSON API offered
// by public DoH providers such as Google and Cloudflare.
//
// Servers are tried in the order they are configured, each with its own
// timeout. Connection failures and retryable HTTP statuses (429, 500, 502,
// 504) advance to the next server; client-side HTTP errors and DNS-level
// error statuses fail the call immediately.
//
// # Usage
//
// The zero-configuration default queries Google first (3s timeout) and falls
// back to Cloudflare (10s timeout):
//
//	dns, err := dohdns.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	answers, err := dns.ResolveA(ctx, "example.com")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, a := range answers {
//	    fmt.Printf("name: %s, type: %s, TTL: %d, data: %s\n",
//	        a.Name, dohdns.TypeToName(a.Type), a.TTL, a.Data)
//	}
//
// Custom server orderings are built from the provider constructors or from
// arbitrary endpoints:
//
//	dns, err := dohdns.New(
//	    dohdns.WithServers(
//	        dohdns.GoogleServer(2*time.Second),
//	        dohdns.CloudflareServer(10*time.Second),
//	    ),
//	)
//
// Note: Cloudflare does not answer ANY queries; use the Google endpoint for
// those.
package dohdns
