package dohdns

// Option is a function that configures a Dns.
//
// This package uses the functional options pattern, which provides:
// 1. Sensible defaults - you can create a Dns with just New()
// 2. Flexible configuration - add only the options you need
// 3. Backward compatibility - new options don't break existing code
// 4. Clear intent - each option function name documents what it does
type Option func(*Dns)

// WithServers sets the DoH servers to query, in failover order.
//
// The first server is always tried first; each subsequent server is only
// contacted when the previous one fails with a retryable error. New fails
// with ErrNoServers when the list is empty.
//
// Example:
//
//	dns, err := New(
//	    WithServers(
//	        NewServer("https://dns.internal.corp/resolve", 1*time.Second),
//	        CloudflareServer(10*time.Second),
//	    ),
//	)
func WithServers(servers ...Server) Option {
	return func(d *Dns) {
		d.servers = append([]Server{}, servers...)
	}
}

// WithClient sets the transport client used to reach the DoH endpoints.
//
// The client must be safe for concurrent use. This is mainly useful for
// injecting a deterministic fake in tests, or an *http.Client with a custom
// TLS setup in production.
//
// Default is HTTPDnsClient if not specified.
func WithClient(c DnsClient) Option {
	return func(d *Dns) {
		d.client = c
	}
}

// WithLogger sets a custom logger for debugging and monitoring.
//
// The logger receives structured log events about failed server attempts
// (including the query URL) before the engine advances on to the next server.
// Useful for diagnosing which servers in a failover chain are unhealthy.
//
// Default is a no-op logger that discards all log messages.
func WithLogger(l Logger) Option {
	return func(d *Dns) {
		d.logger = l
	}
}
