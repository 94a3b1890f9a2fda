package dohdns

// Dns is the main entry point for DNS over HTTPS resolution.
//
// It queries the configured servers in order, applying the per-status retry
// policy, and returns typed answer records. A single Dns value is safe for
// concurrent use: the server list and record-type registry are immutable
// after construction, and the transport client is required to tolerate
// concurrent calls.
type Dns struct {
	// client performs the HTTPS GET against a DoH endpoint
	client DnsClient

	// servers is the ordered failover list; position is priority
	servers []Server

	// logger is the structured logging interface (no-op by default)
	logger Logger
}

// Logger provides structured logging throughout the resolution process.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Error(msg string, err error, fields ...Field)
}

// Field represents a structured logging field (key-value pair).
// Used to attach context to log messages.
type Field struct {
	Key   string
	Value interface{}
}

// noopLogger is the default logger that silently discards all log messages.
// This allows the library to have zero logging overhead when not needed.
type noopLogger struct{}

func (noopLogger) Debug(msg string, fields ...Field)            {}
func (noopLogger) Info(msg string, fields ...Field)             {}
func (noopLogger) Error(msg string, err error, fields ...Field) {}

// New creates a new Dns with the given options.
//
// Default configuration:
//
//   - Servers: DefaultServers() (Google with a 3s timeout, then Cloudflare
//     with a 10s timeout)
//   - Client: HTTPDnsClient (HTTPS-only, TLS 1.2+)
//   - Logger: no-op (no logging)
//
// Servers are tried in the given order. If a request fails on the first one,
// each subsequent server is tried; only certain failures advance to the next
// server, such as a connection failure or specific HTTP status codes.
//
// New fails with ErrNoServers when an explicitly configured server list is
// empty.
//
// Example:
//
//	dns, err := New(
//	    WithServers(GoogleServer(2*time.Second), CloudflareServer(10*time.Second)),
//	    WithLogger(myLogger),
//	)
func New(opts ...Option) (*Dns, error) {
	d := &Dns{
		logger: noopLogger{},
	}

	for _, opt := range opts {
		opt(d)
	}

	if d.servers == nil {
		d.servers = DefaultServers()
	}
	if len(d.servers) == 0 {
		return nil, ErrNoServers
	}
	if d.client == nil {
		d.client = NewHTTPDnsClient()
	}

	return d, nil
}
