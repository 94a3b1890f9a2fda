package dohdns

import (
	"errors"
	"fmt"
)

var (
	// ErrNoServers is returned by New when an explicitly configured server
	// list is empty.
	ErrNoServers = errors.New("dohdns: no servers configured")

	// ErrInvalidRecordType is returned by ResolveType for a record-type
	// name outside the registry.
	ErrInvalidRecordType = errors.New("dohdns: invalid record type")
)

// QueryKind classifies a single server attempt failure.
type QueryKind int

const (
	// KindUnknown covers HTTP statuses outside the retry policy table.
	KindUnknown QueryKind = iota

	// KindInvalidName means the domain could not be encoded to ASCII.
	KindInvalidName

	// KindInvalidEndpoint means the configured endpoint produced a
	// malformed query URL. This is a configuration defect and aborts the
	// whole call.
	KindInvalidEndpoint

	// KindConnection covers transport failures and per-server timeouts.
	KindConnection

	// KindReadResponse means the body of a 200 response could not be read.
	KindReadResponse

	// KindParseResponse means the body of a 200 response was not a valid
	// JSON envelope.
	KindParseResponse

	// Terminal HTTP statuses. These indicate a malformed request that
	// every server would reject the same way, so they are never retried.
	KindBadRequest           // HTTP 400
	KindPayloadTooLarge      // HTTP 413
	KindURITooLong           // HTTP 414
	KindUnsupportedMediaType // HTTP 415
	KindNotImplemented       // HTTP 501

	// Retryable HTTP statuses. These are server-side or rate-limit
	// conditions that the next server in the list may not share.
	KindTooManyRequests     // HTTP 429
	KindInternalServerError // HTTP 500
	KindBadGateway          // HTTP 502
	KindResolverTimeout     // HTTP 504
)

var queryKindText = map[QueryKind]string{
	KindUnknown:              "unknown error",
	KindInvalidName:          "invalid name",
	KindInvalidEndpoint:      "invalid endpoint",
	KindConnection:           "connection failed",
	KindReadResponse:         "unable to read response",
	KindParseResponse:        "unable to parse response",
	KindBadRequest:           "bad request (HTTP 400)",
	KindPayloadTooLarge:      "payload too large (HTTP 413)",
	KindURITooLong:           "URI too long (HTTP 414)",
	KindUnsupportedMediaType: "unsupported media type (HTTP 415)",
	KindNotImplemented:       "not implemented (HTTP 501)",
	KindTooManyRequests:      "too many requests (HTTP 429)",
	KindInternalServerError:  "internal server error (HTTP 500)",
	KindBadGateway:           "bad gateway (HTTP 502)",
	KindResolverTimeout:      "resolver timeout (HTTP 504)",
}

// String returns the human-readable description of the kind.
func (k QueryKind) String() string {
	if s, ok := queryKindText[k]; ok {
		return s
	}
	return queryKindText[KindUnknown]
}

// QueryError is the failure of one server attempt. When all servers fail
// with retryable errors, the last QueryError observed is returned to the
// caller; terminal kinds are returned without trying further servers.
type QueryError struct {
	Kind   QueryKind
	Detail string
}

// Error implements the error interface.
func (e *QueryError) Error() string {
	if e.Detail == "" {
		return "dohdns: " + e.Kind.String()
	}
	return fmt.Sprintf("dohdns: %s: %s", e.Kind.String(), e.Detail)
}

// Retryable reports whether the failover engine advances to the next server
// after this failure. Invalid names and endpoints are configuration defects
// and abort the call; the terminal HTTP statuses indicate requests every
// server would reject identically.
func (e *QueryError) Retryable() bool {
	switch e.Kind {
	case KindInvalidName, KindInvalidEndpoint,
		KindBadRequest, KindPayloadTooLarge, KindURITooLong,
		KindUnsupportedMediaType, KindNotImplemented:
		return false
	}
	return true
}

// StatusError is returned when a DoH server answered the query but signaled
// a DNS-level error via a nonzero Status. The query itself succeeded, so no
// further servers are tried.
type StatusError struct {
	Code RCode
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("dohdns: server returned DNS error status %s", e.Code)
}
