package dohdns

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"golang.org/x/net/idna"
)

// query drives one resolve call across the configured server list.
//
// Servers are tried strictly in order, one at a time. A retryable failure is
// logged and the engine advances to the next server; a terminal failure is
// returned immediately. When every server fails with a retryable error, the
// last one observed is returned.
func (d *Dns) query(ctx context.Context, name string, rt RecordType) (*dnsResponse, error) {
	// DoH query strings carry the ASCII (punycode) form of the name.
	ascii, err := idna.ToASCII(name)
	if err != nil {
		return nil, &QueryError{Kind: KindInvalidName, Detail: err.Error()}
	}

	lastErr := &QueryError{Kind: KindUnknown}
	for _, srv := range d.servers {
		queryURL := fmt.Sprintf("%s?name=%s&type=%s", srv.endpoint, ascii, rt.Name)
		if _, err := url.ParseRequestURI(queryURL); err != nil {
			// A malformed URL is a configuration defect, not a server
			// condition; retrying other servers cannot help.
			return nil, &QueryError{Kind: KindInvalidEndpoint, Detail: err.Error()}
		}

		res, qerr := d.attempt(ctx, srv, queryURL)
		if qerr == nil {
			d.logger.Debug("server answered",
				Field{"url", queryURL},
				Field{"type", rt.Name})
			return res, nil
		}
		if !qerr.Retryable() {
			return nil, qerr
		}

		lastErr = qerr
		d.logger.Error("request failed, trying next server", qerr,
			Field{"url", queryURL},
			Field{"type", rt.Name})

		// Don't burn the remaining servers once the caller is gone.
		if ctx.Err() != nil {
			break
		}
	}
	return nil, lastErr
}

// attempt performs a single GET against one server, bounded by that server's
// timeout, and classifies the outcome.
func (d *Dns) attempt(ctx context.Context, srv Server, queryURL string) (*dnsResponse, *QueryError) {
	ctx, cancel := context.WithTimeout(ctx, srv.timeout)
	defer cancel()

	resp, err := d.client.Get(ctx, queryURL)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &QueryError{
				Kind:   KindConnection,
				Detail: fmt.Sprintf("connection timeout after %s", srv.timeout),
			}
		}
		return nil, &QueryError{Kind: KindConnection, Detail: err.Error()}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, &QueryError{Kind: KindReadResponse, Detail: err.Error()}
		}
		var res dnsResponse
		if err := json.Unmarshal(body, &res); err != nil {
			return nil, &QueryError{Kind: KindParseResponse, Detail: err.Error()}
		}
		if res.Status == nil {
			return nil, &QueryError{Kind: KindParseResponse, Detail: "missing Status field"}
		}
		return &res, nil
	case http.StatusBadRequest:
		return nil, &QueryError{Kind: KindBadRequest}
	case http.StatusRequestEntityTooLarge:
		return nil, &QueryError{Kind: KindPayloadTooLarge}
	case http.StatusRequestURITooLong:
		return nil, &QueryError{Kind: KindURITooLong}
	case http.StatusUnsupportedMediaType:
		return nil, &QueryError{Kind: KindUnsupportedMediaType}
	case http.StatusNotImplemented:
		return nil, &QueryError{Kind: KindNotImplemented}
	case http.StatusTooManyRequests:
		return nil, &QueryError{Kind: KindTooManyRequests}
	case http.StatusInternalServerError:
		return nil, &QueryError{Kind: KindInternalServerError}
	case http.StatusBadGateway:
		return nil, &QueryError{Kind: KindBadGateway}
	case http.StatusGatewayTimeout:
		return nil, &QueryError{Kind: KindResolverTimeout}
	default:
		return nil, &QueryError{Kind: KindUnknown,
			Detail: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}
}
