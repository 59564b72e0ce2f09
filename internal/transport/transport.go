// Package transport provides the HTTP transport used to fetch listing
// snapshots over HTTP.
package transport

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"
)

const defaultMaxAttempts = 3

// RetryAfterTransport retries rate-limited requests after the server's
// advertised Retry-After delay. It re-issues the original request unchanged,
// so it is only suitable for idempotent fetches.
type RetryAfterTransport struct {
	base        http.RoundTripper
	maxAttempts int
}

func WithRetryAfter(base http.RoundTripper) *RetryAfterTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &RetryAfterTransport{base: base, maxAttempts: defaultMaxAttempts}
}

func (t *RetryAfterTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	for attempt := 1; ; attempt++ {
		resp, err := t.base.RoundTrip(req)
		if err != nil || resp.StatusCode != http.StatusTooManyRequests || attempt >= t.maxAttempts {
			return resp, err
		}

		waitDuration := parseRetryAfter(resp.Header.Get("Retry-After"))
		if waitDuration <= 0 {
			return resp, err
		}

		// Free the connection before waiting
		if cerr := resp.Body.Close(); cerr != nil {
			return nil, fmt.Errorf("failed to close response body: %w", cerr)
		}

		log.Printf("Rate limited, waiting %s before retrying", waitDuration)
		select {
		case <-req.Context().Done():
			return nil, req.Context().Err()
		case <-time.After(waitDuration):
		}
	}
}

// parseRetryAfter accepts both forms of the Retry-After header: a delay in
// seconds or an HTTP date.
func parseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}
	if at, err := time.Parse(time.RFC1123, value); err == nil {
		return time.Until(at)
	}
	return 0
}
