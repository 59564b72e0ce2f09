package transport

import (
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedTransport returns canned responses in order.
type scriptedTransport struct {
	responses []*http.Response
	calls     int
}

func (st *scriptedTransport) RoundTrip(*http.Request) (*http.Response, error) {
	resp := st.responses[st.calls]
	st.calls++
	return resp, nil
}

func newResponse(status int, retryAfter string) *http.Response {
	resp := &http.Response{
		StatusCode: status,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader("")),
	}
	if retryAfter != "" {
		resp.Header.Set("Retry-After", retryAfter)
	}
	return resp
}

func TestRetryAfterTransport_RetriesOn429(t *testing.T) {
	base := &scriptedTransport{responses: []*http.Response{
		newResponse(http.StatusTooManyRequests, "0"),
		newResponse(http.StatusOK, ""),
	}}
	rt := WithRetryAfter(base)
	// "0" parses to a zero wait, which is treated as no usable hint, so
	// use one second to exercise the wait path without slowing the suite
	base.responses[0].Header.Set("Retry-After", "1")

	req, err := http.NewRequest(http.MethodGet, "http://example.test/listing", nil)
	require.NoError(t, err)

	resp, err := rt.RoundTrip(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, base.calls)
}

func TestRetryAfterTransport_GivesUpAfterMaxAttempts(t *testing.T) {
	base := &scriptedTransport{responses: []*http.Response{
		newResponse(http.StatusTooManyRequests, "1"),
		newResponse(http.StatusTooManyRequests, "1"),
		newResponse(http.StatusTooManyRequests, "1"),
	}}
	rt := WithRetryAfter(base)

	req, err := http.NewRequest(http.MethodGet, "http://example.test/listing", nil)
	require.NoError(t, err)

	resp, err := rt.RoundTrip(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, 3, base.calls)
}

func TestRetryAfterTransport_NoRetryWithoutHint(t *testing.T) {
	base := &scriptedTransport{responses: []*http.Response{
		newResponse(http.StatusTooManyRequests, ""),
	}}
	rt := WithRetryAfter(base)

	req, err := http.NewRequest(http.MethodGet, "http://example.test/listing", nil)
	require.NoError(t, err)

	resp, err := rt.RoundTrip(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, 1, base.calls)
}

func TestParseRetryAfter(t *testing.T) {
	assert.Equal(t, time.Duration(0), parseRetryAfter(""))
	assert.Equal(t, 5*time.Second, parseRetryAfter("5"))
	assert.Equal(t, time.Duration(0), parseRetryAfter("not a hint"))

	at := time.Now().Add(10 * time.Second).UTC().Format(time.RFC1123)
	parsed := parseRetryAfter(at)
	assert.Greater(t, parsed, 5*time.Second)
	assert.LessOrEqual(t, parsed, 10*time.Second)
}
