package client

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"
)

// Request is everything a Fetcher needs to perform one call.
type Request struct {
	Method string
	URL    string
	Header http.Header
	// Body is nil for requests without one.
	Body []byte
	// WantsJSON is set when the caller will decode the response as JSON.
	WantsJSON bool
}

// Fetcher performs the network call for a Client. Implementations decide how
// to treat HTTP status codes; the default one rejects anything outside 2xx.
type Fetcher interface {
	Fetch(ctx context.Context, req *Request) ([]byte, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, req *Request) ([]byte, error)

func (f FetcherFunc) Fetch(ctx context.Context, req *Request) ([]byte, error) {
	return f(ctx, req)
}

const defaultTimeout = 30 * time.Second

// HTTPFetcher is the default Fetcher, backed by net/http.
type HTTPFetcher struct {
	http *http.Client
}

// NewHTTPFetcher wraps hc. A nil hc gets a client with a 30s timeout.
func NewHTTPFetcher(hc *http.Client) *HTTPFetcher {
	if hc == nil {
		hc = &http.Client{Timeout: defaultTimeout} // always set timeouts
	}
	return &HTTPFetcher{http: hc}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, r *Request) ([]byte, error) {
	var body io.Reader
	if r.Body != nil {
		body = bytes.NewReader(r.Body)
	}
	req, err := http.NewRequestWithContext(ctx, r.Method, r.URL, body)
	if err != nil {
		return nil, err
	}
	for k, vals := range r.Header {
		for _, v := range vals {
			req.Header.Add(k, v)
		}
	}
	if r.WantsJSON && req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}

	resp, err := f.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		// include Retry-After for backoff decisions
		return nil, &APIError{Status: resp.StatusCode, Body: string(b), RetryAfter: resp.Header.Get("Retry-After")}
	}
	return io.ReadAll(resp.Body)
}
