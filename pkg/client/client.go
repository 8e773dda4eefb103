package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
)

// Client sends requests relative to a base URL with a fixed header set through
// its own Fetcher. It holds no per-call state and is safe for concurrent use.
type Client struct {
	baseURL string
	header  http.Header
	fetcher Fetcher
}

type Option func(*Client)

// WithFetcher replaces the transport used by this client only.
func WithFetcher(f Fetcher) Option {
	return func(c *Client) {
		if f != nil {
			c.fetcher = f
		}
	}
}

// WithHeader adds a header sent with every request.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.header.Set(key, value)
	}
}

// WithHeaders merges h into the headers sent with every request.
func WithHeaders(h http.Header) Option {
	return func(c *Client) {
		for k, vals := range h {
			for _, v := range vals {
				c.header.Add(k, v)
			}
		}
	}
}

func New(base string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(base, "/"),
		header:  http.Header{},
		fetcher: NewHTTPFetcher(nil),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) BaseURL() string { return c.baseURL }

// Header returns a copy of the headers sent with every request.
func (c *Client) Header() http.Header { return c.header.Clone() }

func (c *Client) Fetcher() Fetcher { return c.fetcher }

// URL resolves path against the base URL. Absolute URLs are returned as is.
func (c *Client) URL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return c.baseURL + path
}

// Do sends method to path with the client headers, plus a bearer token when
// tokens carries one. A non-nil in is sent as a JSON body ([]byte and string are
// sent verbatim). A non-nil out receives the decoded JSON response.
func (c *Client) Do(ctx context.Context, method, path string, tokens *Tokens, in any, out any) error {
	body, err := encodeBody(in)
	if err != nil {
		return err
	}
	header := AuthHeaders(c.header, tokens)
	if body != nil && header.Get("Content-Type") == "" {
		header.Set("Content-Type", "application/json")
	}
	return c.Send(ctx, &Request{
		Method:    method,
		URL:       c.URL(path),
		Header:    header,
		Body:      body,
		WantsJSON: out != nil,
	}, out)
}

// DoRaw is Do without JSON decoding: the response body is returned as received.
func (c *Client) DoRaw(ctx context.Context, method, path string, tokens *Tokens, in any) ([]byte, error) {
	body, err := encodeBody(in)
	if err != nil {
		return nil, err
	}
	header := AuthHeaders(c.header, tokens)
	if body != nil && header.Get("Content-Type") == "" {
		header.Set("Content-Type", "application/json")
	}
	return c.fetch(ctx, &Request{
		Method: method,
		URL:    c.URL(path),
		Header: header,
		Body:   body,
	})
}

// Send hands a fully built request to the fetcher and decodes the result into
// out when out is non-nil.
func (c *Client) Send(ctx context.Context, req *Request, out any) error {
	data, err := c.fetch(ctx, req)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", req.Method, req.URL, err)
	}
	return nil
}

func (c *Client) fetch(ctx context.Context, req *Request) ([]byte, error) {
	if req.Method != http.MethodGet && req.Method != http.MethodPost {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMethod, req.Method)
	}
	slog.Debug("sending request", "method", req.Method, "url", req.URL, "authenticated", req.Header.Get("Authorization") != "")
	return c.fetcher.Fetch(ctx, req)
}

func encodeBody(in any) ([]byte, error) {
	switch v := in.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	case json.RawMessage:
		return v, nil
	}
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
