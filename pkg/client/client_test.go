package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echo struct {
	Method string `json:"method"`
	Path   string `json:"path"`
	Query  string `json:"query"`
	Body   string `json:"body"`
	Auth   string `json:"auth"`
	APIKey string `json:"api_key"`
}

func echoServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(echo{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Body:   string(body),
			Auth:   r.Header.Get("Authorization"),
			APIKey: r.Header.Get("X-API-Key"),
		})
	}))
	t.Cleanup(server.Close)
	return server
}

func TestClient_Do(t *testing.T) {
	server := echoServer(t)
	c := New(server.URL+"/Platform/", WithHeader("X-API-Key", "key"))

	t.Run("get without tokens", func(t *testing.T) {
		var out echo
		err := c.Do(context.Background(), http.MethodGet, FormatQuery("/User/Get/1/", Query{{Key: "a", Value: 1}}), nil, nil, &out)
		require.NoError(t, err)
		assert.Equal(t, "GET", out.Method)
		assert.Equal(t, "/Platform/User/Get/1/", out.Path)
		assert.Equal(t, "a=1", out.Query)
		assert.Equal(t, "key", out.APIKey)
		assert.Empty(t, out.Auth)
	})

	t.Run("post with tokens and json body", func(t *testing.T) {
		var out echo
		err := c.Do(context.Background(), http.MethodPost, "/Actions/", &Tokens{AccessToken: "tok"}, map[string]int{"n": 1}, &out)
		require.NoError(t, err)
		assert.Equal(t, "POST", out.Method)
		assert.Equal(t, "Bearer tok", out.Auth)
		assert.JSONEq(t, `{"n":1}`, out.Body)
	})

	t.Run("client headers are not modified by a call", func(t *testing.T) {
		var out echo
		require.NoError(t, c.Do(context.Background(), http.MethodGet, "/x/", &Tokens{AccessToken: "tok"}, nil, &out))
		assert.Empty(t, c.Header().Get("Authorization"))
	})
}

func TestClient_DoRaw(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Accept"))
		w.Write([]byte("plain text"))
	}))
	defer server.Close()

	data, err := New(server.URL).DoRaw(context.Background(), http.MethodGet, "/file.txt", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "plain text", string(data))
}

func TestClient_Do_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "5")
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"ErrorCode":5}`))
	}))
	defer server.Close()

	var out map[string]any
	err := New(server.URL).Do(context.Background(), http.MethodGet, "/x/", nil, nil, &out)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.Status)
	assert.Equal(t, `{"ErrorCode":5}`, apiErr.Body)
	assert.Equal(t, "5", apiErr.RetryAfter)
	assert.Nil(t, out)
}

func TestClient_Do_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("invalid json response"))
	}))
	defer server.Close()

	var out map[string]any
	err := New(server.URL).Do(context.Background(), http.MethodGet, "/x/", nil, nil, &out)
	assert.Error(t, err)
}

func TestClient_Do_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	var out map[string]any
	err := New(server.URL).Do(ctx, http.MethodGet, "/slow/", nil, nil, &out)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "context deadline exceeded")
}

func TestClient_Do_UnsupportedMethod(t *testing.T) {
	called := false
	c := New("https://example.com", WithFetcher(FetcherFunc(func(ctx context.Context, req *Request) ([]byte, error) {
		called = true
		return nil, nil
	})))

	err := c.Do(context.Background(), http.MethodDelete, "/x/", nil, nil, nil)
	assert.ErrorIs(t, err, ErrUnsupportedMethod)
	assert.False(t, called)
}

func TestClient_WithFetcher(t *testing.T) {
	var got *Request
	stub := FetcherFunc(func(ctx context.Context, req *Request) ([]byte, error) {
		got = req
		return []byte(`{"ok":true}`), nil
	})

	a := New("https://a.example/Platform", WithFetcher(stub), WithHeader("X-API-Key", "a"))
	b := New("https://b.example/Platform", WithHeader("X-API-Key", "b"))

	var out struct {
		OK bool `json:"ok"`
	}
	require.NoError(t, a.Do(context.Background(), http.MethodGet, "/Thing/", nil, nil, &out))
	assert.True(t, out.OK)
	require.NotNil(t, got)
	assert.Equal(t, "https://a.example/Platform/Thing/", got.URL)
	assert.True(t, got.WantsJSON)
	assert.Equal(t, "a", got.Header.Get("X-API-Key"))

	_, isHTTP := b.Fetcher().(*HTTPFetcher)
	assert.True(t, isHTTP, "other clients keep their own fetcher")
}

func TestClient_URL(t *testing.T) {
	c := New("https://www.bungie.net/Platform/")
	assert.Equal(t, "https://www.bungie.net/Platform", c.BaseURL())
	assert.Equal(t, "https://www.bungie.net/Platform/Destiny2/Manifest/", c.URL("/Destiny2/Manifest/"))
	assert.Equal(t, "https://other.example/x", c.URL("https://other.example/x"))
}
