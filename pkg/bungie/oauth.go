package bungie

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/go-querystring/query"
	"github.com/mholzen/bungienet/pkg/client"
)

// TokenResponse is the token endpoint's answer. On failure only Error and
// ErrorDescription are set; use IsError to tell the two shapes apart.
type TokenResponse struct {
	AccessToken      string `json:"access_token,omitempty"`
	TokenType        string `json:"token_type,omitempty"`
	ExpiresIn        int    `json:"expires_in,omitempty"`
	RefreshToken     string `json:"refresh_token,omitempty"`
	RefreshExpiresIn int    `json:"refresh_expires_in,omitempty"`
	MembershipID     string `json:"membership_id,omitempty"`

	Error            string `json:"error,omitempty"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// IsError reports whether the response has the token-error shape.
func (t *TokenResponse) IsError() bool {
	return t.Error != ""
}

// Tokens returns the pair to pass to authenticated endpoint calls.
func (t *TokenResponse) Tokens() *client.Tokens {
	return &client.Tokens{AccessToken: t.AccessToken, RefreshToken: t.RefreshToken}
}

// AccessExpiresAt returns when the access token expires, counted from issuedAt.
func (t *TokenResponse) AccessExpiresAt(issuedAt time.Time) time.Time {
	return issuedAt.Add(time.Duration(t.ExpiresIn) * time.Second)
}

// RefreshExpiresAt returns when the refresh token expires, counted from issuedAt.
func (t *TokenResponse) RefreshExpiresAt(issuedAt time.Time) time.Time {
	return issuedAt.Add(time.Duration(t.RefreshExpiresIn) * time.Second)
}

type tokenRequest struct {
	GrantType    string `url:"grant_type"`
	Code         string `url:"code,omitempty"`
	RefreshToken string `url:"refresh_token,omitempty"`
}

// OAuth builds authorization URLs and talks to the token endpoint.
type OAuth struct {
	urls    URLs
	app     App
	headers http.Header
	http    *client.Client
}

func newOAuth(cfg *Configuration, c *client.Client) *OAuth {
	return &OAuth{urls: cfg.URLs, app: cfg.App, headers: cfg.Headers.Clone(), http: c}
}

// AuthorizationURL returns the URL to send the user to. An empty state is
// left out of the query.
func (o *OAuth) AuthorizationURL(state string) string {
	var s any
	if state != "" {
		s = state
	}
	return client.FormatQuery(o.urls.Authorization, client.Query{
		{Key: "client_id", Value: o.app.ClientID},
		{Key: "response_type", Value: "code"},
		{Key: "state", Value: s},
	})
}

// AccessToken exchanges an authorization code for a token pair.
func (o *OAuth) AccessToken(ctx context.Context, code string) (*TokenResponse, error) {
	if code == "" {
		return nil, ErrMissingGrant
	}
	return o.requestToken(ctx, tokenRequest{GrantType: "authorization_code", Code: code})
}

// RefreshAccessToken trades a refresh token for a new token pair.
func (o *OAuth) RefreshAccessToken(ctx context.Context, refreshToken string) (*TokenResponse, error) {
	if refreshToken == "" {
		return nil, ErrMissingGrant
	}
	return o.requestToken(ctx, tokenRequest{GrantType: "refresh_token", RefreshToken: refreshToken})
}

func (o *OAuth) basicCredentials() (string, error) {
	if o.app.ClientID == "" || o.app.ClientSecret == "" {
		return "", ErrMissingClientCredentials
	}
	raw := o.app.ClientID + ":" + o.app.ClientSecret
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(raw)), nil
}

func (o *OAuth) requestToken(ctx context.Context, body tokenRequest) (*TokenResponse, error) {
	auth, err := o.basicCredentials()
	if err != nil {
		return nil, err
	}
	vals, err := query.Values(body)
	if err != nil {
		return nil, err
	}

	header := o.headers.Clone()
	header.Set("Authorization", auth)
	header.Set("Content-Type", "application/x-www-form-urlencoded")

	slog.Debug("requesting OAuth token", "grant_type", body.GrantType, "url", o.urls.Token)

	var resp TokenResponse
	err = o.http.Send(ctx, &client.Request{
		Method:    http.MethodPost,
		URL:       o.urls.Token,
		Header:    header,
		Body:      []byte(vals.Encode()),
		WantsJSON: true,
	}, &resp)
	if err != nil {
		if tokenErr, ok := tokenErrorFrom(err); ok {
			return tokenErr, nil
		}
		return nil, fmt.Errorf("token request: %w", err)
	}
	return &resp, nil
}

// tokenErrorFrom recovers an {error, error_description} body from a rejected
// token request so it reaches the caller as a response shape.
func tokenErrorFrom(err error) (*TokenResponse, bool) {
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) {
		return nil, false
	}
	var resp TokenResponse
	if json.Unmarshal([]byte(apiErr.Body), &resp) != nil || !resp.IsError() {
		return nil, false
	}
	return &resp, true
}
