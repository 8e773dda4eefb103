package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mholzen/bungienet/pkg/bungie"
	"github.com/mholzen/bungienet/pkg/client"
	"github.com/mholzen/bungienet/pkg/tokenstore"
)

var errNotSignedIn = errors.New("not signed in: run `bungie oauth url` and `bungie oauth token <code>`")

// now is replaced in tests.
var now = time.Now

type tokenStatus struct {
	MembershipID     string    `json:"membership_id,omitempty"`
	AccessValid      bool      `json:"access_valid"`
	AccessExpiresAt  time.Time `json:"access_expires_at"`
	RefreshValid     bool      `json:"refresh_valid"`
	RefreshExpiresAt time.Time `json:"refresh_expires_at,omitzero"`
}

func statusOf(entry *tokenstore.Entry, at time.Time) tokenStatus {
	status := tokenStatus{
		MembershipID:    entry.MembershipID,
		AccessValid:     entry.AccessValid(at),
		AccessExpiresAt: entry.AccessExpiresAt().UTC(),
		RefreshValid:    entry.RefreshValid(at),
	}
	if entry.RefreshToken != "" {
		status.RefreshExpiresAt = entry.RefreshExpiresAt().UTC()
	}
	return status
}

// storeTokenResponse saves a successful token response at path. A token-error
// response is reported as an error.
func storeTokenResponse(path string, resp *bungie.TokenResponse, err error) (*tokenstore.Entry, error) {
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("token request rejected: %s: %s", resp.Error, resp.ErrorDescription)
	}
	return tokenstore.Write(path, resp, now())
}

// refreshTokens exchanges the stored refresh token for a new pair.
func refreshTokens(ctx context.Context, c *bungie.Client, path string) (*tokenstore.Entry, error) {
	entry, err := tokenstore.Read(path)
	if err != nil {
		return nil, err
	}
	if !entry.RefreshValid(now()) {
		return nil, errNotSignedIn
	}

	slog.Info("refreshing access token", "membership_id", entry.MembershipID)
	resp, err := c.OAuth.RefreshAccessToken(ctx, entry.RefreshToken)
	return storeTokenResponse(path, resp, err)
}

// signedInTokens returns the stored tokens, refreshing them first when the
// access token has expired.
func signedInTokens(ctx context.Context, c *bungie.Client, path string) (*client.Tokens, error) {
	entry, err := tokenstore.Read(path)
	if err != nil {
		return nil, err
	}
	if entry.AccessValid(now()) {
		return entry.Tokens(), nil
	}

	entry, err = refreshTokens(ctx, c, path)
	if err != nil {
		return nil, err
	}
	return entry.Tokens(), nil
}
