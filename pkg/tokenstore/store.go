// Package tokenstore keeps the OAuth tokens of the signed in user on disk
// between CLI runs.
package tokenstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/mholzen/bungienet/pkg/bungie"
	"github.com/mholzen/bungienet/pkg/client"
)

const (
	// DefaultFile is the token file location relative to the home directory.
	DefaultFile = ".bungie/tokens.json"
	// ExpiryMargin is subtracted from token lifetimes so a token is not used
	// right before it expires.
	ExpiryMargin = 30 * time.Second
)

// Entry is a token response stamped with the time it was issued.
type Entry struct {
	Timestamp        int64  `json:"timestamp"`
	AccessToken      string `json:"access_token"`
	RefreshToken     string `json:"refresh_token,omitempty"`
	ExpiresIn        int    `json:"expires_in"`
	RefreshExpiresIn int    `json:"refresh_expires_in,omitempty"`
	MembershipID     string `json:"membership_id,omitempty"`
}

// DefaultPath returns the full path of DefaultFile.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not get home directory: %w", err)
	}
	return filepath.Join(homeDir, DefaultFile), nil
}

// Read loads the entry at path. A missing file yields nil without error.
func Read(path string) (*Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			slog.Debug("token file does not exist", "path", path)
			return nil, nil
		}
		return nil, fmt.Errorf("error reading token file: %w", err)
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("error parsing token file: %w", err)
	}

	slog.Debug("token file read", "path", path, "timestamp", entry.Timestamp)
	return &entry, nil
}

// Write stores a successful token response at path, issued now.
func Write(path string, resp *bungie.TokenResponse, now time.Time) (*Entry, error) {
	if resp == nil || resp.IsError() || resp.AccessToken == "" {
		return nil, errors.New("refusing to store a token response without an access token")
	}
	entry := &Entry{
		Timestamp:        now.Unix(),
		AccessToken:      resp.AccessToken,
		RefreshToken:     resp.RefreshToken,
		ExpiresIn:        resp.ExpiresIn,
		RefreshExpiresIn: resp.RefreshExpiresIn,
		MembershipID:     resp.MembershipID,
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("error creating token directory: %w", err)
	}
	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error encoding tokens: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return nil, fmt.Errorf("error writing token file: %w", err)
	}

	slog.Debug("token file written", "path", path, "timestamp", entry.Timestamp)
	return entry, nil
}

// Remove deletes the token file. A missing file is not an error.
func Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("error removing token file: %w", err)
	}
	return nil
}

func (e *Entry) issued() time.Time {
	return time.Unix(e.Timestamp, 0)
}

// AccessExpiresAt is when the access token stops being accepted.
func (e *Entry) AccessExpiresAt() time.Time {
	return e.issued().Add(time.Duration(e.ExpiresIn) * time.Second)
}

// RefreshExpiresAt is when the refresh token stops being accepted.
func (e *Entry) RefreshExpiresAt() time.Time {
	return e.issued().Add(time.Duration(e.RefreshExpiresIn) * time.Second)
}

// AccessValid reports whether the access token can still be used at now.
func (e *Entry) AccessValid(now time.Time) bool {
	if e == nil || e.AccessToken == "" {
		return false
	}
	return now.Before(e.AccessExpiresAt().Add(-ExpiryMargin))
}

// RefreshValid reports whether the refresh token can still be exchanged at now.
func (e *Entry) RefreshValid(now time.Time) bool {
	if e == nil || e.RefreshToken == "" {
		return false
	}
	return now.Before(e.RefreshExpiresAt().Add(-ExpiryMargin))
}

// Tokens returns the pair to pass to authenticated calls.
func (e *Entry) Tokens() *client.Tokens {
	if e == nil {
		return nil
	}
	return &client.Tokens{AccessToken: e.AccessToken, RefreshToken: e.RefreshToken}
}
