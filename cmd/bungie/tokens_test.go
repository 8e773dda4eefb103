package main

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/mholzen/bungienet/pkg/bungie"
	"github.com/mholzen/bungienet/pkg/tokenstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("with refresh token", func(t *testing.T) {
		entry := &tokenstore.Entry{
			Timestamp:        issued.Unix(),
			AccessToken:      "a",
			RefreshToken:     "r",
			ExpiresIn:        3600,
			RefreshExpiresIn: 7776000,
			MembershipID:     "42",
		}
		status := statusOf(entry, issued.Add(90*time.Minute))
		assert.Equal(t, "42", status.MembershipID)
		assert.False(t, status.AccessValid)
		assert.True(t, status.RefreshValid)
		assert.Equal(t, issued.Add(time.Hour), status.AccessExpiresAt)
		assert.Equal(t, issued.Add(90*24*time.Hour), status.RefreshExpiresAt)
	})

	t.Run("without refresh token", func(t *testing.T) {
		entry := &tokenstore.Entry{Timestamp: issued.Unix(), AccessToken: "a", ExpiresIn: 3600}
		status := statusOf(entry, issued)
		assert.True(t, status.AccessValid)
		assert.False(t, status.RefreshValid)
		assert.True(t, status.RefreshExpiresAt.IsZero())
	})
}

func TestStoreTokenResponse(t *testing.T) {
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	fixedNow(t, issued)
	path := filepath.Join(t.TempDir(), "tokens.json")

	t.Run("transport error", func(t *testing.T) {
		sendErr := errors.New("timeout")
		_, err := storeTokenResponse(path, nil, sendErr)
		assert.ErrorIs(t, err, sendErr)
	})

	t.Run("token error", func(t *testing.T) {
		_, err := storeTokenResponse(path, &bungie.TokenResponse{Error: "invalid_grant"}, nil)
		assert.ErrorContains(t, err, "invalid_grant")
	})

	t.Run("success", func(t *testing.T) {
		entry, err := storeTokenResponse(path, &bungie.TokenResponse{AccessToken: "a", ExpiresIn: 3600}, nil)
		require.NoError(t, err)
		assert.Equal(t, issued.Unix(), entry.Timestamp)

		stored, err := tokenstore.Read(path)
		require.NoError(t, err)
		assert.Equal(t, entry, stored)
	})
}
