package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mholzen/bungienet/pkg/bungie"
	"github.com/mholzen/bungienet/pkg/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{"valid bearer token", "Bearer abc123", "abc123"},
		{"bearer lowercase", "bearer abc123", "abc123"},
		{"bearer mixed case", "BeArEr abc123", "abc123"},
		{"empty header", "", ""},
		{"basic credentials", "Basic MTIzOnNlY3JldA==", ""},
		{"extra spaces", "Bearer   CKvwEBKG   ", "CKvwEBKG"},
		{"no token", "Bearer", ""},
		{"one space no token", "Bearer ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			assert.Equal(t, tt.expected, extractBearerToken(req))
		})
	}
}

func TestTokenClaimsFromContext(t *testing.T) {
	t.Run("no claims in context", func(t *testing.T) {
		claims := TokenClaimsFromContext(context.Background())
		assert.Nil(t, claims)
		assert.Nil(t, claims.Tokens())
	})

	t.Run("claims in context", func(t *testing.T) {
		expected := &TokenClaims{Subject: "20315338", AccessToken: "abc"}
		claims := TokenClaimsFromContext(contextWithTokenClaims(context.Background(), expected))
		assert.Equal(t, expected, claims)
		assert.Equal(t, &client.Tokens{AccessToken: "abc"}, claims.Tokens())
	})
}

func TestStaticTokenValidator(t *testing.T) {
	validator := &StaticTokenValidator{
		Tokens: map[string]*TokenClaims{
			"valid-token": {Subject: "20315338"},
		},
	}

	claims, err := validator.ValidateToken(context.Background(), "valid-token")
	require.NoError(t, err)
	assert.Equal(t, "20315338", claims.Subject)

	claims, err = validator.ValidateToken(context.Background(), "invalid-token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestOAuthMiddleware(t *testing.T) {
	validator := &StaticTokenValidator{
		Tokens: map[string]*TokenClaims{
			"valid-token": {Subject: "20315338", AccessToken: "valid-token"},
		},
	}

	serve := func(config OAuthConfig, header string) (*httptest.ResponseRecorder, *TokenClaims) {
		var captured *TokenClaims
		handler := OAuthMiddleware(config)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured = TokenClaimsFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		}))
		req := httptest.NewRequest(http.MethodPost, "/mcp", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr, captured
	}

	required := OAuthConfig{TokenValidator: validator, RequireAuth: true, Resource: "https://mcp.example.com/"}

	t.Run("valid token passes through", func(t *testing.T) {
		rr, claims := serve(required, "Bearer valid-token")
		assert.Equal(t, http.StatusOK, rr.Code)
		require.NotNil(t, claims)
		assert.Equal(t, "20315338", claims.Subject)
	})

	t.Run("missing token returns 401 when required", func(t *testing.T) {
		rr, _ := serve(required, "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		challenge := rr.Header().Get("WWW-Authenticate")
		assert.Contains(t, challenge, "Bearer")
		assert.Contains(t, challenge, `resource_metadata="https://mcp.example.com/.well-known/oauth-protected-resource"`)
	})

	t.Run("missing token allowed when not required", func(t *testing.T) {
		rr, claims := serve(OAuthConfig{TokenValidator: validator}, "")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Nil(t, claims)
	})

	t.Run("invalid token returns 401", func(t *testing.T) {
		rr, _ := serve(required, "Bearer invalid-token")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Header().Get("WWW-Authenticate"), `error="invalid_token"`)
	})
}

func TestProtectedResourceMetadataHandler(t *testing.T) {
	handler := ProtectedResourceMetadataHandler(OAuthConfig{
		AuthorizationServers: []string{"https://www.bungie.net"},
		Resource:             "https://mcp.example.com",
		ResourceName:         "Bungie.net MCP",
	})

	t.Run("returns metadata on GET", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, wellKnownPath, nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

		var metadata ProtectedResourceMetadata
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&metadata))
		assert.Equal(t, "https://mcp.example.com", metadata.Resource)
		assert.Equal(t, []string{"https://www.bungie.net"}, metadata.AuthorizationServers)
		assert.Equal(t, "Bungie.net MCP", metadata.ResourceName)
		assert.Empty(t, metadata.ScopesSupported)
		assert.Equal(t, []string{"header"}, metadata.BearerMethodsSupported)
	})

	t.Run("rejects non-GET methods", func(t *testing.T) {
		for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(method, wellKnownPath, nil))
			assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
		}
	})
}

func TestPlatformTokenValidator(t *testing.T) {
	t.Run("accepts a token the platform recognizes", func(t *testing.T) {
		c, stub := newTestBungie(t, envelope(`{
			"destinyMemberships":[{"membershipType":3,"membershipId":"4611686018467284386"}],
			"primaryMembershipId":"4611686018467284386",
			"bungieNetUser":{"membershipId":"20315338","uniqueName":"Guardian#0042"}
		}`))
		v := &PlatformTokenValidator{Client: c}

		claims, err := v.ValidateToken(context.Background(), "abc")

		require.NoError(t, err)
		assert.Equal(t, "20315338", claims.Subject)
		assert.Equal(t, bungie.DefaultHost, claims.Issuer)
		assert.Equal(t, "abc", claims.AccessToken)
		assert.Equal(t, "4611686018467284386", claims.Extra["destiny_membership_id"])
		assert.Equal(t, bungie.MembershipTypeSteam, claims.Extra["membership_type"])
		req := stub.last(t)
		assert.Equal(t, "https://www.bungie.net/Platform/User/GetMembershipsForCurrentUser/", req.URL)
		assert.Equal(t, "Bearer abc", req.Header.Get("Authorization"))
	})

	t.Run("rejects an envelope error", func(t *testing.T) {
		c, _ := newTestBungie(t, `{"Response":null,"ErrorCode":99,"ThrottleSeconds":0,"ErrorStatus":"WebAuthRequired","Message":"Please sign-in to continue.","MessageData":{}}`)
		v := &PlatformTokenValidator{Client: c}

		claims, err := v.ValidateToken(context.Background(), "expired")

		assert.Nil(t, claims)
		var envErr *bungie.EnvelopeError
		require.ErrorAs(t, err, &envErr)
		assert.Equal(t, bungie.PlatformErrorCodeWebAuthRequired, envErr.ErrorCode)
	})

	t.Run("rejects a 401 carrying an envelope", func(t *testing.T) {
		c, stub := newTestBungie(t, "")
		stub.err = &client.APIError{
			Status: http.StatusUnauthorized,
			Body:   `{"ErrorCode":99,"ErrorStatus":"WebAuthRequired","Message":"Please sign-in to continue.","MessageData":{}}`,
		}
		v := &PlatformTokenValidator{Client: c}

		_, err := v.ValidateToken(context.Background(), "expired")

		var envErr *bungie.EnvelopeError
		require.ErrorAs(t, err, &envErr)
		assert.Equal(t, "WebAuthRequired", envErr.ErrorStatus)
	})

	t.Run("rejects a user without membership", func(t *testing.T) {
		c, _ := newTestBungie(t, envelope(`{"destinyMemberships":[],"bungieNetUser":{}}`))
		v := &PlatformTokenValidator{Client: c}

		_, err := v.ValidateToken(context.Background(), "abc")
		assert.Error(t, err)
	})
}
