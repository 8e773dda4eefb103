package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/mholzen/bungienet/pkg/bungie"
	"github.com/mholzen/bungienet/pkg/client"
)

// OAuthConfig configures the server as an OAuth protected resource (RFC 9728).
// Tokens are issued by Bungie.net; the server only checks them.
type OAuthConfig struct {
	// AuthorizationServers are advertised in the protected resource metadata.
	AuthorizationServers []string

	// Resource is the canonical URL clients use to reach this server.
	Resource string

	ResourceName string

	// TokenValidator checks bearer tokens. When nil, tokens are not inspected.
	TokenValidator TokenValidator

	// RequireAuth rejects requests without a bearer token.
	RequireAuth bool

	Scopes []string
}

// TokenValidator checks a bearer token and describes its owner.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (*TokenClaims, error)
}

// TokenClaims describe the user a bearer token acts for.
type TokenClaims struct {
	// Subject is the Bungie.net membership id.
	Subject string

	Issuer string

	// AccessToken is the validated bearer token, forwarded to the platform by
	// tools acting for the user.
	AccessToken string

	Extra map[string]any
}

// Tokens returns the claims' access token in the form endpoint calls take.
func (c *TokenClaims) Tokens() *client.Tokens {
	if c == nil || c.AccessToken == "" {
		return nil
	}
	return &client.Tokens{AccessToken: c.AccessToken}
}

// ProtectedResourceMetadata is served at /.well-known/oauth-protected-resource.
type ProtectedResourceMetadata struct {
	Resource               string   `json:"resource"`
	AuthorizationServers   []string `json:"authorization_servers"`
	ResourceName           string   `json:"resource_name,omitempty"`
	ScopesSupported        []string `json:"scopes_supported,omitempty"`
	BearerMethodsSupported []string `json:"bearer_methods_supported,omitempty"`
}

const wellKnownPath = "/.well-known/oauth-protected-resource"

type contextKey string

const tokenClaimsKey contextKey = "oauth_token_claims"

// TokenClaimsFromContext returns the claims stored by OAuthMiddleware, or nil.
func TokenClaimsFromContext(ctx context.Context) *TokenClaims {
	claims, _ := ctx.Value(tokenClaimsKey).(*TokenClaims)
	return claims
}

func contextWithTokenClaims(ctx context.Context, claims *TokenClaims) context.Context {
	return context.WithValue(ctx, tokenClaimsKey, claims)
}

// OAuthMiddleware validates bearer tokens and stores their claims in the
// request context. It answers 401 with a WWW-Authenticate challenge when a
// token is invalid, or missing while RequireAuth is set.
func OAuthMiddleware(config OAuthConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)

			switch {
			case token != "" && config.TokenValidator != nil:
				claims, err := config.TokenValidator.ValidateToken(r.Context(), token)
				if err != nil {
					slog.Debug("token validation failed", "error", err)
					writeUnauthorized(w, config, "invalid_token", "Token validation failed")
					return
				}
				r = r.WithContext(contextWithTokenClaims(r.Context(), claims))
			case token == "" && config.RequireAuth:
				writeUnauthorized(w, config, "", "Bearer token required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "bearer "
	if len(auth) > len(prefix) && strings.EqualFold(auth[:len(prefix)], prefix) {
		return strings.TrimSpace(auth[len(prefix):])
	}
	return ""
}

// writeUnauthorized answers 401 with an RFC 6750 challenge pointing at the
// protected resource metadata.
func writeUnauthorized(w http.ResponseWriter, config OAuthConfig, errorCode, errorDesc string) {
	challenge := "Bearer"
	if config.Resource != "" {
		challenge += fmt.Sprintf(` resource_metadata="%s%s"`, strings.TrimRight(config.Resource, "/"), wellKnownPath)
	}
	if errorCode != "" {
		challenge += fmt.Sprintf(`, error="%s"`, errorCode)
	}
	if errorDesc != "" {
		challenge += fmt.Sprintf(`, error_description="%s"`, errorDesc)
	}

	w.Header().Set("WWW-Authenticate", challenge)
	w.WriteHeader(http.StatusUnauthorized)
}

// ProtectedResourceMetadataHandler serves the RFC 9728 metadata document.
func ProtectedResourceMetadataHandler(config OAuthConfig) http.HandlerFunc {
	metadata := ProtectedResourceMetadata{
		Resource:               config.Resource,
		AuthorizationServers:   config.AuthorizationServers,
		ResourceName:           config.ResourceName,
		ScopesSupported:        config.Scopes,
		BearerMethodsSupported: []string{"header"},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "public, max-age=3600")

		if err := json.NewEncoder(w).Encode(metadata); err != nil {
			slog.Error("failed to encode protected resource metadata", "error", err)
		}
	}
}

// PlatformTokenValidator accepts a token when Bungie.net returns the
// memberships of the user it was issued to.
type PlatformTokenValidator struct {
	Client *bungie.Client
}

// ValidateToken implements TokenValidator.
func (v *PlatformTokenValidator) ValidateToken(ctx context.Context, token string) (*TokenClaims, error) {
	resp, err := v.Client.User.GetMembershipDataForCurrentUser(ctx, &client.Tokens{AccessToken: token})
	if err != nil {
		if env, ok := bungie.PlatformError(err); ok {
			return nil, env.Err()
		}
		return nil, fmt.Errorf("cannot validate token: %w", err)
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}

	user := resp.Response.BungieNetUser
	if user.MembershipID == "" {
		return nil, errors.New("token has no Bungie.net membership")
	}

	claims := &TokenClaims{
		Subject:     user.MembershipID,
		Issuer:      v.Client.Configuration().Host,
		AccessToken: token,
		Extra:       map[string]any{"unique_name": user.UniqueName},
	}
	if primary, ok := resp.Response.Primary(); ok {
		claims.Extra["destiny_membership_id"] = primary.MembershipID
		claims.Extra["membership_type"] = primary.MembershipType
	}
	return claims, nil
}

// StaticTokenValidator accepts a fixed set of tokens. Useful in development.
type StaticTokenValidator struct {
	Tokens map[string]*TokenClaims
}

// ValidateToken implements TokenValidator.
func (v *StaticTokenValidator) ValidateToken(_ context.Context, token string) (*TokenClaims, error) {
	claims, ok := v.Tokens[token]
	if !ok {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
