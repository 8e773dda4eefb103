package client

import "net/http"

// Tokens is an OAuth token pair supplied per call. Only AccessToken is used to
// authenticate requests; RefreshToken is carried for the refresh grant.
type Tokens struct {
	AccessToken  string `json:"access_token,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// AuthHeaders returns a copy of base with "Authorization: Bearer <token>" added
// when tokens carries a non-empty access token. base is never modified.
func AuthHeaders(base http.Header, tokens *Tokens) http.Header {
	h := base.Clone()
	if h == nil {
		h = http.Header{}
	}
	if tokens != nil && tokens.AccessToken != "" {
		h.Set("Authorization", "Bearer "+tokens.AccessToken)
	}
	return h
}
