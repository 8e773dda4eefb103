// Package bungie is a typed client for the Bungie.net Platform API.
//
// A Client groups the endpoints by their API module. Every method returns the
// platform envelope as a *Response; a transport failure is returned as the
// error. Methods acting for a signed in user take the OAuth tokens of that user.
package bungie

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mholzen/bungienet/pkg/client"
)

// Client is the entry point to the API. It is safe for concurrent use.
type Client struct {
	config *Configuration
	http   *client.Client

	App              *AppAPI
	User             *UserAPI
	Content          *ContentAPI
	Forum            *ForumAPI
	GroupV2          *GroupV2API
	Tokens           *TokensAPI
	Destiny2         *Destiny2API
	CommunityContent *CommunityContentAPI
	Trending         *TrendingAPI
	Fireteam         *FireteamAPI
	Social           *SocialAPI
	Core             *CoreAPI
	OAuth            *OAuth
}

// New resolves o and wires every endpoint module to one transport.
func New(o Options) (*Client, error) {
	cfg, err := BuildConfiguration(o)
	if err != nil {
		return nil, err
	}
	c := client.New(cfg.URLs.API,
		client.WithHeaders(cfg.Headers),
		client.WithFetcher(cfg.Fetcher),
	)
	return &Client{
		config:           cfg,
		http:             c,
		App:              &AppAPI{c: c},
		User:             &UserAPI{c: c},
		Content:          &ContentAPI{c: c},
		Forum:            &ForumAPI{c: c},
		GroupV2:          &GroupV2API{c: c},
		Tokens:           &TokensAPI{c: c},
		Destiny2:         &Destiny2API{c: c},
		CommunityContent: &CommunityContentAPI{c: c},
		Trending:         &TrendingAPI{c: c},
		Fireteam:         &FireteamAPI{c: c},
		Social:           &SocialAPI{c: c},
		Core:             &CoreAPI{c: c},
		OAuth:            newOAuth(cfg, c),
	}, nil
}

// Configuration returns a copy of the resolved configuration.
func (c *Client) Configuration() *Configuration {
	return c.config.clone()
}

// Call invokes any catalogued endpoint by "Module.Name" and returns the
// response undecoded. args fill the path placeholders in order.
func (c *Client) Call(ctx context.Context, name string, args []any, q client.Query, body any, tokens *client.Tokens) (*Response[json.RawMessage], error) {
	info, ok := LookupEndpoint(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEndpoint, name)
	}
	return endpoint[json.RawMessage]{info: info}.call(ctx, c.http, tokens, q, body, args...)
}
