package bungie

import (
	"net/http"
	"strings"

	"github.com/mholzen/bungienet/pkg/client"
)

// DefaultHost is the production Bungie.net host.
const DefaultHost = "https://www.bungie.net"

const (
	apiPath           = "/Platform"
	authorizationPath = "/en/OAuth/Authorize"
	tokenPath         = "/Platform/App/OAuth/Token"
)

// Options is the raw configuration supplied by the caller.
type Options struct {
	// APIKey is the application's API key. Required.
	APIKey string

	// ClientID, ClientSecret and RedirectURI identify the OAuth application.
	// They are only needed for the OAuth flows.
	ClientID     string
	ClientSecret string
	RedirectURI  string

	// Host overrides DefaultHost, e.g. to point at a mock server.
	Host string

	UserAgent UserAgent

	// Fetcher replaces the default net/http transport for this client only.
	Fetcher client.Fetcher
}

// URLs are derived from the host by fixed suffixes.
type URLs struct {
	API           string
	Authorization string
	Token         string
}

// App holds the OAuth application credentials. Empty strings mean absent.
type App struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
}

// Configuration is the resolved client configuration. It is not modified after
// BuildConfiguration returns.
type Configuration struct {
	Host    string
	URLs    URLs
	App     App
	Headers http.Header
	Fetcher client.Fetcher
}

// BuildConfiguration resolves o into a Configuration.
func BuildConfiguration(o Options) (*Configuration, error) {
	if o.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	host := strings.TrimRight(o.Host, "/")
	if host == "" {
		host = DefaultHost
	}

	headers := http.Header{}
	headers.Set("X-API-Key", o.APIKey)
	headers.Set("User-Agent", FormatUserAgent(o.UserAgent, o.ClientID))

	fetcher := o.Fetcher
	if fetcher == nil {
		fetcher = client.NewHTTPFetcher(nil)
	}

	return &Configuration{
		Host: host,
		URLs: URLs{
			API:           host + apiPath,
			Authorization: host + authorizationPath,
			Token:         host + tokenPath,
		},
		App: App{
			ClientID:     o.ClientID,
			ClientSecret: o.ClientSecret,
			RedirectURI:  o.RedirectURI,
		},
		Headers: headers,
		Fetcher: fetcher,
	}, nil
}

func (c *Configuration) clone() *Configuration {
	cp := *c
	cp.Headers = c.Headers.Clone()
	return &cp
}
