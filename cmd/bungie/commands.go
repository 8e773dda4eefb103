package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/mholzen/bungienet/pkg/bungie"
	"github.com/mholzen/bungienet/pkg/client"
	"github.com/mholzen/bungienet/pkg/mcp"
	"github.com/mholzen/bungienet/pkg/tokenstore"
	"github.com/urfave/cli/v3"
)

func getCommands(provider ClientProvider) []*cli.Command {
	return []*cli.Command{
		getEndpointsCommand(),
		getCallCommand(provider),
		getManifestCommand(provider),
		getSearchCommand(provider),
		getProfileCommand(provider),
		getMeCommand(provider),
		getOAuthCommand(provider),
		getMcpCommand(provider),
		getServeCommand(provider),
		getVersionCommand(),
	}
}

func getEndpointsCommand() *cli.Command {
	return &cli.Command{
		Name:      "endpoints",
		Usage:     "List the platform endpoints",
		UsageText: "bungie endpoints [<module>] [--json]",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:      "module",
				UsageText: "<module> (default: all)",
			},
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print as JSON",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			module := cmd.StringArg("module")

			var endpoints []bungie.EndpointInfo
			for _, e := range bungie.Catalog() {
				if module == "" || strings.EqualFold(e.Module, module) {
					endpoints = append(endpoints, e)
				}
			}
			if len(endpoints) == 0 {
				return fmt.Errorf("no endpoints in module %q", module)
			}

			w := cmd.Root().Writer
			if cmd.Bool("json") {
				return printJSON(w, endpoints)
			}
			return printEndpoints(w, endpoints)
		},
	}
}

func getCallCommand(provider ClientProvider) *cli.Command {
	return &cli.Command{
		Name:      "call",
		Usage:     "Call any endpoint by name and print the raw response",
		UsageText: "bungie call <Module.Name> [<arg>...] [--query key=value]... [--body json] [--auth]",
		Description: `Path arguments fill the placeholders of the endpoint path in order.
Use "bungie endpoints" to list names and placeholders.

Examples:
  bungie call Destiny2.GetPostGameCarnageReport 12345678901
  bungie call GroupV2.GetMembersOfGroup 4219278 1 --query memberType=3
  bungie call Destiny2.EquipItem --auth --body '{"itemId":"1","characterId":"2","membershipType":3}'`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "query",
				Aliases: []string{"q"},
				Usage:   "Query parameter as key=value (repeatable)",
			},
			&cli.StringFlag{
				Name:  "body",
				Usage: "JSON request body for POST endpoints",
			},
			getAuthFlag("Act as the signed in user"),
		},
		Action: provider(func(ctx context.Context, cmd *cli.Command, c *bungie.Client) error {
			name := cmd.Args().First()
			if name == "" {
				return errors.New("endpoint name is required")
			}
			var args []any
			for _, a := range cmd.Args().Tail() {
				args = append(args, a)
			}

			q, err := parseQueryFlags(cmd.StringSlice("query"))
			if err != nil {
				return err
			}

			var body any
			if raw := cmd.String("body"); raw != "" {
				if !json.Valid([]byte(raw)) {
					return errors.New("--body is not valid JSON")
				}
				body = json.RawMessage(raw)
			}

			var tokens *client.Tokens
			if cmd.Bool("auth") {
				if tokens, err = signedInTokens(ctx, c, cmd.String("token-file")); err != nil {
					return err
				}
			}

			resp, err := c.Call(ctx, name, args, q, body, tokens)
			return printResponse(cmd.Root().Writer, resp, err)
		}),
	}
}

func getManifestCommand(provider ClientProvider) *cli.Command {
	return &cli.Command{
		Name:      "manifest",
		Usage:     "Show the current Destiny 2 manifest",
		UsageText: "bungie manifest",
		Action: provider(func(ctx context.Context, cmd *cli.Command, c *bungie.Client) error {
			resp, err := c.Destiny2.GetDestinyManifest(ctx)
			return printResponse(cmd.Root().Writer, resp, err)
		}),
	}
}

func getSearchCommand(provider ClientProvider) *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Find Destiny 2 memberships by Bungie Name",
		UsageText: "bungie search <name#code> [--membership-type=-1]",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:      "name",
				UsageText: "<name#code>",
			},
		},
		Flags: []cli.Flag{
			getMembershipTypeFlag(bungie.MembershipTypeAll),
		},
		Action: provider(func(ctx context.Context, cmd *cli.Command, c *bungie.Client) error {
			search, err := bungie.ParseBungieName(cmd.StringArg("name"))
			if err != nil {
				return err
			}
			membershipType := bungie.BungieMembershipType(cmd.Int("membership-type"))
			resp, err := c.Destiny2.SearchDestinyPlayerByBungieName(ctx, membershipType, search)
			return printResponse(cmd.Root().Writer, resp, err)
		}),
	}
}

func getProfileCommand(provider ClientProvider) *cli.Command {
	return &cli.Command{
		Name:      "profile",
		Usage:     "Show a Destiny 2 profile",
		UsageText: "bungie profile <membership-type> <membership-id> [--components=Profiles,Characters] [--auth]",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:      "membership-type",
				UsageText: "<membership-type>",
			},
			&cli.StringArg{
				Name:      "membership-id",
				UsageText: "<membership-id>",
			},
		},
		Flags: []cli.Flag{
			getComponentsFlag(),
			getAuthFlag("Act as the signed in user to include private components"),
		},
		Action: provider(func(ctx context.Context, cmd *cli.Command, c *bungie.Client) error {
			rawType := cmd.StringArg("membership-type")
			membershipID := cmd.StringArg("membership-id")
			if rawType == "" || membershipID == "" {
				return errors.New("membership type and membership id are required")
			}
			n, err := strconv.Atoi(rawType)
			if err != nil {
				return fmt.Errorf("invalid membership type %q", rawType)
			}
			membershipType := bungie.BungieMembershipType(n)

			components, err := bungie.ParseComponentTypes(cmd.String("components"))
			if err != nil {
				return err
			}
			if len(components) == 0 {
				return errors.New("at least one component is required")
			}

			var tokens *client.Tokens
			if cmd.Bool("auth") {
				if tokens, err = signedInTokens(ctx, c, cmd.String("token-file")); err != nil {
					return err
				}
			}

			resp, err := c.Destiny2.GetProfile(ctx, membershipType, membershipID, components, tokens)
			return printResponse(cmd.Root().Writer, resp, err)
		}),
	}
}

func getMeCommand(provider ClientProvider) *cli.Command {
	return &cli.Command{
		Name:      "me",
		Usage:     "Show the memberships of the signed in user",
		UsageText: "bungie me",
		Action: provider(func(ctx context.Context, cmd *cli.Command, c *bungie.Client) error {
			tokens, err := signedInTokens(ctx, c, cmd.String("token-file"))
			if err != nil {
				return err
			}
			resp, err := c.User.GetMembershipDataForCurrentUser(ctx, tokens)
			return printResponse(cmd.Root().Writer, resp, err)
		}),
	}
}

func getOAuthCommand(provider ClientProvider) *cli.Command {
	return &cli.Command{
		Name:  "oauth",
		Usage: "Sign in with Bungie.net and manage stored tokens",
		Description: `Signing in takes two steps:

  bungie oauth url              # open the printed URL and approve the application
  bungie oauth token <code>     # exchange the code from the redirect for tokens

Tokens are stored in --token-file and refreshed when they expire.
Requires --client-id and --client-secret (BUNGIE_CLIENT_ID, BUNGIE_CLIENT_SECRET).`,
		Commands: []*cli.Command{
			{
				Name:      "url",
				Usage:     "Print the authorization URL",
				UsageText: "bungie oauth url [--state=<state>]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "state",
						Usage: "State echoed back on the redirect (default: random)",
					},
				},
				Action: provider(func(ctx context.Context, cmd *cli.Command, c *bungie.Client) error {
					state := cmd.String("state")
					if state == "" {
						state = uuid.NewString()
					}
					fmt.Fprintln(cmd.Root().Writer, c.OAuth.AuthorizationURL(state))
					fmt.Fprintf(cmd.Root().ErrWriter, "state: %s\n", state)
					return nil
				}),
			},
			{
				Name:      "token",
				Usage:     "Exchange an authorization code for tokens",
				UsageText: "bungie oauth token <code>",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name:      "code",
						UsageText: "<code>",
					},
				},
				Action: provider(func(ctx context.Context, cmd *cli.Command, c *bungie.Client) error {
					path := cmd.String("token-file")
					resp, err := c.OAuth.AccessToken(ctx, cmd.StringArg("code"))
					entry, err := storeTokenResponse(path, resp, err)
					if err != nil {
						return err
					}
					slog.Info("signed in", "membership_id", entry.MembershipID, "token_file", path)
					return printJSON(cmd.Root().Writer, statusOf(entry, now()))
				}),
			},
			{
				Name:      "refresh",
				Usage:     "Exchange the stored refresh token for new tokens",
				UsageText: "bungie oauth refresh",
				Action: provider(func(ctx context.Context, cmd *cli.Command, c *bungie.Client) error {
					entry, err := refreshTokens(ctx, c, cmd.String("token-file"))
					if err != nil {
						return err
					}
					return printJSON(cmd.Root().Writer, statusOf(entry, now()))
				}),
			},
			{
				Name:      "status",
				Usage:     "Show the stored tokens' owner and expiry",
				UsageText: "bungie oauth status",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					entry, err := tokenstore.Read(cmd.String("token-file"))
					if err != nil {
						return err
					}
					if entry == nil {
						return errNotSignedIn
					}
					return printJSON(cmd.Root().Writer, statusOf(entry, now()))
				},
			},
			{
				Name:      "logout",
				Usage:     "Delete the stored tokens",
				UsageText: "bungie oauth logout",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return tokenstore.Remove(cmd.String("token-file"))
				},
			},
		},
	}
}

func getMcpCommand(provider ClientProvider) *cli.Command {
	return &cli.Command{
		Name:      "mcp",
		Usage:     "Run as MCP server (stdio transport)",
		UsageText: "bungie mcp [options]",
		Description: `Start the Bungie.net MCP server for AI assistants.

The server communicates via stdio using the Model Context Protocol (MCP).

Tool groups:
  public  Manifest, definitions, player search, profiles, groups and generic GET calls (default)
  auth    Tools acting for the signed in user
  all     All available tools

Examples:
  bungie mcp                         # Public tools
  bungie mcp --expose=all --auth     # Include the signed in user's tools
  bungie mcp --expose=profile,call   # Specific tools only`,
		Flags: []cli.Flag{
			getExposeFlag(),
			getAuthFlag("Let tools act as the signed in user"),
		},
		Action: provider(func(ctx context.Context, cmd *cli.Command, c *bungie.Client) error {
			cfg := mcp.Config{
				Client:  c,
				Expose:  cmd.String("expose"),
				Version: version,
			}
			if cmd.Bool("auth") {
				tokens, err := signedInTokens(ctx, c, cmd.String("token-file"))
				if err != nil {
					return err
				}
				cfg.Tokens = tokens
			}
			return mcp.RunServer(ctx, cfg)
		}),
	}
}

func getServeCommand(provider ClientProvider) *cli.Command {
	return &cli.Command{
		Name:      "serve",
		Usage:     "Run as hosted MCP server (streamable HTTP transport with OAuth)",
		UsageText: "bungie serve [options]",
		Description: `Start the Bungie.net MCP server over HTTP.

With --oauth, requests must carry a Bungie.net access token as a bearer token.
Each token is checked against the platform and tools act for its owner. The
server publishes RFC 9728 protected resource metadata for discovery.

Examples:
  # Development, no auth
  bungie serve --addr=:8080

  # Hosted, with Bungie.net tokens
  bungie serve --addr=:8443 --oauth --expose=all \
    --tls-cert=cert.pem --tls-key=key.pem \
    --base-url=https://mcp.example.com`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Value: ":8080",
				Usage: "Address to listen on (e.g., :8080 or localhost:8080)",
			},
			&cli.StringFlag{
				Name:  "base-url",
				Usage: "Canonical URL of this server (for OAuth resource indicator)",
			},
			getExposeFlag(),
			&cli.StringFlag{
				Name:  "tls-cert",
				Usage: "Path to TLS certificate file for HTTPS",
			},
			&cli.StringFlag{
				Name:  "tls-key",
				Usage: "Path to TLS key file for HTTPS",
			},
			&cli.BoolFlag{
				Name:  "oauth",
				Usage: "Validate bearer tokens against Bungie.net",
			},
			&cli.BoolFlag{
				Name:  "oauth-require-auth",
				Value: true,
				Usage: "Require a bearer token on every request (with --oauth)",
			},
			&cli.StringFlag{
				Name:  "endpoint-path",
				Value: "/mcp",
				Usage: "Path for the MCP endpoint",
			},
			&cli.BoolFlag{
				Name:  "cors",
				Usage: "Enable CORS for browser-based clients",
			},
			&cli.StringSliceFlag{
				Name:  "cors-origin",
				Usage: "Allowed CORS origins (if empty, allows all when --cors is enabled)",
			},
			&cli.StringFlag{
				Name:  "metrics-path",
				Value: "/metrics",
				Usage: "Path for Prometheus metrics (empty to disable)",
			},
		},
		Action: provider(func(ctx context.Context, cmd *cli.Command, c *bungie.Client) error {
			httpConfig := mcp.HTTPConfig{
				Config: mcp.Config{
					Client:  c,
					Expose:  cmd.String("expose"),
					Version: version,
				},
				Addr:           cmd.String("addr"),
				BaseURL:        cmd.String("base-url"),
				TLSCertFile:    cmd.String("tls-cert"),
				TLSKeyFile:     cmd.String("tls-key"),
				EndpointPath:   cmd.String("endpoint-path"),
				EnableCORS:     cmd.Bool("cors"),
				AllowedOrigins: cmd.StringSlice("cors-origin"),
				MetricsPath:    cmd.String("metrics-path"),
			}

			if cmd.Bool("oauth") {
				httpConfig.OAuth = serveOAuthConfig(httpConfig, c, cmd.Bool("oauth-require-auth"))
				slog.Info("OAuth authentication enabled",
					"authorization_server", c.Configuration().Host,
					"require_auth", httpConfig.OAuth.RequireAuth,
				)
			}

			return mcp.RunHTTPServer(ctx, httpConfig)
		}),
	}
}

func serveOAuthConfig(cfg mcp.HTTPConfig, c *bungie.Client, requireAuth bool) *mcp.OAuthConfig {
	resource := cfg.BaseURL
	if resource == "" {
		protocol := "http"
		if cfg.TLSCertFile != "" {
			protocol = "https"
		}
		resource = fmt.Sprintf("%s://localhost%s", protocol, cfg.Addr)
	}
	return &mcp.OAuthConfig{
		AuthorizationServers: []string{c.Configuration().Host},
		Resource:             resource,
		ResourceName:         "Bungie.net MCP Server",
		TokenValidator:       &mcp.PlatformTokenValidator{Client: c},
		RequireAuth:          requireAuth,
	}
}

func getVersionCommand() *cli.Command {
	return &cli.Command{
		Name:      "version",
		Usage:     "Show version information",
		UsageText: "bungie version",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			w := cmd.Root().Writer
			fmt.Fprintf(w, "bungie version %s\n", version)
			fmt.Fprintf(w, "commit: %s\n", commit)
			fmt.Fprintf(w, "built: %s\n", date)
			return nil
		},
	}
}

func createClient(cmd *cli.Command) (*bungie.Client, error) {
	c, err := bungie.New(getOptions(cmd))
	if errors.Is(err, bungie.ErrMissingAPIKey) {
		return nil, fmt.Errorf("%w: set --api-key or BUNGIE_API_KEY", err)
	}
	return c, err
}

type ClientActionFunc func(ctx context.Context, cmd *cli.Command, c *bungie.Client) error

type ClientProvider func(ClientActionFunc) cli.ActionFunc

func withClient(fn ClientActionFunc) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		c, err := createClient(cmd)
		if err != nil {
			return err
		}
		return fn(ctx, cmd, c)
	}
}
