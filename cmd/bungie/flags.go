package main

import (
	"log"

	"github.com/mholzen/bungienet/pkg/bungie"
	"github.com/mholzen/bungienet/pkg/mcp"
	"github.com/mholzen/bungienet/pkg/tokenstore"
	"github.com/urfave/cli/v3"
)

var defaultTokenFile string

func init() {
	path, err := tokenstore.DefaultPath()
	if err != nil {
		log.Fatalf("cannot get home directory: %v", err)
	}
	defaultTokenFile = path
}

func getGlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "api-key",
			Usage:   "Bungie.net application API key",
			Sources: cli.EnvVars("BUNGIE_API_KEY"),
		},
		&cli.StringFlag{
			Name:    "client-id",
			Usage:   "OAuth client id of the application",
			Sources: cli.EnvVars("BUNGIE_CLIENT_ID"),
		},
		&cli.StringFlag{
			Name:    "client-secret",
			Usage:   "OAuth client secret of the application",
			Sources: cli.EnvVars("BUNGIE_CLIENT_SECRET"),
		},
		&cli.StringFlag{
			Name:    "redirect-uri",
			Usage:   "OAuth redirect URL registered for the application",
			Sources: cli.EnvVars("BUNGIE_REDIRECT_URI"),
		},
		&cli.StringFlag{
			Name:    "host",
			Value:   bungie.DefaultHost,
			Usage:   "Bungie.net host, e.g. a mock server",
			Sources: cli.EnvVars("BUNGIE_HOST"),
		},
		&cli.StringFlag{
			Name:    "token-file",
			Value:   defaultTokenFile,
			Usage:   "Where OAuth tokens of the signed in user are kept",
			Sources: cli.EnvVars("BUNGIE_TOKEN_FILE"),
		},
		&cli.StringFlag{
			Name:    "log-level",
			Value:   "warn",
			Usage:   "Log level: debug, info, warn, error",
			Sources: cli.EnvVars("BUNGIE_LOG_LEVEL"),
		},
		&cli.StringFlag{
			Name:  "log-file",
			Usage: "Append logs to this file instead of stderr",
		},
	}
}

func getMembershipTypeFlag(defaultValue bungie.BungieMembershipType) cli.Flag {
	return &cli.IntFlag{
		Name:    "membership-type",
		Aliases: []string{"t"},
		Value:   int(defaultValue),
		Usage:   "Membership type: 1 Xbox, 2 PSN, 3 Steam, 6 Epic, 254 Bungie.net, -1 all",
	}
}

func getComponentsFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "components",
		Aliases: []string{"c"},
		Value:   "Profiles,Characters",
		Usage:   "Comma separated component names or numbers",
	}
}

func getExposeFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "expose",
		Value: mcp.DefaultExpose,
		Usage: "Tools to expose: public, auth, all, or comma-separated tool names",
	}
}

func getAuthFlag(usage string) cli.Flag {
	return &cli.BoolFlag{
		Name:  "auth",
		Usage: usage,
	}
}

// getOptions reads the global flags into library options.
func getOptions(cmd *cli.Command) bungie.Options {
	return bungie.Options{
		APIKey:       cmd.String("api-key"),
		ClientID:     cmd.String("client-id"),
		ClientSecret: cmd.String("client-secret"),
		RedirectURI:  cmd.String("redirect-uri"),
		Host:         cmd.String("host"),
		UserAgent: bungie.UserAgentInfo{
			Name:           "bungie-cli",
			Version:        version,
			ContactWebsite: "github.com/mholzen/bungienet",
		},
	}
}
