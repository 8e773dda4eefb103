package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/carlmjohnson/versioninfo"
	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"
)

// Set by -ldflags at release time. Left empty, they come from the build info.
var (
	version = ""
	commit  = ""
	date    = ""
)

func init() {
	if version == "" {
		version = versioninfo.Short()
	}
	if commit == "" {
		commit = versioninfo.Revision
	}
	if date == "" && !versioninfo.LastCommit.IsZero() {
		date = versioninfo.LastCommit.Format("2006-01-02T15:04:05Z07:00")
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand(withClient).Run(ctx, os.Args); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand(provider ClientProvider) *cli.Command {
	return &cli.Command{
		Name:    "bungie",
		Usage:   "Bungie.net Platform API client",
		Version: version,
		Flags:   getGlobalFlags(),
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			return ctx, setupLogging(cmd.String("log-level"), cmd.String("log-file"))
		},
		Commands: getCommands(provider),
	}
}
