package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mholzen/bungienet/pkg/bungie"
	"github.com/mholzen/bungienet/pkg/client"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func printJSON(w io.Writer, response any) error {
	prettyJSON, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot format JSON: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", prettyJSON)
	return err
}

// printResponse prints the payload of a successful envelope. Platform errors,
// including those sent with a non-2xx status, are returned instead.
func printResponse[T any](w io.Writer, resp *bungie.Response[T], err error) error {
	if err != nil {
		if env, ok := bungie.PlatformError(err); ok {
			return env.Err()
		}
		return err
	}
	if err := resp.Err(); err != nil {
		return err
	}
	return printJSON(w, resp.Response)
}

// printEndpoints lists endpoints grouped under a heading per module.
func printEndpoints(w io.Writer, endpoints []bungie.EndpointInfo) error {
	caser := cases.Title(language.English)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	module := ""
	for _, e := range endpoints {
		if e.Module != module {
			if module != "" {
				fmt.Fprintln(tw)
			}
			module = e.Module
			fmt.Fprintf(tw, "%s\n", module)
		}
		auth := ""
		if e.Auth != bungie.AuthNone {
			auth = caser.String(e.Auth.String() + " auth")
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", e.Name, e.Method, e.Path, auth)
	}
	return tw.Flush()
}

// parseQueryFlags reads repeated --query key=value flags.
func parseQueryFlags(values []string) (client.Query, error) {
	var q client.Query
	for _, v := range values {
		key, value, ok := strings.Cut(v, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --query %q: want key=value", v)
		}
		q = q.Add(key, value)
	}
	return q, nil
}
