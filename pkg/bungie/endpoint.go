package bungie

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mholzen/bungienet/pkg/client"
)

// AuthMode tells whether an endpoint acts on behalf of a signed-in user.
type AuthMode int

const (
	// AuthNone endpoints only need the API key.
	AuthNone AuthMode = iota
	// AuthOptional endpoints return more data when a token is supplied.
	AuthOptional
	// AuthRequired endpoints fail on the platform side without a token.
	AuthRequired
)

func (a AuthMode) String() string {
	switch a {
	case AuthOptional:
		return "optional"
	case AuthRequired:
		return "required"
	default:
		return "none"
	}
}

// EndpointInfo describes one remote operation. Path is relative to the API
// base URL and contains one {placeholder} per path argument.
type EndpointInfo struct {
	Module string
	Name   string
	Method string
	Path   string
	Auth   AuthMode
}

// FullName is "Module.Name", the key accepted by LookupEndpoint and Client.Call.
func (e EndpointInfo) FullName() string {
	return e.Module + "." + e.Name
}

// Params returns the placeholder names of the path template in order.
func (e EndpointInfo) Params() []string {
	var names []string
	rest := e.Path
	for {
		start := strings.IndexByte(rest, '{')
		if start < 0 {
			return names
		}
		end := strings.IndexByte(rest[start:], '}')
		if end < 0 {
			return names
		}
		names = append(names, rest[start+1:start+end])
		rest = rest[start+end+1:]
	}
}

var catalog []EndpointInfo

// endpoint binds an EndpointInfo to its response type.
type endpoint[T any] struct {
	info EndpointInfo
}

func register[T any](module, name, method, path string, auth AuthMode) endpoint[T] {
	info := EndpointInfo{Module: module, Name: name, Method: method, Path: path, Auth: auth}
	catalog = append(catalog, info)
	return endpoint[T]{info: info}
}

func get[T any](module, name, path string, auth AuthMode) endpoint[T] {
	return register[T](module, name, "GET", path, auth)
}

func post[T any](module, name, path string, auth AuthMode) endpoint[T] {
	return register[T](module, name, "POST", path, auth)
}

// call expands the path with args, appends q, attaches tokens and sends body.
func (e endpoint[T]) call(ctx context.Context, c *client.Client, tokens *client.Tokens, q client.Query, body any, args ...any) (*Response[T], error) {
	path, err := expandPath(e.info.Path, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", e.info.FullName(), err)
	}
	if e.info.Auth == AuthRequired && (tokens == nil || tokens.AccessToken == "") {
		slog.Debug("calling authenticated endpoint without access token", "endpoint", e.info.FullName())
	}

	var resp Response[T]
	if err := c.Do(ctx, e.info.Method, client.FormatQuery(path, q), tokens, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// expandPath substitutes args, in order, for the {placeholders} of tmpl.
// Values are inserted as printed by fmt, without escaping.
func expandPath(tmpl string, args ...any) (string, error) {
	var sb strings.Builder
	rest := tmpl
	n := 0
	for {
		start := strings.IndexByte(rest, '{')
		if start < 0 {
			sb.WriteString(rest)
			break
		}
		end := strings.IndexByte(rest[start:], '}')
		if end < 0 {
			return "", fmt.Errorf("unterminated placeholder in path %q", tmpl)
		}
		if n >= len(args) {
			return "", fmt.Errorf("path %q needs more than %d arguments", tmpl, len(args))
		}
		sb.WriteString(rest[:start])
		sb.WriteString(fmt.Sprint(args[n]))
		n++
		rest = rest[start+end+1:]
	}
	if n != len(args) {
		return "", fmt.Errorf("path %q takes %d arguments, got %d", tmpl, n, len(args))
	}
	return sb.String(), nil
}

// Catalog lists every endpoint known to this package in declaration order.
func Catalog() []EndpointInfo {
	out := make([]EndpointInfo, len(catalog))
	copy(out, catalog)
	return out
}

// LookupEndpoint finds an endpoint by "Module.Name", ignoring case.
func LookupEndpoint(fullName string) (EndpointInfo, bool) {
	for _, e := range catalog {
		if strings.EqualFold(e.FullName(), fullName) {
			return e, true
		}
	}
	return EndpointInfo{}, false
}
