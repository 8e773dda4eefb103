// Package mcp exposes Bungie.net Platform reads as Model Context Protocol tools,
// over stdio or streamable HTTP.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	mcptypes "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mholzen/bungienet/pkg/bungie"
	"github.com/mholzen/bungienet/pkg/client"
)

// DefaultExpose is the tool set enabled when Config.Expose is empty.
const DefaultExpose = "public"

// Config controls MCP server startup.
type Config struct {
	Client  *bungie.Client
	Expose  string
	Version string

	// Tokens act for a signed in user when a request carries no bearer token
	// of its own, e.g. over stdio.
	Tokens *client.Tokens
}

// RunServer starts the MCP stdio server with the requested tool set.
func RunServer(ctx context.Context, cfg Config) error {
	server, err := newServer(cfg)
	if err != nil {
		return err
	}

	return mcpserver.ServeStdio(server, mcpserver.WithStdioContextFunc(func(_ context.Context) context.Context {
		return ctx
	}))
}

func newServer(cfg Config) (*mcpserver.MCPServer, error) {
	if cfg.Client == nil {
		return nil, errors.New("mcp: bungie client is required")
	}

	expose := strings.TrimSpace(cfg.Expose)
	if expose == "" {
		expose = DefaultExpose
	}

	toolsToEnable, err := ParseExposeList(expose)
	if err != nil {
		return nil, err
	}

	builder := NewToolBuilder(cfg.Client, cfg.Tokens)
	serverTools, err := builder.BuildTools(toolsToEnable)
	if err != nil {
		return nil, err
	}

	hooks := &mcpserver.Hooks{}
	hooks.AddBeforeAny(func(ctx context.Context, id any, method mcptypes.MCPMethod, message any) {
		msgJSON, _ := json.Marshal(message)
		slog.Debug("mcp request", "id", id, "method", method, "message", string(msgJSON))
	})
	hooks.AddOnError(func(ctx context.Context, id any, method mcptypes.MCPMethod, message any, err error) {
		slog.Debug("mcp error", "id", id, "method", method, "error", err)
	})

	server := mcpserver.NewMCPServer(
		"bungienet",
		cfg.Version,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithLogging(),
		mcpserver.WithHooks(hooks),
	)

	for _, tool := range serverTools {
		server.AddTool(tool.Tool, instrument(tool.Tool.Name, tool.Handler))
	}
	slog.Debug("mcp tools enabled", "tools", strings.Join(toolsToEnable, ","))

	return server, nil
}

// ParseExposeList converts the --expose flag into a deduplicated, ordered tool list.
// Groups are all, public and auth. A tool is named either by its short name
// ("profile") or its full MCP name ("bungie_profile").
func ParseExposeList(raw string) ([]string, error) {
	var tokens []string
	for _, t := range strings.Split(raw, ",") {
		token := strings.TrimSpace(strings.ToLower(t))
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	if len(tokens) == 0 {
		tokens = []string{DefaultExpose}
	}

	result := make([]string, 0, len(allTools))
	seen := make(map[string]struct{})

	addSet := func(names []string) {
		for _, name := range names {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			result = append(result, name)
		}
	}

	for _, token := range tokens {
		if group, ok := groupMap[token]; ok {
			addSet(group)
			continue
		}
		if _, ok := fullNames[token]; ok {
			addSet([]string{token})
			continue
		}
		if _, ok := fullNames[toolPrefix+token]; ok {
			addSet([]string{toolPrefix + token})
			continue
		}
		return nil, fmt.Errorf("unknown tool or group in --expose: %s", token)
	}

	return result, nil
}

var (
	publicTools = []string{
		ToolEndpoints,
		ToolManifest,
		ToolEntityDefinition,
		ToolSearchPlayer,
		ToolLinkedProfiles,
		ToolProfile,
		ToolGroup,
		ToolGroupsForMember,
		ToolCall,
	}

	authTools = []string{
		ToolMyMemberships,
	}

	allTools = append(append([]string{}, publicTools...), authTools...)

	groupMap = map[string][]string{
		"all":    allTools,
		"public": publicTools,
		"auth":   authTools,
	}

	fullNames = func() map[string]struct{} {
		out := make(map[string]struct{}, len(allTools))
		for _, name := range allTools {
			out[name] = struct{}{}
		}
		return out
	}()
)
