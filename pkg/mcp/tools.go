package mcp

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	mcptypes "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mholzen/bungienet/pkg/bungie"
	"github.com/mholzen/bungienet/pkg/client"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const toolPrefix = "bungie_"

const (
	ToolEndpoints        = "bungie_endpoints"
	ToolManifest         = "bungie_manifest"
	ToolEntityDefinition = "bungie_entity_definition"
	ToolSearchPlayer     = "bungie_search_player"
	ToolLinkedProfiles   = "bungie_linked_profiles"
	ToolProfile          = "bungie_profile"
	ToolGroup            = "bungie_group"
	ToolGroupsForMember  = "bungie_groups_for_member"
	ToolMyMemberships    = "bungie_my_memberships"
	ToolCall             = "bungie_call"
)

const defaultComponents = "Profiles,Characters"

// ToolBuilder wires Bungie.net endpoints into MCP tool handlers.
type ToolBuilder struct {
	client *bungie.Client
	tokens *client.Tokens
}

// NewToolBuilder creates a builder bound to c. tokens, when set, are used by
// requests that carry no bearer token.
func NewToolBuilder(c *bungie.Client, tokens *client.Tokens) ToolBuilder {
	return ToolBuilder{client: c, tokens: tokens}
}

// tokensFor prefers the caller's validated bearer token over the builder's.
func (b ToolBuilder) tokensFor(ctx context.Context) *client.Tokens {
	if t := TokenClaimsFromContext(ctx).Tokens(); t != nil {
		return t
	}
	return b.tokens
}

// BuildTools constructs the requested tools in the order provided.
func (b ToolBuilder) BuildTools(toolNames []string) ([]mcpserver.ServerTool, error) {
	factories := map[string]func() mcpserver.ServerTool{
		ToolEndpoints:        b.buildEndpointsTool,
		ToolManifest:         b.buildManifestTool,
		ToolEntityDefinition: b.buildEntityDefinitionTool,
		ToolSearchPlayer:     b.buildSearchPlayerTool,
		ToolLinkedProfiles:   b.buildLinkedProfilesTool,
		ToolProfile:          b.buildProfileTool,
		ToolGroup:            b.buildGroupTool,
		ToolGroupsForMember:  b.buildGroupsForMemberTool,
		ToolMyMemberships:    b.buildMyMembershipsTool,
		ToolCall:             b.buildCallTool,
	}

	var tools []mcpserver.ServerTool
	for _, name := range toolNames {
		factory, ok := factories[name]
		if !ok {
			return nil, fmt.Errorf("unknown tool: %s", name)
		}
		tools = append(tools, factory())
	}
	return tools, nil
}

// toolTitle turns "bungie_search_player" into "Search Player".
func toolTitle(name string) string {
	words := strings.ReplaceAll(strings.TrimPrefix(name, toolPrefix), "_", " ")
	return cases.Title(language.English).String(words)
}

func newReadTool(name, description string, opts ...mcptypes.ToolOption) mcptypes.Tool {
	opts = append([]mcptypes.ToolOption{
		mcptypes.WithDescription(description),
		mcptypes.WithTitleAnnotation(toolTitle(name)),
		mcptypes.WithReadOnlyHintAnnotation(true),
	}, opts...)
	return mcptypes.NewTool(name, opts...)
}

func withMembershipType(defaultValue int) mcptypes.ToolOption {
	return mcptypes.WithNumber("membership_type",
		mcptypes.Description("Platform membership type (1 Xbox, 2 PSN, 3 Steam, 6 Epic, 254 Bungie.net, -1 all)"),
		mcptypes.DefaultNumber(float64(defaultValue)),
	)
}

func withMembershipID(description string) mcptypes.ToolOption {
	return mcptypes.WithString("membership_id",
		mcptypes.Description(description),
		mcptypes.Required(),
	)
}

// envelopeResult turns a platform reply into a tool result. Transport and
// platform failures become error results.
func envelopeResult[T any](resp *bungie.Response[T], err error) (*mcptypes.CallToolResult, error) {
	if err != nil {
		if env, ok := bungie.PlatformError(err); ok {
			return mcptypes.NewToolResultErrorFromErr("request failed", env.Err()), nil
		}
		return mcptypes.NewToolResultErrorFromErr("request failed", err), nil
	}
	if err := resp.Err(); err != nil {
		return mcptypes.NewToolResultError(err.Error()), nil
	}
	return mcptypes.NewToolResultJSON(resp.Response)
}

func requiredString(req mcptypes.CallToolRequest, key string) (string, *mcptypes.CallToolResult) {
	v := strings.TrimSpace(req.GetString(key, ""))
	if v == "" {
		return "", mcptypes.NewToolResultErrorf("%s is required", key)
	}
	return v, nil
}

func (b ToolBuilder) buildEndpointsTool() mcpserver.ServerTool {
	return mcpserver.ServerTool{
		Tool: newReadTool(ToolEndpoints,
			"List the Bungie.net Platform endpoints callable with "+ToolCall,
			mcptypes.WithString("module",
				mcptypes.Description("Only list this module, e.g. Destiny2 or GroupV2"),
			),
		),
		Handler: func(ctx context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
			module := strings.TrimSpace(req.GetString("module", ""))

			type entry struct {
				Name   string   `json:"name"`
				Method string   `json:"method"`
				Path   string   `json:"path"`
				Params []string `json:"params,omitempty"`
				Auth   string   `json:"auth"`
			}
			var entries []entry
			for _, e := range bungie.Catalog() {
				if module != "" && !strings.EqualFold(e.Module, module) {
					continue
				}
				entries = append(entries, entry{
					Name:   e.FullName(),
					Method: e.Method,
					Path:   e.Path,
					Params: e.Params(),
					Auth:   e.Auth.String(),
				})
			}
			if len(entries) == 0 {
				return mcptypes.NewToolResultErrorf("no endpoints in module %q", module), nil
			}
			return mcptypes.NewToolResultJSON(map[string]any{"endpoints": entries})
		},
	}
}

func (b ToolBuilder) buildManifestTool() mcpserver.ServerTool {
	return mcpserver.ServerTool{
		Tool: newReadTool(ToolManifest, "Get the current Destiny 2 manifest: versions and paths of the definition databases"),
		Handler: func(ctx context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
			return envelopeResult(b.client.Destiny2.GetDestinyManifest(ctx))
		},
	}
}

func (b ToolBuilder) buildEntityDefinitionTool() mcpserver.ServerTool {
	return mcpserver.ServerTool{
		Tool: newReadTool(ToolEntityDefinition,
			"Get one Destiny 2 definition by type and hash",
			mcptypes.WithString("entity_type",
				mcptypes.Description("Definition type, e.g. DestinyInventoryItemDefinition"),
				mcptypes.Required(),
			),
			mcptypes.WithString("hash",
				mcptypes.Description("Unsigned 32 bit hash identifier"),
				mcptypes.Required(),
			),
		),
		Handler: func(ctx context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
			entityType, errResult := requiredString(req, "entity_type")
			if errResult != nil {
				return errResult, nil
			}
			rawHash, errResult := requiredString(req, "hash")
			if errResult != nil {
				return errResult, nil
			}
			hash, err := strconv.ParseUint(rawHash, 10, 32)
			if err != nil {
				return mcptypes.NewToolResultErrorFromErr("invalid hash", err), nil
			}
			return envelopeResult(b.client.Destiny2.GetDestinyEntityDefinition(ctx, entityType, uint32(hash)))
		},
	}
}

func (b ToolBuilder) buildSearchPlayerTool() mcpserver.ServerTool {
	return mcpserver.ServerTool{
		Tool: newReadTool(ToolSearchPlayer,
			"Find Destiny 2 memberships by Bungie Name",
			mcptypes.WithString("name",
				mcptypes.Description("Bungie Name as name#code, e.g. Guardian#1234"),
				mcptypes.Required(),
			),
			withMembershipType(int(bungie.MembershipTypeAll)),
		),
		Handler: func(ctx context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
			name, errResult := requiredString(req, "name")
			if errResult != nil {
				return errResult, nil
			}
			search, err := bungie.ParseBungieName(name)
			if err != nil {
				return mcptypes.NewToolResultError(err.Error()), nil
			}
			membershipType := bungie.BungieMembershipType(req.GetInt("membership_type", int(bungie.MembershipTypeAll)))
			return envelopeResult(b.client.Destiny2.SearchDestinyPlayerByBungieName(ctx, membershipType, search))
		},
	}
}

func (b ToolBuilder) buildLinkedProfilesTool() mcpserver.ServerTool {
	return mcpserver.ServerTool{
		Tool: newReadTool(ToolLinkedProfiles,
			"List the Destiny profiles linked to a membership",
			withMembershipType(int(bungie.MembershipTypeBungieNext)),
			withMembershipID("Bungie.net or Destiny membership id"),
			mcptypes.WithBoolean("get_all_memberships",
				mcptypes.Description("Include memberships overridden by Cross Save"),
				mcptypes.DefaultBool(false),
			),
		),
		Handler: func(ctx context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
			membershipID, errResult := requiredString(req, "membership_id")
			if errResult != nil {
				return errResult, nil
			}
			membershipType := bungie.BungieMembershipType(req.GetInt("membership_type", int(bungie.MembershipTypeBungieNext)))
			all := req.GetBool("get_all_memberships", false)
			return envelopeResult(b.client.Destiny2.GetLinkedProfiles(ctx, membershipType, membershipID, all))
		},
	}
}

func (b ToolBuilder) buildProfileTool() mcpserver.ServerTool {
	return mcpserver.ServerTool{
		Tool: newReadTool(ToolProfile,
			"Get a Destiny 2 profile. Private components need a signed in user",
			withMembershipType(int(bungie.MembershipTypeSteam)),
			withMembershipID("Destiny membership id"),
			mcptypes.WithString("components",
				mcptypes.Description("Comma separated component names or numbers, e.g. Profiles,Characters,205"),
				mcptypes.DefaultString(defaultComponents),
			),
		),
		Handler: func(ctx context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
			membershipID, errResult := requiredString(req, "membership_id")
			if errResult != nil {
				return errResult, nil
			}
			components, err := bungie.ParseComponentTypes(req.GetString("components", defaultComponents))
			if err != nil {
				return mcptypes.NewToolResultError(err.Error()), nil
			}
			if len(components) == 0 {
				return mcptypes.NewToolResultError("at least one component is required"), nil
			}
			membershipType := bungie.BungieMembershipType(req.GetInt("membership_type", int(bungie.MembershipTypeSteam)))
			return envelopeResult(b.client.Destiny2.GetProfile(ctx, membershipType, membershipID, components, b.tokensFor(ctx)))
		},
	}
}

func (b ToolBuilder) buildGroupTool() mcpserver.ServerTool {
	return mcpserver.ServerTool{
		Tool: newReadTool(ToolGroup,
			"Get a group or clan by id",
			mcptypes.WithString("group_id",
				mcptypes.Description("Group id"),
				mcptypes.Required(),
			),
		),
		Handler: func(ctx context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
			groupID, errResult := requiredString(req, "group_id")
			if errResult != nil {
				return errResult, nil
			}
			return envelopeResult(b.client.GroupV2.GetGroup(ctx, groupID, b.tokensFor(ctx)))
		},
	}
}

func (b ToolBuilder) buildGroupsForMemberTool() mcpserver.ServerTool {
	return mcpserver.ServerTool{
		Tool: newReadTool(ToolGroupsForMember,
			"List the groups a membership belongs to, e.g. to find a player's clan",
			withMembershipType(int(bungie.MembershipTypeSteam)),
			withMembershipID("Destiny or Bungie.net membership id"),
			mcptypes.WithNumber("filter",
				mcptypes.Description("0 all, 1 founded, 2 not founded"),
				mcptypes.DefaultNumber(float64(bungie.GroupsForMemberAll)),
			),
			mcptypes.WithNumber("group_type",
				mcptypes.Description("0 general, 1 clan"),
				mcptypes.DefaultNumber(float64(bungie.GroupTypeClan)),
			),
		),
		Handler: func(ctx context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
			membershipID, errResult := requiredString(req, "membership_id")
			if errResult != nil {
				return errResult, nil
			}
			membershipType := bungie.BungieMembershipType(req.GetInt("membership_type", int(bungie.MembershipTypeSteam)))
			filter := bungie.GroupsForMemberFilter(req.GetInt("filter", int(bungie.GroupsForMemberAll)))
			groupType := bungie.GroupType(req.GetInt("group_type", int(bungie.GroupTypeClan)))
			return envelopeResult(b.client.GroupV2.GetGroupsForMember(ctx, membershipType, membershipID, filter, groupType))
		},
	}
}

func (b ToolBuilder) buildMyMembershipsTool() mcpserver.ServerTool {
	return mcpserver.ServerTool{
		Tool: newReadTool(ToolMyMemberships, "Get the Bungie.net user and Destiny memberships of the signed in user"),
		Handler: func(ctx context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
			tokens := b.tokensFor(ctx)
			if tokens == nil {
				return mcptypes.NewToolResultError("no signed in user: send a bearer token or run `bungie oauth token` first"), nil
			}
			return envelopeResult(b.client.User.GetMembershipDataForCurrentUser(ctx, tokens))
		},
	}
}

func (b ToolBuilder) buildCallTool() mcpserver.ServerTool {
	return mcpserver.ServerTool{
		Tool: newReadTool(ToolCall,
			"Call any GET endpoint by Module.Name and return the raw response. Use "+ToolEndpoints+" to list them",
			mcptypes.WithString("name",
				mcptypes.Description("Endpoint name, e.g. Destiny2.GetPostGameCarnageReport"),
				mcptypes.Required(),
			),
			mcptypes.WithString("args",
				mcptypes.Description("Comma separated path arguments, in path order"),
			),
			mcptypes.WithString("query",
				mcptypes.Description("Query parameters as key=value pairs joined by &"),
			),
		),
		Handler: func(ctx context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
			name, errResult := requiredString(req, "name")
			if errResult != nil {
				return errResult, nil
			}
			info, ok := bungie.LookupEndpoint(name)
			if !ok {
				return mcptypes.NewToolResultErrorf("unknown endpoint: %s", name), nil
			}
			if info.Method != http.MethodGet {
				return mcptypes.NewToolResultErrorf("%s is a %s endpoint: only GET endpoints can be called", info.FullName(), info.Method), nil
			}
			q, err := ParseQuery(req.GetString("query", ""))
			if err != nil {
				return mcptypes.NewToolResultError(err.Error()), nil
			}
			args := SplitArgs(req.GetString("args", ""))
			return envelopeResult(b.client.Call(ctx, info.FullName(), args, q, nil, b.tokensFor(ctx)))
		},
	}
}

// SplitArgs splits a comma separated argument list, dropping blanks.
func SplitArgs(raw string) []any {
	var args []any
	for _, a := range strings.Split(raw, ",") {
		if a = strings.TrimSpace(a); a != "" {
			args = append(args, a)
		}
	}
	return args
}

// ParseQuery reads "k=v&k2=v2" into an ordered query. Values are kept as given.
func ParseQuery(raw string) (client.Query, error) {
	var q client.Query
	for _, pair := range strings.Split(raw, "&") {
		if pair = strings.TrimSpace(pair); pair == "" {
			continue
		}
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid query parameter %q: want key=value", pair)
		}
		q = q.Add(key, value)
	}
	return q, nil
}
