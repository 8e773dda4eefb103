package mcp

import (
	"context"
	"sync"
	"testing"

	mcptypes "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mholzen/bungienet/pkg/bungie"
	"github.com/mholzen/bungienet/pkg/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubFetcher answers every request with body and records what was sent.
type stubFetcher struct {
	mu       sync.Mutex
	requests []*client.Request
	body     string
	err      error
}

func (s *stubFetcher) Fetch(_ context.Context, req *client.Request) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, req)
	if s.err != nil {
		return nil, s.err
	}
	return []byte(s.body), nil
}

func (s *stubFetcher) last(t *testing.T) *client.Request {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	require.NotEmpty(t, s.requests)
	return s.requests[len(s.requests)-1]
}

func envelope(response string) string {
	return `{"Response":` + response + `,"ErrorCode":1,"ThrottleSeconds":0,"ErrorStatus":"Success","Message":"Ok","MessageData":{}}`
}

func newTestBungie(t *testing.T, body string) (*bungie.Client, *stubFetcher) {
	t.Helper()
	stub := &stubFetcher{body: body}
	c, err := bungie.New(bungie.Options{APIKey: "key", Fetcher: stub})
	require.NoError(t, err)
	return c, stub
}

func buildTool(t *testing.T, b ToolBuilder, name string) mcpserver.ServerTool {
	t.Helper()
	tools, err := b.BuildTools([]string{name})
	require.NoError(t, err)
	require.Len(t, tools, 1)
	return tools[0]
}

func callTool(t *testing.T, ctx context.Context, tool mcpserver.ServerTool, args map[string]any) *mcptypes.CallToolResult {
	t.Helper()
	req := mcptypes.CallToolRequest{}
	req.Params.Name = tool.Tool.Name
	req.Params.Arguments = args
	result, err := tool.Handler(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func resultText(t *testing.T, result *mcptypes.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcptypes.TextContent)
	require.True(t, ok, "expected text content, got %T", result.Content[0])
	return text.Text
}

func TestBuildTools(t *testing.T) {
	c, _ := newTestBungie(t, envelope("{}"))
	b := NewToolBuilder(c, nil)

	t.Run("builds in order", func(t *testing.T) {
		tools, err := b.BuildTools(allTools)
		require.NoError(t, err)
		require.Len(t, tools, len(allTools))
		for i, tool := range tools {
			assert.Equal(t, allTools[i], tool.Tool.Name)
		}
	})

	t.Run("unknown tool", func(t *testing.T) {
		_, err := b.BuildTools([]string{"bungie_nope"})
		assert.Error(t, err)
	})
}

func TestToolTitle(t *testing.T) {
	assert.Equal(t, "Search Player", toolTitle(ToolSearchPlayer))
	assert.Equal(t, "Groups For Member", toolTitle(ToolGroupsForMember))
	assert.Equal(t, "Manifest", toolTitle(ToolManifest))
}

func TestManifestTool(t *testing.T) {
	c, stub := newTestBungie(t, envelope(`{"version":"223229.24.01.01"}`))
	tool := buildTool(t, NewToolBuilder(c, nil), ToolManifest)

	result := callTool(t, context.Background(), tool, nil)

	assert.False(t, result.IsError)
	assert.Contains(t, resultText(t, result), "223229.24.01.01")
	assert.Equal(t, "https://www.bungie.net/Platform/Destiny2/Manifest/", stub.last(t).URL)
}

func TestProfileTool(t *testing.T) {
	t.Run("formats components and forwards caller token", func(t *testing.T) {
		c, stub := newTestBungie(t, envelope(`{"responseMintedTimestamp":"2024-01-01T00:00:00Z"}`))
		tool := buildTool(t, NewToolBuilder(c, &client.Tokens{AccessToken: "fallback"}), ToolProfile)
		ctx := contextWithTokenClaims(context.Background(), &TokenClaims{Subject: "1", AccessToken: "caller"})

		result := callTool(t, ctx, tool, map[string]any{
			"membership_type": float64(3),
			"membership_id":   "4611686018467284386",
			"components":      "Profiles, 200",
		})

		assert.False(t, result.IsError, resultText(t, result))
		req := stub.last(t)
		assert.Equal(t, "https://www.bungie.net/Platform/Destiny2/3/Profile/4611686018467284386/?components=100,200", req.URL)
		assert.Equal(t, "Bearer caller", req.Header.Get("Authorization"))
	})

	t.Run("uses builder tokens without a caller", func(t *testing.T) {
		c, stub := newTestBungie(t, envelope(`{}`))
		tool := buildTool(t, NewToolBuilder(c, &client.Tokens{AccessToken: "fallback"}), ToolProfile)

		callTool(t, context.Background(), tool, map[string]any{"membership_id": "1"})

		assert.Equal(t, "Bearer fallback", stub.last(t).Header.Get("Authorization"))
	})

	t.Run("rejects unknown component", func(t *testing.T) {
		c, stub := newTestBungie(t, envelope(`{}`))
		tool := buildTool(t, NewToolBuilder(c, nil), ToolProfile)

		result := callTool(t, context.Background(), tool, map[string]any{"membership_id": "1", "components": "Loot"})

		assert.True(t, result.IsError)
		assert.Empty(t, stub.requests)
	})

	t.Run("requires membership id", func(t *testing.T) {
		c, _ := newTestBungie(t, envelope(`{}`))
		tool := buildTool(t, NewToolBuilder(c, nil), ToolProfile)

		result := callTool(t, context.Background(), tool, map[string]any{})

		assert.True(t, result.IsError)
		assert.Contains(t, resultText(t, result), "membership_id is required")
	})
}

func TestSearchPlayerTool(t *testing.T) {
	c, stub := newTestBungie(t, envelope(`[{"membershipType":3,"membershipId":"42","displayName":"Guardian"}]`))
	tool := buildTool(t, NewToolBuilder(c, nil), ToolSearchPlayer)

	t.Run("posts the split bungie name", func(t *testing.T) {
		result := callTool(t, context.Background(), tool, map[string]any{"name": "Guardian#0042"})

		assert.False(t, result.IsError)
		assert.Contains(t, resultText(t, result), "Guardian")
		req := stub.last(t)
		assert.Equal(t, "POST", req.Method)
		assert.Equal(t, "https://www.bungie.net/Platform/Destiny2/SearchDestinyPlayerByBungieName/-1/", req.URL)
		assert.JSONEq(t, `{"displayName":"Guardian","displayNameCode":42}`, string(req.Body))
	})

	t.Run("rejects names without code", func(t *testing.T) {
		result := callTool(t, context.Background(), tool, map[string]any{"name": "Guardian"})
		assert.True(t, result.IsError)
	})
}

func TestEntityDefinitionTool(t *testing.T) {
	c, stub := newTestBungie(t, envelope(`{"hash":3628991658}`))
	tool := buildTool(t, NewToolBuilder(c, nil), ToolEntityDefinition)

	result := callTool(t, context.Background(), tool, map[string]any{
		"entity_type": "DestinyInventoryItemDefinition",
		"hash":        "3628991658",
	})
	assert.False(t, result.IsError)
	assert.Equal(t, "https://www.bungie.net/Platform/Destiny2/Manifest/DestinyInventoryItemDefinition/3628991658/", stub.last(t).URL)

	result = callTool(t, context.Background(), tool, map[string]any{
		"entity_type": "DestinyInventoryItemDefinition",
		"hash":        "-1",
	})
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "invalid hash")
}

func TestMyMembershipsTool(t *testing.T) {
	t.Run("needs a signed in user", func(t *testing.T) {
		c, stub := newTestBungie(t, envelope(`{}`))
		tool := buildTool(t, NewToolBuilder(c, nil), ToolMyMemberships)

		result := callTool(t, context.Background(), tool, nil)

		assert.True(t, result.IsError)
		assert.Empty(t, stub.requests)
	})

	t.Run("sends the bearer token", func(t *testing.T) {
		c, stub := newTestBungie(t, envelope(`{"destinyMemberships":[],"bungieNetUser":{"membershipId":"7"}}`))
		tool := buildTool(t, NewToolBuilder(c, nil), ToolMyMemberships)
		ctx := contextWithTokenClaims(context.Background(), &TokenClaims{AccessToken: "abc"})

		result := callTool(t, ctx, tool, nil)

		assert.False(t, result.IsError)
		assert.Equal(t, "Bearer abc", stub.last(t).Header.Get("Authorization"))
	})
}

func TestPlatformErrorsBecomeToolErrors(t *testing.T) {
	body := `{"Response":null,"ErrorCode":1601,"ThrottleSeconds":0,"ErrorStatus":"DestinyAccountNotFound","Message":"We were unable to find your Destiny account information.","MessageData":{}}`
	c, _ := newTestBungie(t, body)
	tool := buildTool(t, NewToolBuilder(c, nil), ToolLinkedProfiles)

	result := callTool(t, context.Background(), tool, map[string]any{"membership_id": "1"})

	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "DestinyAccountNotFound")
}

func TestTransportErrorsBecomeToolErrors(t *testing.T) {
	c, stub := newTestBungie(t, "")
	stub.err = &client.APIError{Status: 503, Body: "unavailable"}
	tool := buildTool(t, NewToolBuilder(c, nil), ToolGroup)

	result := callTool(t, context.Background(), tool, map[string]any{"group_id": "4219278"})

	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "request failed")
}

func TestCallTool(t *testing.T) {
	t.Run("calls a GET endpoint", func(t *testing.T) {
		c, stub := newTestBungie(t, envelope(`{"membershipId":"12"}`))
		tool := buildTool(t, NewToolBuilder(c, nil), ToolCall)

		result := callTool(t, context.Background(), tool, map[string]any{
			"name":  "user.getbungienetuserbyid",
			"args":  "12",
			"query": "lc=en&extra=1",
		})

		assert.False(t, result.IsError, resultText(t, result))
		assert.Equal(t, "https://www.bungie.net/Platform/User/GetBungieNetUserById/12/?lc=en&extra=1", stub.last(t).URL)
	})

	t.Run("refuses POST endpoints", func(t *testing.T) {
		c, stub := newTestBungie(t, envelope(`0`))
		tool := buildTool(t, NewToolBuilder(c, nil), ToolCall)

		result := callTool(t, context.Background(), tool, map[string]any{"name": "Destiny2.EquipItem"})

		assert.True(t, result.IsError)
		assert.Empty(t, stub.requests)
	})

	t.Run("unknown endpoint", func(t *testing.T) {
		c, _ := newTestBungie(t, envelope(`0`))
		tool := buildTool(t, NewToolBuilder(c, nil), ToolCall)

		result := callTool(t, context.Background(), tool, map[string]any{"name": "Destiny2.Nope"})

		assert.True(t, result.IsError)
		assert.Contains(t, resultText(t, result), "unknown endpoint")
	})

	t.Run("wrong argument count", func(t *testing.T) {
		c, _ := newTestBungie(t, envelope(`0`))
		tool := buildTool(t, NewToolBuilder(c, nil), ToolCall)

		result := callTool(t, context.Background(), tool, map[string]any{"name": "User.GetBungieNetUserById"})

		assert.True(t, result.IsError)
	})
}

func TestEndpointsTool(t *testing.T) {
	c, _ := newTestBungie(t, envelope(`{}`))
	tool := buildTool(t, NewToolBuilder(c, nil), ToolEndpoints)

	result := callTool(t, context.Background(), tool, map[string]any{"module": "trending"})
	assert.False(t, result.IsError)
	text := resultText(t, result)
	assert.Contains(t, text, "Trending.GetTrendingCategories")
	assert.NotContains(t, text, "Destiny2.")

	result = callTool(t, context.Background(), tool, map[string]any{"module": "Nope"})
	assert.True(t, result.IsError)
}

func TestParseQuery(t *testing.T) {
	tests := []struct {
		raw     string
		want    client.Query
		wantErr bool
	}{
		{"", nil, false},
		{"a=1", client.Query{{Key: "a", Value: "1"}}, false},
		{"b=2&a=1", client.Query{{Key: "b", Value: "2"}, {Key: "a", Value: "1"}}, false},
		{"modes=4,5&", client.Query{{Key: "modes", Value: "4,5"}}, false},
		{"empty=", client.Query{{Key: "empty", Value: ""}}, false},
		{"novalue", nil, true},
		{"=1", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseQuery(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitArgs(t *testing.T) {
	assert.Nil(t, SplitArgs(""))
	assert.Equal(t, []any{"3", "4611686018467284386"}, SplitArgs(" 3, 4611686018467284386 ,"))
}
