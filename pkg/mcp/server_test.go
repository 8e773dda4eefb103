package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExposeList(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []string
		wantErr bool
	}{
		{name: "empty defaults to public", raw: "", want: publicTools},
		{name: "public group", raw: "public", want: publicTools},
		{name: "auth group", raw: "auth", want: []string{ToolMyMemberships}},
		{name: "all group", raw: "ALL", want: allTools},
		{name: "short names", raw: "profile, manifest", want: []string{ToolProfile, ToolManifest}},
		{name: "full names", raw: "bungie_call,bungie_my_memberships", want: []string{ToolCall, ToolMyMemberships}},
		{name: "duplicates dropped", raw: "profile,public", want: append([]string{ToolProfile}, without(publicTools, ToolProfile)...)},
		{name: "unknown", raw: "profile,loot", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseExposeList(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func without(names []string, drop string) []string {
	var out []string
	for _, n := range names {
		if n != drop {
			out = append(out, n)
		}
	}
	return out
}

func TestNewServer(t *testing.T) {
	t.Run("requires a client", func(t *testing.T) {
		_, err := newServer(Config{})
		assert.Error(t, err)
	})

	t.Run("rejects unknown tools", func(t *testing.T) {
		c, _ := newTestBungie(t, envelope("{}"))
		_, err := newServer(Config{Client: c, Expose: "nope"})
		assert.Error(t, err)
	})

	t.Run("builds with every tool", func(t *testing.T) {
		c, _ := newTestBungie(t, envelope("{}"))
		s, err := newServer(Config{Client: c, Expose: "all", Version: "test"})
		require.NoError(t, err)
		assert.NotNil(t, s)
	})
}
