package bungie

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	tests := []struct {
		name    string
		tmpl    string
		args    []any
		want    string
		wantErr bool
	}{
		{"no placeholders", "/Destiny2/Manifest/", nil, "/Destiny2/Manifest/", false},
		{"in order", "/Destiny2/{membershipType}/Profile/{id}/", []any{MembershipTypeSteam, "4611"}, "/Destiny2/3/Profile/4611/", false},
		{"no escaping", "/GroupV2/Name/{groupName}/{groupType}/", []any{"a b/c", GroupTypeClan}, "/GroupV2/Name/a b/c/1/", false},
		{"bool", "/x/{b}/", []any{true}, "/x/true/", false},
		{"too few", "/x/{a}/{b}/", []any{1}, "", true},
		{"too many", "/x/{a}/", []any{1, 2}, "", true},
		{"unterminated", "/x/{a/", []any{1}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := expandPath(tt.tmpl, tt.args...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEndpointInfo_Params(t *testing.T) {
	info, ok := LookupEndpoint("GroupV2.KickMember")
	require.True(t, ok)
	assert.Equal(t, []string{"groupId", "membershipType", "membershipId"}, info.Params())

	info, ok = LookupEndpoint("Destiny2.GetDestinyManifest")
	require.True(t, ok)
	assert.Empty(t, info.Params())
}

func TestCatalog(t *testing.T) {
	catalog := Catalog()
	require.NotEmpty(t, catalog)

	modules := map[string]bool{}
	seen := map[string]bool{}
	for _, e := range catalog {
		name := e.FullName()
		assert.False(t, seen[name], "duplicate endpoint %s", name)
		seen[name] = true
		modules[e.Module] = true

		assert.True(t, strings.HasPrefix(e.Path, "/"), name)
		assert.True(t, strings.HasSuffix(e.Path, "/"), name)
		assert.Contains(t, []string{"GET", "POST"}, e.Method, name)
		assert.Equal(t, strings.Count(e.Path, "{"), len(e.Params()), name)
	}
	for _, m := range []string{"App", "User", "Content", "Forum", "GroupV2", "Tokens", "Destiny2", "CommunityContent", "Trending", "Fireteam", "Social", "Core"} {
		assert.True(t, modules[m], "module %s has no endpoints", m)
	}

	catalog[0].Name = "changed"
	assert.NotEqual(t, "changed", Catalog()[0].Name)
}

func TestLookupEndpoint(t *testing.T) {
	info, ok := LookupEndpoint("user.getmembershipdataforcurrentuser")
	require.True(t, ok)
	assert.Equal(t, "User", info.Module)
	assert.Equal(t, AuthRequired, info.Auth)
	assert.Equal(t, "required", info.Auth.String())

	_, ok = LookupEndpoint("User")
	assert.False(t, ok)
}
