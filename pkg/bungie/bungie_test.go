package bungie

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/mholzen/bungienet/pkg/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is a Fetcher that records requests and answers with a fixed body.
type recorder struct {
	mu       sync.Mutex
	requests []*client.Request
	body     string
	err      error
}

func (r *recorder) Fetch(_ context.Context, req *client.Request) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, req)
	if r.err != nil {
		return nil, r.err
	}
	return []byte(r.body), nil
}

func (r *recorder) last(t *testing.T) *client.Request {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.requests)
	return r.requests[len(r.requests)-1]
}

func envelope(response string) string {
	return `{"Response":` + response + `,"ErrorCode":1,"ThrottleSeconds":0,"ErrorStatus":"Success","Message":"Ok","MessageData":{}}`
}

func newTestClient(t *testing.T, body string) (*Client, *recorder) {
	t.Helper()
	rec := &recorder{body: body}
	c, err := New(Options{APIKey: "key", ClientID: "123", ClientSecret: "secret", Fetcher: rec})
	require.NoError(t, err)
	return c, rec
}

func TestNew(t *testing.T) {
	t.Run("requires api key", func(t *testing.T) {
		_, err := New(Options{})
		assert.ErrorIs(t, err, ErrMissingAPIKey)
	})

	t.Run("wires every module", func(t *testing.T) {
		c, _ := newTestClient(t, envelope("null"))
		assert.NotNil(t, c.App)
		assert.NotNil(t, c.User)
		assert.NotNil(t, c.Content)
		assert.NotNil(t, c.Forum)
		assert.NotNil(t, c.GroupV2)
		assert.NotNil(t, c.Tokens)
		assert.NotNil(t, c.Destiny2)
		assert.NotNil(t, c.CommunityContent)
		assert.NotNil(t, c.Trending)
		assert.NotNil(t, c.Fireteam)
		assert.NotNil(t, c.Social)
		assert.NotNil(t, c.Core)
		assert.NotNil(t, c.OAuth)
	})

	t.Run("configuration is a copy", func(t *testing.T) {
		c, _ := newTestClient(t, envelope("null"))
		c.Configuration().Headers.Set("X-API-Key", "changed")
		assert.Equal(t, "key", c.Configuration().Headers.Get("X-API-Key"))
	})
}

func TestEndpoint_GetProfile(t *testing.T) {
	c, rec := newTestClient(t, envelope(`{"profile":{"data":{"userInfo":{"membershipType":3,"membershipId":"4611686018467284386","displayName":"Guardian"},"characterIds":["1","2"]},"privacy":1}}`))

	resp, err := c.Destiny2.GetProfile(context.Background(), MembershipTypeSteam, "4611686018467284386",
		[]DestinyComponentType{ComponentProfiles, ComponentCharacters}, &client.Tokens{AccessToken: "tok"})
	require.NoError(t, err)

	req := rec.last(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "https://www.bungie.net/Platform/Destiny2/3/Profile/4611686018467284386/?components=100,200", req.URL)
	assert.Equal(t, "key", req.Header.Get("X-API-Key"))
	assert.Equal(t, "Bearer tok", req.Header.Get("Authorization"))
	assert.Equal(t, DefaultUserAgent, req.Header.Get("User-Agent"))
	assert.True(t, req.WantsJSON)
	assert.Nil(t, req.Body)

	assert.True(t, resp.OK())
	require.NotNil(t, resp.Response.Profile)
	require.NotNil(t, resp.Response.Profile.Data)
	assert.Equal(t, "Guardian", resp.Response.Profile.Data.UserInfo.DisplayName)
	assert.Equal(t, []string{"1", "2"}, resp.Response.Profile.Data.CharacterIDs)
}

func TestEndpoint_PathArgumentOrder(t *testing.T) {
	c, rec := newTestClient(t, envelope("0"))

	_, err := c.GroupV2.EditGroupMembership(context.Background(), "881267", MembershipTypePsn, "4611", MemberTypeAdmin, &client.Tokens{AccessToken: "tok"})
	require.NoError(t, err)

	req := rec.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "https://www.bungie.net/Platform/GroupV2/881267/Members/2/4611/SetMembershipType/3/", req.URL)
}

func TestEndpoint_NoTokensNoAuthorization(t *testing.T) {
	c, rec := newTestClient(t, envelope(`{"destinyMemberships":[],"bungieNetUser":{"membershipId":"1"}}`))

	_, err := c.User.GetMembershipDataForCurrentUser(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, rec.last(t).Header.Get("Authorization"))

	_, err = c.User.GetMembershipDataForCurrentUser(context.Background(), &client.Tokens{RefreshToken: "only-refresh"})
	require.NoError(t, err)
	assert.Empty(t, rec.last(t).Header.Get("Authorization"))
}

func TestEndpoint_PostBody(t *testing.T) {
	c, rec := newTestClient(t, envelope(`[{"membershipType":3,"membershipId":"4611","displayName":"Guardian","bungieGlobalDisplayName":"Guardian","bungieGlobalDisplayNameCode":42}]`))

	resp, err := c.Destiny2.SearchDestinyPlayerByBungieName(context.Background(), MembershipTypeAll, ExactSearchRequest{DisplayName: "Guardian", DisplayNameCode: 42})
	require.NoError(t, err)

	req := rec.last(t)
	assert.Equal(t, "https://www.bungie.net/Platform/Destiny2/SearchDestinyPlayerByBungieName/-1/", req.URL)
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
	assert.JSONEq(t, `{"displayName":"Guardian","displayNameCode":42}`, string(req.Body))

	require.Len(t, resp.Response, 1)
	assert.Equal(t, "Guardian#0042", resp.Response[0].BungieName())
}

func TestEndpoint_OptionalQuery(t *testing.T) {
	c, rec := newTestClient(t, envelope(`{"results":[],"totalResults":0,"hasMore":false,"query":{"itemsPerPage":50,"currentPage":1}}`))

	_, err := c.GroupV2.GetMembersOfGroup(context.Background(), "1", 1, MemberTypeNone, "")
	require.NoError(t, err)
	assert.Equal(t, "https://www.bungie.net/Platform/GroupV2/1/Members/?currentpage=1", rec.last(t).URL)

	_, err = c.GroupV2.GetMembersOfGroup(context.Background(), "1", 2, MemberTypeAdmin, "gu")
	require.NoError(t, err)
	assert.Equal(t, "https://www.bungie.net/Platform/GroupV2/1/Members/?currentpage=2&memberType=3&nameSearch=gu", rec.last(t).URL)
}

func TestEndpoint_LeadingSkippedQueryKeepsIndexSeparator(t *testing.T) {
	c, rec := newTestClient(t, envelope("{}"))

	_, err := c.Content.RssNewsArticles(context.Background(), "0", "", true)
	require.NoError(t, err)
	assert.Equal(t, "https://www.bungie.net/Platform/Content/Rss/NewsArticles/0/&includebody=true", rec.last(t).URL)
}

func TestEndpoint_TransportErrorIsReturnedUnwrapped(t *testing.T) {
	want := &client.APIError{Status: http.StatusServiceUnavailable, Body: "down"}
	c, rec := newTestClient(t, "")
	rec.err = want

	_, err := c.Core.GetGlobalAlerts(context.Background(), false)
	assert.Same(t, want, err)
}

func TestEndpoint_EnvelopeError(t *testing.T) {
	body := `{"Response":null,"ErrorCode":1601,"ThrottleSeconds":0,"ErrorStatus":"DestinyAccountNotFound","Message":"We were unable to find your Destiny account information.","MessageData":{}}`
	c, _ := newTestClient(t, body)

	resp, err := c.Destiny2.GetProfile(context.Background(), MembershipTypeSteam, "1", []DestinyComponentType{ComponentProfiles}, nil)
	require.NoError(t, err)
	assert.False(t, resp.OK())

	var envErr *EnvelopeError
	require.True(t, errors.As(resp.Err(), &envErr))
	assert.Equal(t, PlatformErrorCodeDestinyAccountNotFound, envErr.ErrorCode)
	assert.Equal(t, "DestinyAccountNotFound", envErr.ErrorStatus)
}

func TestClient_Call(t *testing.T) {
	c, rec := newTestClient(t, envelope(`{"version":"123"}`))

	t.Run("by name", func(t *testing.T) {
		resp, err := c.Call(context.Background(), "destiny2.getdestinymanifest", nil, nil, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "https://www.bungie.net/Platform/Destiny2/Manifest/", rec.last(t).URL)
		assert.JSONEq(t, `{"version":"123"}`, string(resp.Response))
	})

	t.Run("with path args and query", func(t *testing.T) {
		_, err := c.Call(context.Background(), "Destiny2.GetProfile", []any{3, "4611"}, client.Query{{Key: "components", Value: "100"}}, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "https://www.bungie.net/Platform/Destiny2/3/Profile/4611/?components=100", rec.last(t).URL)
	})

	t.Run("unknown endpoint", func(t *testing.T) {
		_, err := c.Call(context.Background(), "Destiny2.Nope", nil, nil, nil, nil)
		assert.ErrorIs(t, err, ErrUnknownEndpoint)
	})

	t.Run("wrong argument count", func(t *testing.T) {
		n := len(rec.requests)
		_, err := c.Call(context.Background(), "Destiny2.GetProfile", []any{3}, nil, nil, nil)
		assert.Error(t, err)
		assert.Len(t, rec.requests, n)
	})
}

func TestClient_FetcherIsPerInstance(t *testing.T) {
	a, recA := newTestClient(t, envelope("{}"))
	b, recB := newTestClient(t, envelope("{}"))

	_, err := a.Core.GetAvailableLocales(context.Background())
	require.NoError(t, err)
	_, err = b.Core.GetAvailableLocales(context.Background())
	require.NoError(t, err)
	_, err = b.Core.GetAvailableLocales(context.Background())
	require.NoError(t, err)

	assert.Len(t, recA.requests, 1)
	assert.Len(t, recB.requests, 2)
}

func TestClient_AgainstServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-API-Key") != "key" {
			w.WriteHeader(http.StatusUnauthorized)
			io.WriteString(w, `{"ErrorCode":2101,"ErrorStatus":"ApiKeyMissingFromRequest","Message":"missing key","MessageData":{},"ThrottleSeconds":0}`)
			return
		}
		assert.Equal(t, "/Platform/User/GetMembershipsForCurrentUser/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Response[UserMembershipData]{
			Response: UserMembershipData{
				DestinyMemberships: []GroupUserInfoCard{
					{UserInfoCard: UserInfoCard{MembershipType: MembershipTypeXbox, MembershipID: "1"}},
					{UserInfoCard: UserInfoCard{MembershipType: MembershipTypeSteam, MembershipID: "2"}},
				},
				PrimaryMembershipID: "2",
				BungieNetUser:       GeneralUser{MembershipID: "99", UniqueName: "guardian#0001"},
			},
			ErrorCode:   PlatformErrorCodeSuccess,
			ErrorStatus: "Success",
			Message:     "Ok",
		})
	}))
	defer server.Close()

	t.Run("decodes envelope", func(t *testing.T) {
		c, err := New(Options{APIKey: "key", Host: server.URL})
		require.NoError(t, err)

		resp, err := c.User.GetMembershipDataForCurrentUser(context.Background(), &client.Tokens{AccessToken: "tok"})
		require.NoError(t, err)
		assert.True(t, resp.OK())
		assert.Equal(t, "99", resp.Response.BungieNetUser.MembershipID)

		primary, ok := resp.Response.Primary()
		require.True(t, ok)
		assert.Equal(t, "2", primary.MembershipID)
	})

	t.Run("non-2xx carries the envelope", func(t *testing.T) {
		c, err := New(Options{APIKey: "wrong", Host: server.URL})
		require.NoError(t, err)

		_, err = c.User.GetMembershipDataForCurrentUser(context.Background(), nil)
		var apiErr *client.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusUnauthorized, apiErr.Status)

		env, ok := PlatformError(err)
		require.True(t, ok)
		assert.Equal(t, PlatformErrorCodeApiKeyMissingFromRequest, env.ErrorCode)
	})
}
