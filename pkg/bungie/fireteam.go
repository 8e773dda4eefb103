package bungie

import (
	"context"
	"encoding/json"

	"github.com/mholzen/bungienet/pkg/client"
)

type FireteamSummary struct {
	FireteamID                  string           `json:"fireteamId"`
	GroupID                     string           `json:"groupId"`
	Platform                    FireteamPlatform `json:"platform"`
	ActivityType                int              `json:"activityType"`
	IsImmediate                 bool             `json:"isImmediate"`
	ScheduledTime               string           `json:"scheduledTime,omitempty"`
	OwnerMembershipID           string           `json:"ownerMembershipId"`
	PlayerSlotCount             int              `json:"playerSlotCount"`
	AlternateSlotCount          *int             `json:"alternateSlotCount,omitempty"`
	AvailablePlayerSlotCount    int              `json:"availablePlayerSlotCount"`
	AvailableAlternateSlotCount int              `json:"availableAlternateSlotCount"`
	Title                       string           `json:"title"`
	DateCreated                 string           `json:"dateCreated"`
	DateModified                string           `json:"dateModified,omitempty"`
	IsPublic                    bool             `json:"isPublic"`
	Locale                      string           `json:"locale"`
	IsValid                     bool             `json:"isValid"`
	DatePlayerModified          string           `json:"datePlayerModified"`
	TitleBeforeModeration       string           `json:"titleBeforeModeration,omitempty"`
}

type FireteamResponse struct {
	Summary    FireteamSummary   `json:"Summary"`
	Members    []json.RawMessage `json:"Members"`
	Alternates []json.RawMessage `json:"Alternates"`
}

// FireteamListing selects the listing filters that are path segments of the
// fireteam searches.
type FireteamListing struct {
	Platform     FireteamPlatform
	ActivityType int
	DateRange    FireteamDateRange
	SlotFilter   FireteamSlotSearch
	Page         int
	// LangFilter and ExcludeImmediate are sent as query parameters.
	LangFilter       string
	ExcludeImmediate bool
}

func (l FireteamListing) query() client.Query {
	return client.Query{
		{Key: "langFilter", Value: optional(l.LangFilter)},
		{Key: "excludeImmediate", Value: optional(l.ExcludeImmediate)},
	}
}

var (
	fireteamGetActivePrivateClanFireteamCount  = get[int]("Fireteam", "GetActivePrivateClanFireteamCount", "/Fireteam/Clan/{groupId}/ActiveCount/", AuthRequired)
	fireteamGetAvailableClanFireteams          = get[SearchResultOf[FireteamSummary]]("Fireteam", "GetAvailableClanFireteams", "/Fireteam/Clan/{groupId}/Available/{platform}/{activityType}/{dateRange}/{slotFilter}/{publicOnly}/{page}/", AuthRequired)
	fireteamSearchPublicAvailableClanFireteams = get[SearchResultOf[FireteamSummary]]("Fireteam", "SearchPublicAvailableClanFireteams", "/Fireteam/Search/Available/{platform}/{activityType}/{dateRange}/{slotFilter}/{page}/", AuthRequired)
	fireteamGetMyClanFireteams                 = get[SearchResultOf[FireteamResponse]]("Fireteam", "GetMyClanFireteams", "/Fireteam/Clan/{groupId}/My/{platform}/{includeClosed}/{page}/", AuthRequired)
	fireteamGetClanFireteam                    = get[FireteamResponse]("Fireteam", "GetClanFireteam", "/Fireteam/Clan/{groupId}/Summary/{fireteamId}/", AuthRequired)
)

// FireteamAPI wraps the /Fireteam endpoints. All of them act for the signed
// in user.
type FireteamAPI struct {
	c *client.Client
}

func (f *FireteamAPI) GetActivePrivateClanFireteamCount(ctx context.Context, groupID string, tokens *client.Tokens) (*Response[int], error) {
	return fireteamGetActivePrivateClanFireteamCount.call(ctx, f.c, tokens, nil, nil, groupID)
}

func (f *FireteamAPI) GetAvailableClanFireteams(ctx context.Context, groupID string, l FireteamListing, publicOnly FireteamPublicSearchOption, tokens *client.Tokens) (*Response[SearchResultOf[FireteamSummary]], error) {
	return fireteamGetAvailableClanFireteams.call(ctx, f.c, tokens, l.query(), nil,
		groupID, l.Platform, l.ActivityType, l.DateRange, l.SlotFilter, publicOnly, l.Page)
}

func (f *FireteamAPI) SearchPublicAvailableClanFireteams(ctx context.Context, l FireteamListing, tokens *client.Tokens) (*Response[SearchResultOf[FireteamSummary]], error) {
	return fireteamSearchPublicAvailableClanFireteams.call(ctx, f.c, tokens, l.query(), nil,
		l.Platform, l.ActivityType, l.DateRange, l.SlotFilter, l.Page)
}

func (f *FireteamAPI) GetMyClanFireteams(ctx context.Context, groupID string, platform FireteamPlatform, includeClosed bool, page int, langFilter string, groupFilter bool, tokens *client.Tokens) (*Response[SearchResultOf[FireteamResponse]], error) {
	q := client.Query{
		{Key: "langFilter", Value: optional(langFilter)},
		{Key: "groupFilter", Value: optional(groupFilter)},
	}
	return fireteamGetMyClanFireteams.call(ctx, f.c, tokens, q, nil, groupID, platform, includeClosed, page)
}

func (f *FireteamAPI) GetClanFireteam(ctx context.Context, groupID, fireteamID string, tokens *client.Tokens) (*Response[FireteamResponse], error) {
	return fireteamGetClanFireteam.call(ctx, f.c, tokens, nil, nil, groupID, fireteamID)
}
