package bungie

import (
	"fmt"
	"strconv"
	"strings"
)

// PlatformErrorCode is the ErrorCode field of every response envelope. Only a
// handful of the several thousand codes are named here.
type PlatformErrorCode int

const (
	PlatformErrorCodeNone                     PlatformErrorCode = 0
	PlatformErrorCodeSuccess                  PlatformErrorCode = 1
	PlatformErrorCodeTransportException       PlatformErrorCode = 2
	PlatformErrorCodeUnhandledException       PlatformErrorCode = 3
	PlatformErrorCodeNotImplemented           PlatformErrorCode = 4
	PlatformErrorCodeSystemDisabled           PlatformErrorCode = 5
	PlatformErrorCodeParameterParseFailure    PlatformErrorCode = 7
	PlatformErrorCodeThrottleLimitExceeded    PlatformErrorCode = 31
	PlatformErrorCodeWebAuthRequired          PlatformErrorCode = 99
	PlatformErrorCodeApiKeyMissingFromRequest PlatformErrorCode = 2101
	PlatformErrorCodeApiInvalidOrExpiredKey   PlatformErrorCode = 2102
	PlatformErrorCodeDestinyAccountNotFound   PlatformErrorCode = 1601
	PlatformErrorCodeDestinyUnexpectedError   PlatformErrorCode = 1618
)

// BungieMembershipType identifies a platform account type.
type BungieMembershipType int

const (
	MembershipTypeNone       BungieMembershipType = 0
	MembershipTypeXbox       BungieMembershipType = 1
	MembershipTypePsn        BungieMembershipType = 2
	MembershipTypeSteam      BungieMembershipType = 3
	MembershipTypeBlizzard   BungieMembershipType = 4
	MembershipTypeStadia     BungieMembershipType = 5
	MembershipTypeEgs        BungieMembershipType = 6
	MembershipTypeDemon      BungieMembershipType = 10
	MembershipTypeBungieNext BungieMembershipType = 254
	MembershipTypeAll        BungieMembershipType = -1
)

// DestinyComponentType selects the profile components to return.
type DestinyComponentType int

const (
	ComponentNone                  DestinyComponentType = 0
	ComponentProfiles              DestinyComponentType = 100
	ComponentVendorReceipts        DestinyComponentType = 101
	ComponentProfileInventories    DestinyComponentType = 102
	ComponentProfileCurrencies     DestinyComponentType = 103
	ComponentProfileProgression    DestinyComponentType = 104
	ComponentPlatformSilver        DestinyComponentType = 105
	ComponentCharacters            DestinyComponentType = 200
	ComponentCharacterInventories  DestinyComponentType = 201
	ComponentCharacterProgressions DestinyComponentType = 202
	ComponentCharacterRenderData   DestinyComponentType = 203
	ComponentCharacterActivities   DestinyComponentType = 204
	ComponentCharacterEquipment    DestinyComponentType = 205
	ComponentCharacterLoadouts     DestinyComponentType = 206
	ComponentItemInstances         DestinyComponentType = 300
	ComponentItemObjectives        DestinyComponentType = 301
	ComponentItemPerks             DestinyComponentType = 302
	ComponentItemRenderData        DestinyComponentType = 303
	ComponentItemStats             DestinyComponentType = 304
	ComponentItemSockets           DestinyComponentType = 305
	ComponentItemTalentGrids       DestinyComponentType = 306
	ComponentItemCommonData        DestinyComponentType = 307
	ComponentItemPlugStates        DestinyComponentType = 308
	ComponentItemPlugObjectives    DestinyComponentType = 309
	ComponentItemReusablePlugs     DestinyComponentType = 310
	ComponentVendors               DestinyComponentType = 400
	ComponentVendorCategories      DestinyComponentType = 401
	ComponentVendorSales           DestinyComponentType = 402
	ComponentKiosks                DestinyComponentType = 500
	ComponentCurrencyLookups       DestinyComponentType = 600
	ComponentPresentationNodes     DestinyComponentType = 700
	ComponentCollectibles          DestinyComponentType = 800
	ComponentRecords               DestinyComponentType = 900
	ComponentTransitory            DestinyComponentType = 1000
	ComponentMetrics               DestinyComponentType = 1100
	ComponentStringVariables       DestinyComponentType = 1200
	ComponentCraftables            DestinyComponentType = 1300
	ComponentSocialCommendations   DestinyComponentType = 1400
)

var componentNames = map[string]DestinyComponentType{
	"profiles":              ComponentProfiles,
	"vendorreceipts":        ComponentVendorReceipts,
	"profileinventories":    ComponentProfileInventories,
	"profilecurrencies":     ComponentProfileCurrencies,
	"profileprogression":    ComponentProfileProgression,
	"platformsilver":        ComponentPlatformSilver,
	"characters":            ComponentCharacters,
	"characterinventories":  ComponentCharacterInventories,
	"characterprogressions": ComponentCharacterProgressions,
	"characterrenderdata":   ComponentCharacterRenderData,
	"characteractivities":   ComponentCharacterActivities,
	"characterequipment":    ComponentCharacterEquipment,
	"characterloadouts":     ComponentCharacterLoadouts,
	"iteminstances":         ComponentItemInstances,
	"itemobjectives":        ComponentItemObjectives,
	"itemperks":             ComponentItemPerks,
	"itemrenderdata":        ComponentItemRenderData,
	"itemstats":             ComponentItemStats,
	"itemsockets":           ComponentItemSockets,
	"itemtalentgrids":       ComponentItemTalentGrids,
	"itemcommondata":        ComponentItemCommonData,
	"itemplugstates":        ComponentItemPlugStates,
	"itemplugobjectives":    ComponentItemPlugObjectives,
	"itemreusableplugs":     ComponentItemReusablePlugs,
	"vendors":               ComponentVendors,
	"vendorcategories":      ComponentVendorCategories,
	"vendorsales":           ComponentVendorSales,
	"kiosks":                ComponentKiosks,
	"currencylookups":       ComponentCurrencyLookups,
	"presentationnodes":     ComponentPresentationNodes,
	"collectibles":          ComponentCollectibles,
	"records":               ComponentRecords,
	"transitory":            ComponentTransitory,
	"metrics":               ComponentMetrics,
	"stringvariables":       ComponentStringVariables,
	"craftables":            ComponentCraftables,
	"socialcommendations":   ComponentSocialCommendations,
}

// ParseComponentTypes reads a comma separated list of component names
// ("Profiles,Characters") or numbers ("100,200"). Names ignore case.
func ParseComponentTypes(s string) ([]DestinyComponentType, error) {
	var out []DestinyComponentType
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if n, err := strconv.Atoi(part); err == nil {
			out = append(out, DestinyComponentType(n))
			continue
		}
		c, ok := componentNames[strings.ToLower(part)]
		if !ok {
			return nil, fmt.Errorf("unknown component %q", part)
		}
		out = append(out, c)
	}
	return out, nil
}

// GroupType distinguishes generic groups from clans.
type GroupType int

const (
	GroupTypeGeneral GroupType = 0
	GroupTypeClan    GroupType = 1
)

// RuntimeGroupMemberType is a member's rank within a group.
type RuntimeGroupMemberType int

const (
	MemberTypeNone          RuntimeGroupMemberType = 0
	MemberTypeBeginner      RuntimeGroupMemberType = 1
	MemberTypeMember        RuntimeGroupMemberType = 2
	MemberTypeAdmin         RuntimeGroupMemberType = 3
	MemberTypeActingFounder RuntimeGroupMemberType = 4
	MemberTypeFounder       RuntimeGroupMemberType = 5
)

// GroupsForMemberFilter narrows GetGroupsForMember results.
type GroupsForMemberFilter int

const (
	GroupsForMemberAll        GroupsForMemberFilter = 0
	GroupsForMemberFounded    GroupsForMemberFilter = 1
	GroupsForMemberNonFounded GroupsForMemberFilter = 2
)

// DestinyActivityModeType filters stats and activity history.
type DestinyActivityModeType int

const (
	ModeNone    DestinyActivityModeType = 0
	ModeStory   DestinyActivityModeType = 2
	ModeStrike  DestinyActivityModeType = 3
	ModeRaid    DestinyActivityModeType = 4
	ModeAllPvP  DestinyActivityModeType = 5
	ModePatrol  DestinyActivityModeType = 6
	ModeAllPvE  DestinyActivityModeType = 7
	ModeGambit  DestinyActivityModeType = 63
	ModeDungeon DestinyActivityModeType = 82
	ModeTrials  DestinyActivityModeType = 84
)

// PeriodType selects the granularity of historical stats.
type PeriodType int

const (
	PeriodNone     PeriodType = 0
	PeriodDaily    PeriodType = 1
	PeriodAllTime  PeriodType = 2
	PeriodActivity PeriodType = 3
)

// ForumTopicsSortEnum orders forum topic listings.
type ForumTopicsSortEnum int

// ForumTopicsQuickDateEnum limits forum topic listings by age.
type ForumTopicsQuickDateEnum int

// ForumTopicsCategoryFiltersEnum is a bit field of topic categories.
type ForumTopicsCategoryFiltersEnum int

// ForumPostSortEnum orders posts within a thread.
type ForumPostSortEnum int

// FireteamPlatform filters fireteam listings by platform.
type FireteamPlatform int

// FireteamDateRange filters fireteam listings by scheduled time.
type FireteamDateRange int

// FireteamSlotSearch filters fireteam listings by open slots.
type FireteamSlotSearch int

// FireteamPublicSearchOption filters fireteams by visibility.
type FireteamPublicSearchOption int

// PlatformFriendType selects the platform for GetPlatformFriendList.
type PlatformFriendType int

// BungieCredentialType identifies a linked credential kind.
type BungieCredentialType int
