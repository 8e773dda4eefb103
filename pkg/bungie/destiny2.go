package bungie

import (
	"context"
	"encoding/json"

	"github.com/mholzen/bungienet/pkg/client"
)

// DestinyManifest points at the versioned content databases.
type DestinyManifest struct {
	Version                        string                        `json:"version"`
	MobileAssetContentPath         string                        `json:"mobileAssetContentPath"`
	MobileGearAssetDataBases       []GearAssetDataBaseDefinition `json:"mobileGearAssetDataBases"`
	MobileWorldContentPaths        map[string]string             `json:"mobileWorldContentPaths"`
	JSONWorldContentPaths          map[string]string             `json:"jsonWorldContentPaths"`
	JSONWorldComponentContentPaths map[string]map[string]string  `json:"jsonWorldComponentContentPaths"`
	MobileClanBannerDatabasePath   string                        `json:"mobileClanBannerDatabasePath"`
	MobileGearCDN                  map[string]string             `json:"mobileGearCDN"`
	IconImagePyramidInfo           json.RawMessage               `json:"iconImagePyramidInfo,omitempty"`
}

type GearAssetDataBaseDefinition struct {
	Version int    `json:"version"`
	Path    string `json:"path"`
}

// ComponentResponse wraps each component of a profile or character response.
// Data is absent when the component is private and the caller is not the owner.
type ComponentResponse[T any] struct {
	Data     *T    `json:"data,omitempty"`
	Privacy  int   `json:"privacy"`
	Disabled *bool `json:"disabled,omitempty"`
}

type DestinyProfileComponent struct {
	UserInfo                    UserInfoCard `json:"userInfo"`
	DateLastPlayed              string       `json:"dateLastPlayed"`
	VersionsOwned               int          `json:"versionsOwned"`
	CharacterIDs                []string     `json:"characterIds"`
	SeasonHashes                []uint32     `json:"seasonHashes"`
	EventCardHashesOwned        []uint32     `json:"eventCardHashesOwned,omitempty"`
	CurrentSeasonHash           *uint32      `json:"currentSeasonHash,omitempty"`
	CurrentSeasonRewardPowerCap *int         `json:"currentSeasonRewardPowerCap,omitempty"`
	ActiveEventCardHash         *uint32      `json:"activeEventCardHash,omitempty"`
	CurrentGuardianRank         int          `json:"currentGuardianRank"`
	LifetimeHighestGuardianRank int          `json:"lifetimeHighestGuardianRank"`
	RenewedGuardianRank         int          `json:"renewedGuardianRank"`
}

type DestinyCharacterComponent struct {
	MembershipID             string               `json:"membershipId"`
	MembershipType           BungieMembershipType `json:"membershipType"`
	CharacterID              string               `json:"characterId"`
	DateLastPlayed           string               `json:"dateLastPlayed"`
	MinutesPlayedThisSession string               `json:"minutesPlayedThisSession"`
	MinutesPlayedTotal       string               `json:"minutesPlayedTotal"`
	Light                    int                  `json:"light"`
	Stats                    map[string]int       `json:"stats"`
	RaceHash                 uint32               `json:"raceHash"`
	GenderHash               uint32               `json:"genderHash"`
	ClassHash                uint32               `json:"classHash"`
	RaceType                 int                  `json:"raceType"`
	ClassType                int                  `json:"classType"`
	GenderType               int                  `json:"genderType"`
	EmblemPath               string               `json:"emblemPath"`
	EmblemBackgroundPath     string               `json:"emblemBackgroundPath"`
	EmblemHash               uint32               `json:"emblemHash"`
	TitleRecordHash          *uint32              `json:"titleRecordHash,omitempty"`
}

type DestinyItemComponent struct {
	ItemHash              uint32  `json:"itemHash"`
	ItemInstanceID        string  `json:"itemInstanceId,omitempty"`
	Quantity              int     `json:"quantity"`
	BindStatus            int     `json:"bindStatus"`
	Location              int     `json:"location"`
	BucketHash            uint32  `json:"bucketHash"`
	TransferStatus        int     `json:"transferStatus"`
	Lockable              bool    `json:"lockable"`
	State                 int     `json:"state"`
	OverrideStyleItemHash *uint32 `json:"overrideStyleItemHash,omitempty"`
	ExpirationDate        string  `json:"expirationDate,omitempty"`
	VersionNumber         *int    `json:"versionNumber,omitempty"`
}

type DestinyInventoryComponent struct {
	Items []DestinyItemComponent `json:"items"`
}

// DestinyProfileResponse carries one field per requested component. Only the
// common components are typed; the rest are left as raw JSON.
type DestinyProfileResponse struct {
	ResponseMintedTimestamp            string                                                  `json:"responseMintedTimestamp"`
	SecondaryComponentsMintedTimestamp string                                                  `json:"secondaryComponentsMintedTimestamp"`
	Profile                            *ComponentResponse[DestinyProfileComponent]             `json:"profile,omitempty"`
	ProfileInventory                   *ComponentResponse[DestinyInventoryComponent]           `json:"profileInventory,omitempty"`
	ProfileCurrencies                  *ComponentResponse[DestinyInventoryComponent]           `json:"profileCurrencies,omitempty"`
	Characters                         *DictionaryComponentResponse[DestinyCharacterComponent] `json:"characters,omitempty"`
	CharacterInventories               *DictionaryComponentResponse[DestinyInventoryComponent] `json:"characterInventories,omitempty"`
	CharacterEquipment                 *DictionaryComponentResponse[DestinyInventoryComponent] `json:"characterEquipment,omitempty"`
	ProfileRecords                     json.RawMessage                                         `json:"profileRecords,omitempty"`
	CharacterRecords                   json.RawMessage                                         `json:"characterRecords,omitempty"`
	ItemComponents                     json.RawMessage                                         `json:"itemComponents,omitempty"`
	Metrics                            json.RawMessage                                         `json:"metrics,omitempty"`
	ProfileProgression                 json.RawMessage                                         `json:"profileProgression,omitempty"`
	CharacterProgressions              json.RawMessage                                         `json:"characterProgressions,omitempty"`
	CharacterActivities                json.RawMessage                                         `json:"characterActivities,omitempty"`
	CharacterLoadouts                  json.RawMessage                                         `json:"characterLoadouts,omitempty"`
	ProfileCollectibles                json.RawMessage                                         `json:"profileCollectibles,omitempty"`
	CharacterCollectibles              json.RawMessage                                         `json:"characterCollectibles,omitempty"`
	ProfileTransitoryData              json.RawMessage                                         `json:"profileTransitoryData,omitempty"`
	ProfileStringVariables             json.RawMessage                                         `json:"profileStringVariables,omitempty"`
	ProfileCommendations               json.RawMessage                                         `json:"profileCommendations,omitempty"`
	VendorReceipts                     json.RawMessage                                         `json:"vendorReceipts,omitempty"`
	PlatformSilver                     json.RawMessage                                         `json:"platformSilver,omitempty"`
}

// DictionaryComponentResponse is a component keyed by character or item id.
type DictionaryComponentResponse[T any] struct {
	Data     map[string]T `json:"data,omitempty"`
	Privacy  int          `json:"privacy"`
	Disabled *bool        `json:"disabled,omitempty"`
}

type DestinyLinkedProfilesResponse struct {
	Profiles           []DestinyProfileUserInfoCard `json:"profiles"`
	BnetMembership     UserInfoCard                 `json:"bnetMembership"`
	ProfilesWithErrors json.RawMessage              `json:"profilesWithErrors,omitempty"`
}

type DestinyProfileUserInfoCard struct {
	UserInfoCard
	DateLastPlayed       string          `json:"dateLastPlayed"`
	IsOverridden         bool            `json:"isOverridden"`
	IsCrossSavePrimary   bool            `json:"isCrossSavePrimary"`
	PlatformSilver       json.RawMessage `json:"platformSilver,omitempty"`
	UnpairedGameVersions *int            `json:"unpairedGameVersions,omitempty"`
}

// ExactSearchRequest identifies a player by Bungie Name, e.g. "Guardian#0123".
type ExactSearchRequest struct {
	DisplayName     string `json:"displayName"`
	DisplayNameCode int    `json:"displayNameCode"`
}

type DestinyItemTransferRequest struct {
	ItemReferenceHash uint32               `json:"itemReferenceHash"`
	StackSize         int                  `json:"stackSize"`
	TransferToVault   bool                 `json:"transferToVault"`
	ItemID            string               `json:"itemId"`
	CharacterID       string               `json:"characterId"`
	MembershipType    BungieMembershipType `json:"membershipType"`
}

type DestinyPostmasterTransferRequest struct {
	ItemReferenceHash uint32               `json:"itemReferenceHash"`
	StackSize         int                  `json:"stackSize"`
	ItemID            string               `json:"itemId"`
	CharacterID       string               `json:"characterId"`
	MembershipType    BungieMembershipType `json:"membershipType"`
}

type DestinyItemActionRequest struct {
	ItemID         string               `json:"itemId"`
	CharacterID    string               `json:"characterId"`
	MembershipType BungieMembershipType `json:"membershipType"`
}

type DestinyItemSetActionRequest struct {
	ItemIDs        []string             `json:"itemIds"`
	CharacterID    string               `json:"characterId"`
	MembershipType BungieMembershipType `json:"membershipType"`
}

type DestinyLoadoutActionRequest struct {
	LoadoutIndex   int                  `json:"loadoutIndex"`
	CharacterID    string               `json:"characterId"`
	MembershipType BungieMembershipType `json:"membershipType"`
}

type DestinyLoadoutUpdateActionRequest struct {
	ColorHash      *uint32              `json:"colorHash,omitempty"`
	IconHash       *uint32              `json:"iconHash,omitempty"`
	NameHash       *uint32              `json:"nameHash,omitempty"`
	LoadoutIndex   int                  `json:"loadoutIndex"`
	CharacterID    string               `json:"characterId"`
	MembershipType BungieMembershipType `json:"membershipType"`
}

type DestinyItemStateRequest struct {
	State          bool                 `json:"state"`
	ItemID         string               `json:"itemId"`
	CharacterID    string               `json:"characterId"`
	MembershipType BungieMembershipType `json:"membershipType"`
}

type DestinyInsertPlugsActionRequest struct {
	ActionToken    string                         `json:"actionToken"`
	ItemInstanceID string                         `json:"itemInstanceId"`
	Plug           DestinyInsertPlugsRequestEntry `json:"plug"`
	CharacterID    string                         `json:"characterId"`
	MembershipType BungieMembershipType           `json:"membershipType"`
}

type DestinyInsertPlugsFreeActionRequest struct {
	Plug           DestinyInsertPlugsRequestEntry `json:"plug"`
	ItemID         string                         `json:"itemId"`
	CharacterID    string                         `json:"characterId"`
	MembershipType BungieMembershipType           `json:"membershipType"`
}

type DestinyInsertPlugsRequestEntry struct {
	SocketIndex     int    `json:"socketIndex"`
	SocketArrayType int    `json:"socketArrayType"`
	PlugItemHash    uint32 `json:"plugItemHash"`
}

type DestinyReportOffensePgcrRequest struct {
	ReasonCategoryHash   uint32   `json:"reasonCategoryHash"`
	ReasonHashes         []uint32 `json:"reasonHashes"`
	OffendingCharacterID string   `json:"offendingCharacterId"`
}

type AwaPermissionRequested struct {
	Type           int                  `json:"type"`
	AffectedItemID string               `json:"affectedItemId,omitempty"`
	MembershipType BungieMembershipType `json:"membershipType"`
	CharacterID    string               `json:"characterId,omitempty"`
}

type AwaInitializeResponse struct {
	CorrelationID string `json:"correlationId"`
	SentToSelf    bool   `json:"sentToSelf"`
}

type AwaUserResponse struct {
	Selection     int    `json:"selection"`
	CorrelationID string `json:"correlationId"`
	Nonce         []byte `json:"nonce"`
}

type AwaAuthorizationResult struct {
	UserSelection       int                  `json:"userSelection"`
	ResponseReason      int                  `json:"responseReason"`
	DeveloperMessage    string               `json:"developerMessage"`
	ActionToken         string               `json:"actionToken"`
	MaximumNumberOfUses int                  `json:"maximumNumberOfUses"`
	ValidUntil          string               `json:"validUntil,omitempty"`
	Type                int                  `json:"type"`
	MembershipType      BungieMembershipType `json:"membershipType"`
}

// StatsQuery holds the optional filters shared by the historical stats and
// leaderboard endpoints. Only the fields an endpoint accepts are sent.
type StatsQuery struct {
	DayEnd     string
	DayStart   string
	Groups     []int
	Modes      []DestinyActivityModeType
	PeriodType PeriodType
	MaxTop     int
	StatID     string
}

// ActivityHistoryQuery pages through GetActivityHistory.
type ActivityHistoryQuery struct {
	Count int
	Mode  DestinyActivityModeType
	Page  int
}

var (
	destinyGetDestinyManifest                         = get[DestinyManifest]("Destiny2", "GetDestinyManifest", "/Destiny2/Manifest/", AuthNone)
	destinyGetDestinyEntityDefinition                 = get[json.RawMessage]("Destiny2", "GetDestinyEntityDefinition", "/Destiny2/Manifest/{entityType}/{hashIdentifier}/", AuthNone)
	destinySearchDestinyPlayerByBungieName            = post[[]UserInfoCard]("Destiny2", "SearchDestinyPlayerByBungieName", "/Destiny2/SearchDestinyPlayerByBungieName/{membershipType}/", AuthNone)
	destinyGetLinkedProfiles                          = get[DestinyLinkedProfilesResponse]("Destiny2", "GetLinkedProfiles", "/Destiny2/{membershipType}/Profile/{membershipId}/LinkedProfiles/", AuthNone)
	destinyGetProfile                                 = get[DestinyProfileResponse]("Destiny2", "GetProfile", "/Destiny2/{membershipType}/Profile/{destinyMembershipId}/", AuthOptional)
	destinyGetCharacter                               = get[json.RawMessage]("Destiny2", "GetCharacter", "/Destiny2/{membershipType}/Profile/{destinyMembershipId}/Character/{characterId}/", AuthOptional)
	destinyGetClanWeeklyRewardState                   = get[json.RawMessage]("Destiny2", "GetClanWeeklyRewardState", "/Destiny2/Clan/{groupId}/WeeklyRewardState/", AuthNone)
	destinyGetClanBannerSource                        = get[json.RawMessage]("Destiny2", "GetClanBannerSource", "/Destiny2/Clan/ClanBannerDictionary/", AuthNone)
	destinyGetItem                                    = get[json.RawMessage]("Destiny2", "GetItem", "/Destiny2/{membershipType}/Profile/{destinyMembershipId}/Item/{itemInstanceId}/", AuthOptional)
	destinyGetVendors                                 = get[json.RawMessage]("Destiny2", "GetVendors", "/Destiny2/{membershipType}/Profile/{destinyMembershipId}/Character/{characterId}/Vendors/", AuthRequired)
	destinyGetVendor                                  = get[json.RawMessage]("Destiny2", "GetVendor", "/Destiny2/{membershipType}/Profile/{destinyMembershipId}/Character/{characterId}/Vendors/{vendorHash}/", AuthRequired)
	destinyGetPublicVendors                           = get[json.RawMessage]("Destiny2", "GetPublicVendors", "/Destiny2/Vendors/", AuthNone)
	destinyGetCollectibleNodeDetails                  = get[json.RawMessage]("Destiny2", "GetCollectibleNodeDetails", "/Destiny2/{membershipType}/Profile/{destinyMembershipId}/Character/{characterId}/Collectibles/{collectiblePresentationNodeHash}/", AuthOptional)
	destinyTransferItem                               = post[int]("Destiny2", "TransferItem", "/Destiny2/Actions/Items/TransferItem/", AuthRequired)
	destinyPullFromPostmaster                         = post[int]("Destiny2", "PullFromPostmaster", "/Destiny2/Actions/Items/PullFromPostmaster/", AuthRequired)
	destinyEquipItem                                  = post[int]("Destiny2", "EquipItem", "/Destiny2/Actions/Items/EquipItem/", AuthRequired)
	destinyEquipItems                                 = post[json.RawMessage]("Destiny2", "EquipItems", "/Destiny2/Actions/Items/EquipItems/", AuthRequired)
	destinyEquipLoadout                               = post[int]("Destiny2", "EquipLoadout", "/Destiny2/Actions/Loadouts/EquipLoadout/", AuthRequired)
	destinySnapshotLoadout                            = post[int]("Destiny2", "SnapshotLoadout", "/Destiny2/Actions/Loadouts/SnapshotLoadout/", AuthRequired)
	destinyUpdateLoadoutIdentifiers                   = post[int]("Destiny2", "UpdateLoadoutIdentifiers", "/Destiny2/Actions/Loadouts/UpdateLoadoutIdentifiers/", AuthRequired)
	destinyClearLoadout                               = post[int]("Destiny2", "ClearLoadout", "/Destiny2/Actions/Loadouts/ClearLoadout/", AuthRequired)
	destinySetItemLockState                           = post[int]("Destiny2", "SetItemLockState", "/Destiny2/Actions/Items/SetLockState/", AuthRequired)
	destinySetQuestTrackedState                       = post[int]("Destiny2", "SetQuestTrackedState", "/Destiny2/Actions/Items/SetTrackedState/", AuthRequired)
	destinyInsertSocketPlug                           = post[json.RawMessage]("Destiny2", "InsertSocketPlug", "/Destiny2/Actions/Items/InsertSocketPlug/", AuthRequired)
	destinyInsertSocketPlugFree                       = post[json.RawMessage]("Destiny2", "InsertSocketPlugFree", "/Destiny2/Actions/Items/InsertSocketPlugFree/", AuthRequired)
	destinyGetPostGameCarnageReport                   = get[json.RawMessage]("Destiny2", "GetPostGameCarnageReport", "/Destiny2/Stats/PostGameCarnageReport/{activityId}/", AuthNone)
	destinyReportOffensivePostGameCarnageReportPlayer = post[int]("Destiny2", "ReportOffensivePostGameCarnageReportPlayer", "/Destiny2/Stats/PostGameCarnageReport/{activityId}/Report/", AuthRequired)
	destinyGetHistoricalStatsDefinition               = get[map[string]json.RawMessage]("Destiny2", "GetHistoricalStatsDefinition", "/Destiny2/Stats/Definition/", AuthNone)
	destinyGetClanLeaderboards                        = get[json.RawMessage]("Destiny2", "GetClanLeaderboards", "/Destiny2/Stats/Leaderboards/Clans/{groupId}/", AuthNone)
	destinyGetClanAggregateStats                      = get[json.RawMessage]("Destiny2", "GetClanAggregateStats", "/Destiny2/Stats/AggregateClanStats/{groupId}/", AuthNone)
	destinyGetLeaderboards                            = get[json.RawMessage]("Destiny2", "GetLeaderboards", "/Destiny2/{membershipType}/Account/{destinyMembershipId}/Stats/Leaderboards/", AuthNone)
	destinyGetLeaderboardsForCharacter                = get[json.RawMessage]("Destiny2", "GetLeaderboardsForCharacter", "/Destiny2/Stats/Leaderboards/{membershipType}/{destinyMembershipId}/{characterId}/", AuthNone)
	destinySearchDestinyEntities                      = get[json.RawMessage]("Destiny2", "SearchDestinyEntities", "/Destiny2/Armory/Search/{type}/{searchTerm}/", AuthNone)
	destinyGetHistoricalStats                         = get[json.RawMessage]("Destiny2", "GetHistoricalStats", "/Destiny2/{membershipType}/Account/{destinyMembershipId}/Character/{characterId}/Stats/", AuthNone)
	destinyGetHistoricalStatsForAccount               = get[json.RawMessage]("Destiny2", "GetHistoricalStatsForAccount", "/Destiny2/{membershipType}/Account/{destinyMembershipId}/Stats/", AuthNone)
	destinyGetActivityHistory                         = get[json.RawMessage]("Destiny2", "GetActivityHistory", "/Destiny2/{membershipType}/Account/{destinyMembershipId}/Character/{characterId}/Stats/Activities/", AuthNone)
	destinyGetUniqueWeaponHistory                     = get[json.RawMessage]("Destiny2", "GetUniqueWeaponHistory", "/Destiny2/{membershipType}/Account/{destinyMembershipId}/Character/{characterId}/Stats/UniqueWeapons/", AuthNone)
	destinyGetDestinyAggregateActivityStats           = get[json.RawMessage]("Destiny2", "GetDestinyAggregateActivityStats", "/Destiny2/{membershipType}/Account/{destinyMembershipId}/Character/{characterId}/Stats/AggregateActivityStats/", AuthNone)
	destinyGetPublicMilestoneContent                  = get[json.RawMessage]("Destiny2", "GetPublicMilestoneContent", "/Destiny2/Milestones/{milestoneHash}/Content/", AuthNone)
	destinyGetPublicMilestones                        = get[map[string]json.RawMessage]("Destiny2", "GetPublicMilestones", "/Destiny2/Milestones/", AuthNone)
	destinyAwaInitializeRequest                       = post[AwaInitializeResponse]("Destiny2", "AwaInitializeRequest", "/Destiny2/Awa/Initialize/", AuthRequired)
	destinyAwaProvideAuthorizationResult              = post[int]("Destiny2", "AwaProvideAuthorizationResult", "/Destiny2/Awa/AwaProvideAuthorizationResult/", AuthNone)
	destinyAwaGetActionToken                          = get[AwaAuthorizationResult]("Destiny2", "AwaGetActionToken", "/Destiny2/Awa/GetActionToken/{correlationId}/", AuthRequired)
)

// Destiny2API wraps the /Destiny2 endpoints.
type Destiny2API struct {
	c *client.Client
}

func components(cs []DestinyComponentType) client.Query {
	return client.Query{{Key: "components", Value: cs}}
}

func (d *Destiny2API) GetDestinyManifest(ctx context.Context) (*Response[DestinyManifest], error) {
	return destinyGetDestinyManifest.call(ctx, d.c, nil, nil, nil)
}

// GetDestinyEntityDefinition returns one definition, e.g. entityType
// "DestinyInventoryItemDefinition". Prefer the manifest databases for bulk
// lookups.
func (d *Destiny2API) GetDestinyEntityDefinition(ctx context.Context, entityType string, hashIdentifier uint32) (*Response[json.RawMessage], error) {
	return destinyGetDestinyEntityDefinition.call(ctx, d.c, nil, nil, nil, entityType, hashIdentifier)
}

func (d *Destiny2API) SearchDestinyPlayerByBungieName(ctx context.Context, membershipType BungieMembershipType, req ExactSearchRequest) (*Response[[]UserInfoCard], error) {
	return destinySearchDestinyPlayerByBungieName.call(ctx, d.c, nil, nil, req, membershipType)
}

func (d *Destiny2API) GetLinkedProfiles(ctx context.Context, membershipType BungieMembershipType, membershipID string, getAllMemberships bool) (*Response[DestinyLinkedProfilesResponse], error) {
	q := client.Query{{Key: "getAllMemberships", Value: optional(getAllMemberships)}}
	return destinyGetLinkedProfiles.call(ctx, d.c, nil, q, nil, membershipType, membershipID)
}

// GetProfile returns the requested components of a profile. Private
// components are only filled in when tokens belong to the profile's owner.
func (d *Destiny2API) GetProfile(ctx context.Context, membershipType BungieMembershipType, destinyMembershipID string, cs []DestinyComponentType, tokens *client.Tokens) (*Response[DestinyProfileResponse], error) {
	return destinyGetProfile.call(ctx, d.c, tokens, components(cs), nil, membershipType, destinyMembershipID)
}

func (d *Destiny2API) GetCharacter(ctx context.Context, membershipType BungieMembershipType, destinyMembershipID, characterID string, cs []DestinyComponentType, tokens *client.Tokens) (*Response[json.RawMessage], error) {
	return destinyGetCharacter.call(ctx, d.c, tokens, components(cs), nil, membershipType, destinyMembershipID, characterID)
}

func (d *Destiny2API) GetClanWeeklyRewardState(ctx context.Context, groupID string) (*Response[json.RawMessage], error) {
	return destinyGetClanWeeklyRewardState.call(ctx, d.c, nil, nil, nil, groupID)
}

func (d *Destiny2API) GetClanBannerSource(ctx context.Context) (*Response[json.RawMessage], error) {
	return destinyGetClanBannerSource.call(ctx, d.c, nil, nil, nil)
}

func (d *Destiny2API) GetItem(ctx context.Context, membershipType BungieMembershipType, destinyMembershipID, itemInstanceID string, cs []DestinyComponentType, tokens *client.Tokens) (*Response[json.RawMessage], error) {
	return destinyGetItem.call(ctx, d.c, tokens, components(cs), nil, membershipType, destinyMembershipID, itemInstanceID)
}

func (d *Destiny2API) GetVendors(ctx context.Context, membershipType BungieMembershipType, destinyMembershipID, characterID string, cs []DestinyComponentType, filter int, tokens *client.Tokens) (*Response[json.RawMessage], error) {
	q := components(cs).Add("filter", optional(filter))
	return destinyGetVendors.call(ctx, d.c, tokens, q, nil, membershipType, destinyMembershipID, characterID)
}

func (d *Destiny2API) GetVendor(ctx context.Context, membershipType BungieMembershipType, destinyMembershipID, characterID string, vendorHash uint32, cs []DestinyComponentType, tokens *client.Tokens) (*Response[json.RawMessage], error) {
	return destinyGetVendor.call(ctx, d.c, tokens, components(cs), nil, membershipType, destinyMembershipID, characterID, vendorHash)
}

func (d *Destiny2API) GetPublicVendors(ctx context.Context, cs []DestinyComponentType) (*Response[json.RawMessage], error) {
	return destinyGetPublicVendors.call(ctx, d.c, nil, components(cs), nil)
}

func (d *Destiny2API) GetCollectibleNodeDetails(ctx context.Context, membershipType BungieMembershipType, destinyMembershipID, characterID string, nodeHash uint32, cs []DestinyComponentType, tokens *client.Tokens) (*Response[json.RawMessage], error) {
	return destinyGetCollectibleNodeDetails.call(ctx, d.c, tokens, components(cs), nil, membershipType, destinyMembershipID, characterID, nodeHash)
}

func (d *Destiny2API) TransferItem(ctx context.Context, req DestinyItemTransferRequest, tokens *client.Tokens) (*Response[int], error) {
	return destinyTransferItem.call(ctx, d.c, tokens, nil, req)
}

func (d *Destiny2API) PullFromPostmaster(ctx context.Context, req DestinyPostmasterTransferRequest, tokens *client.Tokens) (*Response[int], error) {
	return destinyPullFromPostmaster.call(ctx, d.c, tokens, nil, req)
}

func (d *Destiny2API) EquipItem(ctx context.Context, req DestinyItemActionRequest, tokens *client.Tokens) (*Response[int], error) {
	return destinyEquipItem.call(ctx, d.c, tokens, nil, req)
}

func (d *Destiny2API) EquipItems(ctx context.Context, req DestinyItemSetActionRequest, tokens *client.Tokens) (*Response[json.RawMessage], error) {
	return destinyEquipItems.call(ctx, d.c, tokens, nil, req)
}

func (d *Destiny2API) EquipLoadout(ctx context.Context, req DestinyLoadoutActionRequest, tokens *client.Tokens) (*Response[int], error) {
	return destinyEquipLoadout.call(ctx, d.c, tokens, nil, req)
}

func (d *Destiny2API) SnapshotLoadout(ctx context.Context, req DestinyLoadoutUpdateActionRequest, tokens *client.Tokens) (*Response[int], error) {
	return destinySnapshotLoadout.call(ctx, d.c, tokens, nil, req)
}

func (d *Destiny2API) UpdateLoadoutIdentifiers(ctx context.Context, req DestinyLoadoutUpdateActionRequest, tokens *client.Tokens) (*Response[int], error) {
	return destinyUpdateLoadoutIdentifiers.call(ctx, d.c, tokens, nil, req)
}

func (d *Destiny2API) ClearLoadout(ctx context.Context, req DestinyLoadoutActionRequest, tokens *client.Tokens) (*Response[int], error) {
	return destinyClearLoadout.call(ctx, d.c, tokens, nil, req)
}

func (d *Destiny2API) SetItemLockState(ctx context.Context, req DestinyItemStateRequest, tokens *client.Tokens) (*Response[int], error) {
	return destinySetItemLockState.call(ctx, d.c, tokens, nil, req)
}

func (d *Destiny2API) SetQuestTrackedState(ctx context.Context, req DestinyItemStateRequest, tokens *client.Tokens) (*Response[int], error) {
	return destinySetQuestTrackedState.call(ctx, d.c, tokens, nil, req)
}

// InsertSocketPlug needs an action token from the AWA flow.
func (d *Destiny2API) InsertSocketPlug(ctx context.Context, req DestinyInsertPlugsActionRequest, tokens *client.Tokens) (*Response[json.RawMessage], error) {
	return destinyInsertSocketPlug.call(ctx, d.c, tokens, nil, req)
}

func (d *Destiny2API) InsertSocketPlugFree(ctx context.Context, req DestinyInsertPlugsFreeActionRequest, tokens *client.Tokens) (*Response[json.RawMessage], error) {
	return destinyInsertSocketPlugFree.call(ctx, d.c, tokens, nil, req)
}

func (d *Destiny2API) GetPostGameCarnageReport(ctx context.Context, activityID string) (*Response[json.RawMessage], error) {
	return destinyGetPostGameCarnageReport.call(ctx, d.c, nil, nil, nil, activityID)
}

func (d *Destiny2API) ReportOffensivePostGameCarnageReportPlayer(ctx context.Context, activityID string, req DestinyReportOffensePgcrRequest, tokens *client.Tokens) (*Response[int], error) {
	return destinyReportOffensivePostGameCarnageReportPlayer.call(ctx, d.c, tokens, nil, req, activityID)
}

func (d *Destiny2API) GetHistoricalStatsDefinition(ctx context.Context) (*Response[map[string]json.RawMessage], error) {
	return destinyGetHistoricalStatsDefinition.call(ctx, d.c, nil, nil, nil)
}

func leaderboardQuery(s StatsQuery) client.Query {
	return client.Query{
		{Key: "maxtop", Value: optional(s.MaxTop)},
		{Key: "modes", Value: s.Modes},
		{Key: "statid", Value: optional(s.StatID)},
	}
}

func (d *Destiny2API) GetClanLeaderboards(ctx context.Context, groupID string, s StatsQuery) (*Response[json.RawMessage], error) {
	return destinyGetClanLeaderboards.call(ctx, d.c, nil, leaderboardQuery(s), nil, groupID)
}

func (d *Destiny2API) GetClanAggregateStats(ctx context.Context, groupID string, modes []DestinyActivityModeType) (*Response[json.RawMessage], error) {
	return destinyGetClanAggregateStats.call(ctx, d.c, nil, client.Query{{Key: "modes", Value: modes}}, nil, groupID)
}

func (d *Destiny2API) GetLeaderboards(ctx context.Context, membershipType BungieMembershipType, destinyMembershipID string, s StatsQuery) (*Response[json.RawMessage], error) {
	return destinyGetLeaderboards.call(ctx, d.c, nil, leaderboardQuery(s), nil, membershipType, destinyMembershipID)
}

func (d *Destiny2API) GetLeaderboardsForCharacter(ctx context.Context, membershipType BungieMembershipType, destinyMembershipID, characterID string, s StatsQuery) (*Response[json.RawMessage], error) {
	return destinyGetLeaderboardsForCharacter.call(ctx, d.c, nil, leaderboardQuery(s), nil, membershipType, destinyMembershipID, characterID)
}

func (d *Destiny2API) SearchDestinyEntities(ctx context.Context, entityType, searchTerm string, page int) (*Response[json.RawMessage], error) {
	return destinySearchDestinyEntities.call(ctx, d.c, nil, client.Query{{Key: "page", Value: optional(page)}}, nil, entityType, searchTerm)
}

func (d *Destiny2API) GetHistoricalStats(ctx context.Context, membershipType BungieMembershipType, destinyMembershipID, characterID string, s StatsQuery) (*Response[json.RawMessage], error) {
	q := client.Query{
		{Key: "dayend", Value: optional(s.DayEnd)},
		{Key: "daystart", Value: optional(s.DayStart)},
		{Key: "groups", Value: s.Groups},
		{Key: "modes", Value: s.Modes},
		{Key: "periodType", Value: optional(s.PeriodType)},
	}
	return destinyGetHistoricalStats.call(ctx, d.c, nil, q, nil, membershipType, destinyMembershipID, characterID)
}

func (d *Destiny2API) GetHistoricalStatsForAccount(ctx context.Context, membershipType BungieMembershipType, destinyMembershipID string, groups []int) (*Response[json.RawMessage], error) {
	return destinyGetHistoricalStatsForAccount.call(ctx, d.c, nil, client.Query{{Key: "groups", Value: groups}}, nil, membershipType, destinyMembershipID)
}

func (d *Destiny2API) GetActivityHistory(ctx context.Context, membershipType BungieMembershipType, destinyMembershipID, characterID string, a ActivityHistoryQuery) (*Response[json.RawMessage], error) {
	q := client.Query{
		{Key: "count", Value: optional(a.Count)},
		{Key: "mode", Value: optional(a.Mode)},
		{Key: "page", Value: optional(a.Page)},
	}
	return destinyGetActivityHistory.call(ctx, d.c, nil, q, nil, membershipType, destinyMembershipID, characterID)
}

func (d *Destiny2API) GetUniqueWeaponHistory(ctx context.Context, membershipType BungieMembershipType, destinyMembershipID, characterID string) (*Response[json.RawMessage], error) {
	return destinyGetUniqueWeaponHistory.call(ctx, d.c, nil, nil, nil, membershipType, destinyMembershipID, characterID)
}

func (d *Destiny2API) GetDestinyAggregateActivityStats(ctx context.Context, membershipType BungieMembershipType, destinyMembershipID, characterID string) (*Response[json.RawMessage], error) {
	return destinyGetDestinyAggregateActivityStats.call(ctx, d.c, nil, nil, nil, membershipType, destinyMembershipID, characterID)
}

func (d *Destiny2API) GetPublicMilestoneContent(ctx context.Context, milestoneHash uint32) (*Response[json.RawMessage], error) {
	return destinyGetPublicMilestoneContent.call(ctx, d.c, nil, nil, nil, milestoneHash)
}

func (d *Destiny2API) GetPublicMilestones(ctx context.Context) (*Response[map[string]json.RawMessage], error) {
	return destinyGetPublicMilestones.call(ctx, d.c, nil, nil, nil)
}

// AwaInitializeRequest starts an advanced write action approval on the
// user's device.
func (d *Destiny2API) AwaInitializeRequest(ctx context.Context, req AwaPermissionRequested, tokens *client.Tokens) (*Response[AwaInitializeResponse], error) {
	return destinyAwaInitializeRequest.call(ctx, d.c, tokens, nil, req)
}

func (d *Destiny2API) AwaProvideAuthorizationResult(ctx context.Context, req AwaUserResponse) (*Response[int], error) {
	return destinyAwaProvideAuthorizationResult.call(ctx, d.c, nil, nil, req)
}

func (d *Destiny2API) AwaGetActionToken(ctx context.Context, correlationID string, tokens *client.Tokens) (*Response[AwaAuthorizationResult], error) {
	return destinyAwaGetActionToken.call(ctx, d.c, tokens, nil, nil, correlationID)
}
