package bungie

import (
	"context"
	"encoding/json"

	"github.com/mholzen/bungienet/pkg/client"
)

type GroupV2 struct {
	GroupID                            string          `json:"groupId"`
	Name                               string          `json:"name"`
	GroupType                          GroupType       `json:"groupType"`
	MembershipIDCreated                string          `json:"membershipIdCreated"`
	CreationDate                       string          `json:"creationDate"`
	ModificationDate                   string          `json:"modificationDate"`
	About                              string          `json:"about"`
	Tags                               []string        `json:"tags"`
	MemberCount                        int             `json:"memberCount"`
	IsPublic                           bool            `json:"isPublic"`
	IsPublicTopicAdminOnly             bool            `json:"isPublicTopicAdminOnly"`
	Motto                              string          `json:"motto"`
	AllowChat                          bool            `json:"allowChat"`
	IsDefaultPostPublic                bool            `json:"isDefaultPostPublic"`
	ChatSecurity                       int             `json:"chatSecurity"`
	Locale                             string          `json:"locale"`
	AvatarImageIndex                   int             `json:"avatarImageIndex"`
	Homepage                           int             `json:"homepage"`
	MembershipOption                   int             `json:"membershipOption"`
	DefaultPublicity                   int             `json:"defaultPublicity"`
	Theme                              string          `json:"theme"`
	BannerPath                         string          `json:"bannerPath"`
	AvatarPath                         string          `json:"avatarPath"`
	ConversationID                     string          `json:"conversationId"`
	EnableInvitationMessagingForAdmins bool            `json:"enableInvitationMessagingForAdmins"`
	BanExpireDate                      string          `json:"banExpireDate,omitempty"`
	Features                           json.RawMessage `json:"features,omitempty"`
	RemoteGroupID                      string          `json:"remoteGroupId,omitempty"`
	ClanInfo                           json.RawMessage `json:"clanInfo,omitempty"`
}

type GroupMember struct {
	MemberType             RuntimeGroupMemberType `json:"memberType"`
	IsOnline               bool                   `json:"isOnline"`
	LastOnlineStatusChange string                 `json:"lastOnlineStatusChange"`
	GroupID                string                 `json:"groupId"`
	DestinyUserInfo        GroupUserInfoCard      `json:"destinyUserInfo"`
	BungieNetUserInfo      *UserInfoCard          `json:"bungieNetUserInfo,omitempty"`
	JoinDate               string                 `json:"joinDate"`
}

type GroupResponse struct {
	Detail                                   GroupV2                    `json:"detail"`
	Founder                                  GroupMember                `json:"founder"`
	AlliedIDs                                []string                   `json:"alliedIds"`
	ParentGroup                              *GroupV2                   `json:"parentGroup,omitempty"`
	AllianceStatus                           int                        `json:"allianceStatus"`
	GroupJoinInviteCount                     int                        `json:"groupJoinInviteCount"`
	CurrentUserMembershipsInactiveForDestiny bool                       `json:"currentUserMembershipsInactiveForDestiny"`
	CurrentUserMemberMap                     map[string]GroupMember     `json:"currentUserMemberMap,omitempty"`
	CurrentUserPotentialMemberMap            map[string]json.RawMessage `json:"currentUserPotentialMemberMap,omitempty"`
}

type GroupMembership struct {
	Member GroupMember `json:"member"`
	Group  GroupV2     `json:"group"`
}

type GetGroupsForMemberResponse struct {
	SearchResultOf[GroupMembership]
	AreAllMembershipsInactive map[string]bool `json:"areAllMembershipsInactive,omitempty"`
}

type GroupTheme struct {
	Name        string `json:"name"`
	Folder      string `json:"folder"`
	Description string `json:"description"`
}

type GroupQuery struct {
	Name                     string    `json:"name"`
	GroupType                GroupType `json:"groupType"`
	CreationDate             int       `json:"creationDate"`
	SortBy                   int       `json:"sortBy"`
	GroupMemberCountFilter   *int      `json:"groupMemberCountFilter,omitempty"`
	LocaleFilter             string    `json:"localeFilter,omitempty"`
	TagText                  string    `json:"tagText,omitempty"`
	ItemsPerPage             int       `json:"itemsPerPage"`
	CurrentPage              int       `json:"currentPage"`
	RequestContinuationToken string    `json:"requestContinuationToken,omitempty"`
}

type GroupNameSearchRequest struct {
	GroupName string    `json:"groupName"`
	GroupType GroupType `json:"groupType"`
}

// GroupEditAction changes only the fields that are set.
type GroupEditAction struct {
	Name                               *string  `json:"name,omitempty"`
	About                              *string  `json:"about,omitempty"`
	Motto                              *string  `json:"motto,omitempty"`
	Theme                              *string  `json:"theme,omitempty"`
	AvatarImageIndex                   *int     `json:"avatarImageIndex,omitempty"`
	Tags                               []string `json:"tags,omitempty"`
	IsPublic                           *bool    `json:"isPublic,omitempty"`
	MembershipOption                   *int     `json:"membershipOption,omitempty"`
	IsPublicTopicAdminOnly             *bool    `json:"isPublicTopicAdminOnly,omitempty"`
	AllowChat                          *bool    `json:"allowChat,omitempty"`
	ChatSecurity                       *int     `json:"chatSecurity,omitempty"`
	Callsign                           *string  `json:"callsign,omitempty"`
	Locale                             *string  `json:"locale,omitempty"`
	Homepage                           *int     `json:"homepage,omitempty"`
	EnableInvitationMessagingForAdmins *bool    `json:"enableInvitationMessagingForAdmins,omitempty"`
	DefaultPublicity                   *int     `json:"defaultPublicity,omitempty"`
}

type GroupOptionsEditAction struct {
	InvitePermissionOverride         *bool `json:"InvitePermissionOverride,omitempty"`
	UpdateCulturePermissionOverride  *bool `json:"UpdateCulturePermissionOverride,omitempty"`
	HostGuidedGamePermissionOverride *int  `json:"HostGuidedGamePermissionOverride,omitempty"`
	UpdateBannerPermissionOverride   *bool `json:"UpdateBannerPermissionOverride,omitempty"`
	JoinLevel                        *int  `json:"JoinLevel,omitempty"`
}

type ClanBanner struct {
	DecalID                uint32 `json:"decalId"`
	DecalColorID           uint32 `json:"decalColorId"`
	DecalBackgroundColorID uint32 `json:"decalBackgroundColorId"`
	GonfalonID             uint32 `json:"gonfalonId"`
	GonfalonColorID        uint32 `json:"gonfalonColorId"`
	GonfalonDetailID       uint32 `json:"gonfalonDetailId"`
	GonfalonDetailColorID  uint32 `json:"gonfalonDetailColorId"`
}

type GroupOptionalConversation struct {
	GroupID        string `json:"groupId"`
	ConversationID string `json:"conversationId"`
	ChatEnabled    bool   `json:"chatEnabled"`
	ChatName       string `json:"chatName"`
	ChatSecurity   int    `json:"chatSecurity"`
}

type GroupOptionalConversationAddRequest struct {
	ChatName     string `json:"chatName"`
	ChatSecurity int    `json:"chatSecurity"`
}

type GroupOptionalConversationEditRequest struct {
	ChatEnabled  *bool   `json:"chatEnabled,omitempty"`
	ChatName     *string `json:"chatName,omitempty"`
	ChatSecurity *int    `json:"chatSecurity,omitempty"`
}

type GroupMemberLeaveResult struct {
	Group        GroupV2 `json:"group"`
	GroupDeleted bool    `json:"groupDeleted"`
}

type GroupBanRequest struct {
	Comment string `json:"comment"`
	Length  int    `json:"length"`
}

type GroupBan struct {
	GroupID           string            `json:"groupId"`
	LastModifiedBy    UserInfoCard      `json:"lastModifiedBy"`
	CreatedBy         UserInfoCard      `json:"createdBy"`
	DateBanned        string            `json:"dateBanned"`
	DateExpires       string            `json:"dateExpires"`
	Comment           string            `json:"comment"`
	BungieNetUserInfo UserInfoCard      `json:"bungieNetUserInfo"`
	DestinyUserInfo   GroupUserInfoCard `json:"destinyUserInfo"`
}

type GroupMemberApplication struct {
	GroupID                string            `json:"groupId"`
	CreationDate           string            `json:"creationDate"`
	ResolveState           int               `json:"resolveState"`
	ResolveDate            string            `json:"resolveDate,omitempty"`
	ResolvedByMembershipID string            `json:"resolvedByMembershipId,omitempty"`
	RequestMessage         string            `json:"requestMessage"`
	ResolveMessage         string            `json:"resolveMessage"`
	DestinyUserInfo        GroupUserInfoCard `json:"destinyUserInfo"`
	BungieNetUserInfo      UserInfoCard      `json:"bungieNetUserInfo"`
}

type GroupApplicationRequest struct {
	Message string `json:"message"`
}

type UserMembership struct {
	MembershipType              BungieMembershipType `json:"membershipType"`
	MembershipID                string               `json:"membershipId"`
	DisplayName                 string               `json:"displayName,omitempty"`
	BungieGlobalDisplayName     string               `json:"bungieGlobalDisplayName,omitempty"`
	BungieGlobalDisplayNameCode int                  `json:"bungieGlobalDisplayNameCode,omitempty"`
}

type GroupApplicationListRequest struct {
	Memberships []UserMembership `json:"memberships"`
	Message     string           `json:"message"`
}

type EntityActionResult struct {
	EntityID string            `json:"entityId"`
	Result   PlatformErrorCode `json:"result"`
}

type GroupApplicationResponse struct {
	Resolution int `json:"resolution"`
}

var (
	groupGetAvailableAvatars           = get[map[int]string]("GroupV2", "GetAvailableAvatars", "/GroupV2/GetAvailableAvatars/", AuthNone)
	groupGetAvailableThemes            = get[[]GroupTheme]("GroupV2", "GetAvailableThemes", "/GroupV2/GetAvailableThemes/", AuthNone)
	groupGetUserClanInviteSetting      = get[bool]("GroupV2", "GetUserClanInviteSetting", "/GroupV2/GetUserClanInviteSetting/{mType}/", AuthRequired)
	groupGetRecommendedGroups          = post[[]json.RawMessage]("GroupV2", "GetRecommendedGroups", "/GroupV2/Recommended/{groupType}/{createDateRange}/", AuthRequired)
	groupGroupSearch                   = post[SearchResultOf[json.RawMessage]]("GroupV2", "GroupSearch", "/GroupV2/Search/", AuthNone)
	groupGetGroup                      = get[GroupResponse]("GroupV2", "GetGroup", "/GroupV2/{groupId}/", AuthOptional)
	groupGetGroupByName                = get[GroupResponse]("GroupV2", "GetGroupByName", "/GroupV2/Name/{groupName}/{groupType}/", AuthOptional)
	groupGetGroupByNameV2              = post[GroupResponse]("GroupV2", "GetGroupByNameV2", "/GroupV2/NameV2/", AuthOptional)
	groupGetGroupOptionalConversations = get[[]GroupOptionalConversation]("GroupV2", "GetGroupOptionalConversations", "/GroupV2/{groupId}/OptionalConversations/", AuthNone)
	groupEditGroup                     = post[int]("GroupV2", "EditGroup", "/GroupV2/{groupId}/Edit/", AuthRequired)
	groupEditClanBanner                = post[int]("GroupV2", "EditClanBanner", "/GroupV2/{groupId}/EditClanBanner/", AuthRequired)
	groupEditFounderOptions            = post[int]("GroupV2", "EditFounderOptions", "/GroupV2/{groupId}/EditFounderOptions/", AuthRequired)
	groupAddOptionalConversation       = post[string]("GroupV2", "AddOptionalConversation", "/GroupV2/{groupId}/OptionalConversations/Add/", AuthRequired)
	groupEditOptionalConversation      = post[string]("GroupV2", "EditOptionalConversation", "/GroupV2/{groupId}/OptionalConversations/Edit/{conversationId}/", AuthRequired)
	groupGetMembersOfGroup             = get[SearchResultOf[GroupMember]]("GroupV2", "GetMembersOfGroup", "/GroupV2/{groupId}/Members/", AuthNone)
	groupGetAdminsAndFounderOfGroup    = get[SearchResultOf[GroupMember]]("GroupV2", "GetAdminsAndFounderOfGroup", "/GroupV2/{groupId}/AdminsAndFounder/", AuthNone)
	groupEditGroupMembership           = post[int]("GroupV2", "EditGroupMembership", "/GroupV2/{groupId}/Members/{membershipType}/{membershipId}/SetMembershipType/{memberType}/", AuthRequired)
	groupKickMember                    = post[GroupMemberLeaveResult]("GroupV2", "KickMember", "/GroupV2/{groupId}/Members/{membershipType}/{membershipId}/Kick/", AuthRequired)
	groupBanMember                     = post[int]("GroupV2", "BanMember", "/GroupV2/{groupId}/Members/{membershipType}/{membershipId}/Ban/", AuthRequired)
	groupUnbanMember                   = post[int]("GroupV2", "UnbanMember", "/GroupV2/{groupId}/Members/{membershipType}/{membershipId}/Unban/", AuthRequired)
	groupGetBannedMembersOfGroup       = get[SearchResultOf[GroupBan]]("GroupV2", "GetBannedMembersOfGroup", "/GroupV2/{groupId}/Banned/", AuthRequired)
	groupAbdicateFoundership           = post[bool]("GroupV2", "AbdicateFoundership", "/GroupV2/{groupId}/Admin/AbdicateFoundership/{membershipType}/{founderIdNew}/", AuthRequired)
	groupGetPendingMemberships         = get[SearchResultOf[GroupMemberApplication]]("GroupV2", "GetPendingMemberships", "/GroupV2/{groupId}/Members/Pending/", AuthRequired)
	groupGetInvitedIndividuals         = get[SearchResultOf[GroupMemberApplication]]("GroupV2", "GetInvitedIndividuals", "/GroupV2/{groupId}/Members/InvitedIndividuals/", AuthRequired)
	groupApproveAllPending             = post[[]EntityActionResult]("GroupV2", "ApproveAllPending", "/GroupV2/{groupId}/Members/ApproveAll/", AuthRequired)
	groupDenyAllPending                = post[[]EntityActionResult]("GroupV2", "DenyAllPending", "/GroupV2/{groupId}/Members/DenyAll/", AuthRequired)
	groupApprovePendingForList         = post[[]EntityActionResult]("GroupV2", "ApprovePendingForList", "/GroupV2/{groupId}/Members/ApproveList/", AuthRequired)
	groupApprovePending                = post[bool]("GroupV2", "ApprovePending", "/GroupV2/{groupId}/Members/Approve/{membershipType}/{membershipId}/", AuthRequired)
	groupDenyPendingForList            = post[[]EntityActionResult]("GroupV2", "DenyPendingForList", "/GroupV2/{groupId}/Members/DenyList/", AuthRequired)
	groupGetGroupsForMember            = get[GetGroupsForMemberResponse]("GroupV2", "GetGroupsForMember", "/GroupV2/User/{membershipType}/{membershipId}/{filter}/{groupType}/", AuthNone)
	groupRecoverGroupForFounder        = get[json.RawMessage]("GroupV2", "RecoverGroupForFounder", "/GroupV2/Recover/{membershipType}/{membershipId}/{groupType}/", AuthNone)
	groupGetPotentialGroupsForMember   = get[json.RawMessage]("GroupV2", "GetPotentialGroupsForMember", "/GroupV2/User/Potential/{membershipType}/{membershipId}/{filter}/{groupType}/", AuthNone)
	groupIndividualGroupInvite         = post[GroupApplicationResponse]("GroupV2", "IndividualGroupInvite", "/GroupV2/{groupId}/Members/IndividualInvite/{membershipType}/{membershipId}/", AuthRequired)
	groupIndividualGroupInviteCancel   = post[GroupApplicationResponse]("GroupV2", "IndividualGroupInviteCancel", "/GroupV2/{groupId}/Members/IndividualInviteCancel/{membershipType}/{membershipId}/", AuthRequired)
)

// GroupV2API wraps the /GroupV2 endpoints: groups, clans and their rosters.
type GroupV2API struct {
	c *client.Client
}

func (g *GroupV2API) GetAvailableAvatars(ctx context.Context) (*Response[map[int]string], error) {
	return groupGetAvailableAvatars.call(ctx, g.c, nil, nil, nil)
}

func (g *GroupV2API) GetAvailableThemes(ctx context.Context) (*Response[[]GroupTheme], error) {
	return groupGetAvailableThemes.call(ctx, g.c, nil, nil, nil)
}

func (g *GroupV2API) GetUserClanInviteSetting(ctx context.Context, mType BungieMembershipType, tokens *client.Tokens) (*Response[bool], error) {
	return groupGetUserClanInviteSetting.call(ctx, g.c, tokens, nil, nil, mType)
}

func (g *GroupV2API) GetRecommendedGroups(ctx context.Context, groupType GroupType, createDateRange int, tokens *client.Tokens) (*Response[[]json.RawMessage], error) {
	return groupGetRecommendedGroups.call(ctx, g.c, tokens, nil, nil, groupType, createDateRange)
}

func (g *GroupV2API) GroupSearch(ctx context.Context, q GroupQuery) (*Response[SearchResultOf[json.RawMessage]], error) {
	return groupGroupSearch.call(ctx, g.c, nil, nil, q)
}

// GetGroup returns a group. With tokens, the caller's own membership is
// included in CurrentUserMemberMap.
func (g *GroupV2API) GetGroup(ctx context.Context, groupID string, tokens *client.Tokens) (*Response[GroupResponse], error) {
	return groupGetGroup.call(ctx, g.c, tokens, nil, nil, groupID)
}

func (g *GroupV2API) GetGroupByName(ctx context.Context, groupName string, groupType GroupType, tokens *client.Tokens) (*Response[GroupResponse], error) {
	return groupGetGroupByName.call(ctx, g.c, tokens, nil, nil, groupName, groupType)
}

func (g *GroupV2API) GetGroupByNameV2(ctx context.Context, req GroupNameSearchRequest, tokens *client.Tokens) (*Response[GroupResponse], error) {
	return groupGetGroupByNameV2.call(ctx, g.c, tokens, nil, req)
}

func (g *GroupV2API) GetGroupOptionalConversations(ctx context.Context, groupID string) (*Response[[]GroupOptionalConversation], error) {
	return groupGetGroupOptionalConversations.call(ctx, g.c, nil, nil, nil, groupID)
}

func (g *GroupV2API) EditGroup(ctx context.Context, groupID string, edit GroupEditAction, tokens *client.Tokens) (*Response[int], error) {
	return groupEditGroup.call(ctx, g.c, tokens, nil, edit, groupID)
}

func (g *GroupV2API) EditClanBanner(ctx context.Context, groupID string, banner ClanBanner, tokens *client.Tokens) (*Response[int], error) {
	return groupEditClanBanner.call(ctx, g.c, tokens, nil, banner, groupID)
}

func (g *GroupV2API) EditFounderOptions(ctx context.Context, groupID string, edit GroupOptionsEditAction, tokens *client.Tokens) (*Response[int], error) {
	return groupEditFounderOptions.call(ctx, g.c, tokens, nil, edit, groupID)
}

// AddOptionalConversation returns the new conversation id.
func (g *GroupV2API) AddOptionalConversation(ctx context.Context, groupID string, req GroupOptionalConversationAddRequest, tokens *client.Tokens) (*Response[string], error) {
	return groupAddOptionalConversation.call(ctx, g.c, tokens, nil, req, groupID)
}

func (g *GroupV2API) EditOptionalConversation(ctx context.Context, groupID, conversationID string, req GroupOptionalConversationEditRequest, tokens *client.Tokens) (*Response[string], error) {
	return groupEditOptionalConversation.call(ctx, g.c, tokens, nil, req, groupID, conversationID)
}

// GetMembersOfGroup lists members a page at a time. An empty nameSearch and
// MemberTypeNone leave the roster unfiltered.
func (g *GroupV2API) GetMembersOfGroup(ctx context.Context, groupID string, currentPage int, memberType RuntimeGroupMemberType, nameSearch string) (*Response[SearchResultOf[GroupMember]], error) {
	q := client.Query{
		{Key: "currentpage", Value: currentPage},
		{Key: "memberType", Value: optional(memberType)},
		{Key: "nameSearch", Value: optional(nameSearch)},
	}
	return groupGetMembersOfGroup.call(ctx, g.c, nil, q, nil, groupID)
}

func (g *GroupV2API) GetAdminsAndFounderOfGroup(ctx context.Context, groupID string, currentPage int) (*Response[SearchResultOf[GroupMember]], error) {
	return groupGetAdminsAndFounderOfGroup.call(ctx, g.c, nil, page(currentPage), nil, groupID)
}

func (g *GroupV2API) EditGroupMembership(ctx context.Context, groupID string, membershipType BungieMembershipType, membershipID string, memberType RuntimeGroupMemberType, tokens *client.Tokens) (*Response[int], error) {
	return groupEditGroupMembership.call(ctx, g.c, tokens, nil, nil, groupID, membershipType, membershipID, memberType)
}

func (g *GroupV2API) KickMember(ctx context.Context, groupID string, membershipType BungieMembershipType, membershipID string, tokens *client.Tokens) (*Response[GroupMemberLeaveResult], error) {
	return groupKickMember.call(ctx, g.c, tokens, nil, nil, groupID, membershipType, membershipID)
}

func (g *GroupV2API) BanMember(ctx context.Context, groupID string, membershipType BungieMembershipType, membershipID string, req GroupBanRequest, tokens *client.Tokens) (*Response[int], error) {
	return groupBanMember.call(ctx, g.c, tokens, nil, req, groupID, membershipType, membershipID)
}

func (g *GroupV2API) UnbanMember(ctx context.Context, groupID string, membershipType BungieMembershipType, membershipID string, tokens *client.Tokens) (*Response[int], error) {
	return groupUnbanMember.call(ctx, g.c, tokens, nil, nil, groupID, membershipType, membershipID)
}

func (g *GroupV2API) GetBannedMembersOfGroup(ctx context.Context, groupID string, currentPage int, tokens *client.Tokens) (*Response[SearchResultOf[GroupBan]], error) {
	return groupGetBannedMembersOfGroup.call(ctx, g.c, tokens, page(currentPage), nil, groupID)
}

func (g *GroupV2API) AbdicateFoundership(ctx context.Context, groupID string, membershipType BungieMembershipType, founderIDNew string, tokens *client.Tokens) (*Response[bool], error) {
	return groupAbdicateFoundership.call(ctx, g.c, tokens, nil, nil, groupID, membershipType, founderIDNew)
}

func (g *GroupV2API) GetPendingMemberships(ctx context.Context, groupID string, currentPage int, tokens *client.Tokens) (*Response[SearchResultOf[GroupMemberApplication]], error) {
	return groupGetPendingMemberships.call(ctx, g.c, tokens, page(currentPage), nil, groupID)
}

func (g *GroupV2API) GetInvitedIndividuals(ctx context.Context, groupID string, currentPage int, tokens *client.Tokens) (*Response[SearchResultOf[GroupMemberApplication]], error) {
	return groupGetInvitedIndividuals.call(ctx, g.c, tokens, page(currentPage), nil, groupID)
}

func (g *GroupV2API) ApproveAllPending(ctx context.Context, groupID string, req GroupApplicationRequest, tokens *client.Tokens) (*Response[[]EntityActionResult], error) {
	return groupApproveAllPending.call(ctx, g.c, tokens, nil, req, groupID)
}

func (g *GroupV2API) DenyAllPending(ctx context.Context, groupID string, req GroupApplicationRequest, tokens *client.Tokens) (*Response[[]EntityActionResult], error) {
	return groupDenyAllPending.call(ctx, g.c, tokens, nil, req, groupID)
}

func (g *GroupV2API) ApprovePendingForList(ctx context.Context, groupID string, req GroupApplicationListRequest, tokens *client.Tokens) (*Response[[]EntityActionResult], error) {
	return groupApprovePendingForList.call(ctx, g.c, tokens, nil, req, groupID)
}

func (g *GroupV2API) ApprovePending(ctx context.Context, groupID string, membershipType BungieMembershipType, membershipID string, req GroupApplicationRequest, tokens *client.Tokens) (*Response[bool], error) {
	return groupApprovePending.call(ctx, g.c, tokens, nil, req, groupID, membershipType, membershipID)
}

func (g *GroupV2API) DenyPendingForList(ctx context.Context, groupID string, req GroupApplicationListRequest, tokens *client.Tokens) (*Response[[]EntityActionResult], error) {
	return groupDenyPendingForList.call(ctx, g.c, tokens, nil, req, groupID)
}

// GetGroupsForMember lists the groups a membership belongs to, e.g. to find a
// player's clan.
func (g *GroupV2API) GetGroupsForMember(ctx context.Context, membershipType BungieMembershipType, membershipID string, filter GroupsForMemberFilter, groupType GroupType) (*Response[GetGroupsForMemberResponse], error) {
	return groupGetGroupsForMember.call(ctx, g.c, nil, nil, nil, membershipType, membershipID, filter, groupType)
}

func (g *GroupV2API) RecoverGroupForFounder(ctx context.Context, membershipType BungieMembershipType, membershipID string, groupType GroupType) (*Response[json.RawMessage], error) {
	return groupRecoverGroupForFounder.call(ctx, g.c, nil, nil, nil, membershipType, membershipID, groupType)
}

func (g *GroupV2API) GetPotentialGroupsForMember(ctx context.Context, membershipType BungieMembershipType, membershipID string, filter GroupsForMemberFilter, groupType GroupType) (*Response[json.RawMessage], error) {
	return groupGetPotentialGroupsForMember.call(ctx, g.c, nil, nil, nil, membershipType, membershipID, filter, groupType)
}

func (g *GroupV2API) IndividualGroupInvite(ctx context.Context, groupID string, membershipType BungieMembershipType, membershipID string, req GroupApplicationRequest, tokens *client.Tokens) (*Response[GroupApplicationResponse], error) {
	return groupIndividualGroupInvite.call(ctx, g.c, tokens, nil, req, groupID, membershipType, membershipID)
}

func (g *GroupV2API) IndividualGroupInviteCancel(ctx context.Context, groupID string, membershipType BungieMembershipType, membershipID string, tokens *client.Tokens) (*Response[GroupApplicationResponse], error) {
	return groupIndividualGroupInviteCancel.call(ctx, g.c, tokens, nil, nil, groupID, membershipType, membershipID)
}
