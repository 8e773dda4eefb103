package bungie

import (
	"context"

	"github.com/mholzen/bungienet/pkg/client"
)

// UserInfoCard is the public summary of one platform membership.
type UserInfoCard struct {
	SupplementalDisplayName     string                 `json:"supplementalDisplayName,omitempty"`
	IconPath                    string                 `json:"iconPath,omitempty"`
	CrossSaveOverride           BungieMembershipType   `json:"crossSaveOverride"`
	ApplicableMembershipTypes   []BungieMembershipType `json:"applicableMembershipTypes,omitempty"`
	IsPublic                    bool                   `json:"isPublic"`
	MembershipType              BungieMembershipType   `json:"membershipType"`
	MembershipID                string                 `json:"membershipId"`
	DisplayName                 string                 `json:"displayName"`
	BungieGlobalDisplayName     string                 `json:"bungieGlobalDisplayName,omitempty"`
	BungieGlobalDisplayNameCode int                    `json:"bungieGlobalDisplayNameCode,omitempty"`
}

// BungieName returns "name#code", or "" when the account has no global name.
func (u UserInfoCard) BungieName() string {
	if u.BungieGlobalDisplayName == "" {
		return ""
	}
	return formatBungieName(u.BungieGlobalDisplayName, u.BungieGlobalDisplayNameCode)
}

// GroupUserInfoCard adds the last seen name used by clan rosters.
type GroupUserInfoCard struct {
	UserInfoCard
	LastSeenDisplayName     string               `json:"LastSeenDisplayName,omitempty"`
	LastSeenDisplayNameType BungieMembershipType `json:"LastSeenDisplayNameType,omitempty"`
}

// GeneralUser is a Bungie.net account. Dates are ISO 8601 strings as sent.
type GeneralUser struct {
	MembershipID                      string `json:"membershipId"`
	UniqueName                        string `json:"uniqueName"`
	NormalizedName                    string `json:"normalizedName,omitempty"`
	DisplayName                       string `json:"displayName"`
	ProfilePicture                    int    `json:"profilePicture"`
	ProfileTheme                      int    `json:"profileTheme"`
	UserTitle                         int    `json:"userTitle"`
	SuccessMessageFlags               string `json:"successMessageFlags"`
	IsDeleted                         bool   `json:"isDeleted"`
	About                             string `json:"about"`
	FirstAccess                       string `json:"firstAccess,omitempty"`
	LastUpdate                        string `json:"lastUpdate,omitempty"`
	LegacyPortalUID                   string `json:"legacyPortalUID,omitempty"`
	PsnDisplayName                    string `json:"psnDisplayName,omitempty"`
	XboxDisplayName                   string `json:"xboxDisplayName,omitempty"`
	SteamDisplayName                  string `json:"steamDisplayName,omitempty"`
	StadiaDisplayName                 string `json:"stadiaDisplayName,omitempty"`
	TwitchDisplayName                 string `json:"twitchDisplayName,omitempty"`
	EgsDisplayName                    string `json:"egsDisplayName,omitempty"`
	ShowActivity                      *bool  `json:"showActivity,omitempty"`
	Locale                            string `json:"locale"`
	LocaleInheritDefault              bool   `json:"localeInheritDefault"`
	ShowGroupMessaging                bool   `json:"showGroupMessaging"`
	ProfilePicturePath                string `json:"profilePicturePath"`
	ProfileThemeName                  string `json:"profileThemeName"`
	UserTitleDisplay                  string `json:"userTitleDisplay"`
	StatusText                        string `json:"statusText"`
	StatusDate                        string `json:"statusDate,omitempty"`
	CachedBungieGlobalDisplayName     string `json:"cachedBungieGlobalDisplayName,omitempty"`
	CachedBungieGlobalDisplayNameCode int    `json:"cachedBungieGlobalDisplayNameCode,omitempty"`
}

// UserMembershipData lists the Destiny memberships linked to an account.
type UserMembershipData struct {
	DestinyMemberships  []GroupUserInfoCard `json:"destinyMemberships"`
	PrimaryMembershipID string              `json:"primaryMembershipId,omitempty"`
	BungieNetUser       GeneralUser         `json:"bungieNetUser"`
}

// Primary returns the cross save primary membership, or the first one when
// no primary is set.
func (m *UserMembershipData) Primary() (GroupUserInfoCard, bool) {
	for _, d := range m.DestinyMemberships {
		if m.PrimaryMembershipID != "" && d.MembershipID == m.PrimaryMembershipID {
			return d, true
		}
	}
	if len(m.DestinyMemberships) == 0 {
		return GroupUserInfoCard{}, false
	}
	return m.DestinyMemberships[0], true
}

type HardLinkedUserMembership struct {
	MembershipType                  BungieMembershipType `json:"membershipType"`
	MembershipID                    string               `json:"membershipId"`
	CrossSaveOverriddenType         BungieMembershipType `json:"CrossSaveOverriddenType"`
	CrossSaveOverriddenMembershipID string               `json:"CrossSaveOverriddenMembershipId,omitempty"`
}

type UserSearchResponse struct {
	SearchResults []UserSearchResponseDetail `json:"searchResults"`
	Page          int                        `json:"page"`
	HasMore       bool                       `json:"hasMore"`
}

type UserSearchResponseDetail struct {
	BungieGlobalDisplayName     string         `json:"bungieGlobalDisplayName"`
	BungieGlobalDisplayNameCode int            `json:"bungieGlobalDisplayNameCode,omitempty"`
	BungieNetMembershipID       string         `json:"bungieNetMembershipId,omitempty"`
	DestinyMemberships          []UserInfoCard `json:"destinyMemberships"`
}

type UserSearchPrefixRequest struct {
	DisplayNamePrefix string `json:"displayNamePrefix"`
}

type UserTheme struct {
	UserThemeID          int    `json:"userThemeId"`
	UserThemeName        string `json:"userThemeName"`
	UserThemeDescription string `json:"userThemeDescription"`
}

type CredentialTypeForAccount struct {
	CredentialType        BungieCredentialType `json:"credentialType"`
	CredentialDisplayName string               `json:"credentialDisplayName"`
	IsPublic              bool                 `json:"isPublic"`
	CredentialAsString    string               `json:"credentialAsString"`
}

var (
	userGetBungieNetUserByID                  = get[GeneralUser]("User", "GetBungieNetUserById", "/User/GetBungieNetUserById/{id}/", AuthNone)
	userGetSanitizedPlatformDisplayNames      = get[map[BungieCredentialType]string]("User", "GetSanitizedPlatformDisplayNames", "/User/GetSanitizedPlatformDisplayNames/{membershipId}/", AuthNone)
	userGetCredentialTypesForTargetAccount    = get[[]CredentialTypeForAccount]("User", "GetCredentialTypesForTargetAccount", "/User/GetCredentialTypesForTargetAccount/{membershipId}/", AuthNone)
	userGetAvailableThemes                    = get[[]UserTheme]("User", "GetAvailableThemes", "/User/GetAvailableThemes/", AuthNone)
	userGetMembershipDataByID                 = get[UserMembershipData]("User", "GetMembershipDataById", "/User/GetMembershipsById/{membershipId}/{membershipType}/", AuthNone)
	userGetMembershipDataForCurrentUser       = get[UserMembershipData]("User", "GetMembershipDataForCurrentUser", "/User/GetMembershipsForCurrentUser/", AuthRequired)
	userGetMembershipFromHardLinkedCredential = get[HardLinkedUserMembership]("User", "GetMembershipFromHardLinkedCredential", "/User/GetMembershipFromHardLinkedCredential/{crType}/{credential}/", AuthNone)
	userSearchByGlobalNamePrefix              = get[UserSearchResponse]("User", "SearchByGlobalNamePrefix", "/User/Search/Prefix/{displayNamePrefix}/{page}/", AuthNone)
	userSearchByGlobalNamePost                = post[UserSearchResponse]("User", "SearchByGlobalNamePost", "/User/Search/GlobalName/{page}/", AuthNone)
)

// UserAPI wraps the /User endpoints.
type UserAPI struct {
	c *client.Client
}

func (u *UserAPI) GetBungieNetUserByID(ctx context.Context, id string) (*Response[GeneralUser], error) {
	return userGetBungieNetUserByID.call(ctx, u.c, nil, nil, nil, id)
}

// GetSanitizedPlatformDisplayNames returns display names keyed by credential type.
func (u *UserAPI) GetSanitizedPlatformDisplayNames(ctx context.Context, membershipID string) (*Response[map[BungieCredentialType]string], error) {
	return userGetSanitizedPlatformDisplayNames.call(ctx, u.c, nil, nil, nil, membershipID)
}

func (u *UserAPI) GetCredentialTypesForTargetAccount(ctx context.Context, membershipID string) (*Response[[]CredentialTypeForAccount], error) {
	return userGetCredentialTypesForTargetAccount.call(ctx, u.c, nil, nil, nil, membershipID)
}

func (u *UserAPI) GetAvailableThemes(ctx context.Context) (*Response[[]UserTheme], error) {
	return userGetAvailableThemes.call(ctx, u.c, nil, nil, nil)
}

func (u *UserAPI) GetMembershipDataByID(ctx context.Context, membershipID string, membershipType BungieMembershipType) (*Response[UserMembershipData], error) {
	return userGetMembershipDataByID.call(ctx, u.c, nil, nil, nil, membershipID, membershipType)
}

// GetMembershipDataForCurrentUser returns the memberships of the token's owner.
func (u *UserAPI) GetMembershipDataForCurrentUser(ctx context.Context, tokens *client.Tokens) (*Response[UserMembershipData], error) {
	return userGetMembershipDataForCurrentUser.call(ctx, u.c, tokens, nil, nil)
}

func (u *UserAPI) GetMembershipFromHardLinkedCredential(ctx context.Context, crType BungieCredentialType, credential string) (*Response[HardLinkedUserMembership], error) {
	return userGetMembershipFromHardLinkedCredential.call(ctx, u.c, nil, nil, nil, crType, credential)
}

// SearchByGlobalNamePrefix is the deprecated GET form of SearchByGlobalNamePost.
func (u *UserAPI) SearchByGlobalNamePrefix(ctx context.Context, displayNamePrefix string, page int) (*Response[UserSearchResponse], error) {
	return userSearchByGlobalNamePrefix.call(ctx, u.c, nil, nil, nil, displayNamePrefix, page)
}

func (u *UserAPI) SearchByGlobalNamePost(ctx context.Context, page int, req UserSearchPrefixRequest) (*Response[UserSearchResponse], error) {
	return userSearchByGlobalNamePost.call(ctx, u.c, nil, nil, req, page)
}
