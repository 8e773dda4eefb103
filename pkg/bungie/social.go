package bungie

import (
	"context"

	"github.com/mholzen/bungienet/pkg/client"
)

type BungieFriend struct {
	LastSeenAsMembershipID         string               `json:"lastSeenAsMembershipId"`
	LastSeenAsBungieMembershipType BungieMembershipType `json:"lastSeenAsBungieMembershipType"`
	BungieGlobalDisplayName        string               `json:"bungieGlobalDisplayName"`
	BungieGlobalDisplayNameCode    int                  `json:"bungieGlobalDisplayNameCode,omitempty"`
	OnlineStatus                   int                  `json:"onlineStatus"`
	OnlineTitle                    int                  `json:"onlineTitle"`
	Relationship                   int                  `json:"relationship"`
	BungieNetUser                  *GeneralUser         `json:"bungieNetUser,omitempty"`
}

type BungieFriendListResponse struct {
	Friends []BungieFriend `json:"friends"`
}

type BungieFriendRequestListResponse struct {
	IncomingRequests []BungieFriend `json:"incomingRequests"`
	OutgoingRequests []BungieFriend `json:"outgoingRequests"`
}

type PlatformFriendResponse struct {
	ItemsPerPage    int              `json:"itemsPerPage"`
	CurrentPage     int              `json:"currentPage"`
	HasMore         bool             `json:"hasMore"`
	PlatformFriends []PlatformFriend `json:"platformFriends"`
}

type PlatformFriend struct {
	PlatformDisplayName         string             `json:"platformDisplayName"`
	FriendPlatform              PlatformFriendType `json:"friendPlatform"`
	DestinyMembershipID         string             `json:"destinyMembershipId,omitempty"`
	DestinyMembershipType       *int               `json:"destinyMembershipType,omitempty"`
	BungieNetMembershipID       string             `json:"bungieNetMembershipId,omitempty"`
	BungieGlobalDisplayName     string             `json:"bungieGlobalDisplayName,omitempty"`
	BungieGlobalDisplayNameCode *int               `json:"bungieGlobalDisplayNameCode,omitempty"`
}

var (
	socialGetFriendList         = get[BungieFriendListResponse]("Social", "GetFriendList", "/Social/Friends/", AuthRequired)
	socialGetFriendRequestList  = get[BungieFriendRequestListResponse]("Social", "GetFriendRequestList", "/Social/Friends/Requests/", AuthRequired)
	socialIssueFriendRequest    = post[bool]("Social", "IssueFriendRequest", "/Social/Friends/Add/{membershipId}/", AuthRequired)
	socialAcceptFriendRequest   = post[bool]("Social", "AcceptFriendRequest", "/Social/Friends/Requests/Accept/{membershipId}/", AuthRequired)
	socialDeclineFriendRequest  = post[bool]("Social", "DeclineFriendRequest", "/Social/Friends/Requests/Decline/{membershipId}/", AuthRequired)
	socialRemoveFriend          = post[bool]("Social", "RemoveFriend", "/Social/Friends/Remove/{membershipId}/", AuthRequired)
	socialRemoveFriendRequest   = post[bool]("Social", "RemoveFriendRequest", "/Social/Friends/Requests/Remove/{membershipId}/", AuthRequired)
	socialGetPlatformFriendList = get[PlatformFriendResponse]("Social", "GetPlatformFriendList", "/Social/PlatformFriends/{friendPlatform}/{page}/", AuthRequired)
)

// SocialAPI wraps the /Social endpoints for the signed in user's friends.
type SocialAPI struct {
	c *client.Client
}

func (s *SocialAPI) GetFriendList(ctx context.Context, tokens *client.Tokens) (*Response[BungieFriendListResponse], error) {
	return socialGetFriendList.call(ctx, s.c, tokens, nil, nil)
}

func (s *SocialAPI) GetFriendRequestList(ctx context.Context, tokens *client.Tokens) (*Response[BungieFriendRequestListResponse], error) {
	return socialGetFriendRequestList.call(ctx, s.c, tokens, nil, nil)
}

func (s *SocialAPI) IssueFriendRequest(ctx context.Context, membershipID string, tokens *client.Tokens) (*Response[bool], error) {
	return socialIssueFriendRequest.call(ctx, s.c, tokens, nil, nil, membershipID)
}

func (s *SocialAPI) AcceptFriendRequest(ctx context.Context, membershipID string, tokens *client.Tokens) (*Response[bool], error) {
	return socialAcceptFriendRequest.call(ctx, s.c, tokens, nil, nil, membershipID)
}

func (s *SocialAPI) DeclineFriendRequest(ctx context.Context, membershipID string, tokens *client.Tokens) (*Response[bool], error) {
	return socialDeclineFriendRequest.call(ctx, s.c, tokens, nil, nil, membershipID)
}

func (s *SocialAPI) RemoveFriend(ctx context.Context, membershipID string, tokens *client.Tokens) (*Response[bool], error) {
	return socialRemoveFriend.call(ctx, s.c, tokens, nil, nil, membershipID)
}

func (s *SocialAPI) RemoveFriendRequest(ctx context.Context, membershipID string, tokens *client.Tokens) (*Response[bool], error) {
	return socialRemoveFriendRequest.call(ctx, s.c, tokens, nil, nil, membershipID)
}

func (s *SocialAPI) GetPlatformFriendList(ctx context.Context, friendPlatform PlatformFriendType, page string, tokens *client.Tokens) (*Response[PlatformFriendResponse], error) {
	return socialGetPlatformFriendList.call(ctx, s.c, tokens, nil, nil, friendPlatform, page)
}
