package bungie

import (
	"context"
	"encoding/json"

	"github.com/mholzen/bungienet/pkg/client"
)

type PartnerOfferClaimRequest struct {
	PartnerOfferID        string `json:"PartnerOfferId"`
	BungieNetMembershipID string `json:"BungieNetMembershipId"`
	TransactionID         string `json:"TransactionId"`
}

type PartnerOfferSkuHistoryResponse struct {
	SkuIdentifier        string                        `json:"SkuIdentifier"`
	LocalizedName        string                        `json:"LocalizedName"`
	LocalizedDescription string                        `json:"LocalizedDescription"`
	ClaimDate            string                        `json:"ClaimDate"`
	AllOffersApplied     bool                          `json:"AllOffersApplied"`
	TransactionID        string                        `json:"TransactionId"`
	SkuOffers            []PartnerOfferHistoryResponse `json:"SkuOffers"`
}

type PartnerOfferHistoryResponse struct {
	PartnerOfferKey      string `json:"PartnerOfferKey"`
	MembershipID         string `json:"MembershipId,omitempty"`
	MembershipType       *int   `json:"MembershipType,omitempty"`
	LocalizedName        string `json:"LocalizedName"`
	LocalizedDescription string `json:"LocalizedDescription"`
	IsConsumable         bool   `json:"IsConsumable"`
	QuantityApplied      int    `json:"QuantityApplied"`
	ApplyDate            string `json:"ApplyDate,omitempty"`
}

// BungieRewardDisplay is one reward keyed by its reward id in the rewards maps.
type BungieRewardDisplay struct {
	UserRewardAvailabilityModel json.RawMessage `json:"UserRewardAvailabilityModel,omitempty"`
	ObjectiveDisplayProperties  json.RawMessage `json:"ObjectiveDisplayProperties,omitempty"`
	RewardDisplayProperties     json.RawMessage `json:"RewardDisplayProperties,omitempty"`
}

var (
	tokensForceDropsRepair                      = post[bool]("Tokens", "ForceDropsRepair", "/Tokens/Partner/ForceDropsRepair/", AuthRequired)
	tokensClaimPartnerOffer                     = post[bool]("Tokens", "ClaimPartnerOffer", "/Tokens/Partner/ClaimOffer/", AuthRequired)
	tokensApplyMissingPartnerOffersWithoutClaim = post[bool]("Tokens", "ApplyMissingPartnerOffersWithoutClaim", "/Tokens/Partner/ApplyMissingOffers/{partnerApplicationId}/{targetBnetMembershipId}/", AuthRequired)
	tokensGetPartnerOfferSkuHistory             = get[[]PartnerOfferSkuHistoryResponse]("Tokens", "GetPartnerOfferSkuHistory", "/Tokens/Partner/History/{partnerApplicationId}/{targetBnetMembershipId}/", AuthRequired)
	tokensGetPartnerRewardHistory               = get[json.RawMessage]("Tokens", "GetPartnerRewardHistory", "/Tokens/Partner/History/{targetBnetMembershipId}/Application/{partnerApplicationId}/", AuthRequired)
	tokensGetBungieRewardsForUser               = get[map[string]BungieRewardDisplay]("Tokens", "GetBungieRewardsForUser", "/Tokens/Rewards/GetRewardsForUser/{membershipId}/", AuthRequired)
	tokensGetBungieRewardsForPlatformUser       = get[map[string]BungieRewardDisplay]("Tokens", "GetBungieRewardsForPlatformUser", "/Tokens/Rewards/GetRewardsForPlatformUser/{membershipId}/{membershipType}/", AuthRequired)
	tokensGetBungieRewardsList                  = get[map[string]json.RawMessage]("Tokens", "GetBungieRewardsList", "/Tokens/Rewards/BungieRewards/", AuthNone)
)

// TokensAPI wraps the /Tokens endpoints: partner offers and Bungie Rewards.
type TokensAPI struct {
	c *client.Client
}

func (t *TokensAPI) ForceDropsRepair(ctx context.Context, tokens *client.Tokens) (*Response[bool], error) {
	return tokensForceDropsRepair.call(ctx, t.c, tokens, nil, nil)
}

func (t *TokensAPI) ClaimPartnerOffer(ctx context.Context, req PartnerOfferClaimRequest, tokens *client.Tokens) (*Response[bool], error) {
	return tokensClaimPartnerOffer.call(ctx, t.c, tokens, nil, req)
}

func (t *TokensAPI) ApplyMissingPartnerOffersWithoutClaim(ctx context.Context, partnerApplicationID int, targetBnetMembershipID string, tokens *client.Tokens) (*Response[bool], error) {
	return tokensApplyMissingPartnerOffersWithoutClaim.call(ctx, t.c, tokens, nil, nil, partnerApplicationID, targetBnetMembershipID)
}

func (t *TokensAPI) GetPartnerOfferSkuHistory(ctx context.Context, partnerApplicationID int, targetBnetMembershipID string, tokens *client.Tokens) (*Response[[]PartnerOfferSkuHistoryResponse], error) {
	return tokensGetPartnerOfferSkuHistory.call(ctx, t.c, tokens, nil, nil, partnerApplicationID, targetBnetMembershipID)
}

func (t *TokensAPI) GetPartnerRewardHistory(ctx context.Context, targetBnetMembershipID string, partnerApplicationID int, tokens *client.Tokens) (*Response[json.RawMessage], error) {
	return tokensGetPartnerRewardHistory.call(ctx, t.c, tokens, nil, nil, targetBnetMembershipID, partnerApplicationID)
}

func (t *TokensAPI) GetBungieRewardsForUser(ctx context.Context, membershipID string, tokens *client.Tokens) (*Response[map[string]BungieRewardDisplay], error) {
	return tokensGetBungieRewardsForUser.call(ctx, t.c, tokens, nil, nil, membershipID)
}

func (t *TokensAPI) GetBungieRewardsForPlatformUser(ctx context.Context, membershipID string, membershipType BungieMembershipType, tokens *client.Tokens) (*Response[map[string]BungieRewardDisplay], error) {
	return tokensGetBungieRewardsForPlatformUser.call(ctx, t.c, tokens, nil, nil, membershipID, membershipType)
}

func (t *TokensAPI) GetBungieRewardsList(ctx context.Context) (*Response[map[string]json.RawMessage], error) {
	return tokensGetBungieRewardsList.call(ctx, t.c, nil, nil, nil)
}
