package bungie

import (
	"context"
	"encoding/json"

	"github.com/mholzen/bungienet/pkg/client"
)

type PostResponse struct {
	LastReplyTimestamp  string          `json:"lastReplyTimestamp"`
	IsPinned            bool            `json:"IsPinned"`
	URLMediaType        int             `json:"urlMediaType"`
	Thumbnail           string          `json:"thumbnail,omitempty"`
	Popularity          int             `json:"popularity"`
	IsActive            bool            `json:"isActive"`
	IsAnnouncement      bool            `json:"isAnnouncement"`
	UserRating          int             `json:"userRating"`
	UserHasRated        bool            `json:"userHasRated"`
	UserHasMutedPost    bool            `json:"userHasMutedPost"`
	LatestReplyPostID   string          `json:"latestReplyPostId"`
	LatestReplyAuthorID string          `json:"latestReplyAuthorId"`
	IgnoreStatus        json.RawMessage `json:"ignoreStatus,omitempty"`
	Locale              string          `json:"locale"`
}

// PostSearchResponse is a page of forum posts with the entities they refer to.
type PostSearchResponse struct {
	RelatedPosts                 []PostResponse           `json:"relatedPosts"`
	Authors                      []GeneralUser            `json:"authors"`
	Groups                       json.RawMessage          `json:"groups,omitempty"`
	SearchedTags                 json.RawMessage          `json:"searchedTags,omitempty"`
	Polls                        json.RawMessage          `json:"polls,omitempty"`
	RecruitmentDetails           []ForumRecruitmentDetail `json:"recruitmentDetails,omitempty"`
	AvailablePages               *int                     `json:"availablePages,omitempty"`
	Results                      []PostResponse           `json:"results"`
	TotalResults                 int                      `json:"totalResults"`
	HasMore                      bool                     `json:"hasMore"`
	Query                        PagedQuery               `json:"query"`
	ReplacementContinuationToken string                   `json:"replacementContinuationToken,omitempty"`
	UseTotalResults              bool                     `json:"useTotalResults"`
}

type ForumRecruitmentDetail struct {
	TopicID              string        `json:"topicId"`
	MicrophoneRequired   bool          `json:"microphoneRequired"`
	Intensity            int           `json:"intensity"`
	Tone                 int           `json:"tone"`
	Approved             bool          `json:"approved"`
	ConversationID       string        `json:"conversationId,omitempty"`
	PlayerSlotsTotal     int           `json:"playerSlotsTotal"`
	PlayerSlotsRemaining int           `json:"playerSlotsRemaining"`
	Fireteam             []GeneralUser `json:"Fireteam"`
	KickedPlayerIDs      []string      `json:"kickedPlayerIds"`
}

type TagResponse struct {
	TagText      string          `json:"tagText"`
	IgnoreStatus json.RawMessage `json:"ignoreStatus,omitempty"`
}

// TopicsQuery holds the optional filters of the topic listings.
type TopicsQuery struct {
	Locales   []string
	TagString string
}

func (q TopicsQuery) query() client.Query {
	return client.Query{
		{Key: "locales", Value: q.Locales},
		{Key: "tagstring", Value: optional(q.TagString)},
	}
}

// ThreadQuery pages through a thread. Path segments are all required.
type ThreadQuery struct {
	Page           int
	PageSize       int
	ReplySize      int
	GetParentPost  bool
	RootThreadMode bool
	SortMode       ForumPostSortEnum
	ShowBanned     string
}

func showBanned(s string) client.Query {
	return client.Query{{Key: "showbanned", Value: optional(s)}}
}

var (
	forumGetTopicsPaged                   = get[PostSearchResponse]("Forum", "GetTopicsPaged", "/Forum/GetTopicsPaged/{page}/{pageSize}/{group}/{sort}/{quickDate}/{categoryFilter}/", AuthOptional)
	forumGetCoreTopicsPaged               = get[PostSearchResponse]("Forum", "GetCoreTopicsPaged", "/Forum/GetCoreTopicsPaged/{page}/{sort}/{quickDate}/{categoryFilter}/", AuthOptional)
	forumGetPostsThreadedPaged            = get[PostSearchResponse]("Forum", "GetPostsThreadedPaged", "/Forum/GetPostsThreadedPaged/{parentPostId}/{page}/{pageSize}/{replySize}/{getParentPost}/{rootThreadMode}/{sortMode}/", AuthOptional)
	forumGetPostsThreadedPagedFromChild   = get[PostSearchResponse]("Forum", "GetPostsThreadedPagedFromChild", "/Forum/GetPostsThreadedPagedFromChild/{childPostId}/{page}/{pageSize}/{replySize}/{rootThreadMode}/{sortMode}/", AuthOptional)
	forumGetPostAndParent                 = get[PostSearchResponse]("Forum", "GetPostAndParent", "/Forum/GetPostAndParent/{childPostId}/", AuthOptional)
	forumGetPostAndParentAwaitingApproval = get[PostSearchResponse]("Forum", "GetPostAndParentAwaitingApproval", "/Forum/GetPostAndParentAwaitingApproval/{childPostId}/", AuthOptional)
	forumGetTopicForContent               = get[string]("Forum", "GetTopicForContent", "/Forum/GetTopicForContent/{contentId}/", AuthNone)
	forumGetForumTagSuggestions           = get[[]TagResponse]("Forum", "GetForumTagSuggestions", "/Forum/GetForumTagSuggestions/", AuthNone)
	forumGetPoll                          = get[PostSearchResponse]("Forum", "GetPoll", "/Forum/Poll/{topicId}/", AuthOptional)
	forumGetRecruitmentThreadSummaries    = post[[]ForumRecruitmentDetail]("Forum", "GetRecruitmentThreadSummaries", "/Forum/Recruit/Summaries/", AuthNone)
)

// ForumAPI wraps the /Forum endpoints. Tokens are optional everywhere; they
// only change ignore and rating state in the results.
type ForumAPI struct {
	c *client.Client
}

func (f *ForumAPI) GetTopicsPaged(ctx context.Context, page, pageSize int, group string, sort ForumTopicsSortEnum, quickDate ForumTopicsQuickDateEnum, categoryFilter ForumTopicsCategoryFiltersEnum, q TopicsQuery, tokens *client.Tokens) (*Response[PostSearchResponse], error) {
	return forumGetTopicsPaged.call(ctx, f.c, tokens, q.query(), nil, page, pageSize, group, sort, quickDate, categoryFilter)
}

func (f *ForumAPI) GetCoreTopicsPaged(ctx context.Context, page int, sort ForumTopicsSortEnum, quickDate ForumTopicsQuickDateEnum, categoryFilter ForumTopicsCategoryFiltersEnum, locales []string, tokens *client.Tokens) (*Response[PostSearchResponse], error) {
	return forumGetCoreTopicsPaged.call(ctx, f.c, tokens, client.Query{{Key: "locales", Value: locales}}, nil, page, sort, quickDate, categoryFilter)
}

func (f *ForumAPI) GetPostsThreadedPaged(ctx context.Context, parentPostID string, t ThreadQuery, tokens *client.Tokens) (*Response[PostSearchResponse], error) {
	return forumGetPostsThreadedPaged.call(ctx, f.c, tokens, showBanned(t.ShowBanned), nil,
		parentPostID, t.Page, t.PageSize, t.ReplySize, t.GetParentPost, t.RootThreadMode, t.SortMode)
}

// GetPostsThreadedPagedFromChild ignores t.GetParentPost.
func (f *ForumAPI) GetPostsThreadedPagedFromChild(ctx context.Context, childPostID string, t ThreadQuery, tokens *client.Tokens) (*Response[PostSearchResponse], error) {
	return forumGetPostsThreadedPagedFromChild.call(ctx, f.c, tokens, showBanned(t.ShowBanned), nil,
		childPostID, t.Page, t.PageSize, t.ReplySize, t.RootThreadMode, t.SortMode)
}

func (f *ForumAPI) GetPostAndParent(ctx context.Context, childPostID, banned string, tokens *client.Tokens) (*Response[PostSearchResponse], error) {
	return forumGetPostAndParent.call(ctx, f.c, tokens, showBanned(banned), nil, childPostID)
}

func (f *ForumAPI) GetPostAndParentAwaitingApproval(ctx context.Context, childPostID, banned string, tokens *client.Tokens) (*Response[PostSearchResponse], error) {
	return forumGetPostAndParentAwaitingApproval.call(ctx, f.c, tokens, showBanned(banned), nil, childPostID)
}

// GetTopicForContent returns the topic id of a content item's comment thread.
func (f *ForumAPI) GetTopicForContent(ctx context.Context, contentID string) (*Response[string], error) {
	return forumGetTopicForContent.call(ctx, f.c, nil, nil, nil, contentID)
}

func (f *ForumAPI) GetForumTagSuggestions(ctx context.Context, partialTag string) (*Response[[]TagResponse], error) {
	return forumGetForumTagSuggestions.call(ctx, f.c, nil, client.Query{{Key: "partialtag", Value: optional(partialTag)}}, nil)
}

func (f *ForumAPI) GetPoll(ctx context.Context, topicID string, tokens *client.Tokens) (*Response[PostSearchResponse], error) {
	return forumGetPoll.call(ctx, f.c, tokens, nil, nil, topicID)
}

func (f *ForumAPI) GetRecruitmentThreadSummaries(ctx context.Context, topicIDs []string) (*Response[[]ForumRecruitmentDetail], error) {
	return forumGetRecruitmentThreadSummaries.call(ctx, f.c, nil, nil, topicIDs)
}
