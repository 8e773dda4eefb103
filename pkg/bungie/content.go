package bungie

import (
	"context"
	"encoding/json"

	"github.com/mholzen/bungienet/pkg/client"
)

// ContentItemPublicContract is a news article, help page or other CMS item.
// Properties holds the type specific fields as sent.
type ContentItemPublicContract struct {
	ContentID                   string                     `json:"contentId"`
	CType                       string                     `json:"cType"`
	CmsPath                     string                     `json:"cmsPath"`
	CreationDate                string                     `json:"creationDate"`
	ModifyDate                  string                     `json:"modifyDate"`
	AllowComments               bool                       `json:"allowComments"`
	HasAgeGate                  bool                       `json:"hasAgeGate"`
	MinimumAge                  int                        `json:"minimumAge"`
	RatingImagePath             string                     `json:"ratingImagePath,omitempty"`
	Author                      *GeneralUser               `json:"author,omitempty"`
	AutoEnglishPropertyFallback bool                       `json:"autoEnglishPropertyFallback"`
	Properties                  map[string]json.RawMessage `json:"properties,omitempty"`
	Representations             json.RawMessage            `json:"representations,omitempty"`
	Tags                        []string                   `json:"tags,omitempty"`
	CommentSummary              json.RawMessage            `json:"commentSummary,omitempty"`
}

type NewsArticleRssResponse struct {
	NewsArticles           []NewsArticleRssItem `json:"NewsArticles"`
	CurrentPaginationToken int                  `json:"CurrentPaginationToken"`
	NextPaginationToken    *int                 `json:"NextPaginationToken,omitempty"`
	ResultCountThisPage    int                  `json:"ResultCountThisPage"`
	CategoryFilter         string               `json:"CategoryFilter,omitempty"`
}

type NewsArticleRssItem struct {
	Title                   string `json:"Title"`
	Link                    string `json:"Link"`
	PubDate                 string `json:"PubDate"`
	UniqueIdentifier        string `json:"UniqueIdentifier"`
	Description             string `json:"Description"`
	HTMLContent             string `json:"HtmlContent,omitempty"`
	ImagePath               string `json:"ImagePath,omitempty"`
	OptionalMobileImagePath string `json:"OptionalMobileImagePath,omitempty"`
}

// ContentSearchQuery holds the optional filters of SearchContentWithText.
type ContentSearchQuery struct {
	ContentTypes []string
	CurrentPage  int
	Head         bool
	SearchText   string
	Source       string
	Tag          string
}

func (q ContentSearchQuery) query() client.Query {
	return client.Query{
		{Key: "ctype", Value: q.ContentTypes},
		{Key: "currentpage", Value: optional(q.CurrentPage)},
		{Key: "head", Value: optional(q.Head)},
		{Key: "searchtext", Value: optional(q.SearchText)},
		{Key: "source", Value: optional(q.Source)},
		{Key: "tag", Value: optional(q.Tag)},
	}
}

var (
	contentGetContentType            = get[json.RawMessage]("Content", "GetContentType", "/Content/GetContentType/{type}/", AuthNone)
	contentGetContentByID            = get[ContentItemPublicContract]("Content", "GetContentById", "/Content/GetContentById/{id}/{locale}/", AuthNone)
	contentGetContentByTagAndType    = get[ContentItemPublicContract]("Content", "GetContentByTagAndType", "/Content/GetContentByTagAndType/{tag}/{type}/{locale}/", AuthNone)
	contentSearchContentWithText     = get[SearchResultOf[ContentItemPublicContract]]("Content", "SearchContentWithText", "/Content/Search/{locale}/", AuthNone)
	contentSearchContentByTagAndType = get[SearchResultOf[ContentItemPublicContract]]("Content", "SearchContentByTagAndType", "/Content/SearchContentByTagAndType/{tag}/{type}/{locale}/", AuthNone)
	contentSearchHelpArticles        = get[json.RawMessage]("Content", "SearchHelpArticles", "/Content/SearchHelpArticles/{searchtext}/{size}/", AuthNone)
	contentRssNewsArticles           = get[NewsArticleRssResponse]("Content", "RssNewsArticles", "/Content/Rss/NewsArticles/{pageToken}/", AuthNone)
)

// ContentAPI wraps the /Content endpoints.
type ContentAPI struct {
	c *client.Client
}

// GetContentType describes a content type and its properties.
func (a *ContentAPI) GetContentType(ctx context.Context, contentType string) (*Response[json.RawMessage], error) {
	return contentGetContentType.call(ctx, a.c, nil, nil, nil, contentType)
}

// GetContentByID returns one item. With head set, only the published head
// revision is returned.
func (a *ContentAPI) GetContentByID(ctx context.Context, id, locale string, head bool) (*Response[ContentItemPublicContract], error) {
	return contentGetContentByID.call(ctx, a.c, nil, client.Query{{Key: "head", Value: optional(head)}}, nil, id, locale)
}

func (a *ContentAPI) GetContentByTagAndType(ctx context.Context, tag, contentType, locale string, head bool) (*Response[ContentItemPublicContract], error) {
	return contentGetContentByTagAndType.call(ctx, a.c, nil, client.Query{{Key: "head", Value: optional(head)}}, nil, tag, contentType, locale)
}

func (a *ContentAPI) SearchContentWithText(ctx context.Context, locale string, q ContentSearchQuery) (*Response[SearchResultOf[ContentItemPublicContract]], error) {
	return contentSearchContentWithText.call(ctx, a.c, nil, q.query(), nil, locale)
}

func (a *ContentAPI) SearchContentByTagAndType(ctx context.Context, tag, contentType, locale string, currentPage, itemsPerPage int, head bool) (*Response[SearchResultOf[ContentItemPublicContract]], error) {
	q := client.Query{
		{Key: "currentpage", Value: optional(currentPage)},
		{Key: "head", Value: optional(head)},
		{Key: "itemsperpage", Value: optional(itemsPerPage)},
	}
	return contentSearchContentByTagAndType.call(ctx, a.c, nil, q, nil, tag, contentType, locale)
}

func (a *ContentAPI) SearchHelpArticles(ctx context.Context, searchText, size string) (*Response[json.RawMessage], error) {
	return contentSearchHelpArticles.call(ctx, a.c, nil, nil, nil, searchText, size)
}

// RssNewsArticles pages through news. Pass the previous NextPaginationToken as
// pageToken, starting from "0".
func (a *ContentAPI) RssNewsArticles(ctx context.Context, pageToken, categoryFilter string, includeBody bool) (*Response[NewsArticleRssResponse], error) {
	q := client.Query{
		{Key: "categoryfilter", Value: optional(categoryFilter)},
		{Key: "includebody", Value: optional(includeBody)},
	}
	return contentRssNewsArticles.call(ctx, a.c, nil, q, nil, pageToken)
}
