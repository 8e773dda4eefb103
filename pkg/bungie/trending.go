package bungie

import (
	"context"
	"encoding/json"

	"github.com/mholzen/bungienet/pkg/client"
)

type TrendingCategories struct {
	Categories []TrendingCategory `json:"categories"`
}

type TrendingCategory struct {
	CategoryName string                          `json:"categoryName"`
	Entries      SearchResultOf[json.RawMessage] `json:"entries"`
	CategoryID   string                          `json:"categoryId"`
}

var (
	trendingGetTrendingCategories  = get[TrendingCategories]("Trending", "GetTrendingCategories", "/Trending/Categories/", AuthNone)
	trendingGetTrendingCategory    = get[SearchResultOf[json.RawMessage]]("Trending", "GetTrendingCategory", "/Trending/Categories/{categoryId}/{pageNumber}/", AuthNone)
	trendingGetTrendingEntryDetail = get[json.RawMessage]("Trending", "GetTrendingEntryDetail", "/Trending/Details/{trendingEntryType}/{identifier}/", AuthNone)
)

// TrendingAPI wraps the /Trending endpoints.
type TrendingAPI struct {
	c *client.Client
}

func (t *TrendingAPI) GetTrendingCategories(ctx context.Context) (*Response[TrendingCategories], error) {
	return trendingGetTrendingCategories.call(ctx, t.c, nil, nil, nil)
}

func (t *TrendingAPI) GetTrendingCategory(ctx context.Context, categoryID string, pageNumber int) (*Response[SearchResultOf[json.RawMessage]], error) {
	return trendingGetTrendingCategory.call(ctx, t.c, nil, nil, nil, categoryID, pageNumber)
}

func (t *TrendingAPI) GetTrendingEntryDetail(ctx context.Context, trendingEntryType int, identifier string) (*Response[json.RawMessage], error) {
	return trendingGetTrendingEntryDetail.call(ctx, t.c, nil, nil, nil, trendingEntryType, identifier)
}
