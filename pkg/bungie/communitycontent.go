package bungie

import (
	"context"
	"encoding/json"

	"github.com/mholzen/bungienet/pkg/client"
)

var communityGetCommunityContent = get[json.RawMessage]("CommunityContent", "GetCommunityContent", "/CommunityContent/Get/{sort}/{mediaFilter}/{page}/", AuthNone)

// CommunityContentAPI wraps the /CommunityContent endpoints.
type CommunityContentAPI struct {
	c *client.Client
}

// GetCommunityContent returns community submitted screenshots and videos.
func (cc *CommunityContentAPI) GetCommunityContent(ctx context.Context, sort, mediaFilter, page int) (*Response[json.RawMessage], error) {
	return communityGetCommunityContent.call(ctx, cc.c, nil, nil, nil, sort, mediaFilter, page)
}
