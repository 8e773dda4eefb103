package bungie

import (
	"context"

	"github.com/mholzen/bungienet/pkg/client"
)

type APIUsage struct {
	APICalls          []Series `json:"apiCalls"`
	ThrottledRequests []Series `json:"throttledRequests"`
}

type Series struct {
	Datapoints []Datapoint `json:"datapoints"`
	Target     string      `json:"target"`
}

type Datapoint struct {
	Time  string   `json:"time"`
	Count *float64 `json:"count,omitempty"`
}

type Application struct {
	ApplicationID             int                    `json:"applicationId"`
	Name                      string                 `json:"name"`
	RedirectURL               string                 `json:"redirectUrl"`
	Link                      string                 `json:"link"`
	Scope                     string                 `json:"scope"`
	Origin                    string                 `json:"origin"`
	Status                    int                    `json:"status"`
	CreationDate              string                 `json:"creationDate"`
	StatusChanged             string                 `json:"statusChanged"`
	FirstPublished            string                 `json:"firstPublished"`
	Team                      []ApplicationDeveloper `json:"team"`
	OverrideAuthorizeViewName string                 `json:"overrideAuthorizeViewName,omitempty"`
}

type ApplicationDeveloper struct {
	Role           int          `json:"role"`
	APIEulaVersion int          `json:"apiEulaVersion"`
	User           UserInfoCard `json:"user"`
}

// APIUsageQuery bounds GetApplicationAPIUsage. Empty values use the
// platform defaults of the last 24 hours.
type APIUsageQuery struct {
	Start string
	End   string
}

func (q APIUsageQuery) query() client.Query {
	return client.Query{
		{Key: "start", Value: optional(q.Start)},
		{Key: "end", Value: optional(q.End)},
	}
}

var (
	appGetApplicationAPIUsage = get[APIUsage]("App", "GetApplicationApiUsage", "/App/ApiUsage/{applicationId}/", AuthRequired)
	appGetBungieApplications  = get[[]Application]("App", "GetBungieApplications", "/App/FirstParty/", AuthNone)
)

// AppAPI wraps the /App endpoints.
type AppAPI struct {
	c *client.Client
}

// GetApplicationAPIUsage returns usage for an application the token's owner
// administers.
func (a *AppAPI) GetApplicationAPIUsage(ctx context.Context, applicationID int, q APIUsageQuery, tokens *client.Tokens) (*Response[APIUsage], error) {
	return appGetApplicationAPIUsage.call(ctx, a.c, tokens, q.query(), nil, applicationID)
}

func (a *AppAPI) GetBungieApplications(ctx context.Context) (*Response[[]Application], error) {
	return appGetBungieApplications.call(ctx, a.c, nil, nil, nil)
}
