package bungie

import (
	"context"
	"encoding/json"

	"github.com/mholzen/bungienet/pkg/client"
)

type CoreSystem struct {
	Enabled    bool              `json:"enabled"`
	Parameters map[string]string `json:"parameters,omitempty"`
}

type GlobalAlert struct {
	AlertKey       string          `json:"AlertKey"`
	AlertHTML      string          `json:"AlertHtml"`
	AlertTimestamp string          `json:"AlertTimestamp"`
	AlertLink      string          `json:"AlertLink"`
	AlertLevel     int             `json:"AlertLevel"`
	AlertType      int             `json:"AlertType"`
	StreamInfo     json.RawMessage `json:"StreamInfo,omitempty"`
}

// CoreSettingsConfiguration is the subset of /Settings most clients read.
type CoreSettingsConfiguration struct {
	Environment string                `json:"environment"`
	Systems     map[string]CoreSystem `json:"systems"`
}

var (
	coreGetAvailableLocales    = get[map[string]string]("Core", "GetAvailableLocales", "/GetAvailableLocales/", AuthNone)
	coreGetCommonSettings      = get[CoreSettingsConfiguration]("Core", "GetCommonSettings", "/Settings/", AuthNone)
	coreGetUserSystemOverrides = get[map[string]CoreSystem]("Core", "GetUserSystemOverrides", "/UserSystemOverrides/", AuthNone)
	coreGetGlobalAlerts        = get[[]GlobalAlert]("Core", "GetGlobalAlerts", "/GlobalAlerts/", AuthNone)
)

// CoreAPI wraps the endpoints mounted at the API root.
type CoreAPI struct {
	c *client.Client
}

func (a *CoreAPI) GetAvailableLocales(ctx context.Context) (*Response[map[string]string], error) {
	return coreGetAvailableLocales.call(ctx, a.c, nil, nil, nil)
}

func (a *CoreAPI) GetCommonSettings(ctx context.Context) (*Response[CoreSettingsConfiguration], error) {
	return coreGetCommonSettings.call(ctx, a.c, nil, nil, nil)
}

func (a *CoreAPI) GetUserSystemOverrides(ctx context.Context) (*Response[map[string]CoreSystem], error) {
	return coreGetUserSystemOverrides.call(ctx, a.c, nil, nil, nil)
}

// GetGlobalAlerts returns current service alerts, including streaming
// alerts when includeStreaming is set.
func (a *CoreAPI) GetGlobalAlerts(ctx context.Context, includeStreaming bool) (*Response[[]GlobalAlert], error) {
	return coreGetGlobalAlerts.call(ctx, a.c, nil, client.Query{{Key: "includestreaming", Value: optional(includeStreaming)}}, nil)
}
