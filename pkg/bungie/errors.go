package bungie

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mholzen/bungienet/pkg/client"
)

var (
	ErrMissingAPIKey            = errors.New("bungie: API key is required")
	ErrMissingClientCredentials = errors.New("bungie: client id and client secret are required for OAuth token requests")
	ErrMissingGrant             = errors.New("bungie: authorization code or refresh token is required")
	ErrUnknownEndpoint          = errors.New("bungie: unknown endpoint")
)

// EnvelopeError reports a non-success platform error code carried in a
// response envelope.
type EnvelopeError struct {
	ErrorCode       PlatformErrorCode
	ErrorStatus     string
	Message         string
	ThrottleSeconds int
}

func (e *EnvelopeError) Error() string {
	return fmt.Sprintf("bungie %s (%d): %s", e.ErrorStatus, e.ErrorCode, e.Message)
}

// PlatformError extracts the response envelope from a transport error when the
// platform answered a non-2xx status with one.
func PlatformError(err error) (*Response[json.RawMessage], bool) {
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) {
		return nil, false
	}
	var env Response[json.RawMessage]
	if jsonErr := json.Unmarshal([]byte(apiErr.Body), &env); jsonErr != nil || env.ErrorStatus == "" {
		return nil, false
	}
	return &env, true
}
