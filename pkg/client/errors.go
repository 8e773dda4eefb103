package client

import (
	"errors"
	"fmt"
)

var ErrUnsupportedMethod = errors.New("unsupported HTTP method")

// APIError is returned by HTTPFetcher for any non-2xx response.
type APIError struct {
	Status     int
	Body       string
	RetryAfter string
}

func (e *APIError) Error() string { return fmt.Sprintf("api %d: %s", e.Status, e.Body) }
