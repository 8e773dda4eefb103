package bungie

// Response is the envelope wrapping every platform response.
type Response[T any] struct {
	Response           T                 `json:"Response"`
	ErrorCode          PlatformErrorCode `json:"ErrorCode"`
	ThrottleSeconds    int               `json:"ThrottleSeconds"`
	ErrorStatus        string            `json:"ErrorStatus"`
	Message            string            `json:"Message"`
	MessageData        map[string]string `json:"MessageData"`
	DetailedErrorTrace string            `json:"DetailedErrorTrace,omitempty"`
}

// OK reports whether the platform returned a success code.
func (r *Response[T]) OK() bool {
	return r.ErrorCode == PlatformErrorCodeSuccess
}

// Err returns an *EnvelopeError for non-success codes, nil otherwise.
func (r *Response[T]) Err() error {
	if r.OK() {
		return nil
	}
	return &EnvelopeError{
		ErrorCode:       r.ErrorCode,
		ErrorStatus:     r.ErrorStatus,
		Message:         r.Message,
		ThrottleSeconds: r.ThrottleSeconds,
	}
}

// PagedQuery echoes the paging parameters a search was run with.
type PagedQuery struct {
	ItemsPerPage             int    `json:"itemsPerPage"`
	CurrentPage              int    `json:"currentPage"`
	RequestContinuationToken string `json:"requestContinuationToken,omitempty"`
}

// SearchResultOf is one page of a paged search.
type SearchResultOf[T any] struct {
	Results                      []T        `json:"results"`
	TotalResults                 int        `json:"totalResults"`
	HasMore                      bool       `json:"hasMore"`
	Query                        PagedQuery `json:"query"`
	ReplacementContinuationToken string     `json:"replacementContinuationToken,omitempty"`
	UseTotalResults              bool       `json:"useTotalResults"`
}
