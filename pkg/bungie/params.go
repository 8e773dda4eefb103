package bungie

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mholzen/bungienet/pkg/client"
)

// optional maps the zero value to nil so FormatQuery leaves the parameter out.
func optional[T comparable](v T) any {
	var zero T
	if v == zero {
		return nil
	}
	return v
}

func formatBungieName(name string, code int) string {
	return fmt.Sprintf("%s#%04d", name, code)
}

// ParseBungieName splits "name#1234" into the global display name and its code.
func ParseBungieName(s string) (ExactSearchRequest, error) {
	i := strings.LastIndexByte(s, '#')
	if i <= 0 || i == len(s)-1 {
		return ExactSearchRequest{}, fmt.Errorf("bungie name %q: want name#code", s)
	}
	code, err := strconv.Atoi(s[i+1:])
	if err != nil {
		return ExactSearchRequest{}, fmt.Errorf("bungie name %q: invalid code: %w", s, err)
	}
	return ExactSearchRequest{DisplayName: s[:i], DisplayNameCode: code}, nil
}

func page(currentPage int) client.Query {
	return client.Query{{Key: "currentpage", Value: currentPage}}
}
