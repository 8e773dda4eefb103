package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(i int) *int { return &i }

func TestFormatQuery(t *testing.T) {
	const base = "https://example.com/Platform/Thing/"

	tests := []struct {
		name     string
		query    Query
		expected string
	}{
		{
			name:     "nil query",
			query:    nil,
			expected: base,
		},
		{
			name:     "empty query",
			query:    Query{},
			expected: base,
		},
		{
			name:     "single value",
			query:    Query{{Key: "page", Value: 2}},
			expected: base + "?page=2",
		},
		{
			name: "several values keep order",
			query: Query{
				{Key: "b", Value: "two"},
				{Key: "a", Value: true},
				{Key: "c", Value: 1.5},
			},
			expected: base + "?b=two&a=true&c=1.5",
		},
		{
			name: "nil in the middle keeps index based separator",
			query: Query{
				{Key: "a", Value: 1},
				{Key: "b", Value: nil},
				{Key: "c", Value: 2},
			},
			expected: base + "?a=1&c=2",
		},
		{
			name: "first entry skipped gives no question mark",
			query: Query{
				{Key: "a", Value: nil},
				{Key: "b", Value: 2},
			},
			expected: base + "&b=2",
		},
		{
			name:     "all entries absent",
			query:    Query{{Key: "a", Value: nil}, {Key: "b", Value: (*int)(nil)}},
			expected: base,
		},
		{
			name:     "array values joined with literal commas",
			query:    Query{{Key: "tags", Value: []string{"x", "y"}}},
			expected: base + "?tags=x,y",
		},
		{
			name:     "integer components",
			query:    Query{{Key: "components", Value: []int{100, 200, 205}}},
			expected: base + "?components=100,200,205",
		},
		{
			name:     "pointer dereferenced",
			query:    Query{{Key: "currentpage", Value: intPtr(3)}},
			expected: base + "?currentpage=3",
		},
		{
			name:     "no percent encoding",
			query:    Query{{Key: "searchtext", Value: "a b&c"}},
			expected: base + "?searchtext=a b&c",
		},
		{
			name:     "false and zero are present values",
			query:    Query{{Key: "head", Value: false}, {Key: "page", Value: 0}},
			expected: base + "?head=false&page=0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatQuery(base, tt.query))
		})
	}
}

func TestFormatQuery_Idempotent(t *testing.T) {
	q := Query{}.Add("a", 1).Add("b", []string{"x", "y"}).Add("c", nil)
	first := FormatQuery("u", q)
	second := FormatQuery("u", q)
	assert.Equal(t, first, second)
	assert.Equal(t, "u?a=1&b=x,y", first)
}

type componentType int

func (c componentType) String() string { return "named" }

func TestFormatQuery_NamedIntegersPrintNumerically(t *testing.T) {
	q := Query{{Key: "components", Value: []componentType{100, 200}}}
	assert.Equal(t, "u?components=100,200", FormatQuery("u", q))
}
