package moltbook

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

const (
	SearchTypePosts    = "posts"
	SearchTypeComments = "comments"
	SearchTypeAll      = "all"

	DefaultSearchLimit = 20
)

type SearchOptions struct {
	Type  string `validate:"oneof=posts comments all"`
	Limit int
}

type SearchOption func(*SearchOptions)

func WithSearchType(searchType string) SearchOption {
	return func(opts *SearchOptions) {
		opts.Type = searchType
	}
}

func WithSearchLimit(limit int) SearchOption {
	return func(opts *SearchOptions) {
		opts.Limit = limit
	}
}

// Search runs a semantic search over posts and comments. Defaults:
// type=all, limit=20. The query is percent-escaped, since natural
// language queries routinely contain spaces and reserved characters.
func (c *Client) Search(ctx context.Context, query string, opts ...SearchOption) (*SearchResponse, error) {
	options := &SearchOptions{
		Type:  SearchTypeAll,
		Limit: DefaultSearchLimit,
	}

	for _, opt := range opts {
		opt(options)
	}

	if err := validateInput(options); err != nil {
		return nil, err
	}

	params := []QueryParam{
		{Key: "q", Value: url.QueryEscape(query)},
		{Key: "type", Value: options.Type},
		{Key: "limit", Value: strconv.Itoa(clampLimit(options.Limit, DefaultSearchLimit))},
	}

	var resp SearchResponse
	if err := c.do(ctx, http.MethodGet, "search", params, nil, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}
