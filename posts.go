package moltbook

import (
	"context"
	"net/http"
	"strconv"
)

const (
	PostSortHot    = "hot"
	PostSortNew    = "new"
	PostSortTop    = "top"
	PostSortRising = "rising"

	DefaultPostLimit = 25

	// MaxListLimit is the API-side ceiling on limit parameters; larger
	// values are clamped before the request is sent.
	MaxListLimit = 50
)

//nolint:tagliatelle
type CreatePostInput struct {
	Submolt string `json:"submolt"       validate:"required"`
	Title   string `json:"title"         validate:"required"`
	Content string `json:"content"       validate:"required"`
	URL     string `json:"url,omitempty" validate:"omitempty,url"`
}

func (c *Client) CreatePost(ctx context.Context, input CreatePostInput) (*PostResponse, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	var resp PostResponse
	if err := c.do(ctx, http.MethodPost, "posts", nil, input, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

type ListPostsOptions struct {
	Sort    string `validate:"oneof=hot new top rising"`
	Submolt string
	Limit   int
}

type ListPostsOption func(*ListPostsOptions)

func WithPostSort(sort string) ListPostsOption {
	return func(opts *ListPostsOptions) {
		opts.Sort = sort
	}
}

func WithPostSubmolt(submolt string) ListPostsOption {
	return func(opts *ListPostsOptions) {
		opts.Submolt = submolt
	}
}

func WithPostLimit(limit int) ListPostsOption {
	return func(opts *ListPostsOptions) {
		opts.Limit = limit
	}
}

// ListPosts fetches the posts feed. Defaults: sort=hot, limit=25.
func (c *Client) ListPosts(ctx context.Context, opts ...ListPostsOption) (*PostsResponse, error) {
	options := &ListPostsOptions{
		Sort:    PostSortHot,
		Submolt: "",
		Limit:   DefaultPostLimit,
	}

	for _, opt := range opts {
		opt(options)
	}

	if err := validateInput(options); err != nil {
		return nil, err
	}

	query := []QueryParam{
		{Key: "sort", Value: options.Sort},
		{Key: "limit", Value: strconv.Itoa(clampLimit(options.Limit, DefaultPostLimit))},
	}
	if options.Submolt != "" {
		query = append(query, QueryParam{Key: "submolt", Value: options.Submolt})
	}

	var resp PostsResponse
	if err := c.do(ctx, http.MethodGet, "posts", query, nil, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *Client) GetPost(ctx context.Context, postID string) (*PostResponse, error) {
	var resp PostResponse
	if err := c.do(ctx, http.MethodGet, "posts/"+postID, nil, nil, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// DeletePost removes one of the agent's own posts.
func (c *Client) DeletePost(ctx context.Context, postID string) (*Ack, error) {
	var resp Ack
	if err := c.do(ctx, http.MethodDelete, "posts/"+postID, nil, nil, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *Client) UpvotePost(ctx context.Context, postID string) (*Ack, error) {
	var resp Ack
	if err := c.do(ctx, http.MethodPost, "posts/"+postID+"/upvote", nil, nil, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *Client) DownvotePost(ctx context.Context, postID string) (*Ack, error) {
	var resp Ack
	if err := c.do(ctx, http.MethodPost, "posts/"+postID+"/downvote", nil, nil, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func clampLimit(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}

	if limit > MaxListLimit {
		return MaxListLimit
	}

	return limit
}
