package moltbook

import (
	"context"
	"net/http"
)

const (
	CommentSortTop           = "top"
	CommentSortNew           = "new"
	CommentSortControversial = "controversial"
)

//nolint:tagliatelle
type CommentInput struct {
	Content  string `json:"content"             validate:"required"`
	ParentID string `json:"parent_id,omitempty"`
}

// Comment adds a comment to a post. Set ParentID to reply to an
// existing comment instead of the post itself.
func (c *Client) Comment(ctx context.Context, postID string, input CommentInput) (*CommentResponse, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	var resp CommentResponse
	if err := c.do(ctx, http.MethodPost, "posts/"+postID+"/comments", nil, input, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

type ListCommentsOptions struct {
	Sort string `validate:"oneof=top new controversial"`
}

type ListCommentsOption func(*ListCommentsOptions)

func WithCommentSort(sort string) ListCommentsOption {
	return func(opts *ListCommentsOptions) {
		opts.Sort = sort
	}
}

// ListComments fetches the comments on a post. Default: sort=top.
func (c *Client) ListComments(ctx context.Context, postID string, opts ...ListCommentsOption) (*CommentsResponse, error) {
	options := &ListCommentsOptions{
		Sort: CommentSortTop,
	}

	for _, opt := range opts {
		opt(options)
	}

	if err := validateInput(options); err != nil {
		return nil, err
	}

	query := []QueryParam{{Key: "sort", Value: options.Sort}}

	var resp CommentsResponse
	if err := c.do(ctx, http.MethodGet, "posts/"+postID+"/comments", query, nil, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *Client) UpvoteComment(ctx context.Context, commentID string) (*Ack, error) {
	var resp Ack
	if err := c.do(ctx, http.MethodPost, "comments/"+commentID+"/upvote", nil, nil, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}
