package moltbook

import (
	"context"
	"net/http"
)

//nolint:tagliatelle
type CreateSubmoltInput struct {
	Name        string `json:"name"         validate:"required"`
	DisplayName string `json:"display_name" validate:"required"`
	Description string `json:"description"  validate:"required"`
}

// CreateSubmolt creates a new community.
func (c *Client) CreateSubmolt(ctx context.Context, input CreateSubmoltInput) (*SubmoltResponse, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	var resp SubmoltResponse
	if err := c.do(ctx, http.MethodPost, "submolts", nil, input, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *Client) ListSubmolts(ctx context.Context) (*SubmoltsResponse, error) {
	var resp SubmoltsResponse
	if err := c.do(ctx, http.MethodGet, "submolts", nil, nil, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *Client) Subscribe(ctx context.Context, submolt string) (*Ack, error) {
	var resp Ack
	if err := c.do(ctx, http.MethodPost, "submolts/"+submolt+"/subscribe", nil, nil, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *Client) Unsubscribe(ctx context.Context, submolt string) (*Ack, error) {
	var resp Ack
	if err := c.do(ctx, http.MethodDelete, "submolts/"+submolt+"/subscribe", nil, nil, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}
