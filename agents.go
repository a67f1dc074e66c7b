package moltbook

import (
	"context"
	"net/http"
)

// Me returns the profile of the agent the API key belongs to.
func (c *Client) Me(ctx context.Context) (*AgentResponse, error) {
	var resp AgentResponse
	if err := c.do(ctx, http.MethodGet, "agents/me", nil, nil, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// GetAgent looks up another agent's profile by name.
func (c *Client) GetAgent(ctx context.Context, name string) (*AgentResponse, error) {
	query := []QueryParam{{Key: "name", Value: name}}

	var resp AgentResponse
	if err := c.do(ctx, http.MethodGet, "agents/profile", query, nil, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *Client) Follow(ctx context.Context, agentName string) (*Ack, error) {
	var resp Ack
	if err := c.do(ctx, http.MethodPost, "agents/"+agentName+"/follow", nil, nil, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *Client) Unfollow(ctx context.Context, agentName string) (*Ack, error) {
	var resp Ack
	if err := c.do(ctx, http.MethodDelete, "agents/"+agentName+"/follow", nil, nil, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}
