package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Prompt is a saved generation prompt.
type Prompt struct {
	PromptID  string `json:"prompt_id"`
	Name      string `json:"name"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// SavePromptRequest is the payload for creating or updating a prompt.
type SavePromptRequest struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// CreatePrompt creates a new prompt.
func (c *Client) CreatePrompt(ctx context.Context, req SavePromptRequest) (*Prompt, error) {
	return doJSON[Prompt](ctx, c.gateway, http.MethodPost, "/prompts", nil, req)
}

// ListPrompts lists prompts. limit is clamped to the API maximum of 100.
func (c *Client) ListPrompts(ctx context.Context, limit, offset int) ([]Prompt, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(clampLimit(limit)))
	query.Set("offset", strconv.Itoa(offset))

	prompts, err := doJSON[[]Prompt](ctx, c.gateway, http.MethodGet, "/prompts", query, nil)
	if err != nil {
		return nil, err
	}
	return *prompts, nil
}

// GetPrompt fetches a single prompt by ID.
func (c *Client) GetPrompt(ctx context.Context, promptID string) (*Prompt, error) {
	return doJSON[Prompt](ctx, c.gateway, http.MethodGet, "/prompts/"+promptID, nil, nil)
}

// UpdatePrompt replaces the name and text of an existing prompt.
func (c *Client) UpdatePrompt(ctx context.Context, promptID string, req SavePromptRequest) (*Prompt, error) {
	return doJSON[Prompt](ctx, c.gateway, http.MethodPut, "/prompts/"+promptID, nil, req)
}

// DeletePrompt removes a prompt.
func (c *Client) DeletePrompt(ctx context.Context, promptID string) error {
	_, err := c.gateway.Do(ctx, http.MethodDelete, "/prompts/"+promptID, nil, nil)
	return err
}
