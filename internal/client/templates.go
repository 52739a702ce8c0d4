package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Template output types accepted by the API.
const (
	OutputTypeJSON = "json"
	OutputTypeText = "text"
)

// ValidOutputType reports whether s is an accepted template output type.
func ValidOutputType(s string) bool {
	return s == OutputTypeJSON || s == OutputTypeText
}

// Template is a saved output-formatting template.
type Template struct {
	TemplateID string `json:"template_id"`
	Name       string `json:"name"`
	Text       string `json:"text"`
	OutputType string `json:"output_type"`
	CreatedAt  string `json:"created_at,omitempty"`
	UpdatedAt  string `json:"updated_at,omitempty"`
}

// SaveTemplateRequest is the payload for creating or updating a template.
type SaveTemplateRequest struct {
	Name       string `json:"name"`
	Text       string `json:"text"`
	OutputType string `json:"output_type"`
}

// CreateTemplate creates a new template.
func (c *Client) CreateTemplate(ctx context.Context, req SaveTemplateRequest) (*Template, error) {
	return doJSON[Template](ctx, c.gateway, http.MethodPost, "/templates", nil, req)
}

// ListTemplates lists templates. limit is clamped to the API maximum of 100.
func (c *Client) ListTemplates(ctx context.Context, limit, offset int) ([]Template, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(clampLimit(limit)))
	query.Set("offset", strconv.Itoa(offset))

	templates, err := doJSON[[]Template](ctx, c.gateway, http.MethodGet, "/templates", query, nil)
	if err != nil {
		return nil, err
	}
	return *templates, nil
}

// GetTemplate fetches a single template by ID.
func (c *Client) GetTemplate(ctx context.Context, templateID string) (*Template, error) {
	return doJSON[Template](ctx, c.gateway, http.MethodGet, "/templates/"+templateID, nil, nil)
}

// UpdateTemplate replaces an existing template.
func (c *Client) UpdateTemplate(ctx context.Context, templateID string, req SaveTemplateRequest) (*Template, error) {
	return doJSON[Template](ctx, c.gateway, http.MethodPut, "/templates/"+templateID, nil, req)
}

// DeleteTemplate removes a template.
func (c *Client) DeleteTemplate(ctx context.Context, templateID string) error {
	_, err := c.gateway.Do(ctx, http.MethodDelete, "/templates/"+templateID, nil, nil)
	return err
}
