package client

import (
	"context"
	"net/http"
	"strings"
)

// AddRawContentRequest is the payload for creating raw text content.
// Title and summary are omitted from the payload when empty.
type AddRawContentRequest struct {
	Text    string `json:"text"`
	Title   string `json:"title,omitempty"`
	Summary string `json:"summary,omitempty"`
}

// AddFileContentRequest uploads a file as content via multipart form.
type AddFileContentRequest struct {
	FileName string
	Content  string
	Title    string
	Summary  string
}

// Content is a content record as returned by the API.
type Content struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Summary          string `json:"summary,omitempty"`
	ProcessingStatus string `json:"processing_status,omitempty"`
	CreatedAt        string `json:"created_at,omitempty"`
}

// AddRawContent adds raw text content to the knowledge base.
func (c *Client) AddRawContent(ctx context.Context, req AddRawContentRequest) (*Content, error) {
	return doJSON[Content](ctx, c.gateway, http.MethodPost, "/content/raw", nil, req)
}

// AddFileContent uploads a file to the knowledge base. Title and summary
// form fields are included only when set.
func (c *Client) AddFileContent(ctx context.Context, req AddFileContentRequest) (*Content, error) {
	fields := map[string]string{}
	if req.Title != "" {
		fields["title"] = req.Title
	}
	if req.Summary != "" {
		fields["summary"] = req.Summary
	}

	respBody, err := c.gateway.DoMultipart(ctx, "/content/file", fields, "file", req.FileName, strings.NewReader(req.Content))
	if err != nil {
		return nil, err
	}
	return parseJSON[Content](respBody)
}
