package client

import (
	"context"
	"net/http"
)

// GenerateRequest is the payload for ad-hoc content generation.
type GenerateRequest struct {
	ContentType  string `json:"content_type"`
	Instructions string `json:"instructions"`
	Save         bool   `json:"save"`
	MaxResults   int    `json:"max_results"`
}

// Source describes a knowledge-base item used during generation.
type Source struct {
	ContentID string `json:"content_id,omitempty"`
	Title     string `json:"title"`
}

// GenerateResponse is the reply for ad-hoc generation.
type GenerateResponse struct {
	GeneratedText string   `json:"generated_text"`
	ContentID     string   `json:"content_id,omitempty"`
	Sources       []Source `json:"sources,omitempty"`
}

// GenerateWithPromptRequest binds generation to a saved prompt and an
// optional template. TemplateID is omitted from the payload when empty.
type GenerateWithPromptRequest struct {
	PromptID    string `json:"prompt_id"`
	ContentType string `json:"content_type"`
	TemplateID  string `json:"template_id,omitempty"`
	Save        bool   `json:"save"`
	MaxResults  int    `json:"max_results"`
}

// PromptRef identifies the prompt used for a generation.
type PromptRef struct {
	PromptID string `json:"prompt_id,omitempty"`
	Name     string `json:"name"`
}

// TemplateRef identifies the template used for a generation.
type TemplateRef struct {
	TemplateID string `json:"template_id,omitempty"`
	Name       string `json:"name"`
	OutputType string `json:"output_type"`
}

// GenerateWithPromptResponse is the reply for prompt-bound generation.
type GenerateWithPromptResponse struct {
	GeneratedText string       `json:"generated_text"`
	ContentID     string       `json:"content_id,omitempty"`
	Prompt        PromptRef    `json:"prompt"`
	Template      *TemplateRef `json:"template,omitempty"`
	Sources       []Source     `json:"sources,omitempty"`
}

// Generate creates content from instructions and existing knowledge.
func (c *Client) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	return doJSON[GenerateResponse](ctx, c.gateway, http.MethodPost, "/generate", nil, req)
}

// GenerateWithPrompt creates content using a saved prompt and optional template.
func (c *Client) GenerateWithPrompt(ctx context.Context, req GenerateWithPromptRequest) (*GenerateWithPromptResponse, error) {
	return doJSON[GenerateWithPromptResponse](ctx, c.gateway, http.MethodPost, "/generate/prompt", nil, req)
}
