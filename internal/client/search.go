package client

import (
	"context"
	"net/http"
)

// SearchRequest is the payload for a knowledge-base search.
type SearchRequest struct {
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

// SearchResult is one matched chunk.
type SearchResult struct {
	ContentID string  `json:"content_id"`
	Title     string  `json:"title"`
	ChunkText string  `json:"chunk_text"`
	Score     float64 `json:"score,omitempty"`
}

// SearchResponse is the search reply: a generated answer plus the
// chunks it was grounded on.
type SearchResponse struct {
	Answer  string         `json:"answer"`
	Results []SearchResult `json:"results"`
}

// Search performs a semantic search over the knowledge base.
func (c *Client) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	return doJSON[SearchResponse](ctx, c.gateway, http.MethodPost, "/search", nil, req)
}
