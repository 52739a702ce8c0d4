package client

import (
	"time"

	"github.com/senso-ai/senso-mcp/internal/logger"
)

// maxListLimit caps the limit parameter on list operations.
// The API rejects larger pages; clamp locally before sending.
const maxListLimit = 100

// Client exposes typed methods for the Senso API. All entities are
// owned by the remote service; the client holds no state beyond its
// gateway.
type Client struct {
	gateway *Gateway
}

// New creates a Senso API client backed by the given gateway.
func New(gateway *Gateway) *Client {
	return &Client{gateway: gateway}
}

// NewWithConfig creates a client with its own gateway.
func NewWithConfig(baseURL, apiKey string, timeout time.Duration, log logger.Logger) *Client {
	return New(NewGateway(baseURL, apiKey, timeout, log))
}

func clampLimit(limit int) int {
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
