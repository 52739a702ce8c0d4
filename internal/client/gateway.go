// Package client provides the outbound HTTP gateway and typed methods
// for the Senso knowledge-base API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/senso-ai/senso-mcp/internal/logger"
)

const defaultHTTPTimeout = 30 * time.Second

// Gateway issues single-attempt HTTP requests against the Senso API.
// Every call is one request: no retries, no caching, no pooling of
// state beyond the underlying http.Client.
type Gateway struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	log        logger.Logger
}

// NewGateway creates a gateway for the given base URL and API key.
// A timeout of zero falls back to the 30s default.
func NewGateway(baseURL, apiKey string, timeout time.Duration, log logger.Logger) *Gateway {
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Gateway{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
		log:        log,
	}
}

// allowedMethod reports whether the gateway supports the HTTP method.
func allowedMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}

// Do performs one request against baseURL+path and returns the raw
// response body on 2xx. body, when non-nil, is sent as JSON.
func (g *Gateway) Do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	if !allowedMethod(method) {
		return nil, validationError("unsupported HTTP method: %s", method)
	}

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, transportError(fmt.Errorf("marshal request: %w", err))
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.buildURL(path, query), bodyReader)
	if err != nil {
		return nil, transportError(fmt.Errorf("create request: %w", err))
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return g.send(req, method, path)
}

// DoMultipart performs one multipart POST with the given form fields and
// a single file part. Used by the content-file upload path.
func (g *Gateway) DoMultipart(
	ctx context.Context,
	path string,
	fields map[string]string,
	fileField, fileName string,
	file io.Reader,
) ([]byte, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for key, val := range fields {
		if err := mw.WriteField(key, val); err != nil {
			return nil, transportError(fmt.Errorf("write form field %s: %w", key, err))
		}
	}

	part, err := mw.CreateFormFile(fileField, fileName)
	if err != nil {
		return nil, transportError(fmt.Errorf("create form file: %w", err))
	}
	if _, err = io.Copy(part, file); err != nil {
		return nil, transportError(fmt.Errorf("copy file content: %w", err))
	}
	if err = mw.Close(); err != nil {
		return nil, transportError(fmt.Errorf("finalize multipart body: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.buildURL(path, nil), &buf)
	if err != nil {
		return nil, transportError(fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return g.send(req, http.MethodPost, path)
}

// send executes the prepared request and normalizes the outcome.
func (g *Gateway) send(req *http.Request, method, path string) ([]byte, error) {
	req.Header.Set("X-API-Key", g.apiKey)
	req.Header.Set("Accept", "application/json")

	requestID := uuid.NewString()
	start := time.Now()

	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.log.Debug("request failed",
			logger.String("request_id", requestID),
			logger.String("method", method),
			logger.String("path", path),
			logger.Error(err),
		)
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError(fmt.Errorf("read response: %w", err))
	}

	g.log.Debug("request completed",
		logger.String("request_id", requestID),
		logger.String("method", method),
		logger.String("path", path),
		logger.Int("status", resp.StatusCode),
		logger.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var errorResp struct {
			Error string `json:"error"`
		}
		if jsonErr := json.Unmarshal(respBody, &errorResp); jsonErr == nil && errorResp.Error != "" {
			return nil, remoteError(errorResp.Error)
		}
		return nil, remoteError(fmt.Sprintf("unexpected status code: %d, body: %s", resp.StatusCode, string(respBody)))
	}

	return respBody, nil
}

func (g *Gateway) buildURL(path string, query url.Values) string {
	endpoint := g.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	return endpoint
}

// doJSON performs a request via the gateway and unmarshals the response
// into T. Endpoints returning an empty body (e.g. DELETE) should use
// Gateway.Do directly.
func doJSON[T any](
	ctx context.Context,
	g *Gateway,
	method, path string,
	query url.Values,
	body any,
) (*T, error) {
	respBody, err := g.Do(ctx, method, path, query, body)
	if err != nil {
		return nil, err
	}

	return parseJSON[T](respBody)
}

func parseJSON[T any](respBody []byte) (*T, error) {
	var result T
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, transportError(fmt.Errorf("parse response: %w", err))
	}
	return &result, nil
}
