package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/senso-ai/senso-mcp/internal/client"
	"github.com/senso-ai/senso-mcp/internal/logger"
)

const (
	serverName      = "senso-mcp"
	serverVersion   = "1.0.0"
	protocolVersion = "2024-11-05"
)

// Server handles MCP protocol requests
type Server struct {
	senso *client.Client
	log   logger.Logger
}

// NewServer creates a new MCP server
func NewServer(senso *client.Client, log logger.Logger) *Server {
	if log == nil {
		log = logger.Nop()
	}
	return &Server{
		senso: senso,
		log:   log,
	}
}

// HandleRequest processes an MCP request and returns a response.
// Returns nil for notifications (requests without ID) - they don't require responses
func (s *Server) HandleRequest(ctx context.Context, req *Request) *Response {
	requestID := req.ID

	switch req.Method {
	case "initialize":
		return s.handleInitialize(req, requestID)
	case "ping":
		return &Response{
			JSONRPC: "2.0",
			ID:      requestID,
			Result:  json.RawMessage(`{}`),
		}
	case "tools/list":
		return s.handleToolsList(req, requestID)
	case "tools/call":
		return s.handleToolsCall(ctx, req, requestID)
	case "prompts/list":
		return s.handlePromptsList(req, requestID)
	case "prompts/get":
		return s.handlePromptsGet(req, requestID)
	case "resources/list":
		return s.handleResourcesList(req, requestID)
	case "resources/read":
		return s.handleResourcesRead(req, requestID)
	}

	// Unknown method - only return error if this was a request (has ID).
	// Notifications (no ID) don't require responses
	if requestID == nil {
		return nil
	}

	return s.errorResponse(requestID, MethodNotFound, "Method not found")
}

// handleInitialize handles the initialize request
func (s *Server) handleInitialize(_ *Request, id any) *Response {
	result := map[string]any{
		"protocolVersion": protocolVersion,
		"capabilities": map[string]any{
			"tools":     map[string]any{},
			"prompts":   map[string]any{},
			"resources": map[string]any{},
		},
		"serverInfo": map[string]any{
			"name":    serverName,
			"version": serverVersion,
		},
	}

	return s.resultResponse(id, result)
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(_ *Request, id any) *Response {
	return s.resultResponse(id, map[string]any{
		"tools": getAllTools(),
	})
}

// handleToolsCall executes a tool call
func (s *Server) handleToolsCall(ctx context.Context, req *Request, id any) *Response {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(id, InvalidParams, "Invalid parameters")
	}

	s.log.Debug("tool call", logger.String("tool", params.Name))

	return s.routeToolCall(ctx, id, params.Name, params.Arguments)
}

// handlePromptsList returns the list of guided prompts
func (s *Server) handlePromptsList(_ *Request, id any) *Response {
	return s.resultResponse(id, map[string]any{
		"prompts": getAllPrompts(),
	})
}

// handlePromptsGet builds the messages for a named prompt
func (s *Server) handlePromptsGet(req *Request, id any) *Response {
	name, arguments, errMsg := parsePromptsGetParams(req.Params)
	if errMsg != "" {
		return s.errorResponse(id, InvalidParams, errMsg)
	}

	messages, err := getPromptByName(name, arguments)
	if err != nil {
		return s.errorResponse(id, InvalidParams, err.Error())
	}

	return s.resultResponse(id, map[string]any{
		"messages": messages,
	})
}

// handleResourcesList returns static resource metadata
func (s *Server) handleResourcesList(_ *Request, id any) *Response {
	return s.resultResponse(id, map[string]any{
		"resources": getAllResources(),
	})
}

// handleResourcesRead returns content for a known resource URI
func (s *Server) handleResourcesRead(req *Request, id any) *Response {
	var params struct {
		URI string `json:"uri"`
	}
	if err := json.Unmarshal(req.Params, &params); err != nil || params.URI == "" {
		return s.errorResponse(id, InvalidParams, "uri is required")
	}

	contents, err := readResource(params.URI)
	if err != nil {
		return s.errorResponse(id, ResourceNotFound, err.Error())
	}

	return s.resultResponse(id, map[string]any{
		"contents": contents,
	})
}

// Helper methods

func (s *Server) resultResponse(id any, result any) *Response {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return s.errorResponse(id, InternalError, fmt.Sprintf("Failed to marshal result: %v", err))
	}

	return &Response{
		JSONRPC: "2.0",
		ID:      id,
		Result:  json.RawMessage(resultJSON),
	}
}

func (s *Server) errorResponse(id any, code int, message string) *Response {
	return &Response{
		JSONRPC: "2.0",
		ID:      id,
		Error: &ErrorObject{
			Code:    code,
			Message: message,
		},
	}
}

// toolResult wraps handler output as a tools/call result. Handler
// failures (validation or remote) ride in-band as text with isError
// set; they are never surfaced as JSON-RPC errors.
func (s *Server) toolResult(id any, text string, isError bool) *Response {
	return s.resultResponse(id, map[string]any{
		"content": []map[string]any{
			{
				"type": "text",
				"text": text,
			},
		},
		"isError": isError,
	})
}

func (s *Server) successResult(id any, text string) *Response {
	return s.toolResult(id, text, false)
}

func (s *Server) failureResult(id any, text string) *Response {
	return s.toolResult(id, text, true)
}
