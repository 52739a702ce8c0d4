// Package mcp is tested here to assert internal handler behavior (routeToolCall, handlePromptsList, etc.).
//
//nolint:testpackage // we need to call unexported routeToolCall and handle* methods for unit tests
package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestHandleRequest_UnknownMethod_ReturnsMethodNotFound(t *testing.T) {
	t.Helper()
	s := NewServer(nil, nil)
	req := &Request{JSONRPC: "2.0", ID: "1", Method: "bogus/method"}
	resp := s.HandleRequest(context.Background(), req)
	if resp == nil || resp.Error == nil {
		t.Fatal("expected error response for unknown method")
	}
	if resp.Error.Code != MethodNotFound {
		t.Errorf("expected error code %d (MethodNotFound), got %d", MethodNotFound, resp.Error.Code)
	}
}

func TestHandleRequest_UnknownNotification_ReturnsNil(t *testing.T) {
	t.Helper()
	s := NewServer(nil, nil)
	req := &Request{JSONRPC: "2.0", ID: nil, Method: "notifications/initialized"}
	if resp := s.HandleRequest(context.Background(), req); resp != nil {
		t.Errorf("expected nil response for notification, got %+v", resp)
	}
}

func TestHandleRequest_Ping_ReturnsEmptyResult(t *testing.T) {
	t.Helper()
	s := NewServer(nil, nil)
	req := &Request{JSONRPC: "2.0", ID: "1", Method: "ping"}
	resp := s.HandleRequest(context.Background(), req)
	if resp == nil || resp.Result == nil {
		t.Fatal("expected non-nil result for ping")
	}
	if resp.Error != nil {
		t.Errorf("unexpected error: %v", resp.Error)
	}
}

func TestHandleInitialize_IncludesCapabilities(t *testing.T) {
	t.Helper()
	s := NewServer(nil, nil)
	req := &Request{JSONRPC: "2.0", ID: "1", Method: "initialize", Params: json.RawMessage(`{}`)}
	resp := s.HandleRequest(context.Background(), req)
	if resp == nil || resp.Result == nil {
		t.Fatal("expected non-nil result")
	}
	var result struct {
		Capabilities map[string]any `json:"capabilities"`
		ServerInfo   map[string]any `json:"serverInfo"`
	}
	if err := json.Unmarshal(resp.Result, &result); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if _, ok := result.Capabilities["tools"]; !ok {
		t.Error("expected capabilities.tools")
	}
	if _, ok := result.Capabilities["prompts"]; !ok {
		t.Error("expected capabilities.prompts")
	}
	if _, ok := result.Capabilities["resources"]; !ok {
		t.Error("expected capabilities.resources")
	}
	if result.ServerInfo["name"] != serverName {
		t.Errorf("expected server name %q, got %v", serverName, result.ServerInfo["name"])
	}
}

func TestHandleToolsList_ReturnsAllTools(t *testing.T) {
	t.Helper()
	s := NewServer(nil, nil)
	req := &Request{JSONRPC: "2.0", ID: "1", Method: "tools/list", Params: json.RawMessage(`{}`)}
	resp := s.HandleRequest(context.Background(), req)
	if resp == nil || resp.Result == nil {
		t.Fatal("expected non-nil result")
	}
	var result struct {
		Tools []Tool `json:"tools"`
	}
	if err := json.Unmarshal(resp.Result, &result); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	const expectedTools = 15
	if n := len(result.Tools); n != expectedTools {
		t.Errorf("expected %d tools, got %d", expectedTools, n)
	}
	names := map[string]bool{}
	for _, tool := range result.Tools {
		if names[tool.Name] {
			t.Errorf("duplicate tool name %q", tool.Name)
		}
		names[tool.Name] = true
		if tool.InputSchema == nil {
			t.Errorf("tool %q has no input schema", tool.Name)
		}
	}
	for _, required := range []string{"add_raw_content", "search_content", "generate_with_prompt", "delete_template"} {
		if !names[required] {
			t.Errorf("expected tool %q in tools/list", required)
		}
	}
}

func TestRouteToolCall_UnknownTool_ReturnsMethodNotFound(t *testing.T) {
	t.Helper()
	s := NewServer(nil, nil)
	resp := s.routeToolCall(context.Background(), "test-id", "nonexistent_tool", json.RawMessage(`{}`))
	if resp == nil {
		t.Fatal("expected non-nil response")
	}
	if resp.Error == nil {
		t.Fatal("expected error response for unknown tool")
	}
	if resp.Error.Code != MethodNotFound {
		t.Errorf("expected error code %d (MethodNotFound), got %d", MethodNotFound, resp.Error.Code)
	}
	if !strings.Contains(resp.Error.Message, "Unknown tool") {
		t.Errorf("expected message containing 'Unknown tool', got %q", resp.Error.Message)
	}
}

func TestHandlePromptsList_ReturnsPrompts(t *testing.T) {
	t.Helper()
	s := NewServer(nil, nil)
	req := &Request{JSONRPC: "2.0", ID: "1", Method: "prompts/list", Params: json.RawMessage(`{}`)}
	resp := s.handlePromptsList(req, "1")
	if resp == nil || resp.Result == nil {
		t.Fatal("expected non-nil result")
	}
	var result struct {
		Prompts []Prompt `json:"prompts"`
	}
	if err := json.Unmarshal(resp.Result, &result); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	const expectedPrompts = 4
	if n := len(result.Prompts); n != expectedPrompts {
		t.Errorf("expected %d prompts, got %d", expectedPrompts, n)
	}
}

func TestHandlePromptsGet_ValidName_ReturnsMessages(t *testing.T) {
	t.Helper()
	s := NewServer(nil, nil)
	params := `{"name":"research_topic","arguments":{"topic":"refund policy"}}`
	req := &Request{JSONRPC: "2.0", ID: "1", Method: "prompts/get", Params: json.RawMessage(params)}
	resp := s.handlePromptsGet(req, "1")
	if resp == nil || resp.Result == nil {
		t.Fatal("expected non-nil result")
	}
	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error)
	}
	var result struct {
		Messages []PromptMessage `json:"messages"`
	}
	if err := json.Unmarshal(resp.Result, &result); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if len(result.Messages) == 0 {
		t.Fatal("expected at least one message")
	}
	if !strings.Contains(result.Messages[0].Content[0].Text, "refund policy") {
		t.Errorf("expected topic in message text, got %q", result.Messages[0].Content[0].Text)
	}
}

func TestHandlePromptsGet_UnknownName_ReturnsInvalidParams(t *testing.T) {
	t.Helper()
	s := NewServer(nil, nil)
	params := `{"name":"nonexistent_prompt","arguments":{}}`
	req := &Request{JSONRPC: "2.0", ID: "1", Method: "prompts/get", Params: json.RawMessage(params)}
	resp := s.handlePromptsGet(req, "1")
	if resp == nil || resp.Error == nil {
		t.Fatal("expected error for unknown prompt name")
	}
	if resp.Error.Code != InvalidParams {
		t.Errorf("expected InvalidParams, got %d", resp.Error.Code)
	}
}

func TestHandlePromptsGet_MissingRequiredArgs_ReturnsInvalidParams(t *testing.T) {
	t.Helper()
	s := NewServer(nil, nil)
	params := `{"name":"draft_with_saved_prompt","arguments":{"prompt_id":"p-1"}}`
	req := &Request{JSONRPC: "2.0", ID: "1", Method: "prompts/get", Params: json.RawMessage(params)}
	resp := s.handlePromptsGet(req, "1")
	if resp == nil || resp.Error == nil {
		t.Fatal("expected error when required argument content_type is missing")
	}
	if resp.Error.Code != InvalidParams {
		t.Errorf("expected InvalidParams, got %d", resp.Error.Code)
	}
	if !strings.Contains(resp.Error.Message, "missing required") {
		t.Errorf("expected message to mention missing required, got %q", resp.Error.Message)
	}
}

func TestHandleResourcesList_ReturnsResources(t *testing.T) {
	t.Helper()
	s := NewServer(nil, nil)
	req := &Request{JSONRPC: "2.0", ID: "1", Method: "resources/list", Params: json.RawMessage(`{}`)}
	resp := s.handleResourcesList(req, "1")
	if resp == nil || resp.Result == nil {
		t.Fatal("expected non-nil result")
	}
	var result struct {
		Resources []ResourceListItem `json:"resources"`
	}
	if err := json.Unmarshal(resp.Result, &result); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if len(result.Resources) == 0 {
		t.Error("expected at least one resource")
	}
}

func TestHandleResourcesRead_ValidURI_ReturnsContents(t *testing.T) {
	t.Helper()
	s := NewServer(nil, nil)
	params := `{"uri":"senso://docs/workflow"}`
	req := &Request{JSONRPC: "2.0", ID: "1", Method: "resources/read", Params: json.RawMessage(params)}
	resp := s.handleResourcesRead(req, "1")
	if resp == nil || resp.Result == nil {
		t.Fatal("expected non-nil result")
	}
	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error)
	}
	var result struct {
		Contents []ResourceContent `json:"contents"`
	}
	if err := json.Unmarshal(resp.Result, &result); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if len(result.Contents) == 0 || result.Contents[0].Text == "" {
		t.Error("expected non-empty content text")
	}
}

func TestHandleResourcesRead_UnknownURI_ReturnsResourceNotFound(t *testing.T) {
	t.Helper()
	s := NewServer(nil, nil)
	params := `{"uri":"senso://docs/nonexistent"}`
	req := &Request{JSONRPC: "2.0", ID: "1", Method: "resources/read", Params: json.RawMessage(params)}
	resp := s.handleResourcesRead(req, "1")
	if resp == nil || resp.Error == nil {
		t.Fatal("expected error for unknown URI")
	}
	if resp.Error.Code != ResourceNotFound {
		t.Errorf("expected ResourceNotFound (%d), got %d", ResourceNotFound, resp.Error.Code)
	}
}
