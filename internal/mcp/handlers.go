package mcp

import (
	"context"
	"encoding/json"

	"github.com/senso-ai/senso-mcp/internal/client"
)

// Defaults applied when a numeric argument is absent or non-positive.
const (
	defaultSearchResults    = 5
	defaultGenerateResults  = 5
	defaultPromptGenResults = 25
	defaultListLimit        = 10
)

// routeToolCall dispatches a tools/call to the matching handler
func (s *Server) routeToolCall(ctx context.Context, id any, toolName string, arguments json.RawMessage) *Response {
	switch toolName {
	// Content tools
	case "add_raw_content":
		return s.handleAddRawContent(ctx, id, arguments)
	case "add_file_content":
		return s.handleAddFileContent(ctx, id, arguments)

	// Search tools
	case "search_content":
		return s.handleSearchContent(ctx, id, arguments)

	// Generation tools
	case "generate_content":
		return s.handleGenerateContent(ctx, id, arguments)
	case "generate_with_prompt":
		return s.handleGenerateWithPrompt(ctx, id, arguments)

	// Prompt tools
	case "create_prompt":
		return s.handleCreatePrompt(ctx, id, arguments)
	case "list_prompts":
		return s.handleListPrompts(ctx, id, arguments)
	case "get_prompt":
		return s.handleGetPrompt(ctx, id, arguments)
	case "update_prompt":
		return s.handleUpdatePrompt(ctx, id, arguments)
	case "delete_prompt":
		return s.handleDeletePrompt(ctx, id, arguments)

	// Template tools
	case "create_template":
		return s.handleCreateTemplate(ctx, id, arguments)
	case "list_templates":
		return s.handleListTemplates(ctx, id, arguments)
	case "get_template":
		return s.handleGetTemplate(ctx, id, arguments)
	case "update_template":
		return s.handleUpdateTemplate(ctx, id, arguments)
	case "delete_template":
		return s.handleDeleteTemplate(ctx, id, arguments)

	default:
		return s.errorResponse(id, MethodNotFound, "Unknown tool: "+toolName)
	}
}

// Content tool handlers

func (s *Server) handleAddRawContent(ctx context.Context, id any, arguments json.RawMessage) *Response {
	var args struct {
		Text    string `json:"text"`
		Title   string `json:"title"`
		Summary string `json:"summary"`
	}

	if err := json.Unmarshal(arguments, &args); err != nil {
		return s.errorResponse(id, InvalidParams, "Invalid arguments: "+err.Error())
	}

	if args.Text == "" {
		return s.failureResult(id, "Error: Content text is required")
	}

	content, err := s.senso.AddRawContent(ctx, client.AddRawContentRequest{
		Text:    args.Text,
		Title:   args.Title,
		Summary: args.Summary,
	})
	if err != nil {
		return s.failureResult(id, "Failed to add content: "+err.Error())
	}

	return s.successResult(id, formatContentAdded(content))
}

func (s *Server) handleAddFileContent(ctx context.Context, id any, arguments json.RawMessage) *Response {
	var args struct {
		FileName    string `json:"file_name"`
		FileContent string `json:"file_content"`
		Title       string `json:"title"`
		Summary     string `json:"summary"`
	}

	if err := json.Unmarshal(arguments, &args); err != nil {
		return s.errorResponse(id, InvalidParams, "Invalid arguments: "+err.Error())
	}

	if args.FileName == "" || args.FileContent == "" {
		return s.failureResult(id, "Error: File name and file content are required")
	}

	content, err := s.senso.AddFileContent(ctx, client.AddFileContentRequest{
		FileName: args.FileName,
		Content:  args.FileContent,
		Title:    args.Title,
		Summary:  args.Summary,
	})
	if err != nil {
		return s.failureResult(id, "Failed to upload file: "+err.Error())
	}

	return s.successResult(id, formatContentAdded(content))
}

// Search tool handlers

func (s *Server) handleSearchContent(ctx context.Context, id any, arguments json.RawMessage) *Response {
	var args struct {
		Query      string `json:"query"`
		MaxResults int    `json:"max_results"`
	}

	if err := json.Unmarshal(arguments, &args); err != nil {
		return s.errorResponse(id, InvalidParams, "Invalid arguments: "+err.Error())
	}

	if args.Query == "" {
		return s.failureResult(id, "Error: Query is required")
	}
	if args.MaxResults <= 0 {
		args.MaxResults = defaultSearchResults
	}

	resp, err := s.senso.Search(ctx, client.SearchRequest{
		Query:      args.Query,
		MaxResults: args.MaxResults,
	})
	if err != nil {
		return s.failureResult(id, "Search failed: "+err.Error())
	}

	return s.successResult(id, formatSearchResults(args.Query, resp))
}

// Generation tool handlers

func (s *Server) handleGenerateContent(ctx context.Context, id any, arguments json.RawMessage) *Response {
	var args struct {
		ContentType  string `json:"content_type"`
		Instructions string `json:"instructions"`
		Save         bool   `json:"save"`
		MaxResults   int    `json:"max_results"`
	}

	if err := json.Unmarshal(arguments, &args); err != nil {
		return s.errorResponse(id, InvalidParams, "Invalid arguments: "+err.Error())
	}

	if args.ContentType == "" || args.Instructions == "" {
		return s.failureResult(id, "Error: Content type and instructions are required")
	}
	if args.MaxResults <= 0 {
		args.MaxResults = defaultGenerateResults
	}

	resp, err := s.senso.Generate(ctx, client.GenerateRequest{
		ContentType:  args.ContentType,
		Instructions: args.Instructions,
		Save:         args.Save,
		MaxResults:   args.MaxResults,
	})
	if err != nil {
		return s.failureResult(id, "Content generation failed: "+err.Error())
	}

	return s.successResult(id, formatGenerated(args.ContentType, args.Save, resp))
}

func (s *Server) handleGenerateWithPrompt(ctx context.Context, id any, arguments json.RawMessage) *Response {
	var args struct {
		PromptID    string `json:"prompt_id"`
		ContentType string `json:"content_type"`
		TemplateID  string `json:"template_id"`
		Save        bool   `json:"save"`
		MaxResults  int    `json:"max_results"`
	}

	if err := json.Unmarshal(arguments, &args); err != nil {
		return s.errorResponse(id, InvalidParams, "Invalid arguments: "+err.Error())
	}

	if args.PromptID == "" || args.ContentType == "" {
		return s.failureResult(id, "Error: Prompt ID and content type are required")
	}
	if args.MaxResults <= 0 {
		args.MaxResults = defaultPromptGenResults
	}

	resp, err := s.senso.GenerateWithPrompt(ctx, client.GenerateWithPromptRequest{
		PromptID:    args.PromptID,
		ContentType: args.ContentType,
		TemplateID:  args.TemplateID,
		Save:        args.Save,
		MaxResults:  args.MaxResults,
	})
	if err != nil {
		return s.failureResult(id, "Content generation with prompt failed: "+err.Error())
	}

	return s.successResult(id, formatGeneratedWithPrompt(args.Save, resp))
}

// Prompt tool handlers

func (s *Server) handleCreatePrompt(ctx context.Context, id any, arguments json.RawMessage) *Response {
	var args struct {
		Name string `json:"name"`
		Text string `json:"text"`
	}

	if err := json.Unmarshal(arguments, &args); err != nil {
		return s.errorResponse(id, InvalidParams, "Invalid arguments: "+err.Error())
	}

	if args.Name == "" || args.Text == "" {
		return s.failureResult(id, "Error: Name and text are required")
	}

	prompt, err := s.senso.CreatePrompt(ctx, client.SavePromptRequest{
		Name: args.Name,
		Text: args.Text,
	})
	if err != nil {
		return s.failureResult(id, "Failed to create prompt: "+err.Error())
	}

	return s.successResult(id, formatPromptSaved("created", prompt))
}

func (s *Server) handleListPrompts(ctx context.Context, id any, arguments json.RawMessage) *Response {
	var args struct {
		Limit  int `json:"limit"`
		Offset int `json:"offset"`
	}

	// Absent arguments are fine for listing; malformed JSON is not.
	if len(arguments) > 0 {
		if err := json.Unmarshal(arguments, &args); err != nil {
			return s.errorResponse(id, InvalidParams, "Invalid arguments: "+err.Error())
		}
	}
	if args.Limit <= 0 {
		args.Limit = defaultListLimit
	}

	prompts, err := s.senso.ListPrompts(ctx, args.Limit, args.Offset)
	if err != nil {
		return s.failureResult(id, "Failed to list prompts: "+err.Error())
	}

	return s.successResult(id, formatPromptList(prompts))
}

func (s *Server) handleGetPrompt(ctx context.Context, id any, arguments json.RawMessage) *Response {
	var args struct {
		PromptID string `json:"prompt_id"`
	}

	if err := json.Unmarshal(arguments, &args); err != nil {
		return s.errorResponse(id, InvalidParams, "Invalid arguments: "+err.Error())
	}

	if args.PromptID == "" {
		return s.failureResult(id, "Error: Prompt ID is required")
	}

	prompt, err := s.senso.GetPrompt(ctx, args.PromptID)
	if err != nil {
		return s.failureResult(id, "Failed to get prompt: "+err.Error())
	}

	return s.successResult(id, formatPromptDetail(prompt))
}

func (s *Server) handleUpdatePrompt(ctx context.Context, id any, arguments json.RawMessage) *Response {
	var args struct {
		PromptID string `json:"prompt_id"`
		Name     string `json:"name"`
		Text     string `json:"text"`
	}

	if err := json.Unmarshal(arguments, &args); err != nil {
		return s.errorResponse(id, InvalidParams, "Invalid arguments: "+err.Error())
	}

	if args.PromptID == "" || args.Name == "" || args.Text == "" {
		return s.failureResult(id, "Error: Prompt ID, name, and text are required")
	}

	prompt, err := s.senso.UpdatePrompt(ctx, args.PromptID, client.SavePromptRequest{
		Name: args.Name,
		Text: args.Text,
	})
	if err != nil {
		return s.failureResult(id, "Failed to update prompt: "+err.Error())
	}

	return s.successResult(id, formatPromptSaved("updated", prompt))
}

func (s *Server) handleDeletePrompt(ctx context.Context, id any, arguments json.RawMessage) *Response {
	var args struct {
		PromptID string `json:"prompt_id"`
	}

	if err := json.Unmarshal(arguments, &args); err != nil {
		return s.errorResponse(id, InvalidParams, "Invalid arguments: "+err.Error())
	}

	if args.PromptID == "" {
		return s.failureResult(id, "Error: Prompt ID is required")
	}

	if err := s.senso.DeletePrompt(ctx, args.PromptID); err != nil {
		return s.failureResult(id, "Failed to delete prompt: "+err.Error())
	}

	return s.successResult(id, "Prompt deleted successfully!\nID: "+args.PromptID)
}

// Template tool handlers

func (s *Server) handleCreateTemplate(ctx context.Context, id any, arguments json.RawMessage) *Response {
	var args struct {
		Name       string `json:"name"`
		Text       string `json:"text"`
		OutputType string `json:"output_type"`
	}

	if err := json.Unmarshal(arguments, &args); err != nil {
		return s.errorResponse(id, InvalidParams, "Invalid arguments: "+err.Error())
	}

	if args.Name == "" || args.Text == "" {
		return s.failureResult(id, "Error: Name and text are required")
	}
	if args.OutputType == "" {
		args.OutputType = client.OutputTypeText
	}
	if !client.ValidOutputType(args.OutputType) {
		return s.failureResult(id, "Error: output_type must be 'json' or 'text'")
	}

	template, err := s.senso.CreateTemplate(ctx, client.SaveTemplateRequest{
		Name:       args.Name,
		Text:       args.Text,
		OutputType: args.OutputType,
	})
	if err != nil {
		return s.failureResult(id, "Failed to create template: "+err.Error())
	}

	return s.successResult(id, formatTemplateCreated(template))
}

func (s *Server) handleListTemplates(ctx context.Context, id any, arguments json.RawMessage) *Response {
	var args struct {
		Limit  int `json:"limit"`
		Offset int `json:"offset"`
	}

	// Absent arguments are fine for listing; malformed JSON is not.
	if len(arguments) > 0 {
		if err := json.Unmarshal(arguments, &args); err != nil {
			return s.errorResponse(id, InvalidParams, "Invalid arguments: "+err.Error())
		}
	}
	if args.Limit <= 0 {
		args.Limit = defaultListLimit
	}

	templates, err := s.senso.ListTemplates(ctx, args.Limit, args.Offset)
	if err != nil {
		return s.failureResult(id, "Failed to list templates: "+err.Error())
	}

	return s.successResult(id, formatTemplateList(templates))
}

func (s *Server) handleGetTemplate(ctx context.Context, id any, arguments json.RawMessage) *Response {
	var args struct {
		TemplateID string `json:"template_id"`
	}

	if err := json.Unmarshal(arguments, &args); err != nil {
		return s.errorResponse(id, InvalidParams, "Invalid arguments: "+err.Error())
	}

	if args.TemplateID == "" {
		return s.failureResult(id, "Error: Template ID is required")
	}

	template, err := s.senso.GetTemplate(ctx, args.TemplateID)
	if err != nil {
		return s.failureResult(id, "Failed to get template: "+err.Error())
	}

	return s.successResult(id, formatTemplateDetail(template))
}

func (s *Server) handleUpdateTemplate(ctx context.Context, id any, arguments json.RawMessage) *Response {
	var args struct {
		TemplateID string `json:"template_id"`
		Name       string `json:"name"`
		Text       string `json:"text"`
		OutputType string `json:"output_type"`
	}

	if err := json.Unmarshal(arguments, &args); err != nil {
		return s.errorResponse(id, InvalidParams, "Invalid arguments: "+err.Error())
	}

	if args.TemplateID == "" || args.Name == "" || args.Text == "" {
		return s.failureResult(id, "Error: Template ID, name, and text are required")
	}
	if args.OutputType == "" {
		args.OutputType = client.OutputTypeText
	}
	if !client.ValidOutputType(args.OutputType) {
		return s.failureResult(id, "Error: output_type must be 'json' or 'text'")
	}

	template, err := s.senso.UpdateTemplate(ctx, args.TemplateID, client.SaveTemplateRequest{
		Name:       args.Name,
		Text:       args.Text,
		OutputType: args.OutputType,
	})
	if err != nil {
		return s.failureResult(id, "Failed to update template: "+err.Error())
	}

	return s.successResult(id, formatTemplateUpdated(template))
}

func (s *Server) handleDeleteTemplate(ctx context.Context, id any, arguments json.RawMessage) *Response {
	var args struct {
		TemplateID string `json:"template_id"`
	}

	if err := json.Unmarshal(arguments, &args); err != nil {
		return s.errorResponse(id, InvalidParams, "Invalid arguments: "+err.Error())
	}

	if args.TemplateID == "" {
		return s.failureResult(id, "Error: Template ID is required")
	}

	if err := s.senso.DeleteTemplate(ctx, args.TemplateID); err != nil {
		return s.failureResult(id, "Failed to delete template: "+err.Error())
	}

	return s.successResult(id, "Template deleted successfully!\nID: "+args.TemplateID)
}
