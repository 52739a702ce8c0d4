package mcp

import (
	"fmt"
	"strings"
)

const sensoScheme = "senso://"

// getAllResources returns the list of static resource metadata.
func getAllResources() []ResourceListItem {
	return []ResourceListItem{
		{
			URI:         "senso://docs/tool-reference",
			Name:        "Senso Tool Reference",
			Description: "List of MCP tools and when to use them",
			MimeType:    "text/plain",
		},
		{
			URI:         "senso://docs/template-variables",
			Name:        "Template Variables",
			Description: "How variables work in prompt and template text",
			MimeType:    "text/plain",
		},
		{
			URI:         "senso://docs/workflow",
			Name:        "Knowledge Workflow",
			Description: "Capture → Search → Generate flow",
			MimeType:    "text/plain",
		},
	}
}

// readResource returns content for a known URI. For unknown URI returns error with ResourceNotFound.
func readResource(uri string) ([]ResourceContent, error) {
	if !strings.HasPrefix(uri, sensoScheme) {
		return nil, resourceNotFoundError(uri)
	}
	path := strings.TrimPrefix(uri, sensoScheme)
	path = strings.Trim(path, "/")
	// Disallow path traversal
	if strings.Contains(path, "..") || strings.HasPrefix(path, "/") {
		return nil, resourceNotFoundError(uri)
	}
	switch path {
	case "docs/tool-reference":
		return []ResourceContent{{URI: uri, MimeType: "text/plain", Text: staticToolReference}}, nil
	case "docs/template-variables":
		return []ResourceContent{{URI: uri, MimeType: "text/plain", Text: staticTemplateVariables}}, nil
	case "docs/workflow":
		return []ResourceContent{{URI: uri, MimeType: "text/plain", Text: staticWorkflow}}, nil
	default:
		return nil, resourceNotFoundError(uri)
	}
}

func resourceNotFoundError(uri string) error {
	return &ResourceNotFoundError{URI: uri}
}

// ResourceNotFoundError is returned for unknown resource URIs.
type ResourceNotFoundError struct {
	URI string
}

func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("resource not found: %s", e.URI)
}

// Static doc content, one or two lines per tool or topic.
//
//nolint:lll // long single-line content strings for static docs
const staticToolReference = `add_raw_content: Store raw text (text required, title/summary optional). add_file_content: Upload a file via multipart (file_name, file_content). search_content: Semantic search (query, max_results default 5). generate_content: Ad-hoc generation (content_type, instructions, save, max_results default 5). generate_with_prompt: Generation bound to a saved prompt (prompt_id, content_type, optional template_id, max_results default 25). create_prompt, list_prompts, get_prompt, update_prompt, delete_prompt: Prompt CRUD (list limit default 10, max 100). create_template, list_templates, get_template, update_template, delete_template: Template CRUD (output_type is 'json' or 'text').`

//nolint:lll // static doc string for template variables
const staticTemplateVariables = `Prompt and template text uses {{variable}} placeholders. The API substitutes variables at generation time. Template output_type controls the final rendering: 'text' returns plain prose, 'json' returns a structured document shaped by the template.`

//nolint:lll // static doc string for workflow overview
const staticWorkflow = `Capture: add_raw_content or add_file_content stores material; the API chunks and indexes it. Search: search_content retrieves relevant chunks and a generated answer. Generate: generate_content drafts new material from the indexed knowledge; generate_with_prompt reuses a saved prompt and optional template for repeatable output.`
