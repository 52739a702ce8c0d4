package mcp

// getAllTools returns all available MCP tools grouped by API area
func getAllTools() []Tool {
	tools := []Tool{}
	tools = append(tools, getContentTools()...)
	tools = append(tools, getSearchTools()...)
	tools = append(tools, getGenerationTools()...)
	tools = append(tools, getPromptTools()...)
	tools = append(tools, getTemplateTools()...)
	return tools
}

func getContentTools() []Tool {
	return []Tool{
		{
			Name:        "add_raw_content",
			Description: "Add raw text content to the knowledge base.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"text": map[string]any{
						"type":        "string",
						"description": "The raw text content to add",
					},
					"title": map[string]any{
						"type":        "string",
						"description": "The title of the content (optional)",
					},
					"summary": map[string]any{
						"type":        "string",
						"description": "Summary of the content (optional)",
					},
				},
				"required": []string{"text"},
			},
		},
		{
			Name:        "add_file_content",
			Description: "Upload a file to the knowledge base. The file content is sent as a multipart form upload.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"file_name": map[string]any{
						"type":        "string",
						"description": "Name of the file, including extension (e.g. notes.md)",
					},
					"file_content": map[string]any{
						"type":        "string",
						"description": "The file content to upload",
					},
					"title": map[string]any{
						"type":        "string",
						"description": "The title of the content (optional)",
					},
					"summary": map[string]any{
						"type":        "string",
						"description": "Summary of the content (optional)",
					},
				},
				"required": []string{"file_name", "file_content"},
			},
		},
	}
}

func getSearchTools() []Tool {
	return []Tool{
		{
			Name:        "search_content",
			Description: "Search for content in the knowledge base.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"query": map[string]any{
						"type":        "string",
						"description": "The search query",
					},
					"max_results": map[string]any{
						"type":        "integer",
						"description": "Maximum number of results to return (default is 5)",
					},
				},
				"required": []string{"query"},
			},
		},
	}
}

func getGenerationTools() []Tool {
	return []Tool{
		{
			Name:        "generate_content",
			Description: "Generate content based on instructions and existing knowledge.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"content_type": map[string]any{
						"type":        "string",
						"description": "Type of content to generate",
					},
					"instructions": map[string]any{
						"type":        "string",
						"description": "Instructions for content generation",
					},
					"save": map[string]any{
						"type":        "boolean",
						"description": "Whether to save the generated content (default is false)",
					},
					"max_results": map[string]any{
						"type":        "integer",
						"description": "Maximum number of source results to use (default is 5)",
					},
				},
				"required": []string{"content_type", "instructions"},
			},
		},
		{
			Name:        "generate_with_prompt",
			Description: "Generate content using a saved prompt and optional template.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"prompt_id": map[string]any{
						"type":        "string",
						"description": "The ID of the prompt to use",
					},
					"content_type": map[string]any{
						"type":        "string",
						"description": "Description of what content to search for in the knowledge base",
					},
					"template_id": map[string]any{
						"type":        "string",
						"description": "Optional ID of a template to format the output",
					},
					"save": map[string]any{
						"type":        "boolean",
						"description": "Whether to save the generated content (default is false)",
					},
					"max_results": map[string]any{
						"type":        "integer",
						"description": "Maximum number of source results to use (default is 25)",
					},
				},
				"required": []string{"prompt_id", "content_type"},
			},
		},
	}
}

func getPromptTools() []Tool {
	return []Tool{
		{
			Name:        "create_prompt",
			Description: "Create a new prompt for content generation.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name": map[string]any{
						"type":        "string",
						"description": "The name of the prompt (must be unique)",
					},
					"text": map[string]any{
						"type":        "string",
						"description": "The prompt text with variables in {{variable}} format",
					},
				},
				"required": []string{"name", "text"},
			},
		},
		{
			Name:        "list_prompts",
			Description: "List all prompts in the organization.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"limit": map[string]any{
						"type":        "integer",
						"description": "Maximum number of prompts to return (default 10, max 100)",
					},
					"offset": map[string]any{
						"type":        "integer",
						"description": "Number of prompts to skip for pagination (default 0)",
					},
				},
			},
		},
		{
			Name:        "get_prompt",
			Description: "Get a single prompt by ID.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"prompt_id": map[string]any{
						"type":        "string",
						"description": "The ID of the prompt to fetch",
					},
				},
				"required": []string{"prompt_id"},
			},
		},
		{
			Name:        "update_prompt",
			Description: "Update an existing prompt.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"prompt_id": map[string]any{
						"type":        "string",
						"description": "The ID of the prompt to update",
					},
					"name": map[string]any{
						"type":        "string",
						"description": "The new name for the prompt",
					},
					"text": map[string]any{
						"type":        "string",
						"description": "The new text for the prompt",
					},
				},
				"required": []string{"prompt_id", "name", "text"},
			},
		},
		{
			Name:        "delete_prompt",
			Description: "Delete a prompt by ID.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"prompt_id": map[string]any{
						"type":        "string",
						"description": "The ID of the prompt to delete",
					},
				},
				"required": []string{"prompt_id"},
			},
		},
	}
}

func getTemplateTools() []Tool {
	return []Tool{
		{
			Name:        "create_template",
			Description: "Create a new template for output formatting.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name": map[string]any{
						"type":        "string",
						"description": "The name of the template (must be unique)",
					},
					"text": map[string]any{
						"type":        "string",
						"description": "The template text with variables in {{variable}} format",
					},
					"output_type": map[string]any{
						"type":        "string",
						"description": "The output format - 'json' or 'text' (default is 'text')",
						"enum":        []string{"json", "text"},
					},
				},
				"required": []string{"name", "text"},
			},
		},
		{
			Name:        "list_templates",
			Description: "List all templates in the organization.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"limit": map[string]any{
						"type":        "integer",
						"description": "Maximum number of templates to return (default 10, max 100)",
					},
					"offset": map[string]any{
						"type":        "integer",
						"description": "Number of templates to skip for pagination (default 0)",
					},
				},
			},
		},
		{
			Name:        "get_template",
			Description: "Get a single template by ID.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"template_id": map[string]any{
						"type":        "string",
						"description": "The ID of the template to fetch",
					},
				},
				"required": []string{"template_id"},
			},
		},
		{
			Name:        "update_template",
			Description: "Update an existing template.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"template_id": map[string]any{
						"type":        "string",
						"description": "The ID of the template to update",
					},
					"name": map[string]any{
						"type":        "string",
						"description": "The new name for the template",
					},
					"text": map[string]any{
						"type":        "string",
						"description": "The new text for the template",
					},
					"output_type": map[string]any{
						"type":        "string",
						"description": "The output format - 'json' or 'text'",
						"enum":        []string{"json", "text"},
					},
				},
				"required": []string{"template_id", "name", "text"},
			},
		},
		{
			Name:        "delete_template",
			Description: "Delete a template by ID.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"template_id": map[string]any{
						"type":        "string",
						"description": "The ID of the template to delete",
					},
				},
				"required": []string{"template_id"},
			},
		},
	}
}
