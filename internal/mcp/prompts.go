package mcp

import (
	"encoding/json"
	"fmt"
	"strings"
)

// getAllPrompts returns the list of prompt definitions (name, description, arguments).
func getAllPrompts() []Prompt {
	return []Prompt{
		{
			Name:        "capture_knowledge",
			Description: "Add a piece of knowledge to the base and verify it is findable.",
			Arguments: []PromptArgument{
				{Name: "text", Description: "The text to capture", Required: true, Type: "string"},
				{Name: "title", Description: "Title for the content (optional)", Required: false, Type: "string"},
				{Name: "verify_query", Description: "Query to run afterwards to confirm the content is indexed (optional)", Required: false, Type: "string"},
			},
		},
		{
			Name:        "research_topic",
			Description: "Search the knowledge base on a topic and draft a summary from the results.",
			Arguments: []PromptArgument{
				{Name: "topic", Description: "Topic to research", Required: true, Type: "string"},
				{Name: "max_results", Description: "How many source results to use (optional)", Required: false, Type: "number"},
			},
		},
		{
			Name:        "draft_with_saved_prompt",
			Description: "Generate content from a saved prompt, optionally formatted with a template.",
			Arguments: []PromptArgument{
				{Name: "prompt_id", Description: "ID of the saved prompt to use", Required: true, Type: "string"},
				{Name: "content_type", Description: "What content to search for in the knowledge base", Required: true, Type: "string"},
				{Name: "template_id", Description: "Template to format the output (optional)", Required: false, Type: "string"},
			},
		},
		{
			Name:        "design_output_template",
			Description: "Create a reusable output template and try it against a saved prompt.",
			Arguments: []PromptArgument{
				{Name: "name", Description: "Name for the new template", Required: true, Type: "string"},
				{Name: "output_type", Description: "'json' or 'text' (optional, defaults to text)", Required: false, Type: "string"},
			},
		},
	}
}

const variableCheatsheet = `Variables use {{variable}} format in prompt and template text.`

// getPromptByName returns the prompt messages for the given name with arguments substituted.
// If any required argument is missing, returns an error suitable for -32602 (Invalid params).
func getPromptByName(name string, arguments map[string]any) ([]PromptMessage, error) {
	prompts := getAllPrompts()
	var def *Prompt
	for i := range prompts {
		if prompts[i].Name == name {
			def = &prompts[i]
			break
		}
	}
	if def == nil {
		return nil, fmt.Errorf("unknown prompt: %s", name)
	}

	var missing []string
	for _, arg := range def.Arguments {
		if !arg.Required {
			continue
		}
		v, ok := arguments[arg.Name]
		if !ok || v == nil {
			missing = append(missing, arg.Name)
			continue
		}
		if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
			missing = append(missing, arg.Name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required arguments: %s", strings.Join(missing, ", "))
	}

	return buildPromptMessages(def, arguments)
}

func buildPromptMessages(def *Prompt, args map[string]any) ([]PromptMessage, error) {
	switch def.Name {
	case "capture_knowledge":
		return buildCaptureKnowledgeMessages(args), nil
	case "research_topic":
		return buildResearchTopicMessages(args), nil
	case "draft_with_saved_prompt":
		return buildDraftWithSavedPromptMessages(args), nil
	case "design_output_template":
		return buildDesignOutputTemplateMessages(args), nil
	default:
		return nil, fmt.Errorf("unknown prompt: %s", def.Name)
	}
}

func buildCaptureKnowledgeMessages(args map[string]any) []PromptMessage {
	text := "Use the add_raw_content tool to store the provided text"
	if title, _ := args["title"].(string); title != "" {
		text += fmt.Sprintf(" with title %q", title)
	}
	text += ". "
	if q, _ := args["verify_query"].(string); q != "" {
		text += fmt.Sprintf("Then run search_content with query %q and confirm the new content appears in the results. ", q)
	}
	text += "Report the returned content ID."
	return userMessage(text)
}

func buildResearchTopicMessages(args map[string]any) []PromptMessage {
	topic, _ := args["topic"].(string)
	text := fmt.Sprintf(
		"Use search_content with query %q to gather relevant material, then use generate_content "+
			"to draft a summary grounded on those results. Cite the source titles in your answer.",
		topic,
	)
	return userMessage(text)
}

func buildDraftWithSavedPromptMessages(args map[string]any) []PromptMessage {
	promptID, _ := args["prompt_id"].(string)
	contentType, _ := args["content_type"].(string)
	text := fmt.Sprintf(
		"Use generate_with_prompt with prompt_id %q and content_type %q.",
		promptID, contentType,
	)
	if templateID, _ := args["template_id"].(string); templateID != "" {
		text += fmt.Sprintf(" Format the output with template_id %q.", templateID)
	}
	text += " Summarize the generated content and list the sources used."
	return userMessage(text)
}

func buildDesignOutputTemplateMessages(args map[string]any) []PromptMessage {
	name, _ := args["name"].(string)
	outputType, _ := args["output_type"].(string)
	if outputType == "" {
		outputType = "text"
	}
	text := fmt.Sprintf(
		"Use create_template to create a template named %q with output_type %q, then use "+
			"list_prompts to pick a prompt and try the template via generate_with_prompt. ",
		name, outputType,
	)
	text += variableCheatsheet
	return userMessage(text)
}

func userMessage(text string) []PromptMessage {
	return []PromptMessage{{
		Role:    "user",
		Content: []PromptContent{{Type: "text", Text: text}},
	}}
}

// promptsGetParams for prompts/get.
type promptsGetParams struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments,omitempty"`
}

// parsePromptsGetParams parses params for prompts/get. Returns name, arguments, and error message if invalid.
func parsePromptsGetParams(params json.RawMessage) (name string, arguments map[string]any, errMsg string) {
	var p promptsGetParams
	if unmarshalErr := json.Unmarshal(params, &p); unmarshalErr != nil {
		return "", nil, "Invalid parameters: " + unmarshalErr.Error()
	}
	if p.Name == "" {
		return "", nil, "name is required"
	}
	if p.Arguments == nil {
		p.Arguments = map[string]any{}
	}
	return p.Name, p.Arguments, ""
}
