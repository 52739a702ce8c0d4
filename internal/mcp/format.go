package mcp

import (
	"fmt"
	"strings"

	"github.com/senso-ai/senso-mcp/internal/client"
)

// Display formatting for tool results. Field fallbacks mirror the API
// contract: absent fields render as the documented defaults rather
// than empty strings.

const (
	textPreviewLen    = 100
	maxSourcesShown   = 5
	fallbackNoAnswer  = "No answer generated."
	fallbackGenerated = "No content generated."
)

func formatContentAdded(content *client.Content) string {
	id := content.ID
	if id == "" {
		id = "unknown"
	}
	title := content.Title
	if title == "" {
		title = "Untitled"
	}
	return fmt.Sprintf("Content successfully added with ID: %s\nTitle: %s", id, title)
}

func formatSearchResults(query string, resp *client.SearchResponse) string {
	if len(resp.Results) == 0 {
		return fmt.Sprintf("No relevant information found for query: '%s'.", query)
	}

	answer := resp.Answer
	if answer == "" {
		answer = fallbackNoAnswer
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Answer: %s\n\nFound %d relevant results for '%s':\n\n", answer, len(resp.Results), query)
	for i, result := range resp.Results {
		title := result.Title
		if title == "" {
			title = "No title"
		}
		chunk := result.ChunkText
		if chunk == "" {
			chunk = "No content"
		}
		contentID := result.ContentID
		if contentID == "" {
			contentID = "No ID"
		}
		fmt.Fprintf(&b, "Result %d:\nTitle: %s\nContent: %s\nID: %s\n\n", i+1, title, chunk, contentID)
	}
	return b.String()
}

func formatGenerated(contentType string, saved bool, resp *client.GenerateResponse) string {
	text := resp.GeneratedText
	if text == "" {
		text = fallbackGenerated
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Generated content about %s:\n\n%s\n\n", contentType, text)

	if resp.ContentID != "" && saved {
		fmt.Fprintf(&b, "Content was saved with ID: %s\n\n", resp.ContentID)
	}

	if len(resp.Sources) > 0 {
		b.WriteString("Sources used for generation:\n")
		for i, source := range resp.Sources {
			title := source.Title
			if title == "" {
				title = "No title"
			}
			fmt.Fprintf(&b, "Source %d: %s\n", i+1, title)
		}
	}
	return b.String()
}

func formatGeneratedWithPrompt(saved bool, resp *client.GenerateWithPromptResponse) string {
	text := resp.GeneratedText
	if text == "" {
		text = fallbackGenerated
	}
	promptName := resp.Prompt.Name
	if promptName == "" {
		promptName = "Unknown"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Generated content using prompt '%s':\n\n%s\n\n", promptName, text)

	if resp.Template != nil {
		fmt.Fprintf(&b, "Formatted with template: %s (%s)\n\n", resp.Template.Name, resp.Template.OutputType)
	}

	if resp.ContentID != "" && saved {
		fmt.Fprintf(&b, "Content was saved with ID: %s\n\n", resp.ContentID)
	}

	if len(resp.Sources) > 0 {
		fmt.Fprintf(&b, "Sources used (%d total):\n", len(resp.Sources))
		for i, source := range resp.Sources {
			if i == maxSourcesShown {
				break
			}
			title := source.Title
			if title == "" {
				title = "No title"
			}
			fmt.Fprintf(&b, "- %s\n", title)
		}
		if extra := len(resp.Sources) - maxSourcesShown; extra > 0 {
			fmt.Fprintf(&b, "... and %d more sources\n", extra)
		}
	}
	return b.String()
}

func formatPromptSaved(verb string, prompt *client.Prompt) string {
	return fmt.Sprintf("Prompt %s successfully!\nID: %s\nName: %s", verb, prompt.PromptID, prompt.Name)
}

func formatPromptDetail(prompt *client.Prompt) string {
	created := prompt.CreatedAt
	if created == "" {
		created = "Unknown"
	}
	return fmt.Sprintf("ID: %s\nName: %s\nText: %s\nCreated: %s", prompt.PromptID, prompt.Name, prompt.Text, created)
}

func formatPromptList(prompts []client.Prompt) string {
	if len(prompts) == 0 {
		return "No prompts found."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Prompts (showing %d results):\n\n", len(prompts))
	for _, prompt := range prompts {
		created := prompt.CreatedAt
		if created == "" {
			created = "Unknown"
		}
		fmt.Fprintf(&b, "ID: %s\nName: %s\nText: %s\nCreated: %s\n\n",
			prompt.PromptID, prompt.Name, truncate(prompt.Text), created)
	}
	return b.String()
}

func formatTemplateCreated(template *client.Template) string {
	return fmt.Sprintf("Template created successfully!\nID: %s\nName: %s\nOutput Type: %s",
		template.TemplateID, template.Name, template.OutputType)
}

func formatTemplateUpdated(template *client.Template) string {
	return fmt.Sprintf("Template updated successfully!\nID: %s\nName: %s", template.TemplateID, template.Name)
}

func formatTemplateDetail(template *client.Template) string {
	created := template.CreatedAt
	if created == "" {
		created = "Unknown"
	}
	return fmt.Sprintf("ID: %s\nName: %s\nOutput Type: %s\nText: %s\nCreated: %s",
		template.TemplateID, template.Name, template.OutputType, template.Text, created)
}

func formatTemplateList(templates []client.Template) string {
	if len(templates) == 0 {
		return "No templates found."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Templates (showing %d results):\n\n", len(templates))
	for _, template := range templates {
		created := template.CreatedAt
		if created == "" {
			created = "Unknown"
		}
		fmt.Fprintf(&b, "ID: %s\nName: %s\nOutput Type: %s\nText: %s\nCreated: %s\n\n",
			template.TemplateID, template.Name, template.OutputType, truncate(template.Text), created)
	}
	return b.String()
}

// truncate shortens long prompt/template text for list views.
func truncate(s string) string {
	if len(s) > textPreviewLen {
		return s[:textPreviewLen] + "..."
	}
	return s
}
