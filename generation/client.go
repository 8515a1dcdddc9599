// Package generation produces book and slide content through the Gemini
// API and parses the model's JSON output into typed records.
package generation

import (
	"context"
	"fmt"
	"log"
	"strings"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash"

// Message is one turn of a chat conversation. Role is "user" or "model".
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ModelInfo describes one model available to the configured API key.
type ModelInfo struct {
	Name             string   `json:"name"`
	DisplayName      string   `json:"display_name"`
	Description      string   `json:"description,omitempty"`
	SupportedActions []string `json:"supported_actions,omitempty"`
}

// Client wraps the Gemini API for text generation.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient creates a generation client. An empty model selects the
// default.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	log.Printf("INFO (Generation): Using Gemini model %s", model)
	return &Client{client: client, model: model}, nil
}

// GenerateText sends a single prompt and returns the model's text response.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	return c.generate(ctx, []*genai.Content{
		{Role: "user", Parts: []*genai.Part{{Text: prompt}}},
	})
}

// Chat sends a multi-turn conversation and returns the model's reply.
func (c *Client) Chat(ctx context.Context, messages []Message) (string, error) {
	if len(messages) == 0 {
		return "", fmt.Errorf("at least one message is required")
	}

	contents := make([]*genai.Content, 0, len(messages))
	for _, m := range messages {
		role := m.Role
		if role != "user" && role != "model" {
			role = "user"
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: m.Content}},
		})
	}
	return c.generate(ctx, contents)
}

// ListModels returns the models the configured API key can use, so the
// client can offer a model picker.
func (c *Client) ListModels(ctx context.Context) ([]ModelInfo, error) {
	var models []ModelInfo
	for model, err := range c.client.Models.All(ctx) {
		if err != nil {
			return nil, fmt.Errorf("failed to list gemini models: %w", err)
		}
		displayName := model.DisplayName
		if displayName == "" {
			displayName = strings.TrimPrefix(model.Name, "models/")
		}
		models = append(models, ModelInfo{
			Name:             model.Name,
			DisplayName:      displayName,
			Description:      model.Description,
			SupportedActions: model.SupportedActions,
		})
	}
	return models, nil
}

func (c *Client) generate(ctx context.Context, contents []*genai.Content) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}

	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if part.Text != "" {
				return part.Text, nil
			}
		}
	}
	return "", fmt.Errorf("gemini returned no text candidates")
}
