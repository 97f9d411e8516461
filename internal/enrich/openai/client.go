package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"assessment-backend/internal/enrich"
)

const maxTokens = 1500

// Client implements enrich.Client using OpenAI chat completions.
type Client struct {
	api   *openai.Client
	model string
}

// NewClient constructs an OpenAI-backed enrichment client.
func NewClient(apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		model = "gpt-4-turbo-preview"
	}
	return &Client{api: openai.NewClient(apiKey), model: model}, nil
}

// IndustryInsights asks the model for structured industry insight data.
func (c *Client) IndustryInsights(ctx context.Context, industry, summary string) (enrich.IndustryInsights, error) {
	content, err := c.complete(ctx,
		"You are a helpful assistant that provides accurate industry data in JSON format.",
		insightsPrompt(industry, summary))
	if err != nil {
		return enrich.IndustryInsights{}, err
	}

	var out enrich.IndustryInsights
	if err := json.Unmarshal([]byte(content), &out); err != nil {
		return enrich.IndustryInsights{}, fmt.Errorf("parse insights response: %w", err)
	}
	if out.IndustryName == "" || len(out.TrendingTools) == 0 {
		return enrich.IndustryInsights{}, fmt.Errorf("incomplete insights response")
	}
	return out, nil
}

// RecommendedTools asks the model for structured tool recommendations.
func (c *Client) RecommendedTools(ctx context.Context, industry, summary string) ([]enrich.RecommendedTool, error) {
	content, err := c.complete(ctx,
		"You are a helpful assistant that recommends workflow automation tools in JSON format.",
		toolsPrompt(industry, summary))
	if err != nil {
		return nil, err
	}

	var out struct {
		RecommendedTools []enrich.RecommendedTool `json:"recommendedTools"`
	}
	if err := json.Unmarshal([]byte(content), &out); err != nil {
		return nil, fmt.Errorf("parse tools response: %w", err)
	}
	if len(out.RecommendedTools) == 0 {
		return nil, fmt.Errorf("empty tools response")
	}
	return out.RecommendedTools, nil
}

func (c *Client) complete(ctx context.Context, system, user string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.5,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	}
	// Reasoning models reject MaxTokens in favor of MaxCompletionTokens.
	if strings.HasPrefix(c.model, "o1") || strings.HasPrefix(c.model, "o3") || strings.HasPrefix(c.model, "o4") || strings.HasPrefix(c.model, "gpt-5") {
		req.MaxCompletionTokens = maxTokens
	} else {
		req.MaxTokens = maxTokens
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in completion response")
	}
	return resp.Choices[0].Message.Content, nil
}
