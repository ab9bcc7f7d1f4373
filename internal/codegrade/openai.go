package codegrade

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

// openaiModels maps friendly names to OpenAI model IDs.
var openaiModels = map[string]string{
	"gpt-4o":      "gpt-4o",
	"gpt-4o-mini": "gpt-4o-mini",
}

// OpenAIGrader implements Grader using the OpenAI SDK. It also supports
// OpenAI-compatible APIs via BaseURL.
type OpenAIGrader struct {
	client    *openai.Client
	model     string
	maxTokens int
}

// NewOpenAIGrader creates a new OpenAI grader.
func NewOpenAIGrader(cfg OpenAIConfig, maxTokens int) (*OpenAIGrader, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai API key is required")
	}

	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	return &OpenAIGrader{
		client:    openai.NewClientWithConfig(config),
		model:     resolveModel(cfg.Model, openaiModels),
		maxTokens: maxTokens,
	}, nil
}

func (g *OpenAIGrader) Grade(ctx context.Context, sub Submission) (*Verdict, error) {
	schemaBytes, err := json.Marshal(verdictSchemaDef)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}

	req := openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: gradingSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildGradingPrompt(sub)},
		},
		MaxCompletionTokens: g.maxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   verdictSchemaName,
				Schema: json.RawMessage(schemaBytes),
				Strict: true,
			},
		},
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, mapOpenAIError(err)
	}
	if len(resp.Choices) == 0 {
		return nil, &ErrInvalidVerdict{Err: fmt.Errorf("no choices in OpenAI response")}
	}

	return parseVerdict(json.RawMessage(resp.Choices[0].Message.Content))
}

func (g *OpenAIGrader) ProviderID() string {
	return g.model
}

func mapOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.HTTPStatusCode == http.StatusTooManyRequests:
			return &ErrRateLimit{Err: err}
		case apiErr.HTTPStatusCode >= 500:
			return &ErrProviderUnavailable{Err: err}
		}
	}
	return &ErrProviderUnavailable{Err: err}
}

// resolveModel maps a friendly model name to a provider model ID.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	// If not in the map, use as-is (allows direct model IDs).
	return name
}
