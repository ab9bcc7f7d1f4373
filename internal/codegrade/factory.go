package codegrade

import (
	"context"
	"fmt"
)

// New creates a Grader from configuration, wrapped with retry middleware.
func New(ctx context.Context, cfg Config) (Grader, error) {
	var base Grader
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicGrader(cfg.Anthropic, cfg.MaxTokens)
	case "openai":
		base, err = NewOpenAIGrader(cfg.OpenAI, cfg.MaxTokens)
	case "gemini":
		base, err = NewGeminiGrader(ctx, cfg.Gemini, cfg.MaxTokens)
	case "mock":
		return NewMockGrader(), nil
	default:
		return nil, fmt.Errorf("unknown grading provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s grader: %w", cfg.Provider, err)
	}

	return WithRetry(base, cfg.Retry), nil
}
