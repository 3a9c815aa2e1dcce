package types

import "context"

// Generator produces text completions from prompts
type Generator interface {
	Complete(ctx context.Context, prompt string, opts map[string]any) (string, error)
	Model() string
}

// GenerationOptions contains options for text generation
type GenerationOptions struct {
	MaxTokens   int      `json:"max_tokens,omitempty"`
	Temperature float64  `json:"temperature,omitempty"`
	TopP        float64  `json:"top_p,omitempty"`
	Stop        []string `json:"stop,omitempty"`
}
