// Package inference wraps the language-model providers behind a single
// interface. The provider in use is chosen once from explicit configuration,
// never from environment lookups inside the package.
package inference

import (
	"context"
	"errors"

	"github.com/openai/openai-go/v3"
)

// Inferencer defines an interface for running model inference.
type Inferencer interface {
	Infer(ctx context.Context, params *openai.ChatCompletionNewParams, system, user string) (string, error)
}

// Config selects and configures a provider. Provider is one of "openai",
// "ollama" or "gemini"; when empty, the first provider with credentials wins
// in that order.
type Config struct {
	Provider string

	OpenAIKey   string
	OpenAIModel string

	OllamaBaseURL string
	OllamaModel   string

	GeminiKey   string
	GeminiModel string
}

var ErrNoProvider = errors.New("no language-model provider configured")

// New resolves the closed provider set from the config.
func New(cfg Config) (Inferencer, error) {
	provider := cfg.Provider
	if provider == "" {
		switch {
		case cfg.OpenAIKey != "":
			provider = "openai"
		case cfg.OllamaBaseURL != "":
			provider = "ollama"
		case cfg.GeminiKey != "":
			provider = "gemini"
		default:
			return nil, ErrNoProvider
		}
	}

	switch provider {
	case "openai":
		if cfg.OpenAIKey == "" {
			return nil, errors.New("openai provider selected but no API key configured")
		}
		model := cfg.OpenAIModel
		if model == "" {
			model = "gpt-3.5-turbo"
		}
		return NewOpenAIInferencer(cfg.OpenAIKey, model), nil
	case "ollama":
		if cfg.OllamaBaseURL == "" {
			return nil, errors.New("ollama provider selected but no base URL configured")
		}
		model := cfg.OllamaModel
		if model == "" {
			model = "llama2"
		}
		// Ollama speaks the OpenAI wire format; the key is a dummy.
		inf := NewOpenAIInferencer("ollama", model)
		inf.ChangeBaseURL(cfg.OllamaBaseURL + "/v1")
		return inf, nil
	case "gemini":
		return NewGeminiInferencer(cfg.GeminiKey, cfg.GeminiModel)
	default:
		return nil, errors.New("unknown provider: " + provider)
	}
}
