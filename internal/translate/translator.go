// Package translate defines the translation port and its providers. The
// stub provider is the reference behavior; the AI providers swap in a real
// backend behind the same contract.
package translate

import (
	"context"
	"errors"
	"time"
)

// Translator converts text between two registry language codes.
type Translator interface {
	// Translate returns display-ready translated text. Callers must treat
	// any error as the translation being unavailable for this attempt;
	// there is no retry contract at this boundary.
	Translate(ctx context.Context, text, sourceCode, targetCode string) (string, error)
	// Name returns the provider name.
	Name() string
}

// Config holds the configuration for a translation provider.
type Config struct {
	Provider  string // stub, openai, anthropic, compatible
	APIKey    string
	BaseURL   string // optional for openai, required for compatible
	Model     string
	StubDelay time.Duration // stub only: simulated provider latency
}

// Provider constants
const (
	ProviderStub       = "stub"
	ProviderOpenAI     = "openai"
	ProviderAnthropic  = "anthropic"
	ProviderCompatible = "compatible"
)

var (
	ErrInvalidProvider = errors.New("invalid provider")
	ErrMissingAPIKey   = errors.New("API key is required")
	ErrMissingBaseURL  = errors.New("base URL is required for compatible provider")
	ErrMissingModel    = errors.New("model is required")
)

// NewTranslator creates a translation provider based on the config.
func NewTranslator(cfg Config) (Translator, error) {
	if cfg.Provider == ProviderStub || cfg.Provider == "" {
		return NewStubTranslator(cfg.StubDelay), nil
	}

	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.Model == "" {
		return nil, ErrMissingModel
	}

	switch cfg.Provider {
	case ProviderOpenAI:
		return NewOpenAITranslator(cfg.APIKey, cfg.BaseURL, cfg.Model), nil
	case ProviderAnthropic:
		return NewAnthropicTranslator(cfg.APIKey, cfg.BaseURL, cfg.Model), nil
	case ProviderCompatible:
		if cfg.BaseURL == "" {
			return nil, ErrMissingBaseURL
		}
		return NewCompatibleTranslator(cfg.APIKey, cfg.BaseURL, cfg.Model), nil
	default:
		return nil, ErrInvalidProvider
	}
}
