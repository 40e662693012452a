package translate

import (
	"context"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicTranslator implements Translator on the Anthropic API.
type AnthropicTranslator struct {
	client anthropic.Client
	model  string
}

// NewAnthropicTranslator creates a new Anthropic-backed translator.
func NewAnthropicTranslator(apiKey, baseURL, model string) *AnthropicTranslator {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &AnthropicTranslator{
		client: anthropic.NewClient(opts...),
		model:  model,
	}
}

// Name returns the provider name.
func (t *AnthropicTranslator) Name() string {
	return ProviderAnthropic
}

// Translate sends the text through the Messages API with a translation
// system prompt and returns the cleaned answer.
func (t *AnthropicTranslator) Translate(ctx context.Context, text, sourceCode, targetCode string) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(t.model),
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: GetTranslatePrompt(promptLanguage(sourceCode), promptLanguage(targetCode))},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(text)),
		},
	}

	resp, err := t.client.Messages.New(ctx, params)
	if err != nil {
		return "", err
	}

	var out string
	for _, block := range resp.Content {
		if block.Type == "text" {
			out += block.Text
		}
	}
	return CleanOutput(out), nil
}
