package translate

import (
	"context"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// CompatibleTranslator implements Translator against any OpenAI-compatible
// endpoint (local inference servers, gateways). Unlike the OpenAI provider
// the base URL is mandatory.
type CompatibleTranslator struct {
	client openai.Client
	model  string
}

// NewCompatibleTranslator creates a translator for an OpenAI-compatible API.
func NewCompatibleTranslator(apiKey, baseURL, model string) *CompatibleTranslator {
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
	)
	return &CompatibleTranslator{
		client: client,
		model:  model,
	}
}

// Name returns the provider name.
func (t *CompatibleTranslator) Name() string {
	return ProviderCompatible
}

// Translate sends the text through a chat completion with a translation
// system prompt and returns the cleaned answer.
func (t *CompatibleTranslator) Translate(ctx context.Context, text, sourceCode, targetCode string) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(t.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(GetTranslatePrompt(promptLanguage(sourceCode), promptLanguage(targetCode))),
			openai.UserMessage(text),
		},
	}

	resp, err := t.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return CleanOutput(resp.Choices[0].Message.Content), nil
}
