package translate

import (
	"context"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"linguabridge/backend/internal/language"
)

// OpenAITranslator implements Translator on the OpenAI API.
type OpenAITranslator struct {
	client openai.Client
	model  string
}

// NewOpenAITranslator creates a new OpenAI-backed translator.
func NewOpenAITranslator(apiKey, baseURL, model string) *OpenAITranslator {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &OpenAITranslator{
		client: openai.NewClient(opts...),
		model:  model,
	}
}

// Name returns the provider name.
func (t *OpenAITranslator) Name() string {
	return ProviderOpenAI
}

// Translate sends the text through a chat completion with a translation
// system prompt and returns the cleaned answer.
func (t *OpenAITranslator) Translate(ctx context.Context, text, sourceCode, targetCode string) (string, error) {
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

// promptLanguage prefers the registry name for prompts; a code outside the
// registry is passed through as-is.
func promptLanguage(code string) string {
	if name, err := language.NameOf(code); err == nil {
		return name
	}
	return code
}
