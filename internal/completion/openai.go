package completion

import (
	"context"
	"fmt"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAI completes prompts with the chat completions API.
type OpenAI struct {
	client   openai.Client
	settings Settings
}

// NewOpenAI builds the client once; it is safe for concurrent use. The
// SDK's automatic retries are disabled so a failed call fails the request.
func NewOpenAI(apiKey, baseURL string, settings Settings) *OpenAI {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &OpenAI{
		client:   openai.NewClient(opts...),
		settings: settings.withDefaults(DefaultOpenAIModel),
	}
}

// Complete implements Client. An empty string with a nil error means the
// model produced no content.
func (o *OpenAI) Complete(ctx context.Context, prompt Prompt) (string, error) {
	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.settings.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(prompt.System),
			openai.UserMessage(prompt.User),
		},
		Temperature: openai.Float(o.settings.Temperature),
		MaxTokens:   openai.Int(int64(o.settings.MaxTokens)),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
