package services

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/danvolchok/budget-tracker-web/internal/config"
)

type openAICleaner struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewOpenAICleaner creates a merchant name cleaner backed by the OpenAI
// chat completion API.
func NewOpenAICleaner(cfg config.SemanticConfig) SemanticCleanerInterface {
	model := cfg.OpenAIModel
	if model == "" {
		model = openai.GPT4oMini
	}
	timeout := cfg.CallTimeout
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &openAICleaner{
		client:  openai.NewClient(cfg.OpenAIAPIKey),
		model:   model,
		timeout: timeout,
	}
}

func (c *openAICleaner) Provider() string {
	return "openai"
}

func (c *openAICleaner) CleanName(ctx context.Context, raw string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0,
		MaxTokens:   maxReplyTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: cleanerSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: raw},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai clean: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai clean: empty response")
	}
	return cleanModelReply(resp.Choices[0].Message.Content), nil
}
