package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"google.golang.org/genai"

	"github.com/danvolchok/budget-tracker-web/internal/config"
)

type geminiCleaner struct {
	apiKey  string
	model   string
	timeout time.Duration

	mu     sync.Mutex
	client *genai.Client
}

// NewGeminiCleaner creates a merchant name cleaner backed by the Gemini
// API. The underlying client is built lazily because construction needs a
// context.
func NewGeminiCleaner(cfg config.SemanticConfig) SemanticCleanerInterface {
	model := cfg.GeminiModel
	if model == "" {
		model = "gemini-2.0-flash"
	}
	timeout := cfg.CallTimeout
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &geminiCleaner{
		apiKey:  cfg.GeminiAPIKey,
		model:   model,
		timeout: timeout,
	}
}

func (c *geminiCleaner) Provider() string {
	return "gemini"
}

func (c *geminiCleaner) CleanName(ctx context.Context, raw string) (string, error) {
	client, err := c.ensureClient(ctx)
	if err != nil {
		return "", fmt.Errorf("gemini client: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	prompt := cleanerSystemPrompt + "\n\nRaw merchant: " + raw
	resp, err := client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini clean: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("gemini clean: empty response")
	}
	return cleanModelReply(text), nil
}

func (c *geminiCleaner) ensureClient(ctx context.Context) (*genai.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil {
		return c.client, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      c.apiKey,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, err
	}
	c.client = client
	return client, nil
}
