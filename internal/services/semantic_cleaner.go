package services

import (
	"fmt"
	"strings"

	"github.com/danvolchok/budget-tracker-web/internal/config"
)

// cleanerSystemPrompt instructs the model to answer with a bare merchant
// name. The reply still goes through cleanModelReply in case the model
// ignores the formatting rules.
const cleanerSystemPrompt = "You clean raw bank statement merchant strings into canonical merchant names. " +
	"Reply with ONLY the merchant name: no quotes, no code fences, no explanation. " +
	"Examples: SQ *BLUE BOTTLE COFFEE -> Blue Bottle Coffee; AMZN MKTP CA*2B4 -> Amazon."

// maxReplyTokens caps the completion; merchant names are short.
const maxReplyTokens = 40

// NewSemanticCleaner builds the configured provider. A nil cleaner with a
// nil error means semantic cleaning is switched off.
func NewSemanticCleaner(cfg config.SemanticConfig) (SemanticCleanerInterface, error) {
	switch cfg.Provider {
	case config.SemanticProviderOpenAI:
		return NewOpenAICleaner(cfg), nil
	case config.SemanticProviderGemini:
		return NewGeminiCleaner(cfg), nil
	case config.SemanticProviderNone:
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown semantic provider: %s", cfg.Provider)
	}
}

// cleanModelReply strips the wrappers models add despite instructions:
// Markdown fences, surrounding quotes, trailing commentary lines.
func cleanModelReply(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		}
		if idx := strings.LastIndex(s, "```"); idx != -1 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	if idx := strings.Index(s, "\n"); idx != -1 {
		s = s[:idx]
	}

	s = strings.Trim(s, "\"'`")
	return strings.TrimSpace(s)
}
