package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/hugohenrick/moneywise/pkg/logger"
)

// Provedores de linguagem suportados
const (
	ProviderRules     = "rules"
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
)

// SourceConfig reúne as opções usadas para escolher o interpretador
type SourceConfig struct {
	Provider        string
	GeminiAPIKey    string
	GeminiModel     string
	AnthropicAPIKey string
	AnthropicModel  string
}

// NewIntentSource cria o interpretador configurado para o provedor
func NewIntentSource(ctx context.Context, cfg SourceConfig, log logger.Logger) (IntentSource, error) {
	provider := strings.ToLower(strings.TrimSpace(cfg.Provider))

	switch provider {
	case "", ProviderRules:
		return NewRuleSource(), nil
	case ProviderGemini:
		return NewGeminiSource(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, log)
	case ProviderAnthropic:
		return NewAnthropicSource(cfg.AnthropicAPIKey, cfg.AnthropicModel, log)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, cfg.Provider)
	}
}
