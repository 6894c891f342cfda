package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/hugohenrick/moneywise/pkg/logger"
	"google.golang.org/api/option"
)

const defaultGeminiModel = "gemini-1.5-flash"

// GeminiSource interpreta comandos usando a API do Google Gemini
type GeminiSource struct {
	client    *genai.Client
	modelName string
	logger    logger.Logger
	now       func() time.Time
}

// NewGeminiSource cria uma nova instância de GeminiSource
func NewGeminiSource(ctx context.Context, apiKey, modelName string, log logger.Logger) (*GeminiSource, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY: %w", ErrMissingAPIKey)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar cliente gemini: %w", err)
	}

	if modelName == "" {
		modelName = defaultGeminiModel
	}

	return &GeminiSource{
		client:    client,
		modelName: modelName,
		logger:    log,
		now:       time.Now,
	}, nil
}

// Name implementa IntentSource
func (g *GeminiSource) Name() string { return "gemini" }

// Close encerra a conexão com a API
func (g *GeminiSource) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

// Interpret envia o comando ao modelo e interpreta a resposta JSON
func (g *GeminiSource) Interpret(ctx context.Context, text string) (*RawIntent, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}

	// o modelo é montado a cada chamada porque as instruções incluem a data atual
	model := g.client.GenerativeModel(g.modelName)
	model.ResponseMIMEType = "application/json"
	model.SetTemperature(0)
	model.SystemInstruction = genai.NewUserContent(genai.Text(SystemPrompt(g.now())))

	resp, err := model.GenerateContent(ctx, genai.Text(text))
	if err != nil {
		return nil, wrapProviderError("gemini", err)
	}

	output := textFromResponse(resp)
	g.logger.Debug("Resposta do gemini", "output", output)

	intent, err := ParseIntent(output)
	if err != nil {
		g.logger.Warn("Resposta do gemini não interpretada", "error", err, "output", output)
		return nil, err
	}
	return intent, nil
}

func textFromResponse(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	return b.String()
}
