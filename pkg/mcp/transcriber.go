package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/hugohenrick/moneywise/pkg/logger"
	"google.golang.org/api/option"
)

const transcriptionPrompt = "Transcreva exatamente a fala deste áudio no idioma %s. " +
	"Responda somente com o texto transcrito, sem comentários. Se não houver fala, responda com uma linha vazia."

// GeminiTranscriber converte áudio em texto usando o Gemini
type GeminiTranscriber struct {
	client    *genai.Client
	modelName string
	locale    string
	logger    logger.Logger
}

// NewGeminiTranscriber cria uma nova instância de GeminiTranscriber
func NewGeminiTranscriber(ctx context.Context, apiKey, modelName, locale string, log logger.Logger) (*GeminiTranscriber, error) {
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
	if locale == "" {
		locale = "pt-BR"
	}

	return &GeminiTranscriber{client: client, modelName: modelName, locale: locale, logger: log}, nil
}

// Close encerra a conexão com a API
func (t *GeminiTranscriber) Close() error {
	return t.client.Close()
}

// Transcribe envia o áudio e devolve o texto reconhecido
func (t *GeminiTranscriber) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	if len(audio) == 0 {
		return "", ErrEmptyText
	}

	// "audio/webm;codecs=opus" -> "webm"
	format, _, _ := strings.Cut(strings.TrimPrefix(mimeType, "audio/"), ";")
	if format == "" {
		format = "webm"
	}

	model := t.client.GenerativeModel(t.modelName)
	model.SetTemperature(0)

	resp, err := model.GenerateContent(ctx,
		genai.Text(fmt.Sprintf(transcriptionPrompt, t.locale)),
		genai.Blob{MIMEType: "audio/" + format, Data: audio},
	)
	if err != nil {
		return "", wrapProviderError("gemini", err)
	}

	text := strings.TrimSpace(textFromResponse(resp))
	t.logger.Debug("Áudio transcrito", "bytes", len(audio), "text", text)
	return text, nil
}
