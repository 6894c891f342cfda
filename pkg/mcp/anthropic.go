package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hugohenrick/moneywise/pkg/logger"
)

const (
	anthropicAPIEndpoint  = "https://api.anthropic.com/v1/messages"
	anthropicVersion      = "2023-06-01"
	defaultAnthropicModel = "claude-3-5-haiku-latest"
)

// Message representa uma mensagem no formato da API da Anthropic
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messageRequest struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	Messages    []Message `json:"messages"`
	System      string    `json:"system,omitempty"`
	Temperature float64   `json:"temperature"`
}

type messageResponse struct {
	ID      string `json:"id"`
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Model      string `json:"model"`
	StopReason string `json:"stop_reason"`
	Usage      struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

// AnthropicSource interpreta comandos usando a API de mensagens da Anthropic
type AnthropicSource struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
	logger   logger.Logger
	now      func() time.Time
}

// NewAnthropicSource cria uma nova instância de AnthropicSource
func NewAnthropicSource(apiKey, model string, log logger.Logger) (*AnthropicSource, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY: %w", ErrMissingAPIKey)
	}
	if model == "" {
		model = defaultAnthropicModel
	}

	return &AnthropicSource{
		apiKey:   apiKey,
		model:    model,
		endpoint: anthropicAPIEndpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
		logger:   log,
		now:      time.Now,
	}, nil
}

// WithEndpoint substitui o endereço da API
func (a *AnthropicSource) WithEndpoint(endpoint string) *AnthropicSource {
	a.endpoint = endpoint
	return a
}

// Name implementa IntentSource
func (a *AnthropicSource) Name() string { return "anthropic" }

// Interpret envia o comando ao modelo e interpreta a resposta JSON
func (a *AnthropicSource) Interpret(ctx context.Context, text string) (*RawIntent, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}

	reqBody := messageRequest{
		Model:     a.model,
		MaxTokens: 512,
		Messages:  []Message{{Role: "user", Content: text}},
		System:    SystemPrompt(a.now()),
	}

	reqJSON, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar requisição: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, bytes.NewReader(reqJSON))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar requisição: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-API-Key", a.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, wrapProviderError("anthropic", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		a.logger.Error("API retornou erro", "status", resp.Status, "body", string(respBody))
		return nil, wrapProviderError("anthropic", fmt.Errorf("status %s", resp.Status))
	}

	var apiResp messageResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	var output strings.Builder
	for _, content := range apiResp.Content {
		if content.Type == "text" {
			output.WriteString(content.Text)
		}
	}

	a.logger.Debug("Resposta da anthropic",
		"model", apiResp.Model,
		"input_tokens", apiResp.Usage.InputTokens,
		"output_tokens", apiResp.Usage.OutputTokens)

	return ParseIntent(output.String())
}
