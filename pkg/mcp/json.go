package mcp

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SanitizeJSON remove cercas de markdown (```json ... ```) e espaços da resposta do modelo
func SanitizeJSON(input string) string {
	cleaned := strings.TrimSpace(input)

	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
	}
	cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")

	// texto antes ou depois do objeto
	if start := strings.Index(cleaned, "{"); start > 0 {
		cleaned = cleaned[start:]
	}
	if end := strings.LastIndex(cleaned, "}"); end >= 0 && end < len(cleaned)-1 {
		cleaned = cleaned[:end+1]
	}

	return strings.TrimSpace(cleaned)
}

// ParseIntent converte a resposta textual do modelo em RawIntent
func ParseIntent(output string) (*RawIntent, error) {
	cleaned := SanitizeJSON(output)
	if cleaned == "" {
		return nil, ErrEmptyResponse
	}

	var raw struct {
		Action     string          `json:"action"`
		Parameters json.RawMessage `json:"parameters"`
	}
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if strings.TrimSpace(raw.Action) == "" {
		return nil, fmt.Errorf("%w: campo action ausente", ErrInvalidResponse)
	}

	intent := &RawIntent{Action: strings.TrimSpace(raw.Action)}

	// parâmetros que não formam um objeto são descartados; o roteador trata a ausência
	if len(raw.Parameters) > 0 {
		var params map[string]interface{}
		if err := json.Unmarshal(raw.Parameters, &params); err == nil {
			intent.Parameters = params
		}
	}
	return intent, nil
}
