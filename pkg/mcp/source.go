// Package mcp interpreta comandos em linguagem natural e os converte em
// intenções estruturadas ({action, parameters}) para o roteador de comandos.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrEmptyText       = errors.New("texto do comando vazio")
	ErrEmptyResponse   = errors.New("resposta vazia do modelo")
	ErrInvalidResponse = errors.New("resposta do modelo não é uma intenção válida")
	ErrMissingAPIKey   = errors.New("chave de API não configurada")
	ErrUnknownProvider = errors.New("provedor de linguagem desconhecido")
)

// RawIntent é a intenção como devolvida pelo interpretador.
// Apenas Action é garantida; os parâmetros são validados pelo roteador.
type RawIntent struct {
	Action     string                 `json:"action"`
	Parameters map[string]interface{} `json:"parameters,omitempty"`
}

// ParametersJSON serializa os parâmetros para o roteador. Sem parâmetros retorna "".
func (r *RawIntent) ParametersJSON() string {
	if r == nil || len(r.Parameters) == 0 {
		return ""
	}
	data, err := json.Marshal(r.Parameters)
	if err != nil {
		return ""
	}
	return string(data)
}

// IntentSource converte uma frase em uma intenção estruturada
type IntentSource interface {
	Interpret(ctx context.Context, text string) (*RawIntent, error)
	Name() string
}

// IntentSourceFunc adapta uma função ao contrato de IntentSource
type IntentSourceFunc func(ctx context.Context, text string) (*RawIntent, error)

// Interpret implementa IntentSource
func (f IntentSourceFunc) Interpret(ctx context.Context, text string) (*RawIntent, error) {
	return f(ctx, text)
}

// Name implementa IntentSource
func (f IntentSourceFunc) Name() string { return "func" }

// Closer é implementado pelos interpretadores que mantêm conexões abertas
type Closer interface {
	Close() error
}

func wrapProviderError(provider string, err error) error {
	return fmt.Errorf("erro ao consultar %s: %w", provider, err)
}
