package dto

import (
	"encoding/json"

	"github.com/hugohenrick/moneywise/pkg/assistant"
	"github.com/hugohenrick/moneywise/pkg/chat"
	"github.com/hugohenrick/moneywise/pkg/storage"
)

// MessageRequest representa um comando digitado
type MessageRequest struct {
	Text string `json:"text" binding:"required" example:"Adicionar cliente João Silva, telefone (11) 91234-5678"`
}

// VoiceRequest representa um comando já transcrito pelo cliente
type VoiceRequest struct {
	Transcript string `json:"transcript" binding:"required" example:"Ir para fiados"`
}

// CommandRequest representa uma intenção já estruturada
type CommandRequest struct {
	Action     string          `json:"action" binding:"required" example:"initiateAddCreditEntry"`
	Parameters json.RawMessage `json:"parameters,omitempty" swaggertype:"object"`
}

// ParametersJSON retorna os parâmetros como texto JSON ("" quando ausentes)
func (r CommandRequest) ParametersJSON() string {
	if len(r.Parameters) == 0 || string(r.Parameters) == "null" {
		return ""
	}
	return string(r.Parameters)
}

// ReplyResponse representa a resposta do assistente a uma interação
type ReplyResponse struct {
	UserMessage      *chat.Message          `json:"user_message,omitempty"`
	AssistantMessage *chat.Message          `json:"assistant_message"`
	Action           string                 `json:"action,omitempty"`
	Success          bool                   `json:"success"`
	NavigateTo       string                 `json:"navigate_to,omitempty"`
	Data             map[string]interface{} `json:"data,omitempty"`
	Notifications    []storage.Notification `json:"notifications,omitempty"`
}

// HistoryResponse representa o histórico da conversa
type HistoryResponse struct {
	Messages []chat.Message `json:"messages"`
	Count    int            `json:"count"`
}

// NewReplyResponse converte a resposta do assistente
func NewReplyResponse(reply *assistant.Reply) ReplyResponse {
	return ReplyResponse{
		UserMessage:      reply.UserMessage,
		AssistantMessage: reply.AssistantMessage,
		Action:           reply.Action,
		Success:          reply.Success,
		NavigateTo:       reply.NavigateTo,
		Data:             reply.Data,
		Notifications:    reply.Notifications,
	}
}

// NewHistoryResponse cria a resposta do histórico
func NewHistoryResponse(messages []chat.Message) HistoryResponse {
	if messages == nil {
		messages = []chat.Message{}
	}
	return HistoryResponse{Messages: messages, Count: len(messages)}
}
