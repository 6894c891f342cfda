package chat

import (
	"time"

	"github.com/google/uuid"
)

// Sender identifica o autor de uma mensagem
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Message representa uma mensagem no histórico do chat
type Message struct {
	ID        string    `json:"id"`
	Sender    Sender    `json:"sender"`
	Text      string    `json:"text,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NewMessage cria uma mensagem com ID ordenado pelo tempo (UUIDv7)
func NewMessage(sender Sender, text string, now time.Time) *Message {
	return &Message{
		ID:        newID(),
		Sender:    sender,
		Text:      text,
		Timestamp: now,
	}
}

// NormalizeTimes converte o horário para UTC, em milissegundos, antes da gravação
func (m *Message) NormalizeTimes() {
	m.Timestamp = m.Timestamp.UTC().Truncate(time.Millisecond)
}

func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
