package repository

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/hugohenrick/moneywise/pkg/chat"
	"github.com/hugohenrick/moneywise/pkg/logger"
	"github.com/hugohenrick/moneywise/pkg/storage"
)

// ChatRepository guarda o histórico do assistente por empresa e usuário
type ChatRepository struct {
	col *storage.Collection[chat.Message]
}

// NewChatRepository cria uma nova instância do repositório de chat
func NewChatRepository(kv storage.KeyValue, notifier storage.Notifier, log logger.Logger) chat.Repository {
	return &ChatRepository{
		col: storage.NewCollection[chat.Message](kv, storage.ChatKey, "conversa", notifier, log),
	}
}

// scope combina empresa e usuário na parte variável da chave. O usuário é
// escapado e nunca contém "/", então cada par gera uma chave distinta.
func scope(tenantID, userID string) (string, error) {
	if strings.TrimSpace(tenantID) == "" {
		return "", storage.ErrNoTenant
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		userID = "default"
	}
	return tenantID + "/" + url.PathEscape(userID), nil
}

func (r *ChatRepository) load(ctx context.Context, tenantID, userID string) (string, []chat.Message, error) {
	s, err := scope(tenantID, userID)
	if err != nil {
		return "", nil, err
	}

	messages, status := r.col.Load(ctx, s, []chat.Message{})
	if status == storage.LoadReadFailed {
		return "", nil, fmt.Errorf("erro ao carregar histórico: %w", storage.ErrReadFailed)
	}
	return s, messages, nil
}

// SaveMessage acrescenta a mensagem ao fim do histórico
func (r *ChatRepository) SaveMessage(ctx context.Context, tenantID, userID string, message *chat.Message) error {
	s, messages, err := r.load(ctx, tenantID, userID)
	if err != nil {
		return err
	}

	// Se o ID da mensagem estiver vazio, gerar um novo
	if message.ID == "" {
		*message = *chat.NewMessage(message.Sender, message.Text, message.Timestamp)
	}
	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now()
	}

	messages = append(messages, *message)
	if r.col.Save(ctx, s, messages) != storage.SaveOK {
		return fmt.Errorf("erro ao salvar mensagem: %w", storage.ErrWriteFailed)
	}
	return nil
}

// GetHistory retorna as últimas mensagens em ordem cronológica
func (r *ChatRepository) GetHistory(ctx context.Context, tenantID, userID string, limit int) ([]chat.Message, error) {
	_, messages, err := r.load(ctx, tenantID, userID)
	if err != nil {
		return nil, err
	}

	if limit > 0 && len(messages) > limit {
		messages = messages[len(messages)-limit:]
	}
	return messages, nil
}

// DeleteHistory apaga o histórico do usuário
func (r *ChatRepository) DeleteHistory(ctx context.Context, tenantID, userID string) error {
	s, err := scope(tenantID, userID)
	if err != nil {
		return err
	}
	if r.col.Clear(ctx, s) != storage.SaveOK {
		return fmt.Errorf("erro ao apagar histórico: %w", storage.ErrWriteFailed)
	}
	return nil
}

// CountMessages conta as mensagens do histórico
func (r *ChatRepository) CountMessages(ctx context.Context, tenantID, userID string) (int, error) {
	_, messages, err := r.load(ctx, tenantID, userID)
	if err != nil {
		return 0, err
	}
	return len(messages), nil
}
