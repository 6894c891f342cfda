package chat

import (
	"context"
)

// Repository define a interface para operações de repositório do histórico de chat.
// O histórico é separado por empresa e usuário.
type Repository interface {
	// SaveMessage acrescenta uma mensagem ao fim do histórico
	SaveMessage(ctx context.Context, tenantID, userID string, message *Message) error

	// GetHistory retorna as últimas limit mensagens, da mais antiga para a mais nova (limit <= 0 retorna todas)
	GetHistory(ctx context.Context, tenantID, userID string, limit int) ([]Message, error)

	// DeleteHistory apaga todo o histórico
	DeleteHistory(ctx context.Context, tenantID, userID string) error

	// CountMessages conta quantas mensagens existem no histórico
	CountMessages(ctx context.Context, tenantID, userID string) (int, error)
}
