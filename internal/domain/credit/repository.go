package credit

import (
	"context"
)

// Repository define a interface para operações de repositório de fiados
type Repository interface {
	// List retorna os fiados da empresa, do mais recente ao mais antigo
	List(ctx context.Context, tenantID string) ([]Entry, error)

	// Add inclui um fiado e grava a coleção reordenada
	Add(ctx context.Context, tenantID string, e Entry) error
}
