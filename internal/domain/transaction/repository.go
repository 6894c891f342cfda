package transaction

import (
	"context"
)

// Repository define a interface para operações de repositório de lançamentos
type Repository interface {
	// List retorna os lançamentos da empresa, do mais recente ao mais antigo
	List(ctx context.Context, tenantID string) ([]Transaction, error)

	// Add inclui um lançamento e grava a coleção reordenada
	Add(ctx context.Context, tenantID string, t Transaction) error
}
