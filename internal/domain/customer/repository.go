package customer

import (
	"context"
)

// Repository define a interface para operações de repositório de clientes
type Repository interface {
	// List retorna os clientes da empresa, já ordenados
	List(ctx context.Context, tenantID string) ([]Customer, error)

	// Add inclui um cliente e grava a coleção reordenada
	Add(ctx context.Context, tenantID string, c Customer) error
}
