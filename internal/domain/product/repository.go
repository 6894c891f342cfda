package product

import (
	"context"
)

// Repository define a interface para operações de repositório de produtos
type Repository interface {
	// List retorna os produtos da empresa, já ordenados
	List(ctx context.Context, tenantID string) ([]Product, error)

	// Add inclui um produto e grava a coleção reordenada
	Add(ctx context.Context, tenantID string, p Product) error
}
