package repository

import (
	"context"

	"github.com/hugohenrick/moneywise/internal/domain/customer"
	"github.com/hugohenrick/moneywise/pkg/logger"
	"github.com/hugohenrick/moneywise/pkg/storage"
)

// CustomerRepository persiste os clientes de cada empresa no armazenamento chave-valor
type CustomerRepository struct {
	collectionRepository[customer.Customer]
}

// NewCustomerRepository cria uma nova instância do repositório de clientes
func NewCustomerRepository(kv storage.KeyValue, notifier storage.Notifier, log logger.Logger) customer.Repository {
	return &CustomerRepository{
		collectionRepository[customer.Customer]{
			col:  storage.NewCollection[customer.Customer](kv, storage.CustomersKey, "clientes", notifier, log),
			sort: customer.Sort,
		},
	}
}

// List retorna os clientes ordenados por nome
func (r *CustomerRepository) List(ctx context.Context, tenantID string) ([]customer.Customer, error) {
	return r.list(ctx, tenantID)
}

// Add inclui um cliente
func (r *CustomerRepository) Add(ctx context.Context, tenantID string, c customer.Customer) error {
	return r.add(ctx, tenantID, c)
}
