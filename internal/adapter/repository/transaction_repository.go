package repository

import (
	"context"

	"github.com/hugohenrick/moneywise/internal/domain/transaction"
	"github.com/hugohenrick/moneywise/pkg/logger"
	"github.com/hugohenrick/moneywise/pkg/storage"
)

// TransactionRepository persiste os lançamentos do caderno de cada empresa
type TransactionRepository struct {
	collectionRepository[transaction.Transaction]
}

// NewTransactionRepository cria uma nova instância do repositório de lançamentos
func NewTransactionRepository(kv storage.KeyValue, notifier storage.Notifier, log logger.Logger) transaction.Repository {
	return &TransactionRepository{
		collectionRepository[transaction.Transaction]{
			col:  storage.NewCollection[transaction.Transaction](kv, storage.TransactionsKey, "lançamentos", notifier, log),
			sort: transaction.Sort,
		},
	}
}

func (r *TransactionRepository) List(ctx context.Context, tenantID string) ([]transaction.Transaction, error) {
	return r.list(ctx, tenantID)
}

func (r *TransactionRepository) Add(ctx context.Context, tenantID string, t transaction.Transaction) error {
	return r.add(ctx, tenantID, t)
}
