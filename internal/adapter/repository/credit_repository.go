package repository

import (
	"context"

	"github.com/hugohenrick/moneywise/internal/domain/credit"
	"github.com/hugohenrick/moneywise/pkg/logger"
	"github.com/hugohenrick/moneywise/pkg/storage"
)

// CreditRepository persiste os fiados de cada empresa
type CreditRepository struct {
	collectionRepository[credit.Entry]
}

// NewCreditRepository cria uma nova instância do repositório de fiados
func NewCreditRepository(kv storage.KeyValue, notifier storage.Notifier, log logger.Logger) credit.Repository {
	return &CreditRepository{
		collectionRepository[credit.Entry]{
			col:  storage.NewCollection[credit.Entry](kv, storage.CreditKey, "fiados", notifier, log),
			sort: credit.Sort,
		},
	}
}

func (r *CreditRepository) List(ctx context.Context, tenantID string) ([]credit.Entry, error) {
	return r.list(ctx, tenantID)
}

func (r *CreditRepository) Add(ctx context.Context, tenantID string, e credit.Entry) error {
	return r.add(ctx, tenantID, e)
}
