package repository

import (
	"context"

	"github.com/hugohenrick/moneywise/internal/domain/product"
	"github.com/hugohenrick/moneywise/pkg/logger"
	"github.com/hugohenrick/moneywise/pkg/storage"
)

// ProductRepository persiste o catálogo de produtos de cada empresa
type ProductRepository struct {
	collectionRepository[product.Product]
}

// NewProductRepository cria uma nova instância do repositório de produtos
func NewProductRepository(kv storage.KeyValue, notifier storage.Notifier, log logger.Logger) product.Repository {
	return &ProductRepository{
		collectionRepository[product.Product]{
			col:  storage.NewCollection[product.Product](kv, storage.ProductsKey, "produtos", notifier, log),
			sort: product.Sort,
		},
	}
}

func (r *ProductRepository) List(ctx context.Context, tenantID string) ([]product.Product, error) {
	return r.list(ctx, tenantID)
}

func (r *ProductRepository) Add(ctx context.Context, tenantID string, p product.Product) error {
	return r.add(ctx, tenantID, p)
}
