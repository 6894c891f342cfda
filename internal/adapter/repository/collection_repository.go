package repository

import (
	"context"
	"fmt"

	"github.com/hugohenrick/moneywise/pkg/storage"
)

// collectionRepository concentra a leitura-modificação-gravação comum a todas as entidades
type collectionRepository[T any] struct {
	col  *storage.Collection[T]
	sort func([]T)
}

func (r *collectionRepository[T]) list(ctx context.Context, tenantID string) ([]T, error) {
	items, status := r.col.Load(ctx, tenantID, []T{})
	switch status {
	case storage.LoadNoKey:
		return nil, storage.ErrNoTenant
	case storage.LoadReadFailed:
		return nil, fmt.Errorf("erro ao carregar %s: %w", r.col.Entity(), storage.ErrReadFailed)
	}
	return items, nil
}

func (r *collectionRepository[T]) add(ctx context.Context, tenantID string, item T) error {
	items, err := r.list(ctx, tenantID)
	if err != nil {
		return err
	}

	items = append(items, item)
	r.sort(items)

	switch r.col.Save(ctx, tenantID, items) {
	case storage.SaveNoKey:
		return storage.ErrNoTenant
	case storage.SaveFailed:
		return fmt.Errorf("erro ao salvar %s: %w", r.col.Entity(), storage.ErrWriteFailed)
	}
	return nil
}
