package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxExecutor é o subconjunto do pgxpool.Pool usado pelo PostgresKV
type PgxExecutor interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresKV implementa KeyValue sobre a tabela kv_store
type PostgresKV struct {
	db PgxExecutor
}

// NewPostgresKV cria uma nova instância de PostgresKV
func NewPostgresKV(db PgxExecutor) *PostgresKV {
	return &PostgresKV{db: db}
}

// Get busca o valor da chave
func (p *PostgresKV) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := p.db.QueryRow(ctx, `SELECT value FROM kv_store WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("erro ao buscar chave %s: %w", key, err)
	}
	return value, true, nil
}

// Set grava (ou substitui) o valor da chave
func (p *PostgresKV) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`
	if _, err := p.db.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("erro ao gravar chave %s: %w", key, err)
	}
	return nil
}

// Delete remove a chave
func (p *PostgresKV) Delete(ctx context.Context, key string) error {
	if _, err := p.db.Exec(ctx, `DELETE FROM kv_store WHERE key = $1`, key); err != nil {
		return fmt.Errorf("erro ao remover chave %s: %w", key, err)
	}
	return nil
}
