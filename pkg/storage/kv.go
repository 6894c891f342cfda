// Package storage implementa o acesso às coleções de cada empresa (tenant)
// sobre um armazenamento chave-valor injetado.
package storage

import (
	"context"
	"errors"
	"regexp"
	"strings"
)

// Erros comuns relacionados ao armazenamento
var (
	// ErrNoTenant ocorre quando não há empresa ativa para derivar a chave
	ErrNoTenant = errors.New("nenhuma empresa ativa")

	// ErrReadFailed ocorre quando o substrato falha ao ler a coleção
	ErrReadFailed = errors.New("falha ao ler do armazenamento")

	// ErrWriteFailed ocorre quando a coleção não pôde ser persistida
	ErrWriteFailed = errors.New("falha ao gravar no armazenamento")

	// ErrQuotaExceeded ocorre quando o armazenamento atingiu o limite de espaço
	ErrQuotaExceeded = errors.New("limite de armazenamento excedido")
)

// KeyValue define o substrato de persistência chave-valor
type KeyValue interface {
	// Get retorna o valor da chave e se ela existe
	Get(ctx context.Context, key string) (string, bool, error)

	// Set grava o valor sob a chave
	Set(ctx context.Context, key, value string) error

	// Delete remove a chave
	Delete(ctx context.Context, key string) error
}

// Chaves base das coleções
const (
	CustomersKey    = "moneywise_customers"
	ProductsKey     = "moneywise_products"
	CreditKey       = "moneywise_fiados"
	TransactionsKey = "moneywise_transactions"
	ChatKey         = "moneywise_chat"
)

var whitespace = regexp.MustCompile(`\s+`)

// TenantKey deriva a chave de uma coleção para a empresa informada.
// Sem empresa ativa não existe chave.
func TenantKey(base, tenantID string) (string, bool) {
	if strings.TrimSpace(tenantID) == "" {
		return "", false
	}
	return base + "_" + whitespace.ReplaceAllString(tenantID, "_"), true
}
