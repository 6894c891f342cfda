package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hugohenrick/moneywise/pkg/logger"
)

// LoadStatus descreve o resultado de uma leitura de coleção
type LoadStatus int

const (
	// LoadOK indica que a coleção armazenada foi lida
	LoadOK LoadStatus = iota
	// LoadDefaulted indica que a chave não existia
	LoadDefaulted
	// LoadCorrupted indica que o valor armazenado era inválido e foi descartado
	LoadCorrupted
	// LoadReadFailed indica falha do substrato na leitura
	LoadReadFailed
	// LoadNoKey indica que não havia empresa ativa
	LoadNoKey
)

func (s LoadStatus) String() string {
	switch s {
	case LoadOK:
		return "loaded"
	case LoadDefaulted:
		return "defaulted"
	case LoadCorrupted:
		return "corrupted_reset"
	case LoadReadFailed:
		return "read_failed"
	case LoadNoKey:
		return "no_key"
	}
	return "unknown"
}

// SaveStatus descreve o resultado de uma gravação de coleção
type SaveStatus int

const (
	SaveOK SaveStatus = iota
	SaveFailed
	SaveNoKey
)

func (s SaveStatus) String() string {
	switch s {
	case SaveOK:
		return "saved"
	case SaveFailed:
		return "write_failed"
	case SaveNoKey:
		return "no_key"
	}
	return "unknown"
}

// TimeNormalizer é implementado por entidades com campos de data
// que precisam ser convertidos para a forma canônica antes de gravar.
type TimeNormalizer interface {
	NormalizeTimes()
}

// Collection lê e grava a coleção inteira de uma entidade por empresa.
//
// Toda alteração é leitura-modificação-gravação da coleção completa, sem
// trava nem controle de versão: duas sessões gravando a mesma empresa ao
// mesmo tempo resultam em "a última gravação vence".
type Collection[T any] struct {
	kv       KeyValue
	baseKey  string
	entity   string
	notifier Notifier
	logger   logger.Logger
}

// NewCollection cria um acessor para a coleção baseKey. entity é o nome
// lógico usado nas notificações (ex: "clientes").
func NewCollection[T any](kv KeyValue, baseKey, entity string, notifier Notifier, log logger.Logger) *Collection[T] {
	return &Collection[T]{
		kv:       kv,
		baseKey:  baseKey,
		entity:   entity,
		notifier: notifier,
		logger:   log,
	}
}

// Entity retorna o nome lógico da coleção
func (c *Collection[T]) Entity() string {
	return c.entity
}

// Load retorna a coleção armazenada ou def quando ausente ou inválida.
// Um valor corrompido é removido e gera uma notificação de erro de dados.
func (c *Collection[T]) Load(ctx context.Context, tenantID string, def []T) ([]T, LoadStatus) {
	key, ok := TenantKey(c.baseKey, tenantID)
	if !ok {
		return def, LoadNoKey
	}

	raw, found, err := c.kv.Get(ctx, key)
	if err != nil {
		c.logger.Error("Erro ao ler coleção", "entity", c.entity, "key", key, "error", err)
		return def, LoadReadFailed
	}
	if !found {
		return def, LoadDefaulted
	}

	items, err := decodeList[T](raw)
	if err != nil {
		c.logger.Warn("Coleção corrompida descartada", "entity", c.entity, "key", key, "error", err)
		if delErr := c.kv.Delete(ctx, key); delErr != nil {
			c.logger.Error("Erro ao remover coleção corrompida", "entity", c.entity, "key", key, "error", delErr)
		}
		c.notify(ctx, Notification{
			Kind:    KindDataError,
			Entity:  c.entity,
			Message: fmt.Sprintf("Os dados de %s estavam corrompidos e foram reiniciados.", c.entity),
		})
		return def, LoadCorrupted
	}

	return items, LoadOK
}

// Save grava a coleção inteira. SaveFailed significa que a alteração não persistiu.
func (c *Collection[T]) Save(ctx context.Context, tenantID string, items []T) SaveStatus {
	key, ok := TenantKey(c.baseKey, tenantID)
	if !ok {
		return SaveNoKey
	}

	normalized := make([]T, len(items))
	copy(normalized, items)
	for i := range normalized {
		if n, ok := any(&normalized[i]).(TimeNormalizer); ok {
			n.NormalizeTimes()
		}
	}

	payload, err := json.Marshal(normalized)
	if err == nil {
		err = c.kv.Set(ctx, key, string(payload))
	}
	if err != nil {
		c.logger.Error("Erro ao gravar coleção", "entity", c.entity, "key", key, "error", err)
		c.notify(ctx, Notification{
			Kind:    KindSaveError,
			Entity:  c.entity,
			Message: fmt.Sprintf("Não foi possível salvar os dados de %s. O armazenamento pode estar cheio.", c.entity),
		})
		return SaveFailed
	}

	return SaveOK
}

// Clear remove a coleção da empresa
func (c *Collection[T]) Clear(ctx context.Context, tenantID string) SaveStatus {
	key, ok := TenantKey(c.baseKey, tenantID)
	if !ok {
		return SaveNoKey
	}
	if err := c.kv.Delete(ctx, key); err != nil {
		c.logger.Error("Erro ao remover coleção", "entity", c.entity, "key", key, "error", err)
		return SaveFailed
	}
	return SaveOK
}

func (c *Collection[T]) notify(ctx context.Context, n Notification) {
	if c.notifier != nil {
		c.notifier.Notify(n)
	}
	if reqNotifier := NotifierFromContext(ctx); reqNotifier != nil {
		reqNotifier.Notify(n)
	}
}

// decodeList aceita apenas uma lista JSON
func decodeList[T any](raw string) ([]T, error) {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "[") {
		return nil, fmt.Errorf("valor armazenado não é uma lista")
	}

	var items []T
	if err := json.Unmarshal([]byte(trimmed), &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}
