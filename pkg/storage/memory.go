package storage

import (
	"context"
	"sync"
)

// MemoryKV é um armazenamento chave-valor em memória com cota opcional em bytes
type MemoryKV struct {
	mu    sync.RWMutex
	data  map[string]string
	size  int
	quota int
}

// NewMemoryKV cria um armazenamento em memória. quota <= 0 desativa o limite.
func NewMemoryKV(quota int) *MemoryKV {
	return &MemoryKV{
		data:  make(map[string]string),
		quota: quota,
	}
}

// Get retorna o valor armazenado na chave
func (m *MemoryKV) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.data[key]
	return value, ok, nil
}

// Set grava o valor, respeitando a cota configurada
func (m *MemoryKV) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	newSize := m.size + len(key) + len(value)
	if old, ok := m.data[key]; ok {
		newSize -= len(key) + len(old)
	}
	if m.quota > 0 && newSize > m.quota {
		return ErrQuotaExceeded
	}

	m.data[key] = value
	m.size = newSize
	return nil
}

// Delete remove a chave
func (m *MemoryKV) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if old, ok := m.data[key]; ok {
		m.size -= len(key) + len(old)
		delete(m.data, key)
	}
	return nil
}

// Len retorna a quantidade de chaves armazenadas
func (m *MemoryKV) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
