package storage

import (
	"context"
	"sync"

	"github.com/hugohenrick/moneywise/pkg/logger"
)

// Kind identifica o tipo de notificação de armazenamento
type Kind string

const (
	KindDataError Kind = "data_error"
	KindSaveError Kind = "save_error"
)

// Notification é um aviso ao usuário sobre o estado de uma coleção
type Notification struct {
	Kind    Kind   `json:"kind"`
	Entity  string `json:"entity"`
	Message string `json:"message"`
}

// Key identifica a notificação para deduplicação pelo host
func (n Notification) Key() string {
	return string(n.Kind) + ":" + n.Entity
}

// Notifier recebe notificações de erro de carga e gravação
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapta uma função para Notifier
type NotifierFunc func(n Notification)

// Notify implementa Notifier
func (f NotifierFunc) Notify(n Notification) { f(n) }

// LogNotifier registra as notificações no log
type LogNotifier struct {
	logger logger.Logger
}

// NewLogNotifier cria uma nova instância de LogNotifier
func NewLogNotifier(log logger.Logger) *LogNotifier {
	return &LogNotifier{logger: log}
}

// Notify implementa Notifier
func (l *LogNotifier) Notify(n Notification) {
	l.logger.Warn("Notificação de armazenamento", "kind", string(n.Kind), "entity", n.Entity, "message", n.Message)
}

// Buffer acumula as notificações de uma requisição, descartando repetidas pela chave
type Buffer struct {
	mu    sync.RWMutex
	seen  map[string]struct{}
	items []Notification
}

// NewBuffer cria um Buffer vazio
func NewBuffer() *Buffer {
	return &Buffer{seen: make(map[string]struct{})}
}

// Notify implementa Notifier
func (b *Buffer) Notify(n Notification) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, dup := b.seen[n.Key()]; dup {
		return
	}
	b.seen[n.Key()] = struct{}{}
	b.items = append(b.items, n)
}

// Notifications retorna uma cópia das notificações acumuladas
func (b *Buffer) Notifications() []Notification {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]Notification, len(b.items))
	copy(out, b.items)
	return out
}

type notifierKey struct{}

// WithNotifier associa um Notifier ao contexto da requisição
func WithNotifier(ctx context.Context, n Notifier) context.Context {
	return context.WithValue(ctx, notifierKey{}, n)
}

// NotifierFromContext obtém o Notifier associado ao contexto, se houver
func NotifierFromContext(ctx context.Context) Notifier {
	if n, ok := ctx.Value(notifierKey{}).(Notifier); ok {
		return n
	}
	return nil
}
