// Package credit modela as vendas a prazo ("fiados").
package credit

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/hugohenrick/moneywise/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCustomerName = errors.New("nome do cliente não pode ser vazio")
	ErrNegativeAmount    = errors.New("valor não pode ser negativo")
)

// IDPrefix é o prefixo dos identificadores de fiado
const IDPrefix = "fiado_"

// Entry representa uma venda fiada, pendente até ser marcada como paga
type Entry struct {
	ID             string            `json:"id"`
	CustomerName   string            `json:"customerName"`
	Amount         decimal.Decimal   `json:"amount"`
	SaleDate       domain.Timestamp  `json:"saleDate"`
	DueDate        *domain.Timestamp `json:"dueDate,omitempty"`
	WhatsappNumber string            `json:"whatsappNumber,omitempty"`
	Notes          string            `json:"notes,omitempty"`
	Paid           bool              `json:"paid"`
}

// NewEntry cria um fiado não pago com data de venda igual a now
func NewEntry(customerName string, amount decimal.Decimal, now time.Time) (*Entry, error) {
	e := &Entry{
		ID:           domain.NewID(IDPrefix, now),
		CustomerName: strings.TrimSpace(customerName),
		Amount:       amount,
		SaleDate:     domain.NewTimestamp(now),
	}

	if e.CustomerName == "" {
		return nil, ErrEmptyCustomerName
	}
	if amount.IsNegative() {
		return nil, ErrNegativeAmount
	}
	return e, nil
}

// NormalizeTimes converte as datas para a forma canônica de gravação
func (e *Entry) NormalizeTimes() {
	e.SaleDate = e.SaleDate.Canonical()
	if e.DueDate != nil {
		due := e.DueDate.Canonical()
		e.DueDate = &due
	}
}

// Pending indica se o fiado ainda não foi pago
func (e Entry) Pending() bool {
	return !e.Paid
}

// Sort ordena os fiados pela data de venda, do mais recente ao mais antigo.
// Datas inválidas ficam no fim.
func Sort(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i].SaleDate.Time, entries[j].SaleDate.Time
		if !a.Equal(b) {
			return a.After(b)
		}
		return entries[i].ID < entries[j].ID
	})
}

// FindByCustomerName busca um fiado pelo nome exato do cliente, sem diferenciar maiúsculas
func FindByCustomerName(entries []Entry, name string) (*Entry, bool) {
	name = strings.TrimSpace(name)
	for i := range entries {
		if strings.EqualFold(strings.TrimSpace(entries[i].CustomerName), name) {
			return &entries[i], true
		}
	}
	return nil, false
}

// PendingTotals soma os valores e conta os fiados não pagos.
// Fiados com data de venda inválida ficam de fora, sem interromper o cálculo.
func PendingTotals(entries []Entry) (decimal.Decimal, int) {
	total := decimal.Zero
	count := 0
	for _, e := range entries {
		if e.Paid || !e.SaleDate.Valid() {
			continue
		}
		total = total.Add(e.Amount)
		count++
	}
	return total, count
}
