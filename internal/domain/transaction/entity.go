// Package transaction modela os lançamentos do caderno de caixa.
package transaction

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/hugohenrick/moneywise/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyDescription = errors.New("descrição não pode ser vazia")
	ErrInvalidType      = errors.New("tipo deve ser income ou expense")
)

// IDPrefix é o prefixo dos identificadores de lançamento
const IDPrefix = "txn_"

// Type define se o lançamento é entrada ou saída
type Type string

const (
	TypeIncome  Type = "income"  // Receita
	TypeExpense Type = "expense" // Despesa
)

// ParseType normaliza o tipo do lançamento, aceitando os sinônimos em português
func ParseType(value string) (Type, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "income", "receita", "entrada":
		return TypeIncome, true
	case "expense", "despesa", "saída", "saida":
		return TypeExpense, true
	}
	return "", false
}

// Transaction representa um lançamento do caderno
type Transaction struct {
	ID          string           `json:"id"`
	Description string           `json:"description"`
	Amount      decimal.Decimal  `json:"amount"`
	Type        Type             `json:"type"`
	Date        domain.Timestamp `json:"date"`
}

// NewTransaction cria um lançamento datado em now
func NewTransaction(description string, amount decimal.Decimal, t Type, now time.Time) (*Transaction, error) {
	tx := &Transaction{
		ID:          domain.NewID(IDPrefix, now),
		Description: strings.TrimSpace(description),
		Amount:      amount,
		Type:        t,
		Date:        domain.NewTimestamp(now),
	}

	if tx.Description == "" {
		return nil, ErrEmptyDescription
	}
	if t != TypeIncome && t != TypeExpense {
		return nil, ErrInvalidType
	}
	return tx, nil
}

// NormalizeTimes converte as datas para a forma canônica de gravação
func (t *Transaction) NormalizeTimes() {
	t.Date = t.Date.Canonical()
}

// Sort ordena os lançamentos pela data, do mais recente ao mais antigo
func Sort(txs []Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		a, b := txs[i].Date.Time, txs[j].Date.Time
		if !a.Equal(b) {
			return a.After(b)
		}
		return txs[i].ID < txs[j].ID
	})
}

// FindByDescription busca o primeiro lançamento cuja descrição contém o termo
func FindByDescription(txs []Transaction, term string) (*Transaction, bool) {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil, false
	}
	for i := range txs {
		if strings.Contains(strings.ToLower(txs[i].Description), term) {
			return &txs[i], true
		}
	}
	return nil, false
}

// TotalRevenue soma as receitas com data válida
func TotalRevenue(txs []Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txs {
		if t.Type == TypeIncome && t.Date.Valid() {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// TotalExpenses soma as despesas com data válida
func TotalExpenses(txs []Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txs {
		if t.Type == TypeExpense && t.Date.Valid() {
			total = total.Add(t.Amount)
		}
	}
	return total
}
