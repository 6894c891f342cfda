package product

import (
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/hugohenrick/moneywise/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName     = errors.New("nome do produto não pode ser vazio")
	ErrEmptyCode     = errors.New("código do produto não pode ser vazio")
	ErrNegativePrice = errors.New("preço não pode ser negativo")
)

const (
	// IDPrefix é o prefixo dos identificadores de produto
	IDPrefix = "prod_"

	// LowStockThreshold é o estoque máximo considerado baixo
	LowStockThreshold = 5
)

// Product representa um produto do catálogo
type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Code     string          `json:"code"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category,omitempty"`
	Stock    string          `json:"stock,omitempty"` // numérico em texto, como digitado
}

// NewProduct cria um novo produto com identificador gerado
func NewProduct(name, code string, price decimal.Decimal, category, stock string, now time.Time) (*Product, error) {
	p := &Product{
		ID:       domain.NewID(IDPrefix, now),
		Name:     strings.TrimSpace(name),
		Code:     strings.TrimSpace(code),
		Price:    price,
		Category: strings.TrimSpace(category),
		Stock:    strings.TrimSpace(stock),
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate verifica os campos obrigatórios
func (p *Product) Validate() error {
	if p.Name == "" {
		return ErrEmptyName
	}
	if p.Code == "" {
		return ErrEmptyCode
	}
	if p.Price.IsNegative() {
		return ErrNegativePrice
	}
	return nil
}

// StockLevel interpreta o estoque como inteiro. Estoque ausente ou não numérico não é informado.
func (p Product) StockLevel() (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(p.Stock))
	if err != nil {
		return 0, false
	}
	return n, true
}

// IsLowStock indica se o estoque está entre 1 e LowStockThreshold
func (p Product) IsLowStock() bool {
	n, ok := p.StockLevel()
	return ok && n > 0 && n <= LowStockThreshold
}

// Sort ordena os produtos por nome, desempatando pelo ID
func Sort(products []Product) {
	sort.SliceStable(products, func(i, j int) bool {
		a, b := strings.ToLower(products[i].Name), strings.ToLower(products[j].Name)
		if a != b {
			return a < b
		}
		return products[i].ID < products[j].ID
	})
}

// FindByNameOrCode busca um produto pelo nome ou pelo código, sem diferenciar maiúsculas
func FindByNameOrCode(products []Product, term string) (*Product, bool) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, false
	}
	for i := range products {
		if strings.EqualFold(products[i].Name, term) || strings.EqualFold(products[i].Code, term) {
			return &products[i], true
		}
	}
	return nil, false
}
