package customer

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/hugohenrick/moneywise/internal/domain"
)

var (
	ErrEmptyName  = errors.New("nome não pode ser vazio")
	ErrEmptyPhone = errors.New("telefone não pode ser vazio")
)

// IDPrefix é o prefixo dos identificadores de cliente
const IDPrefix = "cust_"

// Customer representa um cliente da empresa
type Customer struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Phone     string           `json:"phone"`
	Email     string           `json:"email,omitempty"`
	Address   string           `json:"address,omitempty"`
	CreatedAt domain.Timestamp `json:"createdAt"`
}

// NewCustomer cria um novo cliente com identificador gerado
func NewCustomer(name, phone, email, address string, now time.Time) (*Customer, error) {
	c := &Customer{
		ID:        domain.NewID(IDPrefix, now),
		Name:      strings.TrimSpace(name),
		Phone:     strings.TrimSpace(phone),
		Email:     strings.TrimSpace(email),
		Address:   strings.TrimSpace(address),
		CreatedAt: domain.NewTimestamp(now),
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate verifica os campos obrigatórios
func (c *Customer) Validate() error {
	if c.Name == "" {
		return ErrEmptyName
	}
	if c.Phone == "" {
		return ErrEmptyPhone
	}
	return nil
}

// NormalizeTimes converte as datas para a forma canônica de gravação
func (c *Customer) NormalizeTimes() {
	c.CreatedAt = c.CreatedAt.Canonical()
}

// Sort ordena os clientes por nome (sem diferenciar maiúsculas), desempatando pelo ID
func Sort(customers []Customer) {
	sort.SliceStable(customers, func(i, j int) bool {
		a, b := strings.ToLower(customers[i].Name), strings.ToLower(customers[j].Name)
		if a != b {
			return a < b
		}
		return customers[i].ID < customers[j].ID
	})
}

// FindByName busca um cliente pelo nome exato, sem diferenciar maiúsculas
func FindByName(customers []Customer, name string) (*Customer, bool) {
	name = strings.TrimSpace(name)
	for i := range customers {
		if strings.EqualFold(strings.TrimSpace(customers[i].Name), name) {
			return &customers[i], true
		}
	}
	return nil, false
}
