package intent

import (
	"time"

	"github.com/hugohenrick/moneywise/internal/domain/transaction"
	"github.com/shopspring/decimal"
)

// ActionResult representa o resultado de uma ação executada pelo sistema
type ActionResult struct {
	// Sucesso ou falha da operação
	Success bool `json:"success"`

	// Mensagem para o usuário
	Message string `json:"message"`

	// Página para onde o host deve navegar (vazio quando não há navegação)
	NavigateTo string `json:"navigate_to,omitempty"`

	// Nome da ação recebida
	Action string `json:"action,omitempty"`

	// Dados adicionais (depende da ação)
	Data map[string]interface{} `json:"data,omitempty"`

	// ID da operação (para auditoria)
	OperationID string `json:"operation_id,omitempty"`
}

// Intent é uma intenção já validada, pronta para execução.
// As variantes possíveis são os tipos deste arquivo.
type Intent interface {
	isIntent()
}

// Navigate leva o usuário a uma página fixa
type Navigate struct {
	Path    string
	Message string
}

// Metric identifica uma consulta de indicador
type Metric int

const (
	MetricTotalRevenue Metric = iota
	MetricTotalCustomers
	MetricTotalAmountDue
	MetricPendingCreditEntries
	MetricLowStockProducts
)

// Query consulta um indicador
type Query struct {
	Metric Metric
}

// AddCustomer cadastra um cliente
type AddCustomer struct {
	Name    string
	Phone   string
	Email   string
	Address string
}

// AddCreditEntry registra um fiado
type AddCreditEntry struct {
	CustomerName   string
	Amount         decimal.Decimal
	DueDate        *time.Time
	InvalidDueDate string // data de vencimento informada mas inválida
	WhatsappNumber string
	Notes          string
}

// AddTransaction registra um lançamento no caderno
type AddTransaction struct {
	Description string
	Amount      decimal.Decimal
	Type        transaction.Type
}

// AddProduct cadastra um produto
type AddProduct struct {
	Name     string
	Code     string
	Price    decimal.Decimal
	Category string
	Stock    string
}

// Entity identifica a coleção alvo de uma busca
type Entity int

const (
	EntityCustomer Entity = iota
	EntityProduct
	EntityTransaction
	EntityCreditEntry
)

// Operation identifica o que o usuário pretende fazer com a entidade encontrada
type Operation int

const (
	OperationEdit Operation = iota
	OperationDelete
)

// Lookup localiza uma entidade para edição ou exclusão, sem alterar dados
type Lookup struct {
	Entity    Entity
	Operation Operation
	Term      string
}

// SendReport abre o relatório mensal para envio
type SendReport struct {
	WhatsappNumber string
}

// MissingFields indica que faltam parâmetros obrigatórios para a ação
type MissingFields struct {
	Action  string
	Fields  []string
	Example string
}

// Unknown é o comando não reconhecido pelo interpretador
type Unknown struct{}

// Unimplemented é uma ação fora da tabela conhecida
type Unimplemented struct {
	Action string
}

func (Navigate) isIntent()       {}
func (Query) isIntent()          {}
func (AddCustomer) isIntent()    {}
func (AddCreditEntry) isIntent() {}
func (AddTransaction) isIntent() {}
func (AddProduct) isIntent()     {}
func (Lookup) isIntent()         {}
func (SendReport) isIntent()     {}
func (MissingFields) isIntent()  {}
func (Unknown) isIntent()        {}
func (Unimplemented) isIntent()  {}
