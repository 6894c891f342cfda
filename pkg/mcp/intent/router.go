package intent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/moneywise/internal/domain/credit"
	"github.com/hugohenrick/moneywise/internal/domain/customer"
	"github.com/hugohenrick/moneywise/internal/domain/product"
	"github.com/hugohenrick/moneywise/internal/domain/transaction"
	"github.com/hugohenrick/moneywise/pkg/logger"
)

// Router executa as intenções estruturadas sobre os dados de cada empresa.
// Não guarda estado entre chamadas e não serializa execuções.
type Router struct {
	customers    customer.Repository
	products     product.Repository
	credits      credit.Repository
	transactions transaction.Repository

	logger logger.Logger
	now    func() time.Time
}

// NewRouter cria uma nova instância do roteador de comandos
func NewRouter(
	customers customer.Repository,
	products product.Repository,
	credits credit.Repository,
	transactions transaction.Repository,
	log logger.Logger,
) *Router {
	return &Router{
		customers:    customers,
		products:     products,
		credits:      credits,
		transactions: transactions,
		logger:       log,
		now:          time.Now,
	}
}

// WithClock substitui o relógio usado nas datas geradas
func (r *Router) WithClock(now func() time.Time) *Router {
	r.now = now
	return r
}

// Execute interpreta e executa uma ação. Sempre retorna um resultado com
// mensagem para o usuário; nenhum erro ou pânico ultrapassa este método.
func (r *Router) Execute(ctx context.Context, tenantID, action, parametersJSON string) (result *ActionResult) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("Pânico ao executar ação", "action", action, "tenant_id", tenantID, "panic", fmt.Sprint(rec))
			result = &ActionResult{Success: false, Message: MsgUnexpectedError, Action: action}
		}
		if result != nil {
			result.OperationID = uuid.New().String()
		}
	}()

	r.logger.Info("Executando ação", "action", action, "tenant_id", tenantID)

	if strings.TrimSpace(tenantID) == "" {
		return &ActionResult{Success: false, Message: MsgNoTenant, Action: action}
	}

	params, err := DecodeParameters(parametersJSON)
	if err != nil {
		r.logger.Warn("Parâmetros inválidos", "action", action, "error", err)
		return &ActionResult{Success: false, Message: MsgInvalidParameters, Action: action}
	}

	result = r.dispatch(ctx, tenantID, Parse(action, params))
	result.Action = action
	return result
}

// dispatch executa a variante já validada
func (r *Router) dispatch(ctx context.Context, tenantID string, in Intent) *ActionResult {
	switch v := in.(type) {
	case Navigate:
		return &ActionResult{Success: true, Message: v.Message, NavigateTo: v.Path}
	case Query:
		return r.query(ctx, tenantID, v)
	case AddCustomer:
		return r.addCustomer(ctx, tenantID, v)
	case AddCreditEntry:
		return r.addCreditEntry(ctx, tenantID, v)
	case AddTransaction:
		return r.addTransaction(ctx, tenantID, v)
	case AddProduct:
		return r.addProduct(ctx, tenantID, v)
	case Lookup:
		return r.lookup(ctx, tenantID, v)
	case SendReport:
		return sendReport(v)
	case MissingFields:
		return &ActionResult{Success: false, Message: missingFieldsMessage(v)}
	case Unknown:
		return &ActionResult{Success: false, Message: MsgUnknownCommand}
	case Unimplemented:
		r.logger.Warn("Ação não implementada", "action", v.Action)
		return &ActionResult{Success: false, Message: unimplementedMessage(v.Action)}
	}

	return &ActionResult{Success: false, Message: MsgUnexpectedError}
}

// failure registra o erro interno e devolve uma mensagem que orienta o usuário para a página
func (r *Router) failure(err error, tenantID string, p page) *ActionResult {
	r.logger.Error("Erro ao executar ação", "error", err, "tenant_id", tenantID)
	return &ActionResult{Success: false, Message: queryErrorMessage(p)}
}
