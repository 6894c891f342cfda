package intent

import (
	"context"
	"fmt"

	"github.com/hugohenrick/moneywise/internal/domain/credit"
	"github.com/hugohenrick/moneywise/internal/domain/customer"
	"github.com/hugohenrick/moneywise/internal/domain/product"
	"github.com/hugohenrick/moneywise/internal/domain/transaction"
)

// lookupTarget descreve como cada entidade é apresentada nas mensagens de busca
type lookupTarget struct {
	page    page
	article string
}

var lookupTargets = map[Entity]lookupTarget{
	EntityCustomer:    {page: pageCustomers, article: "o cliente"},
	EntityProduct:     {page: pageProducts, article: "o produto"},
	EntityTransaction: {page: pageNotebook, article: "o lançamento"},
	EntityCreditEntry: {page: pageCreditEntries, article: "o fiado de"},
}

// lookup apenas confirma se a entidade existe e leva o usuário à página.
// Edição e exclusão nunca são executadas a partir de um comando em linguagem natural.
func (r *Router) lookup(ctx context.Context, tenantID string, in Lookup) *ActionResult {
	target := lookupTargets[in.Entity]

	return r.guard(tenantID, target.page, func() *ActionResult {
		label, found, err := r.find(ctx, tenantID, in)
		if err != nil {
			result := r.failure(err, tenantID, target.page)
			result.NavigateTo = target.page.path
			return result
		}

		if !found {
			return &ActionResult{
				Success:    false,
				Message:    fmt.Sprintf("Não encontrei %s \"%s\". Verifique o identificador informado na página de %s.", target.article, in.Term, target.page.label),
				NavigateTo: target.page.path,
			}
		}

		verb := "editar"
		if in.Operation == OperationDelete {
			verb = "excluir"
		}
		return &ActionResult{
			Success:    true,
			Message:    fmt.Sprintf("Encontrei %s %s. Para %s, conclua a operação na página de %s.", target.article, label, verb, target.page.label),
			NavigateTo: target.page.path,
		}
	})
}

// find procura a entidade e retorna o nome usado na mensagem
func (r *Router) find(ctx context.Context, tenantID string, in Lookup) (string, bool, error) {
	if in.Term == "" {
		return "", false, nil
	}

	switch in.Entity {
	case EntityCustomer:
		list, err := r.customers.List(ctx, tenantID)
		if err != nil {
			return "", false, err
		}
		if c, ok := customer.FindByName(list, in.Term); ok {
			return c.Name, true, nil
		}

	case EntityProduct:
		list, err := r.products.List(ctx, tenantID)
		if err != nil {
			return "", false, err
		}
		if p, ok := product.FindByNameOrCode(list, in.Term); ok {
			return fmt.Sprintf("%s (código %s)", p.Name, p.Code), true, nil
		}

	case EntityTransaction:
		list, err := r.transactions.List(ctx, tenantID)
		if err != nil {
			return "", false, err
		}
		if t, ok := transaction.FindByDescription(list, in.Term); ok {
			return fmt.Sprintf("\"%s\"", t.Description), true, nil
		}

	case EntityCreditEntry:
		list, err := r.credits.List(ctx, tenantID)
		if err != nil {
			return "", false, err
		}
		if e, ok := credit.FindByCustomerName(list, in.Term); ok {
			return fmt.Sprintf("%s no valor de %s", e.CustomerName, formatCurrency(e.Amount)), true, nil
		}
	}

	return "", false, nil
}
