package intent

import (
	"context"
	"fmt"

	"github.com/hugohenrick/moneywise/internal/domain/transaction"
)

// addTransaction registra uma receita ou despesa no caderno de caixa
func (r *Router) addTransaction(ctx context.Context, tenantID string, in AddTransaction) *ActionResult {
	return r.guard(tenantID, pageNotebook, func() *ActionResult {
		tx, err := transaction.NewTransaction(in.Description, in.Amount, in.Type, r.now())
		if err != nil {
			return &ActionResult{
				Success: false,
				Message: fmt.Sprintf("Não foi possível registrar o lançamento: %v.", err),
			}
		}

		if err := r.transactions.Add(ctx, tenantID, *tx); err != nil {
			r.logger.Error("Erro ao registrar lançamento", "error", err, "description", tx.Description, "tenant_id", tenantID)
			return &ActionResult{
				Success:    false,
				Message:    saveFailedMessage(fmt.Sprintf("o lançamento \"%s\"", tx.Description), pageNotebook),
				NavigateTo: PathNotebook,
			}
		}

		kind := "Receita"
		if tx.Type == transaction.TypeExpense {
			kind = "Despesa"
		}
		return &ActionResult{
			Success:    true,
			Message:    fmt.Sprintf("%s \"%s\" de %s registrada no Caderno de Caixa.", kind, tx.Description, formatCurrency(tx.Amount)),
			NavigateTo: PathNotebook,
			Data:       map[string]interface{}{"transaction_id": tx.ID},
		}
	})
}
