package intent

import (
	"context"
	"fmt"

	"github.com/hugohenrick/moneywise/internal/domain/customer"
)

// addCustomer cadastra um novo cliente e leva o usuário à página de clientes
func (r *Router) addCustomer(ctx context.Context, tenantID string, in AddCustomer) *ActionResult {
	return r.guard(tenantID, pageCustomers, func() *ActionResult {
		c, err := customer.NewCustomer(in.Name, in.Phone, in.Email, in.Address, r.now())
		if err != nil {
			return &ActionResult{
				Success: false,
				Message: fmt.Sprintf("Não foi possível cadastrar o cliente: %v.", err),
			}
		}

		r.logger.Info("Iniciando criação de cliente", "name", c.Name, "tenant_id", tenantID)

		if err := r.customers.Add(ctx, tenantID, *c); err != nil {
			r.logger.Error("Erro ao criar cliente", "error", err, "name", c.Name, "tenant_id", tenantID)
			return &ActionResult{
				Success:    false,
				Message:    saveFailedMessage(fmt.Sprintf("o cliente %s", c.Name), pageCustomers),
				NavigateTo: PathCustomers,
			}
		}

		return &ActionResult{
			Success:    true,
			Message:    fmt.Sprintf("Cliente %s (telefone %s) adicionado com sucesso!", c.Name, c.Phone),
			NavigateTo: PathCustomers,
			Data:       map[string]interface{}{"customer_id": c.ID},
		}
	})
}
