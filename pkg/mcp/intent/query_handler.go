package intent

import (
	"context"
	"fmt"

	"github.com/hugohenrick/moneywise/internal/domain/credit"
	"github.com/hugohenrick/moneywise/internal/domain/product"
	"github.com/hugohenrick/moneywise/internal/domain/transaction"
)

// guard converte um pânico do ramo em mensagem que orienta o usuário para a página
func (r *Router) guard(tenantID string, p page, fn func() *ActionResult) (result *ActionResult) {
	defer func() {
		if rec := recover(); rec != nil {
			result = r.failure(fmt.Errorf("pânico: %v", rec), tenantID, p)
		}
	}()
	return fn()
}

// query calcula um indicador a partir da coleção correspondente
func (r *Router) query(ctx context.Context, tenantID string, q Query) *ActionResult {
	switch q.Metric {
	case MetricTotalRevenue:
		return r.guard(tenantID, pageNotebook, func() *ActionResult {
			txs, err := r.transactions.List(ctx, tenantID)
			if err != nil {
				return r.failure(err, tenantID, pageNotebook)
			}
			total := transaction.TotalRevenue(txs)
			return &ActionResult{
				Success: true,
				Message: fmt.Sprintf("O faturamento total registrado é de %s.", formatCurrency(total)),
				Data:    map[string]interface{}{"total": total.StringFixed(2)},
			}
		})

	case MetricTotalCustomers:
		return r.guard(tenantID, pageCustomers, func() *ActionResult {
			customers, err := r.customers.List(ctx, tenantID)
			if err != nil {
				return r.failure(err, tenantID, pageCustomers)
			}
			return &ActionResult{
				Success: true,
				Message: fmt.Sprintf("Você tem %d cliente(s) cadastrado(s).", len(customers)),
				Data:    map[string]interface{}{"count": len(customers)},
			}
		})

	case MetricTotalAmountDue, MetricPendingCreditEntries:
		return r.guard(tenantID, pageCreditEntries, func() *ActionResult {
			entries, err := r.credits.List(ctx, tenantID)
			if err != nil {
				return r.failure(err, tenantID, pageCreditEntries)
			}
			total, count := credit.PendingTotals(entries)
			if q.Metric == MetricTotalAmountDue {
				return &ActionResult{
					Success: true,
					Message: fmt.Sprintf("O total a receber em fiados pendentes é de %s.", formatCurrency(total)),
					Data:    map[string]interface{}{"total": total.StringFixed(2)},
				}
			}
			return &ActionResult{
				Success: true,
				Message: fmt.Sprintf("Há %d fiado(s) pendente(s) de pagamento.", count),
				Data:    map[string]interface{}{"count": count},
			}
		})

	case MetricLowStockProducts:
		return r.guard(tenantID, pageProducts, func() *ActionResult {
			products, err := r.products.List(ctx, tenantID)
			if err != nil {
				return r.failure(err, tenantID, pageProducts)
			}
			count := 0
			for _, p := range products {
				if p.IsLowStock() {
					count++
				}
			}
			return &ActionResult{
				Success: true,
				Message: fmt.Sprintf("Há %d produto(s) com estoque baixo (até %d unidades).", count, product.LowStockThreshold),
				Data:    map[string]interface{}{"count": count},
			}
		})
	}

	return &ActionResult{Success: false, Message: MsgUnexpectedError}
}
