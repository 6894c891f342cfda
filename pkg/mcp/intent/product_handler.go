package intent

import (
	"context"
	"fmt"

	"github.com/hugohenrick/moneywise/internal/domain/product"
)

// addProduct cadastra um produto no catálogo
func (r *Router) addProduct(ctx context.Context, tenantID string, in AddProduct) *ActionResult {
	return r.guard(tenantID, pageProducts, func() *ActionResult {
		p, err := product.NewProduct(in.Name, in.Code, in.Price, in.Category, in.Stock, r.now())
		if err != nil {
			return &ActionResult{
				Success: false,
				Message: fmt.Sprintf("Não foi possível cadastrar o produto: %v.", err),
			}
		}

		if err := r.products.Add(ctx, tenantID, *p); err != nil {
			r.logger.Error("Erro ao cadastrar produto", "error", err, "code", p.Code, "tenant_id", tenantID)
			return &ActionResult{
				Success:    false,
				Message:    saveFailedMessage(fmt.Sprintf("o produto %s", p.Name), pageProducts),
				NavigateTo: PathProducts,
			}
		}

		return &ActionResult{
			Success:    true,
			Message:    fmt.Sprintf("Produto %s (código %s) cadastrado com preço de %s.", p.Name, p.Code, formatCurrency(p.Price)),
			NavigateTo: PathProducts,
			Data:       map[string]interface{}{"product_id": p.ID},
		}
	})
}
