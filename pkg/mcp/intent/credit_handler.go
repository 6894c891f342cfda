package intent

import (
	"context"
	"fmt"
	"strings"

	"github.com/hugohenrick/moneywise/internal/domain"
	"github.com/hugohenrick/moneywise/internal/domain/credit"
)

// addCreditEntry registra um fiado não pago com data de venda igual a agora
func (r *Router) addCreditEntry(ctx context.Context, tenantID string, in AddCreditEntry) *ActionResult {
	return r.guard(tenantID, pageCreditEntries, func() *ActionResult {
		entry, err := credit.NewEntry(in.CustomerName, in.Amount, r.now())
		if err != nil {
			return &ActionResult{
				Success: false,
				Message: fmt.Sprintf("Não foi possível registrar o fiado: %v.", err),
			}
		}
		entry.WhatsappNumber = in.WhatsappNumber
		entry.Notes = in.Notes
		if in.DueDate != nil {
			due := domain.NewTimestamp(*in.DueDate)
			entry.DueDate = &due
		}

		if err := r.credits.Add(ctx, tenantID, *entry); err != nil {
			r.logger.Error("Erro ao registrar fiado", "error", err, "customer", entry.CustomerName, "tenant_id", tenantID)
			return &ActionResult{
				Success:    false,
				Message:    saveFailedMessage(fmt.Sprintf("o fiado de %s", entry.CustomerName), pageCreditEntries),
				NavigateTo: PathCreditEntries,
			}
		}

		var msg strings.Builder
		fmt.Fprintf(&msg, "Fiado de %s para %s registrado com sucesso!", formatCurrency(entry.Amount), entry.CustomerName)
		if entry.DueDate != nil {
			fmt.Fprintf(&msg, " Vencimento em %s.", entry.DueDate.Format("02/01/2006"))
		}
		if in.InvalidDueDate != "" {
			r.logger.Warn("Data de vencimento inválida ignorada", "due_date", in.InvalidDueDate)
			fmt.Fprintf(&msg, " Atenção: a data de vencimento informada (%s) é inválida e foi ignorada.", in.InvalidDueDate)
		}

		return &ActionResult{
			Success:    true,
			Message:    msg.String(),
			NavigateTo: PathCreditEntries,
			Data:       map[string]interface{}{"credit_entry_id": entry.ID},
		}
	})
}
