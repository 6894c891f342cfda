package intent

import "fmt"

// sendReport apenas abre o relatório mensal; o envio é concluído pelo usuário
func sendReport(in SendReport) *ActionResult {
	msg := "Abrindo o Relatório Mensal. De lá você pode compartilhar o relatório pelo WhatsApp."
	if in.WhatsappNumber != "" {
		msg = fmt.Sprintf("Abrindo o Relatório Mensal para envio ao WhatsApp %s. Confira os dados e confirme o envio.", in.WhatsappNumber)
	}

	return &ActionResult{
		Success:    true,
		Message:    msg,
		NavigateTo: PathMonthlyReport,
		Data:       map[string]interface{}{"whatsapp_number": in.WhatsappNumber},
	}
}
