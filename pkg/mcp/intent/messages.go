package intent

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Mensagens fixas do roteador
const (
	MsgNoTenant = "Por favor, faça login para que eu possa acessar os dados da sua empresa."

	MsgInvalidParameters = "Desculpe, não consegui entender os detalhes do seu comando. Pode repetir de outra forma?"

	MsgUnknownCommand = "Desculpe, não entendi o que você quer fazer. Você pode tentar, por exemplo:\n" +
		"- \"Ir para clientes\"\n" +
		"- \"Qual o faturamento total?\"\n" +
		"- \"Adicionar cliente João Silva, telefone (11) 91234-5678\"\n" +
		"- \"Registrar fiado de R$ 50 para Maria\"\n" +
		"- \"Quantos produtos estão com estoque baixo?\""

	MsgUnexpectedError = "Desculpe, ocorreu um erro inesperado ao processar seu comando. Por favor, tente novamente."
)

// page descreve uma página pelo caminho e pelo nome exibido ao usuário
type page struct {
	path  string
	label string
}

var (
	pageCustomers     = page{PathCustomers, "Clientes"}
	pageProducts      = page{PathProducts, "Produtos"}
	pageCreditEntries = page{PathCreditEntries, "Fiados"}
	pageNotebook      = page{PathNotebook, "Caderno de Caixa"}
)

// formatCurrency formata um valor como moeda (R$ 1234.50)
func formatCurrency(amount decimal.Decimal) string {
	return "R$ " + amount.StringFixed(2)
}

func missingFieldsMessage(in MissingFields) string {
	return fmt.Sprintf("Para %s, preciso dos seguintes dados: %s. Por exemplo: %s.",
		in.Action, strings.Join(in.Fields, ", "), in.Example)
}

func unimplementedMessage(action string) string {
	return fmt.Sprintf("Ação \"%s\" recebida, mas ainda não está implementada.", action)
}

func queryErrorMessage(p page) string {
	return fmt.Sprintf("Desculpe, não consegui obter essa informação agora. Por favor, confira diretamente na página de %s.", p.label)
}

func saveFailedMessage(what string, p page) string {
	return fmt.Sprintf("Não consegui salvar %s diretamente. Por favor, adicione manualmente na página de %s.", what, p.label)
}
