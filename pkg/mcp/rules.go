package mcp

import (
	"context"
	"regexp"
	"strings"

	"github.com/hugohenrick/moneywise/pkg/mcp/intent"
)

const (
	verbAdd    = `(?:cadastr[aeo]r?|cri[ae]r?|adiciona?r?|inserir?|registr[aeo]r?|anot[ae]r?|lan[cç][ae]r?)`
	verbEdit   = `(?:atualiz[ae]r?|edit[ae]r?|modific[ae]r?|alter[ae]r?|mud[ae]r?)`
	verbDelete = `(?:exclu[ií]r?|exclua|delet[ae]r?|apag[ae]r?|remov[ae]r?)`
	money      = `(?:r\$\s*)?\d+(?:[.,]\d+)*`
	phone      = `\+?[\d\s()\-]{8,}`
	date       = `\d{1,2}/\d{1,2}/\d{4}|\d{4}-\d{2}-\d{2}`
)

// rule associa um padrão a uma ação e aos parâmetros capturados por nome
type rule struct {
	action  string
	pattern *regexp.Regexp
}

// RuleSource interpreta comandos em português com expressões regulares,
// sem depender de um modelo de linguagem externo.
type RuleSource struct {
	rules      []rule
	navigation []navigationRule
}

type navigationRule struct {
	keywords []string
	action   string
}

// NewRuleSource cria uma nova instância de RuleSource
func NewRuleSource() *RuleSource {
	return &RuleSource{
		rules: []rule{
			{intent.ActionAddCustomer, regexp.MustCompile(
				`(?i)^` + verbAdd + `\s+(?:um\s+|uma\s+)?(?:nov[oa]\s+)?cliente\s*:?\s+(?P<customerName>[^,]+?)` +
					`(?:,?\s+(?:telefone|tel|fone|celular|whatsapp)\s*:?\s*(?P<phone>` + phone + `))?` +
					`(?:,?\s+(?:e-?mail)\s*:?\s*(?P<email>[^\s,]+@[^\s,]+))?` +
					`(?:,?\s+(?:endere[cç]o)\s*:?\s*(?P<address>.+?))?\s*$`)},

			{intent.ActionAddCreditEntry, regexp.MustCompile(
				`(?i)^` + verbAdd + `\s+(?:um\s+)?fiado\s+(?:de\s+)?(?P<amount>` + money + `)\s+(?:para|pra|pro|do|da|de)\s+(?P<customerName>[^,]+?)` +
					`(?:,?\s+(?:com\s+)?(?:vencimento|vence|vencendo)\s+(?:em\s+|dia\s+)?(?P<dueDate>` + date + `))?\s*$`)},

			{intent.ActionAddTransaction, regexp.MustCompile(
				`(?i)^` + verbAdd + `\s+(?:uma\s+)?(?P<type>receita|despesa|entrada|sa[ií]da)\s+(?:de\s+)?(?P<amount>` + money + `)` +
					`(?:\s+(?:com\s+a\s+descri[cç][aã]o|descri[cç][aã]o|referente\s+a|de|com|para|por)\s*:?\s+(?P<description>.+?))?\s*$`)},

			{intent.ActionAddProduct, regexp.MustCompile(
				`(?i)^` + verbAdd + `\s+(?:um\s+)?(?:novo\s+)?produto\s*:?\s+(?P<productName>[^,]+?)` +
					`(?:,?\s+c[oó]digo\s*:?\s*(?P<productCode>[^\s,]+))?` +
					`(?:,?\s+pre[cç]o\s*:?\s*(?:de\s+)?(?P<price>` + money + `))?` +
					`(?:,?\s+categoria\s*:?\s*(?P<category>[^,]+?))?` +
					`(?:,?\s+estoque\s*:?\s*(?:de\s+)?(?P<stock>\d+))?\s*$`)},

			{intent.ActionEditCustomer, regexp.MustCompile(`(?i)^` + verbEdit + `\s+(?:o\s+|a\s+)?cliente\s+(?P<customerName>.+?)\s*$`)},
			{intent.ActionDeleteCustomer, regexp.MustCompile(`(?i)^` + verbDelete + `\s+(?:o\s+|a\s+)?cliente\s+(?P<customerName>.+?)\s*$`)},
			{intent.ActionEditProduct, regexp.MustCompile(`(?i)^` + verbEdit + `\s+(?:o\s+)?produto\s+(?P<productName>.+?)\s*$`)},
			{intent.ActionDeleteProduct, regexp.MustCompile(`(?i)^` + verbDelete + `\s+(?:o\s+)?produto\s+(?P<productName>.+?)\s*$`)},
			{intent.ActionEditCreditEntry, regexp.MustCompile(`(?i)^` + verbEdit + `\s+(?:o\s+)?fiado\s+(?:de\s+|do\s+|da\s+)?(?P<customerName>.+?)\s*$`)},
			{intent.ActionDeleteCreditEntry, regexp.MustCompile(`(?i)^` + verbDelete + `\s+(?:o\s+)?fiado\s+(?:de\s+|do\s+|da\s+)?(?P<customerName>.+?)\s*$`)},
			{intent.ActionEditTransaction, regexp.MustCompile(`(?i)^` + verbEdit + `\s+(?:o\s+)?lan[cç]amento\s+(?P<description>.+?)\s*$`)},
			{intent.ActionDeleteTransaction, regexp.MustCompile(`(?i)^` + verbDelete + `\s+(?:o\s+)?lan[cç]amento\s+(?P<description>.+?)\s*$`)},

			{intent.ActionSendReport, regexp.MustCompile(
				`(?i)envi[ae]r?\s+(?:o\s+)?relat[oó]rio(?:.*?(?P<whatsappNumber>` + phone + `))?\s*$`)},

			{intent.ActionQueryPendingCreditEntries, regexp.MustCompile(`(?i)quant[oa]s\s+fiados|fiados\s+pendentes|fiados\s+em\s+aberto`)},
			{intent.ActionQueryTotalAmountDue, regexp.MustCompile(`(?i)a\s+receber|total\s+(?:d[eo]s?\s+)?fiados?|quanto\s+(?:me\s+)?devem`)},
			{intent.ActionQueryTotalCustomers, regexp.MustCompile(`(?i)quantos\s+clientes|total\s+de\s+clientes|n[uú]mero\s+de\s+clientes`)},
			{intent.ActionQueryLowStockProducts, regexp.MustCompile(`(?i)estoque\s+baixo|pouco\s+estoque|produtos?\s+acabando`)},
			{intent.ActionQueryTotalRevenue, regexp.MustCompile(`(?i)faturamento|receita\s+total|total\s+de\s+receitas?|quanto\s+(?:eu\s+)?(?:faturei|vendi|ganhei)`)},
			{intent.ActionShowKpis, regexp.MustCompile(`(?i)\bkpis?\b|indicadores|resumo\s+do\s+neg[oó]cio`)},
		},
		// ordem importa: "histórico de vendas" antes de "vendas"
		navigation: []navigationRule{
			{[]string{"histórico", "historico"}, intent.ActionNavigateToSalesHistory},
			{[]string{"relatório", "relatorio"}, intent.ActionNavigateToMonthlyReport},
			{[]string{"caderno", "caixa"}, intent.ActionNavigateToNotebook},
			{[]string{"configura", "ajuste"}, intent.ActionNavigateToSettings},
			{[]string{"fiado"}, intent.ActionNavigateToCreditEntries},
			{[]string{"cliente"}, intent.ActionNavigateToCustomers},
			{[]string{"produto", "estoque"}, intent.ActionNavigateToProducts},
			{[]string{"venda"}, intent.ActionNavigateToSales},
			{[]string{"dashboard", "painel", "início", "inicio"}, intent.ActionNavigateToDashboard},
		},
	}
}

var navigationVerb = regexp.MustCompile(`(?i)^(?:ir|v[aá]|vai|abr[aei]r?|mostr[ae]r?|ver|acess[ae]r?|naveg[ae]r?|leve-me|me\s+leve)(?:\s|$)`)

// Name implementa IntentSource
func (s *RuleSource) Name() string { return "rules" }

// Interpret implementa IntentSource. Frases sem correspondência resultam em unknownCommand.
func (s *RuleSource) Interpret(_ context.Context, text string) (*RawIntent, error) {
	text = strings.TrimSpace(strings.TrimRight(strings.TrimSpace(text), ".!?"))
	if text == "" {
		return nil, ErrEmptyText
	}

	for _, r := range s.rules {
		match := r.pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		return &RawIntent{Action: r.action, Parameters: namedGroups(r.pattern, match)}, nil
	}

	if navigationVerb.MatchString(text) {
		lower := strings.ToLower(text)
		for _, nav := range s.navigation {
			for _, keyword := range nav.keywords {
				if strings.Contains(lower, keyword) {
					return &RawIntent{Action: nav.action}, nil
				}
			}
		}
	}

	return &RawIntent{Action: intent.ActionUnknownCommand}, nil
}

// namedGroups devolve os grupos nomeados que capturaram algum texto
func namedGroups(pattern *regexp.Regexp, match []string) map[string]interface{} {
	params := make(map[string]interface{})
	for i, name := range pattern.SubexpNames() {
		if i == 0 || name == "" {
			continue
		}
		if value := strings.TrimSpace(match[i]); value != "" {
			params[name] = value
		}
	}
	if len(params) == 0 {
		return nil
	}
	return params
}
