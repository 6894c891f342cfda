package intent

// Páginas da aplicação
const (
	PathDashboard     = "/dashboard"
	PathCustomers     = "/clientes"
	PathSales         = "/vendas"
	PathProducts      = "/produtos"
	PathCreditEntries = "/fiados"
	PathSalesHistory  = "/historico-vendas"
	PathMonthlyReport = "/relatorio-mensal"
	PathSettings      = "/configuracoes"
	PathNotebook      = "/caderno"
)

// Nomes das ações, como enviados pelo interpretador de linguagem natural
const (
	ActionNavigateToDashboard     = "navigateToDashboard"
	ActionNavigateToCustomers     = "navigateToCustomers"
	ActionNavigateToSales         = "navigateToSales"
	ActionNavigateToProducts      = "navigateToProducts"
	ActionNavigateToCreditEntries = "navigateToCreditEntries"
	ActionNavigateToFiados        = "navigateToFiados"
	ActionNavigateToSalesHistory  = "navigateToSalesHistory"
	ActionNavigateToMonthlyReport = "navigateToMonthlyReport"
	ActionNavigateToSettings      = "navigateToSettings"
	ActionNavigateToNotebook      = "navigateToNotebook"
	ActionShowKpis                = "showKpis"

	ActionQueryTotalRevenue         = "queryTotalRevenue"
	ActionQueryTotalCustomers       = "queryTotalCustomers"
	ActionQueryTotalAmountDue       = "queryTotalAmountDue"
	ActionQueryPendingCreditEntries = "queryPendingCreditEntries"
	ActionQueryLowStockProducts     = "queryLowStockProducts"

	ActionAddCustomer    = "initiateAddCustomer"
	ActionAddCreditEntry = "initiateAddCreditEntry"
	ActionAddTransaction = "initiateAddTransaction"
	ActionAddProduct     = "initiateAddProduct"

	ActionEditCustomer      = "initiateEditCustomer"
	ActionDeleteCustomer    = "initiateDeleteCustomer"
	ActionEditProduct       = "initiateEditProduct"
	ActionDeleteProduct     = "initiateDeleteProduct"
	ActionEditTransaction   = "initiateEditTransaction"
	ActionDeleteTransaction = "initiateDeleteTransaction"
	ActionEditCreditEntry   = "initiateEditCreditEntry"
	ActionDeleteCreditEntry = "initiateDeleteCreditEntry"

	ActionSendReport = "sendReport"

	ActionUnknown        = "unknown"
	ActionUnknownCommand = "unknownCommand"
)

// navigation associa cada ação de navegação à página e à mensagem de confirmação
var navigation = map[string]Navigate{
	"navigatetodashboard":     {Path: PathDashboard, Message: "Abrindo o Dashboard."},
	"navigatetocustomers":     {Path: PathCustomers, Message: "Abrindo a página de Clientes."},
	"navigatetosales":         {Path: PathSales, Message: "Abrindo a página de Vendas."},
	"navigatetoproducts":      {Path: PathProducts, Message: "Abrindo a página de Produtos."},
	"navigatetocreditentries": {Path: PathCreditEntries, Message: "Abrindo a página de Fiados."},
	"navigatetofiados":        {Path: PathCreditEntries, Message: "Abrindo a página de Fiados."},
	"navigatetosaleshistory":  {Path: PathSalesHistory, Message: "Abrindo o Histórico de Vendas."},
	"navigatetomonthlyreport": {Path: PathMonthlyReport, Message: "Abrindo o Relatório Mensal."},
	"navigatetosettings":      {Path: PathSettings, Message: "Abrindo as Configurações."},
	"navigatetonotebook":      {Path: PathNotebook, Message: "Abrindo o Caderno de Caixa."},
	"showkpis":                {Path: PathDashboard, Message: "Aqui estão os principais indicadores do seu negócio no Dashboard."},
}

var queries = map[string]Metric{
	"querytotalrevenue":         MetricTotalRevenue,
	"querytotalcustomers":       MetricTotalCustomers,
	"querytotalamountdue":       MetricTotalAmountDue,
	"querypendingcreditentries": MetricPendingCreditEntries,
	"querylowstockproducts":     MetricLowStockProducts,
}

var lookups = map[string]Lookup{
	"initiateeditcustomer":      {Entity: EntityCustomer, Operation: OperationEdit},
	"initiatedeletecustomer":    {Entity: EntityCustomer, Operation: OperationDelete},
	"initiateeditproduct":       {Entity: EntityProduct, Operation: OperationEdit},
	"initiatedeleteproduct":     {Entity: EntityProduct, Operation: OperationDelete},
	"initiateedittransaction":   {Entity: EntityTransaction, Operation: OperationEdit},
	"initiatedeletetransaction": {Entity: EntityTransaction, Operation: OperationDelete},
	"initiateeditcreditentry":   {Entity: EntityCreditEntry, Operation: OperationEdit},
	"initiatedeletecreditentry": {Entity: EntityCreditEntry, Operation: OperationDelete},
}

// NavigationActions retorna as ações de navegação conhecidas e a página de cada uma
func NavigationActions() map[string]string {
	out := make(map[string]string, len(navigation))
	for action, nav := range navigation {
		out[action] = nav.Path
	}
	return out
}

// KnownActions lista todas as ações da tabela, no formato enviado pelo interpretador
func KnownActions() []string {
	return []string{
		ActionNavigateToDashboard, ActionNavigateToCustomers, ActionNavigateToSales,
		ActionNavigateToProducts, ActionNavigateToCreditEntries, ActionNavigateToSalesHistory,
		ActionNavigateToMonthlyReport, ActionNavigateToSettings, ActionNavigateToNotebook,
		ActionShowKpis,
		ActionQueryTotalRevenue, ActionQueryTotalCustomers, ActionQueryTotalAmountDue,
		ActionQueryPendingCreditEntries, ActionQueryLowStockProducts,
		ActionAddCustomer, ActionAddCreditEntry, ActionAddTransaction, ActionAddProduct,
		ActionEditCustomer, ActionDeleteCustomer, ActionEditProduct, ActionDeleteProduct,
		ActionEditTransaction, ActionDeleteTransaction, ActionEditCreditEntry, ActionDeleteCreditEntry,
		ActionSendReport, ActionUnknownCommand,
	}
}
