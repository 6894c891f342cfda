package intent

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hugohenrick/moneywise/internal/adapter/repository"
	"github.com/hugohenrick/moneywise/internal/domain/credit"
	"github.com/hugohenrick/moneywise/internal/domain/customer"
	"github.com/hugohenrick/moneywise/internal/domain/product"
	"github.com/hugohenrick/moneywise/internal/domain/transaction"
	"github.com/hugohenrick/moneywise/pkg/logger"
	"github.com/hugohenrick/moneywise/pkg/storage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tenantID = "Mercadinho da Ana"

type routerFixture struct {
	router       *Router
	kv           *storage.MemoryKV
	customers    customer.Repository
	products     product.Repository
	credits      credit.Repository
	transactions transaction.Repository
}

func newFixture(t *testing.T, quota int) *routerFixture {
	t.Helper()
	kv := storage.NewMemoryKV(quota)
	log := logger.NewNopLogger()

	f := &routerFixture{
		kv:           kv,
		customers:    repository.NewCustomerRepository(kv, nil, log),
		products:     repository.NewProductRepository(kv, nil, log),
		credits:      repository.NewCreditRepository(kv, nil, log),
		transactions: repository.NewTransactionRepository(kv, nil, log),
	}
	f.router = NewRouter(f.customers, f.products, f.credits, f.transactions, log).
		WithClock(func() time.Time { return time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC) })
	return f
}

func TestExecute_RevenueWithNoTransactions(t *testing.T) {
	f := newFixture(t, 0)

	result := f.router.Execute(context.Background(), tenantID, ActionQueryTotalRevenue, "{}")

	require.NotNil(t, result)
	assert.True(t, result.Success)
	assert.Contains(t, result.Message, "R$ 0.00")
	assert.Empty(t, result.NavigateTo)
	assert.Equal(t, ActionQueryTotalRevenue, result.Action)
	assert.NotEmpty(t, result.OperationID)
}

func TestExecute_AddCustomer(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()

	result := f.router.Execute(ctx, tenantID, ActionAddCustomer, `{"customerName":"João Silva","phone":"(11) 91234-5678"}`)

	assert.True(t, result.Success)
	assert.Equal(t, PathCustomers, result.NavigateTo)
	assert.Contains(t, result.Message, "João Silva")

	list, err := f.customers.List(ctx, tenantID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "João Silva", list[0].Name)
	assert.Equal(t, "(11) 91234-5678", list[0].Phone)
	assert.Equal(t, list[0].ID, result.Data["customer_id"])
}

func TestExecute_AddCreditEntry(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()

	result := f.router.Execute(ctx, tenantID, ActionAddCreditEntry, `{"customerName":"Maria","amount":50}`)

	assert.True(t, result.Success)
	assert.Equal(t, PathCreditEntries, result.NavigateTo)
	assert.Contains(t, result.Message, "R$ 50.00")
	assert.Contains(t, result.Message, "Maria")

	list, err := f.credits.List(ctx, tenantID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "50", list[0].Amount.String())
	assert.False(t, list[0].Paid)
	assert.Nil(t, list[0].DueDate)
	assert.True(t, list[0].SaleDate.Valid())
}

func TestExecute_AddCreditEntryWithDueDate(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()

	result := f.router.Execute(ctx, tenantID, ActionAddCreditEntry,
		`{"customerName":"Maria","amount":"25,50","dueDate":"2024-06-01"}`)

	assert.True(t, result.Success)
	assert.Contains(t, result.Message, "R$ 25.50")
	assert.Contains(t, result.Message, "01/06/2024")

	list, err := f.credits.List(ctx, tenantID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].DueDate)
	assert.Equal(t, 2024, list[0].DueDate.Year())
}

func TestExecute_AddCreditEntryInvalidDueDate(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()

	result := f.router.Execute(ctx, tenantID, ActionAddCreditEntry,
		`{"customerName":"Maria","amount":10,"dueDate":"amanhã cedo"}`)

	assert.True(t, result.Success)
	assert.Contains(t, result.Message, "amanhã cedo")
	assert.Contains(t, result.Message, "inválida")

	list, err := f.credits.List(ctx, tenantID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Nil(t, list[0].DueDate)
}

func TestExecute_LookupNotFound(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()

	result := f.router.Execute(ctx, tenantID, ActionEditCustomer, `{"customerName":"Ghost"}`)

	assert.False(t, result.Success)
	assert.Equal(t, PathCustomers, result.NavigateTo)
	assert.Contains(t, result.Message, "Ghost")
	assert.Equal(t, 0, f.kv.Len())
}

func TestExecute_LookupFoundDoesNotMutate(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()

	f.router.Execute(ctx, tenantID, ActionAddProduct, `{"productName":"Café 500g","productCode":"CAF500","price":"18,90"}`)
	before, err := f.products.List(ctx, tenantID)
	require.NoError(t, err)

	result := f.router.Execute(ctx, tenantID, ActionDeleteProduct, `{"productCode":"caf500"}`)

	assert.True(t, result.Success)
	assert.Equal(t, PathProducts, result.NavigateTo)
	assert.Contains(t, result.Message, "Café 500g")
	assert.Contains(t, result.Message, "excluir")

	after, err := f.products.List(ctx, tenantID)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestExecute_UnknownCommand(t *testing.T) {
	f := newFixture(t, 0)

	for _, action := range []string{ActionUnknownCommand, ActionUnknown, ""} {
		result := f.router.Execute(context.Background(), tenantID, action, "")
		assert.False(t, result.Success)
		assert.Empty(t, result.NavigateTo)
		assert.Equal(t, MsgUnknownCommand, result.Message)
	}
}

func TestExecute_Navigation(t *testing.T) {
	f := newFixture(t, 0)

	tests := []struct {
		action string
		path   string
	}{
		{ActionNavigateToDashboard, PathDashboard},
		{ActionNavigateToCustomers, PathCustomers},
		{ActionNavigateToSales, PathSales},
		{ActionNavigateToProducts, PathProducts},
		{ActionNavigateToCreditEntries, PathCreditEntries},
		{ActionNavigateToFiados, PathCreditEntries},
		{ActionNavigateToSalesHistory, PathSalesHistory},
		{ActionNavigateToMonthlyReport, PathMonthlyReport},
		{ActionNavigateToSettings, PathSettings},
		{ActionNavigateToNotebook, PathNotebook},
		{ActionShowKpis, PathDashboard},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			result := f.router.Execute(context.Background(), tenantID, tt.action, "{}")
			assert.True(t, result.Success)
			assert.Equal(t, tt.path, result.NavigateTo)
			assert.NotEmpty(t, result.Message)
		})
	}
	assert.Equal(t, 0, f.kv.Len())
}

func TestExecute_ActionNameIsCaseInsensitive(t *testing.T) {
	f := newFixture(t, 0)

	result := f.router.Execute(context.Background(), tenantID, "NAVIGATETOCUSTOMERS", "")

	assert.True(t, result.Success)
	assert.Equal(t, PathCustomers, result.NavigateTo)
	assert.Equal(t, "NAVIGATETOCUSTOMERS", result.Action)
}

func TestExecute_MissingFields(t *testing.T) {
	tests := []struct {
		name    string
		action  string
		params  string
		missing []string
	}{
		{"cliente sem telefone", ActionAddCustomer, `{"customerName":"João"}`, []string{fieldPhone}},
		{"cliente vazio", ActionAddCustomer, `{}`, []string{fieldCustomerName, fieldPhone}},
		{"fiado sem valor", ActionAddCreditEntry, `{"customerName":"Maria"}`, []string{fieldAmount}},
		{"fiado com valor negativo", ActionAddCreditEntry, `{"customerName":"Maria","amount":-5}`, []string{fieldAmount}},
		{"lançamento sem tipo", ActionAddTransaction, `{"description":"Aluguel","amount":900}`, []string{fieldType}},
		{"lançamento com tipo desconhecido", ActionAddTransaction, `{"description":"Aluguel","amount":900,"type":"outro"}`, []string{fieldType}},
		{"produto sem preço", ActionAddProduct, `{"productName":"Arroz","productCode":"ARZ"}`, []string{fieldPrice}},
		{"produto sem código", ActionAddProduct, `{"productName":"Arroz","price":10}`, []string{fieldProductCode}},
		{"produto sem nome", ActionAddProduct, `{"productCode":"ARZ","price":10}`, []string{fieldProductName}},
		{"lançamento sem descrição", ActionAddTransaction, `{"amount":900,"type":"despesa"}`, []string{fieldDescription}},
		{"lançamento sem valor", ActionAddTransaction, `{"description":"Aluguel","type":"despesa"}`, []string{fieldAmount}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 0)

			result := f.router.Execute(context.Background(), tenantID, tt.action, tt.params)

			assert.False(t, result.Success)
			assert.Empty(t, result.NavigateTo)
			for _, field := range tt.missing {
				assert.Contains(t, result.Message, field)
			}
			assert.Contains(t, result.Message, "Por exemplo")
			assert.Equal(t, 0, f.kv.Len())
		})
	}
}

func TestExecute_AddGrowsCollectionByOne(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()

	f.router.Execute(ctx, tenantID, ActionAddTransaction, `{"description":"Venda de bolos","amount":120,"type":"receita"}`)
	first, err := f.transactions.List(ctx, tenantID)
	require.NoError(t, err)
	require.Len(t, first, 1)

	result := f.router.Execute(ctx, tenantID, ActionAddTransaction, `{"description":"Conta de luz","amount":"80","type":"despesa"}`)
	assert.True(t, result.Success)
	assert.Equal(t, PathNotebook, result.NavigateTo)
	assert.Contains(t, result.Message, "Despesa")

	second, err := f.transactions.List(ctx, tenantID)
	require.NoError(t, err)
	assert.Len(t, second, len(first)+1)

	revenue := f.router.Execute(ctx, tenantID, ActionQueryTotalRevenue, "")
	assert.Contains(t, revenue.Message, "R$ 120.00")
}

func TestExecute_ProductWithZeroPrice(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()

	result := f.router.Execute(ctx, tenantID, ActionAddProduct, `{"productName":"Amostra","productCode":"AM1","price":0}`)

	assert.True(t, result.Success)
	assert.Contains(t, result.Message, "R$ 0.00")

	list, err := f.products.List(ctx, tenantID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Price.IsZero())
}

func TestExecute_InvalidParameters(t *testing.T) {
	f := newFixture(t, 0)

	for _, params := range []string{"{", "[1,2]", `"texto"`, `{"a":1} {"b":2}`} {
		result := f.router.Execute(context.Background(), tenantID, ActionAddCustomer, params)
		assert.False(t, result.Success)
		assert.Equal(t, MsgInvalidParameters, result.Message)
	}
	assert.Equal(t, 0, f.kv.Len())
}

func TestExecute_NoTenant(t *testing.T) {
	f := newFixture(t, 0)

	for _, tenant := range []string{"", "   "} {
		result := f.router.Execute(context.Background(), tenant, ActionNavigateToCustomers, "{}")
		assert.False(t, result.Success)
		assert.Equal(t, MsgNoTenant, result.Message)
		assert.Empty(t, result.NavigateTo)
	}
}

func TestExecute_Unimplemented(t *testing.T) {
	f := newFixture(t, 0)

	result := f.router.Execute(context.Background(), tenantID, "initiateAddSupplier", "{}")

	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "initiateAddSupplier")
}

func TestExecute_SaveFailureIsReported(t *testing.T) {
	f := newFixture(t, 40)
	ctx := context.Background()
	buf := storage.NewBuffer()
	ctx = storage.WithNotifier(ctx, buf)

	result := f.router.Execute(ctx, tenantID, ActionAddCustomer, `{"customerName":"João Silva","phone":"(11) 91234-5678"}`)

	assert.False(t, result.Success)
	assert.Equal(t, PathCustomers, result.NavigateTo)
	assert.Contains(t, result.Message, "Não consegui salvar")
	assert.Contains(t, result.Message, "Clientes")

	require.Len(t, buf.Notifications(), 1)
	assert.Equal(t, storage.KindSaveError, buf.Notifications()[0].Kind)
}

func TestExecute_PendingCredit(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()

	f.router.Execute(ctx, tenantID, ActionAddCreditEntry, `{"customerName":"Maria","amount":50}`)
	f.router.Execute(ctx, tenantID, ActionAddCreditEntry, `{"customerName":"José","amount":"12.5"}`)

	due := f.router.Execute(ctx, tenantID, ActionQueryTotalAmountDue, "")
	assert.True(t, due.Success)
	assert.Contains(t, due.Message, "R$ 62.50")

	pending := f.router.Execute(ctx, tenantID, ActionQueryPendingCreditEntries, "")
	assert.True(t, pending.Success)
	assert.Equal(t, 2, pending.Data["count"])
}

func TestExecute_LowStockProducts(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()

	stocks := map[string]string{"A": "0", "B": "3", "C": "5", "D": "6", "E": "muitos", "F": ""}
	for code, stock := range stocks {
		p, err := product.NewProduct("Produto "+code, code, decimal.NewFromInt(1), "", stock, time.Now())
		require.NoError(t, err)
		require.NoError(t, f.products.Add(ctx, tenantID, *p))
	}

	result := f.router.Execute(ctx, tenantID, ActionQueryLowStockProducts, "")

	assert.True(t, result.Success)
	assert.Equal(t, 2, result.Data["count"])
}

func TestExecute_SendReport(t *testing.T) {
	f := newFixture(t, 0)

	plain := f.router.Execute(context.Background(), tenantID, ActionSendReport, "")
	withNumber := f.router.Execute(context.Background(), tenantID, ActionSendReport, `{"whatsappNumber":"11912345678"}`)

	assert.Equal(t, PathMonthlyReport, plain.NavigateTo)
	assert.Equal(t, PathMonthlyReport, withNumber.NavigateTo)
	assert.NotEqual(t, plain.Message, withNumber.Message)
	assert.Contains(t, withNumber.Message, "11912345678")
}

type panicCustomers struct{}

func (panicCustomers) List(context.Context, string) ([]customer.Customer, error) {
	panic("falha inesperada")
}

func (panicCustomers) Add(context.Context, string, customer.Customer) error {
	return errors.New("não usado")
}

func TestExecute_RecoversFromPanic(t *testing.T) {
	f := newFixture(t, 0)
	router := NewRouter(panicCustomers{}, f.products, f.credits, f.transactions, logger.NewNopLogger())

	result := router.Execute(context.Background(), tenantID, ActionQueryTotalCustomers, "")

	require.NotNil(t, result)
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "Clientes")
}

func TestExecute_StoreReadFailure(t *testing.T) {
	f := newFixture(t, 0)
	router := NewRouter(failingCustomers{}, f.products, f.credits, f.transactions, logger.NewNopLogger())

	result := router.Execute(context.Background(), tenantID, ActionQueryTotalCustomers, "")

	assert.False(t, result.Success)
	assert.Equal(t, queryErrorMessage(pageCustomers), result.Message)
}

type failingCustomers struct{}

func (failingCustomers) List(context.Context, string) ([]customer.Customer, error) {
	return nil, storage.ErrReadFailed
}

func (failingCustomers) Add(context.Context, string, customer.Customer) error {
	return storage.ErrWriteFailed
}

func TestParseMoney(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"50", "50"},
		{"R$ 50", "50"},
		{"r$ 25,50", "25.5"},
		{"1.500", "1500"},
		{"R$ 1.500", "1500"},
		{"2.350.000", "2350000"},
		{"1.234,56", "1234.56"},
		{"1,234.56", "1234.56"},
		{"12.5", "12.5"},
		{"1.5000", "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := parseMoney(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}

	_, err := parseMoney("R$")
	assert.Error(t, err)
}

func TestExecute_AddCreditEntryWithThousands(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()

	result := f.router.Execute(ctx, tenantID, ActionAddCreditEntry, `{"customerName":"Maria","amount":"R$ 1.500"}`)
	require.True(t, result.Success, result.Message)

	entries, err := f.credits.List(ctx, tenantID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "1500", entries[0].Amount.String())
}
