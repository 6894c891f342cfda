package controller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/moneywise/internal/adapter/api/dto"
	"github.com/hugohenrick/moneywise/internal/domain/credit"
	"github.com/hugohenrick/moneywise/internal/domain/customer"
	"github.com/hugohenrick/moneywise/internal/domain/product"
	"github.com/hugohenrick/moneywise/internal/domain/transaction"
	"github.com/hugohenrick/moneywise/pkg/logger"
	"github.com/hugohenrick/moneywise/pkg/tenant"
)

// CollectionController expõe, somente para leitura, os dados exibidos nas páginas do sistema
type CollectionController struct {
	customerRepo    customer.Repository
	productRepo     product.Repository
	creditRepo      credit.Repository
	transactionRepo transaction.Repository
	logger          logger.Logger
}

// NewCollectionController cria uma nova instância de CollectionController
func NewCollectionController(
	customerRepo customer.Repository,
	productRepo product.Repository,
	creditRepo credit.Repository,
	transactionRepo transaction.Repository,
	logger logger.Logger,
) *CollectionController {
	return &CollectionController{
		customerRepo:    customerRepo,
		productRepo:     productRepo,
		creditRepo:      creditRepo,
		transactionRepo: transactionRepo,
		logger:          logger,
	}
}

// ListCustomers lista os clientes
// @Summary Listar clientes
// @Description Lista os clientes da empresa em ordem alfabética
// @Tags collections
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param tenant-id header string false "Empresa (quando não há token)"
// @Param search query string false "Trecho do nome"
// @Param page query int false "Página" default(1)
// @Param page_size query int false "Itens por página" default(20)
// @Success 200 {object} dto.ListResponse[customer.Customer]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers [get]
func (c *CollectionController) ListCustomers(ctx *gin.Context) {
	customers, err := c.customerRepo.List(ctx.Request.Context(), tenant.GetTenantID(ctx))
	if err != nil {
		c.listFailed(ctx, "clientes", err)
		return
	}

	search := strings.ToLower(strings.TrimSpace(ctx.Query("search")))
	filtered := customers[:0:0]
	for _, cu := range customers {
		if search == "" || strings.Contains(strings.ToLower(cu.Name), search) {
			filtered = append(filtered, cu)
		}
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(filtered, pagination(ctx)))
}

// ListProducts lista os produtos
// @Summary Listar produtos
// @Description Lista os produtos da empresa; low_stock=true retorna só os de estoque baixo
// @Tags collections
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param tenant-id header string false "Empresa (quando não há token)"
// @Param search query string false "Trecho do nome ou do código"
// @Param low_stock query bool false "Apenas estoque baixo"
// @Param page query int false "Página" default(1)
// @Param page_size query int false "Itens por página" default(20)
// @Success 200 {object} dto.ListResponse[product.Product]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [get]
func (c *CollectionController) ListProducts(ctx *gin.Context) {
	products, err := c.productRepo.List(ctx.Request.Context(), tenant.GetTenantID(ctx))
	if err != nil {
		c.listFailed(ctx, "produtos", err)
		return
	}

	search := strings.ToLower(strings.TrimSpace(ctx.Query("search")))
	lowStock, _ := strconv.ParseBool(ctx.Query("low_stock"))

	filtered := products[:0:0]
	for _, p := range products {
		if lowStock && !p.IsLowStock() {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) && !strings.EqualFold(p.Code, search) {
			continue
		}
		filtered = append(filtered, p)
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(filtered, pagination(ctx)))
}

// ListCreditEntries lista os fiados
// @Summary Listar fiados
// @Description Lista os fiados da empresa, do mais recente ao mais antigo
// @Tags collections
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param tenant-id header string false "Empresa (quando não há token)"
// @Param customer query string false "Trecho do nome do cliente"
// @Param pending query bool false "Apenas pendentes"
// @Param page query int false "Página" default(1)
// @Param page_size query int false "Itens por página" default(20)
// @Success 200 {object} dto.ListResponse[credit.Entry]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /credit-entries [get]
func (c *CollectionController) ListCreditEntries(ctx *gin.Context) {
	entries, err := c.creditRepo.List(ctx.Request.Context(), tenant.GetTenantID(ctx))
	if err != nil {
		c.listFailed(ctx, "fiados", err)
		return
	}

	name := strings.ToLower(strings.TrimSpace(ctx.Query("customer")))
	pending, _ := strconv.ParseBool(ctx.Query("pending"))

	filtered := entries[:0:0]
	for _, e := range entries {
		if pending && !e.Pending() {
			continue
		}
		if name != "" && !strings.Contains(strings.ToLower(e.CustomerName), name) {
			continue
		}
		filtered = append(filtered, e)
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(filtered, pagination(ctx)))
}

// ListTransactions lista os lançamentos do caderno
// @Summary Listar lançamentos
// @Description Lista os lançamentos do caderno de caixa, do mais recente ao mais antigo
// @Tags collections
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param tenant-id header string false "Empresa (quando não há token)"
// @Param type query string false "income, expense, receita ou despesa"
// @Param page query int false "Página" default(1)
// @Param page_size query int false "Itens por página" default(20)
// @Success 200 {object} dto.ListResponse[transaction.Transaction]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /transactions [get]
func (c *CollectionController) ListTransactions(ctx *gin.Context) {
	var wanted transaction.Type
	if raw := ctx.Query("type"); raw != "" {
		t, ok := transaction.ParseType(raw)
		if !ok {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "tipo de lançamento inválido", raw))
			return
		}
		wanted = t
	}

	txs, err := c.transactionRepo.List(ctx.Request.Context(), tenant.GetTenantID(ctx))
	if err != nil {
		c.listFailed(ctx, "lançamentos", err)
		return
	}

	filtered := txs[:0:0]
	for _, t := range txs {
		if wanted == "" || t.Type == wanted {
			filtered = append(filtered, t)
		}
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(filtered, pagination(ctx)))
}

// Summary retorna os indicadores do negócio
// @Summary Indicadores do negócio
// @Description Totais de clientes, produtos, fiados pendentes e do caderno de caixa
// @Tags collections
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param tenant-id header string false "Empresa (quando não há token)"
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /summary [get]
func (c *CollectionController) Summary(ctx *gin.Context) {
	reqCtx := ctx.Request.Context()
	tenantID := tenant.GetTenantID(ctx)

	customers, err := c.customerRepo.List(reqCtx, tenantID)
	if err != nil {
		c.listFailed(ctx, "clientes", err)
		return
	}
	products, err := c.productRepo.List(reqCtx, tenantID)
	if err != nil {
		c.listFailed(ctx, "produtos", err)
		return
	}
	entries, err := c.creditRepo.List(reqCtx, tenantID)
	if err != nil {
		c.listFailed(ctx, "fiados", err)
		return
	}
	txs, err := c.transactionRepo.List(reqCtx, tenantID)
	if err != nil {
		c.listFailed(ctx, "lançamentos", err)
		return
	}

	lowStock := 0
	for _, p := range products {
		if p.IsLowStock() {
			lowStock++
		}
	}
	pendingAmount, pendingCount := credit.PendingTotals(entries)
	revenue := transaction.TotalRevenue(txs)
	expenses := transaction.TotalExpenses(txs)

	ctx.JSON(http.StatusOK, dto.SummaryResponse{
		TotalCustomers:      len(customers),
		TotalProducts:       len(products),
		LowStockProducts:    lowStock,
		PendingCreditCount:  pendingCount,
		PendingCreditAmount: pendingAmount,
		TotalRevenue:        revenue,
		TotalExpenses:       expenses,
		Balance:             revenue.Sub(expenses),
	})
}

func (c *CollectionController) listFailed(ctx *gin.Context, entity string, err error) {
	c.logger.Error("Erro ao listar coleção", "entity", entity, "error", err, "tenant_id", tenant.GetTenantID(ctx))
	ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao carregar "+entity, ""))
}

func pagination(ctx *gin.Context) dto.PaginationParams {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "20"))
	return dto.GetPagination(page, pageSize)
}
