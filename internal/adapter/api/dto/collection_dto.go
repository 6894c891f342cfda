package dto

import (
	"github.com/shopspring/decimal"
)

// PaginationParams representa os parâmetros de paginação
type PaginationParams struct {
	Page     int
	PageSize int
}

// GetPagination retorna parâmetros de paginação com valores padrão
func GetPagination(page, pageSize int) PaginationParams {
	if page <= 0 {
		page = 1
	}

	if pageSize <= 0 {
		pageSize = 20
	} else if pageSize > 100 {
		pageSize = 100 // Limitar a 100 itens por página
	}

	return PaginationParams{
		Page:     page,
		PageSize: pageSize,
	}
}

// ListResponse representa uma página de uma coleção
type ListResponse[T any] struct {
	Items    []T `json:"items"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// NewListResponse recorta a página pedida dos itens já filtrados
func NewListResponse[T any](items []T, p PaginationParams) ListResponse[T] {
	total := len(items)
	start := (p.Page - 1) * p.PageSize
	if start > total {
		start = total
	}
	end := start + p.PageSize
	if end > total {
		end = total
	}

	page := make([]T, end-start)
	copy(page, items[start:end])

	return ListResponse[T]{
		Items:    page,
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}
}

// SummaryResponse reúne os indicadores do negócio exibidos no dashboard
type SummaryResponse struct {
	TotalCustomers      int             `json:"total_customers"`
	TotalProducts       int             `json:"total_products"`
	LowStockProducts    int             `json:"low_stock_products"`
	PendingCreditCount  int             `json:"pending_credit_count"`
	PendingCreditAmount decimal.Decimal `json:"pending_credit_amount" swaggertype:"string"`
	TotalRevenue        decimal.Decimal `json:"total_revenue" swaggertype:"string"`
	TotalExpenses       decimal.Decimal `json:"total_expenses" swaggertype:"string"`
	Balance             decimal.Decimal `json:"balance" swaggertype:"string"`
}
