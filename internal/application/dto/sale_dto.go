package dto

import "github.com/shopspring/decimal"

// CreateSaleRequest cuerpo de POST /api/sales.
type CreateSaleRequest struct {
	ProductID   string          `json:"product_id"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	SaleDate    string          `json:"sale_date"` // YYYY-MM-DD
}

// SaleListRequest parámetros de GET /api/sales.
type SaleListRequest struct {
	StartDate  string `query:"start_date"`
	EndDate    string `query:"end_date"`
	ProductID  string `query:"product_id"`
	CategoryID string `query:"category_id"`
	Page       string `query:"page"`
	Limit      string `query:"limit"`
}

// SaleResponse representación HTTP de una venta.
type SaleResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	SaleDate    string          `json:"sale_date"`
	CreatedAt   string          `json:"created_at"`
}

// SaleListItemDTO venta con producto y categoría resueltos para listados.
type SaleListItemDTO struct {
	SaleResponse
	Product  ProductSummary   `json:"product"`
	Category *CategorySummary `json:"category,omitempty"`
}

// SaleListResponse respuesta de GET /api/sales.
type SaleListResponse struct {
	Data []SaleListItemDTO `json:"data"`
	Meta PageMeta          `json:"metadata"`
}
