package dto

import "github.com/shopspring/decimal"

// CreateProductRequest cuerpo de POST /api/products.
// CategoryID es opcional.
type CreateProductRequest struct {
	Name       string          `json:"name"`
	SKU        string          `json:"sku"`
	Price      decimal.Decimal `json:"price"`
	CategoryID string          `json:"category_id"`
}

// ProductResponse representación HTTP de un producto.
type ProductResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	SKU        string          `json:"sku"`
	Price      decimal.Decimal `json:"price"`
	CategoryID string          `json:"category_id,omitempty"`
	CreatedAt  string          `json:"created_at"`
}

// ProductSummary datos mínimos del producto embebidos en otras respuestas.
type ProductSummary struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	SKU   string          `json:"sku"`
	Price decimal.Decimal `json:"price"`
}

// CategorySummary datos mínimos de la categoría embebidos en otras respuestas.
type CategorySummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
