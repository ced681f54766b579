package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. El SKU es único.
// CategoryID es opcional (vacío = sin categoría).
type Product struct {
	ID         string
	Name       string
	SKU        string
	Price      decimal.Decimal // precio de venta unitario
	CategoryID string
	CreatedAt  time.Time
}
