package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale es una venta individual. Las ventas son inmutables una vez creadas;
// la capa de reportes solo las lee.
//
// Se espera TotalAmount == Quantity * UnitPrice, pero la invariante es
// responsabilidad de quien registra la venta, no de esta capa.
type Sale struct {
	ID          string
	ProductID   string
	Quantity    int
	UnitPrice   decimal.Decimal
	TotalAmount decimal.Decimal
	SaleDate    time.Time // solo fecha (columna DATE)
	CreatedAt   time.Time
}
