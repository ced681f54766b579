package repository

import (
	"context"
	"time"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
)

// SaleFilter filtros ya normalizados para listar ventas.
// Las fechas en cero significan límite abierto; Page/Limit en cero, sin paginación.
type SaleFilter struct {
	StartDate  time.Time
	EndDate    time.Time
	ProductID  string
	CategoryID string
	Page       int
	Limit      int
}

// SaleWithProduct venta con los datos del producto y la categoría resueltos.
type SaleWithProduct struct {
	entity.Sale

	ProductName  string
	ProductSKU   string
	CategoryID   string
	CategoryName string
}

// SaleRepository define el puerto de persistencia para Sale.
// Las ventas no tienen update ni delete.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	// List devuelve las ventas ordenadas por fecha descendente y el total sin paginar.
	List(ctx context.Context, filter SaleFilter) ([]SaleWithProduct, int64, error)
}
