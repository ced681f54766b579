package repository

import (
	"context"
	"time"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// InventoryFilter filtros ya normalizados para listar inventario.
// Page/Limit en cero significa "sin paginación".
type InventoryFilter struct {
	Page       int
	Limit      int
	CategoryID string
	SortBy     string // current_stock | updated_at (vacío = current_stock)
	SortOrder  string // ASC | DESC, ya canonicalizado
}

// InventoryItem fila de inventario con el producto y la categoría resueltos
// (resultado del join, no una entidad).
type InventoryItem struct {
	ID               string
	CurrentStock     int
	MinimumThreshold int
	UpdatedAt        time.Time

	ProductID    string
	ProductName  string
	ProductSKU   string
	ProductPrice decimal.Decimal

	CategoryID   string // vacío si el producto no tiene categoría
	CategoryName string
}

// InventoryRepository define el puerto de persistencia para Inventory.
type InventoryRepository interface {
	Create(ctx context.Context, inventory *entity.Inventory) error
	// GetByID devuelve nil, nil si el registro no existe.
	GetByID(ctx context.Context, id string) (*entity.Inventory, error)
	// Update persiste current_stock y minimum_threshold del registro dado.
	Update(ctx context.Context, inventory *entity.Inventory) error
	// List devuelve las filas y el total sin paginar.
	List(ctx context.Context, filter InventoryFilter) ([]InventoryItem, int64, error)
	// ListAlerts devuelve las filas con current_stock <= minimum_threshold,
	// ordenadas por déficit descendente, y el total sin paginar.
	ListAlerts(ctx context.Context, filter InventoryFilter) ([]InventoryItem, int64, error)
}
