package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/filter"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// defaultMinimumThreshold umbral de alerta cuando el alta no especifica uno.
const defaultMinimumThreshold = 10

// InventoryUseCase reglas de negocio para registros de inventario.
type InventoryUseCase struct {
	inventory repository.InventoryRepository
	products  repository.ProductRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(inventory repository.InventoryRepository, products repository.ProductRepository) *InventoryUseCase {
	return &InventoryUseCase{inventory: inventory, products: products}
}

// Create registra el inventario de un producto (uno por producto).
func (uc *InventoryUseCase) Create(ctx context.Context, req dto.CreateInventoryRequest) (*dto.InventoryResponse, error) {
	if req.ProductID == "" || req.CurrentStock == nil {
		return nil, fmt.Errorf("%w: product_id y current_stock son requeridos", domain.ErrInvalidInput)
	}
	if *req.CurrentStock < 0 {
		return nil, fmt.Errorf("%w: current_stock no puede ser negativo", domain.ErrInvalidInput)
	}
	threshold := defaultMinimumThreshold
	if req.MinimumThreshold != nil {
		if *req.MinimumThreshold < 0 {
			return nil, fmt.Errorf("%w: minimum_threshold no puede ser negativo", domain.ErrInvalidInput)
		}
		threshold = *req.MinimumThreshold
	}

	product, err := uc.products.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, req.ProductID)
	}

	inv := &entity.Inventory{
		ID:               uuid.New().String(),
		ProductID:        req.ProductID,
		CurrentStock:     *req.CurrentStock,
		MinimumThreshold: threshold,
		UpdatedAt:        time.Now().UTC(),
	}
	if err := uc.inventory.Create(ctx, inv); err != nil {
		return nil, err
	}
	return inventoryResponse(inv), nil
}

// List devuelve el inventario con filtros, orden y paginación.
// La validación ocurre completa antes de consultar la base de datos.
func (uc *InventoryUseCase) List(ctx context.Context, req dto.InventoryListRequest) (*dto.InventoryListResponse, error) {
	f, err := normalizeInventoryFilter(req)
	if err != nil {
		return nil, err
	}
	items, total, err := uc.inventory.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("listar inventario: %w", err)
	}
	return inventoryListResponse(items, total, f), nil
}

// ListAlerts devuelve los registros con stock en o por debajo del umbral,
// ordenados por déficit descendente.
func (uc *InventoryUseCase) ListAlerts(ctx context.Context, req dto.InventoryListRequest) (*dto.InventoryListResponse, error) {
	f, err := normalizeInventoryFilter(req)
	if err != nil {
		return nil, err
	}
	items, total, err := uc.inventory.ListAlerts(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("alertas de inventario: %w", err)
	}
	return inventoryListResponse(items, total, f), nil
}

// Update modifica stock y/o umbral de un registro existente.
func (uc *InventoryUseCase) Update(ctx context.Context, id string, req dto.UpdateInventoryRequest) (*dto.InventoryResponse, error) {
	if req.CurrentStock != nil && *req.CurrentStock < 0 {
		return nil, fmt.Errorf("%w: current_stock no puede ser negativo", domain.ErrInvalidInput)
	}
	if req.MinimumThreshold != nil && *req.MinimumThreshold < 0 {
		return nil, fmt.Errorf("%w: minimum_threshold no puede ser negativo", domain.ErrInvalidInput)
	}

	inv, err := uc.inventory.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, fmt.Errorf("%w: inventario %s", domain.ErrNotFound, id)
	}

	// Solo se tocan los campos presentes en la petición.
	if req.CurrentStock != nil {
		inv.CurrentStock = *req.CurrentStock
	}
	if req.MinimumThreshold != nil {
		inv.MinimumThreshold = *req.MinimumThreshold
	}
	inv.UpdatedAt = time.Now().UTC()

	if err := uc.inventory.Update(ctx, inv); err != nil {
		return nil, err
	}
	return inventoryResponse(inv), nil
}

// inventorySortFields campos de orden aceptados. Un sort_by desconocido cae
// al default en lugar de fallar (comportamiento heredado del listado original).
var inventorySortFields = map[string]bool{
	"current_stock": true,
	"updated_at":    true,
}

func normalizeInventoryFilter(req dto.InventoryListRequest) (repository.InventoryFilter, error) {
	page, limit, err := filter.Pagination(req.Page, req.Limit)
	if err != nil {
		return repository.InventoryFilter{}, err
	}
	order, err := filter.SortOrder(req.SortOrder)
	if err != nil {
		return repository.InventoryFilter{}, err
	}
	sortBy := req.SortBy
	if !inventorySortFields[sortBy] {
		sortBy = ""
	}
	return repository.InventoryFilter{
		Page:       page,
		Limit:      limit,
		CategoryID: req.CategoryID,
		SortBy:     sortBy,
		SortOrder:  order,
	}, nil
}

func inventoryResponse(inv *entity.Inventory) *dto.InventoryResponse {
	return &dto.InventoryResponse{
		ID:               inv.ID,
		ProductID:        inv.ProductID,
		CurrentStock:     inv.CurrentStock,
		MinimumThreshold: inv.MinimumThreshold,
		UpdatedAt:        inv.UpdatedAt.Format(time.RFC3339),
	}
}

func inventoryListResponse(items []repository.InventoryItem, total int64, f repository.InventoryFilter) *dto.InventoryListResponse {
	data := make([]dto.InventoryItemDTO, 0, len(items))
	for _, item := range items {
		row := dto.InventoryItemDTO{
			ID:               item.ID,
			CurrentStock:     item.CurrentStock,
			MinimumThreshold: item.MinimumThreshold,
			UpdatedAt:        item.UpdatedAt.Format(time.RFC3339),
			Product: dto.ProductSummary{
				ID:    item.ProductID,
				Name:  item.ProductName,
				SKU:   item.ProductSKU,
				Price: item.ProductPrice,
			},
		}
		if item.CategoryID != "" {
			row.Category = &dto.CategorySummary{ID: item.CategoryID, Name: item.CategoryName}
		}
		data = append(data, row)
	}
	return &dto.InventoryListResponse{
		Data: data,
		Meta: dto.NewPageMeta(total, f.Page, f.Limit),
	}
}
