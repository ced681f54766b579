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

const dateLayout = "2006-01-02"

// SaleUseCase reglas de negocio para ventas. Las ventas son inmutables:
// solo alta y consulta.
type SaleUseCase struct {
	sales    repository.SaleRepository
	products repository.ProductRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(sales repository.SaleRepository, products repository.ProductRepository) *SaleUseCase {
	return &SaleUseCase{sales: sales, products: products}
}

// Create registra una venta. Todos los campos son obligatorios y el producto
// referenciado debe existir. No se recalcula total_amount: quien registra la
// venta es responsable de que sea quantity * unit_price.
func (uc *SaleUseCase) Create(ctx context.Context, req dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if req.ProductID == "" || req.SaleDate == "" {
		return nil, fmt.Errorf("%w: product_id y sale_date son requeridos", domain.ErrInvalidInput)
	}
	if req.Quantity < 1 {
		return nil, fmt.Errorf("%w: quantity debe ser >= 1", domain.ErrInvalidInput)
	}
	if req.UnitPrice.IsNegative() || req.TotalAmount.IsNegative() {
		return nil, fmt.Errorf("%w: unit_price y total_amount no pueden ser negativos", domain.ErrInvalidInput)
	}
	saleDate, err := filter.ParseDate(req.SaleDate)
	if err != nil {
		return nil, err
	}

	product, err := uc.products.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, req.ProductID)
	}

	sale := &entity.Sale{
		ID:          uuid.New().String(),
		ProductID:   req.ProductID,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
		TotalAmount: req.TotalAmount,
		SaleDate:    saleDate,
		CreatedAt:   time.Now().UTC(),
	}
	if err := uc.sales.Create(ctx, sale); err != nil {
		return nil, err
	}
	return saleResponse(sale), nil
}

// List devuelve ventas filtradas por rango de fechas, producto y/o categoría,
// ordenadas por fecha descendente, con paginación opcional.
func (uc *SaleUseCase) List(ctx context.Context, req dto.SaleListRequest) (*dto.SaleListResponse, error) {
	start, end, err := filter.DateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	page, limit, err := filter.Pagination(req.Page, req.Limit)
	if err != nil {
		return nil, err
	}

	f := repository.SaleFilter{
		StartDate:  start,
		EndDate:    end,
		ProductID:  req.ProductID,
		CategoryID: req.CategoryID,
		Page:       page,
		Limit:      limit,
	}
	rows, total, err := uc.sales.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("listar ventas: %w", err)
	}

	data := make([]dto.SaleListItemDTO, 0, len(rows))
	for _, row := range rows {
		item := dto.SaleListItemDTO{
			SaleResponse: *saleResponse(&row.Sale),
			Product: dto.ProductSummary{
				ID:    row.ProductID,
				Name:  row.ProductName,
				SKU:   row.ProductSKU,
				Price: row.UnitPrice,
			},
		}
		if row.CategoryID != "" {
			item.Category = &dto.CategorySummary{ID: row.CategoryID, Name: row.CategoryName}
		}
		data = append(data, item)
	}
	return &dto.SaleListResponse{
		Data: data,
		Meta: dto.NewPageMeta(total, page, limit),
	}, nil
}

func saleResponse(s *entity.Sale) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:          s.ID,
		ProductID:   s.ProductID,
		Quantity:    s.Quantity,
		UnitPrice:   s.UnitPrice,
		TotalAmount: s.TotalAmount,
		SaleDate:    s.SaleDate.Format(dateLayout),
		CreatedAt:   s.CreatedAt.Format(time.RFC3339),
	}
}
