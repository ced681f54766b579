package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// ProductUseCase reglas de negocio para productos (solo inserción).
type ProductUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(products repository.ProductRepository, categories repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{products: products, categories: categories}
}

// Create registra un producto nuevo. Nombre, SKU y precio son obligatorios;
// la categoría es opcional pero, si viene, debe existir.
func (uc *ProductUseCase) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if req.Name == "" || req.SKU == "" {
		return nil, fmt.Errorf("%w: name y sku son requeridos", domain.ErrInvalidInput)
	}
	if !req.Price.IsPositive() {
		return nil, fmt.Errorf("%w: price debe ser mayor que cero", domain.ErrInvalidInput)
	}
	if req.CategoryID != "" {
		category, err := uc.categories.GetByID(ctx, req.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, fmt.Errorf("%w: categoría %s", domain.ErrNotFound, req.CategoryID)
		}
	}

	product := &entity.Product{
		ID:         uuid.New().String(),
		Name:       req.Name,
		SKU:        req.SKU,
		Price:      req.Price,
		CategoryID: req.CategoryID,
		CreatedAt:  time.Now().UTC(),
	}
	if err := uc.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return productResponse(product), nil
}

func productResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:         p.ID,
		Name:       p.Name,
		SKU:        p.SKU,
		Price:      p.Price,
		CategoryID: p.CategoryID,
		CreatedAt:  p.CreatedAt.Format(time.RFC3339),
	}
}
