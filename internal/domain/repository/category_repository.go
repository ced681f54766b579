package repository

import (
	"context"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category.
// En esta API las categorías son solo de inserción (no hay update/delete).
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	// GetByID devuelve nil, nil si la categoría no existe.
	GetByID(ctx context.Context, id string) (*entity.Category, error)
}
