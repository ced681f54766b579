// Package seeding puebla la base de datos con un dataset de demostración:
// categorías fijas, productos generados por categoría, inventario por
// producto y un lote de ventas con fechas aleatorias.
package seeding

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

const (
	productsPerCategory = 20
	minSales            = 30
	maxSales            = 50
)

// salesSince inicio del rango de fechas de venta generadas.
var salesSince = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// seedCategories catálogo fijo de categorías de demo.
var seedCategories = []struct {
	name        string
	description string
}{
	{"Electronics", "Electronic devices and accessories"},
	{"Clothing", "Apparel and fashion items"},
	{"Books", "Books and publications"},
	{"Home", "Home and kitchen items"},
	{"Sports", "Sports and fitness equipment"},
}

// TxRunner ejecuta el callback con repositorios atados a una transacción,
// para que el seed sea todo-o-nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		categories repository.CategoryRepository,
		products repository.ProductRepository,
		inventory repository.InventoryRepository,
		sales repository.SaleRepository,
	) error) error
}

// Seeder genera el dataset de demostración.
type Seeder struct {
	tx TxRunner
}

// NewSeeder construye el seeder.
func NewSeeder(tx TxRunner) *Seeder {
	return &Seeder{tx: tx}
}

// Seed crea el dataset completo dentro de una transacción y devuelve los
// conteos de filas creadas. Si algo falla no queda nada a medias.
func (s *Seeder) Seed(ctx context.Context) (*dto.SeedResultDTO, error) {
	result := &dto.SeedResultDTO{}

	err := s.tx.Run(ctx, func(
		categories repository.CategoryRepository,
		products repository.ProductRepository,
		inventory repository.InventoryRepository,
		sales repository.SaleRepository,
	) error {
		now := time.Now().UTC()

		var createdProducts []*entity.Product
		for _, c := range seedCategories {
			category := &entity.Category{
				ID:          uuid.New().String(),
				Name:        c.name,
				Description: c.description,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := categories.Create(ctx, category); err != nil {
				return fmt.Errorf("seed categoría %s: %w", c.name, err)
			}
			result.Categories++

			prefix := skuPrefix(c.name)
			for i := 1; i <= productsPerCategory; i++ {
				product := &entity.Product{
					ID:         uuid.New().String(),
					Name:       fmt.Sprintf("%s Item %d", c.name, i),
					SKU:        fmt.Sprintf("SKU-%s-%d", prefix, i),
					Price:      decimal.NewFromInt(int64(randBetween(10, 1000))),
					CategoryID: category.ID,
					CreatedAt:  now,
				}
				if err := products.Create(ctx, product); err != nil {
					return fmt.Errorf("seed producto %s: %w", product.SKU, err)
				}
				createdProducts = append(createdProducts, product)
				result.Products++

				inv := &entity.Inventory{
					ID:               uuid.New().String(),
					ProductID:        product.ID,
					CurrentStock:     randBetween(10, 100),
					MinimumThreshold: randBetween(5, 20),
					UpdatedAt:        now,
				}
				if err := inventory.Create(ctx, inv); err != nil {
					return fmt.Errorf("seed inventario de %s: %w", product.SKU, err)
				}
				result.Inventory++
			}
		}

		numSales := randBetween(minSales, maxSales)
		for i := 0; i < numSales; i++ {
			product := createdProducts[rand.IntN(len(createdProducts))]
			quantity := randBetween(1, 5)
			sale := &entity.Sale{
				ID:          uuid.New().String(),
				ProductID:   product.ID,
				Quantity:    quantity,
				UnitPrice:   product.Price,
				TotalAmount: product.Price.Mul(decimal.NewFromInt(int64(quantity))),
				SaleDate:    randDate(salesSince, now),
				CreatedAt:   now,
			}
			if err := sales.Create(ctx, sale); err != nil {
				return fmt.Errorf("seed venta %d: %w", i+1, err)
			}
			result.Sales++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// skuPrefix primeras tres letras del nombre de la categoría, en mayúsculas.
func skuPrefix(name string) string {
	prefix := name
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	out := make([]byte, len(prefix))
	for i := 0; i < len(prefix); i++ {
		c := prefix[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		out[i] = c
	}
	return string(out)
}

// randBetween entero aleatorio en [min, max].
func randBetween(min, max int) int {
	return min + rand.IntN(max-min+1)
}

// randDate fecha aleatoria (solo día) entre start y end.
func randDate(start, end time.Time) time.Time {
	delta := end.Sub(start)
	if delta <= 0 {
		return start
	}
	t := start.Add(time.Duration(rand.Int64N(int64(delta))))
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
