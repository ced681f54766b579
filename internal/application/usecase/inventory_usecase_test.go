package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/usecase"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

func intPtr(n int) *int { return &n }

func productoExistente(id string) *fakeProductRepo {
	return &fakeProductRepo{
		getByID: func(_ context.Context, got string) (*entity.Product, error) {
			if got == id {
				return &entity.Product{ID: id, Name: "Laptop", SKU: "SKU-ELE-1", Price: decimal.NewFromInt(500)}, nil
			}
			return nil, nil
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestInventoryCreate_UmbralPorDefecto(t *testing.T) {
	var creado *entity.Inventory
	invRepo := &fakeInventoryRepo{
		create: func(_ context.Context, inv *entity.Inventory) error {
			creado = inv
			return nil
		},
	}
	uc := usecase.NewInventoryUseCase(invRepo, productoExistente("p1"))

	out, err := uc.Create(context.Background(), dto.CreateInventoryRequest{
		ProductID:    "p1",
		CurrentStock: intPtr(40),
	})
	require.NoError(t, err)
	require.NotNil(t, creado)
	assert.Equal(t, 10, creado.MinimumThreshold, "sin umbral explícito aplica el default")
	assert.Equal(t, 40, out.CurrentStock)
	assert.NotEmpty(t, out.ID)
}

func TestInventoryCreate_ProductoInexistente(t *testing.T) {
	uc := usecase.NewInventoryUseCase(&fakeInventoryRepo{}, productoExistente("p1"))

	_, err := uc.Create(context.Background(), dto.CreateInventoryRequest{
		ProductID:    "no-existe",
		CurrentStock: intPtr(5),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInventoryCreate_StockNegativoRechazado(t *testing.T) {
	uc := usecase.NewInventoryUseCase(&fakeInventoryRepo{}, &fakeProductRepo{})

	_, err := uc.Create(context.Background(), dto.CreateInventoryRequest{
		ProductID:    "p1",
		CurrentStock: intPtr(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInventoryCreate_CamposRequeridos(t *testing.T) {
	uc := usecase.NewInventoryUseCase(&fakeInventoryRepo{}, &fakeProductRepo{})

	_, err := uc.Create(context.Background(), dto.CreateInventoryRequest{ProductID: "p1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "current_stock ausente debe rechazarse")
}

// ──────────────────────────────────────────────────────────────────────────────
// List — la validación ocurre antes de tocar el repositorio
// ──────────────────────────────────────────────────────────────────────────────

// page=0 explícito se rechaza; los fakes entran en pánico si el use case
// llega a consultarlos.
func TestInventoryList_PaginaCeroRechazada(t *testing.T) {
	uc := usecase.NewInventoryUseCase(&fakeInventoryRepo{}, &fakeProductRepo{})

	_, err := uc.List(context.Background(), dto.InventoryListRequest{Page: "0", Limit: "10"})
	assert.ErrorIs(t, err, domain.ErrInvalidPagination)
}

func TestInventoryList_OrdenInvalidoRechazado(t *testing.T) {
	uc := usecase.NewInventoryUseCase(&fakeInventoryRepo{}, &fakeProductRepo{})

	_, err := uc.List(context.Background(), dto.InventoryListRequest{SortOrder: "sideways"})
	assert.ErrorIs(t, err, domain.ErrInvalidSortOrder)
}

// sort_by desconocido no falla: cae al orden por defecto.
func TestInventoryList_SortByDesconocidoCaeAlDefault(t *testing.T) {
	var filtro repository.InventoryFilter
	invRepo := &fakeInventoryRepo{
		list: func(_ context.Context, f repository.InventoryFilter) ([]repository.InventoryItem, int64, error) {
			filtro = f
			return nil, 0, nil
		},
	}
	uc := usecase.NewInventoryUseCase(invRepo, &fakeProductRepo{})

	_, err := uc.List(context.Background(), dto.InventoryListRequest{SortBy: "price"})
	require.NoError(t, err)
	assert.Empty(t, filtro.SortBy, "sort_by no reconocido debe descartarse")
}

func TestInventoryList_MapeoYMetadatos(t *testing.T) {
	invRepo := &fakeInventoryRepo{
		list: func(_ context.Context, f repository.InventoryFilter) ([]repository.InventoryItem, int64, error) {
			assert.Equal(t, 2, f.Page)
			assert.Equal(t, 10, f.Limit)
			return []repository.InventoryItem{
				{
					ID: "i1", CurrentStock: 3, MinimumThreshold: 10,
					UpdatedAt: time.Now().UTC(),
					ProductID: "p1", ProductName: "Laptop", ProductSKU: "SKU-ELE-1",
					ProductPrice: decimal.NewFromInt(500),
					CategoryID:   "c1", CategoryName: "Electronics",
				},
				{
					ID: "i2", CurrentStock: 8, MinimumThreshold: 5,
					UpdatedAt: time.Now().UTC(),
					ProductID: "p2", ProductName: "Suelto", ProductSKU: "SKU-X-1",
					ProductPrice: decimal.NewFromInt(20),
				},
			}, 25, nil
		},
	}
	uc := usecase.NewInventoryUseCase(invRepo, &fakeProductRepo{})

	out, err := uc.List(context.Background(), dto.InventoryListRequest{Page: "2", Limit: "10"})
	require.NoError(t, err)
	require.Len(t, out.Data, 2)

	assert.Equal(t, "Electronics", out.Data[0].Category.Name)
	assert.Nil(t, out.Data[1].Category, "producto sin categoría debe omitir el bloque category")

	assert.EqualValues(t, 25, out.Meta.Total)
	assert.Equal(t, 2, out.Meta.Page)
	assert.Equal(t, 3, out.Meta.TotalPages, "25 filas / 10 por página = 3 páginas")
}

func TestInventoryListAlerts_UsaElMismoFiltro(t *testing.T) {
	llamado := false
	invRepo := &fakeInventoryRepo{
		listAlerts: func(_ context.Context, f repository.InventoryFilter) ([]repository.InventoryItem, int64, error) {
			llamado = true
			assert.Equal(t, "c9", f.CategoryID)
			return nil, 0, nil
		},
	}
	uc := usecase.NewInventoryUseCase(invRepo, &fakeProductRepo{})

	_, err := uc.ListAlerts(context.Background(), dto.InventoryListRequest{CategoryID: "c9"})
	require.NoError(t, err)
	assert.True(t, llamado)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestInventoryUpdate_ActualizacionParcial(t *testing.T) {
	existente := &entity.Inventory{
		ID: "i1", ProductID: "p1", CurrentStock: 50, MinimumThreshold: 10,
	}
	var guardado *entity.Inventory
	invRepo := &fakeInventoryRepo{
		getByID: func(context.Context, string) (*entity.Inventory, error) { return existente, nil },
		update: func(_ context.Context, inv *entity.Inventory) error {
			guardado = inv
			return nil
		},
	}
	uc := usecase.NewInventoryUseCase(invRepo, &fakeProductRepo{})

	out, err := uc.Update(context.Background(), "i1", dto.UpdateInventoryRequest{
		CurrentStock: intPtr(7),
	})
	require.NoError(t, err)
	require.NotNil(t, guardado)
	assert.Equal(t, 7, guardado.CurrentStock)
	assert.Equal(t, 10, guardado.MinimumThreshold, "el umbral no enviado no debe tocarse")
	assert.Equal(t, 7, out.CurrentStock)
}

func TestInventoryUpdate_NoExiste(t *testing.T) {
	invRepo := &fakeInventoryRepo{
		getByID: func(context.Context, string) (*entity.Inventory, error) { return nil, nil },
	}
	uc := usecase.NewInventoryUseCase(invRepo, &fakeProductRepo{})

	_, err := uc.Update(context.Background(), "fantasma", dto.UpdateInventoryRequest{
		CurrentStock: intPtr(1),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInventoryUpdate_NegativosRechazados(t *testing.T) {
	uc := usecase.NewInventoryUseCase(&fakeInventoryRepo{}, &fakeProductRepo{})

	_, err := uc.Update(context.Background(), "i1", dto.UpdateInventoryRequest{
		MinimumThreshold: intPtr(-3),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
