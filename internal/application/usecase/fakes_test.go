package usecase_test

import (
	"context"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// Dobles de prueba de los puertos de persistencia, compartidos por los tests
// del paquete. Cada campo de función reemplaza un método; nil significa
// "no debería llamarse en este test".

type fakeCategoryRepo struct {
	create  func(ctx context.Context, c *entity.Category) error
	getByID func(ctx context.Context, id string) (*entity.Category, error)
}

func (r *fakeCategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	if r.create == nil {
		panic("CategoryRepository.Create no debería invocarse en este test")
	}
	return r.create(ctx, c)
}

func (r *fakeCategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	if r.getByID == nil {
		panic("CategoryRepository.GetByID no debería invocarse en este test")
	}
	return r.getByID(ctx, id)
}

type fakeProductRepo struct {
	create  func(ctx context.Context, p *entity.Product) error
	getByID func(ctx context.Context, id string) (*entity.Product, error)
}

func (r *fakeProductRepo) Create(ctx context.Context, p *entity.Product) error {
	if r.create == nil {
		panic("ProductRepository.Create no debería invocarse en este test")
	}
	return r.create(ctx, p)
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	if r.getByID == nil {
		panic("ProductRepository.GetByID no debería invocarse en este test")
	}
	return r.getByID(ctx, id)
}

type fakeInventoryRepo struct {
	create     func(ctx context.Context, inv *entity.Inventory) error
	getByID    func(ctx context.Context, id string) (*entity.Inventory, error)
	update     func(ctx context.Context, inv *entity.Inventory) error
	list       func(ctx context.Context, f repository.InventoryFilter) ([]repository.InventoryItem, int64, error)
	listAlerts func(ctx context.Context, f repository.InventoryFilter) ([]repository.InventoryItem, int64, error)
}

func (r *fakeInventoryRepo) Create(ctx context.Context, inv *entity.Inventory) error {
	if r.create == nil {
		panic("InventoryRepository.Create no debería invocarse en este test")
	}
	return r.create(ctx, inv)
}

func (r *fakeInventoryRepo) GetByID(ctx context.Context, id string) (*entity.Inventory, error) {
	if r.getByID == nil {
		panic("InventoryRepository.GetByID no debería invocarse en este test")
	}
	return r.getByID(ctx, id)
}

func (r *fakeInventoryRepo) Update(ctx context.Context, inv *entity.Inventory) error {
	if r.update == nil {
		panic("InventoryRepository.Update no debería invocarse en este test")
	}
	return r.update(ctx, inv)
}

func (r *fakeInventoryRepo) List(ctx context.Context, f repository.InventoryFilter) ([]repository.InventoryItem, int64, error) {
	if r.list == nil {
		panic("InventoryRepository.List no debería invocarse en este test")
	}
	return r.list(ctx, f)
}

func (r *fakeInventoryRepo) ListAlerts(ctx context.Context, f repository.InventoryFilter) ([]repository.InventoryItem, int64, error) {
	if r.listAlerts == nil {
		panic("InventoryRepository.ListAlerts no debería invocarse en este test")
	}
	return r.listAlerts(ctx, f)
}

type fakeSaleRepo struct {
	create func(ctx context.Context, s *entity.Sale) error
	list   func(ctx context.Context, f repository.SaleFilter) ([]repository.SaleWithProduct, int64, error)
}

func (r *fakeSaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	if r.create == nil {
		panic("SaleRepository.Create no debería invocarse en este test")
	}
	return r.create(ctx, s)
}

func (r *fakeSaleRepo) List(ctx context.Context, f repository.SaleFilter) ([]repository.SaleWithProduct, int64, error) {
	if r.list == nil {
		panic("SaleRepository.List no debería invocarse en este test")
	}
	return r.list(ctx, f)
}
