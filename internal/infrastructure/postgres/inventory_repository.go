package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create persiste el inventario de un producto. Un product_id repetido devuelve ErrDuplicate.
func (r *InventoryRepo) Create(ctx context.Context, inv *entity.Inventory) error {
	query := `
		INSERT INTO inventory (id, product_id, current_stock, minimum_threshold, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		inv.ID, inv.ProductID, inv.CurrentStock, inv.MinimumThreshold, inv.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// GetByID obtiene un registro de inventario por ID. Devuelve nil, nil si no existe.
func (r *InventoryRepo) GetByID(ctx context.Context, id string) (*entity.Inventory, error) {
	query := `
		SELECT id::text, product_id::text, current_stock, minimum_threshold, updated_at
		FROM inventory WHERE id = $1`
	var inv entity.Inventory
	err := r.q.QueryRow(ctx, query, id).Scan(
		&inv.ID, &inv.ProductID, &inv.CurrentStock, &inv.MinimumThreshold, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &inv, nil
}

// Update persiste stock y umbral de un registro existente.
func (r *InventoryRepo) Update(ctx context.Context, inv *entity.Inventory) error {
	query := `
		UPDATE inventory SET current_stock = $2, minimum_threshold = $3, updated_at = $4
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, inv.ID, inv.CurrentStock, inv.MinimumThreshold, inv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update inventory: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// inventoryItemColumns columnas del join inventario + producto + categoría,
// en el orden en que se escanean.
const inventoryItemColumns = `
	    i.id::text,
	    i.current_stock,
	    i.minimum_threshold,
	    i.updated_at,
	    p.id::text,
	    p.name,
	    p.sku,
	    p.price,
	    COALESCE(p.category_id::text, ''),
	    COALESCE(c.name, '')`

const inventoryItemFrom = `
	FROM inventory i
	JOIN products p ON p.id = i.product_id
	LEFT JOIN categories c ON c.id = p.category_id`

// List devuelve inventario con filtros, orden y paginación, más el total sin paginar.
func (r *InventoryRepo) List(ctx context.Context, f repository.InventoryFilter) ([]repository.InventoryItem, int64, error) {
	conds, args := inventoryPredicates(f, false)
	return r.listItems(ctx, conds, args, inventoryOrder(f), f.Page, f.Limit)
}

// ListAlerts devuelve los registros en o por debajo del umbral, ordenados por
// déficit descendente (primero los más lejos de su mínimo).
func (r *InventoryRepo) ListAlerts(ctx context.Context, f repository.InventoryFilter) ([]repository.InventoryItem, int64, error) {
	conds, args := inventoryPredicates(f, true)
	order := "ORDER BY (i.minimum_threshold - i.current_stock) DESC"
	return r.listItems(ctx, conds, args, order, f.Page, f.Limit)
}

func (r *InventoryRepo) listItems(
	ctx context.Context,
	conds []string,
	args []any,
	order string,
	page, limit int,
) ([]repository.InventoryItem, int64, error) {
	where := whereClause(conds)

	var total int64
	countQuery := "SELECT COUNT(*)" + inventoryItemFrom + where
	if err := r.q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count inventory: %w", err)
	}

	query := "SELECT" + inventoryItemColumns + inventoryItemFrom + where + "\n\t" + order
	if page > 0 && limit > 0 {
		query += fmt.Sprintf("\n\tLIMIT %d OFFSET %d", limit, (page-1)*limit)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()

	var items []repository.InventoryItem
	for rows.Next() {
		var item repository.InventoryItem
		if err := rows.Scan(
			&item.ID, &item.CurrentStock, &item.MinimumThreshold, &item.UpdatedAt,
			&item.ProductID, &item.ProductName, &item.ProductSKU, &item.ProductPrice,
			&item.CategoryID, &item.CategoryName,
		); err != nil {
			return nil, 0, fmt.Errorf("scan inventory: %w", err)
		}
		items = append(items, item)
	}
	return items, total, rows.Err()
}

// inventoryPredicates lista inmutable de condiciones derivada del filtro.
func inventoryPredicates(f repository.InventoryFilter, alertsOnly bool) (conds []string, args []any) {
	if alertsOnly {
		conds = append(conds, "i.current_stock <= i.minimum_threshold")
	}
	if f.CategoryID != "" {
		args = append(args, f.CategoryID)
		conds = append(conds, fmt.Sprintf("p.category_id = $%d", len(args)))
	}
	return conds, args
}

// inventoryOrder traduce SortBy/SortOrder a la cláusula ORDER BY.
// Sin sort_by el listado sale por stock ascendente (primero lo más escaso).
func inventoryOrder(f repository.InventoryFilter) string {
	if f.SortBy == "" {
		return "ORDER BY i.current_stock ASC"
	}
	dir := f.SortOrder
	if dir == "" {
		dir = "DESC"
	}
	return fmt.Sprintf("ORDER BY i.%s %s", f.SortBy, dir)
}

func whereClause(conds []string) string {
	if len(conds) == 0 {
		return ""
	}
	return "\n\tWHERE " + strings.Join(conds, "\n\t  AND ")
}
