package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste una venta.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, product_id, quantity, unit_price, total_amount, sale_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		sale.ID, sale.ProductID, sale.Quantity, sale.UnitPrice, sale.TotalAmount,
		sale.SaleDate, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

const saleListFrom = `
	FROM sales s
	JOIN products p ON p.id = s.product_id
	LEFT JOIN categories c ON c.id = p.category_id`

// List devuelve ventas con producto y categoría resueltos, ordenadas por
// fecha descendente, más el total sin paginar.
func (r *SaleRepo) List(ctx context.Context, f repository.SaleFilter) ([]repository.SaleWithProduct, int64, error) {
	conds, args, _ := salesPredicates(repository.SalesFilter{
		StartDate:  f.StartDate,
		EndDate:    f.EndDate,
		ProductID:  f.ProductID,
		CategoryID: f.CategoryID,
	})
	where := whereClause(conds)

	var total int64
	countQuery := "SELECT COUNT(*)" + saleListFrom + where
	if err := r.q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count sales: %w", err)
	}

	query := `SELECT
	    s.id::text,
	    s.product_id::text,
	    s.quantity,
	    s.unit_price,
	    s.total_amount,
	    s.sale_date,
	    s.created_at,
	    p.name,
	    p.sku,
	    COALESCE(p.category_id::text, ''),
	    COALESCE(c.name, '')` + saleListFrom + where + `
	ORDER BY s.sale_date DESC`
	if f.Page > 0 && f.Limit > 0 {
		query += fmt.Sprintf("\n\tLIMIT %d OFFSET %d", f.Limit, (f.Page-1)*f.Limit)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var list []repository.SaleWithProduct
	for rows.Next() {
		var row repository.SaleWithProduct
		if err := rows.Scan(
			&row.ID, &row.ProductID, &row.Quantity, &row.UnitPrice, &row.TotalAmount,
			&row.SaleDate, &row.CreatedAt,
			&row.ProductName, &row.ProductSKU, &row.CategoryID, &row.CategoryName,
		); err != nil {
			return nil, 0, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, row)
	}
	return list, total, rows.Err()
}
