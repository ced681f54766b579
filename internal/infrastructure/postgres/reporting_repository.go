package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

var _ repository.ReportingRepository = (*ReportingRepo)(nil)

// ReportingRepo consultas de solo lectura para los reportes de ingresos.
// Toda la agregación (sumas, promedios, truncamiento de fechas, conteos
// de días distintos) ocurre en SQL; aquí no se calcula nada.
type ReportingRepo struct {
	q Querier
}

// NewReportingRepository construye el adaptador de reportes.
func NewReportingRepository(q Querier) *ReportingRepo {
	return &ReportingRepo{q: q}
}

// revenueMetrics métricas comunes a todas las consultas de ingresos.
// COALESCE garantiza ceros (nunca NULL) cuando un agregado no tiene filas.
const revenueMetrics = `
	    COALESCE(SUM(s.total_amount), 0)      AS revenue,
	    COUNT(s.id)                           AS total_sales,
	    COALESCE(AVG(s.total_amount), 0)      AS average_order_value,
	    COALESCE(SUM(s.quantity), 0)          AS total_quantity`

// RevenueByBucket agrupa las ventas por cubo temporal según la granularidad.
//
// Los cubos siguen DATE_TRUNC de PostgreSQL: semanas ISO que inician lunes,
// meses y años calendario. El fin de cubo se calcula con un INTERVAL sobre
// el inicio truncado; day no tiene fin de cubo.
func (r *ReportingRepo) RevenueByBucket(
	ctx context.Context,
	g repository.Granularity,
	filter repository.SalesFilter,
) ([]repository.RevenueBucketRow, error) {
	sel, err := bucketSelect(g)
	if err != nil {
		return nil, err
	}

	conds, args, joinProducts := salesPredicates(filter)
	query := "SELECT" + sel + "\n\tFROM sales s"
	if joinProducts {
		query += "\n\tJOIN products p ON p.id = s.product_id"
	}
	query += whereClause(conds)
	query += fmt.Sprintf("\n\tGROUP BY DATE_TRUNC('%s', s.sale_date)\n\tORDER BY bucket_start DESC", g)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("reporting.RevenueByBucket(%s): %w", g, err)
	}
	defer rows.Close()

	var results []repository.RevenueBucketRow
	for rows.Next() {
		var row repository.RevenueBucketRow
		dest := []any{&row.BucketStart}
		if g != repository.GranularityDay {
			dest = append(dest, &row.BucketEnd)
		}
		dest = append(dest, &row.Revenue, &row.TotalSales, &row.AverageOrderValue, &row.TotalQuantity)
		if g != repository.GranularityDay {
			dest = append(dest, &row.DaysWithSales)
		}
		if g == repository.GranularityYear {
			dest = append(dest, &row.MonthsWithSales)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("reporting.RevenueByBucket scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// bucketSelect columnas del SELECT por granularidad, en el orden de escaneo:
// bucket_start, [bucket_end], métricas, [days_with_sales], [months_with_sales].
func bucketSelect(g repository.Granularity) (string, error) {
	switch g {
	case repository.GranularityDay:
		return `
	    DATE_TRUNC('day', s.sale_date)::date                                AS bucket_start,` +
			revenueMetrics, nil
	case repository.GranularityWeek:
		return `
	    DATE_TRUNC('week', s.sale_date)::date                               AS bucket_start,
	    (DATE_TRUNC('week', s.sale_date) + INTERVAL '6 days')::date         AS bucket_end,` +
			revenueMetrics + `,
	    COUNT(DISTINCT s.sale_date)                                         AS days_with_sales`, nil
	case repository.GranularityMonth:
		return `
	    DATE_TRUNC('month', s.sale_date)::date                              AS bucket_start,
	    (DATE_TRUNC('month', s.sale_date) + INTERVAL '1 month - 1 day')::date AS bucket_end,` +
			revenueMetrics + `,
	    COUNT(DISTINCT s.sale_date)                                         AS days_with_sales`, nil
	case repository.GranularityYear:
		return `
	    DATE_TRUNC('year', s.sale_date)::date                               AS bucket_start,
	    (DATE_TRUNC('year', s.sale_date) + INTERVAL '1 year - 1 day')::date AS bucket_end,` +
			revenueMetrics + `,
	    COUNT(DISTINCT s.sale_date)                                         AS days_with_sales,
	    COUNT(DISTINCT DATE_TRUNC('month', s.sale_date))                    AS months_with_sales`, nil
	}
	return "", fmt.Errorf("granularidad desconocida: %q", g)
}

// RevenueSummary agrega todo el rango en una sola fila. Un rango sin ventas
// devuelve todas las métricas en cero (COALESCE), nunca NULL.
func (r *ReportingRepo) RevenueSummary(
	ctx context.Context,
	filter repository.SalesFilter,
) (repository.RevenueSummaryRow, error) {
	conds, args, joinProducts := salesPredicates(filter)
	query := "SELECT" + revenueMetrics + `,
	    COUNT(DISTINCT s.sale_date)           AS days_with_sales
	FROM sales s`
	if joinProducts {
		query += "\n\tJOIN products p ON p.id = s.product_id"
	}
	query += whereClause(conds)

	var row repository.RevenueSummaryRow
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&row.Revenue, &row.TotalSales, &row.AverageOrderValue, &row.TotalQuantity, &row.DaysWithSales,
	)
	if err != nil {
		return repository.RevenueSummaryRow{}, fmt.Errorf("reporting.RevenueSummary: %w", err)
	}
	return row, nil
}

// RevenueByCategory agrupa las métricas por categoría. El join es interno:
// las categorías sin ventas en el rango no aparecen en el resultado.
func (r *ReportingRepo) RevenueByCategory(
	ctx context.Context,
	filter repository.CategoryRevenueFilter,
) ([]repository.CategoryRevenueRow, error) {
	var conds []string
	var args []any
	if !filter.StartDate.IsZero() {
		args = append(args, filter.StartDate)
		conds = append(conds, fmt.Sprintf("s.sale_date >= $%d", len(args)))
	}
	if !filter.EndDate.IsZero() {
		args = append(args, filter.EndDate)
		conds = append(conds, fmt.Sprintf("s.sale_date <= $%d", len(args)))
	}
	if len(filter.CategoryIDs) > 0 {
		args = append(args, filter.CategoryIDs)
		conds = append(conds, fmt.Sprintf("c.id = ANY($%d::uuid[])", len(args)))
	}

	query := `SELECT
	    c.id::text,
	    c.name,` + revenueMetrics + `,
	    COUNT(DISTINCT s.sale_date)           AS days_with_sales
	FROM sales s
	JOIN products p ON p.id = s.product_id
	JOIN categories c ON c.id = p.category_id` +
		whereClause(conds) + `
	GROUP BY c.id, c.name
	ORDER BY revenue DESC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("reporting.RevenueByCategory: %w", err)
	}
	defer rows.Close()

	var results []repository.CategoryRevenueRow
	for rows.Next() {
		var row repository.CategoryRevenueRow
		if err := rows.Scan(
			&row.CategoryID, &row.CategoryName,
			&row.Revenue, &row.TotalSales, &row.AverageOrderValue, &row.TotalQuantity,
			&row.DaysWithSales,
		); err != nil {
			return nil, fmt.Errorf("reporting.RevenueByCategory scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// salesPredicates lista inmutable de condiciones derivada del filtro de ventas.
// Devuelve además si la consulta necesita el join a products (filtro por categoría).
func salesPredicates(f repository.SalesFilter) (conds []string, args []any, joinProducts bool) {
	if !f.StartDate.IsZero() {
		args = append(args, f.StartDate)
		conds = append(conds, fmt.Sprintf("s.sale_date >= $%d", len(args)))
	}
	if !f.EndDate.IsZero() {
		args = append(args, f.EndDate)
		conds = append(conds, fmt.Sprintf("s.sale_date <= $%d", len(args)))
	}
	if f.ProductID != "" {
		args = append(args, f.ProductID)
		conds = append(conds, fmt.Sprintf("s.product_id = $%d", len(args)))
	}
	if f.CategoryID != "" {
		args = append(args, f.CategoryID)
		conds = append(conds, fmt.Sprintf("p.category_id = $%d", len(args)))
		joinProducts = true
	}
	return conds, args, joinProducts
}
