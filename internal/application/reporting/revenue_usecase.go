// Package reporting contiene los casos de uso de reportes de ingresos:
// agregación por cubo temporal, comparación entre períodos y comparación
// por categoría. Toda la agregación ocurre en SQL; aquí solo se validan
// filtros, se combinan resultados y se calculan porcentajes.
package reporting

import (
	"context"
	"fmt"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/filter"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

var hundred = decimal.NewFromInt(100)

// RevenueUseCase orquesta las consultas de ingresos sobre el repositorio de
// reportes. Es stateless: cada llamada es independiente y read-only.
type RevenueUseCase struct {
	repo repository.ReportingRepository
}

// NewRevenueUseCase construye el caso de uso.
func NewRevenueUseCase(repo repository.ReportingRepository) *RevenueUseCase {
	return &RevenueUseCase{repo: repo}
}

// GetBucketedRevenue devuelve un agregado por cubo temporal según la
// granularidad pedida, del más reciente al más antiguo. El reporte siempre
// se devuelve completo, sin paginación.
func (uc *RevenueUseCase) GetBucketedRevenue(
	ctx context.Context,
	req dto.RevenueRequest,
) ([]dto.RevenueBucketDTO, error) {
	g, err := parseGranularity(req.Granularity)
	if err != nil {
		return nil, err
	}
	f, err := normalizeSalesFilter(req.StartDate, req.EndDate, req.ProductID, req.CategoryID)
	if err != nil {
		return nil, err
	}

	rows, err := uc.repo.RevenueByBucket(ctx, g, f)
	if err != nil {
		return nil, fmt.Errorf("reporte de ingresos por %s: %w", g, err)
	}

	buckets := make([]dto.RevenueBucketDTO, 0, len(rows))
	for _, row := range rows {
		b := dto.RevenueBucketDTO{
			BucketStart:       row.BucketStart.Format(dateLayout),
			Revenue:           row.Revenue.Round(2),
			TotalSales:        row.TotalSales,
			AverageOrderValue: row.AverageOrderValue.Round(2),
			TotalQuantity:     row.TotalQuantity,
			DaysWithSales:     row.DaysWithSales,
			MonthsWithSales:   row.MonthsWithSales,
		}
		if !row.BucketEnd.IsZero() {
			b.BucketEnd = row.BucketEnd.Format(dateLayout)
		}
		buckets = append(buckets, b)
	}
	return buckets, nil
}

// parseGranularity valida el parámetro granularity.
func parseGranularity(s string) (repository.Granularity, error) {
	switch repository.Granularity(s) {
	case repository.GranularityDay, repository.GranularityWeek,
		repository.GranularityMonth, repository.GranularityYear:
		return repository.Granularity(s), nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrInvalidGranularity, s)
}

// normalizeSalesFilter valida los filtros comunes de las consultas de ingresos.
func normalizeSalesFilter(startStr, endStr, productID, categoryID string) (repository.SalesFilter, error) {
	start, end, err := filter.DateRange(startStr, endStr)
	if err != nil {
		return repository.SalesFilter{}, err
	}
	return repository.SalesFilter{
		StartDate:  start,
		EndDate:    end,
		ProductID:  productID,
		CategoryID: categoryID,
	}, nil
}
