package reporting

import (
	"context"
	"fmt"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// CompareRevenue calcula las métricas de ingresos de dos períodos y la
// variación porcentual de cada métrica, período 2 respecto al período 1.
//
// Los dos agregados son independientes, así que se lanzan en goroutines y
// se combinan recién al calcular las variaciones. Si cualquiera falla, falla
// la comparación completa (no hay resultado parcial).
func (uc *RevenueUseCase) CompareRevenue(
	ctx context.Context,
	req dto.CompareRevenueRequest,
) (*dto.RevenueComparisonDTO, error) {
	p1, p2, err := normalizePeriods(req)
	if err != nil {
		return nil, err
	}

	type summaryResult struct {
		row repository.RevenueSummaryRow
		err error
	}

	p1Ch := make(chan summaryResult, 1)
	p2Ch := make(chan summaryResult, 1)

	go func() {
		row, err := uc.repo.RevenueSummary(ctx, p1)
		p1Ch <- summaryResult{row, err}
	}()
	go func() {
		row, err := uc.repo.RevenueSummary(ctx, p2)
		p2Ch <- summaryResult{row, err}
	}()

	res1 := <-p1Ch
	res2 := <-p2Ch

	if res1.err != nil {
		return nil, fmt.Errorf("comparación: período 1: %w", res1.err)
	}
	if res2.err != nil {
		return nil, fmt.Errorf("comparación: período 2: %w", res2.err)
	}

	return &dto.RevenueComparisonDTO{
		Period1:    periodDTO(p1, res1.row),
		Period2:    periodDTO(p2, res2.row),
		Comparison: compareSummaries(res1.row, res2.row),
	}, nil
}

// normalizePeriods valida los cuatro límites de fecha y los filtros comunes.
// Todos los límites son obligatorios y se verifican antes de cualquier consulta.
func normalizePeriods(req dto.CompareRevenueRequest) (p1, p2 repository.SalesFilter, err error) {
	bounds := []struct {
		name  string
		value string
	}{
		{"period1_start", req.Period1Start},
		{"period1_end", req.Period1End},
		{"period2_start", req.Period2Start},
		{"period2_end", req.Period2End},
	}
	for _, b := range bounds {
		if b.value == "" {
			return p1, p2, fmt.Errorf("%w: falta %s", domain.ErrMissingPeriodBounds, b.name)
		}
	}

	if p1, err = normalizeSalesFilter(req.Period1Start, req.Period1End, req.ProductID, req.CategoryID); err != nil {
		return p1, p2, err
	}
	if p2, err = normalizeSalesFilter(req.Period2Start, req.Period2End, req.ProductID, req.CategoryID); err != nil {
		return p1, p2, err
	}
	return p1, p2, nil
}

func periodDTO(f repository.SalesFilter, row repository.RevenueSummaryRow) dto.PeriodRevenueDTO {
	return dto.PeriodRevenueDTO{
		StartDate:         f.StartDate.Format(dateLayout),
		EndDate:           f.EndDate.Format(dateLayout),
		Revenue:           row.Revenue.Round(2),
		TotalSales:        row.TotalSales,
		AverageOrderValue: row.AverageOrderValue.Round(2),
		TotalQuantity:     row.TotalQuantity,
		DaysWithSales:     row.DaysWithSales,
	}
}

func compareSummaries(prev, cur repository.RevenueSummaryRow) dto.RevenueChangesDTO {
	return dto.RevenueChangesDTO{
		RevenueChange:           percentageChange(cur.Revenue, prev.Revenue),
		TotalSalesChange:        percentageChange(decimal.NewFromInt(cur.TotalSales), decimal.NewFromInt(prev.TotalSales)),
		AverageOrderValueChange: percentageChange(cur.AverageOrderValue, prev.AverageOrderValue),
		TotalQuantityChange:     percentageChange(decimal.NewFromInt(cur.TotalQuantity), decimal.NewFromInt(prev.TotalQuantity)),
		DaysWithSalesChange:     percentageChange(decimal.NewFromInt(cur.DaysWithSales), decimal.NewFromInt(prev.DaysWithSales)),
	}
}

// percentageChange devuelve (current - previous) / previous * 100.
// Con previous en cero no hay base de comparación: devuelve 100 si current
// es positivo y 0 en caso contrario. Esta regla asimétrica es parte del
// contrato del endpoint y está fijada por tests.
func percentageChange(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		if current.IsPositive() {
			return hundred
		}
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous).Mul(hundred).Round(2)
}
