package reporting

import (
	"context"
	"fmt"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/filter"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// CompareCategoryRevenue calcula las métricas de ingresos agrupadas por
// categoría sobre un rango opcional de fechas, con la participación
// porcentual de cada categoría en el ingreso total.
//
// Las categorías sin ventas en el rango no aparecen: la agregación es un
// inner join a través de la tabla de ventas, no un recorrido del catálogo.
func (uc *RevenueUseCase) CompareCategoryRevenue(
	ctx context.Context,
	req dto.CategoryRevenueRequest,
) ([]dto.CategoryRevenueDTO, error) {
	start, end, err := filter.DateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	rows, err := uc.repo.RevenueByCategory(ctx, repository.CategoryRevenueFilter{
		StartDate:   start,
		EndDate:     end,
		CategoryIDs: filter.SplitIDs(req.CategoryIDs),
	})
	if err != nil {
		return nil, fmt.Errorf("comparación por categoría: %w", err)
	}

	var totalRevenue decimal.Decimal
	for _, row := range rows {
		totalRevenue = totalRevenue.Add(row.Revenue)
	}

	result := make([]dto.CategoryRevenueDTO, 0, len(rows))
	for _, row := range rows {
		// Con ingreso total en cero todas las participaciones son cero
		// (no hay división).
		pct := decimal.Zero
		if totalRevenue.IsPositive() {
			pct = row.Revenue.Div(totalRevenue).Mul(hundred).Round(2)
		}
		result = append(result, dto.CategoryRevenueDTO{
			CategoryID:        row.CategoryID,
			CategoryName:      row.CategoryName,
			Revenue:           row.Revenue.Round(2),
			TotalSales:        row.TotalSales,
			AverageOrderValue: row.AverageOrderValue.Round(2),
			TotalQuantity:     row.TotalQuantity,
			DaysWithSales:     row.DaysWithSales,
			RevenuePercentage: pct,
		})
	}
	return result, nil
}
