package reporting_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/reporting"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

func TestCompareCategoryRevenue_ParticipacionesSumanCien(t *testing.T) {
	repo := &fakeReportingRepo{
		byCategory: func(context.Context, repository.CategoryRevenueFilter) ([]repository.CategoryRevenueRow, error) {
			return []repository.CategoryRevenueRow{
				{CategoryID: "c1", CategoryName: "Electronics", Revenue: dec("600"), TotalSales: 6},
				{CategoryID: "c2", CategoryName: "Books", Revenue: dec("300"), TotalSales: 3},
				{CategoryID: "c3", CategoryName: "Sports", Revenue: dec("100"), TotalSales: 1},
			}, nil
		},
	}
	uc := reporting.NewRevenueUseCase(repo)

	out, err := uc.CompareCategoryRevenue(context.Background(), dto.CategoryRevenueRequest{})
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.True(t, dec("60").Equal(out[0].RevenuePercentage), "600/1000 = 60%%, fue %s", out[0].RevenuePercentage)
	assert.True(t, dec("30").Equal(out[1].RevenuePercentage))
	assert.True(t, dec("10").Equal(out[2].RevenuePercentage))

	var suma decimal.Decimal
	for _, c := range out {
		suma = suma.Add(c.RevenuePercentage)
	}
	assert.True(t, dec("100").Equal(suma), "las participaciones deben sumar 100")
}

// Con ingreso total en cero no hay división: todas las participaciones son 0.
func TestCompareCategoryRevenue_TotalCeroSinDivision(t *testing.T) {
	repo := &fakeReportingRepo{
		byCategory: func(context.Context, repository.CategoryRevenueFilter) ([]repository.CategoryRevenueRow, error) {
			return []repository.CategoryRevenueRow{
				{CategoryID: "c1", CategoryName: "Electronics", Revenue: decimal.Zero},
			}, nil
		},
	}
	uc := reporting.NewRevenueUseCase(repo)

	out, err := uc.CompareCategoryRevenue(context.Background(), dto.CategoryRevenueRequest{})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.True(t, out[0].RevenuePercentage.IsZero())
}

// category_ids llega como lista separada por comas y se pasa ya dividida
// al repositorio.
func TestCompareCategoryRevenue_ListaDeIDs(t *testing.T) {
	var filtro repository.CategoryRevenueFilter
	repo := &fakeReportingRepo{
		byCategory: func(_ context.Context, f repository.CategoryRevenueFilter) ([]repository.CategoryRevenueRow, error) {
			filtro = f
			return nil, nil
		},
	}
	uc := reporting.NewRevenueUseCase(repo)

	out, err := uc.CompareCategoryRevenue(context.Background(), dto.CategoryRevenueRequest{
		StartDate:   "2024-01-01",
		EndDate:     "2024-06-30",
		CategoryIDs: "c1, c2,,c3",
	})
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, []string{"c1", "c2", "c3"}, filtro.CategoryIDs)
	assert.Equal(t, 2024, filtro.StartDate.Year())
	assert.False(t, filtro.EndDate.IsZero())
}

func TestCompareCategoryRevenue_FechaInvalida(t *testing.T) {
	uc := reporting.NewRevenueUseCase(&fakeReportingRepo{})

	_, err := uc.CompareCategoryRevenue(context.Background(), dto.CategoryRevenueRequest{
		StartDate: "2024-13-01",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidDateFormat)
}
