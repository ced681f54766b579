package reporting_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/reporting"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// fakeReportingRepo — doble de prueba del repositorio de reportes, compartido
// por los tests del paquete. Cada campo de función reemplaza un método; nil
// significa "no debería llamarse en este test".
// ──────────────────────────────────────────────────────────────────────────────

type fakeReportingRepo struct {
	byBucket   func(ctx context.Context, g repository.Granularity, f repository.SalesFilter) ([]repository.RevenueBucketRow, error)
	summary    func(ctx context.Context, f repository.SalesFilter) (repository.RevenueSummaryRow, error)
	byCategory func(ctx context.Context, f repository.CategoryRevenueFilter) ([]repository.CategoryRevenueRow, error)
}

func (r *fakeReportingRepo) RevenueByBucket(ctx context.Context, g repository.Granularity, f repository.SalesFilter) ([]repository.RevenueBucketRow, error) {
	if r.byBucket == nil {
		panic("RevenueByBucket no debería invocarse en este test")
	}
	return r.byBucket(ctx, g, f)
}

func (r *fakeReportingRepo) RevenueSummary(ctx context.Context, f repository.SalesFilter) (repository.RevenueSummaryRow, error) {
	if r.summary == nil {
		panic("RevenueSummary no debería invocarse en este test")
	}
	return r.summary(ctx, f)
}

func (r *fakeReportingRepo) RevenueByCategory(ctx context.Context, f repository.CategoryRevenueFilter) ([]repository.CategoryRevenueRow, error) {
	if r.byCategory == nil {
		panic("RevenueByCategory no debería invocarse en este test")
	}
	return r.byCategory(ctx, f)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetBucketedRevenue — validación de parámetros
// ──────────────────────────────────────────────────────────────────────────────

func TestGetBucketedRevenue_GranularidadInvalida(t *testing.T) {
	uc := reporting.NewRevenueUseCase(&fakeReportingRepo{})

	for _, g := range []string{"", "daily", "hour", "DAY"} {
		_, err := uc.GetBucketedRevenue(context.Background(), dto.RevenueRequest{Granularity: g})
		assert.ErrorIs(t, err, domain.ErrInvalidGranularity,
			"granularity %q debe rechazarse antes de consultar la DB", g)
	}
}

func TestGetBucketedRevenue_FechaInvalidaNoLlegaALaDB(t *testing.T) {
	uc := reporting.NewRevenueUseCase(&fakeReportingRepo{})

	_, err := uc.GetBucketedRevenue(context.Background(), dto.RevenueRequest{
		Granularity: "day",
		StartDate:   "01/01/2024",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidDateFormat)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetBucketedRevenue — mapeo de filas a DTO
// ──────────────────────────────────────────────────────────────────────────────

func TestGetBucketedRevenue_Dia_SinFinDeCubo(t *testing.T) {
	repo := &fakeReportingRepo{
		byBucket: func(_ context.Context, g repository.Granularity, _ repository.SalesFilter) ([]repository.RevenueBucketRow, error) {
			assert.Equal(t, repository.GranularityDay, g)
			return []repository.RevenueBucketRow{{
				BucketStart:       time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
				Revenue:           dec("150.456"),
				TotalSales:        3,
				AverageOrderValue: dec("50.152"),
				TotalQuantity:     7,
			}}, nil
		},
	}
	uc := reporting.NewRevenueUseCase(repo)

	out, err := uc.GetBucketedRevenue(context.Background(), dto.RevenueRequest{Granularity: "day"})
	require.NoError(t, err)
	require.Len(t, out, 1)

	b := out[0]
	assert.Equal(t, "2024-03-15", b.BucketStart)
	assert.Empty(t, b.BucketEnd, "day no tiene fin de cubo")
	assert.True(t, dec("150.46").Equal(b.Revenue), "revenue debe redondearse a 2 decimales")
	assert.True(t, dec("50.15").Equal(b.AverageOrderValue))
	assert.EqualValues(t, 3, b.TotalSales)
	assert.EqualValues(t, 7, b.TotalQuantity)
	assert.Zero(t, b.DaysWithSales)
}

func TestGetBucketedRevenue_Anio_ConMesesActivos(t *testing.T) {
	repo := &fakeReportingRepo{
		byBucket: func(_ context.Context, g repository.Granularity, f repository.SalesFilter) ([]repository.RevenueBucketRow, error) {
			assert.Equal(t, repository.GranularityYear, g)
			assert.Equal(t, "prod-1", f.ProductID, "el filtro de producto debe llegar al repositorio")
			return []repository.RevenueBucketRow{{
				BucketStart:     time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
				BucketEnd:       time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
				Revenue:         dec("1200"),
				TotalSales:      40,
				TotalQuantity:   90,
				DaysWithSales:   35,
				MonthsWithSales: 11,
			}}, nil
		},
	}
	uc := reporting.NewRevenueUseCase(repo)

	out, err := uc.GetBucketedRevenue(context.Background(), dto.RevenueRequest{
		Granularity: "year",
		ProductID:   "prod-1",
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "2024-01-01", out[0].BucketStart)
	assert.Equal(t, "2024-12-31", out[0].BucketEnd)
	assert.EqualValues(t, 35, out[0].DaysWithSales)
	assert.EqualValues(t, 11, out[0].MonthsWithSales)
}

func TestGetBucketedRevenue_SinVentas_ListaVacia(t *testing.T) {
	repo := &fakeReportingRepo{
		byBucket: func(context.Context, repository.Granularity, repository.SalesFilter) ([]repository.RevenueBucketRow, error) {
			return nil, nil
		},
	}
	uc := reporting.NewRevenueUseCase(repo)

	out, err := uc.GetBucketedRevenue(context.Background(), dto.RevenueRequest{Granularity: "month"})
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.NotNil(t, out, "la respuesta debe serializar como [] y no como null")
}
