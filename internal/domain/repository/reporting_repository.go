package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Granularity unidad de truncamiento temporal para los reportes de ingresos.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
	GranularityYear  Granularity = "year"
)

// SalesFilter filtros ya normalizados para las consultas de ingresos.
// Las fechas en cero significan límite abierto (época / ahora).
type SalesFilter struct {
	StartDate  time.Time
	EndDate    time.Time
	ProductID  string
	CategoryID string
}

// CategoryRevenueFilter filtros para la comparación por categoría.
// CategoryIDs vacío significa todas las categorías con ventas en el rango.
type CategoryRevenueFilter struct {
	StartDate   time.Time
	EndDate     time.Time
	CategoryIDs []string
}

// RevenueBucketRow resultado crudo de la agregación por cubo temporal.
// Lo produce la DB; el caso de uso lo convierte en DTO.
// DaysWithSales solo se calcula para week/month/year; MonthsWithSales solo para year.
type RevenueBucketRow struct {
	BucketStart       time.Time
	BucketEnd         time.Time // cero para granularidad day
	Revenue           decimal.Decimal
	TotalSales        int64
	AverageOrderValue decimal.Decimal
	TotalQuantity     int64
	DaysWithSales     int64
	MonthsWithSales   int64
}

// RevenueSummaryRow agregado de una sola fila sobre un rango de fechas.
// Todos los campos llegan en cero cuando el rango no tiene ventas (COALESCE en SQL).
type RevenueSummaryRow struct {
	Revenue           decimal.Decimal
	TotalSales        int64
	AverageOrderValue decimal.Decimal
	TotalQuantity     int64
	DaysWithSales     int64
}

// CategoryRevenueRow agregado por categoría. Solo aparecen categorías con
// ventas en el rango (inner join a través de la tabla de ventas).
type CategoryRevenueRow struct {
	CategoryID        string
	CategoryName      string
	Revenue           decimal.Decimal
	TotalSales        int64
	AverageOrderValue decimal.Decimal
	TotalQuantity     int64
	DaysWithSales     int64
}

// ReportingRepository define las consultas de lectura para los reportes de ingresos.
// Las implementaciones son read-only: nunca modifican las ventas.
type ReportingRepository interface {
	// RevenueByBucket devuelve un agregado por cubo temporal según la
	// granularidad, ordenado por inicio de cubo descendente.
	RevenueByBucket(ctx context.Context, g Granularity, filter SalesFilter) ([]RevenueBucketRow, error)

	// RevenueSummary devuelve el agregado total del rango en una sola fila.
	RevenueSummary(ctx context.Context, filter SalesFilter) (RevenueSummaryRow, error)

	// RevenueByCategory agrupa el mismo conjunto de métricas por categoría,
	// ordenado por ingreso descendente.
	RevenueByCategory(ctx context.Context, filter CategoryRevenueFilter) ([]CategoryRevenueRow, error)
}
