package dto

import "github.com/shopspring/decimal"

// ── Query parameters ──────────────────────────────────────────────────────────

// RevenueRequest parámetros de GET /api/sales/revenue.
type RevenueRequest struct {
	Granularity string `query:"granularity"` // day | week | month | year
	StartDate   string `query:"start_date"`  // YYYY-MM-DD, opcional
	EndDate     string `query:"end_date"`    // YYYY-MM-DD, opcional
	ProductID   string `query:"product_id"`  // opcional
	CategoryID  string `query:"category_id"` // opcional
}

// CompareRevenueRequest parámetros de GET /api/sales/revenue/compare.
// Los cuatro límites de fecha son obligatorios.
type CompareRevenueRequest struct {
	Period1Start string `query:"period1_start"`
	Period1End   string `query:"period1_end"`
	Period2Start string `query:"period2_start"`
	Period2End   string `query:"period2_end"`
	ProductID    string `query:"product_id"`
	CategoryID   string `query:"category_id"`
}

// CategoryRevenueRequest parámetros de GET /api/sales/revenue/categories.
// CategoryIDs es una lista unida por comas.
type CategoryRevenueRequest struct {
	StartDate   string `query:"start_date"`
	EndDate     string `query:"end_date"`
	CategoryIDs string `query:"category_ids"`
}

// ── Respuestas ────────────────────────────────────────────────────────────────

// RevenueBucketDTO agregado de un cubo temporal. BucketEnd, DaysWithSales y
// MonthsWithSales se omiten en las granularidades que no los calculan; un cubo
// devuelto siempre tiene al menos una venta, así que omitempty nunca oculta
// un valor real.
type RevenueBucketDTO struct {
	BucketStart       string          `json:"bucket_start"`
	BucketEnd         string          `json:"bucket_end,omitempty"`
	Revenue           decimal.Decimal `json:"revenue"`
	TotalSales        int64           `json:"total_sales"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
	TotalQuantity     int64           `json:"total_quantity"`
	DaysWithSales     int64           `json:"days_with_sales,omitempty"`
	MonthsWithSales   int64           `json:"months_with_sales,omitempty"`
}

// PeriodRevenueDTO métricas agregadas de un período completo.
type PeriodRevenueDTO struct {
	StartDate         string          `json:"start_date"`
	EndDate           string          `json:"end_date"`
	Revenue           decimal.Decimal `json:"revenue"`
	TotalSales        int64           `json:"total_sales"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
	TotalQuantity     int64           `json:"total_quantity"`
	DaysWithSales     int64           `json:"days_with_sales"`
}

// RevenueChangesDTO variación porcentual de cada métrica, período 2 respecto
// al período 1.
type RevenueChangesDTO struct {
	RevenueChange           decimal.Decimal `json:"revenue_change"`
	TotalSalesChange        decimal.Decimal `json:"total_sales_change"`
	AverageOrderValueChange decimal.Decimal `json:"average_order_value_change"`
	TotalQuantityChange     decimal.Decimal `json:"total_quantity_change"`
	DaysWithSalesChange     decimal.Decimal `json:"days_with_sales_change"`
}

// RevenueComparisonDTO respuesta de GET /api/sales/revenue/compare.
type RevenueComparisonDTO struct {
	Period1    PeriodRevenueDTO  `json:"period1"`
	Period2    PeriodRevenueDTO  `json:"period2"`
	Comparison RevenueChangesDTO `json:"comparison"`
}

// CategoryRevenueDTO métricas por categoría con su participación en el
// ingreso total del rango.
type CategoryRevenueDTO struct {
	CategoryID        string          `json:"category_id"`
	CategoryName      string          `json:"category_name"`
	Revenue           decimal.Decimal `json:"revenue"`
	TotalSales        int64           `json:"total_sales"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
	TotalQuantity     int64           `json:"total_quantity"`
	DaysWithSales     int64           `json:"days_with_sales"`
	RevenuePercentage decimal.Decimal `json:"revenue_percentage"`
}
