package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/reporting"
)

// RevenueHandler maneja las peticiones HTTP de reportes de ingresos.
type RevenueHandler struct {
	uc *reporting.RevenueUseCase
}

// NewRevenueHandler construye el handler.
func NewRevenueHandler(uc *reporting.RevenueUseCase) *RevenueHandler {
	return &RevenueHandler{uc: uc}
}

// GetRevenue godoc
// @Summary      Ingresos por cubo temporal
// @Description  Agrega las ventas por día, semana, mes o año según granularity.
//
//	Los cubos salen del más reciente al más antiguo y solo aparecen
//	los que tienen al menos una venta.
//
// @Tags         reports
// @Produce      json
// @Param        granularity  query  string  true   "day | week | month | year"
// @Param        start_date   query  string  false  "Desde (YYYY-MM-DD, inclusivo)"
// @Param        end_date     query  string  false  "Hasta (YYYY-MM-DD, inclusivo)"
// @Param        product_id   query  string  false  "Filtrar por producto (UUID)"
// @Param        category_id  query  string  false  "Filtrar por categoría (UUID)"
// @Success      200  {array}   dto.RevenueBucketDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sales/revenue [get]
func (h *RevenueHandler) GetRevenue(c *fiber.Ctx) error {
	var in dto.RevenueRequest
	if err := c.QueryParser(&in); err != nil {
		return invalidQuery(c)
	}
	out, err := h.uc.GetBucketedRevenue(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CompareRevenue godoc
// @Summary      Comparar ingresos entre dos períodos
// @Description  Agrega cada período y devuelve la variación porcentual de cada
//
//	métrica del período 2 respecto al período 1.
//
// @Tags         reports
// @Produce      json
// @Param        period1_start  query  string  true   "Inicio del período 1 (YYYY-MM-DD)"
// @Param        period1_end    query  string  true   "Fin del período 1 (YYYY-MM-DD)"
// @Param        period2_start  query  string  true   "Inicio del período 2 (YYYY-MM-DD)"
// @Param        period2_end    query  string  true   "Fin del período 2 (YYYY-MM-DD)"
// @Param        product_id     query  string  false  "Filtrar ambos períodos por producto"
// @Param        category_id    query  string  false  "Filtrar ambos períodos por categoría"
// @Success      200  {object}  dto.RevenueComparisonDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sales/revenue/compare [get]
func (h *RevenueHandler) CompareRevenue(c *fiber.Ctx) error {
	var in dto.CompareRevenueRequest
	if err := c.QueryParser(&in); err != nil {
		return invalidQuery(c)
	}
	out, err := h.uc.CompareRevenue(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CompareCategories godoc
// @Summary      Ingresos por categoría
// @Description  Métricas por categoría con su participación porcentual en el
//
//	ingreso total del rango. Las categorías sin ventas no aparecen.
//
// @Tags         reports
// @Produce      json
// @Param        start_date    query  string  false  "Desde (YYYY-MM-DD, inclusivo)"
// @Param        end_date      query  string  false  "Hasta (YYYY-MM-DD, inclusivo)"
// @Param        category_ids  query  string  false  "IDs de categoría separados por coma"
// @Success      200  {array}   dto.CategoryRevenueDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sales/revenue/categories [get]
func (h *RevenueHandler) CompareCategories(c *fiber.Ctx) error {
	var in dto.CategoryRevenueRequest
	if err := c.QueryParser(&in); err != nil {
		return invalidQuery(c)
	}
	out, err := h.uc.CompareCategoryRevenue(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
