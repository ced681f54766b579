package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ventas-api/internal/application/seeding"
)

// SeedHandler dispara la carga de datos de demostración.
type SeedHandler struct {
	seeder *seeding.Seeder
}

// NewSeedHandler construye el handler.
func NewSeedHandler(seeder *seeding.Seeder) *SeedHandler {
	return &SeedHandler{seeder: seeder}
}

// Seed godoc
// @Summary      Cargar datos de demostración
// @Description  Crea categorías, productos, inventario y ventas de ejemplo en
//
//	una sola transacción. Pensado para entornos de desarrollo.
//
// @Tags         seed
// @Produce      json
// @Success      201  {object}  dto.SeedResultDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/seed [post]
func (h *SeedHandler) Seed(c *fiber.Ctx) error {
	out, err := h.seeder.Seed(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
