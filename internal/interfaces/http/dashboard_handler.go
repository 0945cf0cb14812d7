package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/ndiwanjo/constructora-api/internal/application/analytics"
	"github.com/ndiwanjo/constructora-api/internal/application/dto"
)

// DashboardHandler expone el resumen agregado del panel (protegido).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary GET /api/dashboard/summary?year=YYYY
// Sin year se usa el año en curso.
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	year := 0
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "year debe ser un número entero"})
		}
		year = parsed
	}
	summary, err := h.uc.GetSummary(c.Context(), year)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
