package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ndiwanjo/constructora-api/internal/application/usecase"
)

// ActivityHandler expone el feed de actividad reciente (protegido).
type ActivityHandler struct {
	uc *usecase.ActivityUseCase
}

// NewActivityHandler construye el handler.
func NewActivityHandler(uc *usecase.ActivityUseCase) *ActivityHandler {
	return &ActivityHandler{uc: uc}
}

// List GET /api/activities — últimas entradas, más reciente primero.
func (h *ActivityHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.ListRecent()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}
