package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stockmaster/internal/application/dto"
	"github.com/tu-usuario/stockmaster/internal/application/usecase"
)

// DashboardHandler expone los KPIs del tablero (protegido).
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// KPIs godoc
// @Summary      KPIs del tablero
// @Description  Total de productos y conteo de operaciones por estado.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardKPIResponse
// @Router       /api/dashboard/kpis [get]
func (h *DashboardHandler) KPIs(c *fiber.Ctx) error {
	out, err := h.uc.KPIs(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
