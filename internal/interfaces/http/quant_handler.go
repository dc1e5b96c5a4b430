package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stockmaster/internal/application/dto"
	"github.com/tu-usuario/stockmaster/internal/application/usecase"
)

// QuantHandler expone la caché materializada de stock (solo lectura).
type QuantHandler struct {
	uc *usecase.QuantUseCase
}

// NewQuantHandler construye el handler.
func NewQuantHandler(uc *usecase.QuantUseCase) *QuantHandler {
	return &QuantHandler{uc: uc}
}

// GetByID godoc
// @Summary      Obtener quant por ID
// @Tags         quants
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del quant"
// @Success      200  {object}  dto.QuantResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quants/{id} [get]
func (h *QuantHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "quant no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar quants
// @Description  Foto materializada del stock por producto y ubicación; se refresca al validar operaciones.
// @Tags         quants
// @Security     Bearer
// @Produce      json
// @Param        location_id  query  string  false  "Filtrar por ubicación"
// @Param        limit        query  int     false  "Límite"   default(20)
// @Param        offset       query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.QuantListResponse
// @Router       /api/quants [get]
func (h *QuantHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.UserContext(), c.Query("location_id"), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
