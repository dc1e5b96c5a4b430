package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stockmaster/internal/application/dto"
	"github.com/tu-usuario/stockmaster/internal/application/usecase"
)

// LedgerHandler expone el registro de auditoría de stock (solo lectura).
type LedgerHandler struct {
	uc *usecase.LedgerUseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(uc *usecase.LedgerUseCase) *LedgerHandler {
	return &LedgerHandler{uc: uc}
}

// GetByID godoc
// @Summary      Obtener entrada del ledger por ID
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la entrada"
// @Success      200  {object}  dto.LedgerEntryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ledger/{id} [get]
func (h *LedgerHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "entrada no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar entradas del ledger
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Param        limit       query  int     false  "Límite"   default(20)
// @Param        offset      query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.LedgerListResponse
// @Router       /api/ledger [get]
func (h *LedgerHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.UserContext(), c.Query("product_id"), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
