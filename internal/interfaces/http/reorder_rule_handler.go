package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stockmaster/internal/application/dto"
	"github.com/tu-usuario/stockmaster/internal/application/inventory"
	"github.com/tu-usuario/stockmaster/internal/application/usecase"
	"github.com/tu-usuario/stockmaster/internal/domain"
)

// ReorderRuleHandler maneja reglas de reorden y sugerencias (protegido).
type ReorderRuleHandler struct {
	uc         *usecase.ReorderRuleUseCase
	suggestion *inventory.ReorderSuggestionUseCase
}

// NewReorderRuleHandler construye el handler.
func NewReorderRuleHandler(uc *usecase.ReorderRuleUseCase, suggestion *inventory.ReorderSuggestionUseCase) *ReorderRuleHandler {
	return &ReorderRuleHandler{uc: uc, suggestion: suggestion}
}

// Create godoc
// @Summary      Crear regla de reorden
// @Tags         reorder-rules
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReorderRuleRequest  true  "Producto, bodega opcional y umbrales"
// @Success      201   {object}  dto.ReorderRuleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reorder-rules [post]
func (h *ReorderRuleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReorderRuleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id y min_qty >= 0 son requeridos"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto o bodega no encontrada"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe una regla para ese producto y bodega"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener regla de reorden por ID
// @Tags         reorder-rules
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la regla"
// @Success      200  {object}  dto.ReorderRuleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reorder-rules/{id} [get]
func (h *ReorderRuleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "regla no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar reglas de reorden
// @Tags         reorder-rules
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200  {object}  dto.ReorderRuleListResponse
// @Router       /api/reorder-rules [get]
func (h *ReorderRuleHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar regla de reorden
// @Tags         reorder-rules
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la regla"
// @Param        body  body  dto.UpdateReorderRuleRequest  true  "Umbrales a actualizar"
// @Success      200   {object}  dto.ReorderRuleResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/reorder-rules/{id} [put]
func (h *ReorderRuleHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateReorderRuleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "regla no encontrada"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "umbrales inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar regla de reorden
// @Tags         reorder-rules
// @Security     Bearer
// @Param        id  path  string  true  "ID de la regla"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reorder-rules/{id} [delete]
func (h *ReorderRuleHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "regla no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Suggestions godoc
// @Summary      Sugerencias de reorden
// @Description  Productos bajo su punto de reorden con la cantidad sugerida de pedido, ordenadas por urgencia.
// @Tags         reorder-rules
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ReorderSuggestionDTO
// @Router       /api/reorder-rules/suggestions [get]
func (h *ReorderRuleHandler) Suggestions(c *fiber.Ctx) error {
	out, err := h.suggestion.GenerateSuggestions(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
