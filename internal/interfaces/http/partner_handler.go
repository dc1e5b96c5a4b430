package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stockmaster/internal/application/dto"
	"github.com/tu-usuario/stockmaster/internal/application/usecase"
	"github.com/tu-usuario/stockmaster/internal/domain"
)

// PartnerHandler maneja las peticiones HTTP para Partner (protegido).
type PartnerHandler struct {
	uc *usecase.PartnerUseCase
}

// NewPartnerHandler construye el handler.
func NewPartnerHandler(uc *usecase.PartnerUseCase) *PartnerHandler {
	return &PartnerHandler{uc: uc}
}

// Create godoc
// @Summary      Crear tercero (proveedor o cliente)
// @Tags         partners
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePartnerRequest  true  "Datos del tercero"
// @Success      201   {object}  dto.PartnerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/partners [post]
func (h *PartnerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePartnerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Type == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y type son requeridos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type debe ser vendor o customer"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "tercero duplicado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener tercero por ID
// @Tags         partners
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del tercero"
// @Success      200  {object}  dto.PartnerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/partners/{id} [get]
func (h *PartnerHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tercero no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar terceros
// @Tags         partners
// @Security     Bearer
// @Produce      json
// @Param        type    query  string  false  "Filtrar por tipo (vendor|customer)"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.PartnerListResponse
// @Router       /api/partners [get]
func (h *PartnerHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.Query("type"), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar tercero
// @Tags         partners
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del tercero"
// @Param        body  body  dto.UpdatePartnerRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.PartnerResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/partners/{id} [put]
func (h *PartnerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePartnerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tercero no encontrado"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar tercero
// @Tags         partners
// @Security     Bearer
// @Param        id  path  string  true  "ID del tercero"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/partners/{id} [delete]
func (h *PartnerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tercero no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
