package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stockmaster/internal/application/dto"
	"github.com/tu-usuario/stockmaster/internal/application/usecase"
	"github.com/tu-usuario/stockmaster/internal/domain"
)

// MoveHandler maneja las peticiones HTTP para StockMove (protegido).
type MoveHandler struct {
	uc *usecase.MoveUseCase
}

// NewMoveHandler construye el handler.
func NewMoveHandler(uc *usecase.MoveUseCase) *MoveHandler {
	return &MoveHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar move manual
// @Description  Para ajustes fuera de operaciones. Los moves de operaciones los crea la validación.
// @Tags         moves
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMoveRequest  true  "Producto, ubicaciones y cantidad"
// @Success      201   {object}  dto.MoveResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/moves [post]
func (h *MoveHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMoveRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cantidad > 0 y al menos una ubicación son requeridas"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto o ubicación no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener move por ID
// @Tags         moves
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del move"
// @Success      200  {object}  dto.MoveResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/moves/{id} [get]
func (h *MoveHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "move no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar moves
// @Tags         moves
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Param        limit       query  int     false  "Límite"   default(20)
// @Param        offset      query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.MoveListResponse
// @Router       /api/moves [get]
func (h *MoveHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.UserContext(), c.Query("product_id"), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
