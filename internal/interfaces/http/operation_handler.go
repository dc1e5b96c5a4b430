package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stockmaster/internal/application/dto"
	"github.com/tu-usuario/stockmaster/internal/application/inventory"
	"github.com/tu-usuario/stockmaster/internal/domain"
)

// OperationHandler maneja el ciclo de vida de las operaciones de stock
// (crear, consultar, verificar disponibilidad, validar, documento).
type OperationHandler struct {
	uc    *inventory.OperationUseCase
	docUC *inventory.DocumentUseCase
}

// NewOperationHandler construye el handler.
func NewOperationHandler(uc *inventory.OperationUseCase, docUC *inventory.DocumentUseCase) *OperationHandler {
	return &OperationHandler{uc: uc, docUC: docUC}
}

// Create godoc
// @Summary      Crear operación de stock (draft)
// @Tags         operations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOperationRequest  true  "Tipo, ubicaciones y líneas de demanda"
// @Success      201   {object}  dto.OperationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/operations [post]
func (h *OperationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOperationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo, líneas o cantidades inválidas"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ubicación o producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener operación por ID (con líneas)
// @Tags         operations
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la operación"
// @Success      200  {object}  dto.OperationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/operations/{id} [get]
func (h *OperationHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "operación no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar operaciones
// @Tags         operations
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Filtrar por estado (draft|waiting|ready|done)"
// @Param        type    query  string  false  "Filtrar por tipo (receipt|delivery|internal|adjustment)"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.OperationListResponse
// @Router       /api/operations [get]
func (h *OperationHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.UserContext(), c.Query("status"), c.Query("type"), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// CheckAvailability godoc
// @Summary      Verificar disponibilidad de la operación
// @Description  Evalúa stock disponible vs demanda y deja la operación en ready o waiting. Repetible.
// @Tags         operations
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la operación"
// @Success      200  {object}  dto.CheckAvailabilityResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/operations/{id}/check [post]
func (h *OperationHandler) CheckAvailability(c *fiber.Ctx) error {
	out, err := h.uc.CheckAvailability(c.UserContext(), c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "operación no encontrada"})
		}
		if err == domain.ErrNoSourceLocation {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_SOURCE_LOCATION", Message: "la operación no tiene ubicación origen"})
		}
		if err == domain.ErrOperationDone {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "OPERATION_DONE", Message: "Operation already done"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Validate godoc
// @Summary      Validar (ejecutar) la operación
// @Description  Crea los stock moves de las líneas pendientes, fija done_qty y pasa la operación a done. Terminal.
// @Tags         operations
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la operación"
// @Success      200  {object}  dto.ValidateOperationResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/operations/{id}/validate [post]
func (h *OperationHandler) Validate(c *fiber.Ctx) error {
	out, err := h.uc.Validate(c.UserContext(), c.Params("id"), GetUserID(c))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "operación no encontrada"})
		}
		if err == domain.ErrOperationDone {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "OPERATION_DONE", Message: "Operation already done"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Document godoc
// @Summary      Documento PDF de la operación
// @Description  Genera la hoja de picking / comprobante de recepción de la operación.
// @Tags         operations
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la operación"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/operations/{id}/document [get]
func (h *OperationHandler) Document(c *fiber.Ctx) error {
	pdfBytes, err := h.docUC.OperationDocument(c.UserContext(), c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "operación no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="operation.pdf"`)
	return c.Send(pdfBytes)
}
