package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/factory-api/internal/application/dto"
	"github.com/jhoicas/factory-api/internal/application/usecase"
)

// OrderHandler maneja las peticiones HTTP para Order. Crear pedidos está
// abierto a cualquier usuario autenticado; el resto requiere admin.
type OrderHandler struct {
	uc *usecase.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create crea un pedido; valida que cliente y producto existan y calcula el
// total con el precio vigente del producto.
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Error: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Error: err.Error()})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene un pedido por ID.
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Error: "id inválido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Error: "pedido no encontrado"})
	}
	return c.JSON(out)
}

// List lista pedidos paginados.
func (h *OrderHandler) List(c *fiber.Ctx) error {
	q := listQueryFromCtx(c)
	if err := q.Normalize("created_at", dto.OrderSortFields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Error: err.Error()})
	}
	out, err := h.uc.List(q)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Update actualiza la cantidad de un pedido; el total se re-deriva del
// precio unitario original del pedido.
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Error: "id inválido"})
	}
	var in dto.UpdateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Error: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Error: err.Error()})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return respondDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Error: "pedido no encontrado"})
	}
	return c.JSON(out)
}

// Delete elimina un pedido.
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Error: "id inválido"})
	}
	ok, err := h.uc.Delete(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Error: "pedido no encontrado"})
	}
	return c.JSON(dto.MessageResponse{Message: "pedido eliminado"})
}
