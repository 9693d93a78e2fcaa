package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/factory-api/internal/application/dto"
	"github.com/jhoicas/factory-api/internal/application/usecase"
)

// CustomerHandler maneja las peticiones HTTP para Customer (protegido, admin).
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create crea un cliente.
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
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

// GetByID obtiene un cliente por ID.
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Error: "id inválido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Error: "cliente no encontrado"})
	}
	return c.JSON(out)
}

// List lista clientes paginados.
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	q := listQueryFromCtx(c)
	if err := q.Normalize("name", dto.CustomerSortFields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Error: err.Error()})
	}
	out, err := h.uc.List(q)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Update actualiza parcialmente un cliente.
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Error: "id inválido"})
	}
	var in dto.UpdateCustomerRequest
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
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Error: "cliente no encontrado"})
	}
	return c.JSON(out)
}

// Delete elimina un cliente. Falla con 400 si tiene pedidos.
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Error: "id inválido"})
	}
	ok, err := h.uc.Delete(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Error: "cliente no encontrado"})
	}
	return c.JSON(dto.MessageResponse{Message: "cliente eliminado"})
}
