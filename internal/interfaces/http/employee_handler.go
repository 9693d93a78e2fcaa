package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/factory-api/internal/application/dto"
	"github.com/jhoicas/factory-api/internal/application/usecase"
)

// EmployeeHandler maneja las peticiones HTTP para Employee (protegido, admin).
type EmployeeHandler struct {
	uc *usecase.EmployeeUseCase
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// Create crea un empleado.
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
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

// GetByID obtiene un empleado por ID.
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Error: "id inválido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Error: "empleado no encontrado"})
	}
	return c.JSON(out)
}

// List lista empleados paginados.
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	q := listQueryFromCtx(c)
	if err := q.Normalize("name", dto.EmployeeSortFields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Error: err.Error()})
	}
	out, err := h.uc.List(q)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Update actualiza parcialmente un empleado.
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Error: "id inválido"})
	}
	var in dto.UpdateEmployeeRequest
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
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Error: "empleado no encontrado"})
	}
	return c.JSON(out)
}

// Delete elimina un empleado.
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Error: "id inválido"})
	}
	ok, err := h.uc.Delete(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Error: "empleado no encontrado"})
	}
	return c.JSON(dto.MessageResponse{Message: "empleado eliminado"})
}
