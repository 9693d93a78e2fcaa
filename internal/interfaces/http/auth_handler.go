package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/factory-api/internal/application/auth"
	"github.com/jhoicas/factory-api/internal/application/dto"
)

// AuthHandler maneja login y gestión de usuarios. Login es público; el resto
// requiere super_admin.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login autentica y devuelve el token JWT. Cualquier fallo de credenciales
// responde igual, sin revelar si el usuario existe.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Error: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Error: err.Error()})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Register crea un usuario con rol (solo super_admin).
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Error: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Error: err.Error()})
	}
	out, err := h.uc.Register(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetUser obtiene un usuario por ID (sin hash).
func (h *AuthHandler) GetUser(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Error: "id inválido"})
	}
	out, err := h.uc.GetUser(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Error: "usuario no encontrado"})
	}
	return c.JSON(out)
}

// UpdateUser cambia contraseña y/o rol de un usuario.
func (h *AuthHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Error: "id inválido"})
	}
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Error: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Error: err.Error()})
	}
	out, err := h.uc.UpdateUser(id, in)
	if err != nil {
		return respondDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Error: "usuario no encontrado"})
	}
	return c.JSON(out)
}

// DeleteUser elimina un usuario.
func (h *AuthHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Error: "id inválido"})
	}
	ok, err := h.uc.DeleteUser(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Error: "usuario no encontrado"})
	}
	return c.JSON(dto.MessageResponse{Message: "usuario eliminado"})
}
