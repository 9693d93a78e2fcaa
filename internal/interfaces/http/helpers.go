package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/factory-api/internal/application/dto"
	"github.com/jhoicas/factory-api/internal/domain"
)

// parseID lee el parámetro de ruta :id como entero positivo.
func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, errors.New("id inválido")
	}
	return id, nil
}

// listQueryFromCtx lee los query params genéricos de paginación y orden.
// include_meta es true salvo que venga explícitamente en false.
func listQueryFromCtx(c *fiber.Ctx) dto.ListQuery {
	return dto.ListQuery{
		Page:        c.QueryInt("page", 1),
		PerPage:     c.QueryInt("per_page", 10),
		SortBy:      c.Query("sort_by"),
		SortOrder:   c.Query("sort_order"),
		IncludeMeta: c.Query("include_meta") != "false",
	}
}

// respondDomainError traduce errores de dominio a respuestas HTTP. Los
// errores no reconocidos se loguean y devuelven 500 con mensaje genérico.
func respondDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Error: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "DUPLICATE", Error: err.Error()})
	case errors.Is(err, domain.ErrForeignKey):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CONSTRAINT", Error: "operación viola una referencia entre registros"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Error: "credenciales inválidas"})
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Error: "error interno"})
	}
}
