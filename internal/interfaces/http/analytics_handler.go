package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/factory-api/internal/application/dto"
	"github.com/jhoicas/factory-api/internal/application/usecase"
)

// AnalyticsHandler expone los reportes agregados de solo lectura (admin).
type AnalyticsHandler struct {
	uc *usecase.AnalyticsUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *usecase.AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// EmployeePerformance total producido por empleado.
func (h *AnalyticsHandler) EmployeePerformance(c *fiber.Ctx) error {
	data, err := h.uc.EmployeePerformance(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.AnalyticsResponse{Data: data, Status: "success"})
}

// TopSellingProducts total pedido por producto, descendente.
func (h *AnalyticsHandler) TopSellingProducts(c *fiber.Ctx) error {
	data, err := h.uc.TopSellingProducts(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.AnalyticsResponse{Data: data, Status: "success"})
}

// CustomerLifetimeValue suma de totales por cliente sobre el umbral
// (?threshold=, default 1000).
func (h *AnalyticsHandler) CustomerLifetimeValue(c *fiber.Ctx) error {
	data, err := h.uc.CustomerLifetimeValue(c.Context(), c.Query("threshold"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.AnalyticsResponse{Data: data, Status: "success"})
}

// ProductionEfficiency total producido por producto en la fecha
// (?date=YYYY-MM-DD, obligatorio).
func (h *AnalyticsHandler) ProductionEfficiency(c *fiber.Ctx) error {
	data, err := h.uc.ProductionEfficiency(c.Context(), c.Query("date"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.AnalyticsResponse{Data: data, Status: "success"})
}
