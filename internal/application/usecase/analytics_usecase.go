package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/factory-api/internal/application/dto"
	"github.com/jhoicas/factory-api/internal/domain"
	"github.com/jhoicas/factory-api/internal/domain/repository"
)

// defaultCLVThreshold umbral por defecto del valor de vida del cliente.
var defaultCLVThreshold = decimal.NewFromInt(1000)

// AnalyticsUseCase orquesta los cuatro reportes agregados de solo lectura y
// valida sus parámetros. Un período sin datos es lista vacía, no un error.
type AnalyticsUseCase struct {
	repo repository.AnalyticsRepository
}

// NewAnalyticsUseCase construye el caso de uso.
func NewAnalyticsUseCase(repo repository.AnalyticsRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{repo: repo}
}

// EmployeePerformance total producido agrupado por empleado.
func (uc *AnalyticsUseCase) EmployeePerformance(ctx context.Context) ([]dto.EmployeePerformanceEntry, error) {
	return uc.repo.EmployeePerformance(ctx)
}

// TopSellingProducts total pedido agrupado por producto, descendente.
func (uc *AnalyticsUseCase) TopSellingProducts(ctx context.Context) ([]dto.TopProductEntry, error) {
	return uc.repo.TopSellingProducts(ctx)
}

// CustomerLifetimeValue suma de totales por cliente, filtrada a sumas >=
// threshold. thresholdStr vacío usa el default 1000; no numérico o negativo
// es error de validación.
func (uc *AnalyticsUseCase) CustomerLifetimeValue(ctx context.Context, thresholdStr string) ([]dto.CustomerLifetimeValueEntry, error) {
	threshold := defaultCLVThreshold
	if thresholdStr != "" {
		parsed, err := decimal.NewFromString(thresholdStr)
		if err != nil {
			return nil, fmt.Errorf("threshold debe ser numérico: %w", domain.ErrInvalidInput)
		}
		threshold = parsed
	}
	if threshold.IsNegative() {
		return nil, fmt.Errorf("threshold no puede ser negativo: %w", domain.ErrInvalidInput)
	}
	return uc.repo.CustomerLifetimeValue(ctx, threshold)
}

// ProductionEfficiency total producido por producto en una fecha exacta.
// date es obligatorio en formato YYYY-MM-DD.
func (uc *AnalyticsUseCase) ProductionEfficiency(ctx context.Context, dateStr string) ([]dto.ProductionEfficiencyEntry, error) {
	if dateStr == "" {
		return nil, fmt.Errorf("date es requerido (YYYY-MM-DD): %w", domain.ErrInvalidInput)
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, fmt.Errorf("date inválido %q, formato YYYY-MM-DD: %w", dateStr, domain.ErrInvalidInput)
	}
	return uc.repo.ProductionEfficiency(ctx, date)
}
