package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/factory-api/internal/application/dto"
)

// AnalyticsRepository consultas agregadas de solo lectura. Cada método es una
// única agregación con GROUP BY sobre el store; un período sin datos devuelve
// la lista vacía, no un error.
type AnalyticsRepository interface {
	EmployeePerformance(ctx context.Context) ([]dto.EmployeePerformanceEntry, error)
	TopSellingProducts(ctx context.Context) ([]dto.TopProductEntry, error)
	CustomerLifetimeValue(ctx context.Context, threshold decimal.Decimal) ([]dto.CustomerLifetimeValueEntry, error)
	ProductionEfficiency(ctx context.Context, date time.Time) ([]dto.ProductionEfficiencyEntry, error)
}
