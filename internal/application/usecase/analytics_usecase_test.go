package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/factory-api/internal/application/dto"
	"github.com/jhoicas/factory-api/internal/application/usecase"
	"github.com/jhoicas/factory-api/internal/domain"
)

// fakeAnalyticsRepo registra los parámetros con los que fue invocado.
type fakeAnalyticsRepo struct {
	lastThreshold decimal.Decimal
	lastDate      time.Time
}

func (f *fakeAnalyticsRepo) EmployeePerformance(ctx context.Context) ([]dto.EmployeePerformanceEntry, error) {
	return []dto.EmployeePerformanceEntry{}, nil
}

func (f *fakeAnalyticsRepo) TopSellingProducts(ctx context.Context) ([]dto.TopProductEntry, error) {
	return []dto.TopProductEntry{{ProductName: "Tornillo M8", TotalQuantity: 40}}, nil
}

func (f *fakeAnalyticsRepo) CustomerLifetimeValue(ctx context.Context, threshold decimal.Decimal) ([]dto.CustomerLifetimeValueEntry, error) {
	f.lastThreshold = threshold
	return []dto.CustomerLifetimeValueEntry{}, nil
}

func (f *fakeAnalyticsRepo) ProductionEfficiency(ctx context.Context, date time.Time) ([]dto.ProductionEfficiencyEntry, error) {
	f.lastDate = date
	return []dto.ProductionEfficiencyEntry{}, nil
}

func TestCLV_ThresholdVacioUsaDefault(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	uc := usecase.NewAnalyticsUseCase(repo)

	_, err := uc.CustomerLifetimeValue(context.Background(), "")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1000).Equal(repo.lastThreshold),
		"threshold vacío usa el default 1000, obtenido %s", repo.lastThreshold)
}

func TestCLV_ThresholdExplicito(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	uc := usecase.NewAnalyticsUseCase(repo)

	_, err := uc.CustomerLifetimeValue(context.Background(), "250.50")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("250.50").Equal(repo.lastThreshold))
}

func TestCLV_ThresholdNoNumerico(t *testing.T) {
	uc := usecase.NewAnalyticsUseCase(&fakeAnalyticsRepo{})

	_, err := uc.CustomerLifetimeValue(context.Background(), "mucho")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCLV_ThresholdNegativo(t *testing.T) {
	uc := usecase.NewAnalyticsUseCase(&fakeAnalyticsRepo{})

	_, err := uc.CustomerLifetimeValue(context.Background(), "-5")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductionEfficiency_DateRequerido(t *testing.T) {
	uc := usecase.NewAnalyticsUseCase(&fakeAnalyticsRepo{})

	_, err := uc.ProductionEfficiency(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductionEfficiency_DateMalformado(t *testing.T) {
	uc := usecase.NewAnalyticsUseCase(&fakeAnalyticsRepo{})

	_, err := uc.ProductionEfficiency(context.Background(), "31-12-2025")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductionEfficiency_DateValido(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	uc := usecase.NewAnalyticsUseCase(repo)

	_, err := uc.ProductionEfficiency(context.Background(), "2025-12-31")
	require.NoError(t, err)
	assert.Equal(t, 2025, repo.lastDate.Year())
	assert.Equal(t, time.December, repo.lastDate.Month())
	assert.Equal(t, 31, repo.lastDate.Day())
}

func TestReportesSinDatos_ListaVacia(t *testing.T) {
	uc := usecase.NewAnalyticsUseCase(&fakeAnalyticsRepo{})

	data, err := uc.EmployeePerformance(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, data, "sin datos el reporte es lista vacía, no null")
	assert.Empty(t, data)
}
