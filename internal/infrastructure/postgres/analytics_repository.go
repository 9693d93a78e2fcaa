package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/factory-api/internal/application/dto"
	"github.com/jhoicas/factory-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas agregadas de solo lectura sobre PostgreSQL. Cada
// reporte es un único GROUP BY; un período sin datos devuelve lista vacía.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de reportes. Pasar pool o tx (Querier).
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// EmployeePerformance total producido por empleado, de mayor a menor.
// Solo considera producciones asociadas a un empleado (employee_id no nulo).
func (r *AnalyticsRepo) EmployeePerformance(ctx context.Context) ([]dto.EmployeePerformanceEntry, error) {
	query := `
		SELECT e.name, COALESCE(SUM(p.quantity_produced), 0) AS total
		FROM employees e
		JOIN productions p ON p.employee_id = e.id
		GROUP BY e.id, e.name
		ORDER BY total DESC, e.name ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("employee performance: %w", err)
	}
	defer rows.Close()
	entries := make([]dto.EmployeePerformanceEntry, 0)
	for rows.Next() {
		var e dto.EmployeePerformanceEntry
		if err := rows.Scan(&e.EmployeeName, &e.TotalQuantity); err != nil {
			return nil, fmt.Errorf("scan employee performance: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// TopSellingProducts total pedido por producto, de mayor a menor.
func (r *AnalyticsRepo) TopSellingProducts(ctx context.Context) ([]dto.TopProductEntry, error) {
	query := `
		SELECT p.name, SUM(o.quantity) AS total
		FROM products p
		JOIN orders o ON o.product_id = p.id
		GROUP BY p.id, p.name
		ORDER BY total DESC, p.name ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("top selling products: %w", err)
	}
	defer rows.Close()
	entries := make([]dto.TopProductEntry, 0)
	for rows.Next() {
		var e dto.TopProductEntry
		if err := rows.Scan(&e.ProductName, &e.TotalQuantity); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// CustomerLifetimeValue suma de totales de pedidos por cliente, filtrando a
// sumas mayores o iguales al umbral, de mayor a menor.
func (r *AnalyticsRepo) CustomerLifetimeValue(ctx context.Context, threshold decimal.Decimal) ([]dto.CustomerLifetimeValueEntry, error) {
	query := `
		SELECT c.name, SUM(o.total_price) AS lifetime_value
		FROM customers c
		JOIN orders o ON o.customer_id = c.id
		GROUP BY c.id, c.name
		HAVING SUM(o.total_price) >= $1
		ORDER BY lifetime_value DESC, c.name ASC`
	rows, err := r.q.Query(ctx, query, threshold)
	if err != nil {
		return nil, fmt.Errorf("customer lifetime value: %w", err)
	}
	defer rows.Close()
	entries := make([]dto.CustomerLifetimeValueEntry, 0)
	for rows.Next() {
		var e dto.CustomerLifetimeValueEntry
		if err := rows.Scan(&e.CustomerName, &e.LifetimeValue); err != nil {
			return nil, fmt.Errorf("scan customer lifetime value: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ProductionEfficiency total producido por producto en la fecha dada.
func (r *AnalyticsRepo) ProductionEfficiency(ctx context.Context, date time.Time) ([]dto.ProductionEfficiencyEntry, error) {
	query := `
		SELECT pr.name, SUM(p.quantity_produced) AS total
		FROM products pr
		JOIN productions p ON p.product_id = pr.id
		WHERE p.date_produced = $1
		GROUP BY pr.id, pr.name
		ORDER BY total DESC, pr.name ASC`
	rows, err := r.q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("production efficiency: %w", err)
	}
	defer rows.Close()
	entries := make([]dto.ProductionEfficiencyEntry, 0)
	for rows.Next() {
		var e dto.ProductionEfficiencyEntry
		if err := rows.Scan(&e.ProductName, &e.TotalQuantity); err != nil {
			return nil, fmt.Errorf("scan production efficiency: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
