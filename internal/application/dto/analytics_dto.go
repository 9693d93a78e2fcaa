package dto

import "github.com/shopspring/decimal"

// EmployeePerformanceEntry total producido por un empleado.
type EmployeePerformanceEntry struct {
	EmployeeName  string `json:"employee_name"`
	TotalQuantity int64  `json:"total_quantity"`
}

// TopProductEntry total pedido de un producto.
type TopProductEntry struct {
	ProductName   string `json:"product_name"`
	TotalQuantity int64  `json:"total_quantity"`
}

// CustomerLifetimeValueEntry suma de totales de pedidos de un cliente.
type CustomerLifetimeValueEntry struct {
	CustomerName  string          `json:"customer_name"`
	LifetimeValue decimal.Decimal `json:"lifetime_value"`
}

// ProductionEfficiencyEntry total producido de un producto en una fecha.
type ProductionEfficiencyEntry struct {
	ProductName   string `json:"product_name"`
	TotalQuantity int64  `json:"total_quantity"`
}

// AnalyticsResponse envoltura estándar de los reportes de analítica.
type AnalyticsResponse struct {
	Data   interface{} `json:"data"`
	Status string      `json:"status"`
}
