package entity

import "time"

// Production representa un registro de producción: cuánto se produjo de un
// producto en una fecha calendario. EmployeeID es opcional y asocia el
// registro al empleado responsable; alimenta el reporte de desempeño.
type Production struct {
	ID               int64
	ProductID        int64
	EmployeeID       *int64
	QuantityProduced int64
	DateProduced     time.Time // solo fecha (YYYY-MM-DD)
}
