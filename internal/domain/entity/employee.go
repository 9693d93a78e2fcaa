package entity

import "time"

// Employee representa un empleado de la planta.
type Employee struct {
	ID        int64
	Name      string
	Position  string
	Email     string
	Phone     string
	CreatedAt time.Time
}
