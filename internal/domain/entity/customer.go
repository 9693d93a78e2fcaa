package entity

import "time"

// Customer representa un cliente que puede colocar pedidos.
type Customer struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
}
