package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de la fábrica.
// Price es el precio de venta vigente; los pedidos congelan su propio total
// al momento de crearse, por lo que cambiar Price no los afecta.
type Product struct {
	ID        int64
	Name      string
	Price     decimal.Decimal
	CreatedAt time.Time
}
