package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order representa un pedido de un cliente sobre un producto.
// TotalPrice se calcula una sola vez al crear el pedido con el precio vigente
// del producto y queda congelado: los cambios de precio posteriores no lo
// recalculan.
type Order struct {
	ID         int64
	CustomerID int64
	ProductID  int64
	Quantity   int64
	TotalPrice decimal.Decimal
	CreatedAt  time.Time
}

// UnitPrice precio unitario congelado del pedido (TotalPrice / Quantity).
func (o *Order) UnitPrice() decimal.Decimal {
	if o.Quantity == 0 {
		return decimal.Zero
	}
	return o.TotalPrice.Div(decimal.NewFromInt(o.Quantity))
}
