package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest alta de pedido. El total no se recibe: se calcula con el
// precio vigente del producto al momento de crear.
type CreateOrderRequest struct {
	CustomerID int64 `json:"customer_id" validate:"required,gt=0"`
	ProductID  int64 `json:"product_id" validate:"required,gt=0"`
	Quantity   int64 `json:"quantity" validate:"required,gt=0"`
}

// UpdateOrderRequest actualización parcial de pedido. Solo quantity es
// mutable; el total se re-deriva del precio unitario congelado del pedido.
type UpdateOrderRequest struct {
	Quantity *int64 `json:"quantity" validate:"omitempty,gt=0"`
}

// OrderResponse representación pública de un pedido.
type OrderResponse struct {
	ID         int64           `json:"id"`
	CustomerID int64           `json:"customer_id"`
	ProductID  int64           `json:"product_id"`
	Quantity   int64           `json:"quantity"`
	TotalPrice decimal.Decimal `json:"total_price"`
	CreatedAt  time.Time       `json:"created_at"`
}

// OrderListResponse listado paginado de pedidos.
type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	*ListMeta
}
