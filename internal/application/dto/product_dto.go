package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest alta de producto. Price se valida en el caso de uso
// (decimal no negativo); validator no opera sobre decimal.Decimal.
type CreateProductRequest struct {
	Name  string          `json:"name" validate:"required"`
	Price decimal.Decimal `json:"price"`
}

// UpdateProductRequest actualización parcial de producto.
type UpdateProductRequest struct {
	Name  *string          `json:"name" validate:"omitempty,min=1"`
	Price *decimal.Decimal `json:"price"`
}

// ProductResponse representación pública de un producto.
type ProductResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	*ListMeta
}
