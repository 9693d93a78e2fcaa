package dto

import "time"

// CreateCustomerRequest alta de cliente.
type CreateCustomerRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
}

// UpdateCustomerRequest actualización parcial de cliente.
type UpdateCustomerRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1"`
	Email *string `json:"email" validate:"omitempty,email"`
	Phone *string `json:"phone" validate:"omitempty,min=1"`
}

// CustomerResponse representación pública de un cliente.
type CustomerResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// CustomerListResponse listado paginado de clientes.
type CustomerListResponse struct {
	Customers []CustomerResponse `json:"customers"`
	*ListMeta
}
