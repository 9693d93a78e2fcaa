package dto

import "time"

// CreateEmployeeRequest alta de empleado; todos los campos son requeridos.
type CreateEmployeeRequest struct {
	Name     string `json:"name" validate:"required"`
	Position string `json:"position" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
}

// UpdateEmployeeRequest actualización parcial: solo los campos presentes cambian.
type UpdateEmployeeRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1"`
	Position *string `json:"position" validate:"omitempty,min=1"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone" validate:"omitempty,min=1"`
}

// EmployeeResponse representación pública de un empleado.
type EmployeeResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Position  string    `json:"position"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// EmployeeListResponse listado paginado; ListMeta va aplanado si include_meta.
type EmployeeListResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	*ListMeta
}
