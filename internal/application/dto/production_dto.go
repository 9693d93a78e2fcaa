package dto

// CreateProductionRequest alta de registro de producción. QuantityProduced es
// puntero para distinguir 0 (válido) de campo ausente. EmployeeID es opcional.
type CreateProductionRequest struct {
	ProductID        int64  `json:"product_id" validate:"required,gt=0"`
	EmployeeID       *int64 `json:"employee_id" validate:"omitempty,gt=0"`
	QuantityProduced *int64 `json:"quantity_produced" validate:"required,gte=0"`
	DateProduced     string `json:"date_produced" validate:"required,datetime=2006-01-02"`
}

// UpdateProductionRequest actualización parcial de registro de producción.
type UpdateProductionRequest struct {
	ProductID        *int64  `json:"product_id" validate:"omitempty,gt=0"`
	EmployeeID       *int64  `json:"employee_id" validate:"omitempty,gt=0"`
	QuantityProduced *int64  `json:"quantity_produced" validate:"omitempty,gte=0"`
	DateProduced     *string `json:"date_produced" validate:"omitempty,datetime=2006-01-02"`
}

// ProductionResponse representación pública de un registro de producción.
type ProductionResponse struct {
	ID               int64  `json:"id"`
	ProductID        int64  `json:"product_id"`
	EmployeeID       *int64 `json:"employee_id,omitempty"`
	QuantityProduced int64  `json:"quantity_produced"`
	DateProduced     string `json:"date_produced"` // YYYY-MM-DD
}

// ProductionListResponse listado paginado de registros de producción.
type ProductionListResponse struct {
	Productions []ProductionResponse `json:"productions"`
	*ListMeta
}
