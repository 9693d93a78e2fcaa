package usecase

import (
	"time"

	"github.com/jhoicas/factory-api/internal/application/dto"
	"github.com/jhoicas/factory-api/internal/domain/entity"
	"github.com/jhoicas/factory-api/internal/domain/repository"
)

// CustomerUseCase casos de uso CRUD para clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create crea un cliente nuevo.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	c := &entity.Customer{
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return toCustomerResponse(c), nil
}

// GetByID obtiene un cliente por ID; (nil, nil) si no existe.
func (uc *CustomerUseCase) GetByID(id int64) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	return toCustomerResponse(c), nil
}

// List lista clientes paginados.
func (uc *CustomerUseCase) List(q dto.ListQuery) (*dto.CustomerListResponse, error) {
	list, err := uc.repo.List(q)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCustomerResponse(c))
	}
	resp := &dto.CustomerListResponse{Customers: items}
	if q.IncludeMeta {
		total, err := uc.repo.Count()
		if err != nil {
			return nil, err
		}
		resp.ListMeta = dto.NewListMeta(total, q)
	}
	return resp, nil
}

// Update actualiza un cliente; solo cambian los campos presentes.
func (uc *CustomerUseCase) Update(id int64, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Email != nil {
		c.Email = *in.Email
	}
	if in.Phone != nil {
		c.Phone = *in.Phone
	}
	if err := uc.repo.Update(c); err != nil {
		return nil, err
	}
	return toCustomerResponse(c), nil
}

// Delete elimina un cliente; si tiene pedidos la FK bloquea el borrado y el
// adaptador devuelve domain.ErrForeignKey.
func (uc *CustomerUseCase) Delete(id int64) (bool, error) {
	return uc.repo.Delete(id)
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
	}
}
