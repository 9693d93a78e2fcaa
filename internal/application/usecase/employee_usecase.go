package usecase

import (
	"time"

	"github.com/jhoicas/factory-api/internal/application/dto"
	"github.com/jhoicas/factory-api/internal/domain/entity"
	"github.com/jhoicas/factory-api/internal/domain/repository"
)

// EmployeeUseCase casos de uso CRUD para empleados.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

// Create crea un empleado nuevo.
func (uc *EmployeeUseCase) Create(in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	e := &entity.Employee{
		Name:      in.Name,
		Position:  in.Position,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(e); err != nil {
		return nil, err
	}
	return toEmployeeResponse(e), nil
}

// GetByID obtiene un empleado por ID; (nil, nil) si no existe.
func (uc *EmployeeUseCase) GetByID(id int64) (*dto.EmployeeResponse, error) {
	e, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}
	return toEmployeeResponse(e), nil
}

// List lista empleados paginados; con IncludeMeta añade total y páginas.
func (uc *EmployeeUseCase) List(q dto.ListQuery) (*dto.EmployeeListResponse, error) {
	list, err := uc.repo.List(q)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEmployeeResponse(e))
	}
	resp := &dto.EmployeeListResponse{Employees: items}
	if q.IncludeMeta {
		total, err := uc.repo.Count()
		if err != nil {
			return nil, err
		}
		resp.ListMeta = dto.NewListMeta(total, q)
	}
	return resp, nil
}

// Update actualiza un empleado; solo cambian los campos presentes.
func (uc *EmployeeUseCase) Update(id int64, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	e, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}
	if in.Name != nil {
		e.Name = *in.Name
	}
	if in.Position != nil {
		e.Position = *in.Position
	}
	if in.Email != nil {
		e.Email = *in.Email
	}
	if in.Phone != nil {
		e.Phone = *in.Phone
	}
	if err := uc.repo.Update(e); err != nil {
		return nil, err
	}
	return toEmployeeResponse(e), nil
}

// Delete elimina un empleado; false si el id no existe.
func (uc *EmployeeUseCase) Delete(id int64) (bool, error) {
	return uc.repo.Delete(id)
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:        e.ID,
		Name:      e.Name,
		Position:  e.Position,
		Email:     e.Email,
		Phone:     e.Phone,
		CreatedAt: e.CreatedAt,
	}
}
