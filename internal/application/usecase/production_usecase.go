package usecase

import (
	"fmt"
	"time"

	"github.com/jhoicas/factory-api/internal/application/dto"
	"github.com/jhoicas/factory-api/internal/domain"
	"github.com/jhoicas/factory-api/internal/domain/entity"
	"github.com/jhoicas/factory-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// ProductionUseCase casos de uso CRUD para registros de producción.
type ProductionUseCase struct {
	repo repository.ProductionRepository
}

// NewProductionUseCase construye el caso de uso.
func NewProductionUseCase(repo repository.ProductionRepository) *ProductionUseCase {
	return &ProductionUseCase{repo: repo}
}

// Create crea un registro de producción. Las referencias a producto o
// empleado inexistentes las rechaza la FK (domain.ErrForeignKey → 400).
func (uc *ProductionUseCase) Create(in dto.CreateProductionRequest) (*dto.ProductionResponse, error) {
	date, err := time.Parse(dateLayout, in.DateProduced)
	if err != nil {
		return nil, fmt.Errorf("date_produced inválido, formato YYYY-MM-DD: %w", domain.ErrInvalidInput)
	}
	p := &entity.Production{
		ProductID:        in.ProductID,
		EmployeeID:       in.EmployeeID,
		QuantityProduced: *in.QuantityProduced,
		DateProduced:     date,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toProductionResponse(p), nil
}

// GetByID obtiene un registro por ID; (nil, nil) si no existe.
func (uc *ProductionUseCase) GetByID(id int64) (*dto.ProductionResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toProductionResponse(p), nil
}

// List lista registros de producción paginados.
func (uc *ProductionUseCase) List(q dto.ListQuery) (*dto.ProductionListResponse, error) {
	list, err := uc.repo.List(q)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductionResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductionResponse(p))
	}
	resp := &dto.ProductionListResponse{Productions: items}
	if q.IncludeMeta {
		total, err := uc.repo.Count()
		if err != nil {
			return nil, err
		}
		resp.ListMeta = dto.NewListMeta(total, q)
	}
	return resp, nil
}

// Update actualiza un registro de producción; solo cambian los campos presentes.
func (uc *ProductionUseCase) Update(id int64, in dto.UpdateProductionRequest) (*dto.ProductionResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	if in.ProductID != nil {
		p.ProductID = *in.ProductID
	}
	if in.EmployeeID != nil {
		p.EmployeeID = in.EmployeeID
	}
	if in.QuantityProduced != nil {
		p.QuantityProduced = *in.QuantityProduced
	}
	if in.DateProduced != nil {
		date, err := time.Parse(dateLayout, *in.DateProduced)
		if err != nil {
			return nil, fmt.Errorf("date_produced inválido, formato YYYY-MM-DD: %w", domain.ErrInvalidInput)
		}
		p.DateProduced = date
	}
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toProductionResponse(p), nil
}

// Delete elimina un registro de producción; false si el id no existe.
func (uc *ProductionUseCase) Delete(id int64) (bool, error) {
	return uc.repo.Delete(id)
}

func toProductionResponse(p *entity.Production) *dto.ProductionResponse {
	return &dto.ProductionResponse{
		ID:               p.ID,
		ProductID:        p.ProductID,
		EmployeeID:       p.EmployeeID,
		QuantityProduced: p.QuantityProduced,
		DateProduced:     p.DateProduced.Format(dateLayout),
	}
}
