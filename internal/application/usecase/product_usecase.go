package usecase

import (
	"fmt"
	"time"

	"github.com/jhoicas/factory-api/internal/application/dto"
	"github.com/jhoicas/factory-api/internal/domain"
	"github.com/jhoicas/factory-api/internal/domain/entity"
	"github.com/jhoicas/factory-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto nuevo. El precio no puede ser negativo.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Price.IsNegative() {
		return nil, fmt.Errorf("price no puede ser negativo: %w", domain.ErrInvalidInput)
	}
	p := &entity.Product{
		Name:      in.Name,
		Price:     in.Price,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// GetByID obtiene un producto por ID; (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toProductResponse(p), nil
}

// List lista productos paginados.
func (uc *ProductUseCase) List(q dto.ListQuery) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(q)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	resp := &dto.ProductListResponse{Products: items}
	if q.IncludeMeta {
		total, err := uc.repo.Count()
		if err != nil {
			return nil, err
		}
		resp.ListMeta = dto.NewListMeta(total, q)
	}
	return resp, nil
}

// Update actualiza un producto. Cambiar el precio NO recalcula los totales de
// pedidos existentes: cada pedido congela su total al crearse.
func (uc *ProductUseCase) Update(id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, fmt.Errorf("price no puede ser negativo: %w", domain.ErrInvalidInput)
		}
		p.Price = *in.Price
	}
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// Delete elimina un producto; si tiene pedidos o producción asociados la FK
// bloquea el borrado y el adaptador devuelve domain.ErrForeignKey.
func (uc *ProductUseCase) Delete(id int64) (bool, error) {
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		CreatedAt: p.CreatedAt,
	}
}
