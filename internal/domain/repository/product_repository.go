package repository

import (
	"github.com/jhoicas/factory-api/internal/application/dto"
	"github.com/jhoicas/factory-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(p *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	List(q dto.ListQuery) ([]*entity.Product, error)
	Count() (int64, error)
	Update(p *entity.Product) error
	Delete(id int64) (bool, error)
}
