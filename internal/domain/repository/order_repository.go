package repository

import (
	"github.com/jhoicas/factory-api/internal/application/dto"
	"github.com/jhoicas/factory-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order (DIP).
type OrderRepository interface {
	Create(o *entity.Order) error
	GetByID(id int64) (*entity.Order, error)
	List(q dto.ListQuery) ([]*entity.Order, error)
	Count() (int64, error)
	Update(o *entity.Order) error
	Delete(id int64) (bool, error)
}
