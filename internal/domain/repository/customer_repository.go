package repository

import (
	"github.com/jhoicas/factory-api/internal/application/dto"
	"github.com/jhoicas/factory-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer (DIP).
type CustomerRepository interface {
	Create(c *entity.Customer) error
	GetByID(id int64) (*entity.Customer, error)
	List(q dto.ListQuery) ([]*entity.Customer, error)
	Count() (int64, error)
	Update(c *entity.Customer) error
	Delete(id int64) (bool, error)
}
