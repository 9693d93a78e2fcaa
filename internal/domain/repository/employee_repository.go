package repository

import (
	"github.com/jhoicas/factory-api/internal/application/dto"
	"github.com/jhoicas/factory-api/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para Employee (DIP).
// GetByID devuelve (nil, nil) si no existe; Delete devuelve false si no
// había fila que borrar.
type EmployeeRepository interface {
	Create(e *entity.Employee) error
	GetByID(id int64) (*entity.Employee, error)
	List(q dto.ListQuery) ([]*entity.Employee, error)
	Count() (int64, error)
	Update(e *entity.Employee) error
	Delete(id int64) (bool, error)
}
