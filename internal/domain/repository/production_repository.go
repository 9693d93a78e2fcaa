package repository

import (
	"github.com/jhoicas/factory-api/internal/application/dto"
	"github.com/jhoicas/factory-api/internal/domain/entity"
)

// ProductionRepository define el puerto de persistencia para Production (DIP).
type ProductionRepository interface {
	Create(p *entity.Production) error
	GetByID(id int64) (*entity.Production, error)
	List(q dto.ListQuery) ([]*entity.Production, error)
	Count() (int64, error)
	Update(p *entity.Production) error
	Delete(id int64) (bool, error)
}
