package repository

import "github.com/jhoicas/factory-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id int64) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	Update(u *entity.User) error
	Delete(id int64) (bool, error)
}
