package repository

import "github.com/gacc-hospital/snd-stock/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios.
// No hay Update ni Delete: ninguna revisión del sistema los implementa.
type UserRepository interface {
	Create(user *entity.User) error
	FindByUsername(username string) (*entity.User, error)
	List() ([]*entity.User, error)
	Count() (int64, error)
}
