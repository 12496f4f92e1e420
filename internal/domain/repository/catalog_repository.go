package repository

import "github.com/gacc-hospital/snd-stock/internal/domain/entity"

// CategoryRepository puerto de persistencia para categorías (solo alta y listado).
type CategoryRepository interface {
	Create(category *entity.Category) error
	List() ([]*entity.Category, error)
}

// UnitRepository puerto de persistencia para unidades de medida (solo alta y listado).
type UnitRepository interface {
	Create(unit *entity.Unit) error
	List() ([]*entity.Unit, error)
}
