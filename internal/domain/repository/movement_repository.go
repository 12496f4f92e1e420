package repository

import "github.com/gacc-hospital/snd-stock/internal/domain/entity"

// MovementRepository puerto de persistencia para movimientos (append-only).
type MovementRepository interface {
	Create(movement *entity.Movement) error
	ListRecent(limit, offset int) ([]*entity.Movement, error)
}
