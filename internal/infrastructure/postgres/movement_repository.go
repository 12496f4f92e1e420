package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gacc-hospital/snd-stock/internal/domain/entity"
	"github.com/gacc-hospital/snd-stock/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación sobre PostgreSQL (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento de stock (append-only; no hay update ni delete).
func (r *MovementRepo) Create(movement *entity.Movement) error {
	if movement.TransactionID == "" {
		movement.TransactionID = uuid.New().String()
	}
	query := `
		INSERT INTO movements (transaction_id, product_id, kind, quantity, unit_price, username, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		movement.TransactionID, movement.ProductID, movement.Kind, movement.Quantity,
		movement.UnitPrice, movement.Username, movement.Reason, movement.CreatedAt,
	).Scan(&movement.ID)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// ListRecent lista movimientos, más reciente primero.
func (r *MovementRepo) ListRecent(limit, offset int) ([]*entity.Movement, error) {
	query := `
		SELECT id, transaction_id, product_id, kind, quantity, unit_price, username, reason, created_at
		FROM movements ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.TransactionID, &m.ProductID, &m.Kind,
			&m.Quantity, &m.UnitPrice, &m.Username, &m.Reason, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
