package postgres

import (
	"context"
	"fmt"

	"github.com/gacc-hospital/snd-stock/internal/domain/entity"
	"github.com/gacc-hospital/snd-stock/internal/domain/repository"
)

var _ repository.AuditRepository = (*AuditRepo)(nil)

// AuditRepo implementación del puerto AuditRepository sobre PostgreSQL (usable con pool o tx).
type AuditRepo struct {
	q Querier
}

// NewAuditRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAuditRepository(q Querier) *AuditRepo {
	return &AuditRepo{q: q}
}

// Append persiste una entrada de la bitácora (append-only).
func (r *AuditRepo) Append(entry *entity.AuditEntry) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO audit_log (username, action, detail, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		entry.Username, entry.Action, entry.Detail, entry.CreatedAt,
	).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("append audit entry: %w", err)
	}
	return nil
}

// ListRecent lista entradas de la bitácora, más reciente primero.
func (r *AuditRepo) ListRecent(limit, offset int) ([]*entity.AuditEntry, error) {
	query := `
		SELECT id, username, action, detail, created_at
		FROM audit_log ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list audit log: %w", err)
	}
	defer rows.Close()
	var list []*entity.AuditEntry
	for rows.Next() {
		var e entity.AuditEntry
		if err := rows.Scan(&e.ID, &e.Username, &e.Action, &e.Detail, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
