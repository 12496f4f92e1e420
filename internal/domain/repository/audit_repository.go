package repository

import "github.com/gacc-hospital/snd-stock/internal/domain/entity"

// AuditRepository puerto de persistencia para la bitácora (append-only).
type AuditRepository interface {
	Append(entry *entity.AuditEntry) error
	ListRecent(limit, offset int) ([]*entity.AuditEntry, error)
}
