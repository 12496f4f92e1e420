package entity

import "time"

// Acciones registradas en la bitácora.
const (
	AuditLogin          = "LOGIN"
	AuditLogout         = "LOGOUT"
	AuditUserCreate     = "USER_CREATE"
	AuditCategoryCreate = "CATEGORY_CREATE"
	AuditUnitCreate     = "UNIT_CREATE"
	AuditProductCreate  = "PRODUCT_CREATE"
	AuditMovement       = "MOVEMENT"
	AuditLowStockSweep  = "LOW_STOCK_SWEEP"
)

// AuditEntry entrada append-only de la bitácora de acciones.
type AuditEntry struct {
	ID        int64
	Username  string
	Action    string
	Detail    string
	CreatedAt time.Time
}
