package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementReportRow fila del reporte de movimientos (join con productos).
type MovementReportRow struct {
	MovementID  int64           `json:"movement_id"`
	ProductName string          `json:"product_name"`
	Category    string          `json:"category"`
	Unit        string          `json:"unit"`
	Kind        string          `json:"kind"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Username    string          `json:"username"`
	Reason      string          `json:"reason,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// DashboardResponse agregados de la pantalla principal.
type DashboardResponse struct {
	ProductCount  int64           `json:"product_count"`
	MovementCount int64           `json:"movement_count"`
	ReorderCount  int64           `json:"reorder_count"`
	StockValue    decimal.Decimal `json:"stock_value"`
}

// AuditEntryResponse entrada de la bitácora.
type AuditEntryResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
