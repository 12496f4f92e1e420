package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementReportRow fila del join movimientos × productos para la pantalla de reportes.
type MovementReportRow struct {
	MovementID  int64
	ProductName string
	Category    string
	Unit        string
	Kind        string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Username    string
	Reason      string
	CreatedAt   time.Time
}

// DashboardSummary agregados de la pantalla principal.
type DashboardSummary struct {
	ProductCount  int64
	MovementCount int64
	ReorderCount  int64           // productos con saldo <= umbral
	StockValue    decimal.Decimal // Σ saldo * precio unitario
}
