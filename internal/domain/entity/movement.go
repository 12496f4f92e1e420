package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovementKindIN  = "IN"
	MovementKindOUT = "OUT"
)

// Movement registro append-only de una entrada o salida de stock.
// UnitPrice es un snapshot del precio del producto al momento del movimiento.
type Movement struct {
	ID            int64
	TransactionID string // uuid que agrupa las escrituras de una misma operación
	ProductID     int64
	Kind          string // IN | OUT
	Quantity      decimal.Decimal // siempre > 0; el signo lo da Kind
	UnitPrice     decimal.Decimal
	Username      string
	Reason        string
	CreatedAt     time.Time
}

// SignedQuantity efecto del movimiento sobre el saldo: +qty para IN, -qty para OUT.
func (m *Movement) SignedQuantity() decimal.Decimal {
	if m.Kind == MovementKindOUT {
		return m.Quantity.Neg()
	}
	return m.Quantity
}
