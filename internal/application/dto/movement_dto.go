package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest entrada de la pantalla de movimientos.
type RegisterMovementRequest struct {
	ProductID int64           `json:"product_id" validate:"required"`
	Kind      string          `json:"kind" validate:"required,oneof=IN OUT"`
	Quantity  decimal.Decimal `json:"quantity" validate:"required"`
	Reason    string          `json:"reason" validate:"max=300"`
}

// MovementResponse salida de un movimiento registrado.
type MovementResponse struct {
	ID            int64           `json:"id"`
	TransactionID string          `json:"transaction_id"`
	ProductID     int64           `json:"product_id"`
	Kind          string          `json:"kind"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Username      string          `json:"username"`
	Reason        string          `json:"reason,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}
