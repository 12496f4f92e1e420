package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterProductRequest entrada de la pantalla de registro de productos.
type RegisterProductRequest struct {
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	Category     string          `json:"category" validate:"max=120"`
	Unit         string          `json:"unit" validate:"max=60"`
	MinThreshold decimal.Decimal `json:"min_threshold"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
}

// ProductResponse salida de la pantalla de stock, con el estado derivado.
type ProductResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Unit         string          `json:"unit"`
	MinThreshold decimal.Decimal `json:"min_threshold"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Balance      decimal.Decimal `json:"balance"`
	Status       string          `json:"status"` // OK | REORDER
	CreatedAt    time.Time       `json:"created_at"`
}
