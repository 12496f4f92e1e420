package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto del almacén con saldo denormalizado.
// Category y Unit son texto libre (no FK): la pantalla de registro los toma de
// los catálogos pero la fila guarda el nombre tal cual.
type Product struct {
	ID           int64
	Name         string
	Category     string
	Unit         string
	MinThreshold decimal.Decimal // umbral de reposición
	UnitPrice    decimal.Decimal
	Balance      decimal.Decimal // saldo actual; solo muta vía movimientos
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
