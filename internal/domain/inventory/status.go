package inventory

import "github.com/shopspring/decimal"

// Estados derivados de un producto.
const (
	StatusOK      = "OK"
	StatusReorder = "REORDER"
)

// Status deriva el estado de exhibición de un producto (servicio de dominio).
// REORDER si saldo <= umbral de reposición, OK en caso contrario.
// Función pura de dos campos almacenados; se recalcula en cada lectura.
func Status(balance, minThreshold decimal.Decimal) string {
	if balance.LessThanOrEqual(minThreshold) {
		return StatusReorder
	}
	return StatusOK
}
