package repository

import (
	"github.com/shopspring/decimal"

	"github.com/gacc-hospital/snd-stock/internal/domain/entity"
)

// ProductRepository puerto de persistencia para productos.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	// GetForUpdate bloquea la fila (SELECT ... FOR UPDATE); solo tiene sentido dentro de una tx.
	GetForUpdate(id int64) (*entity.Product, error)
	// UpdateBalance fija el nuevo saldo; solo lo invoca el caso de uso de movimientos.
	UpdateBalance(id int64, balance decimal.Decimal) error
	List() ([]*entity.Product, error)
	// ListLowStock devuelve los productos con saldo <= umbral de reposición.
	ListLowStock() ([]*entity.Product, error)
}
