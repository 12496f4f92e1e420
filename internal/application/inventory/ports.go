package inventory

import (
	"context"

	"github.com/gacc-hospital/snd-stock/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la actualización del saldo, el
// movimiento y la entrada de bitácora se confirmen o deshagan juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movRepo repository.MovementRepository,
		auditRepo repository.AuditRepository,
	) error) error
}
