package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gacc-hospital/snd-stock/internal/application/dto"
	"github.com/gacc-hospital/snd-stock/internal/domain"
	"github.com/gacc-hospital/snd-stock/internal/domain/entity"
	"github.com/gacc-hospital/snd-stock/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos de stock (IN, OUT) de forma
// transaccional con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
// El sistema anterior actualizaba saldo y movimiento con commits separados;
// aquí las tres escrituras (saldo, movimiento, bitácora) van en una sola tx.
type RegisterMovementUseCase struct {
	txRunner TxRunner
	movRepo  repository.MovementRepository // lecturas fuera de tx
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner, movRepo repository.MovementRepository) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner, movRepo: movRepo}
}

// Register valida la entrada, bloquea la fila del producto, aplica ±cantidad
// al saldo y persiste movimiento + bitácora. El precio unitario se toma como
// snapshot de la fila del producto al momento del movimiento.
//
// El saldo nunca baja de cero: una salida mayor al saldo bloqueado falla con
// ErrInsufficientStock. El FOR UPDATE serializa movimientos concurrentes sobre
// el mismo producto, así que dos salidas simultáneas no pueden dejar saldo
// negativo.
func (uc *RegisterMovementUseCase) Register(ctx context.Context, in dto.RegisterMovementRequest, username string) (*dto.MovementResponse, error) {
	if in.ProductID == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Kind != entity.MovementKindIN && in.Kind != entity.MovementKindOUT {
		return nil, domain.ErrInvalidInput
	}
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	txID := uuid.New().String()
	var out *dto.MovementResponse

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.MovementRepository,
		auditRepo repository.AuditRepository,
	) error {
		// Bloquea la fila del producto para evitar lost updates sobre el saldo
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		mov := &entity.Movement{
			TransactionID: txID,
			ProductID:     product.ID,
			Kind:          in.Kind,
			Quantity:      in.Quantity,
			UnitPrice:     product.UnitPrice,
			Username:      username,
			Reason:        in.Reason,
			CreatedAt:     now,
		}
		if mov.Kind == entity.MovementKindOUT && product.Balance.LessThan(mov.Quantity) {
			return domain.ErrInsufficientStock
		}
		newBalance := product.Balance.Add(mov.SignedQuantity())

		if err := productRepo.UpdateBalance(product.ID, newBalance); err != nil {
			return err
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}

		if err := auditRepo.Append(&entity.AuditEntry{
			Username:  username,
			Action:    entity.AuditMovement,
			Detail:    fmt.Sprintf("%s %s de %s (saldo: %s)", in.Kind, in.Quantity.String(), product.Name, newBalance.String()),
			CreatedAt: now,
		}); err != nil {
			return err
		}

		out = &dto.MovementResponse{
			ID:            mov.ID,
			TransactionID: mov.TransactionID,
			ProductID:     mov.ProductID,
			Kind:          mov.Kind,
			Quantity:      mov.Quantity,
			UnitPrice:     mov.UnitPrice,
			Username:      mov.Username,
			Reason:        mov.Reason,
			CreatedAt:     mov.CreatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListRecent lista los últimos movimientos, más reciente primero.
func (uc *RegisterMovementUseCase) ListRecent(page dto.PageRequest) ([]*dto.MovementResponse, error) {
	page.DefaultPage()
	movs, err := uc.movRepo.ListRecent(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MovementResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, &dto.MovementResponse{
			ID:            m.ID,
			TransactionID: m.TransactionID,
			ProductID:     m.ProductID,
			Kind:          m.Kind,
			Quantity:      m.Quantity,
			UnitPrice:     m.UnitPrice,
			Username:      m.Username,
			Reason:        m.Reason,
			CreatedAt:     m.CreatedAt,
		})
	}
	return out, nil
}
