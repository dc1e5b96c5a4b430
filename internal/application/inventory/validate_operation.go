package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stockmaster/internal/application/dto"
	"github.com/tu-usuario/stockmaster/internal/domain"
	"github.com/tu-usuario/stockmaster/internal/domain/entity"
)

// Validate confirma (commit) una operación: por cada línea con demanda pendiente
// crea un StockMove por la cantidad restante, marca la línea como cumplida
// (done_qty = demand_qty, cumplimiento total por llamada) y deja la operación en
// done, estado terminal. Validar una operación ya hecha falla sin mutar nada.
//
// Validate no re-verifica disponibilidad: es responsabilidad del caller haber
// llamado CheckAvailability antes. Política heredada y pendiente de decisión de
// producto; el stock derivado puede quedar negativo.
//
// En la misma transacción se anota el ledger de auditoría por cada lado afectado
// del move y se refresca la caché de quants (con la fila bloqueada FOR UPDATE),
// de modo que caché y auditoría nunca se separan de los moves que las causaron.
func (uc *OperationUseCase) Validate(ctx context.Context, operationID, userID string) (*dto.ValidateOperationResponse, error) {
	var out *dto.ValidateOperationResponse
	err := uc.txRunner.Run(ctx, func(r Repos) error {
		op, err := r.Operations.GetByID(ctx, operationID)
		if err != nil {
			return err
		}
		if op == nil {
			return domain.ErrNotFound
		}
		if op.Status == entity.OperationStatusDone {
			return domain.ErrOperationDone
		}

		now := time.Now()
		created := 0
		for _, line := range op.Lines {
			remaining := line.Remaining()
			if remaining.Sign() <= 0 {
				continue
			}
			mv := &entity.StockMove{
				ID:          uuid.New().String(),
				ProductID:   line.ProductID,
				SourceLocID: op.SourceLocID,
				DestLocID:   op.DestLocID,
				Quantity:    remaining,
				Date:        now,
				OperationID: op.ID,
			}
			if err := r.Moves.Create(ctx, mv); err != nil {
				return err
			}
			if err := r.Operations.UpdateLineDone(ctx, line.ID, line.DemandQty); err != nil {
				return err
			}
			if op.SourceLocID != "" {
				if err := uc.settleMoveSide(ctx, r, mv, op, op.SourceLocID, remaining.Neg(), userID, now); err != nil {
					return err
				}
			}
			if op.DestLocID != "" {
				if err := uc.settleMoveSide(ctx, r, mv, op, op.DestLocID, remaining, userID, now); err != nil {
					return err
				}
			}
			created++
		}

		if err := r.Operations.UpdateStatus(ctx, op.ID, entity.OperationStatusDone); err != nil {
			return err
		}
		out = &dto.ValidateOperationResponse{OK: true, Message: fmt.Sprintf("Created %d stock moves", created)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// settleMoveSide anota el ledger y refresca la caché de quants para un lado del
// move. Bloquea primero la fila del quant (FOR UPDATE) para que validaciones
// concurrentes del mismo producto/ubicación se serialicen antes de leer las sumas.
func (uc *OperationUseCase) settleMoveSide(
	ctx context.Context,
	r Repos,
	mv *entity.StockMove,
	op *entity.StockOperation,
	locationID string,
	change decimal.Decimal,
	userID string,
	now time.Time,
) error {
	quant, err := r.Quants.GetForUpdate(ctx, mv.ProductID, locationID)
	if err != nil {
		return err
	}
	resulting, err := currentStock(ctx, r, mv.ProductID, &locationID)
	if err != nil {
		return err
	}
	entry := &entity.StockLedger{
		ID:            uuid.New().String(),
		ProductID:     mv.ProductID,
		LocationID:    locationID,
		ChangeQty:     change,
		ResultingQty:  resulting,
		MoveID:        mv.ID,
		OperationID:   op.ID,
		PerformedByID: userID,
		Reason:        op.Reference,
		Date:          now,
	}
	if err := r.Ledger.Create(ctx, entry); err != nil {
		return err
	}
	quant.Quantity = resulting
	quant.UpdatedAt = now
	return r.Quants.Upsert(ctx, quant)
}
