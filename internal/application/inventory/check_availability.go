package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/tu-usuario/stockmaster/internal/application/dto"
	"github.com/tu-usuario/stockmaster/internal/domain"
	"github.com/tu-usuario/stockmaster/internal/domain/entity"
	domaininv "github.com/tu-usuario/stockmaster/internal/domain/inventory"
)

// CheckAvailability evalúa si la demanda de la operación se puede satisfacer desde
// su ubicación origen. Por cada línea: stock en mano derivado del ledger de moves
// (nunca de la caché de quants) menos la demanda pendiente de otras operaciones en
// vuelo sobre la misma ubicación. Una sola línea insatisfecha hace fallar el todo.
//
// Efecto colateral: el estado de la operación pasa a ready o waiting y se persiste
// en ambos casos. La verificación es re-ejecutable cuantas veces se quiera; la
// última llamada gana. Todo corre en una transacción para evitar read skew contra
// inserciones de moves concurrentes.
func (uc *OperationUseCase) CheckAvailability(ctx context.Context, operationID string) (*dto.CheckAvailabilityResponse, error) {
	var out *dto.CheckAvailabilityResponse
	err := uc.txRunner.Run(ctx, func(r Repos) error {
		op, err := r.Operations.GetByID(ctx, operationID)
		if err != nil {
			return err
		}
		if op == nil {
			return domain.ErrNotFound
		}
		if op.SourceLocID == "" {
			return domain.ErrNoSourceLocation
		}
		source, err := r.Locations.GetByID(op.SourceLocID)
		if err != nil {
			return err
		}
		if source == nil {
			return domain.ErrNotFound
		}

		allOK := true
		msgs := make([]string, 0, len(op.Lines))
		for _, line := range op.Lines {
			onHand, err := currentStock(ctx, r, line.ProductID, &op.SourceLocID)
			if err != nil {
				return err
			}
			reserved, err := r.Operations.OutstandingDemand(ctx, line.ProductID, op.SourceLocID, op.ID)
			if err != nil {
				return err
			}
			available := domaininv.Available(onHand, reserved)

			label := line.ProductID
			if p, err := r.Products.GetByID(line.ProductID); err == nil && p != nil {
				label = p.SKU
			}
			if domaininv.Satisfiable(available, line.DemandQty) {
				msgs = append(msgs, fmt.Sprintf("Product %s: available %s >= demand %s", label, available, line.DemandQty))
			} else {
				msgs = append(msgs, fmt.Sprintf("Product %s: available %s < demand %s", label, available, line.DemandQty))
				allOK = false
			}
		}

		status := entity.OperationStatusWaiting
		if allOK {
			status = entity.OperationStatusReady
		}
		if err := r.Operations.UpdateStatus(ctx, op.ID, status); err != nil {
			return err
		}

		out = &dto.CheckAvailabilityResponse{Ready: allOK, Message: strings.Join(msgs, "; ")}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
