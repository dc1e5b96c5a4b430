package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stockmaster/internal/application/dto"
	"github.com/tu-usuario/stockmaster/internal/domain"
	"github.com/tu-usuario/stockmaster/internal/domain/entity"
	domaininv "github.com/tu-usuario/stockmaster/internal/domain/inventory"
)

// OperationUseCase implementa el ciclo de vida de las operaciones de stock:
// creación en draft con referencia única por tipo, verificación de disponibilidad
// (draft -> waiting/ready, repetible) y validación (-> done, terminal) que genera
// los moves del ledger.
type OperationUseCase struct {
	txRunner TxRunner
}

// NewOperationUseCase construye el caso de uso.
func NewOperationUseCase(txRunner TxRunner) *OperationUseCase {
	return &OperationUseCase{txRunner: txRunner}
}

// Create crea una operación en draft con sus líneas, en una sola transacción.
// La referencia "<tipo>/NNNN" se genera bajo un advisory lock transaccional por
// tipo: dos creaciones concurrentes del mismo tipo se serializan y no pueden
// calcular el mismo consecutivo. El unique constraint sobre reference queda como
// respaldo (un 23505 se mapea a ErrDuplicate y el caller puede reintentar).
func (uc *OperationUseCase) Create(ctx context.Context, createdByID string, in dto.CreateOperationRequest) (*dto.OperationResponse, error) {
	if !entity.ValidOperationType(in.OperationType) {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, line := range in.Lines {
		if line.ProductID == "" || !line.DemandQty.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}

	var out *dto.OperationResponse
	err := uc.txRunner.Run(ctx, func(r Repos) error {
		// Existencia de ubicaciones y productos dentro de la misma tx
		if in.SourceLocID != "" {
			loc, err := r.Locations.GetByID(in.SourceLocID)
			if err != nil {
				return err
			}
			if loc == nil {
				return domain.ErrNotFound
			}
		}
		if in.DestLocID != "" {
			loc, err := r.Locations.GetByID(in.DestLocID)
			if err != nil {
				return err
			}
			if loc == nil {
				return domain.ErrNotFound
			}
		}
		for _, line := range in.Lines {
			p, err := r.Products.GetByID(line.ProductID)
			if err != nil {
				return err
			}
			if p == nil {
				return domain.ErrNotFound
			}
		}

		// Serializa la generación de referencia por tipo de operación
		if err := r.Operations.AcquireReferenceLock(ctx, in.OperationType); err != nil {
			return err
		}
		last, err := r.Operations.LastReferenceByType(ctx, in.OperationType)
		if err != nil {
			return err
		}
		ref := domaininv.NextReference(in.OperationType, last)

		now := time.Now()
		op := &entity.StockOperation{
			ID:            uuid.New().String(),
			Reference:     ref,
			OperationType: in.OperationType,
			Status:        entity.OperationStatusDraft,
			SourceLocID:   in.SourceLocID,
			DestLocID:     in.DestLocID,
			PartnerID:     in.PartnerID,
			CreatedByID:   createdByID,
			ScheduledDate: in.ScheduledDate,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := r.Operations.Create(ctx, op); err != nil {
			return err
		}
		for _, line := range in.Lines {
			opl := &entity.StockOperationLine{
				ID:          uuid.New().String(),
				OperationID: op.ID,
				ProductID:   line.ProductID,
				DemandQty:   line.DemandQty,
				DoneQty:     decimal.Zero,
			}
			if err := r.Operations.CreateLine(ctx, opl); err != nil {
				return err
			}
			op.Lines = append(op.Lines, *opl)
		}
		out = ToOperationResponse(op)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID obtiene una operación con sus líneas; nil si no existe.
func (uc *OperationUseCase) GetByID(ctx context.Context, id string) (*dto.OperationResponse, error) {
	var out *dto.OperationResponse
	err := uc.txRunner.Run(ctx, func(r Repos) error {
		op, err := r.Operations.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if op != nil {
			out = ToOperationResponse(op)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// List lista operaciones con filtros opcionales por estado y tipo.
func (uc *OperationUseCase) List(ctx context.Context, status, operationType string, limit, offset int) (*dto.OperationListResponse, error) {
	var items []dto.OperationResponse
	err := uc.txRunner.Run(ctx, func(r Repos) error {
		list, err := r.Operations.List(ctx, status, operationType, limit, offset)
		if err != nil {
			return err
		}
		items = make([]dto.OperationResponse, 0, len(list))
		for _, op := range list {
			items = append(items, *ToOperationResponse(op))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.OperationListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ToOperationResponse convierte la entidad al DTO de salida.
func ToOperationResponse(op *entity.StockOperation) *dto.OperationResponse {
	if op == nil {
		return nil
	}
	lines := make([]dto.OperationLineResponse, 0, len(op.Lines))
	for _, l := range op.Lines {
		lines = append(lines, dto.OperationLineResponse{
			ID:        l.ID,
			ProductID: l.ProductID,
			DemandQty: l.DemandQty,
			DoneQty:   l.DoneQty,
		})
	}
	return &dto.OperationResponse{
		ID:            op.ID,
		Reference:     op.Reference,
		OperationType: op.OperationType,
		Status:        op.Status,
		SourceLocID:   op.SourceLocID,
		DestLocID:     op.DestLocID,
		PartnerID:     op.PartnerID,
		ScheduledDate: op.ScheduledDate,
		CreatedAt:     op.CreatedAt,
		UpdatedAt:     op.UpdatedAt,
		Lines:         lines,
	}
}
