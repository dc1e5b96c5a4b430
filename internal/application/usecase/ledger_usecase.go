package usecase

import (
	"context"

	"github.com/tu-usuario/stockmaster/internal/application/dto"
	"github.com/tu-usuario/stockmaster/internal/domain/entity"
	"github.com/tu-usuario/stockmaster/internal/domain/repository"
)

// LedgerUseCase expone el registro de auditoría de stock en modo solo lectura.
// Las entradas las escribe la validación de operaciones y la carga inicial de
// productos; nunca se editan.
type LedgerUseCase struct {
	repo repository.LedgerRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(repo repository.LedgerRepository) *LedgerUseCase {
	return &LedgerUseCase{repo: repo}
}

// GetByID obtiene una entrada por ID.
func (uc *LedgerUseCase) GetByID(ctx context.Context, id string) (*dto.LedgerEntryResponse, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}
	return toLedgerResponse(e), nil
}

// List lista entradas, opcionalmente por producto, más recientes primero.
func (uc *LedgerUseCase) List(ctx context.Context, productID string, limit, offset int) (*dto.LedgerListResponse, error) {
	list, err := uc.repo.List(ctx, productID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LedgerEntryResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toLedgerResponse(e))
	}
	return &dto.LedgerListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toLedgerResponse(e *entity.StockLedger) *dto.LedgerEntryResponse {
	return &dto.LedgerEntryResponse{
		ID:            e.ID,
		ProductID:     e.ProductID,
		LocationID:    e.LocationID,
		ChangeQty:     e.ChangeQty,
		ResultingQty:  e.ResultingQty,
		MoveID:        e.MoveID,
		OperationID:   e.OperationID,
		PerformedByID: e.PerformedByID,
		Reason:        e.Reason,
		Date:          e.Date,
	}
}
