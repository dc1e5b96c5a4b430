package usecase

import (
	"context"

	"github.com/tu-usuario/stockmaster/internal/application/dto"
	"github.com/tu-usuario/stockmaster/internal/domain/entity"
	"github.com/tu-usuario/stockmaster/internal/domain/repository"
)

// QuantUseCase expone la caché materializada de stock en modo solo lectura.
// La caché se refresca al validar operaciones; para el valor derivado del
// ledger usar StockUseCase.
type QuantUseCase struct {
	repo repository.QuantRepository
}

// NewQuantUseCase construye el caso de uso.
func NewQuantUseCase(repo repository.QuantRepository) *QuantUseCase {
	return &QuantUseCase{repo: repo}
}

// GetByID obtiene un quant por ID.
func (uc *QuantUseCase) GetByID(ctx context.Context, id string) (*dto.QuantResponse, error) {
	q, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, nil
	}
	return toQuantResponse(q), nil
}

// List lista quants, opcionalmente filtrados por ubicación.
func (uc *QuantUseCase) List(ctx context.Context, locationID string, limit, offset int) (*dto.QuantListResponse, error) {
	list, err := uc.repo.List(ctx, locationID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.QuantResponse, 0, len(list))
	for _, q := range list {
		items = append(items, *toQuantResponse(q))
	}
	return &dto.QuantListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toQuantResponse(q *entity.StockQuant) *dto.QuantResponse {
	return &dto.QuantResponse{
		ID:          q.ID,
		ProductID:   q.ProductID,
		LocationID:  q.LocationID,
		Quantity:    q.Quantity,
		ReservedQty: q.ReservedQty,
		UpdatedAt:   q.UpdatedAt,
	}
}
