package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stockmaster/internal/application/dto"
	"github.com/tu-usuario/stockmaster/internal/domain"
	"github.com/tu-usuario/stockmaster/internal/domain/entity"
	"github.com/tu-usuario/stockmaster/internal/domain/repository"
)

// MoveUseCase registra moves manuales y consulta el ledger.
// Los moves son inmutables; no hay update ni delete (solo se compensan con
// operaciones nuevas). La caché de quants se refresca al validar operaciones,
// no aquí.
type MoveUseCase struct {
	repo        repository.MoveRepository
	productRepo repository.ProductRepository
	locRepo     repository.LocationRepository
}

// NewMoveUseCase construye el caso de uso.
func NewMoveUseCase(repo repository.MoveRepository, productRepo repository.ProductRepository, locRepo repository.LocationRepository) *MoveUseCase {
	return &MoveUseCase{repo: repo, productRepo: productRepo, locRepo: locRepo}
}

// Create registra un move manual. Cantidad > 0 y al menos un extremo
// (origen o destino) definido.
func (uc *MoveUseCase) Create(ctx context.Context, in dto.CreateMoveRequest) (*dto.MoveResponse, error) {
	if in.ProductID == "" || !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.SourceLocID == "" && in.DestLocID == "" {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	for _, locID := range []string{in.SourceLocID, in.DestLocID} {
		if locID == "" {
			continue
		}
		loc, err := uc.locRepo.GetByID(locID)
		if err != nil {
			return nil, err
		}
		if loc == nil {
			return nil, domain.ErrNotFound
		}
	}

	mv := &entity.StockMove{
		ID:          uuid.New().String(),
		ProductID:   in.ProductID,
		SourceLocID: in.SourceLocID,
		DestLocID:   in.DestLocID,
		Quantity:    in.Quantity,
		Date:        time.Now(),
	}
	if err := uc.repo.Create(ctx, mv); err != nil {
		return nil, err
	}
	return toMoveResponse(mv), nil
}

// GetByID obtiene un move por ID.
func (uc *MoveUseCase) GetByID(ctx context.Context, id string) (*dto.MoveResponse, error) {
	mv, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if mv == nil {
		return nil, nil
	}
	return toMoveResponse(mv), nil
}

// List lista moves, opcionalmente por producto, más recientes primero.
func (uc *MoveUseCase) List(ctx context.Context, productID string, limit, offset int) (*dto.MoveListResponse, error) {
	list, err := uc.repo.List(ctx, productID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MoveResponse, 0, len(list))
	for _, mv := range list {
		items = append(items, *toMoveResponse(mv))
	}
	return &dto.MoveListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toMoveResponse(mv *entity.StockMove) *dto.MoveResponse {
	if mv == nil {
		return nil
	}
	return &dto.MoveResponse{
		ID:          mv.ID,
		ProductID:   mv.ProductID,
		SourceLocID: mv.SourceLocID,
		DestLocID:   mv.DestLocID,
		Quantity:    mv.Quantity,
		Date:        mv.Date,
		OperationID: mv.OperationID,
	}
}
