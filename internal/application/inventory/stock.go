package inventory

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stockmaster/internal/application/dto"
	"github.com/tu-usuario/stockmaster/internal/domain"
	"github.com/tu-usuario/stockmaster/internal/domain/repository"
)

// currentStock deriva el stock en mano desde el ledger de moves:
// sum(entradas) - sum(salidas), acotado a una ubicación o global (locationID nil).
// La suma global es invariante ante moves puramente internos: la salida en una
// ubicación se compensa con la entrada en otra.
func currentStock(ctx context.Context, r Repos, productID string, locationID *string) (decimal.Decimal, error) {
	in, err := r.Moves.SumIn(ctx, productID, locationID)
	if err != nil {
		return decimal.Zero, err
	}
	out, err := r.Moves.SumOut(ctx, productID, locationID)
	if err != nil {
		return decimal.Zero, err
	}
	return in.Sub(out), nil
}

// StockUseCase expone la consulta de stock actual (lectura pura, sin efectos).
type StockUseCase struct {
	moveRepo    repository.MoveRepository
	productRepo repository.ProductRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(moveRepo repository.MoveRepository, productRepo repository.ProductRepository) *StockUseCase {
	return &StockUseCase{moveRepo: moveRepo, productRepo: productRepo}
}

// CurrentStock devuelve el stock derivado de un producto, opcionalmente acotado a
// una ubicación (locationID vacío = toda la red). Cantidad con signo: puede ser
// negativa si se validaron operaciones sin disponibilidad.
func (uc *StockUseCase) CurrentStock(ctx context.Context, productID, locationID string) (*dto.CurrentStockResponse, error) {
	p, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	var loc *string
	if locationID != "" {
		loc = &locationID
	}
	in, err := uc.moveRepo.SumIn(ctx, productID, loc)
	if err != nil {
		return nil, err
	}
	out, err := uc.moveRepo.SumOut(ctx, productID, loc)
	if err != nil {
		return nil, err
	}
	return &dto.CurrentStockResponse{
		ProductID:  productID,
		LocationID: locationID,
		Quantity:   in.Sub(out),
	}, nil
}
