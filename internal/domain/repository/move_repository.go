package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stockmaster/internal/domain/entity"
)

// MoveRepository define el puerto de persistencia para el ledger de StockMove.
// Los moves son inmutables: solo se insertan y se agregan.
type MoveRepository interface {
	Create(ctx context.Context, move *entity.StockMove) error
	GetByID(ctx context.Context, id string) (*entity.StockMove, error)
	List(ctx context.Context, productID string, limit, offset int) ([]*entity.StockMove, error)

	// SumIn suma las cantidades que entraron a la ubicación (nil = todas las ubicaciones).
	SumIn(ctx context.Context, productID string, locationID *string) (decimal.Decimal, error)
	// SumOut suma las cantidades que salieron de la ubicación (nil = todas).
	SumOut(ctx context.Context, productID string, locationID *string) (decimal.Decimal, error)
	// SumInByWarehouse / SumOutByWarehouse agregan sobre todas las ubicaciones de una bodega.
	SumInByWarehouse(ctx context.Context, productID, warehouseID string) (decimal.Decimal, error)
	SumOutByWarehouse(ctx context.Context, productID, warehouseID string) (decimal.Decimal, error)
}
