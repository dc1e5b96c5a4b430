package repository

import (
	"context"

	"github.com/tu-usuario/stockmaster/internal/domain/entity"
)

// LedgerRepository define el puerto para el registro de auditoría (append-only).
type LedgerRepository interface {
	Create(ctx context.Context, entry *entity.StockLedger) error
	GetByID(ctx context.Context, id string) (*entity.StockLedger, error)
	List(ctx context.Context, productID string, limit, offset int) ([]*entity.StockLedger, error)
}
