package repository

import (
	"context"

	"github.com/tu-usuario/stockmaster/internal/domain/entity"
)

// QuantRepository define el puerto para la caché materializada de stock (StockQuant).
// Upsert/GetForUpdate se usan dentro de la transacción que refresca la caché.
type QuantRepository interface {
	GetByID(ctx context.Context, id string) (*entity.StockQuant, error)
	Get(ctx context.Context, productID, locationID string) (*entity.StockQuant, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE); devuelve un quant en cero si no existe.
	GetForUpdate(ctx context.Context, productID, locationID string) (*entity.StockQuant, error)
	Upsert(ctx context.Context, quant *entity.StockQuant) error
	List(ctx context.Context, locationID string, limit, offset int) ([]*entity.StockQuant, error)
}
