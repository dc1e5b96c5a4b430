package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stockmaster/internal/domain/entity"
)

// OperationRepository define el puerto de persistencia para StockOperation y sus líneas.
// Los métodos de agregación y de secuencia se usan dentro de transacciones.
type OperationRepository interface {
	Create(ctx context.Context, op *entity.StockOperation) error
	CreateLine(ctx context.Context, line *entity.StockOperationLine) error
	// GetByID carga la operación con sus líneas; nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.StockOperation, error)
	List(ctx context.Context, status, operationType string, limit, offset int) ([]*entity.StockOperation, error)
	UpdateStatus(ctx context.Context, id, status string) error
	UpdateLineDone(ctx context.Context, lineID string, doneQty decimal.Decimal) error

	// AcquireReferenceLock toma un advisory lock transaccional por tipo de operación.
	// Serializa la generación de referencias; solo tiene sentido dentro de una tx.
	AcquireReferenceLock(ctx context.Context, operationType string) error
	// LastReferenceByType devuelve la referencia más reciente del tipo ("" si no hay).
	LastReferenceByType(ctx context.Context, operationType string) (string, error)

	// OutstandingDemand suma demand_qty - done_qty de líneas del producto en
	// operaciones *distintas* a excludeOpID, con la misma ubicación origen y
	// estado draft/waiting/ready (demanda en vuelo que compite por el stock).
	OutstandingDemand(ctx context.Context, productID, sourceLocID, excludeOpID string) (decimal.Decimal, error)

	// CountByStatus devuelve el número de operaciones por estado (KPIs).
	CountByStatus(ctx context.Context) (map[string]int, error)
}
