package inventory

import (
	"context"

	"github.com/tu-usuario/stockmaster/internal/domain/repository"
)

// Repos agrupa los repositorios atados a una misma transacción de BD.
type Repos struct {
	Operations repository.OperationRepository
	Moves      repository.MoveRepository
	Quants     repository.QuantRepository
	Ledger     repository.LedgerRepository
	Products   repository.ProductRepository
	Locations  repository.LocationRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza atomicidad para el motor de inventario: la verificación
// de disponibilidad y la validación leen agregados y deciden sobre ellos, por lo que
// todo el ciclo leer-decidir-escribir debe vivir en una sola transacción.
type TxRunner interface {
	Run(ctx context.Context, fn func(r Repos) error) error
}
