package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockMove es un hecho histórico inmutable: una cantidad de un producto que ya
// se movió de una ubicación a otra. El stock en mano de un producto en una
// ubicación se deriva como sum(entradas) - sum(salidas); nunca se edita un move,
// solo se compensa con operaciones nuevas.
type StockMove struct {
	ID          string
	ProductID   string
	SourceLocID string // vacío = origen externo (recepción)
	DestLocID   string // vacío = destino externo
	Quantity    decimal.Decimal // > 0
	Date        time.Time
	OperationID string // operación que lo generó; vacío si fue un move manual
}
