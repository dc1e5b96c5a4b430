package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockLedger es el registro de auditoría append-only de cambios de cantidad.
// Cada entrada enlaza el move/operación/usuario que la produjo y la cantidad
// resultante en la ubicación en el momento del cambio.
type StockLedger struct {
	ID            string
	ProductID     string
	LocationID    string // vacío para el lado externo de un move
	ChangeQty     decimal.Decimal // positivo entrada, negativo salida
	ResultingQty  decimal.Decimal
	MoveID        string
	OperationID   string
	PerformedByID string
	Reason        string
	Date          time.Time
}
