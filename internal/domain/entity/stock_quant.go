package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockQuant es la foto materializada del stock de un producto en una ubicación.
// Es una caché: la fuente de verdad es el ledger de StockMove. Se refresca en la
// misma transacción que crea moves (validación de operaciones) y nunca la lee el
// evaluador de disponibilidad.
type StockQuant struct {
	ID          string
	ProductID   string
	LocationID  string
	Quantity    decimal.Decimal
	ReservedQty decimal.Decimal
	UpdatedAt   time.Time
}
