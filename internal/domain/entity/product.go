package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del inventario.
// El stock físico es derivado del ledger de movimientos (StockMove); InitialStock
// solo se usa al crear el producto para sembrar el movimiento de apertura.
type Product struct {
	ID            string
	Name          string
	SKU           string // código único
	Category      string
	UOM           string // unidad de medida
	UnitPrice     decimal.Decimal
	MinStockLevel decimal.Decimal
	InitialStock  decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
