package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReorderRule define el punto de reorden de un producto, opcionalmente por bodega.
// MaxQty y ReorderQty en cero significan "sin definir".
type ReorderRule struct {
	ID          string
	ProductID   string
	WarehouseID string // vacío = regla global del producto
	MinQty      decimal.Decimal
	MaxQty      decimal.Decimal
	ReorderQty  decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
