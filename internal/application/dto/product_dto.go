package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// InitialStock opcional: si es > 0 se siembra un movimiento de apertura hacia initial_location_id.
type CreateProductRequest struct {
	Name              string          `json:"name" validate:"required,min=1,max=200"`
	SKU               string          `json:"sku" validate:"required,min=1,max=128"`
	Category          string          `json:"category"`
	UOM               string          `json:"uom"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	MinStockLevel     decimal.Decimal `json:"min_stock_level"`
	InitialStock      decimal.Decimal `json:"initial_stock"`
	InitialLocationID string          `json:"initial_location_id"`
}

// UpdateProductRequest entrada para actualizar un producto.
// Solo campos legítimamente mutables; id y auditoría nunca se tocan.
type UpdateProductRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Category      *string          `json:"category"`
	UOM           *string          `json:"uom"`
	UnitPrice     *decimal.Decimal `json:"unit_price"`
	MinStockLevel *decimal.Decimal `json:"min_stock_level"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	SKU           string          `json:"sku"`
	Category      string          `json:"category"`
	UOM           string          `json:"uom"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	MinStockLevel decimal.Decimal `json:"min_stock_level"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
