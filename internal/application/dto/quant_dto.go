package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuantResponse foto materializada de stock (caché; la verdad es el ledger).
type QuantResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	LocationID  string          `json:"location_id"`
	Quantity    decimal.Decimal `json:"quantity"`
	ReservedQty decimal.Decimal `json:"reserved_qty"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// QuantListResponse lista paginada de quants.
type QuantListResponse struct {
	Items []QuantResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
