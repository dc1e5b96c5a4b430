package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMoveRequest entrada para registrar un move manual (fuera de una operación).
type CreateMoveRequest struct {
	ProductID   string          `json:"product_id" validate:"required"`
	SourceLocID string          `json:"source_loc_id"`
	DestLocID   string          `json:"dest_loc_id"`
	Quantity    decimal.Decimal `json:"quantity" validate:"required"`
}

// MoveResponse salida de un move del ledger.
type MoveResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	SourceLocID string          `json:"source_loc_id,omitempty"`
	DestLocID   string          `json:"dest_loc_id,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	Date        time.Time       `json:"date"`
	OperationID string          `json:"operation_id,omitempty"`
}

// MoveListResponse lista paginada de moves.
type MoveListResponse struct {
	Items []MoveResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
