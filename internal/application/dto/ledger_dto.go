package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntryResponse entrada del registro de auditoría de stock.
type LedgerEntryResponse struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"product_id"`
	LocationID    string          `json:"location_id,omitempty"`
	ChangeQty     decimal.Decimal `json:"change_qty"`
	ResultingQty  decimal.Decimal `json:"resulting_qty"`
	MoveID        string          `json:"move_id,omitempty"`
	OperationID   string          `json:"operation_id,omitempty"`
	PerformedByID string          `json:"performed_by_id,omitempty"`
	Reason        string          `json:"reason,omitempty"`
	Date          time.Time       `json:"date"`
}

// LedgerListResponse lista paginada de entradas del ledger.
type LedgerListResponse struct {
	Items []LedgerEntryResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
