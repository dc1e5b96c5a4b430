package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OperationLineRequest línea de demanda al crear una operación.
type OperationLineRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	DemandQty decimal.Decimal `json:"demand_qty" validate:"required"`
}

// CreateOperationRequest entrada para crear una operación de stock en draft.
type CreateOperationRequest struct {
	OperationType string                 `json:"operation_type" validate:"required,oneof=receipt delivery internal adjustment"`
	SourceLocID   string                 `json:"source_loc_id"`
	DestLocID     string                 `json:"dest_loc_id"`
	PartnerID     string                 `json:"partner_id"`
	ScheduledDate *time.Time             `json:"scheduled_date"`
	Lines         []OperationLineRequest `json:"lines" validate:"required,min=1"`
}

// OperationLineResponse salida de una línea de operación.
type OperationLineResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	DemandQty decimal.Decimal `json:"demand_qty"`
	DoneQty   decimal.Decimal `json:"done_qty"`
}

// OperationResponse salida de una operación con sus líneas.
type OperationResponse struct {
	ID            string                  `json:"id"`
	Reference     string                  `json:"reference"`
	OperationType string                  `json:"operation_type"`
	Status        string                  `json:"status"`
	SourceLocID   string                  `json:"source_loc_id,omitempty"`
	DestLocID     string                  `json:"dest_loc_id,omitempty"`
	PartnerID     string                  `json:"partner_id,omitempty"`
	ScheduledDate *time.Time              `json:"scheduled_date,omitempty"`
	CreatedAt     time.Time               `json:"created_at"`
	UpdatedAt     time.Time               `json:"updated_at"`
	Lines         []OperationLineResponse `json:"lines"`
}

// OperationListResponse lista paginada de operaciones.
type OperationListResponse struct {
	Items []OperationResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}

// CheckAvailabilityResponse resultado de la verificación de disponibilidad.
type CheckAvailabilityResponse struct {
	Ready   bool   `json:"ready"`
	Message string `json:"message"`
}

// ValidateOperationResponse resultado de la validación (commit) de una operación.
type ValidateOperationResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// CurrentStockResponse stock actual derivado del ledger de moves.
type CurrentStockResponse struct {
	ProductID  string          `json:"product_id"`
	LocationID string          `json:"location_id,omitempty"`
	Quantity   decimal.Decimal `json:"quantity"`
}
